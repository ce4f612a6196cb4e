package catalog

import (
	"context"

	"github.com/travel-assistant-poc/server/internal/assistant/model"
	logx "github.com/travel-assistant-poc/server/pkg/logger"
)

// HotelSearch serves the fixed Dubai hotel catalog.
type HotelSearch struct{}

func NewHotelSearch() *HotelSearch {
	return &HotelSearch{}
}

func (s *HotelSearch) SearchHotels(ctx context.Context, q model.HotelQuery) ([]model.Hotel, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logx.Debug().
		Str("location", q.Location).
		Float64("max_price", q.MaxPrice).
		Msg("serving fixed hotel catalog")
	return dubaiHotels(), nil
}

func dubaiHotels() []model.Hotel {
	return []model.Hotel{
		{
			Name:          "Marriott Downtown",
			PricePerNight: 800,
			Currency:      "AED",
			Rating:        4.5,
			Location:      "Downtown Dubai",
			Amenities: []string{
				"Pool", "Spa", "Gym", "Restaurant", "Free WiFi", "Airport Shuttle",
			},
			CheckIn:            "2025-05-20",
			CheckOut:           "2025-05-27",
			RoomType:           "Deluxe Room",
			CancellationPolicy: "Free cancellation until 24 hours before check-in",
		},
		{
			Name:          "Burj Al Arab",
			PricePerNight: 5000,
			Currency:      "AED",
			Rating:        5.0,
			Location:      "Jumeirah Beach",
			Amenities: []string{
				"Private Beach", "Helipad", "Luxury Spa", "Fine Dining", "Butler Service", "Private Pool",
			},
			CheckIn:            "2025-05-20",
			CheckOut:           "2025-05-27",
			RoomType:           "Deluxe Suite",
			CancellationPolicy: "Free cancellation until 48 hours before check-in",
		},
	}
}

var _ model.HotelSearcher = (*HotelSearch)(nil)
