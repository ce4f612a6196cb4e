// Package catalog implements the demo search collaborators backed by fixed
// catalogs. The price ceilings in the queries are advisory and intentionally
// not enforced: every search returns the full catalog so the scripted demo
// always has something to show.
package catalog

import (
	"context"

	"github.com/travel-assistant-poc/server/internal/assistant/model"
	logx "github.com/travel-assistant-poc/server/pkg/logger"
)

// FlightSearch serves the fixed Lahore-to-Dubai flight catalog.
type FlightSearch struct{}

func NewFlightSearch() *FlightSearch {
	return &FlightSearch{}
}

func (s *FlightSearch) SearchFlights(ctx context.Context, q model.FlightQuery) ([]model.Flight, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logx.Debug().
		Str("route", q.DepartureID+"-"+q.ArrivalID).
		Float64("max_price", q.MaxPrice).
		Msg("serving fixed flight catalog")
	return dubaiFlights(), nil
}

// dubaiFlights returns a fresh copy so callers can hold results without
// sharing backing arrays.
func dubaiFlights() []model.Flight {
	return []model.Flight{
		{
			Airline:          "FlyDubai",
			FlightNumber:     "FZ-123",
			DepartureTime:    "2025-05-20T10:00:00",
			ArrivalTime:      "2025-05-20T12:30:00",
			Price:            2500,
			Currency:         "AED",
			DepartureAirport: "LHE",
			ArrivalAirport:   "DXB",
			Duration:         "2h 30m",
			Stops:            0,
			CabinClass:       "Economy",
			BaggageAllowance: "30kg",
		},
		{
			Airline:          "Emirates",
			FlightNumber:     "EK-456",
			DepartureTime:    "2025-05-20T15:00:00",
			ArrivalTime:      "2025-05-20T17:30:00",
			Price:            3200,
			Currency:         "AED",
			DepartureAirport: "LHE",
			ArrivalAirport:   "DXB",
			Duration:         "2h 30m",
			Stops:            0,
			CabinClass:       "Economy",
			BaggageAllowance: "35kg",
		},
	}
}

var _ model.FlightSearcher = (*FlightSearch)(nil)
