package model

import "github.com/cloudwego/eino/schema"

// Flight is a single flight option returned by a search. Immutable once returned.
type Flight struct {
	Airline          string  `json:"airline"`
	FlightNumber     string  `json:"flight_number"`
	DepartureTime    string  `json:"departure_time"`
	ArrivalTime      string  `json:"arrival_time"`
	Price            float64 `json:"price"`
	Currency         string  `json:"currency"`
	DepartureAirport string  `json:"departure_airport"`
	ArrivalAirport   string  `json:"arrival_airport"`
	Duration         string  `json:"duration"`
	Stops            int     `json:"stops"`
	CabinClass       string  `json:"cabin_class"`
	BaggageAllowance string  `json:"baggage_allowance"`
}

// Hotel is a single hotel option returned by a search. Immutable once returned.
type Hotel struct {
	Name               string   `json:"name"`
	PricePerNight      float64  `json:"price_per_night"`
	Currency           string   `json:"currency"`
	Rating             float64  `json:"rating"`
	Location           string   `json:"location"`
	Amenities          []string `json:"amenities"`
	CheckIn            string   `json:"check_in"`
	CheckOut           string   `json:"check_out"`
	RoomType           string   `json:"room_type"`
	CancellationPolicy string   `json:"cancellation_policy"`
	Images             []string `json:"images,omitempty"`
}

// Activity is one scheduled entry inside an itinerary day.
type Activity struct {
	Time          string  `json:"time"`
	Activity      string  `json:"activity"`
	Details       string  `json:"details"`
	Location      string  `json:"location"`
	Duration      string  `json:"duration"`
	Price         float64 `json:"price,omitempty"`
	BookingStatus string  `json:"booking_status"`
}

// Weather is the forecast snapshot attached to an itinerary day.
type Weather struct {
	Temperature int    `json:"temperature"`
	Condition   string `json:"condition"`
	Humidity    string `json:"humidity"`
	WindSpeed   string `json:"wind_speed"`
}

// ItineraryDay is one day of the generated trip plan.
type ItineraryDay struct {
	Day        int        `json:"day"`
	Date       string     `json:"date"`
	Activities []Activity `json:"activities"`
	Summary    string     `json:"summary"`
	Weather    *Weather   `json:"weather,omitempty"`
}

// TravelOptions bundles search results for the client to render.
type TravelOptions struct {
	Flights           []Flight `json:"flights"`
	Hotels            []Hotel  `json:"hotels"`
	RecommendedFlight *Flight  `json:"recommended_flight"`
	RecommendedHotel  *Hotel   `json:"recommended_hotel"`
}

// ConversationState is the round-tripped state of one conversation. The client
// owns it: the server returns the updated value on every call and never stores
// it itself. Fields stay unset until the stage that populates them is reached
// and are never cleared afterwards, except Messages which the stage-agnostic
// reset empties.
type ConversationState struct {
	Stage       ConversationStage `json:"stage"`
	Budget      int               `json:"budget,omitempty"`
	Origin      string            `json:"origin,omitempty"`
	Destination string            `json:"destination,omitempty"`
	StartDate   string            `json:"start_date,omitempty"`
	EndDate     string            `json:"end_date,omitempty"`
	Messages    []*schema.Message `json:"messages"`
	Flights     []Flight          `json:"flights,omitempty"`
	Hotels      []Hotel           `json:"hotels,omitempty"`
	Itinerary   []ItineraryDay    `json:"itinerary,omitempty"`
}

// NewConversationState returns a fresh state at the initial stage with an
// empty message log and all trip parameters unset.
func NewConversationState() *ConversationState {
	return &ConversationState{
		Stage:    StageInitial,
		Messages: []*schema.Message{},
	}
}
