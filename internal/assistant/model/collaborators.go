package model

import (
	"context"

	"github.com/cloudwego/eino/schema"
)

// FlightQuery carries the parameters a stage handler passes to flight search.
// MaxPrice is advisory: implementations may return options above it.
type FlightQuery struct {
	DepartureID  string
	ArrivalID    string
	OutboundDate string
	ReturnDate   string
	Currency     string
	MaxPrice     float64
}

// HotelQuery carries the parameters a stage handler passes to hotel search.
// MaxPrice is advisory, same as for flights.
type HotelQuery struct {
	Location string
	CheckIn  string
	CheckOut string
	Guests   int
	Currency string
	MaxPrice float64
}

// ItineraryRequest describes the trip an itinerary planner should cover.
type ItineraryRequest struct {
	Destination string
	StartDate   string
	EndDate     string
	Preferences []string
	Budget      float64
	GroupSize   int
}

// Confirmation is the payload handed to the confirmation-email collaborator.
type Confirmation struct {
	Subject string
	Body    string
	To      string
}

// FlightSearcher finds flight options for a query.
type FlightSearcher interface {
	SearchFlights(ctx context.Context, q FlightQuery) ([]Flight, error)
}

// HotelSearcher finds hotel options for a query.
type HotelSearcher interface {
	SearchHotels(ctx context.Context, q HotelQuery) ([]Hotel, error)
}

// ItineraryPlanner produces an itinerary shell for a trip.
type ItineraryPlanner interface {
	Plan(ctx context.Context, req ItineraryRequest) ([]ItineraryDay, error)
}

// ConfirmationSender delivers a booking confirmation to the traveller.
type ConfirmationSender interface {
	Send(ctx context.Context, c Confirmation) error
}

// Responder generates a free-form assistant reply for the given transcript.
// Used only once a conversation reaches the wrap-up stage.
type Responder interface {
	Respond(ctx context.Context, transcript []*schema.Message) (string, error)
}

// TranscriptStore mirrors conversation turns for later inspection. Writes are
// best-effort from the caller's point of view: a failed mirror never fails the
// chat request.
type TranscriptStore interface {
	// AddMessage appends a message to the transcript for the given conversation.
	AddMessage(ctx context.Context, conversationID string, message *schema.Message) error

	// LoadHistory retrieves the mirrored transcript for a conversation.
	LoadHistory(ctx context.Context, conversationID string) (*Transcript, error)

	// ClearHistory removes the mirrored transcript for a conversation.
	ClearHistory(ctx context.Context, conversationID string) error

	// MessageCount returns the number of mirrored messages.
	MessageCount(ctx context.Context, conversationID string) (int, error)
}

// Transcript is a loaded transcript mirror with its conversation key.
type Transcript struct {
	ConversationID string
	Messages       []*schema.Message
}
