package engine

import (
	"context"
	"strings"

	"github.com/travel-assistant-poc/server/internal/assistant/model"
	logx "github.com/travel-assistant-poc/server/pkg/logger"
)

// Result is the outcome of one conversation turn: the reply to speak, the
// optional structured payloads for the client to render, the stage after the
// turn, and the updated state the client must send back next time.
type Result struct {
	Reply         string
	TravelOptions *model.TravelOptions
	Itinerary     []model.ItineraryDay
	Stage         model.ConversationStage
	State         *model.ConversationState
}

type handlerFunc func(ctx context.Context, state *model.ConversationState, message, lower string) (*Result, error)

// transition pairs a guard with the handler that fires when it matches.
// Guards see the current stage and the lower-cased message. The table is
// evaluated top to bottom and the first match wins, so row order is part of
// the dialogue policy: the destination trigger outranks every stage handler
// and can restart the flow from any stage.
type transition struct {
	name  string
	match func(stage model.ConversationStage, lower string) bool
	apply handlerFunc
}

// Engine drives the scripted travel conversation. It holds no per-conversation
// state of its own; everything it needs arrives in the ConversationState the
// caller round-trips, so one Engine serves any number of conversations.
type Engine struct {
	flights   model.FlightSearcher
	hotels    model.HotelSearcher
	planner   model.ItineraryPlanner
	email     model.ConfirmationSender
	responder model.Responder
	table     []transition
}

func New(flights model.FlightSearcher, hotels model.HotelSearcher, planner model.ItineraryPlanner, email model.ConfirmationSender, responder model.Responder) *Engine {
	e := &Engine{
		flights:   flights,
		hotels:    hotels,
		planner:   planner,
		email:     email,
		responder: responder,
	}
	e.table = []transition{
		{
			name: "destination_interest",
			match: func(_ model.ConversationStage, lower string) bool {
				return strings.Contains(lower, "dubai") && strings.Contains(lower, "visit")
			},
			apply: e.handleDestinationInterest,
		},
		{
			name:  "trip_parameters",
			match: stageIs(model.StageDatesAndDeparture),
			apply: e.handleTripParameters,
		},
		{
			name:  "booking_confirmation",
			match: stageWithKeyword(model.StageBooking, "book"),
			apply: e.handleBookingConfirmation,
		},
		{
			name:  "itinerary_planning",
			match: stageWithKeyword(model.StageThankYou, "thank"),
			apply: e.handleItineraryPlanning,
		},
		{
			name:  "open_conversation",
			match: stageIs(model.StageWrapUp),
			apply: e.handleOpenConversation,
		},
	}
	return e
}

// Advance runs one turn of the conversation. The passed state is mutated in
// place and also returned inside the Result; a nil state starts a fresh
// conversation. Collaborator failures other than the responder's propagate to
// the caller as request-level errors.
func (e *Engine) Advance(ctx context.Context, state *model.ConversationState, message string) (*Result, error) {
	if state == nil {
		state = model.NewConversationState()
	}
	state.Stage = state.Stage.Normalize()
	lower := strings.ToLower(message)

	for _, t := range e.table {
		if !t.match(state.Stage, lower) {
			continue
		}
		res, err := t.apply(ctx, state, message, lower)
		if err != nil {
			return nil, err
		}
		res.Stage = state.Stage
		res.State = state
		logx.Debug().Str("transition", t.name).Str("stage", state.Stage.String()).Msg("conversation advanced")
		return res, nil
	}

	return e.reprompt(state), nil
}

func stageIs(want model.ConversationStage) func(model.ConversationStage, string) bool {
	return func(stage model.ConversationStage, _ string) bool {
		return stage == want
	}
}

func stageWithKeyword(want model.ConversationStage, keyword string) func(model.ConversationStage, string) bool {
	return func(stage model.ConversationStage, lower string) bool {
		return stage == want && strings.Contains(lower, keyword)
	}
}
