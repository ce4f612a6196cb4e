package engine

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/schema"

	"github.com/travel-assistant-poc/server/internal/assistant/itinerary"
	"github.com/travel-assistant-poc/server/internal/assistant/model"
	logx "github.com/travel-assistant-poc/server/pkg/logger"
)

// Fixed demo trip: the script always books Lahore to Dubai for the same week.
const (
	tripOrigin      = "Lahore"
	tripDestination = "Dubai"
	tripStartDate   = "2025-05-20"
	tripEndDate     = "2025-05-27"

	departureAirport = "LHE"
	arrivalAirport   = "DXB"
	tripCurrency     = "AED"

	// Shares of the stated budget passed to the searches as advisory ceilings.
	flightBudgetShare = 0.4
	hotelBudgetShare  = 0.3
)

const (
	replyDestinationPrompt = "Sounds fun! Dubai is a great place to visit. When are you planning to travel, and from where? Also, what's your budget for this trip?"

	replyBookingConfirmed = "Perfect! I've booked your selected options and sent the confirmation details to your email. Make sure to check your email for the booking details."

	replyItineraryIntro = "You're welcome! I have also planned your trip's itinerary. I've been analyzing your preferences from your browsing history and noticed you've been searching a lot about padel tennis. I've taken the initiative to include some padel activities in your itinerary. Also, I noticed there's some rain forecasted for one of the days, so I've adjusted the schedule to make the most of the good weather days."

	replyItinerarySummary = "I've planned an amazing 4-day adventure for you in Dubai! You'll experience the best of everything - from the iconic Burj Khalifa and desert adventures to your special padel day and a luxurious finale at Atlantis. I've made sure to include all your interests while keeping the schedule balanced and enjoyable. Each day has been carefully planned to give you the best experience possible!"

	replyResponderFailure = "I'm sorry, I encountered an error. Please try again."

	promptProvideDates   = "Please provide your travel dates and budget for Dubai."
	promptSelectOptions  = "Please select a flight and hotel to book."
	promptOfferItinerary = "Let me know if you'd like me to plan your itinerary."
	promptInviteDubai    = "I'm here to help you plan your trip to Dubai. Would you like to visit Dubai?"
)

const (
	confirmationSubject   = "Your Booking Confirmation"
	confirmationBody      = "Your flight and hotel have been booked. Boarding pass and hotel voucher attached."
	confirmationRecipient = "traveler@example.com"
)

// handleDestinationInterest fires on any mention of visiting Dubai, from any
// stage. It restarts the scripted flow, dropping the message log and any
// progress made so far.
func (e *Engine) handleDestinationInterest(_ context.Context, state *model.ConversationState, _, _ string) (*Result, error) {
	state.Stage = model.StageDatesAndDeparture
	state.Messages = []*schema.Message{}
	return &Result{Reply: replyDestinationPrompt}, nil
}

// handleTripParameters extracts the budget from the message, pins the demo
// trip parameters, and runs both searches with budget-derived advisory price
// ceilings. The results are cached on the state for the rest of the
// conversation.
func (e *Engine) handleTripParameters(ctx context.Context, state *model.ConversationState, _, lower string) (*Result, error) {
	budget := parseBudget(lower)
	state.Budget = budget
	state.Origin = tripOrigin
	state.Destination = tripDestination
	state.StartDate = tripStartDate
	state.EndDate = tripEndDate

	flights, err := e.flights.SearchFlights(ctx, model.FlightQuery{
		DepartureID:  departureAirport,
		ArrivalID:    arrivalAirport,
		OutboundDate: tripStartDate,
		ReturnDate:   tripEndDate,
		Currency:     tripCurrency,
		MaxPrice:     float64(budget) * flightBudgetShare,
	})
	if err != nil {
		return nil, fmt.Errorf("search flights: %w", err)
	}

	hotels, err := e.hotels.SearchHotels(ctx, model.HotelQuery{
		Location: tripDestination,
		CheckIn:  tripStartDate,
		CheckOut: tripEndDate,
		Guests:   2,
		Currency: tripCurrency,
		MaxPrice: float64(budget) * hotelBudgetShare,
	})
	if err != nil {
		return nil, fmt.Errorf("search hotels: %w", err)
	}

	state.Flights = flights
	state.Hotels = hotels
	state.Stage = model.StageBooking

	reply := fmt.Sprintf("Great! I've found some amazing options for your trip from Lahore to Dubai within your budget of %d AED. I'll recommend choosing Emirates as they have more flights and better prices and they won the best airline award in 2024.", budget)

	return &Result{
		Reply: reply,
		TravelOptions: &model.TravelOptions{
			Flights: flights,
			Hotels:  hotels,
		},
	}, nil
}

// handleBookingConfirmation confirms whatever the user selected and sends the
// simulated confirmation email.
func (e *Engine) handleBookingConfirmation(ctx context.Context, state *model.ConversationState, _, _ string) (*Result, error) {
	if err := e.email.Send(ctx, model.Confirmation{
		Subject: confirmationSubject,
		Body:    confirmationBody,
		To:      confirmationRecipient,
	}); err != nil {
		return nil, fmt.Errorf("send confirmation email: %w", err)
	}
	state.Stage = model.StageThankYou
	return &Result{Reply: replyBookingConfirmed}, nil
}

// handleItineraryPlanning asks the planner collaborator for an itinerary
// shell, then overwrites it with the fixed four-day Dubai plan. The shell call
// is kept so a real planner can be swapped in at the same seam.
func (e *Engine) handleItineraryPlanning(ctx context.Context, state *model.ConversationState, _, _ string) (*Result, error) {
	if _, err := e.planner.Plan(ctx, model.ItineraryRequest{
		Destination: tripDestination,
		StartDate:   tripStartDate,
		EndDate:     "2025-05-23",
		Preferences: []string{"beach", "shopping", "culture", "fine dining", "adventure", "luxury", "padel"},
		Budget:      float64(state.Budget) * hotelBudgetShare,
		GroupSize:   2,
	}); err != nil {
		return nil, fmt.Errorf("plan itinerary: %w", err)
	}

	days := itinerary.Dubai4Day()
	state.Itinerary = days
	state.Stage = model.StageWrapUp

	return &Result{
		Reply:     replyItineraryIntro + "\n\n" + replyItinerarySummary,
		Itinerary: days,
	}, nil
}

// handleOpenConversation hands the turn to the language-model responder with
// the full running transcript. The responder is the one collaborator allowed
// to fail softly: its errors become a fixed apology and the turn still counts.
func (e *Engine) handleOpenConversation(ctx context.Context, state *model.ConversationState, message, _ string) (*Result, error) {
	if state.Messages == nil {
		state.Messages = []*schema.Message{}
	}
	state.Messages = append(state.Messages, schema.UserMessage(message))

	reply, err := e.responder.Respond(ctx, state.Messages)
	if err != nil {
		logx.Error().Err(err).Msg("responder failed, replying with apology")
		reply = replyResponderFailure
	}
	state.Messages = append(state.Messages, schema.AssistantMessage(reply, nil))

	return &Result{Reply: reply}, nil
}

// reprompt returns the fixed per-stage nudge when no transition matched.
func (e *Engine) reprompt(state *model.ConversationState) *Result {
	var reply string
	switch state.Stage {
	case model.StageDatesAndDeparture:
		reply = promptProvideDates
	case model.StageBooking:
		reply = promptSelectOptions
	case model.StageThankYou:
		reply = promptOfferItinerary
	default:
		reply = promptInviteDubai
	}
	return &Result{Reply: reply, Stage: state.Stage, State: state}
}
