package model

// ConversationStage identifies where a conversation sits in the scripted
// booking flow. Stages only move forward; WrapUp is absorbing.
type ConversationStage string

const (
	StageInitial           ConversationStage = "initial"
	StageDatesAndDeparture ConversationStage = "dates_and_departure"
	StageBooking           ConversationStage = "booking"
	StageThankYou          ConversationStage = "thank_you"
	StageWrapUp            ConversationStage = "wrap_up"
)

// String returns the wire representation of the stage.
func (s ConversationStage) String() string {
	return string(s)
}

// Normalize maps the empty value (fresh or omitted state) to StageInitial and
// leaves known stages untouched. Unknown values also fall back to StageInitial
// so a mangled client payload restarts the script instead of wedging it.
func (s ConversationStage) Normalize() ConversationStage {
	switch s {
	case StageInitial, StageDatesAndDeparture, StageBooking, StageThankYou, StageWrapUp:
		return s
	default:
		return StageInitial
	}
}
