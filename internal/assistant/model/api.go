package model

// ChatRequest is the body of POST /api/chat. ConversationState is nil on the
// first turn; ConversationID is optional and only keys the transcript mirror.
type ChatRequest struct {
	Message           string             `json:"message" binding:"required"`
	ConversationState *ConversationState `json:"conversation_state"`
	ConversationID    string             `json:"conversation_id"`
}

// ChatResponse is the body returned by POST /api/chat. AudioResponse is
// base64-encoded audio and degrades to "" when synthesis fails or is not
// configured. TravelOptions and Itinerary serialize as null on turns that
// produce no structured payload.
type ChatResponse struct {
	TextResponse             string             `json:"text_response"`
	AudioResponse            string             `json:"audio_response"`
	UpdatedConversationState *ConversationState `json:"updated_conversation_state"`
	TravelOptions            *TravelOptions     `json:"travel_options"`
	Itinerary                []ItineraryDay     `json:"itinerary"`
	CurrentStage             ConversationStage  `json:"current_stage"`
	ConversationID           string             `json:"conversation_id"`
}
