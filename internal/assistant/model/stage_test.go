package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStageNormalize(t *testing.T) {
	assert.Equal(t, StageInitial, ConversationStage("").Normalize())
	assert.Equal(t, StageInitial, ConversationStage("garbage").Normalize())
	assert.Equal(t, StageBooking, StageBooking.Normalize())
	assert.Equal(t, StageWrapUp, StageWrapUp.Normalize())
}

func TestNewConversationState(t *testing.T) {
	st := NewConversationState()

	assert.Equal(t, StageInitial, st.Stage)
	assert.NotNil(t, st.Messages)
	assert.Empty(t, st.Messages)
	assert.Zero(t, st.Budget)
	assert.Empty(t, st.Origin)
	assert.Nil(t, st.Flights)
	assert.Nil(t, st.Itinerary)
}
