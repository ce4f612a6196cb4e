// Package itinerary holds the itinerary planner seam and the fixed four-day
// Dubai plan the demo serves.
package itinerary

import (
	"context"

	"github.com/travel-assistant-poc/server/internal/assistant/model"
	logx "github.com/travel-assistant-poc/server/pkg/logger"
)

// Planner is the demo itinerary collaborator. It returns an empty shell that
// the engine overwrites with the fixed plan; a real planning service would
// slot in behind the same interface.
type Planner struct{}

func NewPlanner() *Planner {
	return &Planner{}
}

func (p *Planner) Plan(ctx context.Context, req model.ItineraryRequest) ([]model.ItineraryDay, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logx.Debug().
		Str("destination", req.Destination).
		Strs("preferences", req.Preferences).
		Msg("itinerary shell requested")
	return []model.ItineraryDay{}, nil
}

var _ model.ItineraryPlanner = (*Planner)(nil)
