package usecase

import (
	"context"
	"strconv"

	"fahrplan/internal/connection"
	"fahrplan/internal/model"
	"fahrplan/internal/query"
)

// Search fetches the connections matching a parsed query and shapes them for display.
func (uc *implUseCase) Search(ctx context.Context, input connection.SearchInput) (connection.SearchOutput, error) {
	params := input.Request.Values()
	if uc.limit > 0 {
		params.Set("limit", strconv.Itoa(uc.limit))
	}

	tt, err := uc.repo.FetchConnections(ctx, params)
	if err != nil {
		return connection.SearchOutput{}, err
	}
	uc.l.Infof(ctx, "Found %d connections", len(tt.Connections))

	out := connection.SearchOutput{
		From:        tt.From,
		To:          tt.To,
		Itineraries: make([]model.Itinerary, 0, len(tt.Connections)),
	}
	if out.From == "" {
		out.From = input.Request[query.KeyFrom]
	}
	if out.To == "" {
		out.To = input.Request[query.KeyTo]
	}

	for _, c := range tt.Connections {
		out.Itineraries = append(out.Itineraries, shape(c, input.Full))
	}
	return out, nil
}
