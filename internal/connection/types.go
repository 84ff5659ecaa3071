package connection

import (
	"fahrplan/internal/model"
	"fahrplan/internal/query"
)

// SearchInput is the input for Search.
type SearchInput struct {
	Request query.Request
	// Full keeps every section of a connection instead of one summary leg.
	Full bool
}

// SearchOutput is the output of Search.
type SearchOutput struct {
	From        string
	To          string
	Itineraries []model.Itinerary
}
