package repository

import (
	"context"
	"net/url"

	"fahrplan/internal/model"
)

// TimetableRepository is the interface for timetable service access.
type TimetableRepository interface {
	FetchConnections(ctx context.Context, params url.Values) (model.Timetable, error)
}
