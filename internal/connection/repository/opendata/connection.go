package opendata

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"fahrplan/internal/connection"
	"fahrplan/internal/model"
)

// timestampLayout is the API's ISO 8601 form, e.g. "2024-05-01T15:32:00+0200".
const timestampLayout = "2006-01-02T15:04:05-0700"

func (r *implRepository) FetchConnections(ctx context.Context, params url.Values) (model.Timetable, error) {
	key := params.Encode()
	if r.cache != nil {
		if tt, ok := r.cache.Get(key); ok {
			r.l.Debugf(ctx, "opendata repository: cache hit for %s", key)
			return tt, nil
		}
	}

	resp, err := r.client.GetConnections(ctx, params)
	if err != nil {
		r.l.Debugf(ctx, "opendata repository: failed to fetch connections: %v", err)
		return model.Timetable{}, err
	}

	tt, err := toTimetable(resp)
	if err != nil {
		return model.Timetable{}, err
	}

	if r.cache != nil {
		r.cache.Add(key, tt)
	}
	return tt, nil
}

func toTimetable(resp *ConnectionsResponse) (model.Timetable, error) {
	tt := model.Timetable{
		Connections: make([]model.Connection, 0, len(resp.Connections)),
	}
	if resp.From != nil {
		tt.From = resp.From.Name
	}
	if resp.To != nil {
		tt.To = resp.To.Name
	}

	for i, c := range resp.Connections {
		conn, err := toConnection(c)
		if err != nil {
			return model.Timetable{}, fmt.Errorf("%w: connection %d: %v", connection.ErrInvalidResponse, i, err)
		}
		tt.Connections = append(tt.Connections, conn)
	}
	return tt, nil
}

func toConnection(c Connection) (model.Connection, error) {
	from, err := toCheckpoint(c.From)
	if err != nil {
		return model.Connection{}, err
	}
	to, err := toCheckpoint(c.To)
	if err != nil {
		return model.Connection{}, err
	}

	conn := model.Connection{
		From:        from,
		To:          to,
		Transfers:   c.Transfers,
		Products:    c.Products,
		Capacity1st: c.Capacity1st,
		Capacity2nd: c.Capacity2nd,
		Sections:    make([]model.Section, 0, len(c.Sections)),
	}

	for _, s := range c.Sections {
		dep, err := toCheckpoint(s.Departure)
		if err != nil {
			return model.Connection{}, err
		}
		arr, err := toCheckpoint(s.Arrival)
		if err != nil {
			return model.Connection{}, err
		}

		section := model.Section{
			Departure: dep,
			Arrival:   arr,
			Walk:      s.Walk != nil,
		}
		if s.Journey != nil {
			section.Journey = s.Journey.Name
			section.Capacity1st = s.Journey.Capacity1st
			section.Capacity2nd = s.Journey.Capacity2nd
		}
		conn.Sections = append(conn.Sections, section)
	}
	return conn, nil
}

func toCheckpoint(cp Checkpoint) (model.Checkpoint, error) {
	out := model.Checkpoint{Station: cp.Station.Name}
	if cp.Platform != nil {
		out.Platform = *cp.Platform
	}

	var err error
	if out.Departure, err = parseTimestamp(cp.Departure); err != nil {
		return model.Checkpoint{}, err
	}
	if out.Arrival, err = parseTimestamp(cp.Arrival); err != nil {
		return model.Checkpoint{}, err
	}
	return out, nil
}

func parseTimestamp(s *string) (time.Time, error) {
	if s == nil || *s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(timestampLayout, *s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", *s, err)
	}
	return t, nil
}
