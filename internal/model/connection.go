package model

import "time"

// Checkpoint is a stop of a connection or section.
type Checkpoint struct {
	Station  string
	Platform string
	// Departure and Arrival are zero when the API leaves them out.
	Departure time.Time
	Arrival   time.Time
}

// Section is one leg of a connection: a ride on a journey or a walk.
type Section struct {
	Departure Checkpoint
	Arrival   Checkpoint
	Journey   string // Journey name, e.g. "IC 1 722"
	Walk      bool
	// Capacity1st and Capacity2nd are nil when the API reports no load forecast.
	Capacity1st *int
	Capacity2nd *int
}

// Connection is a single connection as returned by the timetable service.
type Connection struct {
	From        Checkpoint
	To          Checkpoint
	Transfers   int
	Products    []string
	Capacity1st *int
	Capacity2nd *int
	Sections    []Section
}

// Timetable is the answer of the timetable service to one connections query.
type Timetable struct {
	From        string // Resolved departure station name
	To          string // Resolved arrival station name
	Connections []Connection
}

// Itinerary is a connection shaped for display.
type Itinerary struct {
	Changes    int
	TravelWith string
	Duration   time.Duration
	Legs       []Leg
}

// Leg is a displayable part of an itinerary.
type Leg struct {
	StationFrom  string
	StationTo    string
	PlatformFrom string
	PlatformTo   string
	Departure    time.Time
	Arrival      time.Time
	Occupancy1st string // "", "Low", "Medium" or "High"
	Occupancy2nd string
}
