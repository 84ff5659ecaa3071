package opendata

// ---- Request/Response types of the transport.opendata.ch v1 API ----

// ConnectionsResponse is the body of GET /connections.
type ConnectionsResponse struct {
	Connections []Connection `json:"connections"`
	From        *Location    `json:"from"`
	To          *Location    `json:"to"`
}

// Location is a station, address or point of interest.
type Location struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Checkpoint is a stop with its times, e.g. "2024-05-01T15:32:00+0200".
type Checkpoint struct {
	Station   Location `json:"station"`
	Arrival   *string  `json:"arrival"`
	Departure *string  `json:"departure"`
	Platform  *string  `json:"platform"`
}

// Connection is a connection between two locations.
type Connection struct {
	From        Checkpoint `json:"from"`
	To          Checkpoint `json:"to"`
	Duration    string     `json:"duration"`
	Transfers   int        `json:"transfers"`
	Products    []string   `json:"products"`
	Capacity1st *int       `json:"capacity1st"`
	Capacity2nd *int       `json:"capacity2nd"`
	Sections    []Section  `json:"sections"`
}

// Section is a leg of a connection. Exactly one of Journey and Walk is set.
type Section struct {
	Journey   *Journey   `json:"journey"`
	Walk      *Walk      `json:"walk"`
	Departure Checkpoint `json:"departure"`
	Arrival   Checkpoint `json:"arrival"`
}

// Journey is the vehicle a section is ridden on.
type Journey struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Number      string `json:"number"`
	Operator    string `json:"operator"`
	To          string `json:"to"`
	Capacity1st *int   `json:"capacity1st"`
	Capacity2nd *int   `json:"capacity2nd"`
}

// Walk is a walking transfer, duration in seconds.
type Walk struct {
	Duration *int `json:"duration"`
}
