package query

import "net/url"

// Language is a supported query language code.
type Language string

const (
	// NoLanguage is returned when too few tokens were given to detect one.
	NoLanguage Language = ""
	English    Language = "en"
	German     Language = "de"
	French     Language = "fr"
)

// Field is a canonical field name of a raw query.
type Field string

const (
	FieldFrom      Field = "from"
	FieldTo        Field = "to"
	FieldVia       Field = "via"
	FieldDeparture Field = "departure"
	FieldArrival   Field = "arrival"
)

// Keys of a normalized Request, as expected by the timetable API.
const (
	KeyFrom          = "from"
	KeyTo            = "to"
	KeyVia           = "via"
	KeyTime          = "time"
	KeyDate          = "date"
	KeyIsArrivalTime = "isArrivalTime"
)

// Fields is the raw result of keyword extraction, before time normalization.
type Fields map[Field]string

// Request is a normalized query. It never holds departure or arrival keys.
type Request map[string]string

// Values returns the request as URL query parameters.
func (r Request) Values() url.Values {
	v := make(url.Values, len(r))
	for key, value := range r {
		v.Set(key, value)
	}
	return v
}

// ExtractOptions controls field extraction.
type ExtractOptions struct {
	// Sloppy skips required-field and conflict validation.
	Sloppy bool
}

// ExtractOutput is the result of field extraction.
type ExtractOutput struct {
	Fields   Fields
	Language Language
}

// ParseOutput is the result of a full parse.
type ParseOutput struct {
	Request  Request
	Language Language
}
