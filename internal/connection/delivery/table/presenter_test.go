package table_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"fahrplan/internal/connection/delivery/table"
	"fahrplan/internal/model"
)

var cest = time.FixedZone("CEST", 2*60*60)

func itineraries() []model.Itinerary {
	return []model.Itinerary{
		{
			Changes:    1,
			TravelWith: "IR 15, S 3",
			Duration:   78 * time.Minute,
			Legs: []model.Leg{
				{
					StationFrom: "Bern", StationTo: "Olten", PlatformFrom: "7", PlatformTo: "8",
					Departure:    time.Date(2024, 5, 1, 15, 2, 0, 0, cest),
					Arrival:      time.Date(2024, 5, 1, 15, 28, 0, 0, cest),
					Occupancy1st: "Low", Occupancy2nd: "High",
				},
				{
					StationFrom: "Olten", StationTo: "Zürich HB", PlatformFrom: "12",
					Departure: time.Date(2024, 5, 1, 15, 35, 0, 0, cest),
					Arrival:   time.Date(2024, 5, 1, 16, 20, 0, 0, cest),
				},
			},
		},
		{
			Changes:    0,
			TravelWith: "ICE 72",
			Duration:   26*time.Hour + 5*time.Minute,
			Legs: []model.Leg{{
				StationFrom: "Basel SBB", StationTo: "Hamburg Hbf", PlatformFrom: "4",
				Departure:    time.Date(2024, 5, 1, 23, 13, 0, 0, cest),
				Arrival:      time.Date(2024, 5, 3, 1, 18, 0, 0, cest),
				Occupancy2nd: "Medium",
			}},
		},
	}
}

func TestRows(t *testing.T) {
	want := [][]string{
		{"1", "Bern", "7", "Wed, 01.05.24", "15:02", "1:18", "1", "IR 15, S 3", "1: Low"},
		{"", "Olten", "8", "Wed, 01.05.24", "15:28", "", "", "", "2: High"},
		{"", "Olten", "12", "Wed, 01.05.24", "15:35", "", "", "", "-"},
		{"", "Zürich HB", "-", "Wed, 01.05.24", "16:20", "", "", "", "-"},
		{"2", "Basel SBB", "4", "Wed, 01.05.24", "23:13", "26:05", "0", "ICE 72", "-"},
		{"", "Hamburg Hbf", "-", "Fri, 03.05.24", "01:18", "", "", "", "2: Medium"},
	}

	if diff := cmp.Diff(want, table.Rows(itineraries())); diff != "" {
		t.Errorf("Rows() mismatch (-want +got):\n%s", diff)
	}
}

func TestRows_Empty(t *testing.T) {
	assert.Empty(t, table.Rows(nil))
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	table.Render(&buf, itineraries())

	out := buf.String()
	headerLine := strings.Split(out, "\n")[1]
	for _, col := range table.Header {
		assert.Contains(t, headerLine, col)
	}
	assert.Contains(t, out, "Zürich HB")
	assert.Contains(t, out, "2: Medium")
	assert.Contains(t, out, "Fri, 03.05.24")
}
