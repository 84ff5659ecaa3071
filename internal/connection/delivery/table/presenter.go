package table

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"

	"fahrplan/internal/model"
)

const (
	dateLayout = "Mon, 02.01.06"
	timeLayout = "15:04"

	emptyPlatform  = "-"
	emptyOccupancy = "-"
)

// Header is the column header of the connections table.
var Header = []string{"#", "Station", "Platform", "Date", "Time", "Duration", "Chg.", "With", "Occupancy"}

// Render writes the itineraries to w as a table.
func Render(w io.Writer, its []model.Itinerary) {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader(Header)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)
	tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	tw.AppendBulk(Rows(its))
	tw.Render()
}

// Rows returns two table rows per leg: departure then arrival. Number,
// duration, changes and products are only shown on an itinerary's first row.
func Rows(its []model.Itinerary) [][]string {
	var rows [][]string
	for i, it := range its {
		for j, leg := range it.Legs {
			first := j == 0

			rows = append(rows, []string{
				ifFirst(first, strconv.Itoa(i+1)),
				leg.StationFrom,
				platform(leg.PlatformFrom),
				formatTime(leg.Departure, dateLayout),
				formatTime(leg.Departure, timeLayout),
				ifFirst(first, formatDuration(it.Duration)),
				ifFirst(first, strconv.Itoa(it.Changes)),
				ifFirst(first, it.TravelWith),
				occupancy(1, leg.Occupancy1st),
			})
			rows = append(rows, []string{
				"",
				leg.StationTo,
				platform(leg.PlatformTo),
				formatTime(leg.Arrival, dateLayout),
				formatTime(leg.Arrival, timeLayout),
				"",
				"",
				"",
				occupancy(2, leg.Occupancy2nd),
			})
		}
	}
	return rows
}

func ifFirst(first bool, s string) string {
	if first {
		return s
	}
	return ""
}

func platform(p string) string {
	if p == "" {
		return emptyPlatform
	}
	return p
}

func occupancy(class int, label string) string {
	if label == "" {
		return emptyOccupancy
	}
	return fmt.Sprintf("%d: %s", class, label)
}

func formatTime(t time.Time, layout string) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(layout)
}

// formatDuration renders d as H:MM.
func formatDuration(d time.Duration) string {
	if d < 0 {
		return ""
	}
	minutes := int(d.Round(time.Minute) / time.Minute)
	return fmt.Sprintf("%d:%02d", minutes/60, minutes%60)
}
