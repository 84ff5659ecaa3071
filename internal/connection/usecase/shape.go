package usecase

import (
	"sort"
	"strings"

	"fahrplan/internal/model"
)

const walkProduct = "Walk"

// shape turns a connection into an itinerary. In summary mode the itinerary
// has a single leg from the first section's departure to the last arrival.
func shape(c model.Connection, full bool) model.Itinerary {
	it := model.Itinerary{
		Changes:    c.Transfers,
		TravelWith: strings.Join(c.Products, ", "),
	}

	if full {
		walk := false
		for _, s := range sortedSections(c.Sections) {
			it.Legs = append(it.Legs, sectionLeg(s, c))
			walk = walk || s.Walk
		}
		if walk {
			it.TravelWith = joinProduct(it.TravelWith, walkProduct)
		}
	} else {
		it.Legs = []model.Leg{summaryLeg(c)}
	}

	if n := len(it.Legs); n > 0 {
		it.Duration = it.Legs[n-1].Arrival.Sub(it.Legs[0].Departure)
	}
	return it
}

// summaryLeg spans the first to the last section. Load forecasts come from
// the connection as a whole.
func summaryLeg(c model.Connection) model.Leg {
	sections := sortedSections(c.Sections)
	var leg model.Leg
	if len(sections) == 0 {
		leg = model.Leg{
			StationFrom:  c.From.Station,
			StationTo:    c.To.Station,
			PlatformFrom: c.From.Platform,
			PlatformTo:   c.To.Platform,
			Departure:    c.From.Departure,
			Arrival:      c.To.Arrival,
		}
	} else {
		leg = sectionLeg(sections[0], c)
		last := sectionLeg(sections[len(sections)-1], c)
		leg.StationTo = last.StationTo
		leg.PlatformTo = last.PlatformTo
		leg.Arrival = last.Arrival
	}
	leg.Occupancy1st = occupancy(c.Capacity1st)
	leg.Occupancy2nd = occupancy(c.Capacity2nd)
	return leg
}

func sortedSections(sections []model.Section) []model.Section {
	out := make([]model.Section, len(sections))
	copy(out, sections)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Departure.Departure.Before(out[j].Departure.Departure)
	})
	return out
}

func sectionLeg(s model.Section, c model.Connection) model.Leg {
	leg := model.Leg{
		StationFrom:  s.Departure.Station,
		StationTo:    s.Arrival.Station,
		PlatformFrom: s.Departure.Platform,
		PlatformTo:   s.Arrival.Platform,
		Departure:    s.Departure.Departure,
		Arrival:      s.Arrival.Arrival,
	}

	switch {
	case s.Walk:
		leg.PlatformFrom = ""
	case s.Journey != "":
		leg.Occupancy1st = occupancy(s.Capacity1st)
		leg.Occupancy2nd = occupancy(s.Capacity2nd)
	default:
		leg.Occupancy1st = occupancy(c.Capacity1st)
		leg.Occupancy2nd = occupancy(c.Capacity2nd)
	}
	return leg
}

// occupancy maps a load forecast of the API to a label.
func occupancy(capacity *int) string {
	if capacity == nil {
		return ""
	}
	switch *capacity {
	case 0, 1:
		return "Low"
	case 2:
		return "Medium"
	case 3:
		return "High"
	default:
		return ""
	}
}

func joinProduct(products, product string) string {
	if products == "" {
		return product
	}
	return products + ", " + product
}
