// Copyright 2025 The Claw Control Authors
// SPDX-License-Identifier: Apache-2.0

// Package tripplan holds the static trip-planning dataset and its
// terminal renderer: three candidate destinations for the March 2026
// group trip, with day-by-day itineraries, per-tier pricing and
// per-origin flight costs.
package tripplan

import (
	"fmt"
	"strings"
	"time"
)

// PriceTier selects one of the three budget levels every cost in the
// dataset is quoted at.
type PriceTier string

const (
	TierBudget  PriceTier = "budget"
	TierMid     PriceTier = "mid"
	TierPremium PriceTier = "premium"
)

// Tiers returns the price tiers in display order.
func Tiers() []PriceTier {
	return []PriceTier{TierBudget, TierMid, TierPremium}
}

// Valid reports whether t is one of the known price tiers.
func (t PriceTier) Valid() bool {
	switch t {
	case TierBudget, TierMid, TierPremium:
		return true
	}
	return false
}

func (t PriceTier) String() string { return string(t) }

// TimeOfDay slots each activity into one third of the day.
type TimeOfDay string

const (
	Morning   TimeOfDay = "morning"
	Afternoon TimeOfDay = "afternoon"
	Evening   TimeOfDay = "evening"
)

func (t TimeOfDay) String() string { return string(t) }

// OriginCity is a departure city the group can fly out of.
type OriginCity string

const (
	Mumbai OriginCity = "Mumbai"
	Pune   OriginCity = "Pune"
	Indore OriginCity = "Indore"
)

// Origins returns the departure cities in display order.
func Origins() []OriginCity {
	return []OriginCity{Mumbai, Pune, Indore}
}

// Valid reports whether o is one of the known origin cities.
func (o OriginCity) Valid() bool {
	switch o {
	case Mumbai, Pune, Indore:
		return true
	}
	return false
}

func (o OriginCity) String() string { return string(o) }

// Recommendation grades how well a destination fits the trip window.
type Recommendation string

const (
	Recommended Recommendation = "recommended"
	Rushed      Recommendation = "rushed"
	Unavailable Recommendation = "unavailable"
)

func (r Recommendation) String() string { return string(r) }

// Cost quotes a single line item at all three price tiers, in INR per
// person.
type Cost struct {
	Budget  int `json:"budget"`
	Mid     int `json:"mid"`
	Premium int `json:"premium"`
}

// ForTier returns the amount for the given tier. Unknown tiers fall
// back to the mid price.
func (c Cost) ForTier(tier PriceTier) int {
	switch tier {
	case TierBudget:
		return c.Budget
	case TierPremium:
		return c.Premium
	default:
		return c.Mid
	}
}

// Weather is the expected conditions during the trip window.
type Weather struct {
	Temp      string `json:"temp"`
	Condition string `json:"condition"`
}

// Activity is one entry in a day's plan.
type Activity struct {
	Time        TimeOfDay `json:"time"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Duration    string    `json:"duration"`
	Cost        Cost      `json:"cost"`
	MustDo      bool      `json:"mustDo,omitzero"`
	CanSkip     bool      `json:"canSkip,omitzero"`
	Transport   string    `json:"transport,omitzero"`
	Tip         string    `json:"tip,omitzero"`
}

// DayPlan groups a day's activities under a headline.
type DayPlan struct {
	Day        int        `json:"day"`
	Title      string     `json:"title"`
	Activities []Activity `json:"activities"`
}

// Destination is one candidate trip with its full itinerary.
type Destination struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Country            string             `json:"country"`
	Recommendation     Recommendation     `json:"recommendation"`
	RecommendationText string             `json:"recommendationText"`
	Weather            Weather            `json:"weather"`
	PriceRange         Cost               `json:"priceRange"`
	FlightCosts        map[OriginCity]int `json:"flightCosts"`
	StayCost           string             `json:"stayCost"`
	Duration           string             `json:"duration"`
	Highlights         []string           `json:"highlights"`
	Notes              []string           `json:"notes,omitzero"`
	SeasonInfo         string             `json:"seasonInfo,omitzero"`
	Itinerary          []DayPlan          `json:"itinerary"`
}

// GroupSize is the headcount all group totals are computed for.
const GroupSize = 6

// TripStart is the first day of the trip window.
var TripStart = time.Date(2026, time.March, 21, 0, 0, 0, 0, time.UTC)

// DayDate returns the calendar date label for the given itinerary day,
// counted from TripStart.
func DayDate(day int) string {
	return TripStart.AddDate(0, 0, day-1).Format("Mon, Jan 2")
}

// PerPerson returns the approximate per-person trip cost at the given
// tier.
func (d *Destination) PerPerson(tier PriceTier) int {
	return d.PriceRange.ForTier(tier)
}

// GroupTotal returns the approximate cost for the whole group at the
// given tier.
func (d *Destination) GroupTotal(tier PriceTier) int {
	return d.PriceRange.ForTier(tier) * GroupSize
}

// FlightCost returns the round-trip airfare per person from the given
// origin, or 0 when the origin is unknown.
func (d *Destination) FlightCost(origin OriginCity) int {
	return d.FlightCosts[origin]
}

// ActivityTotal sums every itinerary line item at the given tier. It
// runs higher than PerPerson for destinations where stay cost is quoted
// separately.
func (d *Destination) ActivityTotal(tier PriceTier) int {
	total := 0
	for _, day := range d.Itinerary {
		for _, a := range day.Activities {
			total += a.Cost.ForTier(tier)
		}
	}
	return total
}

// Days returns the number of itinerary days.
func (d *Destination) Days() int { return len(d.Itinerary) }

// DisplayTransport returns the transport label for an activity,
// swapping taxi and car legs for motorcycles when the Ladakh rental
// option is on.
func (d *Destination) DisplayTransport(a Activity, withMotorcycle bool) string {
	if withMotorcycle && d.ID == "ladakh" &&
		(strings.Contains(a.Transport, "Taxi") || strings.Contains(a.Transport, "Car")) {
		return "Motorcycle"
	}
	return a.Transport
}

// FormatINR renders an amount as a rupee string with thousands
// separators, e.g. "₹18,000".
func FormatINR(amount int) string {
	s := fmt.Sprintf("%d", amount)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString("₹")
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
		if len(s) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(s); i += 3 {
		b.WriteString(s[i : i+3])
		if i+3 < len(s) {
			b.WriteByte(',')
		}
	}
	return b.String()
}

// FormatINRCompact renders an amount in thousands, e.g. "₹45K".
func FormatINRCompact(amount int) string {
	return fmt.Sprintf("₹%dK", amount/1000)
}
