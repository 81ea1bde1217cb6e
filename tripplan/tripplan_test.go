// Copyright 2025 The Claw Control Authors
// SPDX-License-Identifier: Apache-2.0

package tripplan

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCostForTier(t *testing.T) {
	t.Parallel()

	c := Cost{Budget: 100, Mid: 200, Premium: 300}

	tests := map[string]struct {
		tier PriceTier
		want int
	}{
		"budget":            {tier: TierBudget, want: 100},
		"mid":               {tier: TierMid, want: 200},
		"premium":           {tier: TierPremium, want: 300},
		"unknown falls mid": {tier: PriceTier("luxury"), want: 200},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if got := c.ForTier(tc.tier); got != tc.want {
				t.Errorf("ForTier(%q) = %d, want %d", tc.tier, got, tc.want)
			}
		})
	}
}

func TestFind(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		id       string
		wantName string
		wantNil  bool
	}{
		"varkala":   {id: "varkala", wantName: "Varkala"},
		"sri lanka": {id: "sri-lanka", wantName: "Sri Lanka"},
		"ladakh":    {id: "ladakh", wantName: "Ladakh"},
		"unknown":   {id: "goa", wantNil: true},
		"empty":     {id: "", wantNil: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			d := Find(tc.id)
			if tc.wantNil {
				if d != nil {
					t.Fatalf("Find(%q) = %v, want nil", tc.id, d)
				}
				return
			}
			if d == nil {
				t.Fatalf("Find(%q) = nil, want %q", tc.id, tc.wantName)
			}
			if d.Name != tc.wantName {
				t.Errorf("Find(%q).Name = %q, want %q", tc.id, d.Name, tc.wantName)
			}
		})
	}
}

func TestTripCosts(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		id         string
		tier       PriceTier
		origin     OriginCity
		perPerson  int
		groupTotal int
		flight     int
	}{
		"varkala mid from mumbai": {
			id: "varkala", tier: TierMid, origin: Mumbai,
			perPerson: 32000, groupTotal: 192000, flight: 8000,
		},
		"varkala budget from indore": {
			id: "varkala", tier: TierBudget, origin: Indore,
			perPerson: 25000, groupTotal: 150000, flight: 13000,
		},
		"sri lanka premium from pune": {
			id: "sri-lanka", tier: TierPremium, origin: Pune,
			perPerson: 70000, groupTotal: 420000, flight: 22000,
		},
		"ladakh mid from mumbai": {
			id: "ladakh", tier: TierMid, origin: Mumbai,
			perPerson: 45000, groupTotal: 270000, flight: 15000,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			d := Find(tc.id)
			if d == nil {
				t.Fatalf("Find(%q) = nil", tc.id)
			}
			if got := d.PerPerson(tc.tier); got != tc.perPerson {
				t.Errorf("PerPerson(%q) = %d, want %d", tc.tier, got, tc.perPerson)
			}
			if got := d.GroupTotal(tc.tier); got != tc.groupTotal {
				t.Errorf("GroupTotal(%q) = %d, want %d", tc.tier, got, tc.groupTotal)
			}
			if got := d.FlightCost(tc.origin); got != tc.flight {
				t.Errorf("FlightCost(%q) = %d, want %d", tc.origin, got, tc.flight)
			}
		})
	}
}

func TestFlightCostUnknownOrigin(t *testing.T) {
	t.Parallel()

	if got := Find("varkala").FlightCost(OriginCity("Delhi")); got != 0 {
		t.Errorf("FlightCost(Delhi) = %d, want 0", got)
	}
}

func TestDatasetShape(t *testing.T) {
	t.Parallel()

	dests := Destinations()
	wantIDs := []string{"varkala", "sri-lanka", "ladakh"}
	gotIDs := make([]string, 0, len(dests))
	for _, d := range dests {
		gotIDs = append(gotIDs, d.ID)
	}
	if diff := cmp.Diff(wantIDs, gotIDs); diff != "" {
		t.Fatalf("destination order mismatch (-want +got):\n%s", diff)
	}

	for _, d := range dests {
		t.Run(d.ID, func(t *testing.T) {
			t.Parallel()
			for _, o := range Origins() {
				if _, ok := d.FlightCosts[o]; !ok {
					t.Errorf("missing flight cost for origin %s", o)
				}
			}
			if d.PriceRange.Budget > d.PriceRange.Mid || d.PriceRange.Mid > d.PriceRange.Premium {
				t.Errorf("price tiers out of order: %+v", d.PriceRange)
			}
			for i, day := range d.Itinerary {
				if day.Day != i+1 {
					t.Errorf("day %d labeled %d", i+1, day.Day)
				}
				if len(day.Activities) == 0 {
					t.Errorf("day %d has no activities", day.Day)
				}
				for _, a := range day.Activities {
					if a.Time != Morning && a.Time != Afternoon && a.Time != Evening {
						t.Errorf("day %d activity %q has bad time %q", day.Day, a.Title, a.Time)
					}
					if a.MustDo && a.CanSkip {
						t.Errorf("day %d activity %q is both must-do and skippable", day.Day, a.Title)
					}
				}
			}
			for _, tier := range Tiers() {
				if d.ActivityTotal(tier) <= 0 {
					t.Errorf("ActivityTotal(%s) not positive", tier)
				}
			}
			if d.ActivityTotal(TierBudget) > d.ActivityTotal(TierPremium) {
				t.Error("budget activity total exceeds premium")
			}
		})
	}
}

func TestDayDate(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		day  int
		want string
	}{
		"first day": {day: 1, want: "Sat, Mar 21"},
		"mid trip":  {day: 3, want: "Mon, Mar 23"},
		"last day":  {day: 6, want: "Thu, Mar 26"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if got := DayDate(tc.day); got != tc.want {
				t.Errorf("DayDate(%d) = %q, want %q", tc.day, got, tc.want)
			}
		})
	}
}

func TestDisplayTransport(t *testing.T) {
	t.Parallel()

	ladakh := Find("ladakh")
	varkala := Find("varkala")

	tests := map[string]struct {
		dest           *Destination
		transport      string
		withMotorcycle bool
		want           string
	}{
		"ladakh taxi swapped":     {dest: ladakh, transport: "Taxi/SUV", withMotorcycle: true, want: "Motorcycle"},
		"ladakh car swapped":      {dest: ladakh, transport: "Private Car", withMotorcycle: true, want: "Motorcycle"},
		"ladakh flight kept":      {dest: ladakh, transport: "Flight", withMotorcycle: true, want: "Flight"},
		"ladakh toggle off":       {dest: ladakh, transport: "Taxi/SUV", withMotorcycle: false, want: "Taxi/SUV"},
		"other destination kept":  {dest: varkala, transport: "Taxi", withMotorcycle: true, want: "Taxi"},
		"no transport stays none": {dest: ladakh, transport: "", withMotorcycle: true, want: ""},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got := tc.dest.DisplayTransport(Activity{Transport: tc.transport}, tc.withMotorcycle)
			if got != tc.want {
				t.Errorf("DisplayTransport(%q, %v) = %q, want %q", tc.transport, tc.withMotorcycle, got, tc.want)
			}
		})
	}
}

func TestFormatINR(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		amount int
		want   string
	}{
		"zero":      {amount: 0, want: "₹0"},
		"hundreds":  {amount: 800, want: "₹800"},
		"thousands": {amount: 8000, want: "₹8,000"},
		"lakhs":     {amount: 192000, want: "₹192,000"},
		"exact":     {amount: 1000, want: "₹1,000"},
		"negative":  {amount: -500, want: "-₹500"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if got := FormatINR(tc.amount); got != tc.want {
				t.Errorf("FormatINR(%d) = %q, want %q", tc.amount, got, tc.want)
			}
		})
	}
}

func TestFormatINRCompact(t *testing.T) {
	t.Parallel()

	if got := FormatINRCompact(45000); got != "₹45K" {
		t.Errorf("FormatINRCompact(45000) = %q, want ₹45K", got)
	}
}
