// Copyright 2025 The Claw Control Authors
// SPDX-License-Identifier: Apache-2.0

package tripplan

// Destinations returns the candidate trips in display order. The slice
// header is fresh on each call; the elements are shared.
func Destinations() []*Destination {
	return append([]*Destination(nil), destinations...)
}

// Find returns the destination with the given id, or nil.
func Find(id string) *Destination {
	for _, d := range destinations {
		if d.ID == id {
			return d
		}
	}
	return nil
}

var destinations = []*Destination{
	{
		ID:                 "varkala",
		Name:               "Varkala",
		Country:            "Kerala, India",
		Recommendation:     Recommended,
		RecommendationText: "Perfect for 5 days",
		Weather:            Weather{Temp: "28-32°C", Condition: "Sunny & Warm"},
		PriceRange:         Cost{Budget: 25000, Mid: 32000, Premium: 45000},
		FlightCosts:        map[OriginCity]int{Mumbai: 8000, Pune: 9500, Indore: 13000},
		StayCost:           "₹4K/night/room",
		Duration:           "5 Days",
		Highlights:         []string{"Cliff-top cafes", "Ayurveda spa", "Backwaters", "Pristine beaches"},
		Notes:              []string{"Best time: Oct-Mar", "Peaceful beach vibes", "3 rooms needed for 6 people"},
		Itinerary: []DayPlan{
			{
				Day:   1,
				Title: "Arrival & Cliff Sunset",
				Activities: []Activity{
					{Time: Morning, Title: "Fly to Trivandrum", Description: "Arrival & Transfer (2.5-3 hrs)", Duration: "3 hrs", Cost: Cost{Budget: 8000, Mid: 10000, Premium: 15000}, Transport: "Flight", MustDo: true},
					{Time: Afternoon, Title: "Transfer to Varkala", Description: "Scenic 1-hour drive to Varkala Cliff area. Check into resort.", Duration: "2 hrs", Cost: Cost{Budget: 500, Mid: 800, Premium: 1500}, Transport: "Taxi/Cab", Tip: "Book hotel near North Cliff for best views"},
					{Time: Evening, Title: "Varkala Cliff Sunset", Description: "Watch spectacular sunset from the cliff. Explore cliff-top cafes and shops.", Duration: "3 hrs", Cost: Cost{Budget: 500, Mid: 1000, Premium: 2000}, MustDo: true, Tip: "Try the fresh seafood at cliff restaurants"},
				},
			},
			{
				Day:   2,
				Title: "Beach Day & North Cliff",
				Activities: []Activity{
					{Time: Morning, Title: "Papanasam Beach", Description: "Relax at the holy Papanasam Beach. Early morning is best for swimming.", Duration: "3 hrs", Cost: Cost{}, MustDo: true, Tip: "Beach is less crowded before 10 AM"},
					{Time: Afternoon, Title: "North Cliff Exploration", Description: "Walk along the cliff path. Browse handicraft shops, try local cafes.", Duration: "3 hrs", Cost: Cost{Budget: 800, Mid: 1500, Premium: 2500}, Tip: "Try banana pancakes at Cafe del Mar"},
					{Time: Evening, Title: "Beach Sunset Yoga", Description: "Join a yoga session on the beach or cliff. Many free community sessions available.", Duration: "2 hrs", Cost: Cost{Budget: 0, Mid: 500, Premium: 1000}, CanSkip: true},
				},
			},
			{
				Day:   3,
				Title: "Ayurveda & Relaxation",
				Activities: []Activity{
					{Time: Morning, Title: "Ayurveda Spa Session", Description: "Traditional Kerala Ayurvedic massage and treatments. Book at resort or local spa.", Duration: "3 hrs", Cost: Cost{Budget: 1500, Mid: 3000, Premium: 6000}, MustDo: true, Tip: "Opt for Abhyanga (oil massage) for first-timers"},
					{Time: Afternoon, Title: "Papanasam Beach", Description: "Post-treatment relaxation at the beach. Light lunch at beachside shack.", Duration: "3 hrs", Cost: Cost{Budget: 400, Mid: 800, Premium: 1500}},
					{Time: Evening, Title: "Janardhana Swamy Temple", Description: "Visit the 2000-year-old cliff-side temple. Beautiful evening aarti.", Duration: "2 hrs", Cost: Cost{}, CanSkip: true, Tip: "Dress modestly for temple visit"},
				},
			},
			{
				Day:   4,
				Title: "Back to Varkala & Papanasam",
				Activities: []Activity{
					{Time: Morning, Title: "Leisure Morning", Description: "Sleep in or enjoy a slow breakfast at a cliff cafe overlooking the sea.", Duration: "3 hrs", Cost: Cost{Budget: 300, Mid: 600, Premium: 1000}, Tip: "Try the Tibetan breakfast at Tibeits"},
					{Time: Afternoon, Title: "Papanasam Beach Activities", Description: "Swimming, body surfing, or just sunbathing at the Black Sand Beach.", Duration: "4 hrs", Cost: Cost{}, MustDo: true, Tip: "Currents can be strong, stay in designated areas"},
					{Time: Evening, Title: "Sunset at Edava Beach", Description: "Short auto ride to Edava. Quieter beach with beautiful backwater-sea confluence.", Duration: "3 hrs", Cost: Cost{Budget: 200, Mid: 400, Premium: 800}, Transport: "Auto/Taxi", MustDo: true},
				},
			},
			{
				Day:   5,
				Title: "Kovalam & Departure",
				Activities: []Activity{
					{Time: Morning, Title: "Checkout & Kovalam Beach", Description: "Check out, drive to Kovalam (1 hr). Famous lighthouse beach visit.", Duration: "3 hrs", Cost: Cost{Budget: 600, Mid: 1000, Premium: 1500}, Transport: "Taxi", Tip: "Climb lighthouse for panoramic views (₹50)"},
					{Time: Afternoon, Title: "Beach Time & Lunch", Description: "Relax at Kovalam. Fresh seafood lunch at German Bakery or local restaurant.", Duration: "3 hrs", Cost: Cost{Budget: 600, Mid: 1200, Premium: 2000}, CanSkip: true},
					{Time: Evening, Title: "Fly Home", Description: "Transfer to Trivandrum airport. Evening flight back.", Duration: "3 hrs", Cost: Cost{Budget: 8000, Mid: 10000, Premium: 15000}, Transport: "Flight", MustDo: true},
				},
			},
		},
	},
	{
		ID:                 "sri-lanka",
		Name:               "Sri Lanka",
		Country:            "South Asia",
		Recommendation:     Rushed,
		RecommendationText: "Rushed for 5 days",
		Weather:            Weather{Temp: "25-30°C", Condition: "Tropical"},
		PriceRange:         Cost{Budget: 45000, Mid: 52000, Premium: 70000},
		FlightCosts:        map[OriginCity]int{Mumbai: 18000, Pune: 22000, Indore: 25000},
		StayCost:           "₹3-5K/night/room",
		Duration:           "5 Days",
		Highlights:         []string{"Nine Arch Bridge", "Temple of Tooth", "Whale watching", "Scenic train"},
		Notes:              []string{"Visa on arrival", "Lots of travel between cities", "Better with 7+ days"},
		Itinerary: []DayPlan{
			{
				Day:   1,
				Title: "Colombo Arrival",
				Activities: []Activity{
					{Time: Morning, Title: "Fly to Colombo", Description: "Arrival in Colombo (3-4 hrs). Visa on arrival.", Duration: "4 hrs", Cost: Cost{Budget: 15000, Mid: 18000, Premium: 25000}, Transport: "Flight", MustDo: true, Tip: "Get Sri Lankan rupees at airport"},
					{Time: Afternoon, Title: "Galle Face Green", Description: "Explore the famous oceanfront promenade. Street food, kite flying.", Duration: "2 hrs", Cost: Cost{Budget: 500, Mid: 1000, Premium: 1500}, Tip: "Try isso wade (prawn fritters)"},
					{Time: Evening, Title: "Gangaramaya Temple", Description: "Visit the beautiful Buddhist temple. Evening prayers are magical.", Duration: "2 hrs", Cost: Cost{Budget: 200, Mid: 200, Premium: 200}, MustDo: true},
				},
			},
			{
				Day:   2,
				Title: "Scenic Train to Kandy",
				Activities: []Activity{
					{Time: Morning, Title: "Train to Kandy", Description: "Scenic 3-hour train ride through tea plantations and mountains.", Duration: "4 hrs", Cost: Cost{Budget: 200, Mid: 500, Premium: 1500}, Transport: "Train", MustDo: true, Tip: "Book first class for guaranteed window seat"},
					{Time: Afternoon, Title: "Kandy Lake Walk", Description: "Stroll around the beautiful Kandy Lake. Check into hotel.", Duration: "2 hrs", Cost: Cost{}},
					{Time: Evening, Title: "Temple of the Tooth", Description: "Visit Sri Lanka's most sacred Buddhist temple. Evening puja ceremony.", Duration: "3 hrs", Cost: Cost{Budget: 1500, Mid: 1500, Premium: 1500}, MustDo: true, Tip: "Wear modest clothing covering knees/shoulders"},
				},
			},
			{
				Day:   3,
				Title: "Drive to Ella",
				Activities: []Activity{
					{Time: Morning, Title: "Drive to Ella", Description: "Scenic 4-hour drive through hill country. Stop at tea factory.", Duration: "5 hrs", Cost: Cost{Budget: 3000, Mid: 4000, Premium: 6000}, Transport: "Private Car", Tip: "Visit a tea estate en route"},
					{Time: Afternoon, Title: "Nine Arch Bridge", Description: "Visit the iconic colonial-era railway bridge. Great for photos.", Duration: "2 hrs", Cost: Cost{}, MustDo: true, Tip: "Train passes at 11:30 AM and 3:30 PM"},
					{Time: Evening, Title: "Ella Town", Description: "Explore the charming hill town. Great cafes and restaurants.", Duration: "3 hrs", Cost: Cost{Budget: 800, Mid: 1500, Premium: 2500}},
				},
			},
			{
				Day:   4,
				Title: "Ella Hike & Mirissa",
				Activities: []Activity{
					{Time: Morning, Title: "Little Adam's Peak", Description: "Easy sunrise hike with stunning views. 1.5 hrs round trip.", Duration: "2 hrs", Cost: Cost{Budget: 0, Mid: 0, Premium: 500}, MustDo: true, Tip: "Start by 5:30 AM for sunrise"},
					{Time: Afternoon, Title: "Drive to Mirissa", Description: "Long 4-hour drive to the south coast beaches.", Duration: "5 hrs", Cost: Cost{Budget: 4000, Mid: 5000, Premium: 8000}, Transport: "Private Car"},
					{Time: Evening, Title: "Mirissa Beach Sunset", Description: "Relax on the beautiful crescent beach. Fresh seafood dinner.", Duration: "3 hrs", Cost: Cost{Budget: 1000, Mid: 2000, Premium: 4000}, Tip: "Try the grilled lobster!"},
				},
			},
			{
				Day:   5,
				Title: "Beach & Departure",
				Activities: []Activity{
					{Time: Morning, Title: "Whale Watching (Optional)", Description: "Blue whale watching tour. Best Dec-Apr. Skip if prone to seasickness.", Duration: "4 hrs", Cost: Cost{Budget: 4000, Mid: 5000, Premium: 8000}, CanSkip: true, Tip: "Take motion sickness pills"},
					{Time: Afternoon, Title: "Beach Time", Description: "Final beach relaxation. Pack and prepare for departure.", Duration: "3 hrs", Cost: Cost{Budget: 500, Mid: 1000, Premium: 2000}},
					{Time: Evening, Title: "Fly Home", Description: "Drive to Colombo airport (3 hrs). Evening flight back.", Duration: "5 hrs", Cost: Cost{Budget: 18000, Mid: 20000, Premium: 28000}, Transport: "Flight + Car", MustDo: true},
				},
			},
		},
	},
	{
		ID:                 "ladakh",
		Name:               "Ladakh",
		Country:            "India",
		Recommendation:     Rushed,
		RecommendationText: "March: Risky but possible",
		Weather:            Weather{Temp: "-10 to -20°C", Condition: "Extreme Cold"},
		PriceRange:         Cost{Budget: 35000, Mid: 45000, Premium: 65000},
		FlightCosts:        map[OriginCity]int{Mumbai: 15000, Pune: 18000, Indore: 22000},
		StayCost:           "₹3-6K/night",
		Duration:           "6 Days",
		Highlights:         []string{"Pangong Lake", "Nubra Valley", "Monasteries", "Mountain passes"},
		SeasonInfo:         "Season: June - September",
		Notes: []string{
			"March: Risky - flight-only access, extreme cold",
			"Motorcycle rental optional (June-Sept only)",
			"Best time: June - September",
			"High altitude - acclimatization required",
			"Pack very warm clothes!",
		},
		Itinerary: []DayPlan{
			{
				Day:   1,
				Title: "Arrival & Acclimatization",
				Activities: []Activity{
					{Time: Morning, Title: "Fly to Leh", Description: "Arrival in Leh (1.5 hrs). Book window seat for Himalayan views!", Duration: "2 hrs", Cost: Cost{Budget: 10000, Mid: 12000, Premium: 18000}, Transport: "Flight", MustDo: true, Tip: "Flights often delayed due to weather"},
					{Time: Afternoon, Title: "Rest & Acclimatize", Description: "Essential rest day. Stay at hotel, drink lots of water, avoid exertion.", Duration: "5 hrs", Cost: Cost{}, MustDo: true, Tip: "Do NOT skip acclimatization - altitude sickness is real!"},
					{Time: Evening, Title: "Leh Market Walk", Description: "Gentle evening stroll through Leh Main Bazaar. Light dinner.", Duration: "2 hrs", Cost: Cost{Budget: 500, Mid: 800, Premium: 1500}, CanSkip: true},
				},
			},
			{
				Day:   2,
				Title: "Leh Sightseeing",
				Activities: []Activity{
					{Time: Morning, Title: "Shanti Stupa", Description: "Visit the iconic white-domed Buddhist stupa. Panoramic views of Leh.", Duration: "2 hrs", Cost: Cost{Budget: 0, Mid: 0, Premium: 500}, MustDo: true, Tip: "Best at sunrise for photos"},
					{Time: Afternoon, Title: "Leh Palace & Monastery", Description: "Explore the 17th-century royal palace and Namgyal Tsemo monastery.", Duration: "3 hrs", Cost: Cost{Budget: 200, Mid: 200, Premium: 500}, MustDo: true},
					{Time: Evening, Title: "Thiksey Monastery", Description: "Visit the 12-story monastery resembling Potala Palace. Evening prayers.", Duration: "3 hrs", Cost: Cost{Budget: 300, Mid: 300, Premium: 500}, Tip: "Morning prayer at 6 AM is spectacular"},
				},
			},
			{
				Day:   3,
				Title: "Nubra Valley",
				Activities: []Activity{
					{Time: Morning, Title: "Drive to Nubra via Khardung La", Description: "Cross world's highest motorable pass (18,380 ft). Stunning views!", Duration: "5 hrs", Cost: Cost{Budget: 4000, Mid: 5000, Premium: 8000}, Transport: "Taxi/SUV", MustDo: true, Tip: "Carry warm clothes, it gets freezing at top"},
					{Time: Afternoon, Title: "Diskit Monastery", Description: "Visit the 500-year-old monastery with 32m Maitreya Buddha statue.", Duration: "2 hrs", Cost: Cost{Budget: 100, Mid: 100, Premium: 100}, MustDo: true},
					{Time: Evening, Title: "Hunder Sand Dunes", Description: "Unique cold desert. Optional double-humped Bactrian camel ride.", Duration: "3 hrs", Cost: Cost{Budget: 500, Mid: 1000, Premium: 2000}, Tip: "Camel ride costs extra ~₹300-500"},
				},
			},
			{
				Day:   4,
				Title: "Pangong Lake",
				Activities: []Activity{
					{Time: Morning, Title: "Drive to Pangong Lake", Description: "Scenic 5-hour drive crossing Shyok river and Chang La pass.", Duration: "6 hrs", Cost: Cost{Budget: 5000, Mid: 6000, Premium: 10000}, Transport: "Taxi/SUV", MustDo: true},
					{Time: Afternoon, Title: "Pangong Lake", Description: "Iconic blue lake from 3 Idiots! Spend time at the stunning lakeside.", Duration: "4 hrs", Cost: Cost{}, MustDo: true, Tip: "Lake changes colors throughout the day"},
					{Time: Evening, Title: "Lakeside Camp", Description: "Stay in a lakeside camp. Stargazing is incredible here.", Duration: "12 hrs", Cost: Cost{Budget: 2000, Mid: 3500, Premium: 6000}, Tip: "No heating in camps - bring warm sleeping bag"},
				},
			},
			{
				Day:   5,
				Title: "Return to Leh",
				Activities: []Activity{
					{Time: Morning, Title: "Sunrise at Pangong", Description: "Wake up early for magical sunrise over the lake.", Duration: "2 hrs", Cost: Cost{}, MustDo: true},
					{Time: Afternoon, Title: "Drive to Leh", Description: "Return via Chang La pass. Stop at Hemis monastery en route.", Duration: "6 hrs", Cost: Cost{Budget: 5000, Mid: 6000, Premium: 10000}, Transport: "Taxi/SUV"},
					{Time: Evening, Title: "Shopping & Rest", Description: "Pick up souvenirs - Pashmina shawls, Tibetan artifacts, apricot products.", Duration: "3 hrs", Cost: Cost{Budget: 2000, Mid: 4000, Premium: 8000}, CanSkip: true},
				},
			},
			{
				Day:   6,
				Title: "Departure",
				Activities: []Activity{
					{Time: Morning, Title: "Magnetic Hill & Confluence", Description: "Visit Magnetic Hill and Indus-Zanskar confluence (blue meets green!)", Duration: "3 hrs", Cost: Cost{Budget: 1000, Mid: 1500, Premium: 2500}, Transport: "Taxi", CanSkip: true},
					{Time: Afternoon, Title: "Fly Home", Description: "Transfer to Leh airport. Flight back to Delhi.", Duration: "3 hrs", Cost: Cost{Budget: 10000, Mid: 12000, Premium: 18000}, Transport: "Flight", MustDo: true, Tip: "Keep buffer for flight delays"},
					{Time: Evening, Title: "Arrive Delhi", Description: "Land in Delhi. Trip complete!", Duration: "2 hrs", Cost: Cost{}},
				},
			},
		},
	},
}
