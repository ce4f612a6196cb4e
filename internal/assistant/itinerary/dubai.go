package itinerary

import "github.com/travel-assistant-poc/server/internal/assistant/model"

// Dubai4Day returns the fixed four-day Dubai plan: arrival and Burj Khalifa,
// desert adventure, a padel-themed day, and a beach finale at Atlantis. Each
// call returns a fresh copy.
func Dubai4Day() []model.ItineraryDay {
	return []model.ItineraryDay{
		arrivalDay(),
		desertDay(),
		padelDay(),
		beachDay(),
	}
}

func arrivalDay() model.ItineraryDay {
	return model.ItineraryDay{
		Day:  1,
		Date: "May 20, 2025",
		Activities: []model.Activity{
			{
				Time:          "10:00",
				Activity:      "Check-in at hotel",
				Details:       "Early check-in arranged. Your room will be ready upon arrival.",
				Location:      "Marriott Downtown",
				Duration:      "1h",
				BookingStatus: "Confirmed",
			},
			{
				Time:          "12:00",
				Activity:      "Lunch at Atmosphere",
				Details:       "World's highest restaurant with stunning views of Dubai. Reservation confirmed.",
				Location:      "Burj Khalifa, 122nd Floor",
				Duration:      "2h",
				Price:         450,
				BookingStatus: "Confirmed",
			},
			{
				Time:          "14:00",
				Activity:      "Visit Burj Khalifa",
				Details:       "At The Top observation deck, 124th floor. Skip-the-line tickets included.",
				Location:      "Burj Khalifa",
				Duration:      "2h",
				Price:         300,
				BookingStatus: "Confirmed",
			},
			{
				Time:          "16:00",
				Activity:      "Dubai Mall",
				Details:       "Shopping and entertainment. Visit the Dubai Aquarium and Underwater Zoo.",
				Location:      "Dubai Mall",
				Duration:      "3h",
				BookingStatus: "Available",
			},
			{
				Time:          "19:00",
				Activity:      "Dubai Fountain Show",
				Details:       "World's largest choreographed fountain system. Best viewed from the waterfront promenade.",
				Location:      "Burj Lake",
				Duration:      "30m",
				BookingStatus: "Available",
			},
		},
		Summary: "Your first day in Dubai starts with checking into your luxurious hotel. After settling in, you'll enjoy a spectacular lunch at the world's highest restaurant, followed by a visit to the iconic Burj Khalifa. The evening includes shopping at the Dubai Mall and watching the mesmerizing Dubai Fountain Show.",
		Weather: &model.Weather{
			Temperature: 32,
			Condition:   "Sunny",
			Humidity:    "45%",
			WindSpeed:   "12 km/h",
		},
	}
}

func desertDay() model.ItineraryDay {
	return model.ItineraryDay{
		Day:  2,
		Date: "May 21, 2025",
		Activities: []model.Activity{
			{
				Time:          "06:00",
				Activity:      "Hot Air Balloon Ride",
				Details:       "Sunrise over the desert. Includes breakfast in the desert.",
				Location:      "Dubai Desert",
				Duration:      "4h",
				Price:         1200,
				BookingStatus: "Confirmed",
			},
			{
				Time:          "09:00",
				Activity:      "Desert Safari",
				Details:       "Dune bashing, camel riding, and sandboarding. Traditional Arabic dinner included.",
				Location:      "Dubai Desert",
				Duration:      "6h",
				Price:         800,
				BookingStatus: "Confirmed",
			},
			{
				Time:          "15:00",
				Activity:      "Relax at hotel",
				Details:       "Pool and spa time to unwind after the desert adventure.",
				Location:      "Marriott Downtown",
				Duration:      "3h",
				BookingStatus: "Available",
			},
			{
				Time:          "19:00",
				Activity:      "Dinner at Pierchic",
				Details:       "Seafood restaurant over the water with stunning views.",
				Location:      "Al Qasr Hotel, Madinat Jumeirah",
				Duration:      "2h",
				Price:         600,
				BookingStatus: "Confirmed",
			},
		},
		Summary: "Day two begins with an unforgettable hot air balloon ride at sunrise, followed by an exciting desert safari. After returning to the hotel, you'll have time to relax before enjoying a romantic dinner at Pierchic.",
		Weather: &model.Weather{
			Temperature: 31,
			Condition:   "Partly Cloudy",
			Humidity:    "40%",
			WindSpeed:   "15 km/h",
		},
	}
}

func padelDay() model.ItineraryDay {
	return model.ItineraryDay{
		Day:  3,
		Date: "May 22, 2025",
		Activities: []model.Activity{
			{
				Time:          "09:00",
				Activity:      "Padel Tennis Session",
				Details:       "I noticed your interest in padel tennis! I've arranged a private session at the Dubai Padel Club with a professional coach. Equipment will be provided.",
				Location:      "Dubai Padel Club",
				Duration:      "2h",
				Price:         350,
				BookingStatus: "Confirmed",
			},
			{
				Time:          "11:00",
				Activity:      "Padel Tournament Watch",
				Details:       "There's a professional padel tournament happening today. I've secured VIP tickets for you to watch some world-class players in action.",
				Location:      "Dubai Sports World",
				Duration:      "3h",
				Price:         500,
				BookingStatus: "Confirmed",
			},
			{
				Time:          "14:00",
				Activity:      "Lunch at Padel Club Restaurant",
				Details:       "Enjoy a healthy lunch at the club's restaurant, where you might meet some of the tournament players.",
				Location:      "Dubai Padel Club",
				Duration:      "1h",
				Price:         200,
				BookingStatus: "Confirmed",
			},
			{
				Time:          "15:00",
				Activity:      "Padel Equipment Shopping",
				Details:       "Visit the pro shop to get some padel gear. I've arranged a 20% discount for you.",
				Location:      "Dubai Padel Club",
				Duration:      "1h",
				BookingStatus: "Available",
			},
			{
				Time:          "19:00",
				Activity:      "Dinner with Padel Players",
				Details:       "Exclusive dinner with some of the tournament players at a private venue.",
				Location:      "Private Venue",
				Duration:      "3h",
				Price:         800,
				BookingStatus: "Confirmed",
			},
		},
		Summary: "A special day dedicated to your interest in padel tennis! Starting with a private coaching session, watching professional players, and ending with an exclusive dinner with the players.",
		Weather: &model.Weather{
			Temperature: 30,
			Condition:   "Sunny",
			Humidity:    "40%",
			WindSpeed:   "10 km/h",
		},
	}
}

func beachDay() model.ItineraryDay {
	return model.ItineraryDay{
		Day:  4,
		Date: "May 23, 2025",
		Activities: []model.Activity{
			{
				Time:          "09:00",
				Activity:      "Beach Day at Atlantis",
				Details:       "Private cabana reserved at Atlantis The Palm. Includes water sports and beach activities.",
				Location:      "Atlantis The Palm",
				Duration:      "4h",
				Price:         1000,
				BookingStatus: "Confirmed",
			},
			{
				Time:          "13:00",
				Activity:      "Lunch at Nobu",
				Details:       "World-famous Japanese-Peruvian fusion cuisine with stunning views.",
				Location:      "Atlantis The Palm",
				Duration:      "2h",
				Price:         600,
				BookingStatus: "Confirmed",
			},
			{
				Time:          "15:00",
				Activity:      "Aquaventure Waterpark",
				Details:       "Access to the world's largest waterpark. Fast-track passes included.",
				Location:      "Atlantis The Palm",
				Duration:      "3h",
				Price:         400,
				BookingStatus: "Confirmed",
			},
			{
				Time:          "19:00",
				Activity:      "Farewell Dinner at Ossiano",
				Details:       "Underwater dining experience with views of the aquarium.",
				Location:      "Atlantis The Palm",
				Duration:      "2h",
				Price:         1200,
				BookingStatus: "Confirmed",
			},
		},
		Summary: "Your final day in Dubai is all about relaxation and fun at Atlantis The Palm. Enjoy the beach, waterpark, and a spectacular underwater dining experience.",
		Weather: &model.Weather{
			Temperature: 33,
			Condition:   "Sunny",
			Humidity:    "35%",
			WindSpeed:   "8 km/h",
		},
	}
}
