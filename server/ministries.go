package server

import "github.com/ChukwuemekaAjaero/brightegwuogu.com-sub000/internal/models"

// ministries are the fixed cards of the ministry carousel.
var ministries = []models.Ministry{
	{
		Title:       "Worship Nights",
		Description: "Monthly evenings of extended worship, prayer and testimony.",
		Link:        "/music",
	},
	{
		Title:       "Sunday Teaching",
		Description: "Weekly sermons working through scripture book by book.",
		Link:        "/sermons",
	},
	{
		Title:       "Youth Mentorship",
		Description: "Small groups pairing young adults with mentors for a season.",
	},
	{
		Title:       "Outreach",
		Description: "Community meals, hospital visits and city-wide prayer walks.",
	},
	{
		Title:       "Conferences",
		Description: "Guest ministry at churches and conferences across the country.",
		Link:        "/about",
	},
}
