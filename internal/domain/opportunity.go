package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Opportunity is a volunteer opening. The catalog is a static in-memory list;
// there is no persistence behind it.
type Opportunity struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Location    string `json:"location"`
	Commitment  string `json:"commitment"`
	Description string `json:"description"`
}

var titleCaser = cases.Title(language.English)

// DisplayCategory renders a category slug like "community-outreach" as
// "Community Outreach".
func DisplayCategory(slug string) string {
	return titleCaser.String(strings.ReplaceAll(slug, "-", " "))
}

// Opportunities returns the static catalog with display-ready categories.
func Opportunities() []Opportunity {
	raw := []Opportunity{
		{ID: 1, Title: "Food Bank Assistant", Category: "community-outreach", Location: "Downtown Center", Commitment: "4 hours/week", Description: "Sort and distribute donated food to families in need."},
		{ID: 2, Title: "After-School Tutor", Category: "education", Location: "Lincoln Elementary", Commitment: "2 hours/week", Description: "Help students in grades 3-5 with reading and math homework."},
		{ID: 3, Title: "Event Photographer", Category: "creative-media", Location: "Various", Commitment: "Per event", Description: "Capture photos at fundraising events for our newsletter and site."},
		{ID: 4, Title: "Community Garden Volunteer", Category: "environment", Location: "Riverside Park", Commitment: "Weekends", Description: "Plant, weed, and harvest produce donated to local shelters."},
		{ID: 5, Title: "Senior Companion", Category: "community-outreach", Location: "Oakwood Residence", Commitment: "3 hours/week", Description: "Visit with seniors for conversation, games, and walks."},
	}
	out := make([]Opportunity, len(raw))
	for i, o := range raw {
		o.Category = DisplayCategory(o.Category)
		out[i] = o
	}
	return out
}
