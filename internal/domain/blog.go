package domain

import "time"

// Blog is a post with its reviews embedded as a JSON array column rather than a
// normalized child table. Average rating and review count are derived on read
// and never stored.
type Blog struct {
	ID          string
	Title       string
	Description string
	Content     string
	Date        time.Time
	Category    string
	ImageURL    string
	Reviews     []Review
}

// Review is one entry of a blog's embedded reviews array.
type Review struct {
	ID     int64   `json:"id"`
	Author string  `json:"author"`
	Rating float64 `json:"rating"`
	Date   string  `json:"date"`
}

// MinRating and MaxRating bound a valid review rating, inclusive.
const (
	MinRating = 1
	MaxRating = 5
)

// ValidRating reports whether r is an acceptable review rating.
func ValidRating(r float64) bool {
	return r >= MinRating && r <= MaxRating
}

// AggregateReviews derives the average rating and count from an embedded
// reviews array. An empty array averages to 0, never a division by zero.
func AggregateReviews(reviews []Review) (average float64, count int) {
	if len(reviews) == 0 {
		return 0, 0
	}
	var sum float64
	for _, r := range reviews {
		sum += r.Rating
	}
	return sum / float64(len(reviews)), len(reviews)
}
