package helper

const MaxRating = 5

// RatingMarks is the number of star marks rendered for a rating.
// Negative ratings render none; larger values render as given.
func RatingMarks(rating int) int {
	if rating < 0 {
		return 0
	}
	return rating
}

// ValidRating reports whether rating is accepted by the content API.
func ValidRating(rating int) bool {
	return rating >= 0 && rating <= MaxRating
}
