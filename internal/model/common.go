package model

// Image is one cover/poster attached to an author, book or edition.
type Image struct {
	URL       string `json:"url"`
	CoverType string `json:"coverType"`
}

// Ratings is a community rating aggregate.
type Ratings struct {
	Value float64 `json:"value"`
	Votes int     `json:"votes"`
}
