package model

type Book struct {
	ID            int      `json:"id"`
	Title         string   `json:"title"`
	AuthorID      int      `json:"authorId"`
	Overview      string   `json:"overview,omitempty"`
	ISBN          string   `json:"isbn,omitempty"`
	ASIN          string   `json:"asin,omitempty"`
	ReleaseDate   string   `json:"releaseDate,omitempty"`
	Monitored     bool     `json:"monitored"`
	ForeignBookID string   `json:"foreignBookId,omitempty"`
	Images        []Image  `json:"images,omitempty"`
	Ratings       *Ratings `json:"ratings,omitempty"`
	Tags          []int    `json:"tags,omitempty"`
	CreatedTs     int64    `json:"createdTs"`
	UpdatedTs     int64    `json:"updatedTs"`

	// AuthorName is joined in on listing, not a column.
	AuthorName string `json:"authorName,omitempty"`
}

type FindBook struct {
	ID        *int    `json:"id"`
	AuthorID  *int    `json:"author_id"`
	Title     *string `json:"title"`
	ISBN      *string `json:"isbn"`
	Monitored *bool   `json:"monitored"`
	OrderBy   *string `json:"order_by"`
	Limit     *int    `json:"limit"`
}

type Edition struct {
	ID               int     `json:"id"`
	BookID           int     `json:"bookId"`
	Title            string  `json:"title"`
	ISBN             string  `json:"isbn,omitempty"`
	ASIN             string  `json:"asin,omitempty"`
	Format           string  `json:"format,omitempty"`
	PageCount        int     `json:"pageCount,omitempty"`
	Publisher        string  `json:"publisher,omitempty"`
	ReleaseDate      string  `json:"releaseDate,omitempty"`
	ForeignEditionID string  `json:"foreignEditionId,omitempty"`
	Images           []Image `json:"images,omitempty"`
	Monitored        bool    `json:"monitored"`
	CreatedTs        int64   `json:"createdTs"`
}
