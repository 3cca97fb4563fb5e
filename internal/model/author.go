package model

type AuthorStatus string

const (
	AuthorStatusContinuing AuthorStatus = "continuing"
	AuthorStatusEnded      AuthorStatus = "ended"
)

type Author struct {
	ID              int          `json:"id"`
	Name            string       `json:"name"`
	SortName        string       `json:"sortName"`
	Overview        string       `json:"overview,omitempty"`
	Status          AuthorStatus `json:"status"`
	Monitored       bool         `json:"monitored"`
	QualityProfileID *int        `json:"qualityProfileId,omitempty"`
	RootFolderPath  string       `json:"rootFolderPath,omitempty"`
	ForeignAuthorID string       `json:"foreignAuthorId,omitempty"`
	Images          []Image      `json:"images,omitempty"`
	Tags            []int        `json:"tags,omitempty"`
	CreatedTs       int64        `json:"createdTs"`
	UpdatedTs       int64        `json:"updatedTs"`

	// BookCount is derived on listing, not a column.
	BookCount int `json:"bookCount"`
}

type FindAuthor struct {
	ID        *int    `json:"id"`
	Name      *string `json:"name"`
	Monitored *bool   `json:"monitored"`
	OrderBy   *string `json:"order_by"`
	Limit     *int    `json:"limit"`
}
