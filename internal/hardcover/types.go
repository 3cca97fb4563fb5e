package hardcover

// ResultType discriminates the two search result variants.
type ResultType string

const (
	ResultTypeBook   ResultType = "book"
	ResultTypeAuthor ResultType = "author"
)

// SearchResult is one normalized full-text search hit. ID is always
// non-empty: native id, else slug, else the title itself.
type SearchResult struct {
	ID           string     `json:"id"`
	Type         ResultType `json:"type"`
	Slug         string     `json:"slug,omitempty"`
	Title        string     `json:"title"`
	Subtitle     string     `json:"subtitle,omitempty"`
	Description  string     `json:"description,omitempty"`
	ReleaseYear  *int       `json:"releaseYear,omitempty"`
	CoverURL     string     `json:"coverUrl,omitempty"`
	HardcoverURL string     `json:"hardcoverUrl,omitempty"`
}

// SearchResponse is the result of one Search call.
type SearchResponse struct {
	Query   string         `json:"query"`
	Mode    SearchMode     `json:"type"`
	Results []SearchResult `json:"results"`
	Total   int            `json:"total"`
}

// AuthorBook is one entry of a remote author's bibliography.
type AuthorBook struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Slug         string   `json:"slug,omitempty"`
	ReleaseDate  string   `json:"releaseDate,omitempty"`
	ReleaseYear  *int     `json:"releaseYear,omitempty"`
	Rating       *float64 `json:"rating,omitempty"`
	CoverURL     string   `json:"coverUrl,omitempty"`
	Contribution string   `json:"contribution,omitempty"`
	LanguageCode string   `json:"languageCode,omitempty"`
	LanguageName string   `json:"languageName,omitempty"`
	HardcoverURL string   `json:"hardcoverUrl,omitempty"`
}

// LanguageOption is one language filter choice. The synthetic
// {all, "All Languages"} entry always comes first.
type LanguageOption struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// BookGroup is one display group of an author's current page, keyed by
// edition language.
type BookGroup struct {
	LanguageCode string       `json:"languageCode"`
	LanguageName string       `json:"languageName"`
	Books        []AuthorBook `json:"books"`
}

// AuthorDetail aggregates remote author metadata with one resolved page of
// the bibliography.
type AuthorDetail struct {
	ID           string `json:"id"`
	Slug         string `json:"slug"`
	Name         string `json:"name"`
	Bio          string `json:"bio,omitempty"`
	BooksCount   *int   `json:"booksCount,omitempty"`
	BornYear     *int   `json:"bornYear,omitempty"`
	DeathYear    *int   `json:"deathYear,omitempty"`
	ImageURL     string `json:"imageUrl,omitempty"`
	HardcoverURL string `json:"hardcoverUrl,omitempty"`

	SelectedLanguage string           `json:"selectedLanguage"`
	Page             int              `json:"page"`
	PageSize         int              `json:"pageSize"`
	TotalBooks       int              `json:"totalBooks"`
	TotalPages       int              `json:"totalPages"`
	Languages        []LanguageOption `json:"languages"`
	Books            []AuthorBook     `json:"books"`
}
