package hardcover

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
)

const (
	DefaultPageSize = 25
	MaxPageSize     = 100
	DefaultLanguage = "en"

	// LanguageAll disables the language filter.
	LanguageAll = "all"
)

type authorDetailData struct {
	Authors        json.RawMessage `json:"authors"`
	Editions       json.RawMessage `json:"editions"`
	Books          json.RawMessage `json:"books"`
	BooksAggregate json.RawMessage `json:"books_aggregate"`
}

// AuthorDetail fetches a remote author's metadata plus one page of the
// bibliography, filtered by language. An out-of-range page is clamped into
// [1, totalPages] and the clamped page's data is returned; the Page field
// reflects the page actually used.
func (c *Client) AuthorDetail(ctx context.Context, slug string, page, pageSize int, language string) (*AuthorDetail, error) {
	slug = strings.TrimSpace(slug)
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	data, err := c.execute(ctx, "author_meta", authorMetaQuery, map[string]any{
		"slug": slug,
	}, "hardcover author request")
	if err != nil {
		return nil, err
	}

	var meta authorDetailData
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, remoteWrap(KindTransport, err, "hardcover author request returned an unreadable response")
	}

	authors := rawDocumentList(meta.Authors)
	if len(authors) == 0 {
		return nil, ErrAuthorNotFound
	}
	author := authors[0]

	languages := collectLanguages(rawDocumentList(meta.Editions))
	selectedLanguage := resolveLanguage(language, languages)

	books, totalBooks, err := c.fetchAuthorBooksPage(ctx, slug, page, pageSize, selectedLanguage)
	if err != nil {
		return nil, err
	}

	totalPages := (totalBooks + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	// Avoid handing back an empty page when a smaller valid page exists.
	safePage := page
	if safePage > totalPages {
		safePage = totalPages
		books, _, err = c.fetchAuthorBooksPage(ctx, slug, safePage, pageSize, selectedLanguage)
		if err != nil {
			return nil, err
		}
	}

	authorSlug, ok := author.FirstString([]string{"slug"})
	if !ok {
		authorSlug = slug
	}
	name, ok := author.FirstString(namePaths...)
	if !ok {
		return nil, remoteErr(KindAPI, "author name is missing in hardcover response")
	}

	id, ok := author.FirstID(authorIDPaths...)
	if !ok {
		id = authorSlug
	}

	booksCount := totalBooks
	if n, ok := author.FirstNumber(booksCountPaths...); ok {
		booksCount = int(n)
	}

	detail := &AuthorDetail{
		ID:           id,
		Slug:         authorSlug,
		Name:         name,
		BooksCount:   &booksCount,
		ImageURL:     coverURL(author),
		HardcoverURL: authorURL(authorSlug),

		SelectedLanguage: selectedLanguage,
		Page:             safePage,
		PageSize:         pageSize,
		TotalBooks:       totalBooks,
		TotalPages:       totalPages,
		Languages:        languageOptions(languages),
		Books:            books,
	}
	detail.Bio, _ = author.FirstString([]string{"bio"}, []string{"overview"})
	if n, ok := author.FirstNumber([]string{"born_year"}); ok {
		year := int(n)
		detail.BornYear = &year
	}
	if n, ok := author.FirstNumber([]string{"death_year"}); ok {
		year := int(n)
		detail.DeathYear = &year
	}
	return detail, nil
}

func (c *Client) fetchAuthorBooksPage(ctx context.Context, slug string, page, pageSize int, selectedLanguage string) ([]AuthorBook, int, error) {
	query := authorBooksPageQuery
	variables := map[string]any{
		"slug":   slug,
		"limit":  pageSize,
		"offset": (page - 1) * pageSize,
	}
	if selectedLanguage != LanguageAll {
		query = authorBooksPageByLanguageQuery
		variables["languageCode"] = selectedLanguage
	}

	data, err := c.execute(ctx, "author_books", query, variables, "hardcover books request")
	if err != nil {
		return nil, 0, err
	}

	var payload authorDetailData
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, 0, remoteWrap(KindTransport, err, "hardcover books request returned an unreadable response")
	}

	rows := rawDocumentList(payload.Books)
	books := make([]AuthorBook, 0, len(rows))
	for _, row := range rows {
		if book := MapAuthorBook(row); book != nil {
			books = append(books, *book)
		}
	}

	var aggregate any
	if len(payload.BooksAggregate) > 0 {
		// Tolerated when absent, the count just stays zero.
		_ = json.Unmarshal(payload.BooksAggregate, &aggregate)
	}
	return books, aggregateCount(aggregate), nil
}

// collectLanguages dedupes the distinct edition languages by code, first
// seen name wins, preserving remote order. English is always present since
// it is the default filter.
func collectLanguages(editions []Document) []LanguageOption {
	seen := make(map[string]bool)
	languages := make([]LanguageOption, 0, len(editions))
	for _, edition := range editions {
		v, ok := edition.Get("language")
		if !ok {
			continue
		}
		lang, ok := AsDocument(v)
		if !ok {
			continue
		}
		code, ok := lang.FirstString([]string{"code2"}, []string{"code3"})
		if !ok {
			continue
		}
		code = normalizeLanguageCode(code)
		name, ok := lang.FirstString([]string{"language"})
		if !ok || seen[code] {
			continue
		}
		seen[code] = true
		languages = append(languages, LanguageOption{Code: code, Name: name})
	}
	if !seen[DefaultLanguage] {
		languages = append(languages, LanguageOption{Code: DefaultLanguage, Name: "English"})
	}
	return languages
}

// resolveLanguage accepts "all" or a code the author actually has; anything
// else falls back to English.
func resolveLanguage(requested string, languages []LanguageOption) string {
	code := normalizeLanguageCode(requested)
	if code == "" {
		return DefaultLanguage
	}
	if code == LanguageAll {
		return code
	}
	for _, lang := range languages {
		if lang.Code == code {
			return code
		}
	}
	return DefaultLanguage
}

// languageOptions prepends the synthetic all entry and sorts the rest by
// display name.
func languageOptions(languages []LanguageOption) []LanguageOption {
	sorted := make([]LanguageOption, len(languages))
	copy(sorted, languages)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})
	return append([]LanguageOption{{Code: LanguageAll, Name: "All Languages"}}, sorted...)
}

// GroupByLanguage arranges one already-paginated page of books into display
// groups: groups ordered by language name, books by release year descending
// within each group. Books without a language land in an Unknown group.
func GroupByLanguage(books []AuthorBook) []BookGroup {
	index := make(map[string]int)
	groups := make([]BookGroup, 0)
	for _, book := range books {
		code := book.LanguageCode
		i, ok := index[code]
		if !ok {
			name := book.LanguageName
			if name == "" {
				name = "Unknown"
			}
			index[code] = len(groups)
			groups = append(groups, BookGroup{LanguageCode: code, LanguageName: name})
			i = len(groups) - 1
		}
		groups[i].Books = append(groups[i].Books, book)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].LanguageName < groups[j].LanguageName
	})
	for i := range groups {
		books := groups[i].Books
		sort.SliceStable(books, func(a, b int) bool {
			ya, yb := -1, -1
			if books[a].ReleaseYear != nil {
				ya = *books[a].ReleaseYear
			}
			if books[b].ReleaseYear != nil {
				yb = *books[b].ReleaseYear
			}
			return ya > yb
		})
	}
	return groups
}

func rawDocumentList(raw json.RawMessage) []Document {
	if len(raw) == 0 {
		return nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return DocumentList(v)
}
