package hardcover

import (
	"fmt"
	"strings"
)

// Candidate paths per logical field. Hardcover's search documents and its
// GraphQL rows disagree on field names, keeping the fallback order in one
// place makes it auditable.
var (
	titlePaths      = [][]string{{"title"}, {"name"}}
	namePaths       = [][]string{{"name"}, {"title"}}
	bookIDPaths     = [][]string{{"id"}, {"book_id"}, {"foreign_book_id"}}
	authorIDPaths   = [][]string{{"id"}, {"author_id"}, {"foreign_author_id"}}
	releaseYearPaths = [][]string{{"release_year"}, {"published_year"}, {"year"}}
	releaseDatePaths = [][]string{{"release_date"}, {"published_date"}}
	booksCountPaths = [][]string{{"books_count"}, {"book_count"}}
)

// MapBookResult normalizes one raw book search document. Documents without
// a usable title are dropped, not emitted as placeholders.
func MapBookResult(doc Document) *SearchResult {
	title, ok := doc.FirstString(titlePaths...)
	if !ok {
		return nil
	}

	slug, _ := doc.FirstString([]string{"slug"})
	id, ok := doc.FirstID(bookIDPaths...)
	if !ok {
		if id = slug; id == "" {
			id = title
		}
	}
	description, _ := doc.FirstString([]string{"description"}, []string{"overview"}, []string{"blurb"})

	return &SearchResult{
		ID:           id,
		Type:         ResultTypeBook,
		Slug:         slug,
		Title:        title,
		Subtitle:     bookAuthorName(doc),
		Description:  description,
		ReleaseYear:  releaseYear(doc),
		CoverURL:     coverURL(doc),
		HardcoverURL: bookURL(slug),
	}
}

// MapAuthorResult normalizes one raw author search document.
func MapAuthorResult(doc Document) *SearchResult {
	name, ok := doc.FirstString(namePaths...)
	if !ok {
		return nil
	}

	slug, _ := doc.FirstString([]string{"slug"})
	id, ok := doc.FirstID(authorIDPaths...)
	if !ok {
		if id = slug; id == "" {
			id = name
		}
	}
	description, _ := doc.FirstString([]string{"description"}, []string{"bio"}, []string{"overview"})

	return &SearchResult{
		ID:           id,
		Type:         ResultTypeAuthor,
		Slug:         slug,
		Title:        name,
		Subtitle:     authorSubtitle(doc, name),
		Description:  description,
		CoverURL:     coverURL(doc),
		HardcoverURL: authorURL(slug),
	}
}

// MapAuthorBook normalizes one GraphQL book row of an author's bibliography.
func MapAuthorBook(doc Document) *AuthorBook {
	title, ok := doc.FirstString(titlePaths...)
	if !ok {
		return nil
	}

	slug, _ := doc.FirstString([]string{"slug"})
	id, ok := doc.FirstID(bookIDPaths...)
	if !ok {
		if id = slug; id == "" {
			id = title
		}
	}

	var contribution string
	if contributions := documentField(doc, "contributions"); len(contributions) > 0 {
		contribution, _ = contributions[0].FirstString([]string{"contribution"})
	}

	var languageCode, languageName string
	if editions := documentField(doc, "editions"); len(editions) > 0 {
		if lang, ok := editions[0].Get("language"); ok {
			if langDoc, ok := AsDocument(lang); ok {
				if code, ok := langDoc.FirstString([]string{"code2"}, []string{"code3"}); ok {
					languageCode = normalizeLanguageCode(code)
				}
				languageName, _ = langDoc.FirstString([]string{"language"})
			}
		}
	}

	releaseDate, _ := doc.FirstString(releaseDatePaths...)
	var rating *float64
	if r, ok := doc.FirstNumber([]string{"rating"}); ok {
		rating = &r
	}

	return &AuthorBook{
		ID:           id,
		Title:        title,
		Slug:         slug,
		ReleaseDate:  releaseDate,
		ReleaseYear:  releaseYear(doc),
		Rating:       rating,
		CoverURL:     coverURL(doc),
		Contribution: contribution,
		LanguageCode: languageCode,
		LanguageName: languageName,
		HardcoverURL: bookURL(slug),
	}
}

// releaseYear prefers an explicit year field and falls back to the first
// 4-digit run inside the release date.
func releaseYear(doc Document) *int {
	if n, ok := doc.FirstNumber(releaseYearPaths...); ok {
		year := int(n)
		return &year
	}
	if date, ok := doc.FirstString(releaseDatePaths...); ok {
		if year, ok := parseYear(date); ok {
			return &year
		}
	}
	return nil
}

// bookAuthorName resolves the contributing author display line: the
// author_names list joined, else the first contribution's author, else a
// flat author-name field.
func bookAuthorName(doc Document) string {
	if v, ok := doc.Get("author_names"); ok {
		if names := StringList(v); len(names) > 0 {
			return strings.Join(names, ", ")
		}
	}

	for _, contribution := range documentField(doc, "contributions") {
		if name, ok := contribution.FirstString([]string{"author", "name"}); ok {
			return name
		}
	}

	name, _ := doc.FirstString([]string{"authorName"}, []string{"author_name"}, []string{"author", "name"})
	return name
}

// authorSubtitle prefers a books-count string over a secondary personal
// name, and drops the personal name when it just repeats the primary one.
func authorSubtitle(doc Document, name string) string {
	if count, ok := doc.FirstNumber(booksCountPaths...); ok {
		n := int(count)
		if n == 1 {
			return "1 book"
		}
		return fmt.Sprintf("%d books", n)
	}
	if personal, ok := doc.FirstString([]string{"name_personal"}); ok && personal != name {
		return personal
	}
	return ""
}

// coverURL resolution order: nested image object, first entry of an images
// list, then a flat coverUrl field. First hit wins.
func coverURL(doc Document) string {
	if v, ok := doc.Get("image"); ok {
		if image, ok := AsDocument(v); ok {
			if url, ok := image.FirstString([]string{"url"}, []string{"large"}, []string{"medium"}); ok {
				return url
			}
		}
	}

	if v, ok := doc.Get("images"); ok {
		for _, image := range DocumentList(v) {
			if url, ok := image.FirstString([]string{"url"}); ok {
				return url
			}
		}
	}

	url, _ := doc.FirstString([]string{"coverUrl"}, []string{"cover", "url"})
	return url
}

func documentField(doc Document, key string) []Document {
	v, ok := doc.Get(key)
	if !ok {
		return nil
	}
	return DocumentList(v)
}

func bookURL(slug string) string {
	if slug == "" {
		return ""
	}
	return "https://hardcover.app/books/" + slug
}

func authorURL(slug string) string {
	if slug == "" {
		return ""
	}
	return "https://hardcover.app/authors/" + slug
}
