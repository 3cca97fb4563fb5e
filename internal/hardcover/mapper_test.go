package hardcover

import (
	"testing"
)

func TestMapBookResult(t *testing.T) {
	doc := decodeDocument(t, `{
		"id": 101,
		"slug": "dune",
		"title": "Dune",
		"release_date": "1965-08-01",
		"author_names": ["Frank Herbert"],
		"image": {"url": "https://img.example/dune.jpg"}
	}`)

	result := MapBookResult(doc)
	if result == nil {
		t.Fatal("Expected a result")
	}
	if result.ID != "101" {
		t.Errorf("Expected id 101, got %q", result.ID)
	}
	if result.Type != ResultTypeBook {
		t.Errorf("Expected book type, got %q", result.Type)
	}
	if result.Subtitle != "Frank Herbert" {
		t.Errorf("Expected author subtitle, got %q", result.Subtitle)
	}
	if result.ReleaseYear == nil || *result.ReleaseYear != 1965 {
		t.Errorf("Expected release year 1965 parsed from the date, got %v", result.ReleaseYear)
	}
	if result.CoverURL != "https://img.example/dune.jpg" {
		t.Errorf("Unexpected cover url %q", result.CoverURL)
	}
	if result.HardcoverURL != "https://hardcover.app/books/dune" {
		t.Errorf("Unexpected hardcover url %q", result.HardcoverURL)
	}
}

func TestMapBookResultWithoutTitleIsDropped(t *testing.T) {
	doc := decodeDocument(t, `{"id": 1, "slug": "untitled"}`)
	if result := MapBookResult(doc); result != nil {
		t.Fatalf("Expected a document without a title to be dropped, got %+v", result)
	}
}

func TestMapBookResultIDFallsBackToSlugThenTitle(t *testing.T) {
	doc := decodeDocument(t, `{"title": "Dune", "slug": "dune"}`)
	if result := MapBookResult(doc); result.ID != "dune" {
		t.Errorf("Expected slug fallback, got %q", result.ID)
	}

	doc = decodeDocument(t, `{"title": "Dune"}`)
	if result := MapBookResult(doc); result.ID != "Dune" {
		t.Errorf("Expected title fallback, got %q", result.ID)
	}
}

func TestMapAuthorResultSubtitle(t *testing.T) {
	doc := decodeDocument(t, `{"name": "J. Doe", "books_count": 5}`)
	result := MapAuthorResult(doc)
	if result == nil {
		t.Fatal("Expected a result")
	}
	if result.Subtitle != "5 books" {
		t.Errorf(`Expected subtitle "5 books", got %q`, result.Subtitle)
	}

	doc = decodeDocument(t, `{"name": "J. Doe", "books_count": 1}`)
	if result := MapAuthorResult(doc); result.Subtitle != "1 book" {
		t.Errorf(`Expected singular "1 book", got %q`, result.Subtitle)
	}

	// A personal name that just repeats the display name is noise.
	doc = decodeDocument(t, `{"name": "J. Doe", "name_personal": "J. Doe"}`)
	if result := MapAuthorResult(doc); result.Subtitle != "" {
		t.Errorf("Expected empty subtitle, got %q", result.Subtitle)
	}

	doc = decodeDocument(t, `{"name": "Mark Twain", "name_personal": "Samuel Clemens"}`)
	if result := MapAuthorResult(doc); result.Subtitle != "Samuel Clemens" {
		t.Errorf("Expected personal name subtitle, got %q", result.Subtitle)
	}
}

func TestCoverURLResolutionOrder(t *testing.T) {
	// Nested image object wins over the images array and flat fields.
	doc := decodeDocument(t, `{
		"image": {"large": "large.jpg"},
		"images": [{"url": "first.jpg"}],
		"coverUrl": "flat.jpg"
	}`)
	if url := coverURL(doc); url != "large.jpg" {
		t.Errorf("Expected nested image to win, got %q", url)
	}

	doc = decodeDocument(t, `{"images": [{"nope": 1}, {"url": "second.jpg"}], "coverUrl": "flat.jpg"}`)
	if url := coverURL(doc); url != "second.jpg" {
		t.Errorf("Expected first usable images entry, got %q", url)
	}

	doc = decodeDocument(t, `{"cover": {"url": "cover.jpg"}}`)
	if url := coverURL(doc); url != "cover.jpg" {
		t.Errorf("Expected flat cover fallback, got %q", url)
	}

	doc = decodeDocument(t, `{}`)
	if url := coverURL(doc); url != "" {
		t.Errorf("Expected empty url, got %q", url)
	}
}

func TestBookAuthorNameFallbacks(t *testing.T) {
	doc := decodeDocument(t, `{"author_names": ["A", "B"]}`)
	if name := bookAuthorName(doc); name != "A, B" {
		t.Errorf("Expected joined author names, got %q", name)
	}

	doc = decodeDocument(t, `{"contributions": [{"author": {"name": "C"}}]}`)
	if name := bookAuthorName(doc); name != "C" {
		t.Errorf("Expected contribution author, got %q", name)
	}

	doc = decodeDocument(t, `{"author_name": "D"}`)
	if name := bookAuthorName(doc); name != "D" {
		t.Errorf("Expected flat author name, got %q", name)
	}
}

func TestMapAuthorBook(t *testing.T) {
	doc := decodeDocument(t, `{
		"id": 7,
		"title": "Second Foundation",
		"slug": "second-foundation",
		"release_date": "1953-01-01",
		"rating": 4.2,
		"contributions": [{"contribution": "Author"}],
		"editions": [{"language": {"code2": "EN", "language": "English"}}]
	}`)

	book := MapAuthorBook(doc)
	if book == nil {
		t.Fatal("Expected a book")
	}
	if book.LanguageCode != "en" {
		t.Errorf("Expected normalized language code, got %q", book.LanguageCode)
	}
	if book.LanguageName != "English" {
		t.Errorf("Expected language name, got %q", book.LanguageName)
	}
	if book.Rating == nil || *book.Rating != 4.2 {
		t.Errorf("Expected rating 4.2, got %v", book.Rating)
	}
	if book.ReleaseYear == nil || *book.ReleaseYear != 1953 {
		t.Errorf("Expected release year 1953, got %v", book.ReleaseYear)
	}
	if book.Contribution != "Author" {
		t.Errorf("Expected contribution, got %q", book.Contribution)
	}
}
