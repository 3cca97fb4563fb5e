package store

import (
	"testing"

	"bookhaven/internal/model"
)

func TestAddAndGetAuthor(t *testing.T) {
	s := newTestStore(t)

	author, err := s.AddAuthor(&model.Author{
		Name:            "Frank Herbert",
		SortName:        "Herbert, Frank",
		ForeignAuthorID: "frank-herbert",
		Monitored:       true,
		Images:          []model.Image{{URL: "https://img.example/fh.jpg", CoverType: "poster"}},
	})
	if err != nil {
		t.Fatalf("Failed to add author: %v", err)
	}
	if author.ID == 0 {
		t.Fatal("Expected a generated id")
	}
	if author.CreatedTs == 0 {
		t.Fatal("Expected created_ts to be set")
	}
	if author.Status != model.AuthorStatusContinuing {
		t.Fatalf("Expected default status, got %q", author.Status)
	}

	got, err := s.GetAuthor(&model.FindAuthor{ID: &author.ID})
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got.Name != "Frank Herbert" {
		t.Fatalf("Unexpected author: %+v", got)
	}
	if len(got.Images) != 1 || got.Images[0].URL != "https://img.example/fh.jpg" {
		t.Fatalf("Expected images round-tripped, got %+v", got.Images)
	}

	missing := 9999
	got, err = s.GetAuthor(&model.FindAuthor{ID: &missing})
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Fatal("Expected nil for an unknown author")
	}
}

func TestUpdateAuthor(t *testing.T) {
	s := newTestStore(t)

	author, err := s.AddAuthor(&model.Author{Name: "A", SortName: "A", ForeignAuthorID: "a"})
	if err != nil {
		t.Fatal(err)
	}

	author.Overview = "updated overview"
	author.Monitored = true
	updated, err := s.UpdateAuthor(author)
	if err != nil {
		t.Fatalf("Failed to update author: %v", err)
	}

	got, err := s.GetAuthor(&model.FindAuthor{ID: &updated.ID})
	if err != nil {
		t.Fatal(err)
	}
	if got.Overview != "updated overview" || !got.Monitored {
		t.Fatalf("Update not persisted: %+v", got)
	}
}

func TestListAuthorsOrderAndCount(t *testing.T) {
	s := newTestStore(t)

	z, _ := s.AddAuthor(&model.Author{Name: "Z Author", SortName: "Z", ForeignAuthorID: "z"})
	a, _ := s.AddAuthor(&model.Author{Name: "A Author", SortName: "A", ForeignAuthorID: "a"})

	if _, err := s.AddBook(&model.Book{Title: "Book 1", AuthorID: z.ID}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddBook(&model.Book{Title: "Book 2", AuthorID: z.ID}); err != nil {
		t.Fatal(err)
	}

	authors, err := s.ListAuthors(&model.FindAuthor{})
	if err != nil {
		t.Fatal(err)
	}
	if len(authors) != 2 {
		t.Fatalf("Expected 2 authors, got %d", len(authors))
	}
	if authors[0].ID != a.ID {
		t.Fatal("Expected sort_name ordering")
	}
	if authors[1].BookCount != 2 {
		t.Fatalf("Expected derived book count 2, got %d", authors[1].BookCount)
	}
}

func TestRemoveAuthorCascades(t *testing.T) {
	s := newTestStore(t)

	author, _ := s.AddAuthor(&model.Author{Name: "A", SortName: "A", ForeignAuthorID: "a"})
	book, err := s.AddBook(&model.Book{Title: "B", AuthorID: author.ID})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddEdition(&model.Edition{BookID: book.ID, Title: "B first edition"}); err != nil {
		t.Fatal(err)
	}

	if err := s.RemoveAuthor(author.ID); err != nil {
		t.Fatalf("Failed to remove author: %v", err)
	}

	gotBook, err := s.GetBook(&model.FindBook{ID: &book.ID})
	if err != nil {
		t.Fatal(err)
	}
	if gotBook != nil {
		t.Fatal("Expected the author's books to cascade away")
	}

	editions, err := s.ListEditionsByBook(book.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(editions) != 0 {
		t.Fatal("Expected the book's editions to cascade away")
	}
}
