package hardcover

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/pkg/errors"
)

func TestSearchRejectsShortQueries(t *testing.T) {
	var calls int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	})

	for _, query := range []string{"", " ", "a", " a "} {
		_, err := client.Search(context.Background(), query, ModeAll, 5)
		if !errors.Is(err, ErrQueryTooShort) {
			t.Fatalf("Expected ErrQueryTooShort for %q, got %v", query, err)
		}
	}
	if atomic.LoadInt32(&calls) != 0 {
		t.Fatal("Expected no network call for a rejected query")
	}
}

func TestValidSearchMode(t *testing.T) {
	for _, mode := range []SearchMode{ModeAll, ModeBooks, ModeAuthors} {
		if !ValidSearchMode(mode) {
			t.Errorf("Expected %q to be valid", mode)
		}
	}
	if ValidSearchMode("everything") {
		t.Error("Expected unknown mode to be invalid")
	}
}

func searchPayload(qt string, count int) string {
	hits := make([]string, 0, count)
	for i := 0; i < count; i++ {
		var doc string
		if qt == "Book" {
			doc = fmt.Sprintf(`{"document": {"id": %d, "title": "Book %d"}}`, i, i)
		} else {
			doc = fmt.Sprintf(`{"document": {"id": %d, "name": "Author %d"}}`, i, i)
		}
		hits = append(hits, doc)
	}
	payload := `{"data": {"search": {"results": {"hits": [`
	for i, h := range hits {
		if i > 0 {
			payload += ","
		}
		payload += h
	}
	return payload + `]}}}}`
}

func TestSearchModeAllInterleaves(t *testing.T) {
	var requests int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		var body struct {
			Variables map[string]any `json:"variables"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("Failed to decode request: %v", err)
		}
		qt, _ := body.Variables["queryType"].(string)
		if qt == "Book" {
			w.Write([]byte(searchPayload("Book", 15)))
			return
		}
		w.Write([]byte(searchPayload("Author", 3)))
	})

	resp, err := client.Search(context.Background(), "foundation", ModeAll, 20)
	if err != nil {
		t.Fatal(err)
	}
	if atomic.LoadInt32(&requests) != 2 {
		t.Fatalf("Expected 2 requests in all mode, got %d", requests)
	}
	// 15 books and 3 authors interleave book-first into 18 results.
	if len(resp.Results) != 18 {
		t.Fatalf("Expected 18 results, got %d", len(resp.Results))
	}
	expectedTypes := []ResultType{
		ResultTypeBook, ResultTypeAuthor,
		ResultTypeBook, ResultTypeAuthor,
		ResultTypeBook, ResultTypeAuthor,
		ResultTypeBook, ResultTypeBook,
	}
	for i, expected := range expectedTypes {
		if resp.Results[i].Type != expected {
			t.Fatalf("Position %d: expected %q, got %q", i, expected, resp.Results[i].Type)
		}
	}
	if resp.Total != len(resp.Results) {
		t.Fatalf("Expected total to match results, got %d vs %d", resp.Total, len(resp.Results))
	}
}

func TestInterleave(t *testing.T) {
	mk := func(rt ResultType, n int) []SearchResult {
		out := make([]SearchResult, n)
		for i := range out {
			out[i] = SearchResult{ID: strconv.Itoa(i), Type: rt}
		}
		return out
	}

	merged := interleave(mk(ResultTypeBook, 2), mk(ResultTypeAuthor, 5), 10)
	if len(merged) != 7 {
		t.Fatalf("Expected 7 merged results, got %d", len(merged))
	}
	// Books are exhausted after position 2, authors keep their order.
	wantIDs := []string{"0", "0", "1", "1", "2", "3", "4"}
	for i, want := range wantIDs {
		if merged[i].ID != want {
			t.Fatalf("Position %d: expected id %q, got %q", i, want, merged[i].ID)
		}
	}

	merged = interleave(mk(ResultTypeBook, 5), mk(ResultTypeAuthor, 5), 4)
	if len(merged) != 4 {
		t.Fatalf("Expected the limit to truncate, got %d", len(merged))
	}
	if merged[0].Type != ResultTypeBook || merged[1].Type != ResultTypeAuthor {
		t.Fatal("Expected the left list to lead")
	}
}

func TestSearchClampsLimit(t *testing.T) {
	var perPage float64
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Variables map[string]any `json:"variables"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		perPage, _ = body.Variables["perPage"].(float64)
		w.Write([]byte(searchPayload("Book", 0)))
	})

	if _, err := client.Search(context.Background(), "dune", ModeBooks, 500); err != nil {
		t.Fatal(err)
	}
	if perPage != MaxSearchLimit {
		t.Fatalf("Expected limit clamped to %d, got %v", MaxSearchLimit, perPage)
	}

	if _, err := client.Search(context.Background(), "dune", ModeBooks, -3); err != nil {
		t.Fatal(err)
	}
	if perPage != 1 {
		t.Fatalf("Expected limit raised to 1, got %v", perPage)
	}
}

func TestSearchDropsUntitledDocuments(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": {"search": {"results": {"hits": [
			{"document": {"id": 1}},
			{"document": {"id": 2, "title": "Kept"}},
			{"not_a_document": true}
		]}}}}`))
	})

	resp, err := client.Search(context.Background(), "dune", ModeBooks, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(resp.Results) != 1 || resp.Results[0].Title != "Kept" {
		t.Fatalf("Expected only the titled document to survive, got %+v", resp.Results)
	}
}
