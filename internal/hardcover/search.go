package hardcover

import (
	"context"
	"encoding/json"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"
)

// SearchMode selects which result types a search returns.
type SearchMode string

const (
	ModeAll     SearchMode = "all"
	ModeBooks   SearchMode = "books"
	ModeAuthors SearchMode = "authors"
)

// queryType is Hardcover's server-side discriminator.
type queryType string

const (
	queryTypeBook   queryType = "Book"
	queryTypeAuthor queryType = "Author"
)

const (
	MinQueryLength = 2
	MaxQueryLength = 120
	MaxSearchLimit = 50
)

// ValidSearchMode reports whether mode is one of all/books/authors.
func ValidSearchMode(mode SearchMode) bool {
	switch mode {
	case ModeAll, ModeBooks, ModeAuthors:
		return true
	}
	return false
}

// Search runs a full-text search. Mode all issues the book and author
// queries concurrently and interleaves the two ranked lists; a failure in
// either fails the whole call, there are no partial results.
func (c *Client) Search(ctx context.Context, query string, mode SearchMode, limit int) (*SearchResponse, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < MinQueryLength {
		return nil, ErrQueryTooShort
	}
	if !ValidSearchMode(mode) {
		mode = ModeAll
	}
	if limit < 1 {
		limit = 1
	}
	if limit > MaxSearchLimit {
		limit = MaxSearchLimit
	}

	var results []SearchResult
	switch mode {
	case ModeBooks:
		books, err := c.fetchSearchResults(ctx, query, queryTypeBook, limit)
		if err != nil {
			return nil, err
		}
		results = books
	case ModeAuthors:
		authors, err := c.fetchSearchResults(ctx, query, queryTypeAuthor, limit)
		if err != nil {
			return nil, err
		}
		results = authors
	default:
		var books, authors []SearchResult
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			books, err = c.fetchSearchResults(gctx, query, queryTypeBook, limit)
			return err
		})
		g.Go(func() error {
			var err error
			authors, err = c.fetchSearchResults(gctx, query, queryTypeAuthor, limit)
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
		results = interleave(books, authors, limit)
	}

	return &SearchResponse{
		Query:   query,
		Mode:    mode,
		Results: results,
		Total:   len(results),
	}, nil
}

// interleave merges two ranked lists position by position, left first,
// preserving relative order within each list and truncating at limit. When
// one list runs out the other keeps filling slots.
func interleave(left, right []SearchResult, limit int) []SearchResult {
	merged := make([]SearchResult, 0, limit)
	max := len(left)
	if len(right) > max {
		max = len(right)
	}
	for i := 0; i < max && len(merged) < limit; i++ {
		if i < len(left) {
			merged = append(merged, left[i])
		}
		if i < len(right) && len(merged) < limit {
			merged = append(merged, right[i])
		}
	}
	return merged
}

// searchData is the typed rim of the search payload; results stays raw
// because its shape is not under our control.
type searchData struct {
	Search struct {
		Error   string          `json:"error"`
		Results json.RawMessage `json:"results"`
	} `json:"search"`
}

func (c *Client) fetchSearchResults(ctx context.Context, query string, qt queryType, limit int) ([]SearchResult, error) {
	data, err := c.execute(ctx, "search", searchQuery, map[string]any{
		"query":     query,
		"queryType": string(qt),
		"perPage":   limit,
		"page":      1,
	}, "hardcover search")
	if err != nil {
		return nil, err
	}

	var payload searchData
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, remoteWrap(KindTransport, err, "hardcover search returned an unreadable response")
	}
	// The search resolver reports query-level failures in-band, separate
	// from GraphQL protocol errors.
	if payload.Search.Error != "" {
		return nil, remoteErr(KindAPI, payload.Search.Error)
	}

	var results any
	if len(payload.Search.Results) > 0 {
		if err := json.Unmarshal(payload.Search.Results, &results); err != nil {
			return nil, remoteWrap(KindTransport, err, "hardcover search returned an unreadable response")
		}
	}

	hits := []Document(nil)
	if payloadDoc, ok := AsDocument(results); ok {
		if v, ok := payloadDoc.Get("hits"); ok {
			hits = DocumentList(v)
		}
	}

	mapped := make([]SearchResult, 0, len(hits))
	for _, hit := range hits {
		v, ok := hit.Get("document")
		if !ok {
			continue
		}
		doc, ok := AsDocument(v)
		if !ok {
			continue
		}
		var result *SearchResult
		if qt == queryTypeBook {
			result = MapBookResult(doc)
		} else {
			result = MapAuthorResult(doc)
		}
		if result == nil {
			continue
		}
		mapped = append(mapped, *result)
		if len(mapped) == limit {
			break
		}
	}
	return mapped, nil
}
