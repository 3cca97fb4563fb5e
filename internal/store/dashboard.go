package store

// LibraryCounts are the dashboard headline numbers.
type LibraryCounts struct {
	Authors          int `json:"authorCount"`
	MonitoredAuthors int `json:"monitoredAuthors"`
	Books            int `json:"bookCount"`
	MonitoredBooks   int `json:"monitoredBooks"`
	Editions         int `json:"editionCount"`
}

func (s *Store) GetLibraryCounts() (*LibraryCounts, error) {
	counts := &LibraryCounts{}
	queries := []struct {
		query string
		dest  *int
	}{
		{"SELECT COUNT(*) FROM authors", &counts.Authors},
		{"SELECT COUNT(*) FROM authors WHERE monitored = 1", &counts.MonitoredAuthors},
		{"SELECT COUNT(*) FROM books", &counts.Books},
		{"SELECT COUNT(*) FROM books WHERE monitored = 1", &counts.MonitoredBooks},
		{"SELECT COUNT(*) FROM editions", &counts.Editions},
	}
	for _, q := range queries {
		if err := s.db.QueryRow(q.query).Scan(q.dest); err != nil {
			return nil, err
		}
	}
	return counts, nil
}
