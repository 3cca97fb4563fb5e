package store

import (
	"strings"

	"bookhaven/internal/log"
	"bookhaven/internal/model"

	"go.uber.org/zap"
)

// AddHistoryEvent appends one event. History writes are best-effort
// bookkeeping around the primary mutation, callers log and move on when
// they fail.
func (s *Store) AddHistoryEvent(event *model.HistoryEvent) (*model.HistoryEvent, error) {
	stmt := `
		INSERT INTO history (event_type, book_id, author_id, data)
		VALUES (?,?,?,?)
		RETURNING id, date`
	args := []any{
		event.EventType,
		event.BookID,
		event.AuthorID,
		toJSON(event.Data, "{}"),
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}
	if err := tx.QueryRow(stmt, args...).Scan(&event.ID, &event.Date); err != nil {
		tx.Rollback()
		log.Error("Failed to add history event", zap.Error(err), zap.String("event_type", event.EventType))
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return event, nil
}

// ListHistory returns one page of events, newest first, with joined author
// and book names for display.
func (s *Store) ListHistory(find *model.FindHistory) (*model.HistoryPage, error) {
	page := find.Page
	if page < 1 {
		page = 1
	}
	limit := find.Limit
	if limit < 1 {
		limit = 20
	}
	offset := (page - 1) * limit

	where, args := []string{"1 = 1"}, []any{}
	if v := find.EventType; v != nil {
		where, args = append(where, "history.event_type = ?"), append(args, *v)
	}

	query := `
		SELECT
			history.id,
			history.event_type,
			history.book_id,
			history.author_id,
			history.data,
			history.date,
			COALESCE(authors.name, '') AS author_name,
			COALESCE(books.title, '') AS book_title
		FROM history
		LEFT JOIN authors ON history.author_id = authors.id
		LEFT JOIN books ON history.book_id = books.id
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY history.date DESC, history.id DESC
		LIMIT ? OFFSET ?`

	rows, err := s.db.Query(query, append(args, limit, offset)...)
	if err != nil {
		log.Error("Failed to query history", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	items := make([]*model.HistoryEvent, 0)
	for rows.Next() {
		var event model.HistoryEvent
		var data string
		if err := rows.Scan(
			&event.ID,
			&event.EventType,
			&event.BookID,
			&event.AuthorID,
			&data,
			&event.Date,
			&event.AuthorName,
			&event.BookTitle,
		); err != nil {
			return nil, err
		}
		fromJSON(data, &event.Data)
		items = append(items, &event)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	countQuery := `SELECT COUNT(*) FROM history WHERE ` + strings.Join(where, " AND ")
	var total int
	if err := s.db.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, err
	}

	totalPages := (total + limit - 1) / limit
	if totalPages < 1 {
		totalPages = 1
	}
	return &model.HistoryPage{
		Items:      items,
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}, nil
}
