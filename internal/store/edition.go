package store

import (
	"bookhaven/internal/log"
	"bookhaven/internal/model"

	"go.uber.org/zap"
)

func (s *Store) AddEdition(edition *model.Edition) (*model.Edition, error) {
	stmt := `
		INSERT INTO editions (
			book_id, title, isbn, asin, format, page_count,
			publisher, release_date, foreign_edition_id, images, monitored
		) VALUES (?,?,?,?,?,?,?,?,?,?,?)
		RETURNING id, created_ts`
	args := []any{
		edition.BookID,
		edition.Title,
		edition.ISBN,
		edition.ASIN,
		edition.Format,
		edition.PageCount,
		edition.Publisher,
		edition.ReleaseDate,
		edition.ForeignEditionID,
		toJSON(edition.Images, "[]"),
		edition.Monitored,
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}

	if err := tx.QueryRow(stmt, args...).Scan(&edition.ID, &edition.CreatedTs); err != nil {
		tx.Rollback()
		log.Error("Failed to add edition", zap.Error(err))
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return edition, nil
}

func (s *Store) UpdateEdition(edition *model.Edition) (*model.Edition, error) {
	stmt := `
		UPDATE editions SET
			book_id = ?, title = ?, isbn = ?, asin = ?, format = ?,
			page_count = ?, publisher = ?, release_date = ?,
			foreign_edition_id = ?, images = ?, monitored = ?
		WHERE id = ?
		RETURNING created_ts`
	args := []any{
		edition.BookID,
		edition.Title,
		edition.ISBN,
		edition.ASIN,
		edition.Format,
		edition.PageCount,
		edition.Publisher,
		edition.ReleaseDate,
		edition.ForeignEditionID,
		toJSON(edition.Images, "[]"),
		edition.Monitored,
		edition.ID,
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}

	if err := tx.QueryRow(stmt, args...).Scan(&edition.CreatedTs); err != nil {
		tx.Rollback()
		log.Error("Failed to update edition", zap.Error(err), zap.Int("edition_id", edition.ID))
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return edition, nil
}

func (s *Store) ListEditionsByBook(bookID int) ([]*model.Edition, error) {
	query := `
		SELECT
			id,
			book_id,
			title,
			isbn,
			asin,
			format,
			page_count,
			publisher,
			release_date,
			foreign_edition_id,
			images,
			monitored,
			created_ts
		FROM editions
		WHERE book_id = ?
		ORDER BY id`

	rows, err := s.db.Query(query, bookID)
	if err != nil {
		log.Error("Failed to query editions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	list := make([]*model.Edition, 0)
	for rows.Next() {
		var edition model.Edition
		var images string
		if err := rows.Scan(
			&edition.ID,
			&edition.BookID,
			&edition.Title,
			&edition.ISBN,
			&edition.ASIN,
			&edition.Format,
			&edition.PageCount,
			&edition.Publisher,
			&edition.ReleaseDate,
			&edition.ForeignEditionID,
			&images,
			&edition.Monitored,
			&edition.CreatedTs,
		); err != nil {
			return nil, err
		}
		fromJSON(images, &edition.Images)
		list = append(list, &edition)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}
