package store

import (
	"fmt"
	"strings"
	"time"

	"bookhaven/internal/log"
	"bookhaven/internal/model"

	"go.uber.org/zap"
)

func (s *Store) AddAuthor(author *model.Author) (*model.Author, error) {
	stmt := `
		INSERT INTO authors (
			name, sort_name, overview, status, monitored,
			quality_profile_id, root_folder_path, foreign_author_id,
			images, tags
		) VALUES (?,?,?,?,?,?,?,?,?,?)
		RETURNING id, created_ts, updated_ts`

	if author.Status == "" {
		author.Status = model.AuthorStatusContinuing
	}
	args := []any{
		author.Name,
		author.SortName,
		author.Overview,
		author.Status,
		author.Monitored,
		author.QualityProfileID,
		author.RootFolderPath,
		author.ForeignAuthorID,
		toJSON(author.Images, "[]"),
		toJSON(author.Tags, "[]"),
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}

	if err := tx.QueryRow(stmt, args...).Scan(&author.ID, &author.CreatedTs, &author.UpdatedTs); err != nil {
		tx.Rollback()
		log.Error("Failed to add author", zap.Error(err))
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return author, nil
}

func (s *Store) UpdateAuthor(author *model.Author) (*model.Author, error) {
	stmt := `
		UPDATE authors SET
			name = ?, sort_name = ?, overview = ?, status = ?, monitored = ?,
			quality_profile_id = ?, root_folder_path = ?, foreign_author_id = ?,
			images = ?, tags = ?, updated_ts = ?
		WHERE id = ?
		RETURNING created_ts, updated_ts`
	args := []any{
		author.Name,
		author.SortName,
		author.Overview,
		author.Status,
		author.Monitored,
		author.QualityProfileID,
		author.RootFolderPath,
		author.ForeignAuthorID,
		toJSON(author.Images, "[]"),
		toJSON(author.Tags, "[]"),
		time.Now().Unix(),
		author.ID,
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}

	if err := tx.QueryRow(stmt, args...).Scan(&author.CreatedTs, &author.UpdatedTs); err != nil {
		tx.Rollback()
		log.Error("Failed to update author", zap.Error(err), zap.Int("author_id", author.ID))
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return author, nil
}

// RemoveAuthor deletes the author; books and their editions go with it via
// the foreign key cascade.
func (s *Store) RemoveAuthor(id int) error {
	stmt := `DELETE FROM authors WHERE id = ?`

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(stmt, id); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (s *Store) GetAuthor(find *model.FindAuthor) (*model.Author, error) {
	list, err := s.ListAuthors(find)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

func (s *Store) ListAuthors(find *model.FindAuthor) ([]*model.Author, error) {
	where, args := []string{"1 = 1"}, []any{}

	if v := find.ID; v != nil {
		where, args = append(where, "id = ?"), append(args, *v)
	}
	if v := find.Name; v != nil {
		where, args = append(where, "name = ?"), append(args, *v)
	}
	if v := find.Monitored; v != nil {
		where, args = append(where, "monitored = ?"), append(args, *v)
	}

	// Default order matches the library view.
	orderBy := "sort_name"
	if v := find.OrderBy; v != nil {
		orderBy = *v
	}

	query := `
		SELECT
			id,
			name,
			sort_name,
			overview,
			status,
			monitored,
			quality_profile_id,
			root_folder_path,
			foreign_author_id,
			images,
			tags,
			created_ts,
			updated_ts,
			(SELECT COUNT(*) FROM books WHERE books.author_id = authors.id) AS book_count
		FROM authors
		WHERE ` + strings.Join(where, " AND ") + ` ORDER BY ` + orderBy
	if v := find.Limit; v != nil {
		query += fmt.Sprintf(" LIMIT %d", *v)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		log.Error("Failed to query authors", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	list := make([]*model.Author, 0)
	for rows.Next() {
		var author model.Author
		var images, tags string
		if err := rows.Scan(
			&author.ID,
			&author.Name,
			&author.SortName,
			&author.Overview,
			&author.Status,
			&author.Monitored,
			&author.QualityProfileID,
			&author.RootFolderPath,
			&author.ForeignAuthorID,
			&images,
			&tags,
			&author.CreatedTs,
			&author.UpdatedTs,
			&author.BookCount,
		); err != nil {
			return nil, err
		}
		fromJSON(images, &author.Images)
		fromJSON(tags, &author.Tags)
		list = append(list, &author)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}
