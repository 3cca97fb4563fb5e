package store

import (
	"fmt"
	"strings"
	"time"

	"bookhaven/internal/log"
	"bookhaven/internal/model"

	"go.uber.org/zap"
)

func (s *Store) AddBook(book *model.Book) (*model.Book, error) {
	stmt := `
		INSERT INTO books (
			title, author_id, overview, isbn, asin, release_date,
			monitored, foreign_book_id, images, ratings, tags
		) VALUES (?,?,?,?,?,?,?,?,?,?,?)
		RETURNING id, created_ts, updated_ts`
	args := []any{
		book.Title,
		book.AuthorID,
		book.Overview,
		book.ISBN,
		book.ASIN,
		book.ReleaseDate,
		book.Monitored,
		book.ForeignBookID,
		toJSON(book.Images, "[]"),
		ratingsJSON(book.Ratings),
		toJSON(book.Tags, "[]"),
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}

	if err := tx.QueryRow(stmt, args...).Scan(&book.ID, &book.CreatedTs, &book.UpdatedTs); err != nil {
		tx.Rollback()
		log.Error("Failed to add book", zap.Error(err))
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return book, nil
}

func (s *Store) UpdateBook(book *model.Book) (*model.Book, error) {
	stmt := `
		UPDATE books SET
			title = ?, author_id = ?, overview = ?, isbn = ?, asin = ?,
			release_date = ?, monitored = ?, foreign_book_id = ?,
			images = ?, ratings = ?, tags = ?, updated_ts = ?
		WHERE id = ?
		RETURNING created_ts, updated_ts`
	args := []any{
		book.Title,
		book.AuthorID,
		book.Overview,
		book.ISBN,
		book.ASIN,
		book.ReleaseDate,
		book.Monitored,
		book.ForeignBookID,
		toJSON(book.Images, "[]"),
		ratingsJSON(book.Ratings),
		toJSON(book.Tags, "[]"),
		time.Now().Unix(),
		book.ID,
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}

	if err := tx.QueryRow(stmt, args...).Scan(&book.CreatedTs, &book.UpdatedTs); err != nil {
		tx.Rollback()
		log.Error("Failed to update book", zap.Error(err), zap.Int("book_id", book.ID))
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return book, nil
}

// RemoveBook deletes the book; its editions go with it via the foreign key
// cascade.
func (s *Store) RemoveBook(id int) error {
	stmt := `DELETE FROM books WHERE id = ?`

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

func (s *Store) GetBook(find *model.FindBook) (*model.Book, error) {
	list, err := s.ListBooks(find)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

func (s *Store) ListBooks(find *model.FindBook) ([]*model.Book, error) {
	where, args := []string{"1 = 1"}, []any{}

	if v := find.ID; v != nil {
		where, args = append(where, "books.id = ?"), append(args, *v)
	}
	if v := find.AuthorID; v != nil {
		where, args = append(where, "books.author_id = ?"), append(args, *v)
	}
	if v := find.Title; v != nil {
		where, args = append(where, "books.title = ?"), append(args, *v)
	}
	if v := find.ISBN; v != nil {
		where, args = append(where, "books.isbn = ?"), append(args, *v)
	}
	if v := find.Monitored; v != nil {
		where, args = append(where, "books.monitored = ?"), append(args, *v)
	}

	// Newest additions first unless the caller says otherwise.
	orderBy := "books.created_ts DESC"
	if v := find.OrderBy; v != nil {
		orderBy = *v
	}

	query := `
		SELECT
			books.id,
			books.title,
			books.author_id,
			books.overview,
			books.isbn,
			books.asin,
			books.release_date,
			books.monitored,
			books.foreign_book_id,
			books.images,
			books.ratings,
			books.tags,
			books.created_ts,
			books.updated_ts,
			COALESCE(authors.name, '') AS author_name
		FROM books
		LEFT JOIN authors ON books.author_id = authors.id
		WHERE ` + strings.Join(where, " AND ") + ` ORDER BY ` + orderBy
	if v := find.Limit; v != nil {
		query += fmt.Sprintf(" LIMIT %d", *v)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		log.Error("Failed to query books", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	list := make([]*model.Book, 0)
	for rows.Next() {
		var book model.Book
		var images, ratings, tags string
		if err := rows.Scan(
			&book.ID,
			&book.Title,
			&book.AuthorID,
			&book.Overview,
			&book.ISBN,
			&book.ASIN,
			&book.ReleaseDate,
			&book.Monitored,
			&book.ForeignBookID,
			&images,
			&ratings,
			&tags,
			&book.CreatedTs,
			&book.UpdatedTs,
			&book.AuthorName,
		); err != nil {
			return nil, err
		}
		fromJSON(images, &book.Images)
		fromJSON(ratings, &book.Ratings)
		fromJSON(tags, &book.Tags)
		list = append(list, &book)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

// ListUpcomingBooks returns monitored releases after today, soonest first.
func (s *Store) ListUpcomingBooks(limit int) ([]*model.Book, error) {
	today := time.Now().Format("2006-01-02")
	query := `
		SELECT
			books.id,
			books.title,
			books.author_id,
			books.release_date,
			COALESCE(authors.name, '') AS author_name
		FROM books
		LEFT JOIN authors ON books.author_id = authors.id
		WHERE books.release_date > ?
		ORDER BY books.release_date
		LIMIT ?`

	rows, err := s.db.Query(query, today, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*model.Book, 0)
	for rows.Next() {
		var book model.Book
		if err := rows.Scan(
			&book.ID,
			&book.Title,
			&book.AuthorID,
			&book.ReleaseDate,
			&book.AuthorName,
		); err != nil {
			return nil, err
		}
		list = append(list, &book)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

func ratingsJSON(r *model.Ratings) string {
	if r == nil {
		return ""
	}
	return toJSON(r, "")
}
