package store

import (
	"strings"

	"bookhaven/internal/log"
	"bookhaven/internal/model"

	"go.uber.org/zap"
)

func (s *Store) CreateUser(user *model.User) (*model.User, error) {
	stmt := `
		INSERT INTO users (username, nickname, password_hash, role)
		VALUES (?,?,?,?)
		RETURNING id, created_ts`
	args := []any{
		user.Username,
		user.Nickname,
		user.PasswordHash,
		user.Role,
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}
	if err := tx.QueryRow(stmt, args...).Scan(&user.ID, &user.CreatedTs); err != nil {
		tx.Rollback()
		log.Error("Failed to create user", zap.Error(err), zap.String("username", user.Username))
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Store) GetUser(find *model.FindUser) (*model.User, error) {
	if find.ID != nil {
		if cache, ok := s.UserCache.Load(*find.ID); ok {
			return cache.(*model.User), nil
		}
	}

	list, err := s.ListUsers(find)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}

	user := list[0]
	s.UserCache.Store(user.ID, user)
	return user, nil
}

func (s *Store) ListUsers(find *model.FindUser) ([]*model.User, error) {
	where, args := []string{"1 = 1"}, []any{}

	if v := find.ID; v != nil {
		where, args = append(where, "id = ?"), append(args, *v)
	}
	if v := find.Username; v != nil {
		where, args = append(where, "username = ?"), append(args, *v)
	}
	if v := find.Role; v != nil {
		where, args = append(where, "role = ?"), append(args, *v)
	}

	query := `
		SELECT
			id,
			username,
			nickname,
			password_hash,
			role,
			created_ts
		FROM users
		WHERE ` + strings.Join(where, " AND ") + ` ORDER BY id`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		log.Error("Failed to query users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	list := make([]*model.User, 0)
	for rows.Next() {
		var user model.User
		if err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.Nickname,
			&user.PasswordHash,
			&user.Role,
			&user.CreatedTs,
		); err != nil {
			return nil, err
		}
		list = append(list, &user)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *Store) RemoveUser(id int) error {
	stmt := `DELETE FROM users WHERE id = ?`

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(stmt, id); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	s.UserCache.Delete(id)
	return nil
}
