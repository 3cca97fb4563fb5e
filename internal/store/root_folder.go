package store

import (
	"bookhaven/internal/log"
	"bookhaven/internal/model"

	"go.uber.org/zap"
)

func (s *Store) AddRootFolder(folder *model.RootFolder) (*model.RootFolder, error) {
	stmt := `
		INSERT INTO root_folders (path, free_space, total_space)
		VALUES (?,?,?)
		RETURNING id`

	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}
	if err := tx.QueryRow(stmt, folder.Path, folder.FreeSpace, folder.TotalSpace).Scan(&folder.ID); err != nil {
		tx.Rollback()
		log.Error("Failed to add root folder", zap.Error(err), zap.String("path", folder.Path))
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return folder, nil
}

func (s *Store) RemoveRootFolder(id int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM root_folders WHERE id = ?", id); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (s *Store) ListRootFolders() ([]*model.RootFolder, error) {
	query := `SELECT id, path, free_space, total_space FROM root_folders ORDER BY id`

	rows, err := s.db.Query(query)
	if err != nil {
		log.Error("Failed to query root folders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	list := make([]*model.RootFolder, 0)
	for rows.Next() {
		var folder model.RootFolder
		if err := rows.Scan(
			&folder.ID,
			&folder.Path,
			&folder.FreeSpace,
			&folder.TotalSpace,
		); err != nil {
			return nil, err
		}
		list = append(list, &folder)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}
