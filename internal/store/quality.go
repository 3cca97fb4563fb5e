package store

import (
	"bookhaven/internal/log"
	"bookhaven/internal/model"

	"go.uber.org/zap"
)

func (s *Store) AddQualityProfile(profile *model.QualityProfile) (*model.QualityProfile, error) {
	stmt := `
		INSERT INTO quality_profiles (name, cutoff, items, upgrade_allowed)
		VALUES (?,?,?,?)
		RETURNING id`
	args := []any{
		profile.Name,
		profile.Cutoff,
		toJSON(profile.Items, "[]"),
		profile.UpgradeAllowed,
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}
	if err := tx.QueryRow(stmt, args...).Scan(&profile.ID); err != nil {
		tx.Rollback()
		log.Error("Failed to add quality profile", zap.Error(err))
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *Store) UpdateQualityProfile(profile *model.QualityProfile) (*model.QualityProfile, error) {
	stmt := `
		UPDATE quality_profiles SET
			name = ?, cutoff = ?, items = ?, upgrade_allowed = ?
		WHERE id = ?`
	args := []any{
		profile.Name,
		profile.Cutoff,
		toJSON(profile.Items, "[]"),
		profile.UpgradeAllowed,
		profile.ID,
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}
	if _, err := tx.Exec(stmt, args...); err != nil {
		tx.Rollback()
		log.Error("Failed to update quality profile", zap.Error(err), zap.Int("profile_id", profile.ID))
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *Store) RemoveQualityProfile(id int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM quality_profiles WHERE id = ?", id); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (s *Store) GetQualityProfile(id int) (*model.QualityProfile, error) {
	profiles, err := s.listQualityProfiles("id = ?", id)
	if err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return nil, nil
	}
	return profiles[0], nil
}

func (s *Store) ListQualityProfiles() ([]*model.QualityProfile, error) {
	return s.listQualityProfiles("1 = 1")
}

func (s *Store) listQualityProfiles(where string, args ...any) ([]*model.QualityProfile, error) {
	query := `
		SELECT id, name, cutoff, items, upgrade_allowed
		FROM quality_profiles
		WHERE ` + where + ` ORDER BY id`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		log.Error("Failed to query quality profiles", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	list := make([]*model.QualityProfile, 0)
	for rows.Next() {
		var profile model.QualityProfile
		var items string
		if err := rows.Scan(
			&profile.ID,
			&profile.Name,
			&profile.Cutoff,
			&items,
			&profile.UpgradeAllowed,
		); err != nil {
			return nil, err
		}
		fromJSON(items, &profile.Items)
		list = append(list, &profile)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *Store) ListQualityDefinitions() ([]*model.QualityDefinition, error) {
	query := `
		SELECT id, title, weight, min_size, max_size, preferred_size
		FROM quality_definitions
		ORDER BY weight`

	rows, err := s.db.Query(query)
	if err != nil {
		log.Error("Failed to query quality definitions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	list := make([]*model.QualityDefinition, 0)
	for rows.Next() {
		var def model.QualityDefinition
		if err := rows.Scan(
			&def.ID,
			&def.Title,
			&def.Weight,
			&def.MinSize,
			&def.MaxSize,
			&def.PreferredSize,
		); err != nil {
			return nil, err
		}
		list = append(list, &def)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *Store) UpdateQualityDefinition(def *model.QualityDefinition) (*model.QualityDefinition, error) {
	stmt := `
		UPDATE quality_definitions SET
			title = ?, weight = ?, min_size = ?, max_size = ?, preferred_size = ?
		WHERE id = ?`
	args := []any{
		def.Title,
		def.Weight,
		def.MinSize,
		def.MaxSize,
		def.PreferredSize,
		def.ID,
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}
	if _, err := tx.Exec(stmt, args...); err != nil {
		tx.Rollback()
		log.Error("Failed to update quality definition", zap.Error(err), zap.Int("definition_id", def.ID))
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return def, nil
}
