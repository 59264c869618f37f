package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
)

// ProgressRepo implements repository.ProgressRepository. Each user has a
// single row holding their learned-word ids as a JSON array.
type ProgressRepo struct {
	db *sql.DB
}

// NewProgressRepo creates a new progress repository
func NewProgressRepo(db *sql.DB) *ProgressRepo {
	return &ProgressRepo{db: db}
}

// GetLearnedIDs loads the whole learned-id list for a user. A user without
// a progress row returns nil without error.
func (r *ProgressRepo) GetLearnedIDs(userID int64) ([]string, error) {
	var raw []byte
	query := `SELECT learned_ids FROM progress WHERE user_id = $1`
	err := r.db.QueryRow(query, userID).Scan(&raw)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, fmt.Errorf("failed to decode learned ids: %w", err)
	}

	return ids, nil
}

// SaveLearnedIDs overwrites the whole learned-id list for a user.
func (r *ProgressRepo) SaveLearnedIDs(userID int64, ids []string) error {
	if ids == nil {
		ids = []string{}
	}

	raw, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("failed to encode learned ids: %w", err)
	}

	query := `
		INSERT INTO progress (user_id, learned_ids)
		VALUES ($1, $2)
		ON CONFLICT (user_id)
		DO UPDATE SET learned_ids = EXCLUDED.learned_ids, updated_at = NOW()
	`
	_, err = r.db.Exec(query, userID, raw)
	return err
}
