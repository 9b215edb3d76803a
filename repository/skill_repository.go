package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"skillupTracker/models"
)

// ErrInvalidProgress is returned when a progress value falls outside [0, 100].
// Handlers validate before calling; the check here and the table CHECK are the
// storage layer's own guard.
var ErrInvalidProgress = errors.New("progress must be between 0 and 100")

type SkillRepository struct {
	db *sql.DB
}

func NewSkillRepository(db *sql.DB) *SkillRepository {
	return &SkillRepository{db: db}
}

// Create inserts a new skill owned by userID.
func (r *SkillRepository) Create(ctx context.Context, userID int64, name string, progress int) (*models.Skill, error) {
	if progress < 0 || progress > 100 {
		return nil, ErrInvalidProgress
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO skills (name, progress, user_id) VALUES (?, ?, ?)`,
		name, progress, userID)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &models.Skill{ID: id, Name: name, Progress: progress, UserID: userID}, nil
}

// ListByUser returns all skills owned by userID in insertion order.
// The result is never nil, so an empty list serializes as [].
func (r *SkillRepository) ListByUser(ctx context.Context, userID int64) ([]models.Skill, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, progress, user_id FROM skills WHERE user_id = ? ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]models.Skill, 0)
	for rows.Next() {
		var s models.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Progress, &s.UserID); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateProgress sets the progress of the skill with the given id, provided it
// is owned by userID. Returns nil, nil when no such skill exists for the caller.
// The update and the read happen in one statement so a concurrent delete cannot
// strand the caller between them.
func (r *SkillRepository) UpdateProgress(ctx context.Context, id, userID int64, progress int) (*models.Skill, error) {
	if progress < 0 || progress > 100 {
		return nil, ErrInvalidProgress
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var s models.Skill
	err := r.db.QueryRowContext(ctx,
		`UPDATE skills SET progress = ? WHERE id = ? AND user_id = ?
         RETURNING id, name, progress, user_id`,
		progress, id, userID).
		Scan(&s.ID, &s.Name, &s.Progress, &s.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// Delete removes the skill with the given id, provided it is owned by userID.
// Reports whether a row was actually deleted.
func (r *SkillRepository) Delete(ctx context.Context, id, userID int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx,
		`DELETE FROM skills WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
