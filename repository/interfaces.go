package repository

import (
	"context"

	"skillupTracker/models"
)

// UserRepositoryI defines operations on User entities.
type UserRepositoryI interface {
	Create(ctx context.Context, username, email, passwordHash string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// SkillRepositoryI defines operations on Skill entities.
// Update and Delete are owner-scoped: a row only matches when both the id and
// the owning user id line up, so callers cannot touch another user's skills.
type SkillRepositoryI interface {
	Create(ctx context.Context, userID int64, name string, progress int) (*models.Skill, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Skill, error)
	UpdateProgress(ctx context.Context, id, userID int64, progress int) (*models.Skill, error)
	Delete(ctx context.Context, id, userID int64) (bool, error)
}

var (
	_ UserRepositoryI  = (*UserRepository)(nil)
	_ SkillRepositoryI = (*SkillRepository)(nil)
)
