package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, submission *ContactSubmission) error

	// LatestByEmail returns the newest submission whose normalized email
	// equals the given one, or nil when none exists.
	LatestByEmail(ctx context.Context, db *gorm.DB, email string) (*ContactSubmission, error)

	List(ctx context.Context, db *gorm.DB, limit int) ([]*ContactSubmission, error)
}
