package repository

import (
	"context"

	"github.com/jvrel/portfolio/internal/contact/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, submission *domain.ContactSubmission) error {
	// Create rather than raw SQL: "read" is a reserved word on mysql and
	// gorm quotes identifiers per dialect.
	return db.WithContext(ctx).Create(submission).Error
}

func (r *repo) LatestByEmail(ctx context.Context, db *gorm.DB, email string) (*domain.ContactSubmission, error) {
	var rows []*domain.ContactSubmission
	err := db.WithContext(ctx).
		Model(&domain.ContactSubmission{}).
		Where("email = ?", email).
		Order("created_at desc, id desc").
		Limit(1).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, limit int) ([]*domain.ContactSubmission, error) {
	var rows []*domain.ContactSubmission
	err := db.WithContext(ctx).
		Model(&domain.ContactSubmission{}).
		Order("created_at desc, id desc").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
