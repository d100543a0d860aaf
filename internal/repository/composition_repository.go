package repository

import (
	"context"

	"gorm.io/gorm"

	"pharmanet/internal/model"
)

// CompositionRepository defines composition persistence operations.
type CompositionRepository interface {
	FindOrCreate(ctx context.Context, text string) (*model.Composition, error)
}

type compositionRepository struct {
	db *gorm.DB
}

// NewCompositionRepository creates a new composition repository.
func NewCompositionRepository(db *gorm.DB) CompositionRepository {
	return &compositionRepository{db: db}
}

// FindOrCreate returns the composition row for text, creating it when absent.
// The unique index on text keeps compositions deduplicated.
func (r *compositionRepository) FindOrCreate(ctx context.Context, text string) (*model.Composition, error) {
	var composition model.Composition
	if err := r.db.WithContext(ctx).
		Where(model.Composition{Text: text}).
		FirstOrCreate(&composition).Error; err != nil {
		return nil, err
	}
	return &composition, nil
}
