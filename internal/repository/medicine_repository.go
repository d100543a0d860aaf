package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"pharmanet/internal/model"
)

// MedicineRepository defines catalog persistence operations. The catalog is
// written once by the seed loader; everything else is read-only.
type MedicineRepository interface {
	Create(ctx context.Context, medicine *model.Medicine) error
	ListAll(ctx context.Context) ([]model.Medicine, error)
	SuggestNames(ctx context.Context, query string) ([]string, error)
	SearchByName(ctx context.Context, query string) ([]model.Medicine, error)
	SearchByCompositionKey(ctx context.Context, key, excludeNameSubstring string) ([]model.Medicine, error)
}

type medicineRepository struct {
	db *gorm.DB
}

// NewMedicineRepository creates a new medicine repository.
func NewMedicineRepository(db *gorm.DB) MedicineRepository {
	return &medicineRepository{db: db}
}

// Create inserts a new medicine row.
func (r *medicineRepository) Create(ctx context.Context, medicine *model.Medicine) error {
	return r.db.WithContext(ctx).Create(medicine).Error
}

// ListAll returns every medicine with its composition resolved, in storage order.
func (r *medicineRepository) ListAll(ctx context.Context) ([]model.Medicine, error) {
	var medicines []model.Medicine
	if err := r.db.WithContext(ctx).
		Preload("Composition").
		Order("medicines.id").
		Find(&medicines).Error; err != nil {
		return nil, err
	}
	return medicines, nil
}

// SuggestNames returns the names of medicines whose name contains the query,
// case-insensitively. An empty query matches everything.
func (r *medicineRepository) SuggestNames(ctx context.Context, query string) ([]string, error) {
	var names []string
	if err := r.db.WithContext(ctx).
		Model(&model.Medicine{}).
		Where("LOWER(name) LIKE ?", like(query)).
		Order("id").
		Pluck("name", &names).Error; err != nil {
		return nil, err
	}
	return names, nil
}

// SearchByName returns full records whose name contains the query,
// case-insensitively, in storage order.
func (r *medicineRepository) SearchByName(ctx context.Context, query string) ([]model.Medicine, error) {
	var medicines []model.Medicine
	if err := r.db.WithContext(ctx).
		Preload("Composition").
		Where("LOWER(name) LIKE ?", like(query)).
		Order("id").
		Find(&medicines).Error; err != nil {
		return nil, err
	}
	return medicines, nil
}

// SearchByCompositionKey returns medicines whose composition text contains the
// key, excluding any whose name contains excludeNameSubstring. Both matches
// are case-insensitive substring matches.
func (r *medicineRepository) SearchByCompositionKey(ctx context.Context, key, excludeNameSubstring string) ([]model.Medicine, error) {
	var medicines []model.Medicine
	if err := r.db.WithContext(ctx).
		Joins("JOIN compositions ON compositions.id = medicines.composition_id").
		Where("LOWER(compositions.text) LIKE ?", like(key)).
		Where("LOWER(medicines.name) NOT LIKE ?", like(excludeNameSubstring)).
		Preload("Composition").
		Order("medicines.id").
		Find(&medicines).Error; err != nil {
		return nil, err
	}
	return medicines, nil
}

func like(s string) string {
	return "%" + strings.ToLower(s) + "%"
}
