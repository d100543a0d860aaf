package service

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"pharmanet/internal/model"
)

// fakeMedicineRepo implements MedicineRepository in memory with the same
// case-insensitive substring semantics as the SQL queries.
type fakeMedicineRepo struct {
	medicines []model.Medicine
}

func (f *fakeMedicineRepo) Create(ctx context.Context, medicine *model.Medicine) error {
	medicine.ID = uint(len(f.medicines) + 1)
	f.medicines = append(f.medicines, *medicine)
	return nil
}

func (f *fakeMedicineRepo) ListAll(ctx context.Context) ([]model.Medicine, error) {
	return f.medicines, nil
}

func (f *fakeMedicineRepo) SuggestNames(ctx context.Context, query string) ([]string, error) {
	var names []string
	for _, m := range f.medicines {
		if strings.Contains(strings.ToLower(m.Name), strings.ToLower(query)) {
			names = append(names, m.Name)
		}
	}
	return names, nil
}

func (f *fakeMedicineRepo) SearchByName(ctx context.Context, query string) ([]model.Medicine, error) {
	var out []model.Medicine
	for _, m := range f.medicines {
		if strings.Contains(strings.ToLower(m.Name), strings.ToLower(query)) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMedicineRepo) SearchByCompositionKey(ctx context.Context, key, excludeNameSubstring string) ([]model.Medicine, error) {
	var out []model.Medicine
	for _, m := range f.medicines {
		if strings.Contains(strings.ToLower(m.Composition.Text), strings.ToLower(key)) &&
			!strings.Contains(strings.ToLower(m.Name), strings.ToLower(excludeNameSubstring)) {
			out = append(out, m)
		}
	}
	return out, nil
}

func med(id uint, name, composition string) model.Medicine {
	return model.Medicine{
		ID:            id,
		Name:          name,
		CompositionID: id,
		Composition:   model.Composition{ID: id, Text: composition},
		Price:         decimal.NewFromFloat(9.99),
		Stock:         model.StockAvailable,
	}
}

func testCatalog() *fakeMedicineRepo {
	return &fakeMedicineRepo{medicines: []model.Medicine{
		med(1, "Tylenol Extra Strength Caplets 50CT", "Acetaminophen 500mg"),
		med(2, "Ibuprofen Tablets 400mg", "Ibuprofen 400mg"),
		med(3, "Advil Liqui-Gels 200mg", "Ibuprofen 200mg"),
		med(4, "Motrin IB Tablets 200mg", "Ibuprofen 200mg"),
		med(5, "Cetirizine Tablets 10mg", "Cetirizine 10mg"),
	}}
}

func TestCatalogService_Suggest(t *testing.T) {
	svc := NewCatalogService(testCatalog(), nil)
	ctx := context.Background()

	t.Run("empty query returns every name exactly once", func(t *testing.T) {
		names, err := svc.Suggest(ctx, "")
		assert.NoError(t, err)
		assert.Equal(t, []string{
			"Tylenol Extra Strength Caplets 50CT",
			"Ibuprofen Tablets 400mg",
			"Advil Liqui-Gels 200mg",
			"Motrin IB Tablets 200mg",
			"Cetirizine Tablets 10mg",
		}, names)
	})

	t.Run("matching is case-insensitive", func(t *testing.T) {
		lower, err := svc.Suggest(ctx, "ibu")
		assert.NoError(t, err)
		upper, err := svc.Suggest(ctx, "IBU")
		assert.NoError(t, err)
		assert.Equal(t, lower, upper)
		assert.Equal(t, []string{"Ibuprofen Tablets 400mg"}, lower)
	})
}

func TestCatalogService_GetWithAlternatives(t *testing.T) {
	ctx := context.Background()

	t.Run("shared ingredient key, excluding the queried medicine", func(t *testing.T) {
		svc := NewCatalogService(testCatalog(), nil)
		matches, alternatives, err := svc.GetWithAlternatives(ctx, "Ibuprofen Tablets 400mg")
		assert.NoError(t, err)
		assert.Len(t, matches, 1)
		assert.Equal(t, "Ibuprofen Tablets 400mg", matches[0].Name)

		var names []string
		for _, a := range alternatives {
			names = append(names, a.Name)
		}
		assert.Contains(t, names, "Advil Liqui-Gels 200mg")
		assert.Contains(t, names, "Motrin IB Tablets 200mg")
		assert.NotContains(t, names, "Ibuprofen Tablets 400mg")
	})

	t.Run("unknown name returns empty matches and alternatives", func(t *testing.T) {
		svc := NewCatalogService(testCatalog(), nil)
		matches, alternatives, err := svc.GetWithAlternatives(ctx, "no such product")
		assert.NoError(t, err)
		assert.Empty(t, matches)
		assert.Empty(t, alternatives)
	})

	t.Run("synonym fallback fires only after self-exclusion empties direct matches", func(t *testing.T) {
		// Exactly one acetaminophen product, so the direct search excludes it
		// as the queried medicine and comes back empty. The synonym table then
		// maps acetaminophen to paracetamol.
		repo := &fakeMedicineRepo{medicines: []model.Medicine{
			med(1, "Tylenol Extra Strength Caplets 50CT", "Acetaminophen 500mg"),
			med(2, "Panadol Advance 500mg", "Paracetamol 500mg"),
			med(3, "Cetirizine Tablets 10mg", "Cetirizine 10mg"),
		}}
		svc := NewCatalogService(repo, nil)

		matches, alternatives, err := svc.GetWithAlternatives(ctx, "Tylenol Extra Strength Caplets 50CT")
		assert.NoError(t, err)
		assert.Len(t, matches, 1)
		assert.Len(t, alternatives, 1)
		assert.Equal(t, "Panadol Advance 500mg", alternatives[0].Name)
	})

	t.Run("synonym fallback skipped when direct alternatives exist", func(t *testing.T) {
		repo := &fakeMedicineRepo{medicines: []model.Medicine{
			med(1, "Tylenol Extra Strength Caplets 50CT", "Acetaminophen 500mg"),
			med(2, "Equate Extra Strength Pain Reliever", "Acetaminophen 500mg"),
			med(3, "Panadol Advance 500mg", "Paracetamol 500mg"),
		}}
		svc := NewCatalogService(repo, nil)

		_, alternatives, err := svc.GetWithAlternatives(ctx, "Tylenol Extra Strength Caplets 50CT")
		assert.NoError(t, err)
		assert.Len(t, alternatives, 1)
		assert.Equal(t, "Equate Extra Strength Pain Reliever", alternatives[0].Name)
	})

	t.Run("empty composition yields no key and no alternatives", func(t *testing.T) {
		repo := &fakeMedicineRepo{medicines: []model.Medicine{
			med(1, "Mystery Tonic", "   "),
			med(2, "Cetirizine Tablets 10mg", "Cetirizine 10mg"),
		}}
		svc := NewCatalogService(repo, nil)

		matches, alternatives, err := svc.GetWithAlternatives(ctx, "Mystery Tonic")
		assert.NoError(t, err)
		assert.Len(t, matches, 1)
		assert.Empty(t, alternatives)
	})
}

func TestActiveIngredientKey(t *testing.T) {
	assert.Equal(t, "ibuprofen", activeIngredientKey("Ibuprofen 400mg"))
	assert.Equal(t, "acetaminophen", activeIngredientKey("Acetaminophen 160mg/5mL"))
	assert.Equal(t, "", activeIngredientKey(""))
	assert.Equal(t, "", activeIngredientKey("   "))
}
