package service

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"pharmanet/internal/model"
	"pharmanet/internal/repository"
)

// PlaceholderImage is the fallback asset used when a medicine's declared image
// file is absent from the static directory at load time.
const PlaceholderImage = "meds/placeholder.jpg"

// SeedMedicine is one entry of the fixed in-code catalog dataset.
type SeedMedicine struct {
	Name        string
	Composition string
	Price       string
	Stock       string
	Image       string
}

// SeedCatalog is the full catalog dataset. The catalog is rebuilt from this
// list by the seed loader and is immutable afterwards.
var SeedCatalog = []SeedMedicine{
	// Acetaminophen / Paracetamol (pain & fever)
	{"Tylenol Extra Strength Caplets 50CT", "Acetaminophen 500mg", "9.99", model.StockAvailable, "tylenol1.jpg"},
	{"Tylenol PM Extra Strength Caplets 24CT", "Acetaminophen 500mg + Diphenhydramine", "8.99", model.StockAvailable, "tylenol2.jpg"},
	{"Children’s Tylenol Suspension Strawberry", "Acetaminophen 160mg/5mL", "9.29", model.StockAvailable, "tylenol3.jpg"},
	{"Tylenol Cold & Flu Severe Caplets", "Acetaminophen + Phenylephrine + Dextromethorphan + Guaifenesin", "10.99", model.StockOut, "tylenol4.jpg"},
	{"CVS Health Pain Relief Caplets", "Acetaminophen 500mg", "7.99", model.StockAvailable, "cvs_acetaminophen.jpg"},
	{"Equate Extra Strength Pain Reliever", "Acetaminophen 500mg", "6.49", model.StockAvailable, "equate_acetaminophen.jpg"},
	{"Kirkland Extra Strength Acetaminophen", "Acetaminophen 500mg", "8.29", model.StockAvailable, "kirkland_acetaminophen.jpg"},
	{"Walgreens Pain Reliever Caplets", "Acetaminophen 500mg", "7.59", model.StockAvailable, "walgreens_acetaminophen.jpg"},

	// Ibuprofen (pain & inflammation)
	{"Ibuprofen Tablets 400mg", "Ibuprofen 400mg", "6.50", model.StockAvailable, "ibuprofen.jpg"},
	{"Advil Liqui-Gels 200mg", "Ibuprofen 200mg", "8.49", model.StockAvailable, "advil.jpg"},
	{"Motrin IB Tablets 200mg", "Ibuprofen 200mg", "7.99", model.StockAvailable, "motrin.jpg"},
	{"Nurofen Express Liquid Capsules", "Ibuprofen 200mg", "9.49", model.StockAvailable, "nurofen.jpg"},

	// Amoxicillin (antibiotic)
	{"Amoxicillin Capsules 500mg", "Amoxicillin 500mg", "10.50", model.StockAvailable, "amoxicillin.jpg"},
	{"Moxatag 500mg Tablets", "Amoxicillin 500mg", "12.50", model.StockAvailable, "moxatag.jpg"},
	{"Trimox Oral Suspension", "Amoxicillin 500mg", "11.00", model.StockOut, "trimox.jpg"},

	// Azithromycin (antibiotic)
	{"Azithromycin Tablets 250mg", "Azithromycin 250mg", "15.99", model.StockAvailable, "azithromycin.jpg"},
	{"Zithromax Z-Pak 250mg", "Azithromycin 250mg", "17.49", model.StockAvailable, "zithromax.jpg"},
	{"Azee 500mg Tablets", "Azithromycin 500mg", "14.75", model.StockAvailable, "azee.jpg"},

	// Cetirizine (allergy)
	{"Cetirizine Tablets 10mg", "Cetirizine 10mg", "5.99", model.StockAvailable, "cetirizine.jpg"},
	{"Zyrtec Allergy Tablets 10mg", "Cetirizine 10mg", "6.49", model.StockAvailable, "zyrtec.jpg"},
	{"Aller-Tec Tablets 10mg", "Cetirizine 10mg", "6.99", model.StockAvailable, "allertec.jpg"},
}

// CatalogLoader rebuilds the catalog from the seed dataset. It runs
// out-of-band from request handling; schema drop/create is the caller's job.
type CatalogLoader struct {
	medicines    repository.MedicineRepository
	compositions repository.CompositionRepository
	staticDir    string
}

// NewCatalogLoader creates a loader resolving images against staticDir.
func NewCatalogLoader(medicines repository.MedicineRepository, compositions repository.CompositionRepository, staticDir string) *CatalogLoader {
	return &CatalogLoader{
		medicines:    medicines,
		compositions: compositions,
		staticDir:    staticDir,
	}
}

// Load inserts the seed dataset: compositions first (deduplicated by the
// unique index), then medicines referencing them, with each declared image
// resolved against the static directory. Returns the number of medicines
// inserted.
func (l *CatalogLoader) Load(ctx context.Context) (int, error) {
	return l.LoadDataset(ctx, SeedCatalog)
}

// LoadDataset inserts an explicit dataset.
func (l *CatalogLoader) LoadDataset(ctx context.Context, dataset []SeedMedicine) (int, error) {
	inserted := 0
	for _, seed := range dataset {
		price, err := decimal.NewFromString(seed.Price)
		if err != nil {
			log.Printf("Skipping %q with invalid price %q: %v", seed.Name, seed.Price, err)
			continue
		}

		composition, err := l.compositions.FindOrCreate(ctx, seed.Composition)
		if err != nil {
			return inserted, fmt.Errorf("composition %q: %w", seed.Composition, err)
		}

		medicine := &model.Medicine{
			Name:          seed.Name,
			CompositionID: composition.ID,
			Price:         price,
			Stock:         seed.Stock,
			Image:         l.ResolveImage(seed.Image),
		}
		if err := l.medicines.Create(ctx, medicine); err != nil {
			return inserted, fmt.Errorf("medicine %q: %w", seed.Name, err)
		}
		inserted++
	}
	return inserted, nil
}

// ResolveImage returns "meds/<base>" when the file exists under the static
// directory and the placeholder path otherwise, so every stored path
// references a present asset.
func (l *CatalogLoader) ResolveImage(filename string) string {
	base := filepath.Base(filename)
	if _, err := os.Stat(filepath.Join(l.staticDir, "meds", base)); err != nil {
		return PlaceholderImage
	}
	return "meds/" + base
}
