package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"pharmanet/internal/cache"
	"pharmanet/internal/model"
	"pharmanet/internal/repository"
)

const suggestCacheTTL = 5 * time.Minute

// synonymEntry links two alternate names for the same active ingredient.
type synonymEntry struct {
	key   string
	value string
}

// ingredientSynonyms links common substitute ingredient names used when direct
// key matching yields no alternatives. Order matters: entries are tried in
// declaration order and the first key that is a substring of the active
// ingredient wins, so behavior stays deterministic across lookups.
var ingredientSynonyms = []synonymEntry{
	{"acetaminophen", "paracetamol"},
	{"paracetamol", "acetaminophen"},
	{"amoxicillin", "augmentin"},
	{"ibuprofen", "motrin"},
}

// CatalogService handles medicine lookup operations.
type CatalogService interface {
	Suggest(ctx context.Context, query string) ([]string, error)
	ListAll(ctx context.Context) ([]model.Medicine, error)
	GetWithAlternatives(ctx context.Context, name string) (matches, alternatives []model.Medicine, err error)
}

type catalogService struct {
	repo  repository.MedicineRepository
	cache *cache.Client
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(repo repository.MedicineRepository, cache *cache.Client) CatalogService {
	return &catalogService{repo: repo, cache: cache}
}

func (s *catalogService) suggestCacheKey(query string) string {
	return "suggest:" + strings.ToLower(query)
}

// Suggest returns all medicine names containing the query, case-insensitively,
// in storage order. An empty query returns every name.
func (s *catalogService) Suggest(ctx context.Context, query string) ([]string, error) {
	if data, _ := s.cache.Get(ctx, s.suggestCacheKey(query)); data != nil {
		var cached []string
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	names, err := s.repo.SuggestNames(ctx, query)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(names); err == nil {
		_ = s.cache.Set(ctx, s.suggestCacheKey(query), payload, suggestCacheTTL)
	}
	return names, nil
}

// ListAll returns the full catalog.
func (s *catalogService) ListAll(ctx context.Context) ([]model.Medicine, error) {
	return s.repo.ListAll(ctx)
}

// GetWithAlternatives finds all medicines whose name contains the query, plus
// medicines sharing the first match's active ingredient. The active-ingredient
// key is the first whitespace-delimited token of the lowercased composition;
// combination drugs that list their active ingredient second extract the wrong
// key. That is a known limitation of the heuristic, kept as-is.
func (s *catalogService) GetWithAlternatives(ctx context.Context, name string) ([]model.Medicine, []model.Medicine, error) {
	matches, err := s.repo.SearchByName(ctx, name)
	if err != nil {
		return nil, nil, err
	}
	if len(matches) == 0 {
		// Not every query corresponds to a real product. Empty, not an error.
		return nil, nil, nil
	}

	key := activeIngredientKey(matches[0].Composition.Text)
	if key == "" {
		return matches, nil, nil
	}

	alternatives, err := s.repo.SearchByCompositionKey(ctx, key, name)
	if err != nil {
		return nil, nil, err
	}

	// Direct matching found nothing: fall back to the synonym table. First
	// declared entry whose key is a substring of the ingredient wins.
	if len(alternatives) == 0 {
		for _, syn := range ingredientSynonyms {
			if strings.Contains(key, syn.key) {
				alternatives, err = s.repo.SearchByCompositionKey(ctx, syn.value, name)
				if err != nil {
					return nil, nil, err
				}
				break
			}
		}
	}

	return matches, alternatives, nil
}

// activeIngredientKey extracts the first whitespace-delimited token of the
// lowercased composition text, or "" for an empty composition.
func activeIngredientKey(composition string) string {
	fields := strings.Fields(strings.ToLower(composition))
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
