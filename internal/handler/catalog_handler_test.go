package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"pharmanet/internal/model"
)

// MockCatalogService is a mock implementation of service.CatalogService.
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) Suggest(ctx context.Context, query string) ([]string, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCatalogService) ListAll(ctx context.Context) ([]model.Medicine, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Medicine), args.Error(1)
}

func (m *MockCatalogService) GetWithAlternatives(ctx context.Context, name string) ([]model.Medicine, []model.Medicine, error) {
	args := m.Called(ctx, name)
	matches, _ := args.Get(0).([]model.Medicine)
	alternatives, _ := args.Get(1).([]model.Medicine)
	return matches, alternatives, args.Error(2)
}

func TestCatalogHandler_Suggest(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		suggested []string
		expected  string
	}{
		{
			name:      "matches returned as JSON array",
			query:     "ibu",
			suggested: []string{"Ibuprofen Tablets 400mg"},
			expected:  `["Ibuprofen Tablets 400mg"]`,
		},
		{
			name:      "no matches is an empty array, not null",
			query:     "zzz",
			suggested: nil,
			expected:  `[]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockCatalogService)
			svc.On("Suggest", mock.Anything, tt.query).Return(tt.suggested, nil)
			h := NewCatalogHandler(svc)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/suggest?query="+tt.query, nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			assert.NoError(t, h.Suggest(c))
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, tt.expected, rec.Body.String())

			var names []string
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &names))
			svc.AssertExpectations(t)
		})
	}
}
