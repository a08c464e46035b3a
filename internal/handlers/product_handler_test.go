package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Lixing-Zhang/kart-challenge/catalog-api/internal/catalog"
	"github.com/Lixing-Zhang/kart-challenge/catalog-api/internal/models"
	"github.com/Lixing-Zhang/kart-challenge/catalog-api/internal/repository"
	"github.com/Lixing-Zhang/kart-challenge/catalog-api/internal/service"
	"github.com/Lixing-Zhang/kart-challenge/catalog-api/pkg/logger"
)

// newTestProductHandler serves 25 products spread round-robin over
// three categories.
func newTestProductHandler(t *testing.T) *ProductHandler {
	t.Helper()

	names := []string{"Waffle", "Cake", "Pie"}
	raw := make([]models.RawProduct, 25)
	for i := range raw {
		raw[i] = models.RawProduct{Name: "item", Price: "1.00", Category: names[i%3]}
	}

	repo := repository.NewInMemoryCatalogRepository(catalog.Normalize(raw))
	return NewProductHandler(service.NewCatalogService(repo), logger.New("error"))
}

func TestListCategories(t *testing.T) {
	handler := newTestProductHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
	w := httptest.NewRecorder()

	handler.ListCategories(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var response struct {
		Data []models.Category `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	want := []models.Category{{ID: 1, Name: "Waffle"}, {ID: 2, Name: "Cake"}, {ID: 3, Name: "Pie"}}
	if len(response.Data) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(response.Data))
	}
	for i := range want {
		if response.Data[i] != want[i] {
			t.Errorf("category %d = %+v, want %+v", i, response.Data[i], want[i])
		}
	}
}

func TestListProducts(t *testing.T) {
	handler := newTestProductHandler(t)

	tests := []struct {
		name     string
		query    string
		wantLen  int
		wantMeta models.PageMeta
	}{
		{"no query", "", 10, models.PageMeta{PerPage: 10, TotalPages: 3, CurrentPage: 1, TotalElements: 25}},
		{"third page", "?page=3", 5, models.PageMeta{PerPage: 10, TotalPages: 3, CurrentPage: 3, TotalElements: 25}},
		{"page beyond range", "?page=9999", 5, models.PageMeta{PerPage: 10, TotalPages: 3, CurrentPage: 3, TotalElements: 25}},
		{"page zero", "?page=0", 10, models.PageMeta{PerPage: 10, TotalPages: 3, CurrentPage: 1, TotalElements: 25}},
		{"negative page", "?page=-2", 10, models.PageMeta{PerPage: 10, TotalPages: 3, CurrentPage: 1, TotalElements: 25}},
		{"non-numeric page", "?page=abc", 10, models.PageMeta{PerPage: 10, TotalPages: 3, CurrentPage: 1, TotalElements: 25}},
		{"empty page", "?page=", 10, models.PageMeta{PerPage: 10, TotalPages: 3, CurrentPage: 1, TotalElements: 25}},
		{"decimal page", "?page=2.9", 10, models.PageMeta{PerPage: 10, TotalPages: 3, CurrentPage: 2, TotalElements: 25}},
		{"category filter", "?categoryId=1", 9, models.PageMeta{PerPage: 10, TotalPages: 1, CurrentPage: 1, TotalElements: 9}},
		{"category zero", "?categoryId=0", 10, models.PageMeta{PerPage: 10, TotalPages: 3, CurrentPage: 1, TotalElements: 25}},
		{"non-numeric category", "?categoryId=pie", 10, models.PageMeta{PerPage: 10, TotalPages: 3, CurrentPage: 1, TotalElements: 25}},
		{"unknown category", "?categoryId=42", 0, models.PageMeta{PerPage: 10, TotalPages: 0, CurrentPage: 0, TotalElements: 0}},
		{"filter and page clamps", "?categoryId=2&page=2", 8, models.PageMeta{PerPage: 10, TotalPages: 1, CurrentPage: 1, TotalElements: 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/products"+tt.query, nil)
			w := httptest.NewRecorder()

			handler.ListProducts(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d", w.Code)
			}

			var page models.ProductPage
			if err := json.NewDecoder(w.Body).Decode(&page); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}

			if len(page.Data) != tt.wantLen {
				t.Errorf("expected %d products, got %d", tt.wantLen, len(page.Data))
			}
			if page.Meta != tt.wantMeta {
				t.Errorf("meta = %+v, want %+v", page.Meta, tt.wantMeta)
			}
		})
	}
}

func TestListProducts_EmptyDataIsArray(t *testing.T) {
	handler := newTestProductHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products?categoryId=42", nil)
	w := httptest.NewRecorder()

	handler.ListProducts(w, req)

	var response map[string]json.RawMessage
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if string(response["data"]) != "[]" {
		t.Errorf("data = %s, want []", response["data"])
	}
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		raw    string
		want   int
		wantOK bool
	}{
		{"", 0, false},
		{"  ", 0, false},
		{"7", 7, true},
		{" 7 ", 7, true},
		{"-3", -3, true},
		{"2.9", 2, true},
		{"-0.5", 0, true},
		{"abc", 0, false},
		{"3abc", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
		{"99999999999999999999", 2147483647, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := parseInt(tt.raw)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("parseInt(%q) = (%d, %v), want (%d, %v)", tt.raw, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
