package handlers_test_suite

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/rogerio-castellano/inventory-api/internal/http/handlers"
	"github.com/rogerio-castellano/inventory-api/internal/repo"
)

func TestShiftProductHandler(t *testing.T) {
	env := newTestEnv(t)
	p := env.createProduct(t, validProduct("Pallet"))

	w := env.do(http.MethodPost, fmt.Sprintf("/api/products/%d/shift", p.ID), map[string]int{"to_warehouse_id": 3}, env.userToken)
	expectStatus(t, w, http.StatusCreated)

	resp := decode[handlers.ShiftResponse](t, w)
	if resp.Message != "Product shifted successfully" {
		t.Errorf("unexpected message %q", resp.Message)
	}
	if resp.Shift.FromWarehouseID != 1 || resp.Shift.ToWarehouseID != 3 || resp.Shift.ProductID != p.ID {
		t.Errorf("unexpected shift %+v", resp.Shift)
	}

	moved, err := env.products.GetByID(t.Context(), p.ID)
	if err != nil {
		t.Fatalf("loading product: %v", err)
	}
	if moved.WarehouseID != 3 {
		t.Errorf("expected product in warehouse 3, got %d", moved.WarehouseID)
	}
}

func TestShiftProductHandler_Errors(t *testing.T) {
	env := newTestEnv(t)
	p := env.createProduct(t, validProduct("Pallet"))
	path := fmt.Sprintf("/api/products/%d/shift", p.ID)

	tests := []struct {
		name    string
		path    string
		body    any
		status  int
		message string
	}{
		{"missing target", path, map[string]any{}, http.StatusBadRequest, "Target warehouse is required"},
		{"same warehouse", path, map[string]int{"to_warehouse_id": 1}, http.StatusBadRequest, "Product is already in that warehouse"},
		{"unknown warehouse", path, map[string]int{"to_warehouse_id": 77}, http.StatusBadRequest, "Warehouse does not exist"},
		{"unknown product", "/api/products/9999/shift", map[string]int{"to_warehouse_id": 2}, http.StatusNotFound, "Product not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(http.MethodPost, tt.path, tt.body, env.userToken)
			expectStatus(t, w, tt.status)
			if resp := decode[handlers.MessageResponse](t, w); resp.Message != tt.message {
				t.Errorf("expected %q, got %q", tt.message, resp.Message)
			}
		})
	}

	if _, total, _ := env.shifts.GetByProductID(t.Context(), p.ID, repo.ShiftFilter{Limit: 10}); total != 0 {
		t.Errorf("expected no shifts recorded, got %d", total)
	}
}

func TestGetShiftsHandler(t *testing.T) {
	env := newTestEnv(t)
	p := env.createProduct(t, validProduct("Pallet"))

	for _, to := range []int{2, 3, 4} {
		w := env.do(http.MethodPost, fmt.Sprintf("/api/products/%d/shift", p.ID), map[string]int{"to_warehouse_id": to}, env.userToken)
		expectStatus(t, w, http.StatusCreated)
	}

	w := env.do(http.MethodGet, fmt.Sprintf("/api/products/%d/shifts", p.ID), nil, "")
	expectStatus(t, w, http.StatusOK)

	page := decode[handlers.ShiftsSearchResult](t, w).Shifts
	if page.Total != 3 || len(page.Data) != 3 {
		t.Fatalf("expected 3 shifts, got %+v", page)
	}
	if page.Data[0].ToWarehouseID != 4 {
		t.Errorf("expected newest first, got %+v", page.Data[0])
	}

	w = env.do(http.MethodGet, fmt.Sprintf("/api/products/%d/shifts?limit=1&offset=1", p.ID), nil, "")
	page = decode[handlers.ShiftsSearchResult](t, w).Shifts
	if page.Total != 3 || len(page.Data) != 1 || page.Data[0].ToWarehouseID != 3 {
		t.Errorf("unexpected page %+v", page)
	}

	future := url.QueryEscape(time.Now().Add(time.Hour).Format(time.RFC3339))
	w = env.do(http.MethodGet, fmt.Sprintf("/api/products/%d/shifts?since=%s", p.ID, future), nil, "")
	if page = decode[handlers.ShiftsSearchResult](t, w).Shifts; page.Total != 0 {
		t.Errorf("expected no shifts after %s, got %d", future, page.Total)
	}
}

func TestGetShiftsHandler_Errors(t *testing.T) {
	env := newTestEnv(t)
	p := env.createProduct(t, validProduct("Pallet"))
	base := fmt.Sprintf("/api/products/%d/shifts", p.ID)

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"bad since", base + "?since=yesterday", http.StatusBadRequest},
		{"bad until", base + "?until=2025-13-01", http.StatusBadRequest},
		{"zero limit", base + "?limit=0", http.StatusBadRequest},
		{"negative offset", base + "?offset=-1", http.StatusBadRequest},
		{"unknown product", "/api/products/9999/shifts", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectStatus(t, env.do(http.MethodGet, tt.path, nil, ""), tt.status)
		})
	}
}
