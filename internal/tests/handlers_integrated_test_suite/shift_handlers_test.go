//go:build integration

package handlers_integrated_test_suite

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/rogerio-castellano/inventory-api/internal/http/handlers"
)

func TestShiftsAndMetrics(t *testing.T) {
	r := newRouter(t)
	token := adminToken(t, r)
	t.Cleanup(clearAllProducts)

	p := createProduct(t, r, token, productBody("Crate"))
	for _, to := range []int{2, 3} {
		w := send(r, http.MethodPost, fmt.Sprintf("/api/products/%d/shift", p.ID), map[string]int{"to_warehouse_id": to}, token)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201 Created, got %d: %s", w.Code, w.Body.String())
		}
	}

	t.Run("History is newest first", func(t *testing.T) {
		w := send(r, http.MethodGet, fmt.Sprintf("/api/products/%d/shifts", p.ID), nil, "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d", w.Code)
		}
		var resp handlers.ShiftsSearchResult
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.Shifts.Total != 2 || resp.Shifts.Data[0].ToWarehouseID != 3 || resp.Shifts.Data[0].FromWarehouseID != 2 {
			t.Errorf("unexpected shifts %+v", resp.Shifts)
		}
	})

	t.Run("Dashboard", func(t *testing.T) {
		w := send(r, http.MethodGet, "/api/metrics/dashboard", nil, token)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d", w.Code)
		}
		var resp handlers.MetricsResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		m := resp.Metrics
		if m.TotalProducts != 1 || m.TotalShifts != 2 || m.TotalQuantity != 1 {
			t.Errorf("unexpected metrics %+v", m)
		}
		if len(m.ProductsPerWarehouse) != 5 {
			t.Errorf("expected 5 warehouses, got %d", len(m.ProductsPerWarehouse))
		}
	})
}
