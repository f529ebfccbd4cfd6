package handlers_test_suite

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/rogerio-castellano/inventory-api/internal/http/handlers"
	"github.com/shopspring/decimal"
)

func TestGetDashboardMetricsHandler(t *testing.T) {
	env := newTestEnv(t)

	a := validProduct("A")
	a["product_retail_price"] = 10
	a["quantity"] = 2
	env.createProduct(t, a)

	b := validProduct("B")
	b["product_retail_price"] = 5
	b["quantity"] = 3
	b["warehouse_id"] = 2
	pb := env.createProduct(t, b)

	sold := env.createProduct(t, validProduct("C"))
	w := env.do(http.MethodPut, fmt.Sprintf("/api/products/%d", sold.ID), map[string]bool{"is_sold": true}, env.userToken)
	expectStatus(t, w, http.StatusOK)

	w = env.do(http.MethodPost, fmt.Sprintf("/api/products/%d/shift", pb.ID), map[string]int{"to_warehouse_id": 1}, env.userToken)
	expectStatus(t, w, http.StatusCreated)

	w = env.do(http.MethodGet, "/api/metrics/dashboard", nil, env.userToken)
	expectStatus(t, w, http.StatusOK)

	m := decode[handlers.MetricsResponse](t, w).Metrics
	if m.TotalProducts != 3 || m.SoldProducts != 1 || m.TotalQuantity != 6 || m.TotalShifts != 1 {
		t.Errorf("unexpected totals %+v", m)
	}
	if !m.StockRetailValue.Equal(decimal.NewFromInt(35)) {
		t.Errorf("expected stock value 35, got %s", m.StockRetailValue)
	}
	if len(m.ProductsPerWarehouse) != 5 {
		t.Fatalf("expected every warehouse listed, got %d", len(m.ProductsPerWarehouse))
	}
	counts := map[int]int{}
	for _, wc := range m.ProductsPerWarehouse {
		counts[wc.WarehouseID] = wc.Count
	}
	if counts[1] != 3 || counts[2] != 0 {
		t.Errorf("unexpected per-warehouse counts %v", counts)
	}
}

func TestGetDashboardMetricsHandler_RequiresAuth(t *testing.T) {
	env := newTestEnv(t)
	expectStatus(t, env.do(http.MethodGet, "/api/metrics/dashboard", nil, ""), http.StatusUnauthorized)
}
