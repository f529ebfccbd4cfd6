//go:build integration

package handlers_integrated_test_suite

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rogerio-castellano/inventory-api/internal/http/handlers"
)

func TestImportProductsHandler(t *testing.T) {
	r := newRouter(t)
	token := adminToken(t, r)

	importCSV := func(csvData, mode string) handlers.ImportProductsResult {
		t.Helper()
		body, contentType := multipartCSV(csvData, "products.csv")
		req := httptest.NewRequest(http.MethodPost, "/api/products/import?mode="+mode, body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
		}
		var resp handlers.ImportProductsResult
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		return resp
	}

	t.Run("File with unique valid products", func(t *testing.T) {
		t.Cleanup(clearAllProducts)
		csvData := `warehouse_id,category_id,brand_id,product_name,unique_code,product_retail_price,product_sale_price,quantity
1,1,1,Mouse,M-1,25.99,20,10
1,2,2,Keyboard,K-1,45.00,40,5`

		resp := importCSV(csvData, "skip")
		if resp.ImportedProductsCount != 2 || len(resp.Errors) != 0 {
			t.Errorf("expected 2 imported, got %+v", resp)
		}
	})

	t.Run("Existing codes are skipped or updated", func(t *testing.T) {
		t.Cleanup(clearAllProducts)
		csvData := `warehouse_id,category_id,brand_id,product_name,unique_code,product_retail_price,product_sale_price
1,1,1,Mouse,M-1,25.99,20`
		importCSV(csvData, "skip")

		renamed := `warehouse_id,category_id,brand_id,product_name,unique_code,product_retail_price,product_sale_price
1,1,1,Mouse Pro,M-1,30,25`
		if resp := importCSV(renamed, "skip"); resp.ImportedProductsCount != 0 || len(resp.Errors) != 1 {
			t.Errorf("expected the row to be skipped, got %+v", resp)
		}
		if resp := importCSV(renamed, "update"); resp.ImportedProductsCount != 1 {
			t.Errorf("expected the row to update, got %+v", resp)
		}

		p, err := products.GetByUniqueCode(t.Context(), "M-1")
		if err != nil {
			t.Fatalf("loading product: %v", err)
		}
		if p.Name != "Mouse Pro" {
			t.Errorf("expected the name to be updated, got %q", p.Name)
		}
	})
}
