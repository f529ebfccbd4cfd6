package handlers_test_suite

import (
	"fmt"
	"net/http"
	"testing"
)

type masterList map[string]any

func names(t *testing.T, list masterList, table, nameKey string) []string {
	t.Helper()
	raw, ok := list[table].([]any)
	if !ok {
		t.Fatalf("expected a %s array, got %v", table, list[table])
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		out = append(out, item.(map[string]any)[nameKey].(string))
	}
	return out
}

func TestListMasterDataHandlers(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		table   string
		nameKey string
		count   int
		first   string
	}{
		{"warehouses", "name", 5, "Distribution Center"},
		{"categories", "category_name", 8, "Books & Media"},
		{"brands", "brand_name", 10, "Adidas"},
	}
	for _, tt := range tests {
		t.Run(tt.table, func(t *testing.T) {
			w := env.do(http.MethodGet, "/api/"+tt.table, nil, "")
			expectStatus(t, w, http.StatusOK)

			got := names(t, decode[masterList](t, w), tt.table, tt.nameKey)
			if len(got) != tt.count {
				t.Fatalf("expected %d records, got %d", tt.count, len(got))
			}
			if got[0] != tt.first {
				t.Errorf("expected %q first in name order, got %q", tt.first, got[0])
			}
		})
	}
}

func TestCreateMasterDataHandler(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/api/admin/categories", map[string]string{"category_name": "  Garden Tools "}, env.adminToken)
	expectStatus(t, w, http.StatusCreated)

	resp := decode[map[string]any](t, w)
	if resp["message"] != "Category created" {
		t.Errorf("unexpected message %v", resp["message"])
	}
	rec, ok := resp["category"].(map[string]any)
	if !ok || rec["category_name"] != "Garden Tools" {
		t.Errorf("unexpected record %v", resp["category"])
	}

	w = env.do(http.MethodGet, "/api/categories", nil, "")
	if got := names(t, decode[masterList](t, w), "categories", "category_name"); len(got) != 9 {
		t.Errorf("expected 9 categories, got %d", len(got))
	}
}

func TestCreateMasterDataHandler_NameRequired(t *testing.T) {
	env := newTestEnv(t)

	// A warehouse body uses "name"; brand_name is not it.
	w := env.do(http.MethodPost, "/api/admin/warehouses", map[string]string{"brand_name": "x"}, env.adminToken)
	expectStatus(t, w, http.StatusBadRequest)

	w = env.do(http.MethodPost, "/api/admin/brands", map[string]string{"brand_name": "   "}, env.adminToken)
	expectStatus(t, w, http.StatusBadRequest)
}

func TestMasterDataHandlers_AdminOnly(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/api/admin/brands", map[string]string{"brand_name": "Acme"}, env.userToken)
	expectStatus(t, w, http.StatusForbidden)

	w = env.do(http.MethodDelete, "/api/admin/brands/1", nil, "")
	expectStatus(t, w, http.StatusUnauthorized)
}

func TestUpdateMasterDataHandler(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPut, "/api/admin/brands/1", map[string]string{"brand_name": "Zebra"}, env.adminToken)
	expectStatus(t, w, http.StatusOK)

	w = env.do(http.MethodGet, "/api/brands", nil, "")
	got := names(t, decode[masterList](t, w), "brands", "brand_name")
	if got[len(got)-1] != "Zebra" {
		t.Errorf("expected renamed brand last, got %v", got)
	}

	// Unknown ids are not reported.
	w = env.do(http.MethodPut, "/api/admin/brands/999", map[string]string{"brand_name": "Ghost"}, env.adminToken)
	expectStatus(t, w, http.StatusOK)
}

func TestDeleteMasterDataHandler(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodDelete, "/api/admin/warehouses/5", nil, env.adminToken)
	expectStatus(t, w, http.StatusOK)

	w = env.do(http.MethodGet, "/api/warehouses", nil, "")
	if got := names(t, decode[masterList](t, w), "warehouses", "name"); len(got) != 4 {
		t.Errorf("expected 4 warehouses, got %d", len(got))
	}

	w = env.do(http.MethodDelete, "/api/admin/warehouses/999", nil, env.adminToken)
	expectStatus(t, w, http.StatusOK)
}

func TestDeleteMasterDataHandler_InUse(t *testing.T) {
	env := newTestEnv(t)
	p := env.createProduct(t, validProduct("Pinned"))

	w := env.do(http.MethodDelete, fmt.Sprintf("/api/admin/categories/%d", p.CategoryID), nil, env.adminToken)
	expectStatus(t, w, http.StatusConflict)
}

func TestBanLogHandler_NoRedis(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/api/admin/bans", nil, env.adminToken)
	expectStatus(t, w, http.StatusOK)

	w = env.do(http.MethodGet, "/api/admin/bans", nil, env.userToken)
	expectStatus(t, w, http.StatusForbidden)
}
