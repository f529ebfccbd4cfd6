package handlers_test_suite

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rogerio-castellano/inventory-api/internal/auth"
	"github.com/rogerio-castellano/inventory-api/internal/http/handlers"
	"github.com/rogerio-castellano/inventory-api/internal/http/router"
	"github.com/rogerio-castellano/inventory-api/internal/models"
	"github.com/rogerio-castellano/inventory-api/internal/repo"
	"github.com/rogerio-castellano/inventory-api/internal/storage"
)

const testPassword = "secret"

// pngHeader is enough for content sniffing to report image/png.
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

type fakeGoogle struct {
	identities map[string]auth.GoogleIdentity
}

func (f *fakeGoogle) Verify(_ context.Context, idToken string) (auth.GoogleIdentity, error) {
	id, ok := f.identities[idToken]
	if !ok {
		return auth.GoogleIdentity{}, errors.New("token rejected")
	}
	return id, nil
}

type testEnv struct {
	server   *handlers.Server
	router   http.Handler
	tokens   *auth.TokenService
	users    *repo.InMemoryUserRepository
	master   *repo.InMemoryMasterDataRepository
	products *repo.InMemoryProductRepository
	images   *repo.InMemoryImageRepository
	shifts   *repo.InMemoryShiftRepository
	store    *storage.ImageStore
	google   *fakeGoogle

	admin      models.User
	user       models.User
	adminToken string
	userToken  string
}

// newTestEnv wires the full router over in-memory repositories with seeded
// master data, one admin and one regular user.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		tokens: auth.NewTokenService("test-secret", time.Hour),
		users:  repo.NewInMemoryUserRepository(),
		master: repo.NewInMemoryMasterDataRepository(),
		images: repo.NewInMemoryImageRepository(),
		shifts: repo.NewInMemoryShiftRepository(),
		google: &fakeGoogle{identities: map[string]auth.GoogleIdentity{}},
	}
	env.products = repo.NewInMemoryProductRepository(env.master, env.images)
	env.products.SetShiftRepository(env.shifts)

	metrics := repo.NewInMemoryMetricsRepository()
	metrics.SetRepositories(env.products, env.master, env.shifts)

	if _, err := repo.SeedMasterData(context.Background(), env.master); err != nil {
		t.Fatalf("seeding master data: %v", err)
	}

	var err error
	env.store, err = storage.NewImageStore(t.TempDir())
	if err != nil {
		t.Fatalf("creating image store: %v", err)
	}

	env.admin = env.createUser(t, "admin@example.com", models.RoleAdmin)
	env.user = env.createUser(t, "user@example.com", models.RoleUser)
	env.adminToken = env.issue(t, env.admin)
	env.userToken = env.issue(t, env.user)

	s := &handlers.Server{
		Users:         env.users,
		Master:        env.master,
		Products:      env.products,
		Images:        env.images,
		Shifts:        env.shifts,
		Metrics:       metrics,
		Tokens:        env.tokens,
		Google:        env.google,
		Store:         env.store,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		MaxUploadSize: 1 << 20,
	}
	env.server = s
	env.router = router.NewRouter(s, router.Options{Development: true})
	return env
}

func (env *testEnv) createUser(t *testing.T, email, role string) models.User {
	t.Helper()
	hash, err := auth.HashPassword(testPassword)
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}
	u, err := env.users.CreateUser(context.Background(), models.User{
		Email:        email,
		PasswordHash: &hash,
		Name:         "Test",
		Role:         role,
	})
	if err != nil {
		t.Fatalf("creating user %s: %v", email, err)
	}
	return u
}

func (env *testEnv) issue(t *testing.T, u models.User) string {
	t.Helper()
	token, err := env.tokens.Issue(u)
	if err != nil {
		t.Fatalf("issuing token: %v", err)
	}
	return token
}

// do sends body as JSON unless it is already a string.
func (env *testEnv) do(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func (env *testEnv) send(req *http.Request, token string) *httptest.ResponseRecorder {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(w.Body).Decode(&v); err != nil {
		t.Fatalf("error decoding response: %v (body %q)", err, w.Body.String())
	}
	return v
}

func expectStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("expected status %d, got %d: %s", want, w.Code, w.Body.String())
	}
}

func validProduct(name string) map[string]any {
	return map[string]any{
		"warehouse_id":         1,
		"category_id":          1,
		"brand_id":             1,
		"product_name":         name,
		"product_retail_price": 19.99,
		"product_sale_price":   14.5,
	}
}

func (env *testEnv) createProduct(t *testing.T, body map[string]any) models.Product {
	t.Helper()
	w := env.do(http.MethodPost, "/api/products", body, env.userToken)
	expectStatus(t, w, http.StatusCreated)
	return decode[handlers.ProductResponse](t, w).Product
}

// seedProducts creates n products named "Product 01".. in creation order.
func (env *testEnv) seedProducts(t *testing.T, n int) []models.Product {
	t.Helper()
	out := make([]models.Product, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, env.createProduct(t, validProduct(fmt.Sprintf("Product %02d", i))))
	}
	return out
}

func multipartCSV(csvContent string, filename string) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, _ := writer.CreateFormFile("file", filename)
	part.Write([]byte(csvContent))

	writer.Close()
	return &buf, writer.FormDataContentType()
}

// multipartImages puts every file under the "images" field.
func multipartImages(files map[string][]byte) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for name, content := range files {
		part, _ := writer.CreateFormFile("images", name)
		part.Write(content)
	}

	writer.Close()
	return &buf, writer.FormDataContentType()
}

func pngFiles(n int) map[string][]byte {
	files := make(map[string][]byte, n)
	for i := 0; i < n; i++ {
		files[fmt.Sprintf("photo%d.png", i)] = append(append([]byte{}, pngHeader...), byte(i))
	}
	return files
}

func (env *testEnv) upload(t *testing.T, productID int, files map[string][]byte, token string) *httptest.ResponseRecorder {
	t.Helper()
	body, contentType := multipartImages(files)
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/upload/products/%d/images", productID), body)
	req.Header.Set("Content-Type", contentType)
	return env.send(req, token)
}
