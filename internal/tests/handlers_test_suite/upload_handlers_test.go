package handlers_test_suite

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rogerio-castellano/inventory-api/internal/http/handlers"
)

func TestUploadProductImagesHandler(t *testing.T) {
	env := newTestEnv(t)
	p := env.createProduct(t, validProduct("Camera"))

	w := env.upload(t, p.ID, pngFiles(3), env.userToken)
	expectStatus(t, w, http.StatusCreated)

	resp := decode[handlers.ImagesResponse](t, w)
	if resp.Message != "Images uploaded successfully" || len(resp.Images) != 3 {
		t.Fatalf("unexpected response %+v", resp)
	}
	for _, img := range resp.Images {
		if !strings.HasSuffix(img.Image, ".png") {
			t.Errorf("expected a .png name, got %q", img.Image)
		}
		if img.URL != "/uploads/products/"+img.Image {
			t.Errorf("unexpected url %q", img.URL)
		}
		if !env.store.Exists(img.Image) {
			t.Errorf("expected %s on disk", img.Image)
		}
	}

	// Stored files are served under /uploads.
	w = env.do(http.MethodGet, resp.Images[0].URL, nil, "")
	expectStatus(t, w, http.StatusOK)

	// The directory itself is not listed.
	for _, dir := range []string{"/uploads/products/", "/uploads/"} {
		w = env.do(http.MethodGet, dir, nil, "")
		expectStatus(t, w, http.StatusNotFound)
		if strings.Contains(w.Body.String(), resp.Images[0].Image) {
			t.Errorf("%s leaked a stored file name", dir)
		}
	}

	w = env.do(http.MethodGet, fmt.Sprintf("/api/products/%d", p.ID), nil, "")
	if detail := decode[handlers.ProductDetailResponse](t, w).Product; len(detail.ProductImages) != 3 {
		t.Errorf("expected 3 images on the product, got %d", len(detail.ProductImages))
	}
}

func TestUploadProductImagesHandler_Rejects(t *testing.T) {
	env := newTestEnv(t)
	p := env.createProduct(t, validProduct("Camera"))

	tests := []struct {
		name      string
		productID int
		files     map[string][]byte
		status    int
		message   string
	}{
		{"no files", p.ID, map[string][]byte{}, http.StatusBadRequest, "No files uploaded"},
		{"too many files", p.ID, pngFiles(6), http.StatusBadRequest, "Too many files, at most 5 are allowed"},
		{"not an image", p.ID, map[string][]byte{"notes.png": []byte("just some text")}, http.StatusBadRequest, "Only image files are allowed"},
		{"too large", p.ID, map[string][]byte{"big.png": append(append([]byte{}, pngHeader...), make([]byte, 2<<20)...)}, http.StatusBadRequest, "big.png exceeds the 1 MB limit"},
		{"missing product", 9999, pngFiles(1), http.StatusNotFound, "Product not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.upload(t, tt.productID, tt.files, env.userToken)
			expectStatus(t, w, tt.status)
			if resp := decode[handlers.MessageResponse](t, w); resp.Message != tt.message {
				t.Errorf("expected %q, got %q", tt.message, resp.Message)
			}
		})
	}

	images, err := env.images.ListByProduct(t.Context(), p.ID)
	if err != nil {
		t.Fatalf("listing images: %v", err)
	}
	if len(images) != 0 {
		t.Errorf("expected no stored images, got %d", len(images))
	}
}

func TestUploadProductImagesHandler_RequiresAuth(t *testing.T) {
	env := newTestEnv(t)
	p := env.createProduct(t, validProduct("Camera"))

	w := env.upload(t, p.ID, pngFiles(1), "")
	expectStatus(t, w, http.StatusUnauthorized)
}

func TestUploadProductImagesHandler_NotMultipart(t *testing.T) {
	env := newTestEnv(t)
	p := env.createProduct(t, validProduct("Camera"))

	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/upload/products/%d/images", p.ID), strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	w := env.send(req, env.userToken)
	expectStatus(t, w, http.StatusBadRequest)
}

func TestDeleteProductImageHandler(t *testing.T) {
	env := newTestEnv(t)
	p := env.createProduct(t, validProduct("Camera"))

	w := env.upload(t, p.ID, pngFiles(2), env.userToken)
	expectStatus(t, w, http.StatusCreated)
	images := decode[handlers.ImagesResponse](t, w).Images

	w = env.do(http.MethodDelete, fmt.Sprintf("/api/upload/images/%d", images[0].ID), nil, env.userToken)
	expectStatus(t, w, http.StatusOK)
	if resp := decode[handlers.MessageResponse](t, w); resp.Message != "Image deleted successfully" {
		t.Errorf("unexpected message %q", resp.Message)
	}
	if env.store.Exists(images[0].Image) {
		t.Error("expected the file to be removed")
	}
	if !env.store.Exists(images[1].Image) {
		t.Error("expected the other file to remain")
	}

	w = env.do(http.MethodDelete, fmt.Sprintf("/api/upload/images/%d", images[0].ID), nil, env.userToken)
	expectStatus(t, w, http.StatusNotFound)
	if resp := decode[handlers.MessageResponse](t, w); resp.Message != "Image not found" {
		t.Errorf("unexpected message %q", resp.Message)
	}
}

func TestDeleteProductImageHandler_MissingFile(t *testing.T) {
	env := newTestEnv(t)
	p := env.createProduct(t, validProduct("Camera"))

	img, err := env.images.Create(t.Context(), p.ID, "already-gone.png")
	if err != nil {
		t.Fatalf("creating image row: %v", err)
	}

	w := env.do(http.MethodDelete, fmt.Sprintf("/api/upload/images/%d", img.ID), nil, env.userToken)
	expectStatus(t, w, http.StatusOK)
}
