package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/rogerio-castellano/inventory-api/internal/models"
	repo "github.com/rogerio-castellano/inventory-api/internal/repo"
)

const multipartMemory = 8 << 20

// imageExtensions maps sniffed content types to stored file extensions.
var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// sniffImage returns the extension for an accepted image type.
func sniffImage(fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	head := make([]byte, 512)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", err
	}
	ext, ok := imageExtensions[http.DetectContentType(head[:n])]
	if !ok {
		return "", fmt.Errorf("%s is not a supported image", fh.Filename)
	}
	return ext, nil
}

// UploadProductImages godoc
// @Summary Upload product images
// @Description Up to five jpeg, png, gif or webp files in the "images" field.
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param productId path int true "Product ID"
// @Param images formData file true "Image files"
// @Success 201 {object} ImagesResponse
// @Failure 400 {object} MessageResponse
// @Failure 401 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /api/upload/products/{productId}/images [post]
// @Security BearerAuth
func (s *Server) UploadProductImages(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r, "productId")
	if err != nil {
		s.fail(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxImagesPerPost*s.MaxUploadSize+(1<<20))
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.fail(w, http.StatusBadRequest, "Upload is too large")
			return
		}
		s.fail(w, http.StatusBadRequest, "No files uploaded")
		return
	}
	defer r.MultipartForm.RemoveAll()

	files := r.MultipartForm.File["images"]
	if len(files) == 0 {
		s.fail(w, http.StatusBadRequest, "No files uploaded")
		return
	}
	if len(files) > maxImagesPerPost {
		s.fail(w, http.StatusBadRequest, fmt.Sprintf("Too many files, at most %d are allowed", maxImagesPerPost))
		return
	}

	exts := make([]string, len(files))
	for i, fh := range files {
		if fh.Size > s.MaxUploadSize {
			s.fail(w, http.StatusBadRequest, fmt.Sprintf("%s exceeds the %d MB limit", fh.Filename, s.MaxUploadSize>>20))
			return
		}
		ext, err := sniffImage(fh)
		if err != nil {
			s.fail(w, http.StatusBadRequest, "Only image files are allowed")
			return
		}
		exts[i] = ext
	}

	if _, err := s.Products.GetByID(r.Context(), productID); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			s.fail(w, http.StatusNotFound, "Product not found")
			return
		}
		s.internalError(w, r, "upload images", "Failed to upload images", err)
		return
	}

	created := make([]models.ProductImage, 0, len(files))
	for i, fh := range files {
		img, err := s.storeImage(r, productID, fh, exts[i])
		if err != nil {
			s.internalError(w, r, "upload images", "Failed to upload images", err)
			return
		}
		created = append(created, img)
	}

	s.respond(w, http.StatusCreated, ImagesResponse{
		Status:  true,
		Message: "Images uploaded successfully",
		Images:  s.withURLs(created),
	})
}

// storeImage writes the file and records it, removing the file again when the
// row cannot be inserted.
func (s *Server) storeImage(r *http.Request, productID int, fh *multipart.FileHeader, ext string) (models.ProductImage, error) {
	f, err := fh.Open()
	if err != nil {
		return models.ProductImage{}, err
	}
	defer f.Close()

	name, err := s.Store.Save(f, ext)
	if err != nil {
		return models.ProductImage{}, err
	}

	img, err := s.Images.Create(r.Context(), productID, name)
	if err != nil {
		if rmErr := s.Store.Remove(name); rmErr != nil {
			s.logger().Warn("could not remove orphaned image", "image", name, "error", rmErr)
		}
		return models.ProductImage{}, err
	}
	return img, nil
}

// DeleteProductImage godoc
// @Summary Delete a product image
// @Description Removes the stored file, if it still exists, and the image record.
// @Tags uploads
// @Produce json
// @Param imageId path int true "Image ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} MessageResponse
// @Failure 401 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /api/upload/images/{imageId} [delete]
// @Security BearerAuth
func (s *Server) DeleteProductImage(w http.ResponseWriter, r *http.Request) {
	imageID, err := pathID(r, "imageId")
	if err != nil {
		s.fail(w, http.StatusBadRequest, "Invalid image ID")
		return
	}

	img, err := s.Images.GetByID(r.Context(), imageID)
	if err != nil {
		if errors.Is(err, repo.ErrImageNotFound) {
			s.fail(w, http.StatusNotFound, "Image not found")
			return
		}
		s.internalError(w, r, "delete image", "Failed to delete image", err)
		return
	}

	if err := s.Store.Remove(img.Image); err != nil {
		s.internalError(w, r, "delete image", "Failed to delete image", err)
		return
	}

	if err := s.Images.Delete(r.Context(), imageID); err != nil && !errors.Is(err, repo.ErrImageNotFound) {
		s.internalError(w, r, "delete image", "Failed to delete image", err)
		return
	}

	s.respond(w, http.StatusOK, MessageResponse{Status: true, Message: "Image deleted successfully"})
}
