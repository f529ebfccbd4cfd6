package handlers

import (
	"errors"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/rogerio-castellano/inventory-api/internal/models"
	repo "github.com/rogerio-castellano/inventory-api/internal/repo"
)

const maxProductPage = math.MaxInt32 / productsPerPage

func (s *Server) withURLs(images []models.ProductImage) []models.ProductImage {
	if images == nil {
		return []models.ProductImage{}
	}
	if s.Store != nil {
		for i := range images {
			images[i].URL = s.Store.URL(images[i].Image)
		}
	}
	return images
}

// failProductWrite maps repository errors of create and update.
func (s *Server) failProductWrite(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, repo.ErrProductNotFound):
		s.fail(w, http.StatusNotFound, "Product not found")
	case errors.Is(err, repo.ErrInvalidReference):
		s.fail(w, http.StatusBadRequest, "Warehouse, category or brand does not exist")
	case errors.Is(err, repo.ErrDuplicatedValueUnique):
		s.fail(w, http.StatusConflict, "A product with this unique code already exists")
	default:
		s.internalError(w, r, op, "Failed to "+op, err)
	}
}

func queryID(q url.Values, name string) (*int, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// GetProducts godoc
// @Summary List products
// @Description Twenty products per page, newest first, with master-data names and images.
// @Tags products
// @Produce json
// @Param page query int false "Page number, starting at 1"
// @Param warehouse_id query int false "Filter by warehouse"
// @Param category_id query int false "Filter by category"
// @Param brand_id query int false "Filter by brand"
// @Param search query string false "Substring of name, unique code or scan code"
// @Success 200 {object} ProductsSearchResult
// @Failure 400 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /api/products [get]
func (s *Server) GetProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, err := strconv.Atoi(q.Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	// keeps the offset from overflowing; such pages are empty anyway
	if page > maxProductPage {
		page = maxProductPage
	}

	filter := repo.ProductFilter{
		Search: strings.TrimSpace(q.Get("search")),
		Offset: (page - 1) * productsPerPage,
		Limit:  productsPerPage,
	}
	next := url.Values{}
	for name, dst := range map[string]**int{
		"warehouse_id": &filter.WarehouseID,
		"category_id":  &filter.CategoryID,
		"brand_id":     &filter.BrandID,
	} {
		id, err := queryID(q, name)
		if err != nil {
			s.fail(w, http.StatusBadRequest, "Invalid "+name)
			return
		}
		if id != nil {
			*dst = id
			next.Set(name, strconv.Itoa(*id))
		}
	}
	if filter.Search != "" {
		next.Set("search", filter.Search)
	}

	products, total, err := s.Products.Filter(r.Context(), filter)
	if err != nil {
		s.internalError(w, r, "list products", "Failed to fetch products", err)
		return
	}

	ids := make([]int, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	images, err := s.Images.ListByProducts(r.Context(), ids)
	if err != nil {
		s.internalError(w, r, "list products", "Failed to fetch products", err)
		return
	}
	for i := range products {
		products[i].ProductImages = s.withURLs(images[products[i].ID])
	}
	if products == nil {
		products = []models.ProductDetail{}
	}

	lastPage := (total + productsPerPage - 1) / productsPerPage
	var nextURL *string
	if page < lastPage {
		next.Set("page", strconv.Itoa(page+1))
		u := "/api/products?" + next.Encode()
		nextURL = &u
	}

	s.respond(w, http.StatusOK, ProductsSearchResult{
		Status: true,
		Products: ProductPage{
			Data:        products,
			Total:       total,
			Page:        page,
			PerPage:     productsPerPage,
			LastPage:    lastPage,
			NextPageURL: nextURL,
		},
	})
}

// GetProductByID godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} ProductDetailResponse
// @Failure 400 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /api/products/{id} [get]
func (s *Server) GetProductByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		s.fail(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	product, err := s.Products.GetDetail(r.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			s.fail(w, http.StatusNotFound, "Product not found")
			return
		}
		s.internalError(w, r, "get product", "Failed to fetch product", err)
		return
	}

	images, err := s.Images.ListByProduct(r.Context(), id)
	if err != nil {
		s.internalError(w, r, "get product", "Failed to fetch product", err)
		return
	}
	product.ProductImages = s.withURLs(images)

	s.respond(w, http.StatusOK, ProductDetailResponse{Status: true, Product: product})
}

// CreateProduct godoc
// @Summary Create a new product
// @Description Quantity defaults to 1 and new products are never sold.
// @Tags products
// @Accept json
// @Produce json
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} ProductResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 401 {object} MessageResponse
// @Failure 409 {object} MessageResponse
// @Router /api/products [post]
// @Security BearerAuth
func (s *Server) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		s.fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := validateProductCreate(req); len(errs) > 0 {
		s.respond(w, http.StatusBadRequest, ValidationErrorResponse{Status: false, Message: "Missing required fields", Errors: errs})
		return
	}

	product := models.Product{
		WarehouseID: *req.WarehouseID,
		CategoryID:  *req.CategoryID,
		BrandID:     *req.BrandID,
		Name:        strings.TrimSpace(*req.Name),
		UniqueCode:  nonEmpty(req.UniqueCode),
		ScanCode:    nonEmpty(req.ScanCode),
		Description: nonEmpty(req.Description),
		RetailPrice: *req.RetailPrice,
		SalePrice:   *req.SalePrice,
		Quantity:    1,
	}
	if req.Quantity != nil {
		product.Quantity = *req.Quantity
	}

	created, err := s.Products.Create(r.Context(), product)
	if err != nil {
		s.failProductWrite(w, r, "create product", err)
		return
	}

	s.respond(w, http.StatusCreated, ProductResponse{Status: true, Message: "Product created successfully", Product: created})
}

// UpdateProduct godoc
// @Summary Update a product
// @Description Only the fields present in the body change. Unknown fields are ignored.
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param product body ProductRequest true "Fields to change"
// @Success 200 {object} ProductResponse
// @Failure 400 {object} MessageResponse
// @Failure 401 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Failure 409 {object} MessageResponse
// @Router /api/products/{id} [put]
// @Security BearerAuth
func (s *Server) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		s.fail(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		s.fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if _, err := s.Products.GetByID(r.Context(), id); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			s.fail(w, http.StatusNotFound, "Product not found")
			return
		}
		s.internalError(w, r, "update product", "Failed to update product", err)
		return
	}

	update := req.toUpdate()
	if update.IsEmpty() {
		s.fail(w, http.StatusBadRequest, "No valid fields to update")
		return
	}
	if errs := validateProductUpdate(req); len(errs) > 0 {
		s.respond(w, http.StatusBadRequest, ValidationErrorResponse{Status: false, Message: "Invalid product fields", Errors: errs})
		return
	}

	updated, err := s.Products.Update(r.Context(), id, update)
	if err != nil {
		s.failProductWrite(w, r, "update product", err)
		return
	}

	s.respond(w, http.StatusOK, ProductResponse{Status: true, Message: "Product updated successfully", Product: updated})
}

// DeleteProduct godoc
// @Summary Delete a product
// @Description Removes the product together with its images and their files.
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} MessageResponse
// @Failure 401 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /api/products/{id} [delete]
// @Security BearerAuth
func (s *Server) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		s.fail(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	images, err := s.Images.ListByProduct(r.Context(), id)
	if err != nil {
		s.internalError(w, r, "delete product", "Failed to delete product", err)
		return
	}

	if err := s.Products.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			s.fail(w, http.StatusNotFound, "Product not found")
			return
		}
		s.internalError(w, r, "delete product", "Failed to delete product", err)
		return
	}

	// Rows are gone with the product; a leftover file is only logged.
	for _, img := range images {
		if err := s.Store.Remove(img.Image); err != nil {
			s.logger().Warn("could not remove image file", "product_id", id, "image", img.Image, "error", err)
		}
	}

	s.respond(w, http.StatusOK, MessageResponse{Status: true, Message: "Product deleted successfully"})
}
