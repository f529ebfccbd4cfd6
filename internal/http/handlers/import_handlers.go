package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	models "github.com/rogerio-castellano/inventory-api/internal/models"
	repo "github.com/rogerio-castellano/inventory-api/internal/repo"
	"github.com/shopspring/decimal"
)

var requiredImportColumns = []string{
	"warehouse_id", "category_id", "brand_id", "product_name", "product_retail_price", "product_sale_price",
}

type csvRow struct {
	Line    int
	Request ProductRequest
	Err     error
}

func parseCSV(file io.Reader) ([]csvRow, error) {
	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV header")
	}

	index := map[string]int{}
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range requiredImportColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("CSV header is missing column %q", col)
		}
	}

	var rows []csvRow
	for line := 2; ; line++ { // header is row 1
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %v", err)
		}

		req, err := rowRequest(index, record)
		rows = append(rows, csvRow{Line: line, Request: req, Err: err})
	}
	return rows, nil
}

// rowRequest converts a record into a product body. Empty cells are absent.
func rowRequest(index map[string]int, record []string) (ProductRequest, error) {
	cell := func(col string) *string {
		i, ok := index[col]
		if !ok || i >= len(record) {
			return nil
		}
		v := strings.TrimSpace(record[i])
		if v == "" {
			return nil
		}
		return &v
	}

	var req ProductRequest
	var errs []error
	intCell := func(col string) *int {
		s := cell(col)
		if s == nil {
			return nil
		}
		v, err := strconv.Atoi(*s)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid %s", col))
			return nil
		}
		return &v
	}
	decimalCell := func(col string) *decimal.Decimal {
		s := cell(col)
		if s == nil {
			return nil
		}
		v, err := decimal.NewFromString(*s)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid %s", col))
			return nil
		}
		return &v
	}

	req.WarehouseID = intCell("warehouse_id")
	req.CategoryID = intCell("category_id")
	req.BrandID = intCell("brand_id")
	req.Name = cell("product_name")
	req.UniqueCode = cell("unique_code")
	req.ScanCode = cell("scan_code")
	req.Description = cell("description")
	req.RetailPrice = decimalCell("product_retail_price")
	req.SalePrice = decimalCell("product_sale_price")
	req.Quantity = intCell("quantity")
	return req, errors.Join(errs...)
}

func describeValidation(errs []ProductValidationError) string {
	parts := make([]string, len(errs))
	for i, e := range errs {
		parts[i] = e.Description
	}
	return strings.Join(parts, "; ")
}

// ImportProducts godoc
// @Summary Import products via CSV
// @Description Header: warehouse_id,category_id,brand_id,product_name,unique_code,scan_code,description,product_retail_price,product_sale_price,quantity.
// @Description With mode=update a row whose unique_code already exists updates that product.
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Param mode query string false "Import mode (skip|update)"
// @Success 200 {object} ImportProductsResult
// @Failure 400 {object} MessageResponse
// @Failure 401 {object} MessageResponse
// @Router /api/products/import [post]
// @Security BearerAuth
func (s *Server) ImportProducts(w http.ResponseWriter, r *http.Request) {
	mode := strings.ToLower(r.URL.Query().Get("mode"))
	if mode != "update" {
		mode = "skip" // default
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		s.fail(w, http.StatusBadRequest, "Missing file")
		return
	}
	defer file.Close()

	records, err := parseCSV(file)
	if err != nil {
		s.fail(w, http.StatusBadRequest, err.Error())
		return
	}

	var imported int
	errorsList := []ImportRowError{}
	rowError := func(line int, format string, args ...any) {
		errorsList = append(errorsList, ImportRowError{Row: line, Description: fmt.Sprintf(format, args...)})
	}

	for _, rec := range records {
		if rec.Err != nil {
			rowError(rec.Line, "%v", rec.Err)
			continue
		}
		if errs := validateProductCreate(rec.Request); len(errs) > 0 {
			rowError(rec.Line, "%s", describeValidation(errs))
			continue
		}

		req := rec.Request
		if req.UniqueCode != nil {
			existing, err := s.Products.GetByUniqueCode(r.Context(), *req.UniqueCode)
			switch {
			case err == nil && mode == "skip":
				rowError(rec.Line, "product with unique code '%s' already exists", *req.UniqueCode)
				continue
			case err == nil:
				if _, err := s.Products.Update(r.Context(), existing.ID, req.toUpdate()); err != nil {
					rowError(rec.Line, "failed to update '%s': %v", *req.UniqueCode, err)
					continue
				}
				imported++
				continue
			case !errors.Is(err, repo.ErrProductNotFound):
				rowError(rec.Line, "lookup failed: %v", err)
				continue
			}
		}

		product := models.Product{
			WarehouseID: *req.WarehouseID,
			CategoryID:  *req.CategoryID,
			BrandID:     *req.BrandID,
			Name:        *req.Name,
			UniqueCode:  req.UniqueCode,
			ScanCode:    req.ScanCode,
			Description: req.Description,
			RetailPrice: *req.RetailPrice,
			SalePrice:   *req.SalePrice,
			Quantity:    1,
		}
		if req.Quantity != nil {
			product.Quantity = *req.Quantity
		}
		if _, err := s.Products.Create(r.Context(), product); err != nil {
			rowError(rec.Line, "%v", err)
			continue
		}
		imported++
	}

	s.respond(w, http.StatusOK, ImportProductsResult{
		Status:                true,
		ImportedProductsCount: imported,
		Errors:                errorsList,
	})
}
