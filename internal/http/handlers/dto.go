package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rogerio-castellano/inventory-api/internal/http/ban"
	"github.com/rogerio-castellano/inventory-api/internal/models"
	repo "github.com/rogerio-castellano/inventory-api/internal/repo"
	"github.com/shopspring/decimal"
)

type MessageResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}

type ValidationErrorResponse struct {
	Status  bool                     `json:"status"`
	Message string                   `json:"message"`
	Errors  []ProductValidationError `json:"errors"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token"`
}

type AuthUser struct {
	ID           int     `json:"id"`
	Email        string  `json:"email"`
	Name         string  `json:"name"`
	Role         string  `json:"role"`
	GoogleID     *string `json:"google_id,omitempty"`
	ProfileImage *string `json:"profile_image,omitempty"`
	JWTToken     string  `json:"jwt_token"`
}

type AuthResponse struct {
	Status  bool     `json:"status"`
	Message string   `json:"message"`
	Token   string   `json:"token"`
	User    AuthUser `json:"user"`
}

type CurrentUser struct {
	ID           int     `json:"id"`
	Email        string  `json:"email"`
	Name         string  `json:"name"`
	Role         string  `json:"role"`
	ProfileImage *string `json:"profile_image"`
}

type CurrentUserResponse struct {
	Status bool        `json:"status"`
	User   CurrentUser `json:"user"`
}

// ProductRequest is the body of product create and update. Absent and null
// fields are both nil; a null unique_code, scan_code or description is
// remembered so an update can clear the column.
type ProductRequest struct {
	WarehouseID *int             `json:"warehouse_id"`
	CategoryID  *int             `json:"category_id"`
	BrandID     *int             `json:"brand_id"`
	Name        *string          `json:"product_name"`
	UniqueCode  *string          `json:"unique_code"`
	ScanCode    *string          `json:"scan_code"`
	Description *string          `json:"description"`
	RetailPrice *decimal.Decimal `json:"product_retail_price" swaggertype:"number"`
	SalePrice   *decimal.Decimal `json:"product_sale_price" swaggertype:"number"`
	Quantity    *int             `json:"quantity"`
	IsSold      *bool            `json:"is_sold"`

	nulls map[string]bool
}

// UnmarshalJSON also accepts ids and quantity as numeric strings, which form
// encoders send.
func (p *ProductRequest) UnmarshalJSON(data []byte) error {
	type plain ProductRequest
	aux := struct {
		*plain
		WarehouseID *flexInt `json:"warehouse_id"`
		CategoryID  *flexInt `json:"category_id"`
		BrandID     *flexInt `json:"brand_id"`
		Quantity    *flexInt `json:"quantity"`
	}{plain: (*plain)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	p.WarehouseID = aux.WarehouseID.intPtr()
	p.CategoryID = aux.CategoryID.intPtr()
	p.BrandID = aux.BrandID.intPtr()
	p.Quantity = aux.Quantity.intPtr()

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.nulls = map[string]bool{}
	for _, key := range []string{"unique_code", "scan_code", "description"} {
		if v, ok := raw[key]; ok && bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			p.nulls[key] = true
		}
	}
	return nil
}

type flexInt int

func (n *flexInt) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("%q is not an integer", s)
		}
		*n = flexInt(v)
		return nil
	}
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = flexInt(v)
	return nil
}

func (n *flexInt) intPtr() *int {
	if n == nil {
		return nil
	}
	v := int(*n)
	return &v
}

type ProductResponse struct {
	Status  bool           `json:"status"`
	Message string         `json:"message"`
	Product models.Product `json:"product"`
}

type ProductDetailResponse struct {
	Status  bool                 `json:"status"`
	Product models.ProductDetail `json:"product"`
}

type ProductPage struct {
	Data        []models.ProductDetail `json:"data"`
	Total       int                    `json:"total"`
	Page        int                    `json:"page"`
	PerPage     int                    `json:"per_page"`
	LastPage    int                    `json:"last_page"`
	NextPageURL *string                `json:"next_page_url"`
}

type ProductsSearchResult struct {
	Status   bool        `json:"status"`
	Products ProductPage `json:"products"`
}

type ImagesResponse struct {
	Status  bool                  `json:"status"`
	Message string                `json:"message"`
	Images  []models.ProductImage `json:"images"`
}

type ImportRowError struct {
	Row         int    `json:"row"`
	Description string `json:"description"`
}

type ImportProductsResult struct {
	Status                bool             `json:"status"`
	ImportedProductsCount int              `json:"imported"`
	Errors                []ImportRowError `json:"errors"`
}

type ShiftRequest struct {
	ToWarehouseID *int `json:"to_warehouse_id"`
}

type ShiftResponse struct {
	Status  bool         `json:"status"`
	Message string       `json:"message"`
	Shift   models.Shift `json:"shift"`
}

type ShiftPage struct {
	Data  []models.Shift `json:"data"`
	Total int            `json:"total"`
}

type ShiftsSearchResult struct {
	Status bool      `json:"status"`
	Shifts ShiftPage `json:"shifts"`
}

type MetricsResponse struct {
	Status  bool         `json:"status"`
	Metrics repo.Metrics `json:"metrics"`
}

type BanLogResponse struct {
	Status bool           `json:"status"`
	Bans   []ban.LogEntry `json:"bans"`
}

// parseTimeParam accepts RFC 3339, restoring a '+' that query decoding turned
// into a space (2025-07-03T17:44:03 02:00).
func parseTimeParam(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if len(s) == len(time.RFC3339) && s[len(s)-6] == ' ' {
		s = s[:len(s)-6] + "+" + s[len(s)-5:]
	}
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &ts, nil
}
