package handlers

import (
	"errors"
	"net/http"
	"strconv"

	repo "github.com/rogerio-castellano/inventory-api/internal/repo"
)

// ShiftProduct godoc
// @Summary Move a product to another warehouse
// @Description Changes the product's warehouse and records the move.
// @Tags shifts
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param shift body ShiftRequest true "Target warehouse"
// @Success 201 {object} ShiftResponse
// @Failure 400 {object} MessageResponse
// @Failure 401 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /api/products/{id}/shift [post]
// @Security BearerAuth
func (s *Server) ShiftProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		s.fail(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var req ShiftRequest
	if err := readJSON(w, r, &req); err != nil {
		s.fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ToWarehouseID == nil || *req.ToWarehouseID <= 0 {
		s.fail(w, http.StatusBadRequest, "Target warehouse is required")
		return
	}

	product, err := s.Products.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			s.fail(w, http.StatusNotFound, "Product not found")
			return
		}
		s.internalError(w, r, "shift product", "Failed to shift product", err)
		return
	}

	if product.WarehouseID == *req.ToWarehouseID {
		s.fail(w, http.StatusBadRequest, "Product is already in that warehouse")
		return
	}

	if _, err := s.Products.Update(r.Context(), id, repo.ProductUpdate{WarehouseID: req.ToWarehouseID}); err != nil {
		if errors.Is(err, repo.ErrInvalidReference) {
			s.fail(w, http.StatusBadRequest, "Warehouse does not exist")
			return
		}
		s.failProductWrite(w, r, "shift product", err)
		return
	}

	shift, err := s.Shifts.Log(r.Context(), id, product.WarehouseID, *req.ToWarehouseID)
	if err != nil {
		s.internalError(w, r, "shift product", "Failed to record shift", err)
		return
	}

	s.respond(w, http.StatusCreated, ShiftResponse{Status: true, Message: "Product shifted successfully", Shift: shift})
}

// GetShifts godoc
// @Summary Get product warehouse shifts
// @Tags shifts
// @Produce json
// @Param id path int true "Product ID"
// @Param since query string false "Filter shifts from this timestamp (RFC3339)"
// @Param until query string false "Filter shifts until this timestamp (RFC3339)"
// @Param offset query int false "Offset for pagination"
// @Param limit query int false "Limit for pagination"
// @Success 200 {object} ShiftsSearchResult
// @Failure 400 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /api/products/{id}/shifts [get]
func (s *Server) GetShifts(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		s.fail(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	q := r.URL.Query()
	filter := repo.ShiftFilter{Limit: defaultShiftLimit}

	if filter.Since, err = parseTimeParam(q.Get("since")); err != nil {
		s.fail(w, http.StatusBadRequest, "Invalid since date format")
		return
	}
	if filter.Until, err = parseTimeParam(q.Get("until")); err != nil {
		s.fail(w, http.StatusBadRequest, "Invalid until date format")
		return
	}

	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit <= 0 {
			s.fail(w, http.StatusBadRequest, "Limit must be greater than zero")
			return
		}
		filter.Limit = limit
	}
	if v := q.Get("offset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil || offset < 0 {
			s.fail(w, http.StatusBadRequest, "Offset must be zero or positive")
			return
		}
		filter.Offset = offset
	}

	if _, err := s.Products.GetByID(r.Context(), id); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			s.fail(w, http.StatusNotFound, "Product not found")
			return
		}
		s.internalError(w, r, "list shifts", "Failed to fetch shifts", err)
		return
	}

	shifts, total, err := s.Shifts.GetByProductID(r.Context(), id, filter)
	if err != nil {
		s.internalError(w, r, "list shifts", "Failed to fetch shifts", err)
		return
	}

	s.respond(w, http.StatusOK, ShiftsSearchResult{Status: true, Shifts: ShiftPage{Data: shifts, Total: total}})
}
