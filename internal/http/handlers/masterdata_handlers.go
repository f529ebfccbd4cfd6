package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/rogerio-castellano/inventory-api/internal/models"
	"github.com/rogerio-castellano/inventory-api/internal/repo"
)

func nameRequiredMessage(kind models.MasterKind) string {
	if kind.NameColumn == "name" {
		return "Name is required"
	}
	return kind.Label + " name is required"
}

// ListMasterData godoc
// @Summary List warehouses, categories or brands ordered by name
// @Tags master-data
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 500 {object} MessageResponse
// @Router /api/warehouses [get]
// @Router /api/categories [get]
// @Router /api/brands [get]
func (s *Server) ListMasterData(kind models.MasterKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := s.Master.List(r.Context(), kind)
		if err != nil {
			s.internalError(w, r, "list "+kind.Table, "Failed to fetch "+kind.Table, err)
			return
		}
		s.respond(w, http.StatusOK, map[string]any{"status": true, kind.Table: records})
	}
}

// readName decodes {"<name column>": "..."}.
func readName(w http.ResponseWriter, r *http.Request, kind models.MasterKind) (string, bool) {
	var body map[string]any
	if err := readJSON(w, r, &body); err != nil {
		return "", false
	}
	name, _ := body[kind.NameColumn].(string)
	name = strings.TrimSpace(name)
	return name, name != ""
}

// CreateMasterData godoc
// @Summary Create a warehouse, category or brand
// @Description Bodies are {"name"}, {"category_name"} and {"brand_name"} respectively.
// @Tags master-data
// @Accept json
// @Produce json
// @Param record body map[string]string true "Name"
// @Success 201 {object} map[string]any
// @Failure 400 {object} MessageResponse
// @Failure 403 {object} MessageResponse
// @Router /api/admin/warehouses [post]
// @Router /api/admin/categories [post]
// @Router /api/admin/brands [post]
// @Security BearerAuth
func (s *Server) CreateMasterData(kind models.MasterKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, ok := readName(w, r, kind)
		if !ok {
			s.fail(w, http.StatusBadRequest, nameRequiredMessage(kind))
			return
		}

		rec, err := s.Master.Create(r.Context(), kind, name)
		if err != nil {
			s.internalError(w, r, "create "+kind.Singular, "Failed to create "+kind.Singular, err)
			return
		}

		s.respond(w, http.StatusCreated, map[string]any{
			"status":      true,
			"message":     kind.Label + " created",
			kind.Singular: rec,
		})
	}
}

// UpdateMasterData godoc
// @Summary Rename a warehouse, category or brand
// @Description An id that does not exist is not reported.
// @Tags master-data
// @Accept json
// @Produce json
// @Param id path int true "Record ID"
// @Param record body map[string]string true "Name"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} MessageResponse
// @Failure 403 {object} MessageResponse
// @Router /api/admin/warehouses/{id} [put]
// @Router /api/admin/categories/{id} [put]
// @Router /api/admin/brands/{id} [put]
// @Security BearerAuth
func (s *Server) UpdateMasterData(kind models.MasterKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			s.fail(w, http.StatusBadRequest, "Invalid "+kind.Singular+" ID")
			return
		}

		name, ok := readName(w, r, kind)
		if !ok {
			s.fail(w, http.StatusBadRequest, nameRequiredMessage(kind))
			return
		}

		if err := s.Master.Update(r.Context(), kind, id, name); err != nil {
			s.internalError(w, r, "update "+kind.Singular, "Failed to update "+kind.Singular, err)
			return
		}
		s.respond(w, http.StatusOK, MessageResponse{Status: true, Message: kind.Label + " updated"})
	}
}

// DeleteMasterData godoc
// @Summary Delete a warehouse, category or brand
// @Description An id that does not exist is not reported. Records still used by products cannot be deleted.
// @Tags master-data
// @Produce json
// @Param id path int true "Record ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} MessageResponse
// @Failure 403 {object} MessageResponse
// @Failure 409 {object} MessageResponse
// @Router /api/admin/warehouses/{id} [delete]
// @Router /api/admin/categories/{id} [delete]
// @Router /api/admin/brands/{id} [delete]
// @Security BearerAuth
func (s *Server) DeleteMasterData(kind models.MasterKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			s.fail(w, http.StatusBadRequest, "Invalid "+kind.Singular+" ID")
			return
		}

		if err := s.Master.Delete(r.Context(), kind, id); err != nil {
			if errors.Is(err, repo.ErrInvalidReference) {
				s.fail(w, http.StatusConflict, kind.Label+" is still used by products")
				return
			}
			s.internalError(w, r, "delete "+kind.Singular, "Failed to delete "+kind.Singular, err)
			return
		}
		s.respond(w, http.StatusOK, MessageResponse{Status: true, Message: kind.Label + " deleted"})
	}
}

// BanLog godoc
// @Summary Recent login bans
// @Tags admin
// @Produce json
// @Success 200 {object} BanLogResponse
// @Failure 403 {object} MessageResponse
// @Router /api/admin/bans [get]
// @Security BearerAuth
func (s *Server) BanLog(w http.ResponseWriter, r *http.Request) {
	entries, err := s.Guard.Recent(r.Context(), 50)
	if err != nil {
		s.internalError(w, r, "ban log", "Failed to fetch ban log", err)
		return
	}
	s.respond(w, http.StatusOK, BanLogResponse{Status: true, Bans: entries})
}
