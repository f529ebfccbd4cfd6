package handlers

import (
	"log/slog"

	"github.com/rogerio-castellano/inventory-api/internal/auth"
	"github.com/rogerio-castellano/inventory-api/internal/http/ban"
	repo "github.com/rogerio-castellano/inventory-api/internal/repo"
	"github.com/rogerio-castellano/inventory-api/internal/storage"
)

const (
	productsPerPage   = 20
	maxImagesPerPost  = 5
	defaultShiftLimit = 100
)

// Server holds everything the handlers depend on. It is built once at startup
// and shared by all requests.
type Server struct {
	Users    repo.UserRepository
	Master   repo.MasterDataRepository
	Products repo.ProductRepository
	Images   repo.ImageRepository
	Shifts   repo.ShiftRepository
	Metrics  repo.MetricsRepository

	Tokens *auth.TokenService
	Google auth.GoogleVerifier
	Store  *storage.ImageStore
	Guard  *ban.Guard // nil disables login banning

	Logger        *slog.Logger
	MaxUploadSize int64 // bytes per image
}

func (s *Server) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
