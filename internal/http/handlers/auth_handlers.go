package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/rogerio-castellano/inventory-api/internal/auth"
	mw "github.com/rogerio-castellano/inventory-api/internal/http/middleware"
	"github.com/rogerio-castellano/inventory-api/internal/models"
	"github.com/rogerio-castellano/inventory-api/internal/repo"
)

const (
	msgInvalidCredentials = "Invalid credentials"
	msgGoogleAuthFailed   = "Google authentication failed"
	msgTooManyAttempts    = "Too many failed login attempts"
)

func authUser(u models.User, token string) AuthUser {
	return AuthUser{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role, JWTToken: token}
}

// Register godoc
// @Summary Register new user and return JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body RegisterRequest true "email, password and optional name"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} MessageResponse
// @Failure 409 {object} MessageResponse
// @Router /api/auth/register [post]
func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := readJSON(w, r, &req); err != nil {
		s.fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		s.fail(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	_, err := s.Users.GetByEmail(r.Context(), req.Email)
	switch {
	case err == nil:
		s.fail(w, http.StatusConflict, "User with this email already exists")
		return
	case !errors.Is(err, repo.ErrUserNotFound):
		s.internalError(w, r, "register", "Internal server error", err)
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		s.internalError(w, r, "register", "Internal server error", err)
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name, _, _ = strings.Cut(req.Email, "@")
	}

	user, err := s.Users.CreateUser(r.Context(), models.User{
		Email:        req.Email,
		PasswordHash: &hashed,
		Name:         name,
		Role:         models.RoleUser,
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicatedValueUnique) {
			s.fail(w, http.StatusConflict, "User with this email already exists")
			return
		}
		s.internalError(w, r, "register", "Internal server error", err)
		return
	}

	token, err := s.Tokens.Issue(user)
	if err != nil {
		s.internalError(w, r, "register", "Internal server error", err)
		return
	}

	s.respond(w, http.StatusCreated, AuthResponse{
		Status:  true,
		Message: "User registered successfully",
		Token:   token,
		User:    authUser(user, token),
	})
}

// Login godoc
// @Summary Authenticate user and return JWT token
// @Description Repeated failures from one client for one email lead to a temporary ban.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "email and password"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} MessageResponse
// @Failure 401 {object} MessageResponse
// @Failure 429 {object} MessageResponse
// @Router /api/auth/login [post]
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := readJSON(w, r, &req); err != nil {
		s.fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		s.fail(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	target := mw.ClientIP(r) + "|" + strings.ToLower(req.Email)
	banned, err := s.Guard.Banned(r.Context(), target)
	if err != nil {
		s.logger().Warn("ban lookup failed", "error", err)
	}
	if banned {
		s.fail(w, http.StatusTooManyRequests, msgTooManyAttempts)
		return
	}

	user, err := s.Users.GetByEmail(r.Context(), req.Email)
	if err != nil && !errors.Is(err, repo.ErrUserNotFound) {
		s.internalError(w, r, "login", "Internal server error", err)
		return
	}

	if err != nil || user.PasswordHash == nil || !auth.CheckPassword(req.Password, *user.PasswordHash) {
		nowBanned, strikeErr := s.Guard.Strike(r.Context(), target, r.URL.Path)
		if strikeErr != nil {
			s.logger().Warn("recording failed login", "error", strikeErr)
		}
		if nowBanned {
			s.fail(w, http.StatusTooManyRequests, msgTooManyAttempts)
			return
		}
		s.fail(w, http.StatusUnauthorized, msgInvalidCredentials)
		return
	}

	if err := s.Guard.Clear(r.Context(), target); err != nil {
		s.logger().Warn("clearing login strikes", "error", err)
	}

	token, err := s.Tokens.Issue(user)
	if err != nil {
		s.internalError(w, r, "login", "Internal server error", err)
		return
	}

	resp := authUser(user, token)
	resp.ProfileImage = user.ProfileImage
	s.respond(w, http.StatusOK, AuthResponse{Status: true, Message: "Login successful", Token: token, User: resp})
}

// GoogleLogin godoc
// @Summary Sign in with a Google ID token
// @Description Creates the user on first sign-in and links Google to an existing account with the same email.
// @Tags auth
// @Accept json
// @Produce json
// @Param token body GoogleLoginRequest true "Google ID token"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} MessageResponse
// @Failure 401 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /api/auth/google [post]
func (s *Server) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	var req GoogleLoginRequest
	if err := readJSON(w, r, &req); err != nil {
		s.fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.IDToken) == "" {
		s.fail(w, http.StatusBadRequest, "ID token is required")
		return
	}

	if s.Google == nil {
		s.internalError(w, r, "google login", msgGoogleAuthFailed, errors.New("google verifier not configured"))
		return
	}

	identity, err := s.Google.Verify(r.Context(), req.IDToken)
	if err != nil {
		s.logger().Info("google token rejected", "error", err)
		s.fail(w, http.StatusUnauthorized, msgGoogleAuthFailed)
		return
	}

	var picture *string
	if identity.Picture != "" {
		picture = &identity.Picture
	}

	user, err := s.Users.GetByGoogleIDOrEmail(r.Context(), identity.Subject, identity.Email)
	switch {
	case err == nil:
		if user.GoogleID == nil {
			if err := s.Users.LinkGoogleAccount(r.Context(), user.ID, identity.Subject, picture); err != nil {
				s.internalError(w, r, "google login", msgGoogleAuthFailed, err)
				return
			}
			user.GoogleID = &identity.Subject
			user.ProfileImage = picture
		}
	case errors.Is(err, repo.ErrUserNotFound):
		user, err = s.Users.CreateUser(r.Context(), models.User{
			Email:        identity.Email,
			GoogleID:     &identity.Subject,
			Name:         identity.Name,
			ProfileImage: picture,
			Role:         models.RoleUser,
		})
		if err != nil {
			s.internalError(w, r, "google login", msgGoogleAuthFailed, err)
			return
		}
	default:
		s.internalError(w, r, "google login", msgGoogleAuthFailed, err)
		return
	}

	token, err := s.Tokens.Issue(user)
	if err != nil {
		s.internalError(w, r, "google login", msgGoogleAuthFailed, err)
		return
	}

	resp := authUser(user, token)
	resp.GoogleID = user.GoogleID
	resp.ProfileImage = user.ProfileImage
	s.respond(w, http.StatusOK, AuthResponse{Status: true, Message: "Google login successful", Token: token, User: resp})
}

// CurrentUser godoc
// @Summary Get the authenticated user
// @Tags auth
// @Produce json
// @Success 200 {object} CurrentUserResponse
// @Failure 401 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Router /api/auth/me [get]
// @Security BearerAuth
func (s *Server) CurrentUser(w http.ResponseWriter, r *http.Request) {
	identity, ok := mw.IdentityFromContext(r.Context())
	if !ok {
		s.fail(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := s.Users.GetByID(r.Context(), identity.ID)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			s.fail(w, http.StatusNotFound, "User not found")
			return
		}
		s.internalError(w, r, "current user", "Internal server error", err)
		return
	}

	s.respond(w, http.StatusOK, CurrentUserResponse{
		Status: true,
		User: CurrentUser{
			ID:           user.ID,
			Email:        user.Email,
			Name:         user.Name,
			Role:         user.Role,
			ProfileImage: user.ProfileImage,
		},
	})
}
