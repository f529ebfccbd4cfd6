package handlers_test_suite

import (
	"net/http"
	"testing"

	"github.com/rogerio-castellano/inventory-api/internal/auth"
	"github.com/rogerio-castellano/inventory-api/internal/http/handlers"
	"github.com/rogerio-castellano/inventory-api/internal/models"
)

func TestRegisterHandler(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/api/auth/register", map[string]string{
		"email":    "new.person@example.com",
		"password": "pw123456",
	}, "")
	expectStatus(t, w, http.StatusCreated)

	resp := decode[handlers.AuthResponse](t, w)
	if !resp.Status || resp.Message != "User registered successfully" {
		t.Errorf("unexpected envelope: %+v", resp)
	}
	if resp.User.Name != "new.person" {
		t.Errorf("expected name to default to the email local part, got %q", resp.User.Name)
	}
	if resp.User.Role != models.RoleUser {
		t.Errorf("expected role user, got %q", resp.User.Role)
	}
	if resp.Token == "" || resp.User.JWTToken != resp.Token {
		t.Errorf("expected the token in both places, got %q and %q", resp.Token, resp.User.JWTToken)
	}
	if _, ok := env.tokens.Verify(resp.Token); !ok {
		t.Error("expected issued token to verify")
	}
}

func TestRegisterHandler_Rejects(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"missing password", map[string]string{"email": "x@example.com"}, http.StatusBadRequest},
		{"missing email", map[string]string{"password": "pw"}, http.StatusBadRequest},
		{"malformed body", "{not json", http.StatusBadRequest},
		{"existing email", map[string]string{"email": "user@example.com", "password": "pw"}, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(http.MethodPost, "/api/auth/register", tt.body, "")
			expectStatus(t, w, tt.status)
			if resp := decode[handlers.MessageResponse](t, w); resp.Status {
				t.Error("expected status false")
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "admin@example.com",
		"password": testPassword,
	}, "")
	expectStatus(t, w, http.StatusOK)

	resp := decode[handlers.AuthResponse](t, w)
	if resp.Message != "Login successful" {
		t.Errorf("unexpected message %q", resp.Message)
	}
	identity, ok := env.tokens.Verify(resp.Token)
	if !ok {
		t.Fatal("expected a valid token")
	}
	if identity.ID != env.admin.ID || identity.Role != models.RoleAdmin {
		t.Errorf("unexpected identity %+v", identity)
	}
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	env := newTestEnv(t)

	for _, body := range []map[string]string{
		{"email": "admin@example.com", "password": "wrong"},
		{"email": "nobody@example.com", "password": testPassword},
	} {
		w := env.do(http.MethodPost, "/api/auth/login", body, "")
		expectStatus(t, w, http.StatusUnauthorized)
		if resp := decode[handlers.MessageResponse](t, w); resp.Message != "Invalid credentials" {
			t.Errorf("unexpected message %q", resp.Message)
		}
	}
}

func TestLoginHandler_GoogleOnlyAccount(t *testing.T) {
	env := newTestEnv(t)
	env.google.identities["tok"] = auth.GoogleIdentity{Subject: "g-1", Email: "g@example.com", Name: "G"}

	w := env.do(http.MethodPost, "/api/auth/google", map[string]string{"id_token": "tok"}, "")
	expectStatus(t, w, http.StatusOK)

	w = env.do(http.MethodPost, "/api/auth/login", map[string]string{"email": "g@example.com", "password": "anything"}, "")
	expectStatus(t, w, http.StatusUnauthorized)
}

func TestGoogleLoginHandler_CreatesUser(t *testing.T) {
	env := newTestEnv(t)
	env.google.identities["tok"] = auth.GoogleIdentity{
		Subject: "g-42",
		Email:   "fresh@example.com",
		Name:    "Fresh User",
		Picture: "https://img.example.com/p.png",
	}

	w := env.do(http.MethodPost, "/api/auth/google", map[string]string{"id_token": "tok"}, "")
	expectStatus(t, w, http.StatusOK)

	resp := decode[handlers.AuthResponse](t, w)
	if resp.Message != "Google login successful" {
		t.Errorf("unexpected message %q", resp.Message)
	}
	if resp.User.GoogleID == nil || *resp.User.GoogleID != "g-42" {
		t.Errorf("expected google id g-42, got %v", resp.User.GoogleID)
	}
	if resp.User.ProfileImage == nil || *resp.User.ProfileImage != "https://img.example.com/p.png" {
		t.Errorf("unexpected profile image %v", resp.User.ProfileImage)
	}
	if resp.User.Name != "Fresh User" {
		t.Errorf("unexpected name %q", resp.User.Name)
	}

	// A second sign-in finds the same account.
	w = env.do(http.MethodPost, "/api/auth/google", map[string]string{"id_token": "tok"}, "")
	expectStatus(t, w, http.StatusOK)
	if again := decode[handlers.AuthResponse](t, w); again.User.ID != resp.User.ID {
		t.Errorf("expected user %d again, got %d", resp.User.ID, again.User.ID)
	}
}

func TestGoogleLoginHandler_LinksExistingAccount(t *testing.T) {
	env := newTestEnv(t)
	env.google.identities["tok"] = auth.GoogleIdentity{Subject: "g-7", Email: "user@example.com", Name: "Someone"}

	w := env.do(http.MethodPost, "/api/auth/google", map[string]string{"id_token": "tok"}, "")
	expectStatus(t, w, http.StatusOK)

	resp := decode[handlers.AuthResponse](t, w)
	if resp.User.ID != env.user.ID {
		t.Fatalf("expected existing user %d, got %d", env.user.ID, resp.User.ID)
	}

	stored, err := env.users.GetByID(t.Context(), env.user.ID)
	if err != nil {
		t.Fatalf("loading user: %v", err)
	}
	if stored.GoogleID == nil || *stored.GoogleID != "g-7" {
		t.Errorf("expected google id to be linked, got %v", stored.GoogleID)
	}

	// The password keeps working after linking.
	w = env.do(http.MethodPost, "/api/auth/login", map[string]string{"email": "user@example.com", "password": testPassword}, "")
	expectStatus(t, w, http.StatusOK)
}

func TestGoogleLoginHandler_Rejects(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/api/auth/google", map[string]string{"id_token": ""}, "")
	expectStatus(t, w, http.StatusBadRequest)
	if resp := decode[handlers.MessageResponse](t, w); resp.Message != "ID token is required" {
		t.Errorf("unexpected message %q", resp.Message)
	}

	w = env.do(http.MethodPost, "/api/auth/google", map[string]string{"id_token": "forged"}, "")
	expectStatus(t, w, http.StatusUnauthorized)
	if resp := decode[handlers.MessageResponse](t, w); resp.Message != "Google authentication failed" {
		t.Errorf("unexpected message %q", resp.Message)
	}
}

func TestCurrentUserHandler(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/api/auth/me", nil, env.userToken)
	expectStatus(t, w, http.StatusOK)

	resp := decode[handlers.CurrentUserResponse](t, w)
	if resp.User.ID != env.user.ID || resp.User.Email != "user@example.com" {
		t.Errorf("unexpected user %+v", resp.User)
	}
}

func TestCurrentUserHandler_Unauthorized(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name    string
		token   string
		message string
	}{
		{"no token", "", "Unauthorized. No token provided."},
		{"garbage token", "not-a-jwt", "Unauthorized. Invalid or expired token."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(http.MethodGet, "/api/auth/me", nil, tt.token)
			expectStatus(t, w, http.StatusUnauthorized)
			if resp := decode[handlers.MessageResponse](t, w); resp.Message != tt.message {
				t.Errorf("expected %q, got %q", tt.message, resp.Message)
			}
		})
	}
}

func TestCurrentUserHandler_DeletedUser(t *testing.T) {
	env := newTestEnv(t)
	env.users.Delete(env.user.ID)

	w := env.do(http.MethodGet, "/api/auth/me", nil, env.userToken)
	expectStatus(t, w, http.StatusNotFound)
}

func TestRegisterThenCurrentUser(t *testing.T) {
	env := newTestEnv(t)
	creds := map[string]string{"email": "twice@example.com", "password": "pw"}

	w := env.do(http.MethodPost, "/api/auth/register", creds, "")
	expectStatus(t, w, http.StatusCreated)
	token := decode[handlers.AuthResponse](t, w).Token

	w = env.do(http.MethodPost, "/api/auth/register", creds, "")
	expectStatus(t, w, http.StatusConflict)

	w = env.do(http.MethodGet, "/api/auth/me", nil, token)
	expectStatus(t, w, http.StatusOK)
	if me := decode[handlers.CurrentUserResponse](t, w); me.User.Email != "twice@example.com" {
		t.Errorf("expected the registered email, got %q", me.User.Email)
	}
}

func TestLoginHandler_SameBodyForUnknownEmailAndWrongPassword(t *testing.T) {
	env := newTestEnv(t)

	wrongPassword := env.do(http.MethodPost, "/api/auth/login", map[string]string{"email": "user@example.com", "password": "wrong"}, "")
	unknownEmail := env.do(http.MethodPost, "/api/auth/login", map[string]string{"email": "ghost@example.com", "password": "wrong"}, "")

	if wrongPassword.Code != unknownEmail.Code || wrongPassword.Body.String() != unknownEmail.Body.String() {
		t.Errorf("expected identical responses, got %d %q and %d %q",
			wrongPassword.Code, wrongPassword.Body.String(), unknownEmail.Code, unknownEmail.Body.String())
	}
}
