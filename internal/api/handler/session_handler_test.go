package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/sietse/jobboard/internal/api/dto"
	"github.com/sietse/jobboard/internal/core/service"
)

func TestLoginSuccess(t *testing.T) {
	env := setupTestEnv(t)
	registrationToken := env.register(t, "jane@example.com")
	logoutToken(t, env, registrationToken)

	w := env.request(t, http.MethodPost, "/login", "", map[string]interface{}{
		"email":    "jane@example.com",
		"password": "password123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d\nBody: %s", w.Code, w.Body.String())
	}

	var resp dto.SessionResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("expected a session token")
	}
	if resp.User.Email != "jane@example.com" {
		t.Errorf("expected the logged-in user, got %q", resp.User.Email)
	}

	// The token grants access to protected routes
	w = env.request(t, http.MethodGet, "/jobs/create", resp.Token, nil)
	if w.Code != http.StatusOK {
		t.Errorf("expected the new token to authenticate, got %d", w.Code)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	env := setupTestEnv(t)
	registrationToken := env.register(t, "jane@example.com")
	logoutToken(t, env, registrationToken)

	before := env.countRows(t, "session")

	w := env.request(t, http.MethodPost, "/login", "", map[string]interface{}{
		"email":    "jane@example.com",
		"password": "wrong-password",
	})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d\nBody: %s", w.Code, w.Body.String())
	}

	resp := parseValidationResponse(t, w)
	if msg := resp.Fields["email"]; msg != service.CredentialsMessage {
		t.Errorf("expected the credentials message on the email field, got %q", msg)
	}

	// A failed attempt creates no session
	if after := env.countRows(t, "session"); after != before {
		t.Errorf("expected session count to stay at %d, got %d", before, after)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	env := setupTestEnv(t)

	w := env.request(t, http.MethodPost, "/login", "", map[string]interface{}{
		"email":    "nobody@example.com",
		"password": "password123",
	})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}

	resp := parseValidationResponse(t, w)
	if msg := resp.Fields["email"]; msg != service.CredentialsMessage {
		t.Errorf("expected the credentials message, got %q", msg)
	}
}

func TestLoginRegeneratesSession(t *testing.T) {
	env := setupTestEnv(t)
	oldToken := env.register(t, "jane@example.com")

	ctx := context.Background()

	// A login that carries an existing token gets a fresh session and
	// the presented one stops working.
	_, newToken, err := env.authService.Login(ctx, "jane@example.com", "password123", oldToken)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if newToken == oldToken {
		t.Error("expected the post-login token to differ from the presented one")
	}

	if _, _, err := env.authService.Authenticate(ctx, oldToken); err == nil {
		t.Error("expected the presented session to be destroyed by login")
	}
	if _, _, err := env.authService.Authenticate(ctx, newToken); err != nil {
		t.Errorf("expected the new session to authenticate: %v", err)
	}
}

func TestLoginBlocksAuthenticatedUsers(t *testing.T) {
	env := setupTestEnv(t)
	token := env.register(t, "jane@example.com")

	w := env.request(t, http.MethodPost, "/login", token, map[string]interface{}{
		"email":    "jane@example.com",
		"password": "password123",
	})
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for an already authenticated user, got %d", w.Code)
	}
}

func TestLogoutInvalidatesSession(t *testing.T) {
	env := setupTestEnv(t)
	token := env.register(t, "jane@example.com")

	w := env.request(t, http.MethodDelete, "/logout", token, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d\nBody: %s", w.Code, w.Body.String())
	}

	// The token is dead even though its signature still verifies
	w = env.request(t, http.MethodGet, "/jobs/create", token, nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 after logout, got %d", w.Code)
	}

	if count := env.countRows(t, "session"); count != 0 {
		t.Errorf("expected no session rows after logout, got %d", count)
	}
}

func TestLogoutRequiresAuthentication(t *testing.T) {
	env := setupTestEnv(t)

	w := env.request(t, http.MethodDelete, "/logout", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestLoginFormDefinition(t *testing.T) {
	env := setupTestEnv(t)

	w := env.request(t, http.MethodGet, "/login", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var form dto.FormDefinition
	if err := json.Unmarshal(w.Body.Bytes(), &form); err != nil {
		t.Fatalf("failed to parse form: %v", err)
	}
	if form.Action != "/login" || form.Method != http.MethodPost {
		t.Errorf("unexpected form target: %s %s", form.Method, form.Action)
	}
}

// logoutToken ends the session so guest-only routes accept the client.
func logoutToken(t *testing.T, env *testEnv, token string) {
	t.Helper()

	w := env.request(t, http.MethodDelete, "/logout", token, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("logout failed: status %d", w.Code)
	}
}
