package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func postJSON(router http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestLogin_Success(t *testing.T) {
	router := newTestRouter(t)
	rec := postJSON(router, "/api/auth/login", `{"email":"demo@techstore.com","password":"demo123"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"email":"demo@techstore.com"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "demo123") {
		t.Fatalf("response leaked the password: %s", rec.Body.String())
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	router := newTestRouter(t)
	rec := postJSON(router, "/api/auth/login", `{"email":"demo@techstore.com","password":"wrong"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestMe_RequiresSession(t *testing.T) {
	router := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestLoginLogoutRoundTrip(t *testing.T) {
	router := newTestRouter(t)
	if rec := postJSON(router, "/api/auth/login", `{"email":"demo@techstore.com","password":"demo123"}`); rec.Code != http.StatusOK {
		t.Fatalf("login: %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("me after login: expected 200, got %d", rec.Code)
	}

	if rec := postJSON(router, "/api/auth/logout", ""); rec.Code != http.StatusNoContent {
		t.Fatalf("logout: expected 204, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("me after logout: expected 401, got %d", rec.Code)
	}
}

func TestRegister_CreatedAndDuplicate(t *testing.T) {
	router := newTestRouter(t)
	body := `{"name":"Alice","email":"alice@example.com","password":"secret1"}`

	rec := postJSON(router, "/api/auth/register", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}

	rec = postJSON(router, "/api/auth/register", body)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate email, got %d", rec.Code)
	}
}

func TestRegister_Validation(t *testing.T) {
	router := newTestRouter(t)
	cases := []string{
		`{"name":"","email":"a@x.com","password":"secret1"}`,
		`{"name":"A","email":"not-an-email","password":"secret1"}`,
		`{"name":"A","email":"a@x.com","password":"short"}`,
	}
	for _, body := range cases {
		if rec := postJSON(router, "/api/auth/register", body); rec.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", body, rec.Code)
		}
	}
}

func TestPreferences_UpdateAndReject(t *testing.T) {
	router := newTestRouter(t)

	patch := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPatch, "/api/auth/preferences", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	if rec := patch(`{"theme":"dark"}`); rec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous patch: expected 401, got %d", rec.Code)
	}

	postJSON(router, "/api/auth/login", `{"email":"demo@techstore.com","password":"demo123"}`)

	rec := patch(`{"theme":"dark","language":"ru"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("patch: expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"theme":"dark"`) || !strings.Contains(rec.Body.String(), `"language":"ru"`) {
		t.Fatalf("patch not applied: %s", rec.Body.String())
	}

	if rec := patch(`{"theme":"sepia"}`); rec.Code != http.StatusBadRequest {
		t.Fatalf("bad theme: expected 400, got %d", rec.Code)
	}
}
