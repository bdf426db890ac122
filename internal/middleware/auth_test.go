package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"DrivenPass/internal/auth"
)

// Тест: валидный bearer-токен — user_id и email попадают в контекст
func TestWithAuth_ValidTokenSetsUser(t *testing.T) {
	const secret = "test-secret"

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid, ok := GetUserIDFromContext(r.Context())
		if !ok || uid != 77 {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		email, ok := GetUserEmailFromContext(r.Context())
		if !ok || email != "ann@x.com" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	h := WithAuth(secret)(next)

	token, err := auth.GenerateToken(77, "ann@x.com", secret)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 with valid token, got %d", rr.Code)
	}
}

// Тест: отсутствие заголовка — user_id не устанавливается
func TestWithAuth_NoHeaderLeavesAnonymous(t *testing.T) {
	h := WithAuth("any-secret")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUserIDFromContext(r.Context()); ok {
			t.Fatalf("user id must not be set without Authorization header")
		}
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

// Тест: токен, подписанный другим секретом, — user_id не устанавливается
func TestWithAuth_InvalidToken(t *testing.T) {
	token, err := auth.GenerateToken(5, "u@x.com", "secret-A")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	h := WithAuth("secret-B")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUserIDFromContext(r.Context()); ok {
			t.Fatalf("user id must not be set with invalid token")
		}
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

// Тест: мусор в заголовке не ломает цепочку
func TestWithAuth_MalformedHeader(t *testing.T) {
	h := WithAuth("s")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUserIDFromContext(r.Context()); ok {
			t.Fatalf("user id must not be set with malformed header")
		}
		w.WriteHeader(http.StatusOK)
	}))

	for _, header := range []string{"Bearer", "Basic abc", "Bearer not.a.token"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", header)
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("header %q: expected 200, got %d", header, rr.Code)
		}
	}
}
