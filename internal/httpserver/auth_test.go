package httpserver

import (
	"net/http"
	"strings"
	"testing"

	"agrimart/internal/domain"
	usersvc "agrimart/internal/service/user"
)

func TestSignupHandler_Created(t *testing.T) {
	users := &stubUserService{
		user: &domain.User{ID: "u1", Email: "asha@example.com", Role: domain.RoleUser},
	}
	router := testRouter(t, testDeps(users))

	body := `{"email":"asha@example.com","password":"Abcdefg1","name":"Asha"}`
	rec := doRequest(router, http.MethodPost, "/signup", body, "")

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"email":"asha@example.com"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "passwordHash") {
		t.Fatalf("password hash leaked: %s", rec.Body.String())
	}
}

func TestSignupHandler_ValidationError(t *testing.T) {
	users := &stubUserService{signupErr: domain.ErrValidation}
	router := testRouter(t, testDeps(users))

	rec := doRequest(router, http.MethodPost, "/signup", `{"email":"x","password":"short"}`, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestSignupHandler_DuplicateEmail(t *testing.T) {
	users := &stubUserService{signupErr: domain.ErrAlreadyExists}
	router := testRouter(t, testDeps(users))

	rec := doRequest(router, http.MethodPost, "/signup", `{"email":"a@b.test","password":"Abcdefg1"}`, "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	users := &stubUserService{loginErr: usersvc.ErrInvalidCredentials}
	router := testRouter(t, testDeps(users))

	rec := doRequest(router, http.MethodPost, "/login", `{"email":"a@b.test","password":"bad"}`, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestLoginHandler_Success(t *testing.T) {
	users := &stubUserService{
		user: &domain.User{ID: "u1", Email: "a@b.test", Role: domain.RoleAdmin},
	}
	router := testRouter(t, testDeps(users))

	rec := doRequest(router, http.MethodPost, "/login", `{"email":"a@b.test","password":"Abcdefg1"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"accessToken":"access"`) ||
		!strings.Contains(body, `"refreshToken":"refresh"`) ||
		!strings.Contains(body, `"expiresIn":3600`) {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestMeHandler_Success(t *testing.T) {
	users := &stubUserService{
		user: &domain.User{ID: "u1", Email: "me@example.com", Role: domain.RoleUser},
	}
	router := testRouter(t, testDeps(users))

	rec := doRequest(router, http.MethodGet, "/me", "", "token")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"email":"me@example.com"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}
