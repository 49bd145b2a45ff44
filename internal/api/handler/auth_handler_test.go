package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/userhub/users-api/internal/core/domain"
	"github.com/userhub/users-api/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, input ports.RegisterInput) (*domain.User, string, error)
	loginFn    func(ctx context.Context, email, password string) (*domain.User, string, error)
	verifyFn   func(ctx context.Context, token string) (*domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, string, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Verify(ctx context.Context, token string) (*domain.User, error) {
	return s.verifyFn(ctx, token)
}

func newAuthTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookieName {
			return c
		}
	}
	return nil
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(_ context.Context, input ports.RegisterInput) (*domain.User, string, error) {
			if input.Email != "a@x.com" || input.Username != "bob" || input.Password != "secret1" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.User{ID: 1, Email: input.Email, Username: input.Username}, "token123", nil
		},
	}
	h := NewAuthHandler(stub, time.Hour, false)

	c, rec := newAuthTestContext(t, http.MethodPost, "/auth/register",
		`{"email":"a@x.com","username":"bob","password":"secret1"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["email"] != "a@x.com" || resp["username"] != "bob" {
		t.Fatalf("unexpected body: %+v", resp)
	}
	if _, ok := resp["password"]; ok {
		t.Fatalf("password must never appear in a response")
	}

	cookie := sessionCookie(rec)
	if cookie == nil {
		t.Fatalf("expected session cookie to be set")
	}
	if cookie.Value != "token123" || !cookie.HttpOnly {
		t.Fatalf("unexpected cookie: %+v", cookie)
	}
	if cookie.MaxAge != int(time.Hour.Seconds()) {
		t.Fatalf("cookie max-age must mirror the token TTL, got %d", cookie.MaxAge)
	}
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput) (*domain.User, string, error) {
			return nil, "", domain.ErrEmailTaken
		},
	}
	h := NewAuthHandler(stub, time.Hour, false)

	c, rec := newAuthTestContext(t, http.MethodPost, "/auth/register",
		`{"email":"a@x.com","username":"bob","password":"secret1"}`)

	_ = h.Register(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Email already in use") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
	if sessionCookie(rec) != nil {
		t.Fatalf("no cookie must be set on failure")
	}
}

func TestAuthHandler_Register_ValidationFailure(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput) (*domain.User, string, error) {
			t.Fatalf("service must not be called on invalid input")
			return nil, "", nil
		},
	}
	h := NewAuthHandler(stub, time.Hour, false)

	cases := []string{
		`{"email":"not-an-email","username":"bob","password":"secret1"}`,
		`{"email":"a@x.com","username":"ab","password":"secret1"}`,
		`{"email":"a@x.com","username":"bob","password":"tiny"}`,
	}
	for _, body := range cases {
		c, rec := newAuthTestContext(t, http.MethodPost, "/auth/register", body)
		_ = h.Register(c)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %s, got %d", body, rec.Code)
		}
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, email, password string) (*domain.User, string, error) {
			if email != "a@x.com" || password != "secret1" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return &domain.User{ID: 1, Email: email, Username: "bob"}, "token123", nil
		},
	}
	h := NewAuthHandler(stub, time.Hour, false)

	c, rec := newAuthTestContext(t, http.MethodPost, "/auth/login",
		`{"email":"a@x.com","password":"secret1"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if sessionCookie(rec) == nil {
		t.Fatalf("expected session cookie to be set")
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(context.Context, string, string) (*domain.User, string, error) {
			return nil, "", domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub, time.Hour, false)

	// Wrong password and unknown email travel the same path in the service, so
	// a single stub covers both: the handler must render the uniform message.
	c, rec := newAuthTestContext(t, http.MethodPost, "/auth/login",
		`{"email":"a@x.com","password":"wrong12"}`)

	_ = h.Login(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Email or password incorrect") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_Throttled(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(context.Context, string, string) (*domain.User, string, error) {
			return nil, "", domain.ErrTooManyAttempts
		},
	}
	h := NewAuthHandler(stub, time.Hour, false)

	c, rec := newAuthTestContext(t, http.MethodPost, "/auth/login",
		`{"email":"a@x.com","password":"secret1"}`)

	_ = h.Login(c)

	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
}

func TestAuthHandler_Logout_AlwaysSucceeds(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, time.Hour, false)

	c, rec := newAuthTestContext(t, http.MethodGet, "/auth/logout", "")

	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Logged out") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}

	cookie := sessionCookie(rec)
	if cookie == nil {
		t.Fatalf("expected clearing cookie")
	}
	if cookie.MaxAge >= 0 || cookie.Value != "" {
		t.Fatalf("expected expired empty cookie, got %+v", cookie)
	}
}

func TestAuthHandler_Verify_Success(t *testing.T) {
	stub := &stubAuthService{
		verifyFn: func(_ context.Context, token string) (*domain.User, error) {
			if token != "token123" {
				t.Fatalf("unexpected token: %s", token)
			}
			return &domain.User{ID: 1, Email: "a@x.com", Username: "bob"}, nil
		},
	}
	h := NewAuthHandler(stub, time.Hour, false)

	c, rec := newAuthTestContext(t, http.MethodGet, "/auth/verify", "")
	c.Request().AddCookie(&http.Cookie{Name: sessionCookieName, Value: "token123"})

	if err := h.Verify(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "User verified" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["email"] != "a@x.com" || user["username"] != "bob" {
		t.Fatalf("unexpected user payload: %+v", resp)
	}
	if _, present := user["password"]; present {
		t.Fatalf("password must never appear in a response")
	}
}

func TestAuthHandler_Verify_MissingCookie(t *testing.T) {
	stub := &stubAuthService{
		verifyFn: func(context.Context, string) (*domain.User, error) {
			t.Fatalf("service must not be called without a cookie")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub, time.Hour, false)

	c, rec := newAuthTestContext(t, http.MethodGet, "/auth/verify", "")

	_ = h.Verify(c)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Unauthorized") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAuthHandler_Verify_InvalidToken(t *testing.T) {
	stub := &stubAuthService{
		verifyFn: func(context.Context, string) (*domain.User, error) {
			return nil, domain.ErrInvalidToken
		},
	}
	h := NewAuthHandler(stub, time.Hour, false)

	c, rec := newAuthTestContext(t, http.MethodGet, "/auth/verify", "")
	c.Request().AddCookie(&http.Cookie{Name: sessionCookieName, Value: "expired-or-forged"})

	_ = h.Verify(c)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
