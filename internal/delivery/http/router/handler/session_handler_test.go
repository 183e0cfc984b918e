package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubSessionUsecase records which operations ran.
type stubSessionUsecase struct {
	loginCalled bool
	loginInput  *usecase.LoginInput
}

func (s *stubSessionUsecase) Restore(context.Context) (*usecase.SessionView, error) {
	return &usecase.SessionView{}, nil
}

func (s *stubSessionUsecase) Login(_ context.Context, input *usecase.LoginInput) (*usecase.SessionView, error) {
	s.loginCalled = true
	s.loginInput = input

	return &usecase.SessionView{LoggedIn: true, Email: input.Email}, nil
}

func (s *stubSessionUsecase) Register(context.Context, *usecase.RegisterInput) (*usecase.SessionView, error) {
	return &usecase.SessionView{LoggedIn: true}, nil
}

func (s *stubSessionUsecase) LoginAsGuest(context.Context) (*usecase.SessionView, error) {
	return &usecase.SessionView{LoggedIn: true}, nil
}

func (s *stubSessionUsecase) Logout(context.Context) error { return nil }

func (s *stubSessionUsecase) RequestPasswordReset(context.Context, *usecase.PasswordResetInput) error {
	return nil
}

func (s *stubSessionUsecase) PasswordStrength(string) service.StrengthReport {
	return service.StrengthReport{}
}

func newSessionTestContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func TestSessionHandler_LoginEmptyBodyRejected(t *testing.T) {
	uc := &stubSessionUsecase{}
	h := NewSessionHandler(uc, newTestLogger())

	c, rec := newSessionTestContext(t, "")

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, uc.loginCalled, "an empty body must not reach the usecase")
}

func TestSessionHandler_LoginBindsInput(t *testing.T) {
	uc := &stubSessionUsecase{}
	h := NewSessionHandler(uc, newTestLogger())

	c, rec := newSessionTestContext(t, `{"email":"ana@example.com","password":"secreta"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.loginInput)
	assert.Equal(t, "ana@example.com", uc.loginInput.Email)
}

func TestSessionHandler_RegisterEmptyBodyRejected(t *testing.T) {
	uc := &stubSessionUsecase{}
	h := NewSessionHandler(uc, newTestLogger())

	c, rec := newSessionTestContext(t, "")

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
