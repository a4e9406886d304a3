package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Vtdarling/kitchenAI/entity"
	"github.com/Vtdarling/kitchenAI/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// stubAuthService implements service.AuthService with canned behavior.
type stubAuthService struct {
	user  *entity.User
	token string
	err   error
}

func (s *stubAuthService) RegisterOrLogin(_ context.Context, name, phone string) (*entity.User, string, error) {
	if s.err != nil {
		return nil, "", s.err
	}
	return s.user, s.token, nil
}

func (s *stubAuthService) Verify(string) (*util.Claims, error) {
	return nil, entity.ErrMissingToken
}

func loginRouter(svc *stubAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/auth/login", NewAuthHandler(svc).Login)
	return r
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	svc := &stubAuthService{
		user:  &entity.User{ID: 1, Name: "Asha", Phone: "9876543210"},
		token: "signed-token",
	}
	r := loginRouter(svc)

	w := httptest.NewRecorder()
	body := strings.NewReader(`{"name":"Asha","phone":"9876543210"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"token":"signed-token"`)
	require.Contains(t, w.Body.String(), `"phone":"9876543210"`)
}

func TestLogin_ValidationFailure(t *testing.T) {
	t.Parallel()

	svc := &stubAuthService{err: fmt.Errorf("%w: phone must be exactly 10 digits", entity.ErrValidation)}
	r := loginRouter(svc)

	w := httptest.NewRecorder()
	body := strings.NewReader(`{"name":"Asha","phone":"123"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "error")
}

func TestLogin_StoreFailure(t *testing.T) {
	t.Parallel()

	svc := &stubAuthService{err: fmt.Errorf("%w: connection refused", entity.ErrStore)}
	r := loginRouter(svc)

	w := httptest.NewRecorder()
	body := strings.NewReader(`{"name":"Asha","phone":"9876543210"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	// The client only sees a generic message.
	require.NotContains(t, w.Body.String(), "connection refused")
}

func TestLogin_MalformedBody(t *testing.T) {
	t.Parallel()

	r := loginRouter(&stubAuthService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}
