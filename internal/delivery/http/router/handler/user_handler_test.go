package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverymiddleware "sareeta/internal/delivery/http/middleware"
	"sareeta/internal/delivery/http/validator"
	"sareeta/internal/domain/entity"
	domainerrors "sareeta/internal/domain/errors"
	"sareeta/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAccounts struct {
	createOut *usecase.CreateUserOutput
	createErr error
	user      *entity.User
	userErr   error
}

func (s *stubAccounts) CreateUser(context.Context, *usecase.CreateUserInput) (*usecase.CreateUserOutput, error) {
	return s.createOut, s.createErr
}

func (s *stubAccounts) GetUserByID(context.Context, uuid.UUID) (*entity.User, error) {
	return s.user, s.userErr
}

func (s *stubAccounts) GetUserByUsername(context.Context, string) (*entity.User, error) {
	return s.user, s.userErr
}

type stubSessions struct {
	loginOut  *usecase.LoginOutput
	loginErr  error
	username  string
	verifyErr error
}

func (s *stubSessions) Login(context.Context, *usecase.LoginInput) (*usecase.LoginOutput, error) {
	return s.loginOut, s.loginErr
}

func (s *stubSessions) VerifyToken(context.Context, string) (string, error) {
	if s.verifyErr != nil {
		return "", s.verifyErr
	}

	return s.username, nil
}

// newTestEcho builds an echo instance with the production validator and error
// handler so responses carry the real envelope and status codes.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = deliverymiddleware.NewErrorMiddleware(newDiscardLogger()).HandleHTTPError

	return e
}

func TestUserHandler_CreateUser_StripsDigest(t *testing.T) {
	cart := &entity.Cart{ID: uuid.New()}
	user := &entity.User{ID: uuid.New(), Username: "alice", PasswordHash: "digest-should-not-leak", Cart: cart}
	h := NewUserHandler(&stubAccounts{createOut: &usecase.CreateUserOutput{User: user}}, &stubSessions{}, newDiscardLogger())

	e := newTestEcho()
	e.POST("/api/user/create", h.CreateUser)

	body := `{"username":"alice","password":"hunter22","confirmPassword":"hunter22"}`
	req := httptest.NewRequest(http.MethodPost, "/api/user/create", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"alice"`)
	assert.Contains(t, rec.Body.String(), `"cartId":"`+cart.ID.String()+`"`)
	assert.NotContains(t, rec.Body.String(), "digest-should-not-leak")
}

func TestUserHandler_CreateUser_PasswordPolicyRejected(t *testing.T) {
	h := NewUserHandler(&stubAccounts{createErr: domainerrors.ErrPasswordPolicy.WrapMessage("too short")}, &stubSessions{}, newDiscardLogger())

	e := newTestEcho()
	e.POST("/api/user/create", h.CreateUser)

	body := `{"username":"alice","password":"short1","confirmPassword":"short1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/user/create", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "PASSWORD_POLICY")
}

func TestUserHandler_CreateUser_MissingFields(t *testing.T) {
	h := NewUserHandler(&stubAccounts{}, &stubSessions{}, newDiscardLogger())

	e := newTestEcho()
	e.POST("/api/user/create", h.CreateUser)

	req := httptest.NewRequest(http.MethodPost, "/api/user/create", strings.NewReader(`{"username":"alice"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestUserHandler_Login_Success(t *testing.T) {
	h := NewUserHandler(&stubAccounts{}, &stubSessions{loginOut: &usecase.LoginOutput{Token: "signed-token"}}, newDiscardLogger())

	e := newTestEcho()
	e.POST("/api/user/login", h.Login)

	body := `{"username":"alice","password":"hunter22"}`
	req := httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"signed-token"`)
}

func TestUserHandler_Login_InvalidCredentials(t *testing.T) {
	h := NewUserHandler(&stubAccounts{}, &stubSessions{loginErr: domainerrors.ErrInvalidCredentials.WrapMessage("login failed")}, newDiscardLogger())

	e := newTestEcho()
	e.POST("/api/user/login", h.Login)

	body := `{"username":"alice","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
}

func TestUserHandler_GetUserByID_InvalidID(t *testing.T) {
	h := NewUserHandler(&stubAccounts{}, &stubSessions{}, newDiscardLogger())

	e := newTestEcho()
	e.GET("/api/user/id/:id", h.GetUserByID)

	req := httptest.NewRequest(http.MethodGet, "/api/user/id/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUserHandler_GetUserByUsername_NotFound(t *testing.T) {
	h := NewUserHandler(&stubAccounts{userErr: domainerrors.ErrUserNotFound.WrapMessage("user not found")}, &stubSessions{}, newDiscardLogger())

	e := newTestEcho()
	e.GET("/api/user/:username", h.GetUserByUsername)

	req := httptest.NewRequest(http.MethodGet, "/api/user/ghost", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "USER_NOT_FOUND")
}
