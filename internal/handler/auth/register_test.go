// File: internal/handler/auth/register_test.go
package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"reservas/internal/api"
	"reservas/internal/database"
	"reservas/internal/domain"
	"reservas/internal/model"
	"reservas/internal/service"
	"reservas/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func restoreGlobals() {
	hashPassword = service.HashPassword
	authenticateUser = service.AuthenticateUser
	issueAccessToken = service.IssueAccessToken
	createUser = store.CreateUser
	getUserByUsername = store.GetUserByUsername
}

// helper to build echo context with a JSON body
func newJSONCtx(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

type errValidator struct{}

func (errValidator) Validate(i any) error { return errors.New("v") }

type okValidator struct{}

func (okValidator) Validate(i any) error { return nil }

func TestRegisterHandler(t *testing.T) {
	t.Cleanup(restoreGlobals)

	// bind error
	e := echo.New()
	ctx, rec := newJSONCtx(e, "{bad json")
	h := RegisterHandler(&database.FakeDB{})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// validate error
	e = echo.New()
	e.Validator = errValidator{}
	ctx, rec = newJSONCtx(e, `{"username":"alice"}`)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// hash error
	e = echo.New()
	e.Validator = okValidator{}
	hashPassword = func(string) (string, error) { return "", errors.New("hash") }
	ctx, rec = newJSONCtx(e, `{"username":"alice","email":"a@x.com","password":"pw"}`)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	// duplicate username/email
	hashPassword = service.HashPassword
	createUser = func(context.Context, database.DB, *model.User) (*model.User, error) {
		return nil, domain.ConflictError{Resource: "user"}
	}
	ctx, rec = newJSONCtx(e, `{"username":"alice","email":"a@x.com","password":"pw"}`)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Contains(t, rec.Body.String(), "already taken")

	// storage failure stays generic
	createUser = func(context.Context, database.DB, *model.User) (*model.User, error) {
		return nil, errors.New("insert")
	}
	ctx, rec = newJSONCtx(e, `{"username":"alice","email":"a@x.com","password":"pw"}`)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	// success: role 預設 user、email 轉小寫、存哈希不存明文
	var created *model.User
	createUser = func(_ context.Context, _ database.DB, u *model.User) (*model.User, error) {
		created = u
		return u, nil
	}
	ctx, rec = newJSONCtx(e, `{"username":"alice","email":"A@X.com","password":"pw"}`)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "User registered successfully")
	require.Equal(t, model.RoleUser, created.Role)
	require.Equal(t, "a@x.com", created.Email)
	require.NotEqual(t, "pw", created.PasswordHash)
	require.NoError(t, service.ComparePassword(created.PasswordHash, "pw"))

	// explicit admin role kept
	ctx, rec = newJSONCtx(e, `{"username":"root","email":"r@x.com","password":"pw","role":"admin"}`)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, model.RoleAdmin, created.Role)
}

func TestRegisterHandlerValidation(t *testing.T) {
	// 用真正的 validator 檢查必填與 email 格式
	e := echo.New()
	e.Validator = api.NewValidator()
	h := RegisterHandler(&database.FakeDB{})

	ctx, rec := newJSONCtx(e, `{"username":"alice","email":"not-an-email","password":"pw"}`)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	ctx, rec = newJSONCtx(e, `{"email":"a@x.com","password":"pw"}`)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	ctx, rec = newJSONCtx(e, `{"username":"alice","email":"a@x.com","password":"pw","role":"superuser"}`)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
