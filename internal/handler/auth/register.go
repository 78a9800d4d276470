// File: internal/handler/auth/register.go
package auth

import (
	"net/http"
	"strings"

	"reservas/internal/api"
	"reservas/internal/database"
	"reservas/internal/domain"
	"reservas/internal/model"
	"reservas/internal/service"
	"reservas/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	hashPassword      = service.HashPassword
	authenticateUser  = service.AuthenticateUser
	issueAccessToken  = service.IssueAccessToken
	createUser        = store.CreateUser
	getUserByUsername = store.GetUserByUsername
)

// RegisterHandler 註冊新使用者
// @Summary     Register a new user
// @Description 建立新帳號，username 與 email 全域唯一，只儲存密碼哈希
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.RegisterRequest true "註冊資料"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse "username 或 email 已被使用"
// @Failure     500 {object} api.ErrorResponse
// @Router      /register/ [post]
func RegisterHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		// 未指定角色時預設為一般使用者
		if req.Role == "" {
			req.Role = model.RoleUser
		}

		// Email 轉為小寫以確保一致性
		req.Email = strings.ToLower(req.Email)

		hash, err := hashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}

		if _, err := createUser(c.Request().Context(), db, &model.User{
			Username:     req.Username,
			Email:        req.Email,
			PasswordHash: hash,
			Role:         req.Role,
		}); err != nil {
			if domain.IsConflict(err) {
				return c.JSON(http.StatusConflict, api.ErrorResponse{Message: "username or email already taken"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to register user"})
		}

		return c.JSON(http.StatusOK, api.MessageResponse{Message: "User registered successfully"})
	}
}
