// File: internal/service/authentication_test.go
package service

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"reservas/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func restoreGlobals() {
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
	timeNow = time.Now
	parseWithClaims = jwt.ParseWithClaims
}

func TestHashPassword(t *testing.T) {
	t.Cleanup(restoreGlobals)
	pwd := "secret"
	hash, err := HashPassword(pwd)
	require.NoError(t, err)
	require.NotEqual(t, pwd, hash)
	require.NoError(t, ComparePassword(hash, pwd))
	require.Error(t, ComparePassword(hash, "wrong"))

	// 同一組密碼兩次哈希結果不同（每次產生新鹽）
	hash2, err := HashPassword(pwd)
	require.NoError(t, err)
	require.NotEqual(t, hash, hash2)

	bcryptGenerateFromPassword = func(_ []byte, _ int) ([]byte, error) {
		return nil, errors.New("gen")
	}
	_, err = HashPassword(pwd)
	require.Error(t, err)
}

func TestAuthenticateUser(t *testing.T) {
	t.Cleanup(restoreGlobals)
	hash, _ := HashPassword("pw")
	u := model.User{PasswordHash: hash}
	require.NoError(t, AuthenticateUser(context.Background(), u, "pw"))
	require.Error(t, AuthenticateUser(context.Background(), u, "bad"))
}

func TestIssueAccessToken(t *testing.T) {
	t.Cleanup(restoreGlobals)
	os.Unsetenv("JWT_SECRET")
	_, err := IssueAccessToken(model.User{}, AccessTokenTTL)
	require.Error(t, err)

	t.Setenv("JWT_SECRET", "s")
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return issuedAt }

	tok, err := IssueAccessToken(model.User{ID: 5, Role: model.RoleAdmin}, AccessTokenTTL)
	require.NoError(t, err)
	claims := &CustomClaims{}
	_, err = jwt.ParseWithClaims(tok, claims, func(*jwt.Token) (any, error) { return []byte("s"), nil },
		jwt.WithTimeFunc(func() time.Time { return issuedAt }))
	require.NoError(t, err)
	require.Equal(t, 5, claims.UserID)
	require.Equal(t, model.RoleAdmin, claims.Role)
	// 到期時間為發行後 2 小時
	require.Equal(t, issuedAt.Add(2*time.Hour), claims.ExpiresAt.Time)
}

func TestVerifyAccessToken(t *testing.T) {
	t.Cleanup(restoreGlobals)
	os.Unsetenv("JWT_SECRET")
	_, err := VerifyAccessToken("abc")
	require.Error(t, err)

	t.Setenv("JWT_SECRET", "s")
	_, err = VerifyAccessToken("invalid")
	require.Error(t, err)

	tokNone, _ := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"foo": "bar"}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	_, err = VerifyAccessToken(tokNone)
	require.Error(t, err)

	parseWithClaims = func(s string, c jwt.Claims, k jwt.Keyfunc, opts ...jwt.ParserOption) (*jwt.Token, error) {
		return &jwt.Token{Claims: jwt.MapClaims{}, Valid: false}, nil
	}
	_, err = VerifyAccessToken("whatever")
	require.Error(t, err)

	parseWithClaims = jwt.ParseWithClaims
	tok, _ := IssueAccessToken(model.User{ID: 3, Role: model.RoleUser}, time.Minute)
	claims, err := VerifyAccessToken(tok)
	require.NoError(t, err)
	require.Equal(t, 3, claims.UserID)
	require.Equal(t, model.RoleUser, claims.Role)
}
