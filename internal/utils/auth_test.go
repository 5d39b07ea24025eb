package utils

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/yungbote/legalkaz/backend/internal/errordata"
	"github.com/yungbote/legalkaz/backend/internal/logger"
	"github.com/yungbote/legalkaz/backend/internal/types"
)

func TestHashAndVerifyPassword(t *testing.T) {
	acc := &types.Account{Email: "a@b.kz", Password: "s3cret pass"}
	require.NoError(t, HashPassword(context.Background(), logger.Nop(), bcrypt.MinCost, acc))
	require.NotEqual(t, "s3cret pass", acc.Password)

	require.NoError(t, VerifyPassword(acc.Password, "s3cret pass"))

	err := VerifyPassword(acc.Password, "wrong")
	require.ErrorIs(t, err, errordata.ErrAuth)

	err = VerifyPassword("not-a-digest", "s3cret pass")
	require.Error(t, err)
	require.NotErrorIs(t, err, errordata.ErrAuth)
}

func TestHashPasswordFallsBackToDefaultCost(t *testing.T) {
	acc := &types.Account{Password: "pw"}
	require.NoError(t, HashPassword(context.Background(), logger.Nop(), 99, acc))
	cost, err := bcrypt.Cost([]byte(acc.Password))
	require.NoError(t, err)
	require.Equal(t, DefaultBcryptCost, cost)
}

func TestNormalizeEmail(t *testing.T) {
	require.Equal(t, "Aigul@Example.kz", NormalizeEmail("  Aigul@Example.kz\n"))
}

func TestInputValidation(t *testing.T) {
	t.Run("credentials", func(t *testing.T) {
		require.NoError(t, InputValidation(CredentialsInput{Email: "a@b.kz", Password: "pw"}))
		require.EqualError(t, InputValidation(CredentialsInput{Password: "pw"}), "email is required")
		require.EqualError(t, InputValidation(CredentialsInput{Email: "   ", Password: "pw"}), "email is required")
		require.EqualError(t, InputValidation(CredentialsInput{}), "email, password are required")
		require.EqualError(t, InputValidation(CredentialsInput{Email: "a@b.kz", Password: strings.Repeat("ж", 37)}), "password must be at most 72 bytes")
		require.NoError(t, InputValidation(CredentialsInput{Email: "a@b.kz", Password: strings.Repeat("p", 72)}))
	})

	t.Run("chat", func(t *testing.T) {
		ok := ChatInput{UserID: "u", SessionID: "s", Message: "Hello", Role: "user"}
		require.NoError(t, InputValidation(ok))

		bad := ok
		bad.SessionID = ""
		require.EqualError(t, InputValidation(bad), "sessionId is required")

		bad = ok
		bad.Role = "system"
		require.EqualError(t, InputValidation(bad), "role must be one of: user, assistant")
	})
}
