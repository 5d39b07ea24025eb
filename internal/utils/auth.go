package utils

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/yungbote/legalkaz/backend/internal/errordata"
	"github.com/yungbote/legalkaz/backend/internal/logger"
	"github.com/yungbote/legalkaz/backend/internal/types"
)

const DefaultBcryptCost = 10

// HashPassword replaces account.Password with its bcrypt digest.
func HashPassword(ctx context.Context, log *logger.Logger, cost int, account *types.Account) error {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(account.Password), cost)
	if err != nil {
		log.Warn("Failure to hash password for account. Returning error", "error", err)
		return fmt.Errorf("failed to hash password for account: %w", err)
	}
	account.Password = string(hashedPassword)
	return nil
}

// VerifyPassword compares in constant time inside bcrypt. A mismatch is an
// ErrAuth; a malformed digest is reported as-is.
func VerifyPassword(digest, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(password))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return errordata.Auth("Invalid credentials")
	}
	return fmt.Errorf("verify password digest: %w", err)
}

// NormalizeEmail trims surrounding whitespace and nothing else; emails are
// case-sensitive as stored.
func NormalizeEmail(email string) string {
	return strings.TrimSpace(email)
}
