//go:generate go run go.uber.org/mock/mockgen -source=account.go -destination=../mocks/mock_account_repo.go -package=mocks
package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/legalkaz/backend/internal/logger"
	"github.com/yungbote/legalkaz/backend/internal/types"
)

type AccountRepo interface {
	// CREATE
	Create(ctx context.Context, tx *gorm.DB, accounts []*types.Account) ([]*types.Account, error)

	// READ
	GetByIDs(ctx context.Context, tx *gorm.DB, accountIDs []uuid.UUID) ([]*types.Account, error)
	GetByEmails(ctx context.Context, tx *gorm.DB, emails []string) ([]*types.Account, error)
	EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error)
}

type accountRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAccountRepo(db *gorm.DB, baseLog *logger.Logger) AccountRepo {
	repoLog := baseLog.With("repo", "AccountRepo")
	return &accountRepo{db: db, log: repoLog}
}

// ----------------------------------------------------------------
// CREATE
// ----------------------------------------------------------------

func (ar *accountRepo) Create(ctx context.Context, tx *gorm.DB, accounts []*types.Account) ([]*types.Account, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}
	if len(accounts) == 0 {
		ar.log.Debug("Accounts array is empty, returning empty slice")
		return []*types.Account{}, nil
	}
	now := time.Now().UTC()
	for _, a := range accounts {
		if a.ID == uuid.Nil {
			a.ID = uuid.New()
		}
		if a.CreatedAt.IsZero() {
			a.CreatedAt = now
		}
	}
	if err := transaction.WithContext(ctx).Create(&accounts).Error; err != nil {
		ar.log.Error("Failed to create accounts", "error", err)
		return nil, err
	}
	ar.log.Info("Successfully created accounts", "count", len(accounts))
	return accounts, nil
}

// ----------------------------------------------------------------
// READ
// ----------------------------------------------------------------

func (ar *accountRepo) GetByIDs(ctx context.Context, tx *gorm.DB, accountIDs []uuid.UUID) ([]*types.Account, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}
	var results []*types.Account
	if len(accountIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("id IN ?", accountIDs).
		Find(&results).Error; err != nil {
		ar.log.Error("Failed to fetch accounts by IDs", "error", err)
		return nil, err
	}
	ar.log.Debug("Fetched accounts by IDs", "requested", len(accountIDs), "found", len(results))
	return results, nil
}

func (ar *accountRepo) GetByEmails(ctx context.Context, tx *gorm.DB, emails []string) ([]*types.Account, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}
	var results []*types.Account
	if len(emails) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("email IN ?", emails).
		Find(&results).Error; err != nil {
		ar.log.Error("Failed to fetch accounts by emails", "error", err)
		return nil, err
	}
	ar.log.Debug("Fetched accounts by emails", "requested", len(emails), "found", len(results))
	return results, nil
}

func (ar *accountRepo) EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Account{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		ar.log.Error("Failed to count accounts by email", "error", err)
		return false, err
	}
	return count > 0, nil
}
