//go:generate go run go.uber.org/mock/mockgen -source=auth.go -destination=../mocks/mock_auth_service.go -package=mocks
package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/yungbote/legalkaz/backend/internal/errordata"
	"github.com/yungbote/legalkaz/backend/internal/logger"
	"github.com/yungbote/legalkaz/backend/internal/repos"
	"github.com/yungbote/legalkaz/backend/internal/types"
	"github.com/yungbote/legalkaz/backend/internal/utils"
)

// AuthService registers and authenticates accounts. No session token is
// issued: callers keep the returned id and present it on later requests.
type AuthService interface {
	Register(ctx context.Context, email, password string) (types.AccountRef, error)
	Authenticate(ctx context.Context, email, password string) (types.AccountRef, error)
}

type authService struct {
	log         *logger.Logger
	accountRepo repos.AccountRepo
	bcryptCost  int
}

func NewAuthService(log *logger.Logger, accountRepo repos.AccountRepo, bcryptCost int) AuthService {
	serviceLog := log.With("service", "AuthService")
	return &authService{
		log:         serviceLog,
		accountRepo: accountRepo,
		bcryptCost:  bcryptCost,
	}
}

func (as *authService) Register(ctx context.Context, email, password string) (types.AccountRef, error) {
	//1) Normalize + validate input
	email = utils.NormalizeEmail(email)
	if vErr := utils.InputValidation(utils.CredentialsInput{Email: email, Password: password}); vErr != nil {
		as.log.Warn("Register input invalid, cannot proceed.", "error", vErr)
		return types.AccountRef{}, errordata.Validation("%s", vErr.Error())
	}

	//2) Email must be free
	exists, eErr := as.accountRepo.EmailExists(ctx, nil, email)
	if eErr != nil {
		as.log.Warn("Failed to check if email exists. Returning error.", "error", eErr)
		return types.AccountRef{}, errordata.Persistence(eErr, "Failed to check email")
	}
	if exists {
		as.log.Warn("Email is already in use, cannot continue.", "email", email)
		return types.AccountRef{}, errordata.Conflict("Email is already in use")
	}

	//3) Hash Password
	account := &types.Account{Email: email, Password: password}
	if hErr := utils.HashPassword(ctx, as.log, as.bcryptCost, account); hErr != nil {
		return types.AccountRef{}, errordata.Persistence(hErr, "Failed to create account")
	}

	//4) Create; the unique index settles races the pre-check missed
	created, cErr := as.accountRepo.Create(ctx, nil, []*types.Account{account})
	if cErr != nil {
		if errors.Is(cErr, gorm.ErrDuplicatedKey) {
			as.log.Warn("Email taken between check and insert", "email", email)
			return types.AccountRef{}, errordata.Conflict("Email is already in use")
		}
		as.log.Warn("Failure to create account. Returning error.", "error", cErr)
		return types.AccountRef{}, errordata.Persistence(cErr, "Failed to create account")
	}
	if len(created) == 0 {
		return types.AccountRef{}, errordata.Persistence(nil, "Failed to create account")
	}
	as.log.Info("Registered account", "accountID", created[0].ID)
	return created[0].Ref(), nil
}

func (as *authService) Authenticate(ctx context.Context, email, password string) (types.AccountRef, error) {
	//1) Normalize + validate input
	email = utils.NormalizeEmail(email)
	if vErr := utils.InputValidation(utils.CredentialsInput{Email: email, Password: password}); vErr != nil {
		return types.AccountRef{}, errordata.Validation("%s", vErr.Error())
	}

	//2) Find Account By Email
	accounts, fErr := as.accountRepo.GetByEmails(ctx, nil, []string{email})
	if fErr != nil {
		as.log.Warn("Failure to retrieve account by email. Returning error.", "error", fErr)
		return types.AccountRef{}, errordata.Persistence(fErr, "Failed to load account")
	}
	if len(accounts) == 0 {
		as.log.Warn("No account for email", "email", email)
		return types.AccountRef{}, errordata.NotFound("Account not found")
	}
	account := accounts[0]

	//3) Verify digest
	if vErr := utils.VerifyPassword(account.Password, password); vErr != nil {
		as.log.Warn("Password verification failed", "accountID", account.ID, "error", vErr)
		if errors.Is(vErr, errordata.ErrAuth) {
			return types.AccountRef{}, vErr
		}
		return types.AccountRef{}, errordata.Persistence(vErr, "Failed to verify credentials")
	}
	return account.Ref(), nil
}
