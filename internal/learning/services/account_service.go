package services

import (
	"go.uber.org/zap"

	"github.com/educross/educross/internal/common/errors"
	"github.com/educross/educross/internal/learning/models"
	"github.com/educross/educross/internal/learning/repository"
	"github.com/educross/educross/pkg/logger"
)

// AccountService implements signup, login and profile maintenance over
// the account repository.
type AccountService struct {
	accounts *repository.AccountRepository
}

func NewAccountService(accounts *repository.AccountRepository) *AccountService {
	return &AccountService{accounts: accounts}
}

// Signup creates a new account with a zero score. Duplicate usernames are
// rejected with Conflict.
func (s *AccountService) Signup(req models.CredentialsRequest) (*models.Account, error) {
	account := &models.Account{
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
	}
	if err := s.accounts.Create(account); err != nil {
		return nil, err
	}

	logger.L().Info("account created",
		zap.String("username", account.Username),
		zap.String("role", string(account.Role)))
	return account, nil
}

// Authenticate succeeds only when username, password and role all match
// exactly. Every mismatch collapses into the same generic failure so that
// callers cannot tell a missing account from a wrong password.
func (s *AccountService) Authenticate(username, password string, role models.Role) (*models.Account, error) {
	account, err := s.accounts.Get(username)
	if err != nil {
		if appErr, ok := err.(*errors.AppError); ok && appErr.Code == errors.CodeNotFound {
			return nil, errors.AuthFailed()
		}
		return nil, err
	}

	if account.Password != password || account.Role != role {
		return nil, errors.AuthFailed()
	}
	return account, nil
}

// Fetch re-reads an account from the store. Used at navigation boundaries
// to reconcile the session's cached copy.
func (s *AccountService) Fetch(username string) (*models.Account, error) {
	return s.accounts.Get(username)
}

// SaveProfile applies the editable fields and writes the full record back.
// Last-writer-wins; a concurrent edit from another session is clobbered.
func (s *AccountService) SaveProfile(username string, req models.SaveProfileRequest) (*models.Account, error) {
	account, err := s.accounts.Get(username)
	if err != nil {
		return nil, err
	}

	account.Email = req.Email
	account.Bio = req.Bio
	if req.Avatar != "" {
		account.Avatar = req.Avatar
	}

	if err := s.accounts.Save(account); err != nil {
		return nil, err
	}
	return account, nil
}

// Students returns the roster, sorted by username.
func (s *AccountService) Students() ([]models.Account, error) {
	return s.accounts.ListByRole(models.RoleStudent)
}
