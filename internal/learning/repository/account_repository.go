package repository

import (
	goerrors "errors"

	"gorm.io/gorm"

	"github.com/educross/educross/internal/common/errors"
	"github.com/educross/educross/internal/learning/models"
)

// AccountRepository owns all reads and writes of account records. The
// store handle is injected; the repository keeps no global state.
type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// Create inserts a new account with a zero score. Returns Conflict when
// the username is already taken.
func (r *AccountRepository) Create(account *models.Account) error {
	var existing models.Account
	err := r.db.First(&existing, "username = ?", account.Username).Error
	if err == nil {
		return errors.Conflict("username already taken")
	}
	if !goerrors.Is(err, gorm.ErrRecordNotFound) {
		return errors.Store("get user", err)
	}

	if err := r.db.Create(account).Error; err != nil {
		if goerrors.Is(err, gorm.ErrDuplicatedKey) {
			return errors.Conflict("username already taken")
		}
		return errors.Store("create user", err)
	}
	return nil
}

// Get fetches an account by username. Returns NotFound when absent.
func (r *AccountRepository) Get(username string) (*models.Account, error) {
	var account models.Account
	err := r.db.First(&account, "username = ?", username).Error
	if err != nil {
		if goerrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NotFound("account")
		}
		return nil, errors.Store("get user", err)
	}
	return &account, nil
}

// Save writes the full record back. Last-writer-wins: there is no
// optimistic concurrency check, concurrent edits clobber each other.
func (r *AccountRepository) Save(account *models.Account) error {
	if err := r.db.Save(account).Error; err != nil {
		return errors.Store("save user", err)
	}
	return nil
}

// ListByRole returns all accounts with the given role, sorted by username.
func (r *AccountRepository) ListByRole(role models.Role) ([]models.Account, error) {
	var accounts []models.Account
	err := r.db.Where("role = ?", role).Order("username ASC").Find(&accounts).Error
	if err != nil {
		return nil, errors.Store("scan users", err)
	}
	return accounts, nil
}
