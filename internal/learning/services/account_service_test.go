package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/educross/educross/internal/common/errors"
	"github.com/educross/educross/internal/learning/models"
	"github.com/educross/educross/internal/learning/repository"
)

func setupAccounts(t *testing.T) *AccountService {
	t.Helper()
	return NewAccountService(repository.NewAccountRepository(setupTestDB(t)))
}

func signup(t *testing.T, svc *AccountService, username, password string, role models.Role) {
	t.Helper()
	_, err := svc.Signup(models.CredentialsRequest{Username: username, Password: password, Role: role})
	require.NoError(t, err)
}

func TestSignup_SecondAttemptRejected(t *testing.T) {
	svc := setupAccounts(t)
	signup(t, svc, "mara", "pass123", models.RoleStudent)

	_, err := svc.Signup(models.CredentialsRequest{
		Username: "mara", Password: "different", Role: models.RoleStudent,
	})

	require.Error(t, err)
	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.CodeConflict, appErr.Code)
}

func TestAuthenticate_RequiresExactMatchOnAllThree(t *testing.T) {
	svc := setupAccounts(t)
	signup(t, svc, "mara", "pass123", models.RoleStudent)

	account, err := svc.Authenticate("mara", "pass123", models.RoleStudent)
	require.NoError(t, err)
	assert.Equal(t, "mara", account.Username)

	cases := []struct {
		name     string
		username string
		password string
		role     models.Role
	}{
		{"unknown user", "nobody", "pass123", models.RoleStudent},
		{"wrong password", "mara", "wrong", models.RoleStudent},
		{"wrong role", "mara", "pass123", models.RoleTeacher},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			account, err := svc.Authenticate(tc.username, tc.password, tc.role)
			assert.Nil(t, account)
			require.Error(t, err)
			appErr, ok := err.(*errors.AppError)
			require.True(t, ok)
			assert.Equal(t, errors.CodeUnauthorized, appErr.Code)
		})
	}
}

// Unknown users and wrong passwords must be indistinguishable to callers.
func TestAuthenticate_GenericFailureMessage(t *testing.T) {
	svc := setupAccounts(t)
	signup(t, svc, "mara", "pass123", models.RoleStudent)

	_, errMissing := svc.Authenticate("nobody", "pass123", models.RoleStudent)
	_, errWrongPw := svc.Authenticate("mara", "wrong", models.RoleStudent)

	require.Error(t, errMissing)
	require.Error(t, errWrongPw)
	assert.Equal(t, errMissing.Error(), errWrongPw.Error())
}

func TestSaveProfile_AppliesEditableFields(t *testing.T) {
	svc := setupAccounts(t)
	signup(t, svc, "mara", "pass123", models.RoleStudent)

	account, err := svc.SaveProfile("mara", models.SaveProfileRequest{
		Email: "mara@example.com",
		Bio:   "Likes planets",
	})
	require.NoError(t, err)
	assert.Equal(t, "mara@example.com", account.Email)
	assert.Equal(t, "Likes planets", account.Bio)

	stored, err := svc.Fetch("mara")
	require.NoError(t, err)
	assert.Equal(t, "Likes planets", stored.Bio)
	// Credentials survive a profile save untouched.
	assert.Equal(t, "pass123", stored.Password)
}

func TestSaveProfile_EmptyAvatarKeepsExisting(t *testing.T) {
	svc := setupAccounts(t)
	signup(t, svc, "mara", "pass123", models.RoleStudent)

	_, err := svc.SaveProfile("mara", models.SaveProfileRequest{Avatar: "data:image/png;base64,abc"})
	require.NoError(t, err)

	account, err := svc.SaveProfile("mara", models.SaveProfileRequest{Bio: "updated"})
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,abc", account.Avatar)
}

func TestSaveProfile_MissingAccount(t *testing.T) {
	svc := setupAccounts(t)

	_, err := svc.SaveProfile("nobody", models.SaveProfileRequest{Bio: "x"})

	require.Error(t, err)
	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.CodeNotFound, appErr.Code)
}
