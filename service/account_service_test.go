// file: service/account_service_test.go

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"go-atm-cli/model"
	"go-atm-cli/repository"
)

// mockAccountRepoForAccountSvc is a mock implementation of IAccountRepository
// for testing the account service.
type mockAccountRepoForAccountSvc struct{ mock.Mock }

func (m *mockAccountRepoForAccountSvc) CreateAccount(account *model.Account) error {
	args := m.Called(account)
	return args.Error(0)
}

func (m *mockAccountRepoForAccountSvc) GetAccountByNumber(number string) (*model.Account, error) {
	args := m.Called(number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *mockAccountRepoForAccountSvc) GetLastAccountNumber() (int64, error) {
	args := m.Called()
	// We cast to int64 because the mock framework returns interface{}
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAccountRepoForAccountSvc) UpdateAccountPIN(number string, newPIN string) error {
	args := m.Called(number, newPIN)
	return args.Error(0)
}

// --- Unused methods that are required to satisfy the interface contract ---
func (m *mockAccountRepoForAccountSvc) GetAllAccounts() ([]*model.Account, error) { return nil, nil }
func (m *mockAccountRepoForAccountSvc) UpdateAccountBalance(string, float64) error {
	return nil
}

func TestAccountService_Authenticate(t *testing.T) {
	mockRepo := new(mockAccountRepoForAccountSvc)
	accountService := NewAccountService(mockRepo)

	stored := &model.Account{Number: "1001", HolderName: "Alice", PIN: "1234", Balance: 5000}

	t.Run("success", func(t *testing.T) {
		mockRepo.On("GetAccountByNumber", "1001").Return(stored, nil).Once()

		account, err := accountService.Authenticate("1001", "1234")

		assert.NoError(t, err)
		assert.Equal(t, "Alice", account.HolderName)
		mockRepo.AssertExpectations(t)
	})

	t.Run("wrong pin", func(t *testing.T) {
		mockRepo.On("GetAccountByNumber", "1001").Return(stored, nil).Once()

		_, err := accountService.Authenticate("1001", "0000")

		assert.ErrorIs(t, err, ErrInvalidPIN)
		mockRepo.AssertExpectations(t)
	})

	t.Run("unknown account", func(t *testing.T) {
		mockRepo.On("GetAccountByNumber", "9999").Return(nil, repository.ErrNoAccount).Once()

		_, err := accountService.Authenticate("9999", "1234")

		assert.ErrorIs(t, err, ErrAccountNotFound)
		mockRepo.AssertExpectations(t)
	})
}

// TestAccountService_CreateAccount tests the sequential account number
// generation logic.
func TestAccountService_CreateAccount(t *testing.T) {
	t.Run("auto number continues past the highest existing", func(t *testing.T) {
		mockRepo := new(mockAccountRepoForAccountSvc)
		accountService := NewAccountService(mockRepo)

		// This is the highest account number currently in the store.
		lastAccountNumber := int64(1007)
		mockRepo.On("GetLastAccountNumber").Return(lastAccountNumber, nil).Once()

		// We expect CreateAccount to be called with the NEXT account number.
		mockRepo.On("CreateAccount", mock.MatchedBy(func(acc *model.Account) bool {
			return acc.Number == "1008" && acc.HolderName == "Carol"
		})).Return(nil).Once()

		account, err := accountService.CreateAccount(model.CreateAccountRequest{
			HolderName:     "Carol",
			PIN:            "5678",
			InitialBalance: 100,
		})

		assert.NoError(t, err)
		assert.Equal(t, "1008", account.Number)
		assert.Equal(t, 100.0, account.Balance)
		mockRepo.AssertExpectations(t)
	})

	t.Run("first auto number comes from config", func(t *testing.T) {
		mockRepo := new(mockAccountRepoForAccountSvc)
		accountService := NewAccountService(mockRepo)

		mockRepo.On("GetLastAccountNumber").Return(int64(0), nil).Once()
		mockRepo.On("CreateAccount", mock.MatchedBy(func(acc *model.Account) bool {
			return acc.Number == "1001"
		})).Return(nil).Once()

		account, err := accountService.CreateAccount(model.CreateAccountRequest{
			HolderName:     "Dave",
			PIN:            "9876",
			InitialBalance: 0,
		})

		assert.NoError(t, err)
		assert.Equal(t, "1001", account.Number)
		mockRepo.AssertExpectations(t)
	})

	t.Run("duplicate explicit number", func(t *testing.T) {
		mockRepo := new(mockAccountRepoForAccountSvc)
		accountService := NewAccountService(mockRepo)

		mockRepo.On("CreateAccount", mock.AnythingOfType("*model.Account")).
			Return(repository.ErrDuplicateAccount).Once()

		_, err := accountService.CreateAccount(model.CreateAccountRequest{
			Number:         "1001",
			HolderName:     "Eve",
			PIN:            "1111",
			InitialBalance: 0,
		})

		assert.ErrorIs(t, err, ErrAccountExists)
		mockRepo.AssertExpectations(t)
	})

	t.Run("short pin", func(t *testing.T) {
		mockRepo := new(mockAccountRepoForAccountSvc)
		accountService := NewAccountService(mockRepo)

		_, err := accountService.CreateAccount(model.CreateAccountRequest{
			HolderName:     "Frank",
			PIN:            "12",
			InitialBalance: 0,
		})

		assert.ErrorIs(t, err, ErrPINTooShort)
		mockRepo.AssertNotCalled(t, "CreateAccount")
	})

	t.Run("negative initial balance", func(t *testing.T) {
		mockRepo := new(mockAccountRepoForAccountSvc)
		accountService := NewAccountService(mockRepo)

		_, err := accountService.CreateAccount(model.CreateAccountRequest{
			HolderName:     "Grace",
			PIN:            "4321",
			InitialBalance: -10,
		})

		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "CreateAccount")
	})
}

func TestAccountService_GetBalance(t *testing.T) {
	mockRepo := new(mockAccountRepoForAccountSvc)
	accountService := NewAccountService(mockRepo)

	mockRepo.On("GetAccountByNumber", "1001").
		Return(&model.Account{Number: "1001", Balance: 5000}, nil).Once()

	balance, err := accountService.GetBalance("1001")

	assert.NoError(t, err)
	assert.Equal(t, 5000.0, balance)
	mockRepo.AssertExpectations(t)
}

func TestAccountService_ChangePIN(t *testing.T) {
	stored := &model.Account{Number: "1001", PIN: "1234"}

	t.Run("success", func(t *testing.T) {
		mockRepo := new(mockAccountRepoForAccountSvc)
		accountService := NewAccountService(mockRepo)

		mockRepo.On("GetAccountByNumber", "1001").Return(stored, nil).Once()
		mockRepo.On("UpdateAccountPIN", "1001", "5678").Return(nil).Once()

		err := accountService.ChangePIN("1001", model.ChangePINRequest{
			Current: "1234", New: "5678", Confirm: "5678",
		})

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("confirmation mismatch", func(t *testing.T) {
		mockRepo := new(mockAccountRepoForAccountSvc)
		accountService := NewAccountService(mockRepo)

		err := accountService.ChangePIN("1001", model.ChangePINRequest{
			Current: "1234", New: "5678", Confirm: "8765",
		})

		assert.ErrorIs(t, err, ErrPINMismatch)
		mockRepo.AssertNotCalled(t, "UpdateAccountPIN")
	})

	t.Run("wrong current pin", func(t *testing.T) {
		mockRepo := new(mockAccountRepoForAccountSvc)
		accountService := NewAccountService(mockRepo)

		mockRepo.On("GetAccountByNumber", "1001").Return(stored, nil).Once()

		err := accountService.ChangePIN("1001", model.ChangePINRequest{
			Current: "0000", New: "5678", Confirm: "5678",
		})

		assert.ErrorIs(t, err, ErrInvalidPIN)
		mockRepo.AssertNotCalled(t, "UpdateAccountPIN")
	})
}
