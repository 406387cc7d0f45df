// file: service/account_service.go

package service

import (
	"errors"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"go-atm-cli/common"
	"go-atm-cli/config"
	"go-atm-cli/logger"
	"go-atm-cli/model"
	"go-atm-cli/repository"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrInvalidPIN      = errors.New("invalid PIN")
	ErrAccountExists   = errors.New("account number already in use")
	ErrPINMismatch     = errors.New("new PIN and confirmation do not match")
	ErrPINTooShort     = errors.New("PIN is shorter than the minimum length")
)

// AccountService owns account lifecycle and credential checks.
type AccountService struct {
	repo repository.IAccountRepository
}

func NewAccountService(repo repository.IAccountRepository) *AccountService {
	return &AccountService{repo: repo}
}

// Authenticate returns the account when the number exists and the stored PIN
// matches exactly. PINs are compared in plaintext.
func (s *AccountService) Authenticate(number, pin string) (*model.Account, error) {
	log := logger.Log.WithField("account_number", number)

	account, err := s.repo.GetAccountByNumber(number)
	if err != nil {
		if errors.Is(err, repository.ErrNoAccount) {
			log.Info("Login attempt for unknown account")
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	if account.PIN != pin {
		log.Warn("Login attempt with wrong PIN")
		return nil, ErrInvalidPIN
	}

	log.Info("Account authenticated")
	return account, nil
}

// CreateAccount opens a new account. When req.Number is empty the service
// assigns the smallest unused number greater than every existing numeric
// account number; the very first account gets the configured starting number.
func (s *AccountService) CreateAccount(req model.CreateAccountRequest) (*model.Account, error) {
	if err := common.ValidateStruct(req); err != nil {
		return nil, err
	}
	if len(req.PIN) < config.AppConfig.Ledger.MinPINLength {
		return nil, ErrPINTooShort
	}

	number := req.Number
	if number == "" {
		lastNumber, err := s.repo.GetLastAccountNumber()
		if err != nil {
			return nil, err
		}
		next := lastNumber + 1
		if lastNumber == 0 {
			next = config.AppConfig.Ledger.FirstAccountNumber
		}
		number = strconv.FormatInt(next, 10)
	}

	account := &model.Account{
		Number:     number,
		HolderName: req.HolderName,
		PIN:        req.PIN,
		Balance:    req.InitialBalance,
		CreatedAt:  time.Now(),
	}

	if err := s.repo.CreateAccount(account); err != nil {
		if errors.Is(err, repository.ErrDuplicateAccount) {
			return nil, ErrAccountExists
		}
		return nil, err
	}

	logger.Log.WithFields(logrus.Fields{
		"account_number": account.Number,
		"holder_name":    account.HolderName,
		"balance":        account.Balance,
	}).Info("Account created")

	return account, nil
}

// GetBalance is a pure read of the current balance.
func (s *AccountService) GetBalance(number string) (float64, error) {
	account, err := s.repo.GetAccountByNumber(number)
	if err != nil {
		if errors.Is(err, repository.ErrNoAccount) {
			return 0, ErrAccountNotFound
		}
		return 0, err
	}
	return account.Balance, nil
}

// ChangePIN replaces the account's PIN after checking the current one.
func (s *AccountService) ChangePIN(number string, req model.ChangePINRequest) error {
	if err := common.ValidateStruct(req); err != nil {
		return err
	}
	if req.New != req.Confirm {
		return ErrPINMismatch
	}
	if len(req.New) < config.AppConfig.Ledger.MinPINLength {
		return ErrPINTooShort
	}

	account, err := s.repo.GetAccountByNumber(number)
	if err != nil {
		if errors.Is(err, repository.ErrNoAccount) {
			return ErrAccountNotFound
		}
		return err
	}
	if account.PIN != req.Current {
		logger.Log.WithField("account_number", number).Warn("PIN change rejected: current PIN wrong")
		return ErrInvalidPIN
	}

	if err := s.repo.UpdateAccountPIN(number, req.New); err != nil {
		return err
	}

	logger.Log.WithField("account_number", number).Info("PIN changed")
	return nil
}
