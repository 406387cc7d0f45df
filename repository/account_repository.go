package repository

import (
	"errors"
	"strconv"
	"sync"

	"github.com/sirupsen/logrus"

	"go-atm-cli/logger"
	"go-atm-cli/model"
)

// Store-level errors. The service layer maps these to its own domain errors,
// the same way a SQL-backed repository surfaces sql.ErrNoRows.
var (
	ErrNoAccount        = errors.New("account not found in store")
	ErrDuplicateAccount = errors.New("account number already exists in store")
)

// IAccountRepository defines the contract for account storage.
type IAccountRepository interface {
	CreateAccount(account *model.Account) error
	GetAccountByNumber(number string) (*model.Account, error)
	GetAllAccounts() ([]*model.Account, error)
	GetLastAccountNumber() (int64, error)
	UpdateAccountBalance(number string, newBalance float64) error
	UpdateAccountPIN(number string, newPIN string) error
}

// AccountRepository implements IAccountRepository on an in-memory map.
// Accounts are stored by value behind the mutex; callers always receive
// copies, never internal pointers.
type AccountRepository struct {
	mu    sync.RWMutex
	accts map[string]*model.Account
	order []string
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{accts: make(map[string]*model.Account)}
}

// CreateAccount adds a new account to the store. The account number must be
// unused.
func (r *AccountRepository) CreateAccount(account *model.Account) error {
	log := logger.Log.WithFields(logrus.Fields{
		"account_number": account.Number,
		"holder_name":    account.HolderName,
	})

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accts[account.Number]; exists {
		log.Debug("Rejected create: account number already present")
		return ErrDuplicateAccount
	}

	cp := *account
	r.accts[account.Number] = &cp
	r.order = append(r.order, account.Number)
	log.Debug("Stored new account")
	return nil
}

// GetAccountByNumber returns a copy of the account with the given number.
func (r *AccountRepository) GetAccountByNumber(number string) (*model.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.accts[number]
	if !ok {
		return nil, ErrNoAccount
	}
	cp := *a
	return &cp, nil
}

// GetAllAccounts returns copies of every account in creation order.
func (r *AccountRepository) GetAllAccounts() ([]*model.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	accounts := make([]*model.Account, 0, len(r.order))
	for _, number := range r.order {
		cp := *r.accts[number]
		accounts = append(accounts, &cp)
	}
	return accounts, nil
}

// GetLastAccountNumber returns the highest numeric account number in the
// store, or 0 when no account has a numeric number yet. Non-numeric numbers
// are skipped.
func (r *AccountRepository) GetLastAccountNumber() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var last int64
	for number := range r.accts {
		n, err := strconv.ParseInt(number, 10, 64)
		if err != nil {
			continue
		}
		if n > last {
			last = n
		}
	}
	return last, nil
}

// UpdateAccountBalance replaces the stored balance of an account.
func (r *AccountRepository) UpdateAccountBalance(number string, newBalance float64) error {
	log := logger.Log.WithFields(logrus.Fields{
		"account_number": number,
		"new_balance":    newBalance,
	})

	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.accts[number]
	if !ok {
		return ErrNoAccount
	}
	a.Balance = newBalance
	log.Debug("Updated account balance")
	return nil
}

// UpdateAccountPIN replaces the stored PIN of an account.
func (r *AccountRepository) UpdateAccountPIN(number string, newPIN string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.accts[number]
	if !ok {
		return ErrNoAccount
	}
	a.PIN = newPIN
	logger.Log.WithField("account_number", number).Debug("Updated account PIN")
	return nil
}
