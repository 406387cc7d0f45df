package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"go-atm-cli/logger"
	"go-atm-cli/model"
	"go-atm-cli/repository"
)

var (
	ErrInvalidAmount           = errors.New("amount must be greater than zero")
	ErrInsufficientFunds       = errors.New("insufficient funds")
	ErrSameAccountTransfer     = errors.New("cannot transfer money to the same account")
	ErrSenderAccountNotFound   = errors.New("sender account not found")
	ErrReceiverAccountNotFound = errors.New("receiver account not found")
)

// TransactionService performs every balance mutation and records the matching
// history entry. A rejected operation leaves balance and history untouched:
// all checks run before the first write.
type TransactionService struct {
	accountRepo     repository.IAccountRepository
	transactionRepo repository.ITransactionRepository
}

func NewTransactionService(accountRepo repository.IAccountRepository, transactionRepo repository.ITransactionRepository) *TransactionService {
	return &TransactionService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
	}
}

// Deposit adds amount to the account balance and appends a Deposit entry
// carrying the resulting balance.
func (s *TransactionService) Deposit(number string, amount float64) (float64, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"account_number": number,
		"amount":         amount,
	})

	if amount <= 0 {
		return 0, ErrInvalidAmount
	}

	account, err := s.accountRepo.GetAccountByNumber(number)
	if err != nil {
		if errors.Is(err, repository.ErrNoAccount) {
			return 0, ErrAccountNotFound
		}
		return 0, err
	}

	newBalance := account.Balance + amount
	if err := s.accountRepo.UpdateAccountBalance(number, newBalance); err != nil {
		return 0, fmt.Errorf("could not update balance: %w", err)
	}
	if err := s.recordTransaction(number, model.KindDeposit, amount, "cash deposit", newBalance); err != nil {
		return 0, err
	}

	log.WithField("new_balance", newBalance).Info("Deposit completed")
	return newBalance, nil
}

// Withdraw subtracts amount from the account balance and appends a Withdrawal
// entry. The balance never goes below zero; withdrawing the exact balance is
// allowed.
func (s *TransactionService) Withdraw(number string, amount float64) (float64, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"account_number": number,
		"amount":         amount,
	})

	if amount <= 0 {
		return 0, ErrInvalidAmount
	}

	account, err := s.accountRepo.GetAccountByNumber(number)
	if err != nil {
		if errors.Is(err, repository.ErrNoAccount) {
			return 0, ErrAccountNotFound
		}
		return 0, err
	}

	if amount > account.Balance {
		log.WithField("balance", account.Balance).Info("Withdrawal rejected: insufficient funds")
		return 0, ErrInsufficientFunds
	}

	newBalance := account.Balance - amount
	if err := s.accountRepo.UpdateAccountBalance(number, newBalance); err != nil {
		return 0, fmt.Errorf("could not update balance: %w", err)
	}
	if err := s.recordTransaction(number, model.KindWithdrawal, amount, "cash withdrawal", newBalance); err != nil {
		return 0, err
	}

	log.WithField("new_balance", newBalance).Info("Withdrawal completed")
	return newBalance, nil
}

// Transfer moves amount between two accounts and appends a TransferOut entry
// to the source and a TransferIn entry to the destination.
func (s *TransactionService) Transfer(fromNumber, toNumber string, amount float64) (float64, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"from_account": fromNumber,
		"to_account":   toNumber,
		"amount":       amount,
	})

	if amount <= 0 {
		return 0, ErrInvalidAmount
	}
	if fromNumber == toNumber {
		return 0, ErrSameAccountTransfer
	}

	fromAccount, err := s.accountRepo.GetAccountByNumber(fromNumber)
	if err != nil {
		if errors.Is(err, repository.ErrNoAccount) {
			return 0, ErrSenderAccountNotFound
		}
		return 0, err
	}
	toAccount, err := s.accountRepo.GetAccountByNumber(toNumber)
	if err != nil {
		if errors.Is(err, repository.ErrNoAccount) {
			return 0, ErrReceiverAccountNotFound
		}
		return 0, err
	}

	if amount > fromAccount.Balance {
		return 0, ErrInsufficientFunds
	}

	fromBalance := fromAccount.Balance - amount
	toBalance := toAccount.Balance + amount

	if err := s.accountRepo.UpdateAccountBalance(fromNumber, fromBalance); err != nil {
		return 0, fmt.Errorf("could not update sender balance: %w", err)
	}
	if err := s.accountRepo.UpdateAccountBalance(toNumber, toBalance); err != nil {
		return 0, fmt.Errorf("could not update receiver balance: %w", err)
	}

	if err := s.recordTransaction(fromNumber, model.KindTransferOut, amount, "to "+toNumber, fromBalance); err != nil {
		return 0, err
	}
	if err := s.recordTransaction(toNumber, model.KindTransferIn, amount, "from "+fromNumber, toBalance); err != nil {
		return 0, err
	}

	log.Info("Transfer completed")
	return fromBalance, nil
}

// GetHistory returns the account's full transaction history in insertion
// order. The returned slice is a copy and can be read repeatedly.
func (s *TransactionService) GetHistory(number string) ([]*model.Transaction, error) {
	if _, err := s.accountRepo.GetAccountByNumber(number); err != nil {
		if errors.Is(err, repository.ErrNoAccount) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return s.transactionRepo.GetTransactionsByAccountNumber(number)
}

// MiniStatement returns at most limit newest history entries, oldest first.
// A limit of zero or less means the full history.
func (s *TransactionService) MiniStatement(number string, limit int) ([]*model.Transaction, error) {
	history, err := s.GetHistory(number)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(history) > limit {
		history = history[len(history)-limit:]
	}
	return history, nil
}

func (s *TransactionService) recordTransaction(number string, kind model.TransactionKind, amount float64, remark string, balanceAfter float64) error {
	transaction := &model.Transaction{
		ID:            uuid.NewString(),
		AccountNumber: number,
		Kind:          kind,
		Amount:        amount,
		Remark:        remark,
		BalanceAfter:  balanceAfter,
		CreatedAt:     time.Now(),
	}
	if err := s.transactionRepo.AppendTransaction(transaction); err != nil {
		return fmt.Errorf("could not record transaction: %w", err)
	}
	return nil
}
