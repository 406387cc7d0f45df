package repository

import (
	"sync"

	"go-atm-cli/logger"
	"go-atm-cli/model"

	"github.com/sirupsen/logrus"
)

// ITransactionRepository defines the contract for transaction history storage.
type ITransactionRepository interface {
	AppendTransaction(transaction *model.Transaction) error
	GetTransactionsByAccountNumber(number string) ([]*model.Transaction, error)
}

// TransactionRepository implements ITransactionRepository with append-only,
// insertion-ordered per-account slices. History entries are never updated,
// reordered or removed.
type TransactionRepository struct {
	mu        sync.RWMutex
	byAccount map[string][]model.Transaction
}

func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{byAccount: make(map[string][]model.Transaction)}
}

// AppendTransaction records a transaction at the end of its account's history.
func (r *TransactionRepository) AppendTransaction(transaction *model.Transaction) error {
	log := logger.Log.WithFields(logrus.Fields{
		"account_number": transaction.AccountNumber,
		"kind":           transaction.Kind,
		"amount":         transaction.Amount,
	})

	r.mu.Lock()
	defer r.mu.Unlock()

	number := transaction.AccountNumber
	r.byAccount[number] = append(r.byAccount[number], *transaction)
	log.Debug("Appended transaction to history")
	return nil
}

// GetTransactionsByAccountNumber returns a copy of the account's history in
// insertion order. An account with no transactions yields an empty slice.
func (r *TransactionRepository) GetTransactionsByAccountNumber(number string) ([]*model.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	history := r.byAccount[number]
	transactions := make([]*model.Transaction, 0, len(history))
	for i := range history {
		cp := history[i]
		transactions = append(transactions, &cp)
	}
	return transactions, nil
}
