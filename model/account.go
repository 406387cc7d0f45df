package model

import "time"

// Account is a ledger record identified by its account number. The PIN is
// stored and compared in plaintext; this is a demo ledger, not a vault.
type Account struct {
	Number     string    `json:"number"`
	HolderName string    `json:"holder_name"`
	PIN        string    `json:"-"`
	Balance    float64   `json:"balance"`
	CreatedAt  time.Time `json:"created_at"`
}
