// file: model/request.go

package model

// CreateAccountRequest defines the input for opening a new account.
// Number is optional: when empty the ledger assigns the next free number.
type CreateAccountRequest struct {
	Number         string  `validate:"omitempty,numeric"`
	HolderName     string  `validate:"required,min=1,max=50"`
	PIN            string  `validate:"required,numeric"`
	InitialBalance float64 `validate:"gte=0"`
}

// ChangePINRequest defines the input for replacing an account's PIN.
type ChangePINRequest struct {
	Current string `validate:"required"`
	New     string `validate:"required,numeric"`
	Confirm string `validate:"required"`
}
