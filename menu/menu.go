// Package menu is the interactive console surface. It owns no business rules:
// every operation is delegated to the services and every domain error is
// recovered by printing a message and re-prompting.
package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go-atm-cli/model"
	"go-atm-cli/service"
)

type Menu struct {
	accounts     *service.AccountService
	transactions *service.TransactionService

	in             *bufio.Scanner
	out            io.Writer
	statementLimit int
}

func New(accounts *service.AccountService, transactions *service.TransactionService, in io.Reader, out io.Writer, statementLimit int) *Menu {
	return &Menu{
		accounts:       accounts,
		transactions:   transactions,
		in:             bufio.NewScanner(in),
		out:            out,
		statementLimit: statementLimit,
	}
}

// Run drives the top-level loop until the user exits or input ends.
func (m *Menu) Run() {
	for {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "====== Welcome to the ATM ======")
		fmt.Fprintln(m.out, "1. Login")
		fmt.Fprintln(m.out, "2. Create new account")
		fmt.Fprintln(m.out, "3. Exit")

		choice, ok := m.prompt("Select: ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			account, ok := m.login()
			if !ok {
				return
			}
			if account != nil {
				if !m.session(account) {
					return
				}
			}
		case "2":
			if !m.createAccount() {
				return
			}
		case "3":
			fmt.Fprintln(m.out, "Exiting. Goodbye.")
			return
		default:
			fmt.Fprintln(m.out, "Invalid selection.")
		}
	}
}

// login returns (nil, true) on a failed attempt so the caller re-prompts.
func (m *Menu) login() (*model.Account, bool) {
	number, ok := m.prompt("Enter account number: ")
	if !ok {
		return nil, false
	}
	pin, ok := m.prompt("Enter PIN: ")
	if !ok {
		return nil, false
	}

	account, err := m.accounts.Authenticate(number, pin)
	if err != nil {
		fmt.Fprintln(m.out, userMessage(err))
		return nil, true
	}
	fmt.Fprintf(m.out, "Welcome, %s!\n", account.HolderName)
	return account, true
}

func (m *Menu) createAccount() bool {
	number, ok := m.prompt("Choose an account number (empty for automatic): ")
	if !ok {
		return false
	}
	name, ok := m.prompt("Enter account holder name: ")
	if !ok {
		return false
	}
	pin, ok := m.prompt("Set PIN: ")
	if !ok {
		return false
	}
	initial, ok := m.promptAmount("Initial deposit (0 if none): ")
	if !ok {
		return false
	}

	account, err := m.accounts.CreateAccount(model.CreateAccountRequest{
		Number:         number,
		HolderName:     name,
		PIN:            pin,
		InitialBalance: initial,
	})
	if err != nil {
		fmt.Fprintln(m.out, userMessage(err))
		return true
	}
	fmt.Fprintf(m.out, "Account created. Your account number is %s.\n", account.Number)
	return true
}

// session drives the per-account loop. Returns false when input ended.
func (m *Menu) session(account *model.Account) bool {
	for {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "--- ATM Menu ---")
		fmt.Fprintln(m.out, "1. Check Balance")
		fmt.Fprintln(m.out, "2. Deposit")
		fmt.Fprintln(m.out, "3. Withdraw")
		fmt.Fprintln(m.out, "4. Transfer")
		fmt.Fprintln(m.out, "5. Mini Statement")
		fmt.Fprintln(m.out, "6. Change PIN")
		fmt.Fprintln(m.out, "7. Logout")

		choice, ok := m.prompt("Choose an option: ")
		if !ok {
			return false
		}
		switch choice {
		case "1":
			balance, err := m.accounts.GetBalance(account.Number)
			if err != nil {
				fmt.Fprintln(m.out, userMessage(err))
				continue
			}
			fmt.Fprintf(m.out, "Your current balance: %.2f\n", balance)
		case "2":
			if !m.deposit(account.Number) {
				return false
			}
		case "3":
			if !m.withdraw(account.Number) {
				return false
			}
		case "4":
			if !m.transfer(account.Number) {
				return false
			}
		case "5":
			m.miniStatement(account.Number)
		case "6":
			if !m.changePIN(account.Number) {
				return false
			}
		case "7":
			fmt.Fprintln(m.out, "Logging out...")
			return true
		default:
			fmt.Fprintln(m.out, "Invalid choice. Try again.")
		}
	}
}

func (m *Menu) deposit(number string) bool {
	amount, ok := m.promptAmount("Enter amount to deposit: ")
	if !ok {
		return false
	}
	newBalance, err := m.transactions.Deposit(number, amount)
	if err != nil {
		fmt.Fprintln(m.out, userMessage(err))
		return true
	}
	fmt.Fprintf(m.out, "Deposited %.2f. New balance: %.2f\n", amount, newBalance)
	return true
}

func (m *Menu) withdraw(number string) bool {
	amount, ok := m.promptAmount("Enter amount to withdraw: ")
	if !ok {
		return false
	}
	newBalance, err := m.transactions.Withdraw(number, amount)
	if err != nil {
		fmt.Fprintln(m.out, userMessage(err))
		return true
	}
	fmt.Fprintf(m.out, "Withdrew %.2f. New balance: %.2f\n", amount, newBalance)
	return true
}

func (m *Menu) transfer(number string) bool {
	toNumber, ok := m.prompt("Enter destination account number: ")
	if !ok {
		return false
	}
	amount, ok := m.promptAmount("Enter amount to transfer: ")
	if !ok {
		return false
	}
	newBalance, err := m.transactions.Transfer(number, toNumber, amount)
	if err != nil {
		fmt.Fprintln(m.out, userMessage(err))
		return true
	}
	fmt.Fprintf(m.out, "Transferred %.2f to %s. New balance: %.2f\n", amount, toNumber, newBalance)
	return true
}

func (m *Menu) miniStatement(number string) {
	transactions, err := m.transactions.MiniStatement(number, m.statementLimit)
	if err != nil {
		fmt.Fprintln(m.out, userMessage(err))
		return
	}
	if len(transactions) == 0 {
		fmt.Fprintln(m.out, "No transactions yet.")
		return
	}
	fmt.Fprintf(m.out, "Last %d transactions:\n", len(transactions))
	for _, t := range transactions {
		fmt.Fprintf(m.out, "%s | %-12s | %.2f | Bal: %.2f | %s\n",
			t.CreatedAt.Format("2006-01-02 15:04:05"), t.Kind, t.Amount, t.BalanceAfter, t.Remark)
	}
}

func (m *Menu) changePIN(number string) bool {
	current, ok := m.prompt("Enter current PIN: ")
	if !ok {
		return false
	}
	newPIN, ok := m.prompt("Enter new PIN: ")
	if !ok {
		return false
	}
	confirm, ok := m.prompt("Confirm new PIN: ")
	if !ok {
		return false
	}

	err := m.accounts.ChangePIN(number, model.ChangePINRequest{
		Current: current,
		New:     newPIN,
		Confirm: confirm,
	})
	if err != nil {
		fmt.Fprintln(m.out, userMessage(err))
		return true
	}
	fmt.Fprintln(m.out, "PIN changed successfully.")
	return true
}

// prompt reads one trimmed line. ok is false when input has ended.
func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

// promptAmount reads a decimal amount, re-prompting on unparsable input.
func (m *Menu) promptAmount(label string) (float64, bool) {
	for {
		text, ok := m.prompt(label)
		if !ok {
			return 0, false
		}
		amount, err := strconv.ParseFloat(text, 64)
		if err != nil {
			fmt.Fprintln(m.out, "Invalid amount.")
			continue
		}
		return amount, true
	}
}

// userMessage maps domain errors to the message shown at the console.
func userMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrAccountNotFound):
		return "Account not found."
	case errors.Is(err, service.ErrInvalidPIN):
		return "Invalid PIN."
	case errors.Is(err, service.ErrAccountExists):
		return "Account already exists."
	case errors.Is(err, service.ErrPINMismatch):
		return "PIN mismatch."
	case errors.Is(err, service.ErrPINTooShort):
		return "PIN must be numeric and at least 4 digits."
	case errors.Is(err, service.ErrInvalidAmount):
		return "Amount must be positive."
	case errors.Is(err, service.ErrInsufficientFunds):
		return "Insufficient funds."
	case errors.Is(err, service.ErrSameAccountTransfer):
		return "Cannot transfer to the same account."
	case errors.Is(err, service.ErrSenderAccountNotFound):
		return "Account not found."
	case errors.Is(err, service.ErrReceiverAccountNotFound):
		return "Destination account does not exist."
	}
	return err.Error()
}
