// File: app/app.go
package app

import (
	"os"

	"go-atm-cli/config"
	"go-atm-cli/logger"
	"go-atm-cli/menu"
	"go-atm-cli/model"
	"go-atm-cli/repository"
	"go-atm-cli/service"
)

func Run() {
	config.LoadConfig(".")
	logger.Init()
	logger.Log.Info("Logger initialized")
	logger.Log.Info("Configuration loaded successfully")

	// --- Wiring All Layers Together ---
	// Repositories hold the memory-resident state; the services enforce the
	// ledger rules; the menu is a thin caller on top.
	accountRepo := repository.NewAccountRepository()
	transactionRepo := repository.NewTransactionRepository()

	accountService := service.NewAccountService(accountRepo)
	transactionService := service.NewTransactionService(accountRepo, transactionRepo)

	seedDemoAccounts(accountService)

	m := menu.New(accountService, transactionService, os.Stdin, os.Stdout, config.AppConfig.Menu.StatementLimit)
	m.Run()

	logger.Log.Info("Session ended")
}

// seedDemoAccounts loads the preset accounts from configuration. Demo
// accounts start with an empty history; their opening balance is not a
// transaction.
func seedDemoAccounts(accounts *service.AccountService) {
	for _, demo := range config.AppConfig.Demo.Accounts {
		_, err := accounts.CreateAccount(model.CreateAccountRequest{
			Number:         demo.Number,
			HolderName:     demo.Name,
			PIN:            demo.PIN,
			InitialBalance: demo.Balance,
		})
		if err != nil {
			logger.Log.WithError(err).WithField("account_number", demo.Number).
				Fatal("Failed to seed demo account")
		}
	}
	logger.Log.WithField("count", len(config.AppConfig.Demo.Accounts)).Info("Demo accounts seeded")
}
