package config

import (
	"log"

	"github.com/spf13/viper"
)

// DemoAccount describes an account seeded into the ledger at startup.
type DemoAccount struct {
	Number  string  `mapstructure:"number"`
	Name    string  `mapstructure:"name"`
	PIN     string  `mapstructure:"pin"`
	Balance float64 `mapstructure:"balance"`
}

type Config struct {
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	Ledger struct {
		// FirstAccountNumber is assigned to the first auto-numbered account
		// when the ledger holds no numeric account numbers yet.
		FirstAccountNumber int64 `mapstructure:"first_account_number"`
		MinPINLength       int   `mapstructure:"min_pin_length"`
	} `mapstructure:"ledger"`
	Menu struct {
		StatementLimit int `mapstructure:"statement_limit"`
	} `mapstructure:"menu"`
	Demo struct {
		Accounts []DemoAccount `mapstructure:"accounts"`
	} `mapstructure:"demo"`
}

var AppConfig Config

// LoadConfig populates AppConfig from config.yml under path, falling back to
// built-in defaults when the file is absent. Only a malformed file is fatal.
func LoadConfig(path string) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yml")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			log.Fatalf("Error reading config file, %s", err)
		}
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
}

func setDefaults() {
	viper.SetDefault("log.level", "info")
	viper.SetDefault("ledger.first_account_number", 1001)
	viper.SetDefault("ledger.min_pin_length", 4)
	viper.SetDefault("menu.statement_limit", 10)
	viper.SetDefault("demo.accounts", []map[string]interface{}{
		{"number": "1001", "name": "Alice", "pin": "1234", "balance": 5000.0},
		{"number": "1002", "name": "Bob", "pin": "2345", "balance": 3000.0},
	})
}
