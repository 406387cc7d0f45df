// file: logger/logger.go

package logger

import (
	"os"

	"github.com/sirupsen/logrus"

	"go-atm-cli/config"
)

// Log is the shared application logger. Call Init before using it.
var Log *logrus.Logger

// Init configures the global logger. Output goes to stderr so log lines never
// interleave with the interactive menu on stdout.
func Init() {
	Log = logrus.New()
	Log.SetOutput(os.Stderr)
	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	level, err := logrus.ParseLevel(config.AppConfig.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)
}
