package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

var Log *logrus.Logger

func init() {
	// Tests reach the services without going through main, so the logger is
	// initialized eagerly rather than from InitLogger alone.
	Log = logrus.New()
	Log.Out = os.Stdout
	Log.SetFormatter(&logrus.JSONFormatter{})
	Log.SetLevel(logrus.InfoLevel)
}

// InitLogger reconfigures the shared logger; level can be raised for debugging.
func InitLogger(level logrus.Level) {
	Log.SetLevel(level)
}
