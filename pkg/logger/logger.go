package logger

import (
	"go.uber.org/zap"
)

// NOOPLogger discards everything. It is the default for servers and loaders
// built without an explicit logger, which keeps tests quiet.
var NOOPLogger = zap.NewNop().Sugar()

// New builds a human readable development logger for the local environment
// and a JSON production logger everywhere else.
func New(env string, debug bool) (*zap.SugaredLogger, error) {
	var cfg zap.Config
	if env == "" || env == "local" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}
