package store

import (
	"strconv"

	"movieland/pkg/config"

	"go.uber.org/zap"
)

// ConfigOptions maps the DB section of cfg onto connection options.
func ConfigOptions(cfg *config.Config, log *zap.SugaredLogger) Options {
	return Options{
		Driver:   cfg.DB.Driver,
		Path:     cfg.DB.Path,
		DBName:   cfg.DB.Name,
		DBUser:   cfg.DB.User,
		Password: cfg.DB.Pass,
		Host:     cfg.DB.Host,
		Port:     strconv.Itoa(cfg.DB.Port),
		SSLMode:  cfg.DB.EnableSSL,
		LogSQL:   cfg.DB.LogSQL,
		Logger:   log,
	}
}
