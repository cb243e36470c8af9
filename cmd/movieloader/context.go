package main

import (
	"movieland/loader"
	"movieland/pkg/config"
	"movieland/pkg/logger"
	"movieland/store"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// commandContext opens the store on first use so that help output never
// touches the database.
type commandContext struct {
	cfg    *config.Config
	logger *zap.SugaredLogger
	db     *gorm.DB
}

func newCommandContext() *commandContext {
	return &commandContext{}
}

func (c *commandContext) ensureLoader() (*loader.Loader, error) {
	if c.cfg == nil {
		cfg, err := config.LoadConfig()
		if err != nil {
			return nil, err
		}
		c.cfg = cfg
	}

	if c.logger == nil {
		log, err := logger.New(c.cfg.AppEnv, c.cfg.Debug)
		if err != nil {
			return nil, err
		}
		c.logger = log
	}

	if c.db == nil {
		db, err := store.NewConnection(store.ConfigOptions(c.cfg, c.logger))
		if err != nil {
			return nil, err
		}
		c.db = db
	}

	return loader.New(store.NewMovieRepository(c.db), store.NewMigrator(c.db), c.logger), nil
}

// withLoader hands fn a loader and releases the store once fn returns.
func (c *commandContext) withLoader(fn func(*loader.Loader) error) error {
	l, err := c.ensureLoader()
	if err != nil {
		return err
	}
	defer func() { _ = c.close() }()

	return fn(l)
}

func (c *commandContext) close() error {
	if c.logger != nil {
		_ = c.logger.Sync()
	}
	if c.db == nil {
		return nil
	}
	err := store.Close(c.db)
	c.db = nil
	return err
}
