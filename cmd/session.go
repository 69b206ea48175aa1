package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/alexiusacademia/csiapi/internal/config"
	"github.com/alexiusacademia/csiapi/internal/csi"
	"github.com/alexiusacademia/csiapi/internal/seed/memseed"
	"github.com/alexiusacademia/csiapi/internal/slogutil"
	"github.com/alexiusacademia/csiapi/internal/store"
)

// session is one command's view of the stored model.
type session struct {
	cfg   *config.Config
	log   *slog.Logger
	store *store.Store
	host  *memseed.Model
	model *csi.Model
	name  string
	isNew bool
}

func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, err
	}
	if modelName != "" {
		cfg.Model = modelName
	}
	level := slogutil.LevelFromVerbosity(slogutil.LevelFromString(cfg.Logging.Level), verbosity, quiet)
	return cfg, slogutil.NewLogger(os.Stderr, level, cfg.Logging.Format), nil
}

// openSession opens the store and the configured model. A model that was
// never saved starts blank in the configured units.
func openSession(ctx context.Context) (*session, error) {
	cfg, log, err := loadConfig()
	if err != nil {
		return nil, err
	}
	st, err := store.Open(ctx, cfg.Store)
	if err != nil {
		return nil, err
	}
	s := &session{cfg: cfg, log: log, store: st, name: cfg.Model}

	state, err := st.Load(ctx, cfg.Model)
	switch {
	case errors.Is(err, store.ErrNotFound):
		s.host = memseed.New(cfg.Version)
		s.isNew = true
	case err != nil:
		_ = st.Close()
		return nil, err
	default:
		s.host = memseed.FromState(state)
	}
	st.Attach(s.host)

	s.model, err = csi.Open(s.host, csi.WithLogger(log))
	if err != nil {
		_ = st.Close()
		return nil, err
	}
	if s.isNew {
		units, err := csi.ParseUnits(cfg.Units)
		if err != nil {
			_ = st.Close()
			return nil, fmt.Errorf("config units: %w", err)
		}
		if err := s.model.Initialize(units); err != nil {
			_ = st.Close()
			return nil, err
		}
		log.Info("new model", "name", s.name, "version", s.model.VersionString(), "units", units)
	} else {
		log.Debug("model loaded", "name", s.name, "version", s.model.VersionString())
	}
	return s, nil
}

// save writes the model back to the store under its name.
func (s *session) save() error {
	if err := s.model.File().Save(s.name); err != nil {
		return fmt.Errorf("save model %q: %w", s.name, err)
	}
	s.log.Info("model saved", "name", s.name)
	return nil
}

// unlock unlocks an analyzed model before its definitions change.
func (s *session) unlock() error {
	if !s.model.Locked() {
		return nil
	}
	s.log.Warn("unlocking model, analysis results are discarded", "name", s.name)
	return s.model.SetLocked(false)
}

func (s *session) Close() error {
	return s.store.Close()
}
