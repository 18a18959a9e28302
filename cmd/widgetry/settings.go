package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alexisbeaulieu97/widgetry/internal/config"
	"github.com/alexisbeaulieu97/widgetry/internal/logger"
	widgetryerrors "github.com/alexisbeaulieu97/widgetry/pkg/errors"
)

// settings is the configuration and logger shared by every command.
type settings struct {
	cfg    *config.Config
	log    *logger.Logger
	closer io.Closer
}

func (s *settings) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// loadSettings reads the configuration and opens the log destination. Logs go to --log-file,
// then to the file named in the configuration, then to fallback. A nil fallback discards them.
func loadSettings(flags *rootFlags, operation string, fallback io.Writer) (*settings, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, newCommandError(operation, "loading configuration", err, configSuggestion(err))
	}

	s := &settings{cfg: cfg}

	path := flags.logFile
	if path == "" {
		path = cfg.Log.File
	}

	writer := fallback
	if path != "" {
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, newCommandError(operation, fmt.Sprintf("opening log file %q", path), err, "Check that the directory exists and is writable.")
		}
		writer = file
		s.closer = file
	}
	if writer == nil {
		writer = io.Discard
	}

	opts := cfg.LoggerOptions(writer)
	if flags.verbose {
		opts.Level = "debug"
	}
	opts.Component = "widgetry"

	log, err := logger.New(opts)
	if err != nil {
		_ = s.Close()
		return nil, newCommandError(operation, "creating logger", err, "Use one of trace, debug, info, warn, error or disabled for log.level.")
	}
	s.log = log

	return s, nil
}

func configSuggestion(err error) string {
	var parseErr *widgetryerrors.ParseError
	var validationErr *widgetryerrors.ValidationError
	switch {
	case errors.As(err, &parseErr):
		return "Check the YAML syntax and remove keys widgetry does not know."
	case errors.As(err, &validationErr):
		return fmt.Sprintf("Fix the value of %s and try again.", validationErr.Field)
	default:
		return "Check the --config path and try again."
	}
}
