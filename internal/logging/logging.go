package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/arcade-classics/internal/config"
)

// New returns a logger writing to the rotating log file from cfg. The
// terminal belongs to the game screen, so nothing goes to stderr.
func New(cfg *config.Config) (*logrus.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   cfg.LogFile,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      level,
		Formatter: &logrus.TextFormatter{
			DisableColors: true,
			FullTimestamp: true,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("unable to open log file %s: %w", cfg.LogFile, err)
	}

	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetLevel(level)
	log.AddHook(hook)
	return log, nil
}
