package logging

import (
	"github.com/sirupsen/logrus"

	"github.com/km-arc/go-box/framework/box"
	"github.com/km-arc/go-box/framework/config"
)

// New builds the application logger from config. An unparseable LOG_LEVEL
// falls back to info.
func New(cfg *config.Config) *logrus.Logger {
	l := logrus.New()

	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	return l
}

// BoxWarner adapts a logrus logger into a box warning sink. Wire it in
// development builds; in production leave the box's warner unset so the sink
// stays inert.
//
//	if cfg.App.Debug {
//	    b.SetWarner(logging.BoxWarner(logger))
//	}
func BoxWarner(l *logrus.Logger) box.Warner {
	return func(format string, args ...any) {
		l.Warnf(format, args...)
	}
}
