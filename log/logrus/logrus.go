// Package logrus adapts a logrus.Entry to the niceware Logger interface.
package logrus

import (
	"github.com/healeycodes/niceware"
	"github.com/sirupsen/logrus"
)

type LogrusLogger struct{ E *logrus.Entry }

func (l LogrusLogger) Debug(msg string, f niceware.Fields) {
	l.E.WithFields(logrus.Fields(f)).Debug(msg)
}
func (l LogrusLogger) Info(msg string, f niceware.Fields) {
	l.E.WithFields(logrus.Fields(f)).Info(msg)
}
func (l LogrusLogger) Warn(msg string, f niceware.Fields) {
	l.E.WithFields(logrus.Fields(f)).Warn(msg)
}
func (l LogrusLogger) Error(msg string, f niceware.Fields) {
	l.E.WithFields(logrus.Fields(f)).Error(msg)
}
