package verify

import "github.com/sirupsen/logrus"

var logger = logrus.StandardLogger()

// SetLogger replaces the package logger; nil restores the logrus standard logger.
func SetLogger(l *logrus.Logger) {
	if l == nil {
		l = logrus.StandardLogger()
	}
	logger = l
}
