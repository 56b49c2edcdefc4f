package macgrid

import "github.com/sirupsen/logrus"

var logger = logrus.StandardLogger()

// SetLogger replaces the package logger. A nil logger restores the logrus
// standard logger. Call it before sharing MacGrids between goroutines.
func SetLogger(l *logrus.Logger) {
	if l == nil {
		l = logrus.StandardLogger()
	}
	logger = l
}
