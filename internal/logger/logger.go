package logger

import (
	"time"

	"github.com/natefinch/lumberjack"
	logrus "github.com/sirupsen/logrus"
)

// Setup initializes Logrus with a rotating file so transition and audit
// logs survive restarts.
func Setup() {
	rotator := &lumberjack.Logger{
		Filename:   "./logs/fleetflow.log",
		MaxSize:    10, // megabytes
		MaxBackups: 7,
		MaxAge:     14, // days
		Compress:   true,
	}

	logrus.SetOutput(rotator)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.SetLevel(logrus.InfoLevel)
}

// App returns the shared application logger handed to the fleet engine.
func App() *logrus.Logger {
	return logrus.StandardLogger()
}
