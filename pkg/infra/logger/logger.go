package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const logDir = "logs"

// NewLogger builds the service logger. Output goes to stdout unless LOG_FILE
// names a file under logs/, in which case lines are written to the file
// asynchronously and mirrored to the console.
func NewLogger() *logrus.Logger {
	logger := logrus.New()

	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: "time",
			logrus.FieldKeyMsg:  "msg",
		},
	})
	logger.SetLevel(parseLevel(os.Getenv("LOG_LEVEL")))
	logger.SetOutput(os.Stdout)

	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		return logger
	}

	logFile = filepath.Clean(filepath.Join(logDir, filepath.Base(logFile)))
	if err := os.MkdirAll(logDir, 0750); err != nil {
		logger.WithError(err).Warn("failed to create logs directory, logging to stdout")
		return logger
	}
	asyncWriter, err := NewAsyncFileWriter(logFile, 32*1024)
	if err != nil {
		logger.WithError(err).Warn("failed to open log file, logging to stdout")
		return logger
	}
	logger.SetOutput(asyncWriter)
	logger.AddHook(NewConsoleHook(os.Stdout))

	return logger
}

// CloseOnExit makes logrus exit handlers close a closable output so Fatal
// does not drop buffered lines. The returned func closes it on a normal
// shutdown.
func CloseOnExit(logger *logrus.Logger) func() {
	closer, ok := logger.Out.(io.Closer)
	if !ok || logger.Out == os.Stdout {
		return func() {}
	}
	closeOut := func() { _ = closer.Close() }
	logrus.RegisterExitHandler(closeOut)
	return closeOut
}

func parseLevel(level string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
