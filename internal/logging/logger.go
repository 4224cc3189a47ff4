package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/2beens/fitlog/pkg"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type LoggerSetupParams struct {
	LogFileName      string
	LogToStdout      bool
	LogLevel         string
	LogFormatJSON    bool
	Environment      string
	SentryEnabled    bool
	SentryDSN        string
	SentryServerName string
}

func Setup(params LoggerSetupParams) {
	logrus.SetFormatter(newFormatter(params.LogFormatJSON))
	logrus.SetLevel(GetLevel(params.LogLevel))

	if params.SentryEnabled {
		setupSentry(params)
	}

	output, description := logOutput(params.LogFileName, params.LogToStdout)
	logrus.SetOutput(output)
	logrus.Infof("writing logs to %s", description)
}

func newFormatter(json bool) logrus.Formatter {
	if json {
		return &logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyMsg: "message",
			},
		}
	}
	return &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	}
}

func setupSentry(params LoggerSetupParams) {
	if params.SentryDSN == "" {
		logrus.Warnln("sentry enabled, but SENTRY_DSN not set")
		return
	}

	if err := sentry.Init(sentry.ClientOptions{
		Environment:      params.Environment,
		Dsn:              params.SentryDSN,
		TracesSampleRate: 0.2,
		ServerName:       params.SentryServerName,
	}); err != nil {
		logrus.Errorf("sentry.Init: %s", err)
		return
	}

	logrus.AddHook(NewSentryHook([]logrus.Level{
		logrus.PanicLevel,
		logrus.FatalLevel,
		logrus.ErrorLevel,
	}))
	logrus.Infoln("sentry set up successfully")
}

// logOutput returns the writer for the given log file (rotated by lumberjack),
// stdout if no file is given.
func logOutput(fileName string, toStdout bool) (io.Writer, string) {
	if fileName == "" {
		return os.Stdout, "STDOUT"
	}

	if !strings.HasSuffix(fileName, ".log") {
		fileName += ".log"
	}
	rotated := &lumberjack.Logger{
		Filename:   fileName,
		MaxSize:    20, // megabytes
		MaxBackups: 10,
		MaxAge:     90, // days
		Compress:   true,
	}

	if toStdout {
		return pkg.NewCombinedWriter(os.Stdout, rotated), fileName + " and STDOUT"
	}
	return rotated, fileName
}

// GetLevel falls back to info for empty or unknown levels.
func GetLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return logrus.InfoLevel
	}
	return parsed
}
