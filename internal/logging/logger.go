package logging

import (
	"io"
	"os"
	"strings"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type SetupParams struct {
	Level       string
	FormatJSON  bool
	FileName    string
	ToStdout    bool
	Environment string
	SentryDSN   string
}

// Setup configures the package-level logrus logger.
func Setup(params SetupParams) {
	if params.FormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	if params.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              params.SentryDSN,
			Environment:      params.Environment,
			TracesSampleRate: 1.0,
		})
		if err != nil {
			logrus.Errorf("sentry.Init: %s", err)
		} else {
			logrus.AddHook(NewSentryHook([]logrus.Level{
				logrus.PanicLevel,
				logrus.FatalLevel,
				logrus.ErrorLevel,
			}))
			logrus.Infoln("sentry hook installed")
		}
	}

	logrus.SetLevel(GetLevel(params.Level))

	if params.FileName == "" {
		logrus.SetOutput(os.Stdout)
		return
	}

	if !strings.HasSuffix(params.FileName, ".log") {
		params.FileName += ".log"
	}

	rotating := &lumberjack.Logger{
		Filename:  params.FileName,
		MaxSize:   50, // megabytes
		LocalTime: false,
		Compress:  true,
	}

	if params.ToStdout {
		logrus.SetOutput(io.MultiWriter(os.Stdout, rotating))
	} else {
		logrus.SetOutput(rotating)
	}
}

func GetLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "trace":
		return logrus.TraceLevel
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	default:
		return logrus.InfoLevel
	}
}
