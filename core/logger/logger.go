package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

var log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05.000Z07:00"})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// SetLevel adjusts the global log level ("debug", "info", "warn", "error").
func SetLevel(level string) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		log.Warn("unknown log level, keeping info: ", level)
		return
	}
	log.SetLevel(parsed)
}

// Info logs at info level with alternating key/value args.
func Info(msg string, args ...any) {
	log.WithFields(toFields(args)).Info(msg)
}

// Warn logs at warn level with alternating key/value args.
func Warn(msg string, args ...any) {
	log.WithFields(toFields(args)).Warn(msg)
}

// Error logs at error level with alternating key/value args.
// A single non-string arg is recorded under the "error" key.
func Error(msg string, args ...any) {
	log.WithFields(toFields(args)).Error(msg)
}

// Fatal logs and exits.
func Fatal(msg string, args ...any) {
	log.WithFields(toFields(args)).Fatal(msg)
}

func toFields(args []any) logrus.Fields {
	fields := logrus.Fields{}
	if len(args) == 1 {
		fields["error"] = args[0]
		return fields
	}
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			key = "arg"
		}
		fields[key] = args[i+1]
	}
	if len(args)%2 != 0 && len(args) > 1 {
		fields["extra"] = args[len(args)-1]
	}
	return fields
}
