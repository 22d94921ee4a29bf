package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log: глобальный логгер игры. До вызова Init пишет в stderr с настройками logrus по умолчанию.
var Log = logrus.New()

// Init настраивает глобальный логгер из окружения.
// Вызывается один раз при старте в main.go.
func Init() {
	Log = New(os.Stdout, os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
}

// New собирает логгер: level по умолчанию "info", format "json" или текстовый.
func New(out io.Writer, level, format string) *logrus.Logger {
	l := logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	// "json" для сбора логов, текст для разработки.
	if strings.ToLower(format) == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}

	l.SetOutput(out)
	return l
}

// For возвращает запись с полем component.
func For(component string) *logrus.Entry {
	return Log.WithField("component", component)
}
