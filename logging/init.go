// Package logging configures logrus and renders error values, with their
// cause chains, as structured fields.
package logging

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	errbox "github.com/next-trace/scg-errbox/error"
)

const (
	DefaultLevel      = logrus.InfoLevel
	DefaultFormat     = "text"
	DefaultTimeFormat = "2006/01/02 15:04:05.00000"
)

// Initialize sets output, formatter and level of the standard logrus logger.
// Supported formats: text, json. Levels are logrus level names. A bad format
// yields a shareable handle over an errbox.TextError; a bad level yields an
// *errbox.Wrapped whose cause is the logrus parse error.
func Initialize(out io.Writer, level, format string) error {
	logrus.SetOutput(out)

	fieldMap := logrus.FieldMap{
		logrus.FieldKeyTime:  "ts",
		logrus.FieldKeyLevel: "lvl",
		logrus.FieldKeyMsg:   "msg",
	}

	switch strings.ToUpper(format) {
	case "JSON":
		logrus.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: DefaultTimeFormat,
			FieldMap:        fieldMap,
		})
	case "TEXT":
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:    true,
			TimestampFormat:  DefaultTimeFormat,
			QuoteEmptyFields: true,
			FieldMap:         fieldMap,
		})
	default:
		return errbox.Errorf("invalid log format [%s]. supported formats: json, text", format)
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return errbox.Wrap(errbox.Adapt(err), "parsing log level failed")
	}

	logrus.SetLevel(lvl)
	logrus.Debugf("Logging initialized with level <%s>", lvl)

	return nil
}
