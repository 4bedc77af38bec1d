package logging

import (
	"github.com/sirupsen/logrus"

	"github.com/next-trace/scg-errbox/contract"
	errbox "github.com/next-trace/scg-errbox/error"
)

const (
	FieldError  = "error"
	FieldType   = "error_type"
	FieldView   = "error_view"
	FieldCauses = "causes"
)

// handleInfo is implemented by every errbox.Handle view.
type handleInfo interface {
	Tag() errbox.Tag
	Marks() errbox.Marks
}

// Fields renders e as logrus fields: its description, the payload type and
// view when e is a handle, and the descriptions along its cause chain.
func Fields(e contract.Error) logrus.Fields {
	if e == nil {
		return logrus.Fields{}
	}

	f := logrus.Fields{FieldError: e.Description()}

	if h, ok := e.(handleInfo); ok {
		f[FieldType] = h.Tag().String()
		f[FieldView] = h.Marks().String()
	}

	if d := errbox.Depth(e); d > 0 {
		causes := make([]string, 0, d)
		for c := range errbox.Chain(e.Cause()) {
			causes = append(causes, c.Description())
		}

		f[FieldCauses] = causes
	}

	return f
}

// LogError logs e at error level through entry (the standard logger when nil),
// with Fields(e) attached and the full Display text as the message.
func LogError(entry *logrus.Entry, e contract.Error) {
	if e == nil {
		return
	}

	if entry == nil {
		entry = logrus.NewEntry(logrus.StandardLogger())
	}

	entry.WithFields(Fields(e)).Error(e.Error())
}
