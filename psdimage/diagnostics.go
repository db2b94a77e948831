package psdimage

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Non fatal conditions found during tree assembly and composition are
// accumulated in a Diagnostics list, so that callers (and tests) can
// inspect them directly. Each record is also echoed through the
// package logger.

var logger = logrus.New()

// SetLogger replaces the package logger used to echo diagnostics.
func SetLogger(l *logrus.Logger) { logger = l }

// Severity of a diagnostic.
type Severity uint8

const (
	SeverityDebug Severity = iota
	SeverityWarning
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityWarning:
		return "warning"
	case SeverityCritical:
		return "critical"
	default:
		return "<unknown Severity>"
	}
}

// Diagnostic is one structured warning.
type Diagnostic struct {
	Severity Severity
	Layer    string // name of the layer concerned, empty at document level
	Message  string
}

func (d Diagnostic) String() string {
	if d.Layer == "" {
		return fmt.Sprintf("%s: %s", d.Severity, d.Message)
	}
	return fmt.Sprintf("%s (layer %q): %s", d.Severity, d.Layer, d.Message)
}

// Diagnostics accumulates non fatal conditions in the order they were
// found.
type Diagnostics []Diagnostic

func (ds *Diagnostics) add(sev Severity, layer, format string, args ...interface{}) {
	d := Diagnostic{Severity: sev, Layer: layer, Message: fmt.Sprintf(format, args...)}
	*ds = append(*ds, d)

	entry := logger.WithField("layer", d.Layer)
	switch sev {
	case SeverityDebug:
		entry.Debug(d.Message)
	case SeverityWarning:
		entry.Warn(d.Message)
	default:
		entry.Error(d.Message)
	}
}

// Worst returns the highest severity present, and false when the list
// is empty.
func (ds Diagnostics) Worst() (Severity, bool) {
	if len(ds) == 0 {
		return 0, false
	}
	worst := ds[0].Severity
	for _, d := range ds[1:] {
		if d.Severity > worst {
			worst = d.Severity
		}
	}
	return worst, true
}
