package encoder

import (
	"github.com/csp-sat/encoder/internal/csp"
	"github.com/sirupsen/logrus"
)

// Tracer receives diagnostic notifications as the encoder runs. It plays
// the same role the surrounding ecosystem's solver package gives its own
// Tracer interface: an optional hook a caller can swap in for visibility
// into decisions the encoder makes, never a control point.
type Tracer interface {
	// TraceIntVarEncoded is called once an integer variable has been
	// assigned a concrete encoding kind.
	TraceIntVarEncoded(v csp.IntVar, kind EncodingKind)
	// TraceConstraintEncoded reports a constraint together with a clause
	// count. Encode itself does not call it.
	TraceConstraintEncoded(c csp.Constraint, numClauses int)
	// TraceDecomposition is called when the linear decomposer splits off
	// an auxiliary variable.
	TraceDecomposition(aux csp.IntVar, log bool)
}

// DefaultTracer discards every notification. It is the zero-cost default
// used when a caller supplies no Tracer.
type DefaultTracer struct{}

func (DefaultTracer) TraceIntVarEncoded(csp.IntVar, EncodingKind)       {}
func (DefaultTracer) TraceConstraintEncoded(csp.Constraint, int)        {}
func (DefaultTracer) TraceDecomposition(csp.IntVar, bool)               {}

// LogrusTracer logs every notification at debug level through a
// *logrus.Logger, the same structured-logging library the surrounding
// ecosystem's registry/resolver code uses.
type LogrusTracer struct {
	Log *logrus.Logger
}

// NewLogrusTracer returns a LogrusTracer using logger, or logrus's standard
// logger if logger is nil.
func NewLogrusTracer(logger *logrus.Logger) *LogrusTracer {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &LogrusTracer{Log: logger}
}

func (t *LogrusTracer) TraceIntVarEncoded(v csp.IntVar, kind EncodingKind) {
	t.Log.WithFields(logrus.Fields{
		"var":     v,
		"kind":    kind,
	}).Debug("encoder: int var encoded")
}

func (t *LogrusTracer) TraceConstraintEncoded(c csp.Constraint, numClauses int) {
	t.Log.WithFields(logrus.Fields{
		"bool_lits":   len(c.BoolLits),
		"linear_lits": len(c.LinearLits),
		"clauses":     numClauses,
	}).Debug("encoder: constraint encoded")
}

func (t *LogrusTracer) TraceDecomposition(aux csp.IntVar, log bool) {
	t.Log.WithFields(logrus.Fields{
		"aux": aux,
		"log": log,
	}).Debug("encoder: linear literal decomposed")
}
