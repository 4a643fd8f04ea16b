// Package statusmetrics counts outcomes, errors and contained faults with
// Prometheus.
package statusmetrics

import (
	"errors"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	xgxstatus "github.com/xgx-io/xgx-status"
)

// Result label values.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// Fault kind label values.
const (
	KindPanic     = "panic"
	KindInterrupt = "interrupt"
	KindError     = "error"
)

// Recorder holds the counters. Create one per registry.
type Recorder struct {
	outcomes *prometheus.CounterVec
	errors   *prometheus.CounterVec
	faults   *prometheus.CounterVec
}

// NewRecorder registers the counters with reg under namespace. A nil reg
// creates unregistered counters.
func NewRecorder(reg prometheus.Registerer, namespace string) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		outcomes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "outcomes_total",
				Help:      "Total number of observed outcomes",
			},
			[]string{"operation", "result"},
		),
		errors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "errors_total",
				Help:      "Total number of errors carried by observed outcomes",
			},
			[]string{"operation", "group", "code"},
		),
		faults: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "faults_total",
				Help:      "Total number of faults contained by invocation wrappers",
			},
			[]string{"operation", "kind"},
		),
	}
}

// Observe counts r under operation: one outcome, plus one error sample per
// recorded Error labelled by group and code.
func (m *Recorder) Observe(operation string, r xgxstatus.Reader) {
	if xgxstatus.IsNil(r) {
		return
	}
	result := ResultSuccess
	if r.HasErrors() {
		result = ResultError
	}
	m.outcomes.WithLabelValues(operation, result).Inc()
	for _, e := range r.Errors() {
		m.errors.WithLabelValues(operation, e.Group(), codeLabel(e.Code())).Inc()
	}
}

// OnFault returns an invoke option that counts each contained fault by kind.
func (m *Recorder) OnFault(operation string) xgxstatus.InvokeOption {
	return xgxstatus.OnFault(func(err error) {
		m.faults.WithLabelValues(operation, faultKind(err)).Inc()
	})
}

func faultKind(err error) string {
	var p *xgxstatus.PanicError
	switch {
	case errors.As(err, &p):
		return KindPanic
	case xgxstatus.IsInterrupt(err):
		return KindInterrupt
	default:
		return KindError
	}
}

func codeLabel(code int) string {
	if code == xgxstatus.CodeUnset {
		return "unset"
	}
	return strconv.Itoa(code)
}
