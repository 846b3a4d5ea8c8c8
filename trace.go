package arith

import (
	"time"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'arith'.
func tracer() tracing.Trace {
	return tracing.Select("arith")
}

// evalTrace records one traced evaluation. The zero value traces nothing.
type evalTrace struct {
	t     tracing.Trace
	start time.Time
}

// startTrace begins tracing the evaluation of src if the package tracer is
// at info level or more.
func startTrace(src string) evalTrace {
	t := tracer()
	if t.GetTraceLevel() < tracing.LevelInfo {
		return evalTrace{}
	}
	t.Infof("evaluation for %s", src)
	return evalTrace{t: t, start: time.Now()}
}

func (tr evalTrace) done(ans interface{}) {
	if tr.t == nil {
		return
	}
	tr.t.Infof("ans=%v, time=%f", ans, time.Since(tr.start).Seconds())
}

func (tr evalTrace) fail(err error) {
	if tr.t == nil {
		return
	}
	tr.t.Infof("failed: %v, time=%f", err, time.Since(tr.start).Seconds())
}
