// Package trace records the stages of a smergiel run.
//
// Tracing is switched on from the command line:
//
//	smergiel build --trace=- --trace-level=stage prog.smr
//
// Tracers:
//
//   - Nop: used when tracing is off
//   - StreamTracer: writes every event as it happens
//   - RingTracer: keeps the last events in memory for a dump on failure
//   - MultiTracer: fans events out to several tracers
//
// Levels pick which scopes reach the output: stage prints driver and
// pipeline stage boundaries, detail adds per-file events, debug prints all.
//
// The tracer travels with the context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopeStage, "parse", 0)
//	defer span.End("")
package trace
