package metrics

// Package metrics defines the interfaces for recording optimization runs.
// Sinks like the Prometheus sink in infra/metrics receive one PlanResult
// per optimizer invocation; NopSink is used when no backend is configured.
