// Package metrics exposes Prometheus collectors for username checks.
//
// A Metrics value is registered against a caller-supplied registry so tests and
// one-shot CLI runs do not share global state. CLI runs can persist the
// collected samples with WriteTextfile for the node_exporter textfile collector.
package metrics
