// Package logging builds the zerolog loggers used by the paginator CLI.
//
// It covers level/format/output selection, per-component child loggers,
// context propagation, and a per-invocation trace ID that is stamped on every
// event logged with .Ctx(ctx).
package logging
