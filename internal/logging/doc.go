// Package logging assembles the structured slog loggers used across
// marc-holdings.
//
// It owns the text and JSON handlers, maps configured level names onto slog
// levels, and provides component-scoped and no-op loggers so conversion code
// can log without caring whether anyone is listening.
package logging
