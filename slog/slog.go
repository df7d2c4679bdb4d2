// Package slog provides logging decorators for resumedb services.
package slog
