// Orbitdesk - Satellite Record Management Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orbitdesk

package logging

import (
	"strings"

	"github.com/rs/zerolog"
)

// BadgerLogger adapts zerolog to badger.Logger (Errorf, Warningf, Infof,
// Debugf). Badger terminates most messages with a newline, which is trimmed
// so each message becomes a single structured line.
type BadgerLogger struct {
	logger zerolog.Logger
}

// NewBadgerLogger returns a badger logger writing through the global logger
// tagged with component=badger.
func NewBadgerLogger() *BadgerLogger {
	return &BadgerLogger{logger: WithComponent("badger")}
}

// NewBadgerLoggerWithLogger wraps a specific zerolog logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewBadgerLoggerWithLogger(logger zerolog.Logger) *BadgerLogger {
	return &BadgerLogger{logger: logger}
}

// Errorf logs at error level.
func (b *BadgerLogger) Errorf(format string, args ...interface{}) {
	b.logger.Error().Msgf(trimNewline(format), args...)
}

// Warningf logs at warn level.
func (b *BadgerLogger) Warningf(format string, args ...interface{}) {
	b.logger.Warn().Msgf(trimNewline(format), args...)
}

// Infof logs at debug level; badger is chatty at info during compaction.
func (b *BadgerLogger) Infof(format string, args ...interface{}) {
	b.logger.Debug().Msgf(trimNewline(format), args...)
}

// Debugf logs at trace level.
func (b *BadgerLogger) Debugf(format string, args ...interface{}) {
	b.logger.Trace().Msgf(trimNewline(format), args...)
}

func trimNewline(s string) string {
	return strings.TrimRight(s, "\n")
}
