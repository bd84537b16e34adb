// Orbitdesk - Satellite Record Management Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orbitdesk

package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestBadgerLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	bl := NewBadgerLoggerWithLogger(zerolog.New(&buf).Level(zerolog.TraceLevel))

	prev := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	defer zerolog.SetGlobalLevel(prev)

	bl.Errorf("value log %d failed\n", 3)
	bl.Warningf("slow write")
	bl.Infof("compaction done")
	bl.Debugf("flush")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 log lines, got %d: %s", len(lines), buf.String())
	}

	wants := []string{`"level":"error"`, `"level":"warn"`, `"level":"debug"`, `"level":"trace"`}
	for i, want := range wants {
		if !strings.Contains(lines[i], want) {
			t.Errorf("line %d: expected %s, got %s", i, want, lines[i])
		}
	}
	if !strings.Contains(lines[0], `"message":"value log 3 failed"`) {
		t.Errorf("expected trimmed formatted message, got %s", lines[0])
	}
}

func TestNewBadgerLogger(t *testing.T) {
	if NewBadgerLogger() == nil {
		t.Fatal("NewBadgerLogger() returned nil")
	}
}
