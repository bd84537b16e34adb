// Orbitdesk - Satellite Record Management Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orbitdesk

package store

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, KindNone},
		{"not found", ErrNotFound, KindNotFound},
		{"wrapped not found", fmt.Errorf("delete: %w", ErrNotFound), KindNotFound},
		{"validation", &ValidationError{Err: errors.New("id is required")}, KindValidation},
		{"wrapped duplicate", fmt.Errorf("create: %w", &ValidationError{Err: ErrDuplicateID}), KindValidation},
		{"unavailable", ErrStoreUnavailable, KindUnavailable},
		{"other", errors.New("io error"), KindUnavailable},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	ve := &ValidationError{Err: fmt.Errorf("%w: %q", ErrDuplicateID, "S1")}
	if !errors.Is(ve, ErrDuplicateID) {
		t.Error("ValidationError should unwrap to ErrDuplicateID")
	}
	if ve.Error() != `satellite id already exists: "S1"` {
		t.Errorf("Error() = %q", ve.Error())
	}
	if (&ValidationError{}).Error() != "validation failed" {
		t.Error("empty ValidationError should have a default message")
	}
}
