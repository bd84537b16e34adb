// Orbitdesk - Satellite Record Management Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orbitdesk

package store

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/tomtom215/orbitdesk/internal/config"
	"github.com/tomtom215/orbitdesk/internal/models"
)

// newTestStore opens an in-memory store closed at test cleanup.
func newTestStore(t *testing.T) *BadgerStore {
	t.Helper()
	s, err := Open(config.StoreConfig{InMemory: true})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func ptr[T any](v T) *T { return &v }

func newInput(id, name string) *models.SatelliteInput {
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return &models.SatelliteInput{
		ID:          ptr(id),
		Name:        ptr(name),
		OrbitType:   ptr("LEO"),
		Speed:       ptr(7.6),
		LastUpdated: ptr(ts),
		AddedAt:     ptr(ts),
		Visibility:  ptr(true),
		Details:     ptr("test satellite"),
	}
}

func mustPatch(t *testing.T, body string) models.SatellitePatch {
	t.Helper()
	p, err := models.ParsePatch([]byte(body))
	if err != nil {
		t.Fatalf("ParsePatch(%s) error = %v", body, err)
	}
	return p
}

func TestCreate_ThenFindByName(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.Create(ctx, newInput("S1", "Alpha"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.InternalID == "" {
		t.Error("Create() should assign an internal id")
	}
	if created.Altitude != nil {
		t.Errorf("Altitude should be absent, got %v", *created.Altitude)
	}

	found, err := s.FindByName(ctx, "Alpha")
	if err != nil {
		t.Fatalf("FindByName() error = %v", err)
	}
	if found.ID != "S1" || found.InternalID != created.InternalID || found.Speed != 7.6 {
		t.Errorf("FindByName() = %+v, want %+v", found, created)
	}
	if !found.LastUpdated.Equal(created.LastUpdated) {
		t.Errorf("LastUpdated = %v, want %v", found.LastUpdated, created.LastUpdated)
	}
}

func TestCreate_ZeroValuesAccepted(t *testing.T) {
	s := newTestStore(t)

	in := newInput("S0", "Zero")
	in.Speed = ptr(0.0)
	in.Visibility = ptr(false)

	created, err := s.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.Speed != 0 || created.Visibility {
		t.Errorf("Create() = %+v, want zero speed and hidden", created)
	}
}

func TestCreate_ValidationFailure(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*models.SatelliteInput)
		wantMsg string
	}{
		{"missing name", func(in *models.SatelliteInput) { in.Name = nil }, "name is required"},
		{"empty details", func(in *models.SatelliteInput) { in.Details = ptr("") }, "details is required"},
		{"missing speed", func(in *models.SatelliteInput) { in.Speed = nil }, "speed is required"},
		{"missing visibility", func(in *models.SatelliteInput) { in.Visibility = nil }, "visibility is required"},
		{"missing addedAt", func(in *models.SatelliteInput) { in.AddedAt = nil }, "addedAt is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := newInput("V1", "Invalid")
			tt.mutate(in)

			_, err := s.Create(ctx, in)
			if KindOf(err) != KindValidation {
				t.Fatalf("Create() error = %v, want validation error", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tt.wantMsg)
			}
		})
	}

	if n, _ := s.Count(ctx); n != 0 {
		t.Errorf("Count() = %d after failed creates, want 0", n)
	}
	if _, err := s.Create(ctx, nil); KindOf(err) != KindValidation {
		t.Errorf("Create(nil) error = %v, want validation error", err)
	}
}

func TestCreate_DuplicateID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first, err := s.Create(ctx, newInput("S1", "Alpha"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	_, err = s.Create(ctx, newInput("S1", "Impostor"))
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("second Create() error = %v, want ErrDuplicateID", err)
	}
	if KindOf(err) != KindValidation {
		t.Errorf("KindOf(duplicate) = %q, want validation", KindOf(err))
	}

	all, err := s.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if len(all) != 1 || all[0].Name != "Alpha" || all[0].InternalID != first.InternalID {
		t.Errorf("first record should be unchanged, got %+v", all)
	}
	if _, err := s.FindByName(ctx, "Impostor"); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindByName(Impostor) error = %v, want ErrNotFound", err)
	}
}

func TestListAll(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	all, err := s.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if all == nil || len(all) != 0 {
		t.Fatalf("ListAll() on empty store = %#v, want empty non-nil slice", all)
	}

	names := []string{"Charlie", "Alpha", "Bravo"}
	for i, name := range names {
		if _, err := s.Create(ctx, newInput("S"+string(rune('1'+i)), name)); err != nil {
			t.Fatalf("Create(%s) error = %v", name, err)
		}
	}

	all, err = s.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if len(all) != len(names) {
		t.Fatalf("ListAll() returned %d records, want %d", len(all), len(names))
	}
	for i, name := range names {
		if all[i].Name != name {
			t.Errorf("ListAll()[%d].Name = %q, want %q (creation order)", i, all[i].Name, name)
		}
	}
}

func TestFindByName_ExactMatchOnly(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.Create(ctx, newInput("S1", "Alpha")); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := s.Create(ctx, newInput("S2", "Alpha\x00Beta")); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	for _, name := range []string{"alpha", "Alph", "Alpha ", ""} {
		if _, err := s.FindByName(ctx, name); !errors.Is(err, ErrNotFound) {
			t.Errorf("FindByName(%q) error = %v, want ErrNotFound", name, err)
		}
	}

	found, err := s.FindByName(ctx, "Alpha\x00Beta")
	if err != nil || found.ID != "S2" {
		t.Errorf("FindByName(separator name) = %v, %v; want S2", found, err)
	}
}

func TestFindByName_FirstInCreationOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"S1", "S2", "S3"} {
		if _, err := s.Create(ctx, newInput(id, "Twin")); err != nil {
			t.Fatalf("Create(%s) error = %v", id, err)
		}
	}

	found, err := s.FindByName(ctx, "Twin")
	if err != nil {
		t.Fatalf("FindByName() error = %v", err)
	}
	if found.ID != "S1" {
		t.Errorf("FindByName() returned %s, want S1", found.ID)
	}
}

func TestDeleteByID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.Create(ctx, newInput("S1", "Alpha")); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := s.Create(ctx, newInput("S2", "Bravo")); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	deleted, err := s.DeleteByID(ctx, "S1")
	if err != nil {
		t.Fatalf("DeleteByID() error = %v", err)
	}
	if deleted.ID != "S1" || deleted.Name != "Alpha" {
		t.Errorf("DeleteByID() returned %+v", deleted)
	}

	if _, err := s.FindByName(ctx, "Alpha"); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindByName after delete error = %v, want ErrNotFound", err)
	}
	all, _ := s.ListAll(ctx)
	if len(all) != 1 || all[0].ID != "S2" {
		t.Errorf("ListAll after delete = %+v, want only S2", all)
	}

	// The id is free again.
	if _, err := s.Create(ctx, newInput("S1", "Alpha Reborn")); err != nil {
		t.Errorf("re-Create after delete error = %v", err)
	}
}

func TestDeleteByID_NotFound(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.Create(ctx, newInput("S1", "Alpha")); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	_, err := s.DeleteByID(ctx, "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("DeleteByID(missing) error = %v, want ErrNotFound", err)
	}
	if n, _ := s.Count(ctx); n != 1 {
		t.Errorf("Count() = %d, want collection intact (1)", n)
	}
}

func TestUpdateByID_PartialPatch(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.Create(ctx, newInput("S1", "Alpha"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	updated, err := s.UpdateByID(ctx, "S1", mustPatch(t, `{"speed":8.0,"altitude":420.5,"unknown":"x"}`))
	if err != nil {
		t.Fatalf("UpdateByID() error = %v", err)
	}
	if updated.Speed != 8.0 {
		t.Errorf("Speed = %v, want 8", updated.Speed)
	}
	if updated.Altitude == nil || *updated.Altitude != 420.5 {
		t.Errorf("Altitude = %v, want 420.5", updated.Altitude)
	}
	if updated.Name != "Alpha" || updated.OrbitType != "LEO" || updated.Details != created.Details {
		t.Errorf("unpatched fields changed: %+v", updated)
	}
	if updated.InternalID != created.InternalID {
		t.Errorf("InternalID changed from %s to %s", created.InternalID, updated.InternalID)
	}

	found, err := s.FindByName(ctx, "Alpha")
	if err != nil {
		t.Fatalf("FindByName() error = %v", err)
	}
	if found.Speed != 8.0 {
		t.Errorf("stored Speed = %v, want 8", found.Speed)
	}

	cleared, err := s.UpdateByID(ctx, "S1", mustPatch(t, `{"altitude":null}`))
	if err != nil {
		t.Fatalf("UpdateByID(null) error = %v", err)
	}
	if cleared.Altitude != nil {
		t.Errorf("Altitude should be cleared, got %v", *cleared.Altitude)
	}
}

func TestUpdateByID_Rename(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.Create(ctx, newInput("S1", "Alpha")); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := s.Create(ctx, newInput("S2", "Bravo")); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if _, err := s.UpdateByID(ctx, "S1", mustPatch(t, `{"id":"S2"}`)); !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("rename onto existing id error = %v, want ErrDuplicateID", err)
	}

	renamed, err := s.UpdateByID(ctx, "S1", mustPatch(t, `{"id":"S9","name":"Alpha Prime"}`))
	if err != nil {
		t.Fatalf("UpdateByID() error = %v", err)
	}
	if renamed.ID != "S9" || renamed.Name != "Alpha Prime" {
		t.Errorf("UpdateByID() = %+v", renamed)
	}

	if _, err := s.UpdateByID(ctx, "S1", mustPatch(t, `{"speed":1}`)); !errors.Is(err, ErrNotFound) {
		t.Errorf("old id should be gone, got %v", err)
	}
	if _, err := s.FindByName(ctx, "Alpha"); !errors.Is(err, ErrNotFound) {
		t.Errorf("old name index should be gone, got %v", err)
	}
	if found, err := s.FindByName(ctx, "Alpha Prime"); err != nil || found.ID != "S9" {
		t.Errorf("FindByName(new name) = %v, %v", found, err)
	}
	if _, err := s.DeleteByID(ctx, "S9"); err != nil {
		t.Errorf("DeleteByID(new id) error = %v", err)
	}
}

func TestUpdateByID_Failures(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.Create(ctx, newInput("S1", "Alpha")); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if _, err := s.UpdateByID(ctx, "missing", mustPatch(t, `{"speed":1}`)); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateByID(missing) error = %v, want ErrNotFound", err)
	}
	if _, err := s.UpdateByID(ctx, "S1", mustPatch(t, `{"name":null}`)); KindOf(err) != KindValidation {
		t.Errorf("clearing a required field error = %v, want validation", err)
	}
	if _, err := s.UpdateByID(ctx, "S1", mustPatch(t, `{"speed":"fast"}`)); KindOf(err) != KindValidation {
		t.Errorf("type mismatch error = %v, want validation", err)
	}

	found, err := s.FindByName(ctx, "Alpha")
	if err != nil || found.Speed != 7.6 {
		t.Errorf("record should be unchanged after failed updates: %+v, %v", found, err)
	}
}

func TestClosedStore(t *testing.T) {
	s, err := Open(config.StoreConfig{InMemory: true})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}

	ctx := context.Background()
	if _, err := s.ListAll(ctx); !errors.Is(err, ErrStoreUnavailable) {
		t.Errorf("ListAll on closed store error = %v, want ErrStoreUnavailable", err)
	}
	if err := s.Ping(ctx); !errors.Is(err, ErrStoreUnavailable) {
		t.Errorf("Ping on closed store error = %v, want ErrStoreUnavailable", err)
	}
	if KindOf(ErrStoreUnavailable) != KindUnavailable {
		t.Error("ErrStoreUnavailable should classify as unavailable")
	}
}

func TestCanceledContext(t *testing.T) {
	s := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.Create(ctx, newInput("S1", "Alpha")); !errors.Is(err, context.Canceled) {
		t.Errorf("Create with canceled ctx error = %v, want context.Canceled", err)
	}
}

func TestPingAndCount(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Ping(ctx); err != nil {
		t.Errorf("Ping() error = %v", err)
	}
	for _, id := range []string{"S1", "S2"} {
		if _, err := s.Create(ctx, newInput(id, "Sat "+id)); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}
	if n, err := s.Count(ctx); err != nil || n != 2 {
		t.Errorf("Count() = %d, %v; want 2", n, err)
	}
}

func TestConcurrentCreates(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := "C" + string(rune('A'+i))
			if _, err := s.Create(ctx, newInput(id, "Concurrent")); err != nil {
				t.Errorf("Create(%s) error = %v", id, err)
			}
		}(i)
	}
	wg.Wait()

	if n, _ := s.Count(ctx); n != 20 {
		t.Errorf("Count() = %d, want 20", n)
	}
}
