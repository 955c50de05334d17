package trace

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	vietflux "github.com/ThanhNguyxn/vietflux-ime"
)

func TestReadSession_RoundTrip(t *testing.T) {
	s := createTestStore(t)

	want := Session{
		ID:        "sess-1",
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 500, time.UTC),
		Method:    "auto",
		Style:     "traditional",
		Options:   vietflux.Options{SmartQuotes: true, SpellCheck: true},
	}
	if err := s.BeginSession(context.Background(), want); err != nil {
		t.Fatalf("BeginSession() failed: %v", err)
	}

	got, err := s.ReadSession(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("ReadSession() failed: %v", err)
	}
	if !got.CreatedAt.Equal(want.CreatedAt) {
		t.Errorf("created_at = %v, want %v", got.CreatedAt, want.CreatedAt)
	}
	got.CreatedAt, want.CreatedAt = time.Time{}, time.Time{}
	if got != want {
		t.Errorf("session = %+v, want %+v", got, want)
	}
}

func TestReadSession_NotFound(t *testing.T) {
	s := createTestStore(t)

	_, err := s.ReadSession(context.Background(), "ghost")
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("error = %v, want sql.ErrNoRows", err)
	}
}

func TestReadEvents_OrderedBySeq(t *testing.T) {
	s := createTestStore(t)

	sess := Session{ID: "sess-1", CreatedAt: time.Now(), Method: "telex", Style: "modern"}
	if err := s.BeginSession(context.Background(), sess); err != nil {
		t.Fatalf("BeginSession() failed: %v", err)
	}

	// Insert out of order; reads must come back by seq.
	for _, seq := range []int64{3, 1, 2} {
		ev := Event{SessionID: "sess-1", Seq: seq, Key: vietflux.KeyEvent{Rune: 'a'}}
		if err := s.WriteEvent(context.Background(), ev); err != nil {
			t.Fatalf("WriteEvent(seq=%d) failed: %v", seq, err)
		}
	}

	events, err := s.ReadEvents(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("ReadEvents() failed: %v", err)
	}
	for i, ev := range events {
		if ev.Seq != int64(i+1) {
			t.Errorf("events[%d].Seq = %d, want %d", i, ev.Seq, i+1)
		}
	}
}

func TestReadEvents_EmptySession(t *testing.T) {
	s := createTestStore(t)

	sess := Session{ID: "sess-1", CreatedAt: time.Now(), Method: "telex", Style: "modern"}
	if err := s.BeginSession(context.Background(), sess); err != nil {
		t.Fatalf("BeginSession() failed: %v", err)
	}

	events, err := s.ReadEvents(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("ReadEvents() failed: %v", err)
	}
	if events == nil {
		t.Error("events = nil, want empty slice")
	}
	if len(events) != 0 {
		t.Errorf("event count = %d, want 0", len(events))
	}
}

func TestListSessions_NewestFirst(t *testing.T) {
	s := createTestStore(t)

	older := Session{ID: "sess-old", CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), Method: "telex", Style: "modern"}
	newer := Session{ID: "sess-new", CreatedAt: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), Method: "vni", Style: "modern"}
	for _, sess := range []Session{older, newer} {
		if err := s.BeginSession(context.Background(), sess); err != nil {
			t.Fatalf("BeginSession(%s) failed: %v", sess.ID, err)
		}
	}

	sessions, err := s.ListSessions(context.Background())
	if err != nil {
		t.Fatalf("ListSessions() failed: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("session count = %d, want 2", len(sessions))
	}
	if sessions[0].ID != "sess-new" || sessions[1].ID != "sess-old" {
		t.Errorf("order = [%s, %s], want [sess-new, sess-old]", sessions[0].ID, sessions[1].ID)
	}
}

func TestListSessions_Empty(t *testing.T) {
	s := createTestStore(t)

	sessions, err := s.ListSessions(context.Background())
	if err != nil {
		t.Fatalf("ListSessions() failed: %v", err)
	}
	if sessions == nil {
		t.Error("sessions = nil, want empty slice")
	}
}

func TestCountEvents(t *testing.T) {
	s := createTestStore(t)

	id := recordScript(t, s, "toan ")
	count, err := s.CountEvents(context.Background(), id)
	if err != nil {
		t.Fatalf("CountEvents() failed: %v", err)
	}
	if count != 5 {
		t.Errorf("count = %d, want 5", count)
	}
}
