package trace

import (
	"context"
	"path/filepath"
	"testing"

	vietflux "github.com/ThanhNguyxn/vietflux-ime"
)

// createTestStore opens a store in a per-test temp dir.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trace.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// recordScript feeds a plain key script through a fresh recorded engine and
// returns its session id.
func recordScript(t *testing.T, s *Store, script string, opts ...vietflux.Option) string {
	t.Helper()
	e := vietflux.New(opts...)
	rec, err := NewRecorder(context.Background(), s, e)
	if err != nil {
		t.Fatalf("NewRecorder() failed: %v", err)
	}
	for _, r := range script {
		if _, err := rec.ProcessKey(context.Background(), vietflux.KeyEvent{Rune: r}); err != nil {
			t.Fatalf("ProcessKey(%q) failed: %v", r, err)
		}
	}
	return e.SessionID()
}
