package assets

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestIdentifiers(t *testing.T) {
	ids := Identifiers()
	if len(ids) != 36 {
		t.Fatalf("got %d identifiers, want 36", len(ids))
	}
	if ids[0] != "A" || ids[25] != "Z" || ids[26] != "0" || ids[35] != "9" {
		t.Errorf("unexpected order: %v", ids)
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		id      string
		ext     string
		want    string
		wantErr bool
	}{
		{"A", "ogg", "/music/A.ogg", false},
		{"7", ".wav", "/music/7.wav", false},
		{"B", "", "/music/B.ogg", false},
		{"a", "ogg", "", true},
		{"10", "ogg", "", true},
		{"", "ogg", "", true},
		{"../etc", "ogg", "", true},
	}

	for _, tt := range tests {
		got, err := Resolve("/music", tt.id, tt.ext)
		if (err != nil) != tt.wantErr {
			t.Errorf("Resolve(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, ErrInvalidIdentifier) {
			t.Errorf("Resolve(%q) error = %v, want ErrInvalidIdentifier", tt.id, err)
		}
		if got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"A.ogg", "Q.ogg", "3.ogg", "B.wav"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("data"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "Z.ogg"), 0755); err != nil {
		t.Fatal(err)
	}

	entries := Scan(dir, "ogg")
	present := map[string]bool{}
	for _, e := range entries {
		if e.Present {
			present[e.Identifier] = true
			if e.Size != 4 {
				t.Errorf("%s size = %d", e.Identifier, e.Size)
			}
		}
	}
	if len(present) != 3 || !present["A"] || !present["Q"] || !present["3"] {
		t.Errorf("present = %v, want A Q 3", present)
	}
	if n := len(Missing(entries)); n != 33 {
		t.Errorf("missing = %d, want 33", n)
	}
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "A.ogg"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	Render(&buf, dir, Scan(dir, "ogg"))
	out := buf.String()

	if !strings.Contains(out, "A.ogg") || !strings.Contains(out, "missing") {
		t.Errorf("unexpected table:\n%s", out)
	}
	if !strings.Contains(out, "35 of 36 missing") {
		t.Errorf("summary missing:\n%s", out)
	}
}

func TestWatch_FiresOnCreate(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	changed := make(chan struct{}, 1)
	errCh := make(chan error, 1)
	go func() {
		errCh <- Watch(ctx, dir, func() {
			select {
			case changed <- struct{}{}:
			default:
			}
		})
	}()

	// give the watcher time to register
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(filepath.Join(dir, "B.ogg"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-changed:
	case <-ctx.Done():
		t.Fatal("watch did not fire")
	}

	cancel()
	if err := <-errCh; err != nil {
		t.Errorf("Watch returned %v", err)
	}
}

func TestWatch_MissingDir(t *testing.T) {
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "nope"), func() {})
	if err == nil {
		t.Error("expected error for missing directory")
	}
}
