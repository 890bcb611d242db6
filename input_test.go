package aoc

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLines(t *testing.T) {
	got := Lines(strings.NewReader("a\nb\r\n\nc"))
	if diff := cmp.Diff([]string{"a", "b", "", "c"}, got); diff != "" {
		t.Errorf("Lines mismatch (-want +got):\n%s", diff)
	}
}

func TestLineBlocks(t *testing.T) {
	got := LineBlocks([]string{"a", "b", "", "c", "", "", "d"})
	want := [][]string{{"a", "b"}, {"c"}, nil, {"d"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LineBlocks mismatch (-want +got):\n%s", diff)
	}
}

func TestFetchInput(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.URL.Path != "/2025/day/8/input" {
			http.NotFound(w, r)
			return
		}
		if c, err := r.Cookie("session"); err != nil || c.Value != "secret" {
			http.Error(w, "no session", http.StatusForbidden)
			return
		}
		if ua := r.UserAgent(); ua != "tester" {
			http.Error(w, "bad user agent "+ua, http.StatusBadRequest)
			return
		}
		w.Write([]byte("1,2,3\n"))
	}))
	defer srv.Close()

	oldBase := baseURL
	baseURL = srv.URL
	defer func() { baseURL = oldBase }()

	dir := t.TempDir()
	t.Setenv("AOC_INPUT_DIR", dir)
	t.Setenv("AOC_KEY", " secret\n")
	t.Setenv("AOC_USER_AGENT", "tester")

	for i := 0; i < 2; i++ {
		if got := string(FetchInput(2025, 8)); got != "1,2,3\n" {
			t.Fatalf("FetchInput = %q, want %q", got, "1,2,3\n")
		}
	}
	if n := hits.Load(); n != 1 {
		t.Errorf("server hit %d times, want 1 (second read cached)", n)
	}
	cached, err := os.ReadFile(filepath.Join(dir, "2025", "day8"))
	if err != nil {
		t.Fatal(err)
	}
	if string(cached) != "1,2,3\n" {
		t.Errorf("cache file = %q", cached)
	}
}
