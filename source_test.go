package minilang

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStringSource_GetPeekAdvance(t *testing.T) {
	s := NewStringSource("ab")
	if got := s.Peek(); got != 'a' {
		t.Fatalf("Peek = %d, want 'a'", got)
	}
	if got := s.Get(); got != 'a' {
		t.Fatalf("Get = %d, want 'a'", got)
	}
	if got := s.Get(); got != 'b' {
		t.Fatalf("Get = %d, want 'b'", got)
	}
	if got := s.Get(); got != -1 {
		t.Fatalf("Get at EOF = %d, want -1", got)
	}
	if got := s.Peek(); got != -1 {
		t.Fatalf("Peek at EOF = %d, want -1", got)
	}
}

func TestStringSource_PositionTracksNewlines(t *testing.T) {
	s := NewStringSource("a\nbc")
	if p := s.Position(); p != (Position{Line: 1, Col: 1}) {
		t.Fatalf("start position = %v", p)
	}
	s.Get() // 'a'
	if p := s.Position(); p != (Position{Line: 1, Col: 2}) {
		t.Fatalf("after 'a' = %v", p)
	}
	s.Get() // '\n'
	if p := s.Position(); p != (Position{Line: 2, Col: 1}) {
		t.Fatalf("after newline = %v", p)
	}
	s.Get() // 'b'
	if p := s.Position(); p != (Position{Line: 2, Col: 2}) {
		t.Fatalf("after 'b' = %v", p)
	}
}

func TestStringSource_Unget(t *testing.T) {
	s := NewStringSource("xy")
	s.Get()
	s.Unget()
	if got := s.Get(); got != 'x' {
		t.Fatalf("Get after Unget = %d, want 'x'", got)
	}
	if got := s.Get(); got != 'y' {
		t.Fatalf("Get = %d, want 'y'", got)
	}
}

func TestStringSource_UngetAtEOFIsNoop(t *testing.T) {
	s := NewStringSource("x")
	s.Get()
	if s.Get() != -1 {
		t.Fatal("expected EOF")
	}
	s.Unget() // must not resurrect 'x'
	if got := s.Get(); got != -1 {
		t.Fatalf("Get after Unget at EOF = %d, want -1", got)
	}
}

func TestStringSource_UngetBeforeFirstGetIsNoop(t *testing.T) {
	s := NewStringSource("x")
	s.Unget()
	if got := s.Get(); got != 'x' {
		t.Fatalf("Get = %d, want 'x'", got)
	}
}

func TestReaderSource_SameContract(t *testing.T) {
	s := NewReaderSource(strings.NewReader("a\nb"))
	if got := s.Get(); got != 'a' {
		t.Fatalf("Get = %d", got)
	}
	s.Unget()
	if got := s.Get(); got != 'a' {
		t.Fatalf("Get after Unget = %d", got)
	}
	s.Get() // '\n'
	if p := s.Position(); p != (Position{Line: 2, Col: 1}) {
		t.Fatalf("position after newline = %v", p)
	}
	if got := s.Peek(); got != 'b' {
		t.Fatalf("Peek = %d", got)
	}
}

func TestFileSource_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.ml")
	if err := os.WriteFile(path, []byte("1;"), 0o644); err != nil {
		t.Fatal(err)
	}
	src, err := NewFileSource(path)
	if err != nil {
		t.Fatalf("NewFileSource: %v", err)
	}
	defer src.Close()

	if got := src.Get(); got != '1' {
		t.Fatalf("Get = %d, want '1'", got)
	}
	if got := src.Get(); got != ';' {
		t.Fatalf("Get = %d, want ';'", got)
	}
	if got := src.Get(); got != -1 {
		t.Fatalf("Get at EOF = %d, want -1", got)
	}
}

func TestFileSource_MissingFile(t *testing.T) {
	if _, err := NewFileSource(filepath.Join(t.TempDir(), "nope.ml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
