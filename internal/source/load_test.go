package source

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func writeTemp(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoadTextStripsCarriageReturns(t *testing.T) {
	path := writeTemp(t, "crlf.c", []byte("int a;\r\nint\rb;\r\n"))

	got, err := LoadText(path)
	if err != nil {
		t.Fatalf("LoadText: %v", err)
	}
	if string(got) != "int a;\nintb;\n" {
		t.Errorf("LoadText = %q", got)
	}
}

func TestLoadTextDecodesBOM(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
	}{
		{"utf8", []byte("\xEF\xBB\xBFint x;")},
		{"utf16le", []byte{0xFF, 0xFE, 'i', 0, 'n', 0, 't', 0, ' ', 0, 'x', 0, ';', 0}},
		{"utf16be", []byte{0xFE, 0xFF, 0, 'i', 0, 'n', 0, 't', 0, ' ', 0, 'x', 0, ';'}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := NewFileSet()
			id, err := fs.Load(writeTemp(t, tt.name+".c", tt.content))
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			f := fs.Get(id)
			if string(f.Content) != "int x;" {
				t.Errorf("content = %q", f.Content)
			}
			if f.Flags&FileHadBOM == 0 {
				t.Error("Expected FileHadBOM flag")
			}
		})
	}
}

func TestLoadTextWithoutBOMUnchanged(t *testing.T) {
	content := []byte("char c = '\xff';\n")
	got, err := LoadText(writeTemp(t, "plain.c", content))
	if err != nil {
		t.Fatalf("LoadText: %v", err)
	}
	if string(got) != string(content) {
		t.Errorf("LoadText = %q, want %q", got, content)
	}
}

func TestLoadBinaryKeepsBytes(t *testing.T) {
	content := []byte("a\r\nb\x00")
	fs := NewFileSet()
	id, err := fs.LoadRaw(writeTemp(t, "raw.bin", content))
	if err != nil {
		t.Fatalf("LoadRaw: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != string(content) {
		t.Errorf("content = %q", f.Content)
	}
	if f.Flags != FileRaw {
		t.Errorf("flags = %b, want FileRaw", f.Flags)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	got, err := LoadText(writeTemp(t, "empty.c", nil))
	if err != nil {
		t.Fatalf("LoadText: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty content, got %q", got)
	}
}

func TestLoadNotFound(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.c")
	_, err := LoadText(missing)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	var le *LoadError
	if !errors.As(err, &le) || le.Path != missing {
		t.Errorf("expected LoadError with path %q, got %v", missing, err)
	}
	if want := "file not found: '" + missing + "'"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestLoadOpenFailure(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits not enforced")
	}
	path := writeTemp(t, "locked.c", []byte("int x;"))
	if err := os.Chmod(path, 0); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	_, err := LoadBinary(path)
	if !errors.Is(err, ErrOpenFailure) {
		t.Fatalf("expected ErrOpenFailure, got %v", err)
	}
}

func TestLoadDirectoryIsBadState(t *testing.T) {
	// каталог открывается, но не читается
	_, err := LoadBinary(t.TempDir())
	if !errors.Is(err, ErrBadState) {
		t.Fatalf("expected ErrBadState, got %v", err)
	}
}
