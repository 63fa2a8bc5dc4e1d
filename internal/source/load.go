package source

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

var (
	// ErrNotFound is reported when the path does not exist.
	ErrNotFound = errors.New("file not found")
	// ErrOpenFailure is reported when the file exists but cannot be opened.
	ErrOpenFailure = errors.New("unable to open file")
	// ErrBadState is reported when reading fails after the file was opened.
	ErrBadState = errors.New("file in bad state")
)

// LoadError describes a failed load. errors.Is matches it against
// ErrNotFound, ErrOpenFailure and ErrBadState.
type LoadError struct {
	Kind error // one of the Err* sentinels
	Path string
	Err  error // underlying cause, may be nil
}

func (e *LoadError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: '%s'", e.Kind, e.Path)
	}
	return fmt.Sprintf("%s: '%s': %v", e.Kind, e.Path, e.Err)
}

func (e *LoadError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// LoadText reads a text file and returns its content with every '\r' byte
// removed. A UTF-8 or UTF-16 byte order mark is decoded away first.
func LoadText(path string) ([]byte, error) {
	content, _, err := loadText(path)
	return content, err
}

func loadText(path string) ([]byte, FileFlags, error) {
	raw, err := LoadBinary(path)
	if err != nil {
		return nil, 0, err
	}
	var flags FileFlags
	content, hadBOM, err := decodeBOM(raw)
	if err != nil {
		return nil, 0, &LoadError{Kind: ErrBadState, Path: path, Err: err}
	}
	if hadBOM {
		flags |= FileHadBOM
	}
	content, stripped := stripCR(content)
	if stripped {
		flags |= FileStrippedCR
	}
	return content, flags, nil
}

// LoadBinary reads a file's raw bytes without any transformation.
func LoadBinary(path string) ([]byte, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &LoadError{Kind: ErrNotFound, Path: path}
		}
		return nil, &LoadError{Kind: ErrOpenFailure, Path: path, Err: err}
	}

	// #nosec G304 -- path is provided by the caller
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Kind: ErrOpenFailure, Path: path, Err: err}
	}
	defer func() {
		_ = f.Close()
	}()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, &LoadError{Kind: ErrBadState, Path: path, Err: err}
	}
	return content, nil
}
