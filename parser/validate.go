package parser

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

var errIsDir = errors.New("is a directory")

// Validate checks c without a backend-specific content-type hook.
// See Prepare for the full sequence.
func (c Config) Validate() error {
	return validate(c, nil)
}

// validate runs the checks in order and stops at the first failure.
func validate(c Config, b Backend) error {
	if err := checkSource(c); err != nil {
		return err
	}
	if err := checkTarget(c); err != nil {
		return err
	}
	if err := checkBaseRequired(c); err != nil {
		return err
	}
	return checkContentType(c, b)
}

// checkSource requires a source and, for files, that the file can be read.
func checkSource(c Config) error {
	switch src := c.source.(type) {
	case nil:
		return &ValidationError{Check: "source", Err: ErrNoSource}
	case FileSource:
		if err := checkReadable(src.Path); err != nil {
			return &ValidationError{Check: "source", Err: fmt.Errorf("%w: %s: %w", ErrUnreadableSource, src.Path, err)}
		}
	}
	return nil
}

func checkReadable(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return err
	}
	if info.IsDir() {
		return &fs.PathError{Op: "read", Path: path, Err: errIsDir}
	}
	return nil
}

func checkTarget(c Config) error {
	if c.target == nil {
		return &ValidationError{Check: "target", Err: ErrNoTarget}
	}
	return nil
}

// checkBaseRequired fails for a stream source without base unless the
// syntax is line based (N-Triples, N-Quads), where no base is ever needed.
func checkBaseRequired(c Config) error {
	if _, ok := c.Base(); ok {
		return nil
	}
	if _, ok := c.source.(StreamSource); !ok {
		return nil
	}
	if s, ok := c.Syntax(); ok && s.LineBased() {
		return nil
	}
	return &ValidationError{Check: "base", Err: ErrBaseRequired}
}

func checkContentType(c Config, b Backend) error {
	checker, ok := b.(ContentTypeChecker)
	if !ok {
		return nil
	}
	if err := checker.CheckContentType(c); err != nil {
		return &ValidationError{Check: "content-type", Err: err}
	}
	return nil
}
