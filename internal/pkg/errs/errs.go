// Package errs is a thin facade over cockroachdb/errors. Usecases mark
// failures with sentinel errors so handlers can map them to HTTP statuses
// without losing the underlying cause or its stack trace.
package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func New(msg string) error {
	return cr.New(msg)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark makes err match markErr under Is while keeping err as the cause.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is reports whether err matches ref. Marks made with Mark are only visible
// to cockroachdb's matcher, so callers must use this instead of the standard
// library errors.Is when checking sentinels attached by usecases.
func Is(err, ref error) bool {
	return cr.Is(err, ref)
}

// ExtractStackLines renders the error with its stack trace and returns at
// most maxLines lines, for structured log output.
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
