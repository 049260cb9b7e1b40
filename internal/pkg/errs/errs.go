package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

// Mark makes err match markErr. Marks do not chain, so the categories markErr
// itself carries are copied onto err as well.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	out := cr.Mark(err, markErr)
	for _, category := range categories {
		if category != markErr && cr.Is(markErr, category) {
			out = cr.Mark(out, category)
		}
	}
	return out
}

// Is understands marks as well as plain wrap chains.
func Is(err, target error) bool {
	return cr.Is(err, target)
}

// Validation builds a sentinel that reports as ErrDomainValidation.
func Validation(msg string) error {
	return cr.Mark(cr.New(msg), ErrDomainValidation)
}

// NotFound builds a sentinel that reports as ErrNotFound.
func NotFound(msg string) error {
	return cr.Mark(cr.New(msg), ErrNotFound)
}

// Conflict builds a sentinel that reports as ErrConflict.
func Conflict(msg string) error {
	return cr.Mark(cr.New(msg), ErrConflict)
}

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
