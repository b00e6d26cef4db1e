// Package diag defines generation-time diagnostics.
package diag

import (
	"errors"
	"fmt"
	"go/token"
	"slices"
	"sort"
)

// Sentinels for the kinds of generation-time failures. A [Diagnostic]
// unwraps to exactly one of them.
var (
	ErrAliasCollision       = errors.New("alias collision")
	ErrEmptyCaseList        = errors.New("empty case list")
	ErrInvalidOverrideIndex = errors.New("invalid alias override index")
	ErrMalformedDeclaration = errors.New("malformed declaration")
)

// Diagnostic reports a problem with one union declaration.
type Diagnostic struct {
	Err   error          // One of the sentinels above
	Pos   token.Position // Position of the offending directive; may be invalid
	Union string         // Name of the union, if known
	Msg   string
}

// New creates a Diagnostic with a formatted message.
func New(err error, pos token.Position, union string, format string, args ...any) *Diagnostic {
	return &Diagnostic{
		Err:   err,
		Pos:   pos,
		Union: union,
		Msg:   fmt.Sprintf(format, args...),
	}
}

// Unwrap returns the sentinel for the diagnostic's kind.
func (d *Diagnostic) Unwrap() error { return d.Err }

// Error implements the error interface. If the position is valid, it is
// prepended to the message.
func (d *Diagnostic) Error() string {
	msg := d.Err.Error()
	if d.Msg != "" {
		msg += ": " + d.Msg
	}
	if d.Union != "" {
		msg = fmt.Sprintf("union %s: %s", d.Union, msg)
	}
	if !d.Pos.IsValid() {
		return msg
	}
	return fmt.Sprintf("%s: %s", d.Pos, msg)
}

// Flatten unwraps errors combined with errors.Join into a flat list sorted by
// message.
func Flatten(err error) []error {
	if err == nil {
		return nil
	}

	list := []error{err}
	for i := 0; i < len(list); i++ {
		if u, ok := list[i].(interface{ Unwrap() []error }); ok {
			list = append(list, u.Unwrap()...)
			list[i] = nil
		}
	}
	list = slices.DeleteFunc(list, func(err error) bool {
		return err == nil
	})

	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Error() < list[j].Error()
	})
	return list
}
