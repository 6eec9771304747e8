package pkg

import "errors"

// Error kinds distinguish failures without parsing messages. The HTTP layer
// answers 400 only for an unknown action name; every other kind, validation
// included, surfaces as a 500 with the message preserved.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindUnknownAction
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func Validation(msg string) error { return &Error{Kind: KindValidation, Message: msg} }
func NotFound(msg string) error   { return &Error{Kind: KindNotFound, Message: msg} }
func Conflict(msg string) error   { return &Error{Kind: KindConflict, Message: msg} }

func UnknownAction(name string) error {
	return &Error{Kind: KindUnknownAction, Message: "unknown action: " + name}
}

// KindOf classifies any error; non-taxonomy errors are internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// IsUnknownAction reports whether err names an action that does not exist,
// the one failure that surfaces as a 400.
func IsUnknownAction(err error) bool {
	return KindOf(err) == KindUnknownAction
}
