package ledger

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed contract call
type ErrorKind string

const (
	// KindTransport covers unreachable nodes, timeouts and other RPC level failures
	KindTransport ErrorKind = "transport"
	// KindUnexpected covers replies that cannot be decoded into the expected shape
	KindUnexpected ErrorKind = "unexpected"
)

// CallError is returned by CallFunction when a call neither succeeds nor reverts
type CallError struct {
	Kind     ErrorKind
	Contract string
	Function string
	Err      error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("%s call %s.%s failed: %v", e.Kind, e.Contract, e.Function, e.Err)
}

func (e *CallError) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of a call error, treating untyped errors as transport failures
func KindOf(err error) ErrorKind {
	var callErr *CallError
	if errors.As(err, &callErr) {
		return callErr.Kind
	}
	return KindTransport
}

// IsTransport reports whether err is a transport level call failure
func IsTransport(err error) bool {
	return err != nil && KindOf(err) == KindTransport
}
