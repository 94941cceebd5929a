// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package errorx holds the user facing error taxonomy. Every error carries a
// translation message id and a kind, the HTTP layer maps the kind to a status
// code and localizes the message id.
package errorx

import (
	"errors"
	"fmt"
	"maps"
	"sort"
	"strings"
)

type Kind string

const (
	KindUnauthenticated Kind = "unauthenticated"
	KindForbidden       Kind = "forbidden"
	KindValidation      Kind = "validation"
	KindConflict        Kind = "conflict"
	KindNotFound        Kind = "not_found"
	KindRateLimited     Kind = "rate_limited"
	KindInternal        Kind = "internal"
)

type Error struct {
	Kind      Kind
	MessageID string
	Data      map[string]interface{}

	cause error
}

func (e *Error) Error() string {
	b := strings.Builder{}
	b.WriteString(string(e.Kind))
	b.WriteString(": ")
	b.WriteString(e.MessageID)

	if len(e.Data) > 0 {
		keys := make([]string, 0, len(e.Data))
		for k := range e.Data {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, " %s=%v", k, e.Data[k])
		}
	}

	if e.cause != nil {
		b.WriteString(": ")
		b.WriteString(e.cause.Error())
	}

	return b.String()
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches on the message id so sentinel values survive WithData and Wrap.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.MessageID == t.MessageID && e.Kind == t.Kind
}

// WithData returns a copy carrying template data for the translated message.
func (e *Error) WithData(data map[string]interface{}) *Error {
	c := *e
	c.Data = make(map[string]interface{}, len(e.Data)+len(data))
	maps.Copy(c.Data, e.Data)
	maps.Copy(c.Data, data)
	return &c
}

// Wrap returns a copy recording the underlying cause.
func (e *Error) Wrap(cause error) *Error {
	c := *e
	c.cause = cause
	return &c
}

func New(kind Kind, messageID string) *Error {
	return &Error{Kind: kind, MessageID: messageID}
}

// KindOf returns the kind of the first *Error in the chain, internal otherwise.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// As extracts the first *Error in the chain.
func As(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}
