// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import "context"

type contextKey struct{}

var subjectContextKey = contextKey{}

// WithSubject returns a copy of ctx carrying the identity provider subject.
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, subjectContextKey, subject)
}

// SubjectFromContext returns the subject set by WithSubject.
// Returns false when no subject, or an empty one, is present.
func SubjectFromContext(ctx context.Context) (string, bool) {
	s, ok := ctx.Value(subjectContextKey).(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
