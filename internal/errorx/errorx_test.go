// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package errorx

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorIsSurvivesDecoration(t *testing.T) {
	err := ErrOverpayment.WithData(map[string]interface{}{"remaining": 10.5})
	wrapped := fmt.Errorf("record payment: %w", err)

	assert.ErrorIs(t, wrapped, ErrOverpayment)
	assert.NotErrorIs(t, wrapped, ErrNotFound)
	assert.Equal(t, KindValidation, KindOf(wrapped))
}

func TestWithDataDoesNotMutateSentinel(t *testing.T) {
	_ = ErrRequiredField.WithData(map[string]interface{}{"field": "name"})

	assert.Empty(t, ErrRequiredField.Data)
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := ErrIdentityProvider.Wrap(cause)

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrIdentityProvider)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestKindOfPlainError(t *testing.T) {
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
}

func TestErrorString(t *testing.T) {
	err := ErrRequiredField.WithData(map[string]interface{}{"field": "phone", "entity": "customer"})

	assert.Equal(t, "validation: ErrorRequiredField entity=customer field=phone", err.Error())
}

func TestAs(t *testing.T) {
	e, ok := As(fmt.Errorf("outer: %w", ErrSeatLimitReached))

	assert.True(t, ok)
	assert.Equal(t, "ErrorSeatLimitReached", e.MessageID)

	_, ok = As(errors.New("plain"))
	assert.False(t, ok)
}
