// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notifications

// NotificationRequest creates a broadcast notification, or a targeted one
// when TargetUserID is set.
type NotificationRequest struct {
	TargetUserID string `json:"target_user_id,omitempty"`
	Kind         string `json:"kind,omitempty"`
	Title        string `json:"title" validate:"required,max=200"`
	Body         string `json:"body" validate:"max=2000"`
	EntityType   string `json:"entity_type,omitempty"`
	EntityID     string `json:"entity_id,omitempty"`
}
