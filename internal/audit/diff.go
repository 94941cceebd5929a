// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package audit

import (
	"encoding/json"
	"reflect"
	"strings"

	"github.com/canonical/glassworks-service/internal/types"
)

var skippedFields = map[string]bool{
	"id":         true,
	"tenant_id":  true,
	"created_at": true,
	"updated_at": true,
}

// Diff compares the JSON form of two records field by field.
// Either side may be nil, for creations and deletions. A nil result means
// nothing changed.
func Diff(before, after interface{}) map[string]types.Change {
	b := toFields(before)
	a := toFields(after)

	changes := make(map[string]types.Change)
	for k, bv := range b {
		if skippedFields[k] {
			continue
		}
		av, ok := a[k]
		if !ok || !reflect.DeepEqual(bv, av) {
			changes[k] = types.Change{From: bv, To: av}
		}
	}
	for k, av := range a {
		if skippedFields[k] {
			continue
		}
		if _, ok := b[k]; !ok {
			changes[k] = types.Change{From: nil, To: av}
		}
	}

	if len(changes) == 0 {
		return nil
	}
	return changes
}

func toFields(v interface{}) map[string]interface{} {
	if v == nil {
		return map[string]interface{}{}
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return map[string]interface{}{}
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return map[string]interface{}{}
	}

	fields := make(map[string]interface{})
	if err := json.Unmarshal(raw, &fields); err != nil {
		return map[string]interface{}{}
	}
	return fields
}

var (
	criticalMarkers = []string{"delete", "remove", "role_change", "permissions_change", "suspend", "deactivate"}
	warningMarkers  = []string{"fail", "denied"}
)

// InferSeverity classifies an action name such as "customer.delete".
func InferSeverity(action string) types.Severity {
	a := strings.ToLower(action)
	for _, m := range criticalMarkers {
		if strings.Contains(a, m) {
			return types.SeverityCritical
		}
	}
	for _, m := range warningMarkers {
		if strings.Contains(a, m) {
			return types.SeverityWarning
		}
	}
	return types.SeverityInfo
}
