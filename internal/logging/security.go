// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

const securityEventKey = "event"

// SecurityLogger writes security relevant events, they are always emitted at
// warn level or above so they survive the default production level
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Warn("system startup", zap.String(securityEventKey, "sys_startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Warn("system shutdown", zap.String(securityEventKey, "sys_shutdown"))
}

func (s *SecurityLogger) AuthnFailure(subject, reason string) {
	s.l.Warn(
		"authentication failure",
		zap.String(securityEventKey, "authn_login_fail"),
		zap.String("subject", subject),
		zap.String("reason", reason),
	)
}

func (s *SecurityLogger) AuthzFailure(subject, resource string) {
	s.l.Warn(
		"authorization failure",
		zap.String(securityEventKey, "authz_fail"),
		zap.String("subject", subject),
		zap.String("resource", resource),
	)
}

func (s *SecurityLogger) AdminAction(actor, action, tenantID, entityID string) {
	s.l.Warn(
		"privileged action",
		zap.String(securityEventKey, "authz_admin"),
		zap.String("actor", actor),
		zap.String("action", action),
		zap.String("tenant_id", tenantID),
		zap.String("entity_id", entityID),
	)
}
