// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

// SecurityLogger writes structured security events to the local log. It is
// not the audit trail; it is the fallback that never depends on the database.
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup", zap.String("event", "system_startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown", zap.String("event", "system_shutdown"))
}

func (s *SecurityLogger) AccessDenied(userID, tenantID, reason string) {
	s.l.Warn("access denied",
		zap.String("event", "access_denied"),
		zap.String("user_id", userID),
		zap.String("tenant_id", tenantID),
		zap.String("reason", reason),
	)
}

func (s *SecurityLogger) AuditFailure(event string, err error) {
	s.l.Error("audit record failure",
		zap.String("event", "audit_failure"),
		zap.String("audit_event", event),
		zap.Error(err),
	)
}
