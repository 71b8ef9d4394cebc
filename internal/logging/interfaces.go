// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

type LoggerInterface interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})

	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})

	Security() SecurityLoggerInterface
	Sync() error
}

// SecurityLoggerInterface is the dedicated channel for security-relevant
// events that must reach local logs even when the audit pipeline is down.
type SecurityLoggerInterface interface {
	SystemStartup()
	SystemShutdown()
	AccessDenied(userID, tenantID, reason string)
	AuditFailure(event string, err error)
}
