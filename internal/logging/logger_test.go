// Copyright 2026 Oleamind
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"testing"
)

func TestDebugLogger(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("DEBUG")
	}()
}

func TestInvalidLevel(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for invalid level")
		}
	}()
	NewLogger("invalid")
}

func TestSecurityLoggerDoesNotPanic(t *testing.T) {
	l := NewNoopLogger()
	l.Security().AuthnFailure("42", "expired credential")
	l.Security().AuthzFailure("42", "farm_role")
	l.Security().SystemStartup()
	l.Security().SystemShutdown()
}
