package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCodeFromError_Sentinels(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "nil is success", err: nil, code: ExitSuccess},
		{name: "setup", err: ErrSetup, code: ExitSetupError},
		{name: "graph", err: ErrGraph, code: ExitGraphError},
		{name: "write", err: ErrWrite, code: ExitWriteError},
		{name: "not found", err: ErrNotFound, code: ExitNotFound},
		{name: "plain error", err: errors.New("boom"), code: ExitGeneralError},
		{name: "wrapped sentinel", err: fmt.Errorf("loading graph: %w", ErrGraph), code: ExitGraphError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitCodeFromError_ExitErrorWins(t *testing.T) {
	// An explicit ExitError code beats whatever the wrapped sentinel maps to.
	err := NewExitError(fmt.Errorf("template read: %w", ErrSetup), ExitNotFound)

	assert.Equal(t, ExitNotFound, ExitCodeFromError(err))
}

func TestExitError_Unwrap(t *testing.T) {
	inner := Wrap(ErrWrite, "creating modules.xml")
	err := NewExitError(inner, ExitWriteError)

	assert.True(t, errors.Is(err, ErrWrite))
	assert.Equal(t, "creating modules.xml: write error", err.Error())
}

func TestExitCodeName(t *testing.T) {
	assert.Equal(t, "Success", ExitCodeName(ExitSuccess))
	assert.Equal(t, "Graph Error", ExitCodeName(ExitGraphError))
	assert.Equal(t, "Unknown", ExitCodeName(42))
}
