package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/loom/internal/app"
	"go.trai.ch/loom/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newMockComponents(t *testing.T) (*app.Components, *mocks.MockConfigLoader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockWriter := mocks.NewMockAtomicWriter(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockTelemetry := mocks.NewMockTelemetry(ctrl)

	application := app.New(mockLoader, mockWriter, mockLogger, mockTelemetry)
	return &app.Components{App: application, Logger: mockLogger}, mockLoader, mockLogger
}

// TestRun_Success verifies run returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	components, _, _ := newMockComponents(t)
	provider := func(_ context.Context) (*app.Components, error) {
		return components, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies run reports provider failures on
// stderr directly, since no logger exists yet at that point.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, error) {
		return nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies command failures go through the logger
// and produce a non-zero exit code.
func TestRun_ExecutionError(t *testing.T) {
	components, mockLoader, mockLogger := newMockComponents(t)
	mockLoader.EXPECT().Load(gomock.Any()).Return(nil, errors.New("load failed"))
	mockLogger.EXPECT().Error(gomock.Any()).Times(1)

	provider := func(_ context.Context) (*app.Components, error) {
		return components, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"gen", t.TempDir()}, stderr, provider)
	assert.Equal(t, 1, exitCode)
}
