package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/kiln/internal/app"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports/mocks"
	"go.trai.ch/kiln/internal/engine/generator"
	"go.uber.org/mock/gomock"
)

func newTestComponents(t *testing.T) (*app.Components, *mocks.MockConfigLoader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	gen := generator.NewGenerator(
		mocks.NewMockPackageResolver(ctrl),
		mocks.NewMockStager(ctrl),
		mocks.NewMockStageRecordStore(ctrl),
		mocks.NewMockTracer(ctrl),
		mockLogger,
	)

	return &app.Components{
		App:    app.New(mockLoader, gen, mockLogger),
		Logger: mockLogger,
	}, mockLoader, mockLogger
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	components, _, _ := newTestComponents(t)
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	stdout := new(bytes.Buffer)
	exitCode := run(t.Context(), []string{"version", "--log-format", "pretty"}, stdout, new(bytes.Buffer), provider)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "kiln dev\n")
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(t.Context(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run logs the error and returns 1 when the command fails.
func TestRun_ExecutionError(t *testing.T) {
	components, mockLoader, mockLogger := newTestComponents(t)
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	mockLoader.EXPECT().Load(".").Return(nil, domain.ErrConfigNotFound)
	mockLogger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrConfigNotFound)
	})

	exitCode := run(t.Context(), []string{"deps", "--log-format", "pretty"}, new(bytes.Buffer), new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}

// TestRun_CleanupCalled verifies that the provider cleanup runs after the command.
func TestRun_CleanupCalled(t *testing.T) {
	components, _, _ := newTestComponents(t)
	cleaned := false
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() { cleaned = true }, nil
	}

	exitCode := run(t.Context(), []string{"version"}, new(bytes.Buffer), new(bytes.Buffer), provider)
	assert.Equal(t, 0, exitCode)
	assert.True(t, cleaned)
}

// TestRun_UnknownLogFormat verifies that an invalid --log-format fails before the command runs.
func TestRun_UnknownLogFormat(t *testing.T) {
	components, _, mockLogger := newTestComponents(t)
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	mockLogger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorContains(t, err, domain.ErrUnknownLogFormat.Error())
	})

	exitCode := run(t.Context(), []string{"deps", "--log-format", "xml"}, new(bytes.Buffer), new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}
