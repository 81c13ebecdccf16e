package e2e

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/touhid12310/bdtuitions-android-ios/internal/app"
	"github.com/touhid12310/bdtuitions-android-ios/internal/config"
)

// TestSuite wires a full client stack (bbolt session storage, sqlite cache,
// HTTP client, services) against a FakeBackend.
type TestSuite struct {
	Backend   *FakeBackend
	Container *app.Container
	DataDir   string
}

// NewTestSuite starts a fake backend and a fresh client container.
func NewTestSuite(t *testing.T) *TestSuite {
	t.Helper()
	backend := NewFakeBackend(t)
	dataDir := t.TempDir()
	return &TestSuite{
		Backend:   backend,
		Container: newContainer(t, backend, dataDir),
		DataDir:   dataDir,
	}
}

// Restart rebuilds the container over the same data directory, simulating an
// app restart that rehydrates the persisted session.
func (s *TestSuite) Restart(t *testing.T) {
	t.Helper()
	require.NoError(t, s.Container.Close())
	s.Container = newContainer(t, s.Backend, s.DataDir)
}

func newContainer(t *testing.T, backend *FakeBackend, dataDir string) *app.Container {
	t.Helper()
	cfg := &config.Config{
		DeviceName:      "e2e-test-device",
		APIBaseURL:      backend.URL(),
		RequestTimeout:  10 * time.Second,
		SessionPath:     filepath.Join(dataDir, "session.db"),
		CachePath:       filepath.Join(dataDir, "cache.db"),
		OTPCodeLength:   6,
		OTPResendWindow: 60 * time.Second,
		VerificationFee: 500,
	}

	container, err := app.NewContainer(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Close() })
	return container
}
