package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/deparse/internal/adapters/cache"
	"go.trai.ch/deparse/internal/adapters/output"
	"go.trai.ch/deparse/internal/adapters/telemetry"
	"go.trai.ch/deparse/internal/app"
	"go.trai.ch/deparse/internal/core/domain"
	"go.trai.ch/deparse/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	testscript.Main(m, map[string]func(){
		"deparse": main,
	})
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/script",
		Setup: func(env *testscript.Env) error {
			env.Setenv("NO_COLOR", "1")
			return nil
		},
	})
}

func newComponents(t *testing.T, ctrl *gomock.Controller) (*app.Components, *mocks.MockConfigLoader, *mocks.MockLogger) {
	t.Helper()
	stateCache, err := cache.New(cache.DefaultSize)
	if err != nil {
		t.Fatalf("cache.New failed: %v", err)
	}
	loader := mocks.NewMockConfigLoader(ctrl)
	log := mocks.NewMockLogger(ctrl)
	application := app.New(
		loader,
		mocks.NewMockManifestLoader(ctrl),
		mocks.NewMockLockfileParser(ctrl),
		mocks.NewMockHasher(ctrl),
		mocks.NewMockExportInfoStore(ctrl),
		stateCache,
		output.NewJSONWriter(),
		telemetry.NewNoOp(),
		log,
	)
	return &app.Components{App: application, Logger: log}, loader, log
}

func TestRun_Version(t *testing.T) {
	ctrl := gomock.NewController(t)
	components, _, _ := newComponents(t, ctrl)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, new(bytes.Buffer), provider)
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "deparse version")
}

func TestRun_CommandError(t *testing.T) {
	ctrl := gomock.NewController(t)
	components, loader, log := newComponents(t, ctrl)

	loadErr := errors.New("config broken")
	loader.EXPECT().Load("").Return(domain.Config{}, loadErr)
	log.EXPECT().Error(gomock.Any()).Times(1)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	exitCode := run(context.Background(), []string{"tree"}, new(bytes.Buffer), new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}

func TestRun_ProviderError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, func() {}, errors.New("wiring failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"tree"}, new(bytes.Buffer), stderr, provider)
	assert.Equal(t, 1, exitCode)
	assert.Equal(t, "Error: wiring failed\n", stderr.String())
}

func TestRun_Cleanup(t *testing.T) {
	ctrl := gomock.NewController(t)
	components, _, _ := newComponents(t, ctrl)

	cleaned := false
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() { cleaned = true }, nil
	}

	exitCode := run(context.Background(), []string{"version"}, os.Stdout, os.Stderr, provider)
	assert.Equal(t, 0, exitCode)
	assert.True(t, cleaned)
}
