package wiring_test

import (
	"context"
	"os"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/illBeRoy/advent-2022/internal/app"
	_ "github.com/illBeRoy/advent-2022/internal/wiring" // Register providers
	"github.com/stretchr/testify/require"
)

func TestComponentsGraphResolves(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)

	defer func() {
		errChdir := os.Chdir(cwd)
		require.NoError(t, errChdir)
	}()

	tmpDir := t.TempDir()
	err = os.Chdir(tmpDir)
	require.NoError(t, err)

	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	require.NotNil(t, components)
	require.NotNil(t, components.App)
	require.NotNil(t, components.Logger)
}
