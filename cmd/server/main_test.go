package main

import (
	"testing"

	fxmodules "golf-wager/internal/fx"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestDependencyGraph(t *testing.T) {
	require.NoError(t, fx.ValidateApp(fxmodules.Module, fx.Invoke(runServer)))
}
