package pause

import (
	"testing"

	"github.com/stretchr/testify/require"

	"omni/db"
	xerrors "omni/errors"
	"omni/roles"
	"omni/store"
)

func newTestController(t *testing.T) *Controller {
	t.Helper()
	provider := db.NewMemoryProvider()
	stateStore, err := store.NewGenericStateStore(provider)
	require.NoError(t, err)
	roleStore, err := store.NewGenericRoleStore(provider)
	require.NoError(t, err)
	require.NoError(t, stateStore.SetOwner("owner"))
	require.NoError(t, stateStore.SetPaused(false))
	registry := roles.NewRegistry(stateStore, roleStore, nil)
	return NewController(stateStore, registry, nil)
}

func TestInitialStateActive(t *testing.T) {
	controller := newTestController(t)

	state, err := controller.State()
	require.NoError(t, err)
	require.Equal(t, Active, state)
	require.NoError(t, controller.RequireActive())
}

func TestPauseAndUnpause(t *testing.T) {
	controller := newTestController(t)

	require.NoError(t, controller.Pause("owner"))
	state, err := controller.State()
	require.NoError(t, err)
	require.Equal(t, Paused, state)

	err = controller.RequireActive()
	require.True(t, xerrors.HasCode(err, xerrors.ErrCodeSystemPaused))

	require.NoError(t, controller.Unpause("owner"))
	state, err = controller.State()
	require.NoError(t, err)
	require.Equal(t, Active, state)
	require.NoError(t, controller.RequireActive())
}

func TestPauseWhilePaused(t *testing.T) {
	controller := newTestController(t)
	require.NoError(t, controller.Pause("owner"))

	err := controller.Pause("owner")
	require.True(t, xerrors.HasCode(err, xerrors.ErrCodeAlreadyPaused))
}

func TestUnpauseWhileActive(t *testing.T) {
	controller := newTestController(t)

	err := controller.Unpause("owner")
	require.True(t, xerrors.HasCode(err, xerrors.ErrCodeNotPaused))
}

func TestPauseOwnerOnly(t *testing.T) {
	controller := newTestController(t)

	err := controller.Pause("mallory")
	require.True(t, xerrors.HasCode(err, xerrors.ErrCodeUnauthorized))

	state, err := controller.State()
	require.NoError(t, err)
	require.Equal(t, Active, state)

	require.NoError(t, controller.Pause("owner"))
	err = controller.Unpause("mallory")
	require.True(t, xerrors.HasCode(err, xerrors.ErrCodeUnauthorized))
}

func TestStateString(t *testing.T) {
	require.Equal(t, "Active", Active.String())
	require.Equal(t, "Paused", Paused.String())
}
