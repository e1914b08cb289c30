package roles

import (
	"testing"

	"github.com/stretchr/testify/require"

	"omni/db"
	xerrors "omni/errors"
	"omni/store"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	provider := db.NewMemoryProvider()
	stateStore, err := store.NewGenericStateStore(provider)
	require.NoError(t, err)
	roleStore, err := store.NewGenericRoleStore(provider)
	require.NoError(t, err)
	registry := NewRegistry(stateStore, roleStore, nil)
	require.NoError(t, stateStore.SetOwner("owner"))
	return registry
}

func TestRequireOwner(t *testing.T) {
	registry := newTestRegistry(t)

	require.NoError(t, registry.RequireOwner("owner"))

	err := registry.RequireOwner("mallory")
	require.True(t, xerrors.HasCode(err, xerrors.ErrCodeUnauthorized))
}

func TestTransferOwnership(t *testing.T) {
	registry := newTestRegistry(t)

	require.NoError(t, registry.TransferOwnership("owner", "newOwner"))

	owner, err := registry.Owner()
	require.NoError(t, err)
	require.Equal(t, "newOwner", owner)

	// previous owner no longer holds authority
	err = registry.RequireOwner("owner")
	require.True(t, xerrors.HasCode(err, xerrors.ErrCodeUnauthorized))
	require.NoError(t, registry.RequireOwner("newOwner"))
}

func TestTransferOwnershipUnauthorized(t *testing.T) {
	registry := newTestRegistry(t)

	err := registry.TransferOwnership("mallory", "mallory")
	require.True(t, xerrors.HasCode(err, xerrors.ErrCodeUnauthorized))

	owner, err := registry.Owner()
	require.NoError(t, err)
	require.Equal(t, "owner", owner)
}

func TestSetMinterOwnerOnly(t *testing.T) {
	registry := newTestRegistry(t)

	err := registry.SetMinter("mallory", "mallory", true)
	require.True(t, xerrors.HasCode(err, xerrors.ErrCodeUnauthorized))

	require.NoError(t, registry.SetMinter("owner", "alice", true))
	isMinter, err := registry.IsMinter("alice")
	require.NoError(t, err)
	require.True(t, isMinter)

	require.NoError(t, registry.SetMinter("owner", "alice", false))
	isMinter, err = registry.IsMinter("alice")
	require.NoError(t, err)
	require.False(t, isMinter)
}

func TestSetBurnerIsIndependentOfMinter(t *testing.T) {
	registry := newTestRegistry(t)

	require.NoError(t, registry.SetBurner("owner", "bob", true))

	isBurner, err := registry.IsBurner("bob")
	require.NoError(t, err)
	require.True(t, isBurner)

	isMinter, err := registry.IsMinter("bob")
	require.NoError(t, err)
	require.False(t, isMinter)
}

func TestRoleToggleIsIdempotent(t *testing.T) {
	registry := newTestRegistry(t)

	require.NoError(t, registry.SetMinter("owner", "alice", true))
	require.NoError(t, registry.SetMinter("owner", "alice", true))
	isMinter, err := registry.IsMinter("alice")
	require.NoError(t, err)
	require.True(t, isMinter)

	require.NoError(t, registry.SetMinter("owner", "alice", false))
	require.NoError(t, registry.SetMinter("owner", "alice", false))
	isMinter, err = registry.IsMinter("alice")
	require.NoError(t, err)
	require.False(t, isMinter)
}

func TestZeroAddressRoleAllowed(t *testing.T) {
	registry := newTestRegistry(t)

	// granting a role to the empty address is permitted; it is inert but legal
	require.NoError(t, registry.SetMinter("owner", "", true))
	isMinter, err := registry.IsMinter("")
	require.NoError(t, err)
	require.True(t, isMinter)
}

func TestGrantGenesisRoles(t *testing.T) {
	registry := newTestRegistry(t)

	require.NoError(t, registry.GrantGenesisRoles("delegate"))

	isMinter, err := registry.IsMinter("delegate")
	require.NoError(t, err)
	require.True(t, isMinter)
	isBurner, err := registry.IsBurner("delegate")
	require.NoError(t, err)
	require.True(t, isBurner)
}
