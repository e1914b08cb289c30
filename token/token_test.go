package token

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"omni/db"
	xerrors "omni/errors"
)

func newTestToken(t *testing.T) *Token {
	t.Helper()
	tok, err := BuildDomain(1, db.NewMemoryProvider(), nil, nil)
	require.NoError(t, err)
	require.NoError(t, tok.Initialize("Omni Token", "OMNI", "delegate", uint256.NewInt(1_000_000)))
	return tok
}

func u(v uint64) *uint256.Int {
	return uint256.NewInt(v)
}

func TestInitializeSetsUpDomain(t *testing.T) {
	tok := newTestToken(t)

	name, symbol, err := tok.Meta()
	require.NoError(t, err)
	require.Equal(t, "Omni Token", name)
	require.Equal(t, "OMNI", symbol)

	owner, err := tok.Owner()
	require.NoError(t, err)
	require.Equal(t, "delegate", owner)

	// the delegate receives the full initial supply and both roles
	balance, err := tok.BalanceOf("delegate")
	require.NoError(t, err)
	require.Equal(t, u(1_000_000), balance)

	isMinter, err := tok.IsMinter("delegate")
	require.NoError(t, err)
	require.True(t, isMinter)
	isBurner, err := tok.IsBurner("delegate")
	require.NoError(t, err)
	require.True(t, isBurner)

	paused, err := tok.Paused()
	require.NoError(t, err)
	require.False(t, paused)

	maxSupply, err := tok.MaxSupply()
	require.NoError(t, err)
	require.Equal(t, u(1_000_000), maxSupply)
	supply, err := tok.TotalSupply()
	require.NoError(t, err)
	require.Equal(t, u(1_000_000), supply)
}

func TestInitializeTwice(t *testing.T) {
	tok := newTestToken(t)

	err := tok.Initialize("Again", "AGN", "other", u(5))
	require.True(t, xerrors.HasCode(err, xerrors.ErrCodeAlreadyInitialized))

	// nothing was overwritten
	name, _, err := tok.Meta()
	require.NoError(t, err)
	require.Equal(t, "Omni Token", name)
}

func TestFacadeTransferMintBurn(t *testing.T) {
	tok := newTestToken(t)

	require.NoError(t, tok.Transfer("delegate", "alice", u(500)))
	aliceBalance, err := tok.BalanceOf("alice")
	require.NoError(t, err)
	require.Equal(t, u(500), aliceBalance)

	// supply is at the cap, so mint must free headroom first
	require.NoError(t, tok.Burn("delegate", "delegate", u(100)))
	require.NoError(t, tok.Mint("delegate", "bob", u(100)))

	bobBalance, err := tok.BalanceOf("bob")
	require.NoError(t, err)
	require.Equal(t, u(100), bobBalance)
	supply, err := tok.TotalSupply()
	require.NoError(t, err)
	require.Equal(t, u(1_000_000), supply)
}

func TestPauseBlocksEveryMutation(t *testing.T) {
	tok := newTestToken(t)
	require.NoError(t, tok.Pause("delegate"))

	err := tok.Transfer("delegate", "alice", u(1))
	require.True(t, xerrors.HasCode(err, xerrors.ErrCodeSystemPaused))
	err = tok.Mint("delegate", "alice", u(1))
	require.True(t, xerrors.HasCode(err, xerrors.ErrCodeSystemPaused))
	err = tok.Burn("delegate", "delegate", u(1))
	require.True(t, xerrors.HasCode(err, xerrors.ErrCodeSystemPaused))
	err = tok.OnMessage(2, "alice", u(1), 1)
	require.True(t, xerrors.HasCode(err, xerrors.ErrCodeSystemPaused))
}

func TestReadsAndAdminWorkWhilePaused(t *testing.T) {
	tok := newTestToken(t)
	require.NoError(t, tok.Pause("delegate"))

	// reads stay available
	_, err := tok.BalanceOf("delegate")
	require.NoError(t, err)
	_, err = tok.TotalSupply()
	require.NoError(t, err)

	// role administration is not gated by the pause
	require.NoError(t, tok.SetMinter("delegate", "alice", true))
	require.NoError(t, tok.SetPeer("delegate", 2, "omni-d2"))

	// and unpause itself must of course go through
	require.NoError(t, tok.Unpause("delegate"))
	require.NoError(t, tok.Transfer("delegate", "alice", u(1)))
}

func TestPauseStateExclusive(t *testing.T) {
	tok := newTestToken(t)

	err := tok.Unpause("delegate")
	require.True(t, xerrors.HasCode(err, xerrors.ErrCodeNotPaused))

	require.NoError(t, tok.Pause("delegate"))
	err = tok.Pause("delegate")
	require.True(t, xerrors.HasCode(err, xerrors.ErrCodeAlreadyPaused))
}

func TestOwnershipHandOver(t *testing.T) {
	tok := newTestToken(t)

	require.NoError(t, tok.TransferOwnership("delegate", "newOwner"))

	err := tok.Pause("delegate")
	require.True(t, xerrors.HasCode(err, xerrors.ErrCodeUnauthorized))
	require.NoError(t, tok.Pause("newOwner"))
}

func TestBuildDomainReopensExistingState(t *testing.T) {
	provider := db.NewMemoryProvider()
	tok, err := BuildDomain(1, provider, nil, nil)
	require.NoError(t, err)
	require.NoError(t, tok.Initialize("Omni Token", "OMNI", "delegate", u(1000)))
	require.NoError(t, tok.Transfer("delegate", "alice", u(10)))

	// rebuild over the same provider, as a restart would
	tok2, err := BuildDomain(1, provider, nil, nil)
	require.NoError(t, err)

	balance, err := tok2.BalanceOf("alice")
	require.NoError(t, err)
	require.Equal(t, u(10), balance)
	err = tok2.Initialize("Again", "AGN", "x", u(1))
	require.True(t, xerrors.HasCode(err, xerrors.ErrCodeAlreadyInitialized))
}
