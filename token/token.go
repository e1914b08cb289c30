package token

import (
	"fmt"

	"github.com/holiman/uint256"

	"omni/bridge"
	"omni/errors"
	"omni/events"
	"omni/ledger"
	"omni/logx"
	"omni/pause"
	"omni/roles"
	"omni/store"
	"omni/supply"
)

// Token is the entry-point surface of one domain. Every externally
// reachable operation goes through here so the pause gate and role
// checks cannot be bypassed. It is an explicit per-domain value, not a
// process-wide singleton: multi-domain tests build several.
type Token struct {
	ledger      *ledger.Ledger
	registry    *roles.Registry
	governor    *supply.Governor
	pauser      *pause.Controller
	bridge      *bridge.Bridge
	stateStore  store.StateStore
	eventRouter *events.EventRouter
}

func NewToken(ld *ledger.Ledger, registry *roles.Registry, governor *supply.Governor, pauser *pause.Controller, br *bridge.Bridge, stateStore store.StateStore, eventRouter *events.EventRouter) *Token {
	return &Token{
		ledger:      ld,
		registry:    registry,
		governor:    governor,
		pauser:      pauser,
		bridge:      br,
		stateStore:  stateStore,
		eventRouter: eventRouter,
	}
}

// Initialize performs the one-time genesis of a domain: delegate becomes
// owner, minter and burner, the cap is fixed, and exactly maxSupply is
// minted to the delegate. Re-invocation fails AlreadyInitialized.
func (t *Token) Initialize(name, symbol, delegate string, maxSupply *uint256.Int) error {
	initialized, err := t.stateStore.IsInitialized()
	if err != nil {
		return fmt.Errorf("failed to check initialization: %w", err)
	}
	if initialized {
		return errors.ErrAlreadyInitialized()
	}

	if err := t.stateStore.SetTokenMeta(name, symbol); err != nil {
		return err
	}
	if err := t.stateStore.SetOwner(delegate); err != nil {
		return err
	}
	if err := t.stateStore.SetMaxSupply(maxSupply); err != nil {
		return err
	}
	if err := t.stateStore.SetPaused(false); err != nil {
		return err
	}
	if err := t.registry.GrantGenesisRoles(delegate); err != nil {
		return err
	}
	// genesis issuance goes through the governor so the cap invariant
	// holds from the very first state
	if err := t.governor.Mint(delegate, delegate, maxSupply); err != nil {
		return err
	}
	if err := t.stateStore.SetInitialized(); err != nil {
		return err
	}

	logx.Info("TOKEN", fmt.Sprintf("Initialized %s (%s) with max supply %s, delegate %s", name, symbol, maxSupply.Dec(), delegate))
	return nil
}

// --- ledger surface ---

// Transfer moves amount from caller to recipient
func (t *Token) Transfer(caller, to string, amount *uint256.Int) error {
	if err := t.pauser.RequireActive(); err != nil {
		return err
	}
	return t.ledger.Transfer(caller, to, amount)
}

func (t *Token) BalanceOf(addr string) (*uint256.Int, error) {
	return t.ledger.Balance(addr)
}

func (t *Token) TotalSupply() (*uint256.Int, error) {
	return t.ledger.TotalSupply()
}

func (t *Token) MaxSupply() (*uint256.Int, error) {
	return t.governor.MaxSupply()
}

func (t *Token) Meta() (name string, symbol string, err error) {
	return t.stateStore.GetTokenMeta()
}

// --- privileged supply surface ---

func (t *Token) Mint(caller, to string, amount *uint256.Int) error {
	if err := t.pauser.RequireActive(); err != nil {
		return err
	}
	return t.governor.Mint(caller, to, amount)
}

func (t *Token) Burn(caller, from string, amount *uint256.Int) error {
	if err := t.pauser.RequireActive(); err != nil {
		return err
	}
	return t.governor.Burn(caller, from, amount)
}

// --- registry surface ---

func (t *Token) SetMinter(caller, addr string, enabled bool) error {
	return t.registry.SetMinter(caller, addr, enabled)
}

func (t *Token) SetBurner(caller, addr string, enabled bool) error {
	return t.registry.SetBurner(caller, addr, enabled)
}

func (t *Token) IsMinter(addr string) (bool, error) {
	return t.registry.IsMinter(addr)
}

func (t *Token) IsBurner(addr string) (bool, error) {
	return t.registry.IsBurner(addr)
}

func (t *Token) Owner() (string, error) {
	return t.registry.Owner()
}

func (t *Token) TransferOwnership(caller, newOwner string) error {
	return t.registry.TransferOwnership(caller, newOwner)
}

// --- pause surface ---

func (t *Token) Pause(caller string) error {
	return t.pauser.Pause(caller)
}

func (t *Token) Unpause(caller string) error {
	return t.pauser.Unpause(caller)
}

func (t *Token) Paused() (bool, error) {
	state, err := t.pauser.State()
	if err != nil {
		return false, err
	}
	return state == pause.Paused, nil
}

// --- cross-chain surface ---

func (t *Token) SetPeer(caller string, domain uint32, counterpart string) error {
	return t.bridge.SetPeer(caller, domain, counterpart)
}

func (t *Token) Send(caller string, destinationDomain uint32, recipient string, amount *uint256.Int) (*bridge.OutboundMessage, error) {
	return t.bridge.Send(caller, destinationDomain, recipient, amount)
}

func (t *Token) QuoteSend(destinationDomain uint32, recipient string, amount *uint256.Int) (*uint256.Int, error) {
	return t.bridge.Quote(destinationDomain, recipient, amount)
}

// OnMessage is the transport-invoked receive path; see bridge.OnMessage
func (t *Token) OnMessage(originDomain uint32, recipient string, amount *uint256.Int, sequence uint64) error {
	return t.bridge.OnMessage(originDomain, recipient, amount, sequence)
}

// Bridge exposes the bridge for transport wiring
func (t *Token) Bridge() *bridge.Bridge {
	return t.bridge
}

// Ledger exposes the ledger for read-only audit surfaces
func (t *Token) Ledger() *ledger.Ledger {
	return t.ledger
}
