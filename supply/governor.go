package supply

import (
	"fmt"

	"github.com/holiman/uint256"

	"omni/errors"
	"omni/events"
	"omni/ledger"
	"omni/logx"
	"omni/monitoring"
	"omni/roles"
	"omni/store"
)

// Governor wraps privileged supply mutation. It is the only component
// that consults the max-supply ceiling, and only for minting: the cap
// bounds local issuance, never burning and never cross-chain credit.
type Governor struct {
	ledger      *ledger.Ledger
	registry    *roles.Registry
	stateStore  store.StateStore
	eventRouter *events.EventRouter
}

func NewGovernor(ld *ledger.Ledger, registry *roles.Registry, stateStore store.StateStore, eventRouter *events.EventRouter) *Governor {
	return &Governor{
		ledger:      ld,
		registry:    registry,
		stateStore:  stateStore,
		eventRouter: eventRouter,
	}
}

// MaxSupply returns the immutable per-domain ceiling
func (g *Governor) MaxSupply() (*uint256.Int, error) {
	return g.stateStore.GetMaxSupply()
}

// Mint credits amount to `to`, gated by the minter role and the cap
func (g *Governor) Mint(caller, to string, amount *uint256.Int) error {
	isMinter, err := g.registry.IsMinter(caller)
	if err != nil {
		return fmt.Errorf("failed to check minter role: %w", err)
	}
	if !isMinter {
		monitoring.RecordRejectedOp(monitoring.OpUnauthorized)
		return errors.ErrUnauthorized()
	}

	maxSupply, err := g.stateStore.GetMaxSupply()
	if err != nil {
		return fmt.Errorf("failed to read max supply: %w", err)
	}
	totalSupply, err := g.ledger.TotalSupply()
	if err != nil {
		return fmt.Errorf("failed to read total supply: %w", err)
	}
	newSupply, overflow := new(uint256.Int).AddOverflow(totalSupply, amount)
	if overflow || newSupply.Cmp(maxSupply) > 0 {
		monitoring.RecordRejectedOp(monitoring.OpCapExceeded)
		return errors.ErrCapExceeded()
	}

	if err := g.ledger.Credit(to, amount); err != nil {
		return err
	}

	logx.Info("SUPPLY", fmt.Sprintf("Minted %s to %s by %s", amount.Dec(), to, caller))
	if g.eventRouter != nil {
		g.eventRouter.PublishSupplyEvent(events.NewMinted(caller, to, amount))
	}
	monitoring.IncreaseMintCount()
	return nil
}

// Burn debits amount from `from`, gated by the burner role. Burning is
// always safe relative to the cap, so none is checked.
func (g *Governor) Burn(caller, from string, amount *uint256.Int) error {
	isBurner, err := g.registry.IsBurner(caller)
	if err != nil {
		return fmt.Errorf("failed to check burner role: %w", err)
	}
	if !isBurner {
		monitoring.RecordRejectedOp(monitoring.OpUnauthorized)
		return errors.ErrUnauthorized()
	}

	if err := g.ledger.Debit(from, amount); err != nil {
		return err
	}

	logx.Info("SUPPLY", fmt.Sprintf("Burned %s from %s by %s", amount.Dec(), from, caller))
	if g.eventRouter != nil {
		g.eventRouter.PublishSupplyEvent(events.NewBurned(caller, from, amount))
	}
	monitoring.IncreaseBurnCount()
	return nil
}
