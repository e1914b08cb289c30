package pause

import (
	"fmt"

	"omni/errors"
	"omni/events"
	"omni/logx"
	"omni/monitoring"
	"omni/store"
)

// State of the pause controller
type State int

const (
	Active State = iota
	Paused
)

func (s State) String() string {
	if s == Paused {
		return "Paused"
	}
	return "Active"
}

// Authority answers whether a caller holds the owner authority
type Authority interface {
	RequireOwner(caller string) error
}

// Controller is a two-state machine gating every mutating entry point of
// a domain. Pause and Unpause themselves are exempt from the gate.
type Controller struct {
	stateStore  store.StateStore
	authority   Authority
	eventRouter *events.EventRouter
}

func NewController(stateStore store.StateStore, authority Authority, eventRouter *events.EventRouter) *Controller {
	return &Controller{
		stateStore:  stateStore,
		authority:   authority,
		eventRouter: eventRouter,
	}
}

// State returns the current state
func (c *Controller) State() (State, error) {
	paused, err := c.stateStore.GetPaused()
	if err != nil {
		return Active, fmt.Errorf("failed to read pause flag: %w", err)
	}
	if paused {
		return Paused, nil
	}
	return Active, nil
}

// RequireActive fails SystemPaused unless the domain is running
func (c *Controller) RequireActive() error {
	state, err := c.State()
	if err != nil {
		return err
	}
	if state == Paused {
		monitoring.RecordRejectedOp(monitoring.OpSystemPaused)
		return errors.ErrSystemPaused()
	}
	return nil
}

// Pause transitions Active→Paused. Owner-only.
func (c *Controller) Pause(caller string) error {
	if err := c.authority.RequireOwner(caller); err != nil {
		return err
	}
	state, err := c.State()
	if err != nil {
		return err
	}
	if state == Paused {
		return errors.ErrAlreadyPaused()
	}
	if err := c.stateStore.SetPaused(true); err != nil {
		return fmt.Errorf("failed to set pause flag: %w", err)
	}
	monitoring.SetPaused(true)
	logx.Warn("PAUSE", fmt.Sprintf("Domain paused by %s", caller))
	if c.eventRouter != nil {
		c.eventRouter.PublishSupplyEvent(events.NewPaused(caller))
	}
	return nil
}

// Unpause transitions Paused→Active. Owner-only.
func (c *Controller) Unpause(caller string) error {
	if err := c.authority.RequireOwner(caller); err != nil {
		return err
	}
	state, err := c.State()
	if err != nil {
		return err
	}
	if state == Active {
		return errors.ErrNotPaused()
	}
	if err := c.stateStore.SetPaused(false); err != nil {
		return fmt.Errorf("failed to clear pause flag: %w", err)
	}
	monitoring.SetPaused(false)
	logx.Info("PAUSE", fmt.Sprintf("Domain unpaused by %s", caller))
	if c.eventRouter != nil {
		c.eventRouter.PublishSupplyEvent(events.NewUnpaused(caller))
	}
	return nil
}
