package roles

import (
	"fmt"

	"omni/errors"
	"omni/events"
	"omni/logx"
	"omni/store"
)

// Registry is the role registry of one domain: two independent boolean
// sets (minters, burners) plus the owner authority that administers them.
// The zero address is a permitted role holder; the registry does not
// police address validity.
type Registry struct {
	stateStore  store.StateStore
	roleStore   store.RoleStore
	eventRouter *events.EventRouter
}

func NewRegistry(stateStore store.StateStore, roleStore store.RoleStore, eventRouter *events.EventRouter) *Registry {
	return &Registry{
		stateStore:  stateStore,
		roleStore:   roleStore,
		eventRouter: eventRouter,
	}
}

// Owner returns the current owner authority
func (r *Registry) Owner() (string, error) {
	return r.stateStore.GetOwner()
}

// RequireOwner fails Unauthorized unless caller is the owner
func (r *Registry) RequireOwner(caller string) error {
	owner, err := r.stateStore.GetOwner()
	if err != nil {
		return fmt.Errorf("failed to read owner: %w", err)
	}
	if caller != owner {
		return errors.ErrUnauthorized()
	}
	return nil
}

// TransferOwnership hands the owner authority to newOwner. Owner-only.
func (r *Registry) TransferOwnership(caller, newOwner string) error {
	if err := r.RequireOwner(caller); err != nil {
		return err
	}
	if err := r.stateStore.SetOwner(newOwner); err != nil {
		return fmt.Errorf("failed to set owner: %w", err)
	}
	logx.Info("ROLES", fmt.Sprintf("Ownership transferred from %s to %s", caller, newOwner))
	return nil
}

// SetMinter toggles minter membership for addr. Owner-only, idempotent.
func (r *Registry) SetMinter(caller, addr string, enabled bool) error {
	return r.setRole(caller, store.RoleMinter, addr, enabled)
}

// SetBurner toggles burner membership for addr. Owner-only, idempotent.
func (r *Registry) SetBurner(caller, addr string, enabled bool) error {
	return r.setRole(caller, store.RoleBurner, addr, enabled)
}

func (r *Registry) setRole(caller, role, addr string, enabled bool) error {
	if err := r.RequireOwner(caller); err != nil {
		return err
	}
	if err := r.roleStore.SetRole(role, addr, enabled); err != nil {
		return err
	}
	logx.Info("ROLES", fmt.Sprintf("Role %s for %s set to %t", role, addr, enabled))
	if r.eventRouter != nil {
		r.eventRouter.PublishSupplyEvent(events.NewRoleChanged(role, addr, enabled))
	}
	return nil
}

func (r *Registry) IsMinter(addr string) (bool, error) {
	return r.roleStore.HasRole(store.RoleMinter, addr)
}

func (r *Registry) IsBurner(addr string) (bool, error) {
	return r.roleStore.HasRole(store.RoleBurner, addr)
}

// GrantGenesisRoles pre-authorizes the initial delegate as both minter
// and burner without an owner check. Only the one-time initializer may
// call this, before the domain accepts external calls.
func (r *Registry) GrantGenesisRoles(delegate string) error {
	if err := r.roleStore.SetRole(store.RoleMinter, delegate, true); err != nil {
		return err
	}
	return r.roleStore.SetRole(store.RoleBurner, delegate, true)
}
