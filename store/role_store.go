package store

import (
	"fmt"
	"sync"

	"omni/db"
)

// Role names as persisted in key prefixes
const (
	RoleMinter = "minter"
	RoleBurner = "burner"
)

// RoleStore persists the minter and burner boolean sets. The sets are
// unordered; no count limit, no expiry.
type RoleStore interface {
	SetRole(role, addr string, enabled bool) error
	HasRole(role, addr string) (bool, error)
}

type GenericRoleStore struct {
	mu         sync.RWMutex
	dbProvider db.DatabaseProvider
}

func NewGenericRoleStore(dbProvider db.DatabaseProvider) (*GenericRoleStore, error) {
	if dbProvider == nil {
		return nil, fmt.Errorf("provider cannot be nil")
	}
	return &GenericRoleStore{dbProvider: dbProvider}, nil
}

func roleKey(role, addr string) ([]byte, error) {
	switch role {
	case RoleMinter:
		return []byte(PrefixMinter + addr), nil
	case RoleBurner:
		return []byte(PrefixBurner + addr), nil
	}
	return nil, fmt.Errorf("unknown role %q", role)
}

// SetRole toggles role membership for addr. Re-assignment is idempotent.
func (rs *GenericRoleStore) SetRole(role, addr string, enabled bool) error {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	key, err := roleKey(role, addr)
	if err != nil {
		return err
	}
	if !enabled {
		if err := rs.dbProvider.Delete(key); err != nil {
			return fmt.Errorf("failed to revoke %s for %s: %w", role, addr, err)
		}
		return nil
	}
	if err := rs.dbProvider.Put(key, []byte{1}); err != nil {
		return fmt.Errorf("failed to grant %s for %s: %w", role, addr, err)
	}
	return nil
}

func (rs *GenericRoleStore) HasRole(role, addr string) (bool, error) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	key, err := roleKey(role, addr)
	if err != nil {
		return false, err
	}
	has, err := rs.dbProvider.Has(key)
	if err != nil {
		return false, fmt.Errorf("failed to check %s for %s: %w", role, addr, err)
	}
	return has, nil
}
