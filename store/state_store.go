package store

import (
	"fmt"
	"sync"

	"github.com/holiman/uint256"

	"omni/db"
	"omni/utils"
)

// StateStore persists the per-domain singleton state: owner authority,
// pause flag, token metadata, supply counters and the initialized marker.
type StateStore interface {
	SetOwner(addr string) error
	GetOwner() (string, error)
	SetPaused(paused bool) error
	GetPaused() (bool, error)
	SetInitialized() error
	IsInitialized() (bool, error)
	SetTokenMeta(name, symbol string) error
	GetTokenMeta() (name string, symbol string, err error)
	SetMaxSupply(v *uint256.Int) error
	GetMaxSupply() (*uint256.Int, error)
	SetTotalSupply(v *uint256.Int) error
	GetTotalSupply() (*uint256.Int, error)
}

type GenericStateStore struct {
	mu         sync.RWMutex
	dbProvider db.DatabaseProvider
}

func NewGenericStateStore(dbProvider db.DatabaseProvider) (*GenericStateStore, error) {
	if dbProvider == nil {
		return nil, fmt.Errorf("provider cannot be nil")
	}
	return &GenericStateStore{dbProvider: dbProvider}, nil
}

func (ss *GenericStateStore) putString(key, value string) error {
	if err := ss.dbProvider.Put([]byte(key), []byte(value)); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (ss *GenericStateStore) getString(key string) (string, error) {
	data, err := ss.dbProvider.Get([]byte(key))
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", key, err)
	}
	return string(data), nil
}

func (ss *GenericStateStore) SetOwner(addr string) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.putString(StateKeyOwner, addr)
}

func (ss *GenericStateStore) GetOwner() (string, error) {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return ss.getString(StateKeyOwner)
}

func (ss *GenericStateStore) SetPaused(paused bool) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	v := "0"
	if paused {
		v = "1"
	}
	return ss.putString(StateKeyPaused, v)
}

func (ss *GenericStateStore) GetPaused() (bool, error) {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	v, err := ss.getString(StateKeyPaused)
	if err != nil {
		return false, err
	}
	return v == "1", nil
}

func (ss *GenericStateStore) SetInitialized() error {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.putString(StateKeyInitialized, "1")
}

func (ss *GenericStateStore) IsInitialized() (bool, error) {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	v, err := ss.getString(StateKeyInitialized)
	if err != nil {
		return false, err
	}
	return v == "1", nil
}

func (ss *GenericStateStore) SetTokenMeta(name, symbol string) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	if err := ss.putString(StateKeyTokenName, name); err != nil {
		return err
	}
	return ss.putString(StateKeyTokenSymbol, symbol)
}

func (ss *GenericStateStore) GetTokenMeta() (string, string, error) {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	name, err := ss.getString(StateKeyTokenName)
	if err != nil {
		return "", "", err
	}
	symbol, err := ss.getString(StateKeyTokenSymbol)
	if err != nil {
		return "", "", err
	}
	return name, symbol, nil
}

func (ss *GenericStateStore) SetMaxSupply(v *uint256.Int) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.putString(StateKeyMaxSupply, utils.Uint256ToString(v))
}

func (ss *GenericStateStore) GetMaxSupply() (*uint256.Int, error) {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	v, err := ss.getString(StateKeyMaxSupply)
	if err != nil {
		return nil, err
	}
	return utils.Uint256FromString(v), nil
}

func (ss *GenericStateStore) SetTotalSupply(v *uint256.Int) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.putString(StateKeyTotalSupply, utils.Uint256ToString(v))
}

func (ss *GenericStateStore) GetTotalSupply() (*uint256.Int, error) {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	v, err := ss.getString(StateKeyTotalSupply)
	if err != nil {
		return nil, err
	}
	return utils.Uint256FromString(v), nil
}
