package store

import (
	"encoding/binary"
	"fmt"
	"sync"

	"omni/db"
)

// PeerStore persists the domain/peer table and the per-destination outbound
// sequence counters.
// Keys:
// - PrefixPeer + <4-byte big-endian domain id> => counterpart identifier
// - PrefixSequence + <4-byte big-endian domain id> => 8-byte big-endian counter
type PeerStore interface {
	SetPeer(domain uint32, counterpart string) error
	GetPeer(domain uint32) (string, bool, error)
	NextSequence(domain uint32) (uint64, error)
	CurrentSequence(domain uint32) (uint64, error)
}

type GenericPeerStore struct {
	mu         sync.Mutex
	dbProvider db.DatabaseProvider
}

func NewGenericPeerStore(dbProvider db.DatabaseProvider) (*GenericPeerStore, error) {
	if dbProvider == nil {
		return nil, fmt.Errorf("provider cannot be nil")
	}
	return &GenericPeerStore{dbProvider: dbProvider}, nil
}

func (ps *GenericPeerStore) peerKey(domain uint32) []byte {
	key := make([]byte, len(PrefixPeer)+4)
	copy(key, PrefixPeer)
	binary.BigEndian.PutUint32(key[len(PrefixPeer):], domain)
	return key
}

func (ps *GenericPeerStore) sequenceKey(domain uint32) []byte {
	key := make([]byte, len(PrefixSequence)+4)
	copy(key, PrefixSequence)
	binary.BigEndian.PutUint32(key[len(PrefixSequence):], domain)
	return key
}

func (ps *GenericPeerStore) SetPeer(domain uint32, counterpart string) error {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	if err := ps.dbProvider.Put(ps.peerKey(domain), []byte(counterpart)); err != nil {
		return fmt.Errorf("failed to store peer for domain %d: %w", domain, err)
	}
	return nil
}

func (ps *GenericPeerStore) GetPeer(domain uint32) (string, bool, error) {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	value, err := ps.dbProvider.Get(ps.peerKey(domain))
	if err != nil {
		return "", false, fmt.Errorf("failed to get peer for domain %d: %w", domain, err)
	}
	if value == nil {
		return "", false, nil
	}
	return string(value), true, nil
}

// NextSequence increments and returns the outbound counter for domain.
// The first sequence handed out is 1.
func (ps *GenericPeerStore) NextSequence(domain uint32) (uint64, error) {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	current, err := ps.readSequence(domain)
	if err != nil {
		return 0, err
	}
	next := current + 1

	value := make([]byte, 8)
	binary.BigEndian.PutUint64(value, next)
	if err := ps.dbProvider.Put(ps.sequenceKey(domain), value); err != nil {
		return 0, fmt.Errorf("failed to store sequence for domain %d: %w", domain, err)
	}
	return next, nil
}

func (ps *GenericPeerStore) CurrentSequence(domain uint32) (uint64, error) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	return ps.readSequence(domain)
}

func (ps *GenericPeerStore) readSequence(domain uint32) (uint64, error) {
	value, err := ps.dbProvider.Get(ps.sequenceKey(domain))
	if err != nil {
		return 0, fmt.Errorf("failed to get sequence for domain %d: %w", domain, err)
	}
	if value == nil {
		return 0, nil
	}
	if len(value) != 8 {
		return 0, fmt.Errorf("invalid sequence length for domain %d: %d", domain, len(value))
	}
	return binary.BigEndian.Uint64(value), nil
}
