package schema

import (
	"encoding/binary"
	"fmt"

	"omni/db"
	"omni/logx"
)

// CurrentVersion is the schema version this build reads and writes
const CurrentVersion uint32 = 1

// ReservedSize is a fixed padding region persisted after the header
// fields. Future versions may claim bytes from it without shifting the
// offsets of existing fields, which is what lets state survive an
// in-place code upgrade.
const ReservedSize = 64

const headerKey = "schema:header"

// Header is the versioned root record of a domain's persisted state
type Header struct {
	Version  uint32
	Reserved [ReservedSize]byte
}

func (h *Header) encode() []byte {
	out := make([]byte, 4+ReservedSize)
	binary.BigEndian.PutUint32(out[:4], h.Version)
	copy(out[4:], h.Reserved[:])
	return out
}

func decodeHeader(data []byte) (*Header, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("schema header too short: %d bytes", len(data))
	}
	h := &Header{Version: binary.BigEndian.Uint32(data[:4])}
	// tolerate short reserved regions written by older versions
	copy(h.Reserved[:], data[4:])
	return h, nil
}

// Migration transforms persisted state from one schema version to the next
type Migration struct {
	From  uint32
	To    uint32
	Apply func(provider db.DatabaseProvider) error
}

// Manager owns the schema header and runs explicit migrations between
// versions. Implicit slot reuse is not a thing here: every version bump
// is a registered data transformation.
type Manager struct {
	provider   db.DatabaseProvider
	migrations []Migration
}

func NewManager(provider db.DatabaseProvider, migrations []Migration) *Manager {
	return &Manager{provider: provider, migrations: migrations}
}

// ReadHeader returns the persisted header, or nil if none exists yet
func (m *Manager) ReadHeader() (*Header, error) {
	data, err := m.provider.Get([]byte(headerKey))
	if err != nil {
		return nil, fmt.Errorf("failed to read schema header: %w", err)
	}
	if data == nil {
		return nil, nil
	}
	return decodeHeader(data)
}

// Ensure brings the persisted state to CurrentVersion. A fresh database
// is stamped directly; an older one is migrated step by step; a newer
// one is refused rather than silently reinterpreted.
func (m *Manager) Ensure() error {
	header, err := m.ReadHeader()
	if err != nil {
		return err
	}
	if header == nil {
		return m.writeVersion(CurrentVersion)
	}
	if header.Version == CurrentVersion {
		return nil
	}
	if header.Version > CurrentVersion {
		return fmt.Errorf("database schema version %d is newer than supported version %d", header.Version, CurrentVersion)
	}

	version := header.Version
	for version < CurrentVersion {
		migration, ok := m.findMigration(version)
		if !ok {
			return fmt.Errorf("no migration registered from schema version %d", version)
		}
		logx.Info("SCHEMA", fmt.Sprintf("Migrating schema %d -> %d", migration.From, migration.To))
		if err := migration.Apply(m.provider); err != nil {
			return fmt.Errorf("migration %d -> %d failed: %w", migration.From, migration.To, err)
		}
		if err := m.writeVersion(migration.To); err != nil {
			return err
		}
		version = migration.To
	}
	return nil
}

func (m *Manager) findMigration(from uint32) (Migration, bool) {
	for _, migration := range m.migrations {
		if migration.From == from {
			return migration, true
		}
	}
	return Migration{}, false
}

func (m *Manager) writeVersion(version uint32) error {
	h := &Header{Version: version}
	if err := m.provider.Put([]byte(headerKey), h.encode()); err != nil {
		return fmt.Errorf("failed to write schema header: %w", err)
	}
	return nil
}
