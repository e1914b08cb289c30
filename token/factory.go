package token

import (
	"fmt"

	"omni/bridge"
	"omni/db"
	"omni/events"
	"omni/ledger"
	"omni/pause"
	"omni/roles"
	"omni/schema"
	"omni/store"
	"omni/supply"
)

// BuildDomain wires a full domain on top of one database provider.
// The transport may be nil for domains that never send; OnMessage and
// local operations still work.
func BuildDomain(localDomain uint32, provider db.DatabaseProvider, transport bridge.Transport, eventRouter *events.EventRouter) (*Token, error) {
	schemaMgr := schema.NewManager(provider, nil)
	if err := schemaMgr.Ensure(); err != nil {
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	accountStore, err := store.NewGenericAccountStore(provider)
	if err != nil {
		return nil, fmt.Errorf("failed to build account store: %w", err)
	}
	stateStore, err := store.NewGenericStateStore(provider)
	if err != nil {
		return nil, fmt.Errorf("failed to build state store: %w", err)
	}
	roleStore, err := store.NewGenericRoleStore(provider)
	if err != nil {
		return nil, fmt.Errorf("failed to build role store: %w", err)
	}
	peerStore, err := store.NewGenericPeerStore(provider)
	if err != nil {
		return nil, fmt.Errorf("failed to build peer store: %w", err)
	}

	ld := ledger.NewLedger(accountStore, stateStore, eventRouter)
	registry := roles.NewRegistry(stateStore, roleStore, eventRouter)
	governor := supply.NewGovernor(ld, registry, stateStore, eventRouter)
	pauser := pause.NewController(stateStore, registry, eventRouter)
	br := bridge.NewBridge(localDomain, ld, peerStore, pauser, registry, transport, eventRouter)

	return NewToken(ld, registry, governor, pauser, br, stateStore, eventRouter), nil
}
