package events

import (
	"time"

	"github.com/holiman/uint256"
)

// EventType is an enum-like string type for supply events
type EventType string

const (
	EventTransferred     EventType = "Transferred"
	EventMinted          EventType = "Minted"
	EventBurned          EventType = "Burned"
	EventMessageSent     EventType = "MessageSent"
	EventMessageReceived EventType = "MessageReceived"
	EventPaused          EventType = "Paused"
	EventUnpaused        EventType = "Unpaused"
	EventRoleChanged     EventType = "RoleChanged"
)

// SupplyEvent represents any observable supply mutation or control transition
type SupplyEvent interface {
	Type() EventType
	Timestamp() time.Time
}

// Transferred event when balance moves between two addresses on this domain
type Transferred struct {
	from      string
	to        string
	amount    *uint256.Int
	timestamp time.Time
}

func NewTransferred(from, to string, amount *uint256.Int) *Transferred {
	return &Transferred{
		from:      from,
		to:        to,
		amount:    amount.Clone(),
		timestamp: time.Now(),
	}
}

func (e *Transferred) Type() EventType       { return EventTransferred }
func (e *Transferred) Timestamp() time.Time  { return e.timestamp }
func (e *Transferred) From() string          { return e.from }
func (e *Transferred) To() string            { return e.to }
func (e *Transferred) Amount() *uint256.Int  { return e.amount }

// Minted event when privileged minting increases local supply
type Minted struct {
	minter    string
	to        string
	amount    *uint256.Int
	timestamp time.Time
}

func NewMinted(minter, to string, amount *uint256.Int) *Minted {
	return &Minted{
		minter:    minter,
		to:        to,
		amount:    amount.Clone(),
		timestamp: time.Now(),
	}
}

func (e *Minted) Type() EventType      { return EventMinted }
func (e *Minted) Timestamp() time.Time { return e.timestamp }
func (e *Minted) Minter() string       { return e.minter }
func (e *Minted) To() string           { return e.to }
func (e *Minted) Amount() *uint256.Int { return e.amount }

// Burned event when privileged burning decreases local supply
type Burned struct {
	burner    string
	from      string
	amount    *uint256.Int
	timestamp time.Time
}

func NewBurned(burner, from string, amount *uint256.Int) *Burned {
	return &Burned{
		burner:    burner,
		from:      from,
		amount:    amount.Clone(),
		timestamp: time.Now(),
	}
}

func (e *Burned) Type() EventType      { return EventBurned }
func (e *Burned) Timestamp() time.Time { return e.timestamp }
func (e *Burned) Burner() string       { return e.burner }
func (e *Burned) From() string         { return e.from }
func (e *Burned) Amount() *uint256.Int { return e.amount }

// MessageSent event when a cross-chain debit dispatches an outbound message
type MessageSent struct {
	sender            string
	destinationDomain uint32
	recipient         string
	amount            *uint256.Int
	sequence          uint64
	timestamp         time.Time
}

func NewMessageSent(sender string, destinationDomain uint32, recipient string, amount *uint256.Int, sequence uint64) *MessageSent {
	return &MessageSent{
		sender:            sender,
		destinationDomain: destinationDomain,
		recipient:         recipient,
		amount:            amount.Clone(),
		sequence:          sequence,
		timestamp:         time.Now(),
	}
}

func (e *MessageSent) Type() EventType           { return EventMessageSent }
func (e *MessageSent) Timestamp() time.Time      { return e.timestamp }
func (e *MessageSent) Sender() string            { return e.sender }
func (e *MessageSent) DestinationDomain() uint32 { return e.destinationDomain }
func (e *MessageSent) Recipient() string         { return e.recipient }
func (e *MessageSent) Amount() *uint256.Int      { return e.amount }
func (e *MessageSent) Sequence() uint64          { return e.sequence }

// MessageReceived event when a verified inbound message credits this domain
type MessageReceived struct {
	originDomain uint32
	recipient    string
	amount       *uint256.Int
	sequence     uint64
	timestamp    time.Time
}

func NewMessageReceived(originDomain uint32, recipient string, amount *uint256.Int, sequence uint64) *MessageReceived {
	return &MessageReceived{
		originDomain: originDomain,
		recipient:    recipient,
		amount:       amount.Clone(),
		sequence:     sequence,
		timestamp:    time.Now(),
	}
}

func (e *MessageReceived) Type() EventType      { return EventMessageReceived }
func (e *MessageReceived) Timestamp() time.Time { return e.timestamp }
func (e *MessageReceived) OriginDomain() uint32 { return e.originDomain }
func (e *MessageReceived) Recipient() string    { return e.recipient }
func (e *MessageReceived) Amount() *uint256.Int { return e.amount }
func (e *MessageReceived) Sequence() uint64     { return e.sequence }

// Paused event when the owner pauses the domain
type Paused struct {
	owner     string
	timestamp time.Time
}

func NewPaused(owner string) *Paused {
	return &Paused{owner: owner, timestamp: time.Now()}
}

func (e *Paused) Type() EventType      { return EventPaused }
func (e *Paused) Timestamp() time.Time { return e.timestamp }
func (e *Paused) Owner() string        { return e.owner }

// Unpaused event when the owner resumes the domain
type Unpaused struct {
	owner     string
	timestamp time.Time
}

func NewUnpaused(owner string) *Unpaused {
	return &Unpaused{owner: owner, timestamp: time.Now()}
}

func (e *Unpaused) Type() EventType      { return EventUnpaused }
func (e *Unpaused) Timestamp() time.Time { return e.timestamp }
func (e *Unpaused) Owner() string        { return e.owner }

// RoleChanged event when the owner toggles a minter or burner flag
type RoleChanged struct {
	role      string
	address   string
	enabled   bool
	timestamp time.Time
}

func NewRoleChanged(role, address string, enabled bool) *RoleChanged {
	return &RoleChanged{
		role:      role,
		address:   address,
		enabled:   enabled,
		timestamp: time.Now(),
	}
}

func (e *RoleChanged) Type() EventType      { return EventRoleChanged }
func (e *RoleChanged) Timestamp() time.Time { return e.timestamp }
func (e *RoleChanged) Role() string         { return e.role }
func (e *RoleChanged) Address() string      { return e.address }
func (e *RoleChanged) Enabled() bool        { return e.enabled }
