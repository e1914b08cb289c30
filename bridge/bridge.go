package bridge

import (
	"fmt"
	"sync"

	"github.com/holiman/uint256"

	"omni/errors"
	"omni/events"
	"omni/ledger"
	"omni/logx"
	"omni/monitoring"
	"omni/pause"
	"omni/store"
)

// OutboundMessage is the packet handed to the transport: value debited on
// the origin domain, to be credited once on the destination domain.
type OutboundMessage struct {
	OriginDomain      uint32
	DestinationDomain uint32
	Recipient         string
	Amount            *uint256.Int
	Sequence          uint64
}

// Transport is the external messaging collaborator. It owns fee
// collection, authenticity and ordered-per-sender delivery; the bridge
// trusts it for all three. Deliver must collect the fee before or
// atomically with dispatch and fail otherwise.
type Transport interface {
	Quote(destinationDomain uint32, recipient string, amount *uint256.Int) (*uint256.Int, error)
	Deliver(msg *OutboundMessage) error
}

// Bridge implements the cross-chain transfer protocol of one domain:
// debit-and-dispatch on send, credit-on-verified-receipt on receive.
// The receive path deliberately bypasses the supply cap; the value was
// already accounted for by the matching debit on the origin domain.
type Bridge struct {
	mu          sync.Mutex
	localDomain uint32
	ledger      *ledger.Ledger
	peerStore   store.PeerStore
	pauser      *pause.Controller
	authority   pause.Authority
	transport   Transport
	eventRouter *events.EventRouter
}

func NewBridge(localDomain uint32, ld *ledger.Ledger, peerStore store.PeerStore, pauser *pause.Controller, authority pause.Authority, transport Transport, eventRouter *events.EventRouter) *Bridge {
	return &Bridge{
		localDomain: localDomain,
		ledger:      ld,
		peerStore:   peerStore,
		pauser:      pauser,
		authority:   authority,
		transport:   transport,
		eventRouter: eventRouter,
	}
}

// LocalDomain returns the identifier of this domain
func (b *Bridge) LocalDomain() uint32 {
	return b.localDomain
}

// SetPeer registers the trusted counterpart for a domain. Owner-only.
// No transfer to or from a domain is accepted before this.
func (b *Bridge) SetPeer(caller string, domain uint32, counterpart string) error {
	if err := b.authority.RequireOwner(caller); err != nil {
		return err
	}
	if err := b.peerStore.SetPeer(domain, counterpart); err != nil {
		return err
	}
	logx.Info("BRIDGE", fmt.Sprintf("Peer for domain %d set to %s", domain, counterpart))
	return nil
}

// Peer returns the configured counterpart for a domain
func (b *Bridge) Peer(domain uint32) (string, bool, error) {
	return b.peerStore.GetPeer(domain)
}

// Quote returns the transport fee for a prospective send. Read-only and
// callable even while paused.
func (b *Bridge) Quote(destinationDomain uint32, recipient string, amount *uint256.Int) (*uint256.Int, error) {
	if b.transport == nil {
		return nil, fmt.Errorf("no transport configured")
	}
	return b.transport.Quote(destinationDomain, recipient, amount)
}

// Send debits caller and dispatches an outbound message. The debit is a
// burn-equivalent: supply decreases here and reappears on the
// destination domain, so no cap is involved.
func (b *Bridge) Send(caller string, destinationDomain uint32, recipient string, amount *uint256.Int) (*OutboundMessage, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.pauser.RequireActive(); err != nil {
		return nil, err
	}
	if b.transport == nil {
		return nil, fmt.Errorf("no transport configured")
	}
	_, known, err := b.peerStore.GetPeer(destinationDomain)
	if err != nil {
		return nil, err
	}
	if !known {
		monitoring.RecordRejectedOp(monitoring.OpUnknownPeer)
		return nil, errors.ErrUnknownPeer()
	}

	balance, err := b.ledger.Balance(caller)
	if err != nil {
		return nil, err
	}
	if balance.Cmp(amount) < 0 {
		monitoring.RecordRejectedOp(monitoring.OpInsufficientBalance)
		return nil, errors.ErrInsufficientBalance()
	}

	// sequence counters may show gaps for failed sends; they only have
	// to be strictly increasing per destination
	sequence, err := b.peerStore.NextSequence(destinationDomain)
	if err != nil {
		return nil, err
	}

	msg := &OutboundMessage{
		OriginDomain:      b.localDomain,
		DestinationDomain: destinationDomain,
		Recipient:         recipient,
		Amount:            amount.Clone(),
		Sequence:          sequence,
	}

	// dispatch before committing the debit: a transport failure (fee not
	// covered, peer unreachable) must leave the ledger untouched
	if err := b.transport.Deliver(msg); err != nil {
		if errors.CodeOf(err) != errors.ErrCodeInternal {
			return nil, err
		}
		monitoring.RecordRejectedOp(monitoring.OpFeeNotPaid)
		return nil, fmt.Errorf("%w: %s", errors.ErrFeeNotPaid(), err)
	}

	if err := b.ledger.Debit(caller, amount); err != nil {
		return nil, err
	}

	logx.Info("BRIDGE", fmt.Sprintf("Sent %s to %s on domain %d (seq %d)", amount.Dec(), recipient, destinationDomain, sequence))
	if b.eventRouter != nil {
		b.eventRouter.PublishSupplyEvent(events.NewMessageSent(caller, destinationDomain, recipient, amount, sequence))
	}
	monitoring.IncreaseOutboundMessageCount(fmt.Sprintf("%d", destinationDomain))
	return msg, nil
}

// OnMessage credits a verified inbound message. Only the trusted
// transport may call this, after authenticity verification; the bridge
// re-checks nothing but the peer table. No cap applies here.
func (b *Bridge) OnMessage(originDomain uint32, recipient string, amount *uint256.Int, sequence uint64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.pauser.RequireActive(); err != nil {
		return err
	}
	_, known, err := b.peerStore.GetPeer(originDomain)
	if err != nil {
		return err
	}
	if !known {
		monitoring.RecordRejectedOp(monitoring.OpUnknownPeer)
		return errors.ErrUnknownPeer()
	}

	if err := b.ledger.Credit(recipient, amount); err != nil {
		return err
	}

	logx.Info("BRIDGE", fmt.Sprintf("Received %s for %s from domain %d (seq %d)", amount.Dec(), recipient, originDomain, sequence))
	if b.eventRouter != nil {
		b.eventRouter.PublishSupplyEvent(events.NewMessageReceived(originDomain, recipient, amount, sequence))
	}
	monitoring.IncreaseInboundMessageCount(fmt.Sprintf("%d", originDomain))
	return nil
}
