package network

import (
	"context"
	"crypto/ed25519"
	"fmt"
	"sync"

	"github.com/holiman/uint256"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"omni/bridge"
	"omni/logx"
	pb "omni/proto"
	"omni/utils"
)

// GRPCTransport implements bridge.Transport by dialing the destination
// domain's messaging server. The relayer key signs every dispatched
// packet; the fee quoted by the destination must be covered by maxFee or
// the dispatch fails before any packet leaves.
type GRPCTransport struct {
	mu         sync.Mutex
	endpoints  map[uint32]string
	conns      map[uint32]*grpc.ClientConn
	relayerKey ed25519.PrivateKey
	maxFee     *uint256.Int
}

func NewGRPCTransport(endpoints map[uint32]string, relayerKey ed25519.PrivateKey, maxFee *uint256.Int) *GRPCTransport {
	eps := make(map[uint32]string, len(endpoints))
	for domain, ep := range endpoints {
		eps[domain] = ep
	}
	return &GRPCTransport{
		endpoints:  eps,
		conns:      make(map[uint32]*grpc.ClientConn),
		relayerKey: relayerKey,
		maxFee:     maxFee.Clone(),
	}
}

func (t *GRPCTransport) client(domain uint32) (pb.MessagingClient, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if conn, ok := t.conns[domain]; ok {
		return pb.NewMessagingClient(conn), nil
	}
	endpoint, ok := t.endpoints[domain]
	if !ok {
		return nil, fmt.Errorf("no endpoint configured for domain %d", domain)
	}
	conn, err := grpc.NewClient(endpoint,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.MaxCallRecvMsgSize(GRPCMaxRecvMsgSize)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to dial domain %d at %s: %w", domain, endpoint, err)
	}
	t.conns[domain] = conn
	return pb.NewMessagingClient(conn), nil
}

// Quote asks the destination domain for the current message fee
func (t *GRPCTransport) Quote(destinationDomain uint32, recipient string, amount *uint256.Int) (*uint256.Int, error) {
	client, err := t.client(destinationDomain)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), GRPCDefaultDeadline)
	defer cancel()

	resp, err := client.Quote(ctx, &pb.QuoteRequest{
		DestinationDomain: destinationDomain,
		Recipient:         recipient,
		Amount:            utils.Uint256ToString(amount),
	})
	if err != nil {
		return nil, fmt.Errorf("quote failed for domain %d: %w", destinationDomain, err)
	}
	fee, err := uint256.FromDecimal(resp.GetFee())
	if err != nil {
		return nil, fmt.Errorf("invalid fee from domain %d: %w", destinationDomain, err)
	}
	return fee, nil
}

// Deliver quotes, checks the fee budget and dispatches in one step so a
// send either pays and goes out or fails without side effects
func (t *GRPCTransport) Deliver(msg *bridge.OutboundMessage) error {
	fee, err := t.Quote(msg.DestinationDomain, msg.Recipient, msg.Amount)
	if err != nil {
		return err
	}
	if fee.Cmp(t.maxFee) > 0 {
		return fmt.Errorf("fee %s exceeds budget %s", fee.Dec(), t.maxFee.Dec())
	}

	digest := MessageDigest(msg)
	sig := ed25519.Sign(t.relayerKey, digest[:])

	client, err := t.client(msg.DestinationDomain)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), GRPCDefaultDeadline)
	defer cancel()

	resp, err := client.Deliver(ctx, &pb.DeliverRequest{
		Message: &pb.CrossChainMessage{
			OriginDomain:      msg.OriginDomain,
			DestinationDomain: msg.DestinationDomain,
			Recipient:         msg.Recipient,
			Amount:            utils.Uint256ToString(msg.Amount),
			Sequence:          msg.Sequence,
		},
		RelayerSig: sig,
		RelayerPub: t.relayerKey.Public().(ed25519.PublicKey),
	})
	if err != nil {
		return fmt.Errorf("deliver failed for domain %d: %w", msg.DestinationDomain, err)
	}
	if !resp.GetOk() {
		return fmt.Errorf("deliver rejected by domain %d: %s", msg.DestinationDomain, resp.GetError())
	}

	logx.Info("NETWORK", fmt.Sprintf("Delivered seq %d to domain %d", msg.Sequence, msg.DestinationDomain))
	return nil
}

// Close tears down all cached connections
func (t *GRPCTransport) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for domain, conn := range t.conns {
		if err := conn.Close(); err != nil {
			logx.Warn("NETWORK", fmt.Sprintf("Failed to close connection to domain %d: %v", domain, err))
		}
	}
	t.conns = make(map[uint32]*grpc.ClientConn)
}
