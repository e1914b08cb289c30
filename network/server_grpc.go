package network

import (
	"context"
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
	"net"
	"time"

	"github.com/holiman/uint256"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"omni/bridge"
	"omni/exception"
	"omni/logx"
	pb "omni/proto"
	"omni/token"
)

// server is the destination-domain end of the messaging transport. It
// verifies the relayer signature before handing the packet to the
// bridge's receive path; the bridge itself only re-checks the peer table.
type server struct {
	pb.UnimplementedMessagingServer
	token           *token.Token
	flatFee         *uint256.Int
	trustedRelayers map[string]bool // hex-encoded ed25519 public keys
}

func NewGRPCServer(tok *token.Token, flatFee *uint256.Int, relayerPubKeys []string) *grpc.Server {
	trusted := make(map[string]bool, len(relayerPubKeys))
	for _, key := range relayerPubKeys {
		trusted[key] = true
	}

	s := &server{
		token:           tok,
		flatFee:         flatFee.Clone(),
		trustedRelayers: trusted,
	}

	unaryInterceptors := []grpc.UnaryServerInterceptor{
		defaultDeadlineUnaryInterceptor(GRPCDefaultDeadline),
	}

	grpcSrv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(unaryInterceptors...),
		grpc.MaxRecvMsgSize(GRPCMaxRecvMsgSize),
		grpc.MaxSendMsgSize(GRPCMaxSendMsgSize),
	)
	pb.RegisterMessagingServer(grpcSrv, s)
	return grpcSrv
}

// Serve listens on addr and serves until the server is stopped
func Serve(grpcSrv *grpc.Server, addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	logx.Info("NETWORK", fmt.Sprintf("Messaging server listening on %s", addr))
	exception.SafeGo("GRPCServe", func() {
		if err := grpcSrv.Serve(lis); err != nil {
			logx.Error("NETWORK", fmt.Sprintf("gRPC server stopped: %v", err))
		}
	})
	return nil
}

func (s *server) Deliver(ctx context.Context, req *pb.DeliverRequest) (*pb.DeliverResponse, error) {
	msg := req.GetMessage()
	if msg == nil {
		return nil, status.Errorf(codes.InvalidArgument, "missing message")
	}
	if msg.GetDestinationDomain() != s.token.Bridge().LocalDomain() {
		return nil, status.Errorf(codes.InvalidArgument, "message for domain %d delivered to domain %d", msg.GetDestinationDomain(), s.token.Bridge().LocalDomain())
	}

	amount, err := uint256.FromDecimal(msg.GetAmount())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid amount: %v", err)
	}

	// authenticity: only packets signed by a trusted relayer reach the bridge
	if !s.trustedRelayers[hex.EncodeToString(req.GetRelayerPub())] {
		logx.Warn("NETWORK", "Deliver from untrusted relayer ", hex.EncodeToString(req.GetRelayerPub()))
		return nil, status.Errorf(codes.PermissionDenied, "untrusted relayer")
	}
	digest := MessageDigest(&bridge.OutboundMessage{
		OriginDomain:      msg.GetOriginDomain(),
		DestinationDomain: msg.GetDestinationDomain(),
		Recipient:         msg.GetRecipient(),
		Amount:            amount,
		Sequence:          msg.GetSequence(),
	})
	if !ed25519.Verify(req.GetRelayerPub(), digest[:], req.GetRelayerSig()) {
		return nil, status.Errorf(codes.PermissionDenied, "invalid relayer signature")
	}

	if err := s.token.OnMessage(msg.GetOriginDomain(), msg.GetRecipient(), amount, msg.GetSequence()); err != nil {
		logx.Warn("NETWORK", fmt.Sprintf("Deliver rejected: %v", err))
		return &pb.DeliverResponse{Ok: false, Error: err.Error()}, nil
	}
	return &pb.DeliverResponse{Ok: true}, nil
}

func (s *server) Quote(ctx context.Context, req *pb.QuoteRequest) (*pb.QuoteResponse, error) {
	// flat fee per message; quoting is advisory and never touches state
	return &pb.QuoteResponse{Fee: s.flatFee.Dec()}, nil
}

func defaultDeadlineUnaryInterceptor(defaultTimeout time.Duration) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if deadline, ok := ctx.Deadline(); !ok || time.Until(deadline) <= 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, defaultTimeout)
			defer cancel()
		}
		return handler(ctx, req)
	}
}
