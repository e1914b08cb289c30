package jsonrpc

import (
	"context"
	"net/http"

	"github.com/creachadair/jrpc2"
	"github.com/creachadair/jrpc2/handler"
	"github.com/creachadair/jrpc2/jhttp"
	"github.com/holiman/uint256"

	"omni/errors"
	"omni/exception"
	"omni/logx"
	"omni/token"
)

// --- Params/Results ---

type getBalanceRequest struct {
	Address string `json:"address"`
}

type getBalanceResponse struct {
	Address string `json:"address"`
	Balance string `json:"balance"`
}

type getSupplyResponse struct {
	TotalSupply string `json:"total_supply"`
	MaxSupply   string `json:"max_supply"`
}

type quoteSendRequest struct {
	DestinationDomain uint32 `json:"destination_domain"`
	Recipient         string `json:"recipient"`
	Amount            string `json:"amount"`
}

type quoteSendResponse struct {
	Fee string `json:"fee"`
}

type nodeStatusResponse struct {
	TokenName   string `json:"token_name"`
	TokenSymbol string `json:"token_symbol"`
	LocalDomain uint32 `json:"local_domain"`
	Owner       string `json:"owner"`
	Paused      bool   `json:"paused"`
}

func toJRPC2Error(err error) error {
	var le *errors.LedgerError
	if e, ok := err.(*errors.LedgerError); ok {
		le = e
	}
	if le != nil {
		return jrpc2.Errorf(jrpc2.InvalidParams, "%s", le.Message).WithData(le)
	}
	return jrpc2.Errorf(jrpc2.InternalError, "%s", err.Error())
}

// Server exposes the read-only surface of a domain over JSON-RPC.
// Mutations never go through here; they belong to the serialized entry
// points behind the token facade.
type Server struct {
	addr  string
	token *token.Token
}

func NewServer(addr string, tok *token.Token) *Server {
	return &Server{
		addr:  addr,
		token: tok,
	}
}

func (s *Server) Start() {
	methods := s.buildMethodMap()
	jh := jhttp.NewBridge(methods, &jhttp.BridgeOptions{Server: &jrpc2.ServerOptions{}})

	mux := http.NewServeMux()
	mux.Handle("/", jh)

	logx.Info("JSONRPC", "Serving on ", s.addr)
	exception.SafeGo("JSONRPCServe", func() {
		if err := http.ListenAndServe(s.addr, mux); err != nil {
			logx.Error("JSONRPC", "Server stopped: ", err)
		}
	})
}

// Build jrpc2 method map
func (s *Server) buildMethodMap() handler.Map {
	return handler.Map{
		"ledger.balance": handler.New(func(ctx context.Context, p getBalanceRequest) (*getBalanceResponse, error) {
			balance, err := s.token.BalanceOf(p.Address)
			if err != nil {
				return nil, toJRPC2Error(err)
			}
			return &getBalanceResponse{
				Address: p.Address,
				Balance: balance.Dec(),
			}, nil
		}),
		"ledger.supply": handler.New(func(ctx context.Context) (*getSupplyResponse, error) {
			totalSupply, err := s.token.TotalSupply()
			if err != nil {
				return nil, toJRPC2Error(err)
			}
			maxSupply, err := s.token.MaxSupply()
			if err != nil {
				return nil, toJRPC2Error(err)
			}
			return &getSupplyResponse{
				TotalSupply: totalSupply.Dec(),
				MaxSupply:   maxSupply.Dec(),
			}, nil
		}),
		"bridge.quote": handler.New(func(ctx context.Context, p quoteSendRequest) (*quoteSendResponse, error) {
			amount, err := uint256.FromDecimal(p.Amount)
			if err != nil {
				return nil, jrpc2.Errorf(jrpc2.InvalidParams, "invalid amount: %v", err)
			}
			fee, err := s.token.QuoteSend(p.DestinationDomain, p.Recipient, amount)
			if err != nil {
				return nil, toJRPC2Error(err)
			}
			return &quoteSendResponse{Fee: fee.Dec()}, nil
		}),
		"node.status": handler.New(func(ctx context.Context) (*nodeStatusResponse, error) {
			name, symbol, err := s.token.Meta()
			if err != nil {
				return nil, toJRPC2Error(err)
			}
			owner, err := s.token.Owner()
			if err != nil {
				return nil, toJRPC2Error(err)
			}
			paused, err := s.token.Paused()
			if err != nil {
				return nil, toJRPC2Error(err)
			}
			return &nodeStatusResponse{
				TokenName:   name,
				TokenSymbol: symbol,
				LocalDomain: s.token.Bridge().LocalDomain(),
				Owner:       owner,
				Paused:      paused,
			}, nil
		}),
	}
}
