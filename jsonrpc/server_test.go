package jsonrpc

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/creachadair/jrpc2/jhttp"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"omni/db"
	"omni/jsonx"
	"omni/token"
)

type rpcResponse struct {
	Result jsonx.RawMessage `json:"result"`
	Error  *struct {
		Code    int              `json:"code"`
		Message string           `json:"message"`
		Data    jsonx.RawMessage `json:"data"`
	} `json:"error"`
}

func newRPCTestServer(t *testing.T) (*httptest.Server, *token.Token) {
	t.Helper()
	tok, err := token.BuildDomain(1, db.NewMemoryProvider(), nil, nil)
	require.NoError(t, err)
	require.NoError(t, tok.Initialize("Omni Token", "OMNI", "delegate", uint256.NewInt(1000)))

	srv := NewServer("", tok)
	bridge := jhttp.NewBridge(srv.buildMethodMap(), nil)
	ts := httptest.NewServer(bridge)
	t.Cleanup(ts.Close)
	t.Cleanup(func() { bridge.Close() })
	return ts, tok
}

func call(t *testing.T, ts *httptest.Server, method, params string) *rpcResponse {
	t.Helper()
	body := `{"jsonrpc":"2.0","id":1,"method":"` + method + `"`
	if params != "" {
		body += `,"params":` + params
	}
	body += `}`

	resp, err := http.Post(ts.URL, "application/json", bytes.NewReader([]byte(body)))
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out rpcResponse
	require.NoError(t, jsonx.Unmarshal(raw, &out))
	return &out
}

func TestLedgerBalance(t *testing.T) {
	ts, tok := newRPCTestServer(t)
	require.NoError(t, tok.Transfer("delegate", "alice", uint256.NewInt(42)))

	resp := call(t, ts, "ledger.balance", `{"address":"alice"}`)
	require.Nil(t, resp.Error)

	var result getBalanceResponse
	require.NoError(t, jsonx.Unmarshal(resp.Result, &result))
	require.Equal(t, "alice", result.Address)
	require.Equal(t, "42", result.Balance)
}

func TestLedgerBalanceUnknownAddressIsZero(t *testing.T) {
	ts, _ := newRPCTestServer(t)

	resp := call(t, ts, "ledger.balance", `{"address":"nobody"}`)
	require.Nil(t, resp.Error)

	var result getBalanceResponse
	require.NoError(t, jsonx.Unmarshal(resp.Result, &result))
	require.Equal(t, "0", result.Balance)
}

func TestLedgerSupply(t *testing.T) {
	ts, _ := newRPCTestServer(t)

	resp := call(t, ts, "ledger.supply", "")
	require.Nil(t, resp.Error)

	var result getSupplyResponse
	require.NoError(t, jsonx.Unmarshal(resp.Result, &result))
	require.Equal(t, "1000", result.TotalSupply)
	require.Equal(t, "1000", result.MaxSupply)
}

func TestNodeStatus(t *testing.T) {
	ts, tok := newRPCTestServer(t)
	require.NoError(t, tok.Pause("delegate"))

	resp := call(t, ts, "node.status", "")
	require.Nil(t, resp.Error)

	var result nodeStatusResponse
	require.NoError(t, jsonx.Unmarshal(resp.Result, &result))
	require.Equal(t, "Omni Token", result.TokenName)
	require.Equal(t, "OMNI", result.TokenSymbol)
	require.Equal(t, uint32(1), result.LocalDomain)
	require.Equal(t, "delegate", result.Owner)
	require.True(t, result.Paused)
}

func TestBridgeQuoteInvalidAmount(t *testing.T) {
	ts, _ := newRPCTestServer(t)

	resp := call(t, ts, "bridge.quote", `{"destination_domain":2,"recipient":"bob","amount":"nope"}`)
	require.NotNil(t, resp.Error)
	require.Contains(t, resp.Error.Message, "invalid amount")
}

func TestUnknownMethod(t *testing.T) {
	ts, _ := newRPCTestServer(t)

	resp := call(t, ts, "ledger.mint", `{}`)
	require.NotNil(t, resp.Error)
}
