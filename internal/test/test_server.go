package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github/chapool/eth-payout/internal/api"
	"github/chapool/eth-payout/internal/api/router"
	"github/chapool/eth-payout/internal/config"
	"github/chapool/eth-payout/internal/metrics"
	"github/chapool/eth-payout/internal/wallet/balance"
	"github/chapool/eth-payout/internal/wallet/signer"
	"github/chapool/eth-payout/internal/wallet/transfer"
)

// TestSignerKeyHex is a throwaway key used across handler tests, resolving
// to the address 0x96216849c49358B10257cb55b28eA603c874b05E.
const TestSignerKeyHex = "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"

// WithTestServer builds a fully routed server on top of a stub backend and a
// fixed signer identity, then calls the closure with it. The stub backend
// can be reached via BackendFromServer to inject failures.
func WithTestServer(t *testing.T, closure func(s *api.Server)) {
	t.Helper()

	cfg := config.DefaultServiceConfigFromEnv()
	cfg.Echo.ListenAddress = ":0"

	identity, err := signer.NewIdentityFromHex(TestSignerKeyHex)
	if err != nil {
		t.Fatalf("failed to build test signer identity: %v", err)
	}

	connector := &StubConnector{
		Backend:  NewStubBackend(),
		Identity: identity,
	}

	m := metrics.New()

	s := &api.Server{
		Config:    cfg,
		Metrics:   m,
		Connector: connector,
		Transfer:  transfer.NewService(connector, cfg.Payout, m),
		Balance:   balance.NewService(connector, cfg.Payout.ETHUSDRate),
	}

	router.Init(s)

	closure(s)
}

// BackendFromServer returns the stub backend wired into a test server.
func BackendFromServer(t *testing.T, s *api.Server) *StubBackend {
	t.Helper()

	connector, ok := s.Connector.(*StubConnector)
	if !ok {
		t.Fatal("server connector is not a stub connector")
	}

	backend, ok := connector.Backend.(*StubBackend)
	if !ok {
		t.Fatal("stub connector does not hold a stub backend")
	}

	return backend
}

// GenericPayload is a free-form JSON request body.
type GenericPayload map[string]interface{}

func (g GenericPayload) Reader(t *testing.T) *bytes.Reader {
	t.Helper()

	b, err := json.Marshal(g)
	if err != nil {
		t.Fatalf("failed to serialize payload: %v", err)
	}

	return bytes.NewReader(b)
}

func PerformRequest(t *testing.T, s *api.Server, method string, path string, body GenericPayload, headers http.Header) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, body.Reader(t))
	}

	if headers != nil {
		req.Header = headers
	}

	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	res := httptest.NewRecorder()
	s.Echo.ServeHTTP(res, req)

	return res
}

// ParseResponseBody decodes the JSON response body into the given value.
func ParseResponseBody(t *testing.T, res *httptest.ResponseRecorder, v interface{}) {
	t.Helper()

	if err := json.NewDecoder(res.Result().Body).Decode(v); err != nil {
		t.Fatalf("failed to parse response body: %v", err)
	}
}
