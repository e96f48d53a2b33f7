package chain_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/eth-payout/internal/wallet/chain"
)

const testProbeTimeout = 100 * time.Millisecond

// newRPCServer fakes a JSON-RPC endpoint answering eth_blockNumber with 0x64.
// A delay longer than the probe timeout simulates a stalled endpoint.
func newRPCServer(delay time.Duration, calls *int32) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)

		if delay > 0 {
			time.Sleep(delay)
		}

		var req struct {
			ID json.RawMessage `json:"id"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%s,"result":"0x64"}`, req.ID)
	}))
}

func TestConnectBindsFirstHealthyCandidateInOrder(t *testing.T) {
	var slow1Calls, slow2Calls, fastCalls int32

	slow1 := newRPCServer(10*testProbeTimeout, &slow1Calls)
	defer slow1.Close()
	slow2 := newRPCServer(10*testProbeTimeout, &slow2Calls)
	defer slow2.Close()
	fast := newRPCServer(0, &fastCalls)
	defer fast.Close()

	client := chain.NewClient([]string{slow1.URL, slow2.URL, fast.URL}, 1, testProbeTimeout)
	require.NoError(t, client.Connect(context.Background()))
	defer client.Close()

	assert.True(t, client.Bound())
	assert.Equal(t, fast.URL, client.BoundURL())

	// both stalled candidates were probed exactly once, never re-probed
	assert.Equal(t, int32(1), atomic.LoadInt32(&slow1Calls))
	assert.Equal(t, int32(1), atomic.LoadInt32(&slow2Calls))

	// a second Connect reuses the bound endpoint without probing anything
	require.NoError(t, client.Connect(context.Background()))
	assert.Equal(t, int32(1), atomic.LoadInt32(&slow1Calls))
	assert.Equal(t, int32(1), atomic.LoadInt32(&slow2Calls))

	height, err := client.BlockNumber(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(100), height)
}

func TestConnectPrefersFirstCandidate(t *testing.T) {
	var firstCalls, secondCalls int32

	first := newRPCServer(0, &firstCalls)
	defer first.Close()
	second := newRPCServer(0, &secondCalls)
	defer second.Close()

	client := chain.NewClient([]string{first.URL, second.URL}, 1, testProbeTimeout)
	require.NoError(t, client.Connect(context.Background()))
	defer client.Close()

	assert.Equal(t, first.URL, client.BoundURL())
	assert.Equal(t, int32(0), atomic.LoadInt32(&secondCalls))
}

func TestConnectAllCandidatesExhausted(t *testing.T) {
	var calls int32

	slow := newRPCServer(10*testProbeTimeout, &calls)
	defer slow.Close()

	client := chain.NewClient([]string{slow.URL}, 1, testProbeTimeout)
	err := client.Connect(context.Background())
	require.Error(t, err)
	assert.False(t, client.Bound())
	assert.Contains(t, err.Error(), "all RPC endpoint candidates failed")
}

func TestConnectNoEndpointsConfigured(t *testing.T) {
	client := chain.NewClient(nil, 1, testProbeTimeout)
	err := client.Connect(context.Background())
	require.Error(t, err)
}

func TestClientRequiresConnection(t *testing.T) {
	client := chain.NewClient([]string{"http://localhost:0"}, 1, testProbeTimeout)

	_, err := client.BlockNumber(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not connected")
}

func TestChainIDIsFixed(t *testing.T) {
	client := chain.NewClient(nil, 137, testProbeTimeout)
	id := client.ChainID()
	assert.Equal(t, int64(137), id.Int64())

	// mutating the returned value must not affect the client
	id.SetInt64(1)
	assert.Equal(t, int64(137), client.ChainID().Int64())
}
