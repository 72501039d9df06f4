package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidlaprade/umbra-protocol/ens"
	"github.com/davidlaprade/umbra-protocol/interfaces"
)

func newTestRouter(t *testing.T, resolver interfaces.StealthKeyResolver) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewHandler(resolver, logger)

	mux := chi.NewRouter()
	mux.Get("/api/v1/namehash/{domain}", handler.HandleNamehash)
	mux.Get("/api/v1/signature/{domain}", handler.HandleSignature)
	mux.Get("/api/v1/publickey/{domain}", handler.HandlePublicKey)
	mux.Get("/api/v1/bytecode/{domain}", handler.HandleBytecode)
	return mux
}

func TestHandleNamehash(t *testing.T) {
	mux := newTestRouter(t, ens.NewMockResolverClient())

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/namehash/foo.eth", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Domain string `json:"domain"`
		Node   string `json:"node"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "foo.eth", resp.Domain)
	assert.Equal(t, "0xde9b09fd7c5f901e23a3f19fecc54828e9c848539801e86591bd9801b019f84f", resp.Node)
}

func TestHandleSignature_Found(t *testing.T) {
	resolver := ens.NewMockResolverClient()
	resolver.SetTransactOpts()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	signature, err := ens.SignKeyAssociation(key)
	require.NoError(t, err)
	_, err = resolver.SetSignature("alice.eth", signature)
	require.NoError(t, err)

	mux := newTestRouter(t, resolver)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/signature/alice.eth", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Domain string `json:"domain"`
		Record string `json:"record"`
		Value  string `json:"value"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "alice.eth", resp.Domain)
	assert.Equal(t, "signature", resp.Record)
	assert.Equal(t, signature, resp.Value)
}

func TestHandlePublicKey_Found(t *testing.T) {
	resolver := ens.NewMockResolverClient()
	resolver.SetTransactOpts()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	signature, err := ens.SignKeyAssociation(key)
	require.NoError(t, err)
	_, err = resolver.SetSignature("alice.eth", signature)
	require.NoError(t, err)

	mux := newTestRouter(t, resolver)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/publickey/alice.eth", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Value string `json:"value"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, hexutil.Encode(crypto.FromECDSAPub(&key.PublicKey)), resp.Value)
}

func TestHandleRecord_Absent(t *testing.T) {
	mux := newTestRouter(t, ens.NewMockResolverClient())

	for _, endpoint := range []string{"signature", "publickey", "bytecode"} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/%s/nobody.eth", endpoint), nil))

		assert.Equal(t, http.StatusNotFound, rec.Code, "endpoint %s", endpoint)

		var resp struct {
			Error string `json:"error"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Error)
	}
}

// TestHandleRecord_TransportFailure verifies a failing chain transport
// renders as 502 rather than as absence.
func TestHandleRecord_TransportFailure(t *testing.T) {
	resolver := new(ens.MockResolver)
	resolver.On("GetSignature", interfaces.DomainName("alice.eth")).Return("", errors.New("connection refused"))

	mux := newTestRouter(t, resolver)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/signature/alice.eth", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)

	var resp struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Error)

	resolver.AssertExpectations(t)
}

func TestHandleRecord_InvalidDomain(t *testing.T) {
	mux := newTestRouter(t, ens.NewMockResolverClient())

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/signature/not-a-domain", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
