package ens

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"testing"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bindings "github.com/davidlaprade/umbra-protocol/bindings/ens"
	"github.com/davidlaprade/umbra-protocol/interfaces"
)

// stubBackend is a minimal bind.ContractBackend serving the registry and
// resolver ABIs from memory. It answers resolver lookups with a fixed
// address (zero meaning no resolver is set) and text lookups from a map.
type stubBackend struct {
	resolverAddr common.Address
	records      map[string]string

	registryABI abi.ABI
	resolverABI abi.ABI
}

func newStubBackend(t *testing.T, resolverAddr common.Address, records map[string]string) *stubBackend {
	t.Helper()

	registryABI, err := bindings.ENSRegistryMetaData.GetAbi()
	require.NoError(t, err)
	resolverABI, err := bindings.PublicResolverMetaData.GetAbi()
	require.NoError(t, err)

	return &stubBackend{
		resolverAddr: resolverAddr,
		records:      records,
		registryABI:  *registryABI,
		resolverABI:  *resolverABI,
	}
}

func (b *stubBackend) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	if method, err := b.registryABI.MethodById(msg.Data[:4]); err == nil && method.Name == "resolver" {
		return method.Outputs.Pack(b.resolverAddr)
	}

	method, err := b.resolverABI.MethodById(msg.Data[:4])
	if err != nil {
		return nil, err
	}
	if method.Name != "text" {
		return nil, fmt.Errorf("unexpected method %s", method.Name)
	}

	args, err := method.Inputs.Unpack(msg.Data[4:])
	if err != nil {
		return nil, err
	}
	key, ok := args[1].(string)
	if !ok {
		return nil, fmt.Errorf("unexpected key argument %v", args[1])
	}
	return method.Outputs.Pack(b.records[key])
}

func (b *stubBackend) CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error) {
	return []byte{0x01}, nil
}

func (b *stubBackend) PendingCodeAt(ctx context.Context, account common.Address) ([]byte, error) {
	return []byte{0x01}, nil
}

func (b *stubBackend) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	return &types.Header{}, nil
}

func (b *stubBackend) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	return 0, nil
}

func (b *stubBackend) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	return big.NewInt(1), nil
}

func (b *stubBackend) SuggestGasTipCap(ctx context.Context) (*big.Int, error) {
	return big.NewInt(1), nil
}

func (b *stubBackend) EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error) {
	return 21000, nil
}

func (b *stubBackend) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	return nil
}

func (b *stubBackend) FilterLogs(ctx context.Context, query ethereum.FilterQuery) ([]types.Log, error) {
	return nil, nil
}

func (b *stubBackend) SubscribeFilterLogs(ctx context.Context, query ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error) {
	return nil, errors.New("not implemented")
}

func (b *stubBackend) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	return nil, errors.New("not implemented")
}

var testRegistryAddr = common.HexToAddress("0x00000000000C2E074eC69A0dFb2997BA6C7d2e1e")

// TestResolverClient_NoResolverIsAbsent verifies the onchain client treats a
// zero resolver address as absence on reads and refuses writes.
func TestResolverClient_NoResolverIsAbsent(t *testing.T) {
	backend := newStubBackend(t, common.Address{}, nil)

	client, err := NewResolverClient(backend, backend, testRegistryAddr)
	require.NoError(t, err)

	signature, err := client.GetSignature("alice.eth")
	require.NoError(t, err)
	assert.Empty(t, signature)

	pubkey, err := client.GetPublicKey("alice.eth")
	require.NoError(t, err)
	assert.Empty(t, pubkey)

	bytecode, err := client.GetBytecode("alice.eth")
	require.NoError(t, err)
	assert.Empty(t, bytecode)

	client.SetTransactOpts(&bind.TransactOpts{})

	_, err = client.SetSignature("alice.eth", "0xabcdef")
	assert.ErrorIs(t, err, ErrNoResolver)
}

// TestResolverClient_WriteRequiresTransactOpts verifies the authorization
// gate fires before any backend call is made.
func TestResolverClient_WriteRequiresTransactOpts(t *testing.T) {
	backend := newStubBackend(t, common.Address{}, nil)

	client, err := NewResolverClient(backend, backend, testRegistryAddr)
	require.NoError(t, err)

	_, err = client.SetSignature("alice.eth", "0xabcdef")
	assert.ErrorIs(t, err, ErrNoTransactOpts)
}

// TestResolverClient_ReadsPublishedRecords verifies the onchain client reads
// a published signature through the registry lookup and recovers the key
// from it, while unset records stay absent.
func TestResolverClient_ReadsPublishedRecords(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	signature, err := SignKeyAssociation(key)
	require.NoError(t, err)

	resolverAddr := common.HexToAddress("0x4976fb03C32e5B8cfe2b6cCB31c09Ba78EBaBa41")
	backend := newStubBackend(t, resolverAddr, map[string]string{SignatureKey: signature})

	client, err := NewResolverClient(backend, backend, testRegistryAddr)
	require.NoError(t, err)

	stored, err := client.GetSignature("alice.eth")
	require.NoError(t, err)
	assert.Equal(t, signature, stored)

	pubkey, err := client.GetPublicKey("alice.eth")
	require.NoError(t, err)
	assert.Equal(t, hexutil.Encode(crypto.FromECDSAPub(&key.PublicKey)), pubkey)

	bytecode, err := client.GetBytecode("alice.eth")
	require.NoError(t, err)
	assert.Empty(t, bytecode)
}

// TestResolver_AbsentRecords verifies that a domain with nothing published
// reports every record as absent rather than as an error.
func TestResolver_AbsentRecords(t *testing.T) {
	client := NewMockResolverClient()
	domain := interfaces.DomainName("nobody.eth")

	signature, err := client.GetSignature(domain)
	require.NoError(t, err)
	assert.Empty(t, signature)

	bytecode, err := client.GetBytecode(domain)
	require.NoError(t, err)
	assert.Empty(t, bytecode)

	pubkey, err := client.GetPublicKey(domain)
	require.NoError(t, err)
	assert.Empty(t, pubkey)
}

// TestResolver_WriteRequiresTransactOpts verifies the authorization flow for
// state-modifying operations.
func TestResolver_WriteRequiresTransactOpts(t *testing.T) {
	client := NewMockResolverClient()

	_, err := client.SetSignature("alice.eth", "0xabcdef")
	assert.ErrorIs(t, err, ErrNoTransactOpts)

	client.SetTransactOpts()

	tx, err := client.SetSignature("alice.eth", "0xabcdef")
	require.NoError(t, err)
	assert.NotNil(t, tx)
}

// TestResolver_SignatureRoundTrip verifies SetSignature followed by
// GetSignature returns the published value.
func TestResolver_SignatureRoundTrip(t *testing.T) {
	client := NewMockResolverClient()
	client.SetTransactOpts()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	signature, err := SignKeyAssociation(key)
	require.NoError(t, err)

	_, err = client.SetSignature("alice.eth", signature)
	require.NoError(t, err)

	stored, err := client.GetSignature("alice.eth")
	require.NoError(t, err)
	assert.Equal(t, signature, stored)

	// Records are keyed by the normalized node, so any capitalization of
	// the domain reads the same record.
	stored, err = client.GetSignature("ALICE.eth")
	require.NoError(t, err)
	assert.Equal(t, signature, stored)

	// Other domains remain untouched.
	other, err := client.GetSignature("bob.eth")
	require.NoError(t, err)
	assert.Empty(t, other)
}

// TestResolver_PublicKeyFollowsSignature verifies GetPublicKey is absent
// exactly when GetSignature is, and otherwise recovers the signer's key.
func TestResolver_PublicKeyFollowsSignature(t *testing.T) {
	client := NewMockResolverClient()
	client.SetTransactOpts()

	pubkey, err := client.GetPublicKey("alice.eth")
	require.NoError(t, err)
	assert.Empty(t, pubkey, "public key should be absent while no signature is set")

	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	signature, err := SignKeyAssociation(key)
	require.NoError(t, err)

	_, err = client.SetSignature("alice.eth", signature)
	require.NoError(t, err)

	pubkey, err = client.GetPublicKey("alice.eth")
	require.NoError(t, err)
	assert.Equal(t, hexutil.Encode(crypto.FromECDSAPub(&key.PublicKey)), pubkey)
}

// TestResolver_BytecodeRecord verifies the bytecode record is stored and
// retrieved independently of the signature record.
func TestResolver_BytecodeRecord(t *testing.T) {
	client := NewMockResolverClient()
	client.SetTransactOpts()

	bytecode := "0x60806040523480156100115760006000fd5b50"
	_, err := client.SetText("alice.eth", BytecodeKey, bytecode)
	require.NoError(t, err)

	stored, err := client.GetBytecode("alice.eth")
	require.NoError(t, err)
	assert.Equal(t, bytecode, stored)

	signature, err := client.GetSignature("alice.eth")
	require.NoError(t, err)
	assert.Empty(t, signature)
}
