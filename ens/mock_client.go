package ens

import (
	"sync"

	"github.com/ethereum/go-ethereum/core/types"

	"github.com/davidlaprade/umbra-protocol/interfaces"
)

// MockResolverClient provides a simple in-memory implementation of the
// StealthKeyResolver interface for testing purposes without requiring a
// blockchain connection. It stores all text records in memory and simulates
// resolver lookups and transactions.
type MockResolverClient struct {
	mutex            sync.RWMutex
	records          map[interfaces.Node]map[string]string
	allowTransacting bool
}

// NewMockResolverClient creates a new mock resolver client with empty initial
// state. The client starts in a read-only state - call SetTransactOpts to
// enable write operations.
func NewMockResolverClient() *MockResolverClient {
	return &MockResolverClient{
		records:          make(map[interfaces.Node]map[string]string),
		allowTransacting: false,
	}
}

// SetTransactOpts enables write operations on the mock client. While the mock
// doesn't make blockchain transactions, this simulates the authorization flow
// required by the onchain client.
func (m *MockResolverClient) SetTransactOpts() {
	m.allowTransacting = true
}

// GetText retrieves the text record stored under key for the domain, or an
// empty string if none is set.
func (m *MockResolverClient) GetText(domain interfaces.DomainName, key string) (string, error) {
	node, err := Namehash(domain)
	if err != nil {
		return "", err
	}

	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return m.records[node][key], nil
}

// SetText stores a text record under key for the domain.
// Returns an error if transactions are not allowed.
func (m *MockResolverClient) SetText(domain interfaces.DomainName, key, value string) (*types.Transaction, error) {
	if !m.allowTransacting {
		return nil, ErrNoTransactOpts
	}

	node, err := Namehash(domain)
	if err != nil {
		return nil, err
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.records[node] == nil {
		m.records[node] = make(map[string]string)
	}
	m.records[node][key] = value

	return &types.Transaction{}, nil
}

// GetSignature retrieves the signature record for the domain.
func (m *MockResolverClient) GetSignature(domain interfaces.DomainName) (string, error) {
	return m.GetText(domain, SignatureKey)
}

// GetBytecode retrieves the bytecode record for the domain.
func (m *MockResolverClient) GetBytecode(domain interfaces.DomainName) (string, error) {
	return m.GetText(domain, BytecodeKey)
}

// GetPublicKey recovers the public key from the domain's signature record,
// mirroring the onchain client's behavior.
func (m *MockResolverClient) GetPublicKey(domain interfaces.DomainName) (string, error) {
	signature, err := m.GetSignature(domain)
	if err != nil {
		return "", err
	}
	if signature == "" {
		return "", nil
	}
	return RecoverPublicKey(signature)
}

// SetSignature stores a signature record for the domain.
func (m *MockResolverClient) SetSignature(domain interfaces.DomainName, signature string) (*types.Transaction, error) {
	return m.SetText(domain, SignatureKey, signature)
}
