package ens

import (
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/mock"

	"github.com/davidlaprade/umbra-protocol/interfaces"
)

// MockResolver mocks the StealthKeyResolver interface
type MockResolver struct {
	mock.Mock
}

// GetSignature mocks the GetSignature method
func (m *MockResolver) GetSignature(domain interfaces.DomainName) (string, error) {
	args := m.Called(domain)
	return args.String(0), args.Error(1)
}

// GetPublicKey mocks the GetPublicKey method
func (m *MockResolver) GetPublicKey(domain interfaces.DomainName) (string, error) {
	args := m.Called(domain)
	return args.String(0), args.Error(1)
}

// GetBytecode mocks the GetBytecode method
func (m *MockResolver) GetBytecode(domain interfaces.DomainName) (string, error) {
	args := m.Called(domain)
	return args.String(0), args.Error(1)
}

// SetSignature mocks the SetSignature method
func (m *MockResolver) SetSignature(domain interfaces.DomainName, signature string) (*types.Transaction, error) {
	args := m.Called(domain, signature)
	return args.Get(0).(*types.Transaction), args.Error(1)
}
