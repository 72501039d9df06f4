// Package ens provides a client for resolving stealth-key records through the
// ENS registry and the public resolver contracts it points at.
package ens

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	bindings "github.com/davidlaprade/umbra-protocol/bindings/ens"
	"github.com/davidlaprade/umbra-protocol/interfaces"
)

// ErrNoTransactOpts is returned when a transaction is attempted without first setting transaction options.
var ErrNoTransactOpts = errors.New("no authorized transactor available")

// ErrNoResolver is returned when a record write is attempted for a domain
// whose registry entry has no resolver contract configured.
var ErrNoResolver = errors.New("no resolver configured for domain")

// ResolverClient implements the interfaces.StealthKeyResolver interface
// against the ENS registry contract deployed on a blockchain. It looks up the
// resolver responsible for a domain and forwards a single text-record read or
// write per call.
type ResolverClient struct {
	registry *bindings.ENSRegistry
	client   bind.ContractBackend
	backend  bind.DeployBackend
	address  common.Address
	auth     *bind.TransactOpts
}

// NewResolverClient creates a new client for the ENS registry contract at the
// specified address. It requires a ContractBackend for reading from the
// blockchain and a DeployBackend for transaction operations.
func NewResolverClient(client bind.ContractBackend, backend bind.DeployBackend, registryAddress common.Address) (*ResolverClient, error) {
	registry, err := bindings.NewENSRegistry(registryAddress, client)
	if err != nil {
		return nil, err
	}

	return &ResolverClient{
		registry: registry,
		client:   client,
		backend:  backend,
		address:  registryAddress,
	}, nil
}

// SetTransactOpts sets the transaction options required for functions that modify state.
// This must be called before using any methods that send transactions to the blockchain.
func (c *ResolverClient) SetTransactOpts(auth *bind.TransactOpts) {
	c.auth = auth
}

// resolverFor looks up the resolver contract responsible for the domain.
// A nil resolver with a nil error means no resolver is set for the node.
func (c *ResolverClient) resolverFor(domain interfaces.DomainName) (*bindings.PublicResolver, interfaces.Node, error) {
	node, err := Namehash(domain)
	if err != nil {
		return nil, interfaces.Node{}, err
	}

	opts := &bind.CallOpts{Context: context.Background()}

	addr, err := c.registry.Resolver(opts, node)
	if err != nil {
		return nil, node, fmt.Errorf("resolver lookup failed for %s: %w", domain, err)
	}
	if addr == (common.Address{}) {
		return nil, node, nil
	}

	resolver, err := bindings.NewPublicResolver(addr, c.client)
	if err != nil {
		return nil, node, err
	}
	return resolver, node, nil
}

// GetText retrieves the text record stored under key for the domain. It
// returns an empty string when the domain has no resolver or no record is set
// for the key.
func (c *ResolverClient) GetText(domain interfaces.DomainName, key string) (string, error) {
	resolver, node, err := c.resolverFor(domain)
	if err != nil {
		return "", err
	}
	if resolver == nil {
		return "", nil
	}

	opts := &bind.CallOpts{Context: context.Background()}

	value, err := resolver.Text(opts, node, key)
	if err != nil {
		return "", fmt.Errorf("text record lookup failed for %s: %w", domain, err)
	}
	return value, nil
}

// SetText publishes a text record under key for the domain.
// Returns the transaction and an error if the transaction could not be sent.
func (c *ResolverClient) SetText(domain interfaces.DomainName, key, value string) (*types.Transaction, error) {
	if c.auth == nil {
		return nil, ErrNoTransactOpts
	}

	resolver, node, err := c.resolverFor(domain)
	if err != nil {
		return nil, err
	}
	if resolver == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoResolver, domain)
	}

	tx, err := resolver.SetText(c.auth, node, key, value)
	return tx, err
}

// GetSignature retrieves the signature record for the domain, or an empty
// string if none is set.
func (c *ResolverClient) GetSignature(domain interfaces.DomainName) (string, error) {
	return c.GetText(domain, SignatureKey)
}

// GetBytecode retrieves the receiving-contract bytecode record for the
// domain, or an empty string if none is set.
func (c *ResolverClient) GetBytecode(domain interfaces.DomainName) (string, error) {
	return c.GetText(domain, BytecodeKey)
}

// GetPublicKey recovers the public key from the domain's signature record.
// It returns an empty string whenever GetSignature does.
func (c *ResolverClient) GetPublicKey(domain interfaces.DomainName) (string, error) {
	signature, err := c.GetSignature(domain)
	if err != nil {
		return "", err
	}
	if signature == "" {
		return "", nil
	}
	return RecoverPublicKey(signature)
}

// SetSignature publishes a signature record for the domain.
// Returns the transaction and an error if the transaction could not be sent.
func (c *ResolverClient) SetSignature(domain interfaces.DomainName, signature string) (*types.Transaction, error) {
	return c.SetText(domain, SignatureKey, signature)
}

// ResolverFactory creates StealthKeyResolver instances for different ENS
// registry deployments.
type ResolverFactory struct {
	client  bind.ContractBackend
	backend bind.DeployBackend
}

// NewResolverFactory creates a new factory for resolver clients.
// It requires a ContractBackend for reading from the blockchain and a DeployBackend for transactions.
func NewResolverFactory(client bind.ContractBackend, backend bind.DeployBackend) *ResolverFactory {
	return &ResolverFactory{client: client, backend: backend}
}

// ResolverFor returns a StealthKeyResolver backed by the registry contract at
// the specified address.
func (f *ResolverFactory) ResolverFor(registryAddress common.Address) (interfaces.StealthKeyResolver, error) {
	return NewResolverClient(f.client, f.backend, registryAddress)
}
