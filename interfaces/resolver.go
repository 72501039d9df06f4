package interfaces

import (
	"github.com/ethereum/go-ethereum/core/types"
)

// StealthKeyResolver reads and publishes the stealth-key records a domain
// holds in its resolver: a signature over the key-association message, the
// public key recoverable from it, and the receiving-contract bytecode.
//
// All read methods signal a missing record with an empty string and a nil
// error. Transport failures propagate unchanged.
type StealthKeyResolver interface {
	// GetSignature returns the signature record for the domain, or "" if
	// the domain has no resolver or no signature record set.
	GetSignature(domain DomainName) (string, error)

	// GetPublicKey returns the uncompressed public key recovered from the
	// domain's signature record, or "" if no signature record is set.
	GetPublicKey(domain DomainName) (string, error)

	// GetBytecode returns the bytecode record for the domain, or "" if the
	// domain has no resolver or no bytecode record set.
	GetBytecode(domain DomainName) (string, error)

	// SetSignature publishes a signature record for the domain and returns
	// the submitted transaction.
	SetSignature(domain DomainName, signature string) (*types.Transaction, error)
}
