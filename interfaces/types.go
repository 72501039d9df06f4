// Package interfaces defines the core interfaces and types shared by the
// resolver client, the HTTP gateway, and the command line tools. It provides
// the contract between components without implementation details.
package interfaces

import (
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Node is the 32-byte namehash identifier of a domain. All resolver records
// are keyed by a node rather than by the human-readable name.
type Node [32]byte

// NewNodeFromHex parses a node from a hex string, with or without 0x prefix.
func NewNodeFromHex(s string) (Node, error) {
	clean := strings.TrimPrefix(s, "0x")
	if len(clean) != 64 {
		return Node{}, errors.New("invalid node length: hex string must be 64 characters")
	}

	raw, err := hex.DecodeString(clean)
	if err != nil {
		return Node{}, fmt.Errorf("invalid hex format: %w", err)
	}

	var node Node
	copy(node[:], raw)
	return node, nil
}

// Hex returns the 0x-prefixed hex representation of the node.
func (n Node) Hex() string {
	return "0x" + hex.EncodeToString(n[:])
}

// Bytes returns the raw 32-byte node.
func (n Node) Bytes() []byte {
	return n[:]
}

// DomainName represents a human-readable name resolved through the naming
// registry, e.g. "myname.eth".
type DomainName string

// NewDomainName creates a new domain name with validation.
func NewDomainName(domain string) (DomainName, error) {
	// Basic domain name validation (simplified version)
	domainRegex := regexp.MustCompile(`^([a-zA-Z0-9]([a-zA-Z0-9\-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}$`)
	if !domainRegex.MatchString(domain) {
		return DomainName(""), errors.New("invalid domain name format")
	}

	return DomainName(domain), nil
}

// String returns the domain name as a string.
func (name DomainName) String() string {
	return string(name)
}

// Validate checks if the domain name has a valid format.
func (name DomainName) Validate() error {
	_, err := NewDomainName(string(name))
	return err
}
