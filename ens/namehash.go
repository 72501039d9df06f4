package ens

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/sha3"
	"golang.org/x/net/idna"

	"github.com/davidlaprade/umbra-protocol/interfaces"
)

// UTS-46 profile without transitional processing, as required for ENS name
// normalization. Strict domain name checks are disabled since ENS labels may
// contain characters plain DNS forbids.
var normalization = idna.New(
	idna.MapForLookup(),
	idna.StrictDomainName(false),
	idna.Transitional(false),
)

// Normalize maps a domain name to its canonical form. Two spellings of the
// same name (for example different capitalizations) normalize to the same
// string and therefore hash to the same node.
func Normalize(domain string) (string, error) {
	name, err := normalization.ToUnicode(domain)
	if err != nil {
		return "", fmt.Errorf("could not normalize domain %q: %w", domain, err)
	}
	return name, nil
}

// Namehash computes the node of a domain name as defined in EIP-137: the
// empty name hashes to 32 zero bytes, and each label is folded in from the
// right as keccak256(node || keccak256(label)). The name is normalized first,
// so the result is identical for any capitalization of the same domain.
func Namehash(domain interfaces.DomainName) (interfaces.Node, error) {
	var node interfaces.Node

	name, err := Normalize(domain.String())
	if err != nil {
		return node, err
	}
	if name == "" {
		return node, nil
	}

	labels := strings.Split(name, ".")
	for i := len(labels) - 1; i >= 0; i-- {
		labelHash := keccak256([]byte(labels[i]))
		node = keccak256(node[:], labelHash[:])
	}
	return node, nil
}

func keccak256(data ...[]byte) [32]byte {
	hasher := sha3.NewLegacyKeccak256()
	for _, d := range data {
		hasher.Write(d)
	}

	var out [32]byte
	hasher.Sum(out[:0])
	return out
}
