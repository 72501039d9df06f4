package interfaces

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNodeFromHex(t *testing.T) {
	hex := "0xde9b09fd7c5f901e23a3f19fecc54828e9c848539801e86591bd9801b019f84f"

	node, err := NewNodeFromHex(hex)
	require.NoError(t, err)
	assert.Equal(t, hex, node.Hex())

	// The 0x prefix is optional.
	unprefixed, err := NewNodeFromHex(hex[2:])
	require.NoError(t, err)
	assert.Equal(t, node, unprefixed)
}

func TestNewNodeFromHex_Invalid(t *testing.T) {
	_, err := NewNodeFromHex("0xdeadbeef")
	assert.Error(t, err, "short input should be rejected")

	_, err = NewNodeFromHex("0xde9b09fd7c5f901e23a3f19fecc54828e9c848539801e86591bd9801b019f84f00")
	assert.Error(t, err, "long input should be rejected")

	_, err = NewNodeFromHex("0xzz9b09fd7c5f901e23a3f19fecc54828e9c848539801e86591bd9801b019f84f")
	assert.Error(t, err, "non-hex characters should be rejected")
}

func TestDomainNameValidation(t *testing.T) {
	valid := []string{"alice.eth", "my-name.eth", "sub.domain.example.com"}
	for _, domain := range valid {
		_, err := NewDomainName(domain)
		assert.NoError(t, err, "domain %q should be accepted", domain)
	}

	invalid := []string{"", "noseparator", "-leading.eth", "trailing-.eth", "alice.eth."}
	for _, domain := range invalid {
		_, err := NewDomainName(domain)
		assert.Error(t, err, "domain %q should be rejected", domain)
	}
}
