package ens

import (
	"crypto/ecdsa"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// Well-known text-record keys under which a domain publishes its stealth-key
// material.
const (
	// SignatureKey holds a signature over KeyAssociationMessage, produced
	// by the private key the domain owner receives stealth payments with.
	SignatureKey = "vnd.umbra-v0-signature"

	// BytecodeKey holds the receiving-contract bytecode for the domain.
	BytecodeKey = "vnd.umbra-v0-bytecode"
)

// KeyAssociationMessage is the fixed message every published signature signs.
// Recovering the signer of this message from the stored signature yields the
// public key senders encrypt against, without the key itself ever being
// stored on chain.
const KeyAssociationMessage = "This signature associates my public key with my ENS domain for use with Umbra."

// SignKeyAssociation signs the key-association message with the given key.
// The result is the hex-encoded 65-byte signature published under
// SignatureKey, with the recovery id encoded in eth_sign form (v = 27 or 28).
func SignKeyAssociation(key *ecdsa.PrivateKey) (string, error) {
	sig, err := crypto.Sign(accounts.TextHash([]byte(KeyAssociationMessage)), key)
	if err != nil {
		return "", fmt.Errorf("could not sign key association message: %w", err)
	}

	sig[crypto.RecoveryIDOffset] += 27
	return hexutil.Encode(sig), nil
}

// RecoverPublicKey recovers the uncompressed secp256k1 public key that
// produced the given hex-encoded signature over the key-association message.
// Both raw (v = 0/1) and eth_sign (v = 27/28) recovery ids are accepted.
func RecoverPublicKey(signature string) (string, error) {
	raw, err := hexutil.Decode(signature)
	if err != nil {
		return "", fmt.Errorf("could not decode signature: %w", err)
	}
	if len(raw) != crypto.SignatureLength {
		return "", fmt.Errorf("invalid signature length %d, expected %d", len(raw), crypto.SignatureLength)
	}

	sig := make([]byte, crypto.SignatureLength)
	copy(sig, raw)
	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig[crypto.RecoveryIDOffset] -= 27
	}

	pubkey, err := crypto.SigToPub(accounts.TextHash([]byte(KeyAssociationMessage)), sig)
	if err != nil {
		return "", fmt.Errorf("could not recover public key: %w", err)
	}
	return hexutil.Encode(crypto.FromECDSAPub(pubkey)), nil
}
