// Package ens provides a client for resolving a domain name to the
// stealth-key material it publishes through the ENS registry and its public
// resolver contract.
//
// A domain owner publishes two text records under well-known keys: a
// signature over a fixed key-association message (SignatureKey) and the
// bytecode of the contract that receives payments for the domain
// (BytecodeKey). Both are stored against the namehash of the domain, so
// nothing about the human-readable name itself lives on chain.
//
// Senders never read a public key directly. Instead they fetch the signature
// record and recover the signer's public key from it, which guarantees the
// key actually belongs to whoever controls the domain's records.
//
// # Resolution Flow
//
// Each read performs at most two contract calls:
//
//  1. registry.resolver(namehash(domain)) to find the resolver contract
//  2. resolver.text(namehash(domain), key) to fetch the record
//
// A zero resolver address or an empty text record both signal an absent
// record. Absence is reported as an empty string with a nil error, never as
// an error.
//
// # Transaction Operations
//
// Publishing a record requires transaction signing. Before using SetSignature
// you must call SetTransactOpts with appropriate transaction options
// including a private key for signing. Read operations can be used
// immediately after creating a client instance.
//
// # Usage Example
//
//	client, err := ens.NewResolverClient(ethClient, ethClient, registryAddress)
//	if err != nil {
//	    log.Fatalf("Failed to create resolver client: %v", err)
//	}
//
//	// Read the public key for a domain (read-only, no auth needed)
//	pubkey, err := client.GetPublicKey("myname.eth")
//
//	// Publish a signature record
//	privateKey, _ := crypto.HexToECDSA("your-private-key")
//	auth, _ := bind.NewKeyedTransactorWithChainID(privateKey, chainID)
//	client.SetTransactOpts(auth)
//
//	signature, _ := ens.SignKeyAssociation(privateKey)
//	tx, err := client.SetSignature("myname.eth", signature)
package ens
