// Command resolver-gateway serves the read-only HTTP API in front of the
// stealth-key resolver. It connects to an Ethereum RPC endpoint, binds the
// ENS registry contract, and exposes namehash, signature, public key, and
// bytecode lookups along with health and metrics endpoints.
package main
