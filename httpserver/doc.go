/*
Package httpserver implements the read-only HTTP gateway in front of the
stealth-key resolver.

It exposes the resolver's lookups over a small JSON API so that senders
without an Ethereum node can resolve a domain to its published public key,
signature, or receiving-contract bytecode. The gateway never writes records;
publishing requires a signing key and is done with the umbra-keys CLI.

# API Endpoints

  - GET /api/v1/namehash/{domain} - Namehash node for a domain
  - GET /api/v1/signature/{domain} - Published signature record
  - GET /api/v1/publickey/{domain} - Public key recovered from the signature
  - GET /api/v1/bytecode/{domain} - Receiving-contract bytecode record
  - GET /livez - Liveness check
  - GET /readyz - Readiness check
  - GET /drain - Gracefully mark server as not ready
  - GET /undrain - Mark server as ready

An absent record renders as 404 with a JSON error body; a malformed domain as
400; a transport failure towards the chain as 502. Prometheus metrics are
served on a separate listener.
*/
package httpserver
