// Command umbra-keys is the client for stealth-key records. It computes
// namehash nodes locally, resolves a domain's published signature, public
// key, and bytecode records, and publishes a signature record by signing the
// key-association message with a provided private key.
package main
