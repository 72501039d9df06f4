package common

// PackageName is used to namespace metrics and logs.
const PackageName = "umbra-protocol"

// Version is set at build time via -ldflags.
var Version = "dev"
