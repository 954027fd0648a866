// Package ectp owns the loopback frame wire contract.
//
// Ownership boundary:
// - skipcount header primitives
// - forward/reply message primitives
// - capacity-bounded frame assembly and defensive chain walking
//
// Link-layer send/receive, address resolution and response correlation
// belong to callers; every operation here is a direct read or write
// against a caller-owned buffer.
package ectp
