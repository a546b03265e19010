// Package workload drives deterministic mixed push/pop/traversal
// scripts against a deque, with the allocator strategy, operation
// count, and seed taken from an ini file. It verifies chain health as
// it runs (forward/reverse mirror equality plus an order digest) and
// accumulates per-operation-class timings for the demo binary to log.
package workload
