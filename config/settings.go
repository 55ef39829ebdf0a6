// Package config holds the small set of tunables the engine is built
// around. They are named constants, not magic numbers, so that the
// reasoning in DESIGN.md and the tests can refer to them by name.
package config

// MaxResults is the fixed top-K size for FindTop / FindTopParallel.
const MaxResults = 5

// Epsilon is the relevance-comparison tolerance used by the ranking law:
// two relevances closer than Epsilon are treated as tied and broken by
// rating instead.
const Epsilon = 1e-6

// ShardCount is the number of independently-locked buckets in the
// sharded concurrent accumulator used by the parallel scoring path.
const ShardCount = 32

// RequestWindowSize is the size of the sliding window the request-rate
// tracker collaborator keeps over recent queries.
const RequestWindowSize = 1440
