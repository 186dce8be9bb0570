// Package planarsub - deterministic seed derivation for parallel trials.
//
// Trials must be reproducible independently of scheduling, so each one gets
// its own seed derived from the base seed and the trial index rather than a
// shared generator.
package planarsub

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed using the canonical SplitMix64 finalizer, giving well-decorrelated
// per-trial streams.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
