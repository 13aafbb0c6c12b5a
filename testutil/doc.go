// Package testutil provides deterministic random data generation for
// tests: a seeded, thread-safe RNG plus dense and sparse vector
// generators.
package testutil
