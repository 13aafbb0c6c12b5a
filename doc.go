// Package simspace provides the data and space abstraction layer for
// similarity-search indexes.
//
// A Space describes how objects of one data representation are parsed
// from and serialized to line-oriented datasets, and how two objects
// are compared by a distance function. Nearest-neighbor indexes are
// built on top of this contract but live outside this module.
//
// # Spaces
//
// Two concrete representations ship with the module:
//
//   - sparse.Space: sparse numeric vectors stored as (index, value)
//     pairs with strictly increasing indices.
//   - wordembed.Space: dense word-embedding vectors with an external
//     string identifier per record and a selectable metric (L2 or
//     cosine), backed by the generic densevec.Space.
//
// # Phase gating
//
// Every Space carries a per-instance phase flag. While the instance is
// in the index phase (the default), IndexTimeDistance may be called by
// index-construction code. Once SetQueryPhase is called, further calls
// to IndexTimeDistance fail with ErrPhaseViolation. Clone always
// returns an instance reset to the index phase, so a process can hold
// an index-phase space and a query-phase clone at the same time.
//
// # Dataset I/O
//
// ReadDataset and WriteDataset drive a Space's record-level operations
// to load or persist a whole collection of objects together with their
// external identifiers:
//
//	space, _ := wordembed.New[float32](vmath.MetricCosine)
//	objects, ids, err := simspace.ReadDataset(space, "glove.txt", 0)
//
// Distance evaluation over immutable objects is pure and safe to run
// concurrently; BatchDistances exploits this for bulk scoring.
package simspace
