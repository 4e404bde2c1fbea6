// Package tilemap provides an alternate map representation and search used
// as a reference implementation against the astar package.
//
// A Map is a rectangular field of char tiles — '.' open, '#' wall — with
// the conventional float movement weights: 1.0 for cardinal steps and 1.4
// for diagonal steps. FindPath runs A* over it with a Euclidean heuristic.
//
// The two engines deliberately differ in cost model (integer Manhattan
// steps vs float weighted steps), so they may pick different routes of the
// same shape; what they must always agree on is reachability. Differential
// tests and benchmarks in the astar package lean on exactly that contract.
package tilemap
