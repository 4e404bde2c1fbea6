// Package astar implements informed best-first search (A*) over a weighted
// cost grid.
//
// Given a grid.Grid, a start cell and a goal cell, FindPath computes the
// lowest-cost path between them. The search expands cells in order of
// estimated total cost, relaxing neighbor costs as it goes, and reconstructs
// the path from predecessor links once the goal is popped from the frontier.
//
// Cost model:
//
//   - Entering a cell costs its stored grid value (0 = impassable wall).
//   - Each step additionally costs the Manhattan distance between the two
//     cell centers: 1 for cardinal moves, 2 for diagonal moves. This is a
//     deliberate integer simplification of the Euclidean √2 diagonal; see
//     the tilemap package for the float-weighted alternative.
//
// Movement:
//
//   - Conn8 (default) allows diagonal steps. A diagonal step is legal
//     whenever the target cell itself is open — it may cut the corner
//     between two orthogonally adjacent walls.
//   - Conn4 (WithCardinalOnly) restricts movement to N/E/S/W.
//
// Heuristic:
//
//   - HManhattan (default) is admissible under Conn4. Under Conn8 it can
//     overestimate diagonal-heavy remainders, so paths terminate correctly
//     but are not guaranteed cost-optimal.
//   - HChebyshev is admissible under Conn8 and may be selected with
//     WithHeuristic for strict optimality at the price of wider exploration.
//
// Determinism: frontier entries are ordered by ascending priority with
// equal-priority ties always expanding the higher cell index first, so
// repeated calls with identical inputs return identical paths.
//
// Complexity:
//
//   - Time:  O(N log N) for N cells — each relaxation pushes one heap entry
//     (lazy decrease-key), each push/pop costs O(log N).
//   - Space: O(N) for the cost and predecessor maps plus the frontier.
//
// Errors:
//
//   - ErrNilGrid: no grid supplied.
//   - ErrOutOfBounds: start or goal is not a valid cell index.
//   - ErrUnreachable: the frontier was exhausted without reaching the goal.
package astar
