package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// FindPath computes the lowest-cost path from start to goal over g using A*.
// start and goal are flat row-major cell indices. Behavior is customized
// with functional options (WithCardinalOnly, WithHeuristic, ...).
//
// Returns the ordered sequence of cell indices from the first step after
// start through goal — goal included, start excluded.
//
// Outcomes are explicit:
//
//   - a non-empty path and nil error when the goal was reached;
//   - nil and ErrUnreachable when the frontier was exhausted first (this
//     includes a goal cell that is itself a wall, since walls are never
//     entered);
//   - nil and ErrNilGrid / ErrOutOfBounds on invalid input;
//   - nil and nil error when start == goal: there is nothing to walk, and
//     unlike unreachability this is not a failure.
//
// The start cell's own cost is never paid: a search may begin on a wall,
// but can only ever step onto open cells.
//
// FindPath is a pure function. All working state (frontier, cost map,
// predecessor map) is owned by the invocation, so concurrent searches over
// the same Grid are safe.
func FindPath(g *grid.Grid, start, goal int, opts ...Option) ([]int, error) {
	// 1) Build options from defaults.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs before touching any cell.
	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.ValidIndex(start) {
		return nil, fmt.Errorf("%w: start %d not in [0,%d)", ErrOutOfBounds, start, g.Len())
	}
	if !g.ValidIndex(goal) {
		return nil, fmt.Errorf("%w: goal %d not in [0,%d)", ErrOutOfBounds, goal, g.Len())
	}
	if start == goal {
		return nil, nil
	}

	// 3) Run the search on invocation-owned state.
	r := &runner{
		g:    g,
		opts: cfg,
		goal: goal,
		cost: map[int]int64{start: 0},
		came: make(map[int]int),
		pq:   make(frontier, 0, g.Width()+g.Height()),
	}
	heap.Push(&r.pq, frontierItem{priority: 0, cell: start})
	r.search()

	return r.reconstruct()
}

// runner holds the mutable state of one FindPath invocation.
type runner struct {
	g    *grid.Grid    // read-only input grid
	opts Options       // resolved configuration
	goal int           // target cell index
	cost map[int]int64 // best known cumulative cost per discovered cell
	came map[int]int   // predecessor per discovered cell; doubles as visited set
	pq   frontier      // min-heap of (priority, cell)
}

// search pops the cheapest frontier entry until the goal surfaces or the
// frontier runs dry. Ties expand the higher cell index first.
func (r *runner) search() {
	for r.pq.Len() > 0 {
		current := heap.Pop(&r.pq).(frontierItem).cell
		if current == r.goal {
			break
		}
		r.relax(current)
	}
}

// relax generates current's neighbors and improves their costs where a
// strictly cheaper route through current exists. Each improvement records
// the predecessor and pushes a fresh frontier entry.
func (r *runner) relax(current int) {
	var buf [8]int
	base := r.cost[current]
	for _, n := range r.neighbors(current, buf[:0]) {
		// Step cost: the neighbor's entry cost plus the Manhattan distance
		// between the two cell centers (1 cardinal, 2 diagonal).
		tentative := base + r.g.Cost(n) + r.g.Manhattan(current, n)
		if known, seen := r.cost[n]; seen && tentative >= known {
			continue
		}
		r.cost[n] = tentative
		r.came[n] = current
		heap.Push(&r.pq, frontierItem{
			priority: tentative + r.estimate(n),
			cell:     n,
		})
	}
}

// neighbors appends to buf the indices of current's passable neighbors.
// Edge flags derived from the flat index keep every candidate in bounds.
// Diagonals are gated only on the target cell being open: a diagonal step
// may cut the corner between two orthogonally adjacent walls.
func (r *runner) neighbors(current int, buf []int) []int {
	g := r.g
	w := g.Width()
	isTop := current < w
	isBottom := current >= g.Len()-w
	x := current % w
	isLeft := x == 0
	isRight := x == w-1
	diagonal := r.opts.Conn == grid.Conn8

	if !isTop {
		up := current - w
		if g.Passable(up) {
			buf = append(buf, up)
		}
		if diagonal {
			if !isLeft && g.Passable(up-1) {
				buf = append(buf, up-1)
			}
			if !isRight && g.Passable(up+1) {
				buf = append(buf, up+1)
			}
		}
	}
	if !isLeft && g.Passable(current-1) {
		buf = append(buf, current-1)
	}
	if !isRight && g.Passable(current+1) {
		buf = append(buf, current+1)
	}
	if !isBottom {
		down := current + w
		if g.Passable(down) {
			buf = append(buf, down)
		}
		if diagonal {
			if !isLeft && g.Passable(down-1) {
				buf = append(buf, down-1)
			}
			if !isRight && g.Passable(down+1) {
				buf = append(buf, down+1)
			}
		}
	}

	return buf
}

// estimate returns the heuristic distance from cell n to the goal.
func (r *runner) estimate(n int) int64 {
	if r.opts.Heuristic == HChebyshev {
		return r.g.Chebyshev(n, r.goal)
	}

	return r.g.Manhattan(n, r.goal)
}

// reconstruct walks predecessor links from the goal back to the start and
// reverses the collected cells. A goal with no predecessor entry was never
// discovered, so the search failed.
func (r *runner) reconstruct() ([]int, error) {
	if _, ok := r.came[r.goal]; !ok {
		return nil, ErrUnreachable
	}
	var path []int
	for at := r.goal; ; {
		prev, ok := r.came[at]
		if !ok {
			break // reached the start, which has no predecessor
		}
		path = append(path, at)
		at = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
