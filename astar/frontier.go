package astar

// frontierItem is one discovered-but-not-finalized cell awaiting expansion,
// keyed by its estimated total cost.
type frontierItem struct {
	priority int64 // cost so far + heuristic estimate to goal
	cell     int   // flat cell index
}

// frontier is a min-heap of frontierItem ordered by ascending priority;
// equal priorities pop the higher cell index first. The tie-break is
// load-bearing: it makes expansion order, and therefore path choice on
// symmetric grids, deterministic.
//
// Relaxations push duplicates instead of decreasing keys in place
// (lazy decrease-key); stale entries are harmless because their
// re-relaxations cannot improve any cost.
type frontier []frontierItem

// Len returns the number of items in the heap.
func (f frontier) Len() int { return len(f) }

// Less orders by ascending priority, then by descending cell index.
func (f frontier) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}

	return f[i].cell > f[j].cell
}

// Swap swaps two elements in the heap.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(frontierItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}
