package tilemap

import (
	"container/heap"
	"fmt"
)

// FindPath runs A* over m from start to goal using the Euclidean heuristic
// and the 1.0/1.4 step weights. It returns the path as flat tile indices —
// goal included, start excluded — together with its total movement cost.
//
// Outcomes mirror the astar package: ErrUnreachable when no route exists,
// ErrNilMap / ErrOutOfBounds on invalid input, and an empty path with zero
// cost when start == goal.
func FindPath(m *Map, start, goal int) ([]int, float64, error) {
	if m == nil {
		return nil, 0, ErrNilMap
	}
	if start < 0 || start >= m.Len() {
		return nil, 0, fmt.Errorf("%w: start %d not in [0,%d)", ErrOutOfBounds, start, m.Len())
	}
	if goal < 0 || goal >= m.Len() {
		return nil, 0, fmt.Errorf("%w: goal %d not in [0,%d)", ErrOutOfBounds, goal, m.Len())
	}
	if start == goal {
		return nil, 0, nil
	}

	frontier := make(exitQueue, 0, m.Width()+m.Height())
	heap.Push(&frontier, &queuedTile{tile: start, priority: 0})

	cameFrom := make(map[int]int)
	costSoFar := map[int]float64{start: 0}

	var buf [8]Exit
	for frontier.Len() > 0 {
		current := heap.Pop(&frontier).(*queuedTile).tile
		if current == goal {
			break
		}
		for _, exit := range m.Exits(current, buf[:0]) {
			tentative := costSoFar[current] + exit.Cost
			if known, seen := costSoFar[exit.To]; seen && tentative >= known {
				continue
			}
			costSoFar[exit.To] = tentative
			cameFrom[exit.To] = current
			heap.Push(&frontier, &queuedTile{
				tile:     exit.To,
				priority: tentative + m.Distance(exit.To, goal),
			})
		}
	}

	if _, ok := cameFrom[goal]; !ok {
		return nil, 0, ErrUnreachable
	}
	var path []int
	for at := goal; ; {
		prev, ok := cameFrom[at]
		if !ok {
			break
		}
		path = append(path, at)
		at = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, costSoFar[goal], nil
}

// queuedTile is one frontier entry in the float-cost priority queue.
type queuedTile struct {
	tile     int
	priority float64
}

// exitQueue implements heap.Interface as a min-queue on (priority, tile).
// The tile index tie-break keeps expansion order deterministic.
type exitQueue []*queuedTile

func (q exitQueue) Len() int { return len(q) }

func (q exitQueue) Less(i, j int) bool {
	if q[i].priority != q[j].priority {
		return q[i].priority < q[j].priority
	}

	return q[i].tile < q[j].tile
}

func (q exitQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *exitQueue) Push(x interface{}) { *q = append(*q, x.(*queuedTile)) }

func (q *exitQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]

	return item
}
