package dijkstra

import (
	"fmt"
	"strings"
)

// Reconstruct walks the predecessor tree in res backwards from dest to the
// source and returns the route in forward order.
//
// The caller is expected to check res.Reachable(dest) first; if it did not,
// Reconstruct returns ErrUnreachable rather than a partial path. A source
// equal to dest yields a one-vertex path with no hops and zero cost.
//
// Complexity: O(path length).
func Reconstruct(res *Result, dest int, labels Labeler) (*Path, error) {
	if res == nil {
		return nil, ErrNilResult
	}
	n := res.Order()
	if dest < 0 || dest >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrDestOutOfRange, dest, n)
	}
	if !res.Reachable(dest) {
		return nil, fmt.Errorf("%w: %d", ErrUnreachable, dest)
	}

	// Walk dest → source. A valid tree never needs more than n steps.
	rev := []int{dest}
	for cur := dest; cur != res.Source; {
		p := res.Prev[cur]
		if p == NoPredecessor || len(rev) > n {
			return nil, fmt.Errorf("%w: predecessor chain broken at %d", ErrUnreachable, cur)
		}
		rev = append(rev, p)
		cur = p
	}

	path := &Path{
		Vertices: make([]int, len(rev)),
		Labels:   make([]string, len(rev)),
		Hops:     make([]Hop, 0, len(rev)-1),
		Cost:     res.Dist[dest],
	}
	for i := range rev {
		v := rev[len(rev)-1-i]
		path.Vertices[i] = v
		path.Labels[i] = labels.Label(v)
		if i > 0 {
			path.Hops = append(path.Hops, Hop{From: path.Labels[i-1], To: path.Labels[i]})
		}
	}

	return path, nil
}

// String renders the path as "A->B->C".
func (p *Path) String() string {
	return strings.Join(p.Labels, "->")
}

// Len returns the number of hops.
func (p *Path) Len() int {
	return len(p.Hops)
}
