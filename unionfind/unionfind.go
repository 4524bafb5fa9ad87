package unionfind

import "errors"

// ErrNotRegistered indicates a key that was never passed to MakeSet.
var ErrNotRegistered = errors.New("unionfind: key not registered")

// sentinel is the reserved arena slot every root points at.
const sentinel = 0

// DisjointSet is an arena-backed union-find forest over keys of type K.
type DisjointSet[K comparable] struct {
	parent []int
	height []int
	keys   []K
	index  map[K]int
}

// New returns an empty forest with capacity for n keys.
func New[K comparable](n int) *DisjointSet[K] {
	var zero K
	d := &DisjointSet[K]{
		parent: make([]int, 1, n+1),
		height: make([]int, 1, n+1),
		keys:   make([]K, 1, n+1),
		index:  make(map[K]int, n),
	}
	d.keys[sentinel] = zero

	return d
}

// MakeSet registers each key as a singleton. Keys already present are
// left untouched.
// Complexity: O(len(keys)).
func (d *DisjointSet[K]) MakeSet(keys ...K) {
	for _, k := range keys {
		if _, ok := d.index[k]; ok {
			continue
		}
		d.index[k] = len(d.keys)
		d.keys = append(d.keys, k)
		d.parent = append(d.parent, sentinel)
		d.height = append(d.height, 0)
	}
}

// Len returns the number of registered keys.
func (d *DisjointSet[K]) Len() int {
	return len(d.index)
}

// Contains reports whether k was registered.
func (d *DisjointSet[K]) Contains(k K) bool {
	_, ok := d.index[k]

	return ok
}

// Find returns the root key of x's set.
//
// Steps:
//  1. Walk parent links until the record parented by the sentinel.
//  2. Re-walk the same path pointing every record straight at that root.
//
// Errors:
//   - ErrNotRegistered if x was never passed to MakeSet.
func (d *DisjointSet[K]) Find(x K) (K, error) {
	i, ok := d.index[x]
	if !ok {
		var zero K
		return zero, ErrNotRegistered
	}

	return d.keys[d.root(i)], nil
}

// root returns the arena index of i's root, compressing the path.
func (d *DisjointSet[K]) root(i int) int {
	r := i
	for d.parent[r] != sentinel {
		r = d.parent[r]
	}
	for i != r {
		next := d.parent[i]
		d.parent[i] = r
		i = next
	}

	return r
}

// Union merges the sets of x and y and reports whether they were distinct.
// The lower tree is hung under the higher one; on a tie y's root becomes
// the parent and its height grows by one.
//
// Errors:
//   - ErrNotRegistered if x or y was never passed to MakeSet.
func (d *DisjointSet[K]) Union(x, y K) (bool, error) {
	ix, ok := d.index[x]
	if !ok {
		return false, ErrNotRegistered
	}
	iy, ok := d.index[y]
	if !ok {
		return false, ErrNotRegistered
	}
	rx, ry := d.root(ix), d.root(iy)
	if rx == ry {
		return false, nil
	}

	switch {
	case d.height[rx] > d.height[ry]:
		d.parent[ry] = rx
	case d.height[rx] < d.height[ry]:
		d.parent[rx] = ry
	default:
		d.parent[rx] = ry
		d.height[ry]++
	}

	return true, nil
}

// Connected reports whether x and y share a root.
func (d *DisjointSet[K]) Connected(x, y K) (bool, error) {
	rx, err := d.Find(x)
	if err != nil {
		return false, err
	}
	ry, err := d.Find(y)
	if err != nil {
		return false, err
	}

	return rx == ry, nil
}

// Height returns the stored height of x's root. Mainly for tests.
func (d *DisjointSet[K]) Height(x K) (int, error) {
	i, ok := d.index[x]
	if !ok {
		return 0, ErrNotRegistered
	}

	return d.height[d.root(i)], nil
}

// Clone returns an independent copy of the forest.
// Complexity: O(n).
func (d *DisjointSet[K]) Clone() *DisjointSet[K] {
	cp := &DisjointSet[K]{
		parent: append([]int(nil), d.parent...),
		height: append([]int(nil), d.height...),
		keys:   append([]K(nil), d.keys...),
		index:  make(map[K]int, len(d.index)),
	}
	for k, i := range d.index {
		cp.index[k] = i
	}

	return cp
}
