package allocator

// Combinations lazily enumerates all k-element index subsets of
// {0, ..., n-1} in lexicographic order. It is finite and restartable,
// and carries no knowledge of what the indices select, so any cost
// model can be layered on top.
type Combinations struct {
	n, k    int
	indices []int
	started bool
	done    bool
}

// NewCombinations creates an iterator over C(n, k) subsets.
// k > n yields no subsets; k == 0 yields exactly one empty subset.
func NewCombinations(n, k int) *Combinations {
	c := &Combinations{n: n, k: k}
	c.Reset()
	return c
}

// Reset rewinds the iterator to the first combination.
func (c *Combinations) Reset() {
	c.started = false
	c.done = c.k > c.n || c.k < 0 || c.n < 0
	c.indices = make([]int, c.k)
	for i := range c.indices {
		c.indices[i] = i
	}
}

// Next returns the next combination of indices, or false when the
// sequence is exhausted. The returned slice is reused between calls;
// callers that keep a combination must copy it.
func (c *Combinations) Next() ([]int, bool) {
	if c.done {
		return nil, false
	}

	if !c.started {
		c.started = true
		return c.indices, true
	}

	// Advance the rightmost index that can still move.
	i := c.k - 1
	for i >= 0 && c.indices[i] == c.n-c.k+i {
		i--
	}
	if i < 0 {
		c.done = true
		return nil, false
	}

	c.indices[i]++
	for j := i + 1; j < c.k; j++ {
		c.indices[j] = c.indices[j-1] + 1
	}
	return c.indices, true
}
