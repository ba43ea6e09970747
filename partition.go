package ensemble

import "fmt"

// Partitioner divides a graph's nodes into nparts balanced groups while
// minimizing cut edge weight. Implementations must return one part index
// in [0, nparts) per node, in node order. The adjacency is symmetric; a
// nil Weights slice means all edges count equally.
//
// The built-in implementation is GreedyPartitioner. Callers may substitute
// any k-way partitioner honoring the same contract, such as a METIS
// binding; its errors propagate unchanged to the solver's caller.
type Partitioner interface {
	Partition(nparts int, g CSR) ([]int, error)
}

// GreedyPartitioner is a pure-Go balanced k-way partitioner: breadth-first
// region growing up to balanced part sizes, followed by bounded greedy
// move refinement that relocates a node to the adjacent part with the
// largest cut-weight gain while part sizes stay within balance. Like the
// multilevel partitioners it stands in for, it is a heuristic.
type GreedyPartitioner struct {
	// RefinePasses bounds the number of refinement sweeps. 0 means 8.
	RefinePasses int
}

// Partition assigns each node of g to one of nparts groups.
func (p *GreedyPartitioner) Partition(nparts int, g CSR) ([]int, error) {
	if nparts < 1 {
		return nil, fmt.Errorf("ensemble: nparts must be >= 1, got %d", nparts)
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	n := g.NumNodes()
	parts := make([]int, n)
	if nparts == 1 {
		return parts, nil
	}
	if nparts >= n {
		for i := range parts {
			parts[i] = i
		}
		return parts, nil
	}

	sizes := p.grow(nparts, g, parts)
	p.refine(nparts, g, parts, sizes)
	return parts, nil
}

// grow assigns nodes to parts by BFS region growing. Each part's capacity
// is the ceiling share of the still-unassigned nodes, so the final part
// absorbs exactly the remainder; disconnected regions are handled by
// re-seeding from the lowest unassigned node.
func (p *GreedyPartitioner) grow(nparts int, g CSR, parts []int) []int {
	n := len(parts)
	for i := range parts {
		parts[i] = -1
	}
	sizes := make([]int, nparts)
	queue := make([]int, 0, n)
	seed := 0
	assigned := 0

	for part := 0; part < nparts && assigned < n; part++ {
		capacity := (n - assigned + nparts - part - 1) / (nparts - part)
		queue = queue[:0]

		for sizes[part] < capacity {
			if len(queue) == 0 {
				for seed < n && parts[seed] != -1 {
					seed++
				}
				if seed >= n {
					break
				}
				parts[seed] = part
				sizes[part]++
				assigned++
				queue = append(queue, seed)
				continue
			}
			u := queue[0]
			queue = queue[1:]
			for e := g.Offsets[u]; e < g.Offsets[u+1] && sizes[part] < capacity; e++ {
				v := g.Neighbors[e]
				if v == u || parts[v] != -1 {
					continue
				}
				parts[v] = part
				sizes[part]++
				assigned++
				queue = append(queue, v)
			}
		}
	}
	return sizes
}

// refine sweeps all nodes, moving each to the part holding the most of its
// edge weight when that strictly reduces the cut and both parts stay
// within [floor(n/nparts), ceil(n/nparts)]. Self-loops never count.
func (p *GreedyPartitioner) refine(nparts int, g CSR, parts, sizes []int) {
	n := len(parts)
	minSize := n / nparts
	maxSize := (n + nparts - 1) / nparts
	passes := p.RefinePasses
	if passes == 0 {
		passes = 8
	}

	weightTo := make([]int64, nparts)
	for pass := 0; pass < passes; pass++ {
		moved := false
		for u := 0; u < n; u++ {
			from := parts[u]
			if sizes[from] <= minSize {
				continue
			}
			for q := range weightTo {
				weightTo[q] = 0
			}
			for e := g.Offsets[u]; e < g.Offsets[u+1]; e++ {
				v := g.Neighbors[e]
				if v == u {
					continue
				}
				w := int64(1)
				if g.Weights != nil {
					w = int64(g.Weights[e])
				}
				weightTo[parts[v]] += w
			}

			best, bestGain := from, int64(0)
			for q := 0; q < nparts; q++ {
				if q == from || sizes[q] >= maxSize {
					continue
				}
				if gain := weightTo[q] - weightTo[from]; gain > bestGain {
					best, bestGain = q, gain
				}
			}
			if best != from {
				sizes[from]--
				sizes[best]++
				parts[u] = best
				moved = true
			}
		}
		if !moved {
			break
		}
	}
}

// partitionGraph issues the single partitioning call of a graph-based
// solver and checks the returned membership against the Partitioner
// contract. Partitioner errors propagate unchanged.
func partitionGraph(p Partitioner, nparts int, g CSR) ([]int, error) {
	membership, err := p.Partition(nparts, g)
	if err != nil {
		return nil, err
	}
	if len(membership) != g.NumNodes() {
		return nil, fmt.Errorf("ensemble: partitioner returned %d assignments for %d nodes",
			len(membership), g.NumNodes())
	}
	for i, m := range membership {
		if m < 0 || m >= nparts {
			return nil, fmt.Errorf("ensemble: partitioner assigned node %d to part %d, want [0, %d)",
				i, m, nparts)
		}
	}
	return membership, nil
}
