package arbor

// DependencySorter produces a dependency order: every component reachable
// from the root appears after each component it depends on. Components on a
// cycle, and everything only reachable through one, are left out.
type DependencySorter struct {
	order    []uint32
	unsorted []uint32
}

// Sort orders the components reachable from root through dependentsOf.
// Ties are broken by the order edges were registered. The returned slice is
// owned by the sorter and reused by the next call.
func (s *DependencySorter) Sort(root uint32, dependentsOf func(id uint32) []uint32) []uint32 {
	s.order = s.order[:0]
	s.unsorted = s.unsorted[:0]

	// Discover the reachable set in breadth-first order and count incoming
	// edges from reachable components.
	inDegree := map[uint32]int{root: 0}
	reach := []uint32{root}
	for i := 0; i < len(reach); i++ {
		for _, d := range dependentsOf(reach[i]) {
			if _, seen := inDegree[d]; !seen {
				reach = append(reach, d)
			}
			inDegree[d]++
		}
	}

	queue := []uint32{root}
	emitted := make(map[uint32]bool, len(reach))
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if emitted[id] {
			continue
		}
		emitted[id] = true
		s.order = append(s.order, id)
		for _, d := range dependentsOf(id) {
			if d == root {
				continue
			}
			inDegree[d]--
			if inDegree[d] == 0 {
				queue = append(queue, d)
			}
		}
	}

	for _, id := range reach {
		if !emitted[id] {
			s.unsorted = append(s.unsorted, id)
		}
	}
	return s.order
}

// Unsorted returns the reachable components the last Sort could not order.
func (s *DependencySorter) Unsorted() []uint32 { return s.unsorted }
