package connectivity

// connectedIndexSets partitions the table's element indices into
// connected components under the shared-node relation: two elements are
// connected if their node identifier lists intersect.
//
// Elements are visited once, each opening a singleton cluster. All
// previously formed clusters are then scanned in reverse creation order;
// every cluster sharing a node with the new element is folded into one,
// cascading so that an element bridging several existing clusters merges
// them all within the same pass. Worst case is quadratic in element
// count, acceptable for typical per-region meshes.
//
// In seeded mode only the component containing seedIndex is returned
// (as a single inner slice); the seed opens cluster 0 so its component
// survives at index 0.
func (t *ElementNodeTable) connectedIndexSets(seedIndex int, seeded bool) [][]int {
	if t.Len() == 0 {
		return nil
	}

	clusters := [][]int{{seedIndex}}
	nodeSets := []map[int]struct{}{newNodeSet(t.Nodes[seedIndex])}

	for index := range t.Nodes {
		if index == seedIndex {
			continue
		}

		working := newNodeSet(t.Nodes[index])
		clusters = append(clusters, []int{index})
		nodeSets = append(nodeSets, working)
		workingIndex := len(clusters) - 1

		// Collect every earlier cluster touching the new element. The
		// reverse scan yields descending indices, so the cascading
		// merge below can delete as it goes without invalidating the
		// remaining targets.
		var connections []int
		for target := workingIndex - 1; target >= 0; target-- {
			if intersects(working, nodeSets[target]) {
				connections = append(connections, target)
			}
		}

		for _, target := range connections {
			clusters[target] = append(clusters[target], clusters[workingIndex]...)
			for n := range nodeSets[workingIndex] {
				nodeSets[target][n] = struct{}{}
			}
			clusters = append(clusters[:workingIndex], clusters[workingIndex+1:]...)
			nodeSets = append(nodeSets[:workingIndex], nodeSets[workingIndex+1:]...)
			workingIndex = target
		}
	}

	if seeded {
		return [][]int{clusters[0]}
	}
	return clusters
}

// ConnectedSets returns the connected components of the table under the
// shared-node relation, as lists of element identifiers. The components
// partition the element set; isolated elements form singleton sets.
func (t *ElementNodeTable) ConnectedSets() [][]int {
	sets := t.connectedIndexSets(0, false)
	out := make([][]int, 0, len(sets))
	for _, indices := range sets {
		out = append(out, t.identifiersFor(indices))
	}
	return out
}

// ConnectedSetContaining returns the single connected component holding
// the element with the given identifier
func (t *ElementNodeTable) ConnectedSetContaining(seedIdentifier int) ([]int, error) {
	seedIndex := -1
	for i, id := range t.Identifiers {
		if id == seedIdentifier {
			seedIndex = i
			break
		}
	}
	if seedIndex < 0 {
		return nil, ErrSeedNotFound
	}
	sets := t.connectedIndexSets(seedIndex, true)
	return t.identifiersFor(sets[0]), nil
}

func (t *ElementNodeTable) identifiersFor(indices []int) []int {
	ids := make([]int, len(indices))
	for i, index := range indices {
		ids[i] = t.Identifiers[index]
	}
	return ids
}

func newNodeSet(nodes []int) map[int]struct{} {
	s := make(map[int]struct{}, len(nodes))
	for _, n := range nodes {
		s[n] = struct{}{}
	}
	return s
}

func intersects(a, b map[int]struct{}) bool {
	if len(b) < len(a) {
		a, b = b, a
	}
	for n := range a {
		if _, ok := b[n]; ok {
			return true
		}
	}
	return false
}
