package grid

// neighborOffsets returns the (drow, dcol) offsets for conn.
func neighborOffsets(conn Connectivity) [][2]int {
	if conn == Conn8 {
		return [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	}
	return [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
}

// Regions finds all contiguous regions of free (non-obstacle) cells
// according to conn. Each region is a slice of cell ids in BFS order;
// regions are ordered by their lowest id.
//
// Diagonal adjacency under Conn8 ignores corner rules, so two cells in
// different Conn8 regions are unreachable from each other under any
// corner-cutting policy.
//
// Time:   O(R·C·d), where d = 4 or 8.
// Memory: O(R·C) for visited flags and output.
func (g *Grid) Regions(conn Connectivity) [][]int {
	seen := make([]bool, len(g.cells))
	var comps [][]int
	offsets := neighborOffsets(conn)

	for i0 := range g.cells {
		if g.cells[i0].Obstacle || seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := g.Coordinate(queue[qi])
			for _, d := range offsets {
				v := Coord{Row: u.Row + d[0], Col: u.Col + d[1]}
				if g.Blocked(v) {
					continue
				}
				vi := g.Index(v)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}

// RegionLabels returns, for every cell id, the index of its region in
// Regions(conn) or -1 for obstacles.
func (g *Grid) RegionLabels(conn Connectivity) []int {
	labels := make([]int, len(g.cells))
	for i := range labels {
		labels[i] = -1
	}
	for ri, comp := range g.Regions(conn) {
		for _, id := range comp {
			labels[id] = ri
		}
	}
	return labels
}
