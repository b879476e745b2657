package gridgraph

// Regions finds every maximal 4-connected area of cells holding the same
// byte. Regions are returned in row-major order of their first cell; the
// cells of a region are listed in discovery order.
//
// Connectivity is always orthogonal here, whatever gg.Conn says, since
// Perimeter and Sides are defined on cell edges.
//
// Time:   O(R·C).
// Memory: O(R·C) for visited flags and output.
func (gg *GridGraph) Regions() []Region {
	total := gg.Rows * gg.Cols
	seen := make([]bool, total)
	var regions []Region

	for r := 0; r < gg.Rows; r++ {
		for c := 0; c < gg.Cols; c++ {
			p0 := Point{r, c}
			i0 := gg.index(p0)
			if seen[i0] {
				continue
			}
			label := gg.cells[r][c]
			// BFS to collect the region
			queue := []int{i0}
			seen[i0] = true
			var cells []Point

			for qi := 0; qi < len(queue); qi++ {
				u := gg.Coordinate(queue[qi])
				cells = append(cells, u)
				for _, d := range deltas {
					v := u.Add(d)
					if !gg.InBounds(v) || gg.cells[v.Row][v.Col] != label {
						continue
					}
					vi := gg.index(v)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			regions = append(regions, Region{Label: label, Cells: cells})
		}
	}
	return regions
}

// Area returns the number of cells in the region.
func (rg Region) Area() int {
	return len(rg.Cells)
}

// Perimeter returns the number of cell edges on the region's boundary,
// holes included.
func (rg Region) Perimeter() int {
	in := rg.set()
	n := 0
	for _, p := range rg.Cells {
		for _, d := range deltas {
			if _, ok := in[p.Add(d)]; !ok {
				n++
			}
		}
	}
	return n
}

// Sides returns the number of straight boundary segments. A polygon has as
// many sides as corners, so each convex and concave corner is counted once.
func (rg Region) Sides() int {
	in := rg.set()
	has := func(p Point) bool { _, ok := in[p]; return ok }
	n := 0
	for _, p := range rg.Cells {
		for i := range deltas {
			a, b := deltas[i], deltas[(i+1)%4]
			inA, inB := has(p.Add(a)), has(p.Add(b))
			switch {
			case !inA && !inB:
				n++ // convex
			case inA && inB && !has(p.Add(a).Add(b)):
				n++ // concave
			}
		}
	}
	return n
}

func (rg Region) set() map[Point]struct{} {
	in := make(map[Point]struct{}, len(rg.Cells))
	for _, p := range rg.Cells {
		in[p] = struct{}{}
	}
	return in
}
