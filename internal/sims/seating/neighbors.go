package seating

import "cellgen/internal/core"

// Adjacent counts occupied seats among the eight immediate neighbors.
// Positions outside the layout do not count.
var Adjacent core.NeighborStrategy[Seat] = core.StrategyFunc[Seat](adjacentOccupied)

// Visible counts, for each of the eight compass directions, whether the first
// seat seen from the source is occupied. Floor is looked through; walking off
// the layout ends the direction with no match.
var Visible core.NeighborStrategy[Seat] = core.StrategyFunc[Seat](visibleOccupied)

func adjacentOccupied(space core.Space[Seat], at core.Coord) int {
	n := 0
	for c := range at.Neighbors() {
		if s, ok := space.Lookup(c); ok && s == Occupied {
			n++
		}
	}
	return n
}

func visibleOccupied(space core.Space[Seat], at core.Coord) int {
	n := 0
	for _, dir := range core.Offsets(2) {
		pos := at.Add(dir)
		for {
			s, ok := space.Lookup(pos)
			if !ok {
				break
			}
			if s != Floor {
				if s == Occupied {
					n++
				}
				break
			}
			pos = pos.Add(dir)
		}
	}
	return n
}
