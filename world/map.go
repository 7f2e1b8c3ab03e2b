package world

// Map is a rectangular tile grid indexed [row][col].
type Map [][]Tile

// NewMap allocates a height x width grid of a single kind.
func NewMap(height, width int, k Kind) Map {
	m := make(Map, height)
	for r := range m {
		m[r] = make([]Tile, width)
		for c := range m[r] {
			m[r][c] = Of(k)
		}
	}
	return m
}

// Height returns the number of rows.
func (m Map) Height() int {
	return len(m)
}

// Width returns the number of columns.
func (m Map) Width() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// InBounds reports whether (r, c) is on the grid.
func (m Map) InBounds(r, c int) bool {
	return r >= 0 && c >= 0 && r < len(m) && c < len(m[0])
}

// At returns the tile at (r, c). Caller guarantees bounds.
func (m Map) At(r, c int) Tile {
	return m[r][c]
}

// Set places a tile at (r, c). Caller guarantees bounds.
func (m Map) Set(r, c int, t Tile) {
	m[r][c] = t
}
