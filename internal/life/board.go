// Package life implements the Game of Life engine: the board data model,
// the text seed codec, the per-generation transition rule, and the text and
// SVG renderers. The engine is pure computation; persistence and transport
// live with the callers.
package life

// neighborOffsets enumerates the 8 positions around a cell. Positions
// outside the grid count as dead; the boundary does not wrap.
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Board is one Life simulation instance: a rectangular grid of cells plus
// the generation counter and the cell-change delta of the latest transition.
type Board struct {
	grid       [][]bool
	generation int
	delta      int
}

// NewBoard decodes a text seed into a fresh board at generation zero.
func NewBoard(seed string, opts TextOptions) (*Board, error) {
	grid, err := Decode(seed, opts)
	if err != nil {
		return nil, err
	}
	return &Board{grid: grid}, nil
}

// Restore rebuilds a board from persisted state. The grid is copied, and any
// jagged input rows are right-padded with dead cells so the rectangularity
// invariant holds for the lifetime of the board.
func Restore(grid [][]bool, generation, delta int) *Board {
	cols := 0
	for _, row := range grid {
		if len(row) > cols {
			cols = len(row)
		}
	}
	copied := make([][]bool, len(grid))
	for i, row := range grid {
		copied[i] = make([]bool, cols)
		copy(copied[i], row)
	}
	if generation < 0 {
		generation = 0
	}
	if delta < 0 {
		delta = 0
	}
	return &Board{grid: copied, generation: generation, delta: delta}
}

// Generation returns the number of transitions applied since construction.
func (b *Board) Generation() int { return b.generation }

// Delta returns the number of cells changed by the latest transition.
func (b *Board) Delta() int { return b.delta }

// Rows returns the grid height.
func (b *Board) Rows() int { return len(b.grid) }

// Cols returns the grid width.
func (b *Board) Cols() int {
	if len(b.grid) == 0 {
		return 0
	}
	return len(b.grid[0])
}

// Alive reports the cell state at row/col; out-of-bounds positions are dead.
func (b *Board) Alive(row, col int) bool {
	if row < 0 || row >= len(b.grid) {
		return false
	}
	if col < 0 || col >= len(b.grid[row]) {
		return false
	}
	return b.grid[row][col]
}

// Grid returns a deep copy of the current grid.
func (b *Board) Grid() [][]bool {
	grid := make([][]bool, len(b.grid))
	for i, row := range b.grid {
		grid[i] = make([]bool, len(row))
		copy(grid[i], row)
	}
	return grid
}

// Next advances the board one generation and returns the new delta.
//
// The update is synchronous: every neighbor lookup reads the pre-transition
// grid. Generation increments by exactly one; delta is recomputed from
// scratch and counts only this step's changes.
func (b *Board) Next() int {
	next := make([][]bool, len(b.grid))
	delta := 0
	for row := range b.grid {
		next[row] = make([]bool, len(b.grid[row]))
		for col, alive := range b.grid[row] {
			state := nextState(alive, b.neighbors(row, col))
			next[row][col] = state
			if state != alive {
				delta++
			}
		}
	}
	b.grid = next
	b.delta = delta
	b.generation++
	return delta
}

// Terminal reports whether the board reached a fixed point: at least one
// transition has run and the latest one changed nothing. A freshly
// constructed board is never terminal, even when every cell is dead.
func (b *Board) Terminal() bool {
	return b.generation != 0 && b.delta == 0
}

// Text renders the board in the canonical seed encoding. Rendering then
// decoding with the same symbols reproduces the grid.
func (b *Board) Text(opts TextOptions) string {
	return Encode(b.grid, opts)
}

func (b *Board) String() string {
	return b.Text(TextOptions{})
}

// nextState applies the classic rule, in precedence order: reproduction,
// underpopulation, survival, then death by overpopulation or staying dead.
func nextState(alive bool, neighbors int) bool {
	switch {
	case !alive && neighbors == 3:
		return true
	case alive && neighbors < 2:
		return false
	case alive && neighbors <= 3:
		return true
	default:
		return false
	}
}

func (b *Board) neighbors(row, col int) int {
	count := 0
	for _, off := range neighborOffsets {
		if b.Alive(row+off[0], col+off[1]) {
			count++
		}
	}
	return count
}
