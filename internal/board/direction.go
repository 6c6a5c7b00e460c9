package board

// Direction is the edge tiles slide toward.
type Direction uint8

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Directions lists every direction.
var Directions = []Direction{Left, Right, Up, Down}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return "unknown"
}

// Point is a cell coordinate. X is the column, Y the row.
type Point struct {
	X, Y int
}

// lines returns, for direction d, every row or column of the grid as a list
// of points ordered from the target edge inward.
func (d Direction) lines(width, height int) [][]Point {
	var out [][]Point
	switch d {
	case Left, Right:
		for y := 0; y < height; y++ {
			line := make([]Point, width)
			for i := range line {
				x := i
				if d == Right {
					x = width - 1 - i
				}
				line[i] = Point{X: x, Y: y}
			}
			out = append(out, line)
		}
	case Up, Down:
		for x := 0; x < width; x++ {
			line := make([]Point, height)
			for i := range line {
				y := i
				if d == Down {
					y = height - 1 - i
				}
				line[i] = Point{X: x, Y: y}
			}
			out = append(out, line)
		}
	}
	return out
}
