package game

import "github.com/vovakirdan/tui-mergetris/internal/core"

// Shape identifies one of the seven tetromino variants.
type Shape int

const (
	ShapeI Shape = iota
	ShapeO
	ShapeT
	ShapeL
	ShapeJ
	ShapeS
	ShapeZ
	shapeCount
)

// String returns the conventional one-letter name of the shape.
func (s Shape) String() string {
	switch s {
	case ShapeI:
		return "I"
	case ShapeO:
		return "O"
	case ShapeT:
		return "T"
	case ShapeL:
		return "L"
	case ShapeJ:
		return "J"
	case ShapeS:
		return "S"
	case ShapeZ:
		return "Z"
	default:
		return "?"
	}
}

// Offsets holds the four cell positions of a shape relative to its anchor.
// Offsets use the simulation's y-up convention (positive dy = toward the
// top of the board).
type Offsets [4]core.Point

// baseOffsets is the rotation-0 geometry of each shape.
var baseOffsets = [shapeCount]Offsets{
	ShapeI: {{X: -1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}},
	ShapeO: {{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}},
	ShapeT: {{X: -1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}},
	ShapeL: {{X: -1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}},
	ShapeJ: {{X: -1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}, {X: -1, Y: 1}},
	ShapeS: {{X: -1, Y: 0}, {X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}},
	ShapeZ: {{X: 0, Y: 0}, {X: 1, Y: 0}, {X: -1, Y: 1}, {X: 0, Y: 1}},
}

// rotationTable maps shape and rotation index to cell offsets.
// Built once at init from baseOffsets; treated as immutable afterwards.
var rotationTable [shapeCount][4]Offsets

// rotateCW rotates offsets a quarter turn clockwise around the anchor.
// In y-up coordinates the clockwise map is (dx, dy) -> (dy, -dx).
func rotateCW(o Offsets) Offsets {
	var out Offsets
	for i, p := range o {
		out[i] = core.Point{X: p.Y, Y: -p.X}
	}
	return out
}

func init() {
	for s := Shape(0); s < shapeCount; s++ {
		cur := baseOffsets[s]
		for r := 0; r < 4; r++ {
			if s == ShapeO {
				// The O piece does not rotate; all four entries match.
				rotationTable[s][r] = baseOffsets[s]
				continue
			}
			rotationTable[s][r] = cur
			cur = rotateCW(cur)
		}
	}
}

// ShapeOffsets returns the cell offsets for a shape at the given rotation
// index. The rotation index is normalized modulo 4.
func ShapeOffsets(s Shape, rotation int) Offsets {
	return rotationTable[s][((rotation%4)+4)%4]
}

// wallKicks is the ordered sequence of anchor offsets tried when a
// rotation is rejected at the current anchor. The first offset for which
// the rotated shape validates wins.
var wallKicks = [5]core.Point{
	{X: 1, Y: 0},
	{X: -1, Y: 0},
	{X: 0, Y: 1},
	{X: 2, Y: 0},
	{X: -2, Y: 0},
}
