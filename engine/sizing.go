package engine

// MaxSnakes is the largest slot count any Preset supports, and the fixed
// length of every per-snake vector on a Board regardless of how many
// snakes are actually alive in a game.
const MaxSnakes = 16

// BoardCapacity is the fixed length of a Board's cell array: large enough
// to hold the biggest recommended preset (50x50).
const BoardCapacity = 50 * 50

// Preset is a recommended (width, height, max snake count) combination.
// spec.md calls these out as recommended, not mandatory — NewBoard accepts
// any width*height <= BoardCapacity and any snake count <= MaxSnakes.
type Preset struct {
	Width      int
	Height     int
	MaxSnakes  int
	IndexWidth int // bit width of the smallest unsigned integer type (8 or 16) that can address a cell index at this size, informational only
}

// Presets lists the recommended board sizes in ascending order.
var Presets = []Preset{
	{Width: 7, Height: 7, MaxSnakes: 4, IndexWidth: 8},
	{Width: 11, Height: 11, MaxSnakes: 4, IndexWidth: 8},
	{Width: 15, Height: 15, MaxSnakes: 8, IndexWidth: 8},
	{Width: 25, Height: 25, MaxSnakes: 8, IndexWidth: 16},
	{Width: 50, Height: 50, MaxSnakes: 16, IndexWidth: 16},
}

// PresetFor returns the smallest Preset that can accommodate a board of
// the given width, height, and snake count, if any.
func PresetFor(width, height, snakeCount int) (Preset, bool) {
	for _, p := range Presets {
		if p.Width >= width && p.Height >= height && p.MaxSnakes >= snakeCount {
			return p, true
		}
	}
	return Preset{}, false
}
