package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/milk9111/deadzone/autotile"
)

//go:embed *.json
var LevelsFS embed.FS

var ErrEmptyLevel = errors.New("levels: level has no rows")

// Level is the on-disk description of a tile grid.
type Level struct {
	Name       string         `json:"name"`
	Width      int            `json:"width"`
	Height     int            `json:"height"`
	Rows       []string       `json:"rows"`
	AltPattern string         `json:"alt_pattern,omitempty"`
	AltScript  string         `json:"alt_script,omitempty"`
	AltCells   [][2]int       `json:"alt_cells,omitempty"`
	Walls      []WallOverride `json:"walls,omitempty"`
}

// WallOverride pins the frames of one wall, bypassing autotiling.
type WallOverride struct {
	X                int `json:"x"`
	Y                int `json:"y"`
	Primary          int `json:"primary"`
	Left             int `json:"left,omitempty"`
	Right            int `json:"right,omitempty"`
	FrontEdge        int `json:"front_edge,omitempty"`
	BackEdge         int `json:"back_edge,omitempty"`
	LowerLeftCorner  int `json:"lower_left_corner,omitempty"`
	LowerRightCorner int `json:"lower_right_corner,omitempty"`
}

// State returns the pinned frames.
func (o WallOverride) State() autotile.WallState {
	return autotile.WallState{
		Primary:          autotile.Frame(o.Primary),
		Left:             autotile.Frame(o.Left),
		Right:            autotile.Frame(o.Right),
		FrontEdge:        autotile.Frame(o.FrontEdge),
		BackEdge:         autotile.Frame(o.BackEdge),
		LowerLeftCorner:  autotile.Frame(o.LowerLeftCorner),
		LowerRightCorner: autotile.Frame(o.LowerRightCorner),
	}
}

// WallOverrides indexes the level's pinned walls by cell. A later entry for
// the same cell wins.
func (l *Level) WallOverrides() map[[2]int]autotile.WallState {
	out := make(map[[2]int]autotile.WallState, len(l.Walls))
	for _, o := range l.Walls {
		out[[2]int{o.X, o.Y}] = o.State()
	}
	return out
}

// LoadLevelFromFS reads a level, preferring ./levels on disk over the
// embedded copy.
func LoadLevelFromFS(name string) (*Level, error) {
	data, err := os.ReadFile(filepath.Join("levels", name))
	if err != nil {
		data, err = fs.ReadFile(LevelsFS, name)
		if err != nil {
			return nil, fmt.Errorf("read level: %w", err)
		}
	}
	return ParseLevel(data)
}

// ParseLevel decodes and validates a level document.
func ParseLevel(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if len(lvl.Rows) == 0 {
		return nil, ErrEmptyLevel
	}
	if lvl.Height == 0 {
		lvl.Height = len(lvl.Rows)
	}
	if lvl.Width == 0 {
		lvl.Width = len(lvl.Rows[0])
	}
	if lvl.Height != len(lvl.Rows) {
		return nil, fmt.Errorf("levels: height %d but %d rows", lvl.Height, len(lvl.Rows))
	}
	for y, row := range lvl.Rows {
		if len(row) != lvl.Width {
			return nil, fmt.Errorf("levels: row %d has width %d, want %d", y, len(row), lvl.Width)
		}
	}
	return &lvl, nil
}

// Names lists the embedded level files.
func Names() ([]string, error) {
	return fs.Glob(LevelsFS, "*.json")
}
