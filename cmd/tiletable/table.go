package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/milk9111/deadzone/autotile"
)

func mark(on bool) string {
	if on {
		return "x"
	}
	return "-"
}

// writeWaterTable prints the 16 water masks with their frame and shape.
func writeWaterTable(out io.Writer) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "bits\tabove\tbelow\tleft\tright\tframe\tshape")
	for bits := 0; bits < 16; bits++ {
		m := autotile.WaterMaskFromBits(uint8(bits))
		frame := autotile.SelectWaterFrame(m)
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%d\t%s\n",
			bits, mark(m.Above), mark(m.Below), mark(m.Left), mark(m.Right),
			frame, autotile.WaterShapeFor(frame))
	}
	return tw.Flush()
}

func writeWallHeader(tw io.Writer) {
	fmt.Fprintln(tw, "bits\tprimary\tleft\tright\tfront_edge\tback_edge\tlower_left\tlower_right")
}

func writeWallRow(tw io.Writer, bits uint16) {
	s := autotile.SelectWallFrames(autotile.WallMaskFromBits(bits))
	fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
		bits, s.Primary, s.Left, s.Right, s.FrontEdge, s.BackEdge, s.LowerLeftCorner, s.LowerRightCorner)
}

// writeWallTable prints the wall layers for the given masks, or for all of
// them when bits is empty.
func writeWallTable(out io.Writer, bits []uint16) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	writeWallHeader(tw)
	if len(bits) == 0 {
		for b := 0; b < autotile.WallMaskCount; b++ {
			writeWallRow(tw, uint16(b))
		}
		return tw.Flush()
	}
	for _, b := range bits {
		if int(b) >= autotile.WallMaskCount {
			return fmt.Errorf("mask %d out of range [0,%d)", b, autotile.WallMaskCount)
		}
		writeWallRow(tw, b)
	}
	return tw.Flush()
}
