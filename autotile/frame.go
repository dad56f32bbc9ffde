package autotile

import "strconv"

// Frame is an index into the wall sheet.
type Frame int

// FrameNone marks an unused wall layer.
const FrameNone Frame = 0

const (
	BackEdge         Frame = 8
	WallTopA         Frame = 16
	WallTopB         Frame = 17
	WallLeftTop      Frame = 18
	WallRightTop     Frame = 19
	LowerLeftCorner  Frame = 20
	LowerRightCorner Frame = 21
	FrontEdge        Frame = 22
	BackLine         Frame = 23
	WallFront        Frame = 24
	WallLeftFront    Frame = 25
	WallRightFront   Frame = 26
)

var frameNames = map[Frame]string{
	FrameNone:        "none",
	BackEdge:         "back-edge",
	WallTopA:         "top-a",
	WallTopB:         "top-b",
	WallLeftTop:      "left-top",
	WallRightTop:     "right-top",
	LowerLeftCorner:  "lower-left-corner",
	LowerRightCorner: "lower-right-corner",
	FrontEdge:        "front-edge",
	BackLine:         "back-line",
	WallFront:        "front",
	WallLeftFront:    "left-front",
	WallRightFront:   "right-front",
}

func (f Frame) String() string {
	if name, ok := frameNames[f]; ok {
		return name
	}
	return "frame(" + strconv.Itoa(int(f)) + ")"
}

// Set reports whether the frame is drawn.
func (f Frame) Set() bool { return f != FrameNone }
