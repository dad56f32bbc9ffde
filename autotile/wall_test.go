package autotile

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

func TestWallMaskBitsRoundTrip(t *testing.T) {
	for b := uint16(0); b < WallMaskCount; b++ {
		require.Equal(t, b, WallMaskFromBits(b).Bits())
	}
}

func TestSelectWallFramesIdempotent(t *testing.T) {
	for b := uint16(0); b < WallMaskCount; b++ {
		m := WallMaskFromBits(b)
		first := SelectWallFrames(m)
		second := SelectWallFrames(m)
		require.Equalf(t, first, second, "mask %010b", b)
		require.Equalf(t, deriveWallState(m), first, "table entry %010b", b)
	}
}

func TestSelectWallFramesRules(t *testing.T) {
	for b := uint16(0); b < WallMaskCount; b++ {
		m := WallMaskFromBits(b)
		s := SelectWallFrames(m)

		switch {
		case m.Below && m.Alt:
			require.Equal(t, WallTopB, s.Primary)
		case m.Below:
			require.Equal(t, WallTopA, s.Primary)
		default:
			require.Equal(t, WallFront, s.Primary)
		}

		if m.Below && !m.BelowIsTop {
			require.Equal(t, FrontEdge, s.FrontEdge)
		} else {
			require.Equal(t, FrameNone, s.FrontEdge)
		}

		front := !m.Below
		switch {
		case m.LeftIsTop, front && m.Left:
			require.Equal(t, FrameNone, s.Left, "mask %010b", b)
		case front:
			require.Equal(t, WallLeftFront, s.Left, "mask %010b", b)
		default:
			require.Equal(t, WallLeftTop, s.Left, "mask %010b", b)
		}
		switch {
		case m.RightIsTop, front && m.Right:
			require.Equal(t, FrameNone, s.Right, "mask %010b", b)
		case front:
			require.Equal(t, WallRightFront, s.Right, "mask %010b", b)
		default:
			require.Equal(t, WallRightTop, s.Right, "mask %010b", b)
		}

		if m.Above {
			require.Equal(t, FrameNone, s.BackEdge)
		} else {
			require.Equal(t, BackEdge, s.BackEdge)
		}

		if m.BelowIsTop && m.LeftIsTop && !m.LowerLeftIsTop {
			require.Equal(t, LowerLeftCorner, s.LowerLeftCorner)
		} else {
			require.Equal(t, FrameNone, s.LowerLeftCorner)
		}
		if m.BelowIsTop && m.RightIsTop && !m.LowerRightIsTop {
			require.Equal(t, LowerRightCorner, s.LowerRightCorner)
		} else {
			require.Equal(t, FrameNone, s.LowerRightCorner)
		}
	}
}

func TestSelectWallFramesGolden(t *testing.T) {
	cases := []struct {
		name string
		mask WallMask
		want WallState
	}{
		{
			name: "isolated",
			mask: WallMask{},
			want: WallState{Primary: WallFront, Left: WallLeftFront, Right: WallRightFront, BackEdge: BackEdge},
		},
		{
			name: "front_run_middle",
			mask: WallMask{Left: true, Right: true},
			want: WallState{Primary: WallFront, BackEdge: BackEdge},
		},
		{
			name: "top_over_front",
			mask: WallMask{Below: true},
			want: WallState{Primary: WallTopA, Left: WallLeftTop, Right: WallRightTop, FrontEdge: FrontEdge, BackEdge: BackEdge},
		},
		{
			name: "alt_top_over_front",
			mask: WallMask{Below: true, Alt: true},
			want: WallState{Primary: WallTopB, Left: WallLeftTop, Right: WallRightTop, FrontEdge: FrontEdge, BackEdge: BackEdge},
		},
		{
			name: "alt_ignored_on_front",
			mask: WallMask{Alt: true, Above: true},
			want: WallState{Primary: WallFront, Left: WallLeftFront, Right: WallRightFront},
		},
		{
			name: "buried_top",
			mask: WallMask{Above: true, Below: true, Left: true, Right: true, BelowIsTop: true, LeftIsTop: true, RightIsTop: true, LowerLeftIsTop: true, LowerRightIsTop: true},
			want: WallState{Primary: WallTopA},
		},
		{
			name: "concave_corners",
			mask: WallMask{Above: true, Below: true, Left: true, Right: true, BelowIsTop: true, LeftIsTop: true, RightIsTop: true},
			want: WallState{Primary: WallTopA, LowerLeftCorner: LowerLeftCorner, LowerRightCorner: LowerRightCorner},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, SelectWallFrames(c.mask))
		})
	}
}

// A top tile next to a front wall keeps its border, while a front tile next
// to a top wall loses it. The rule is kept as the art was authored for it.
func TestSelectWallFramesAsymmetricBorders(t *testing.T) {
	topNextToFront := SelectWallFrames(WallMask{Below: true, BelowIsTop: true, Left: true})
	assert.Equal(t, WallLeftTop, topNextToFront.Left)

	frontNextToTop := SelectWallFrames(WallMask{Left: true, LeftIsTop: true})
	assert.Equal(t, FrameNone, frontNextToTop.Left)

	// leftIsTop without left is not validated and still suppresses the border.
	unvalidated := SelectWallFrames(WallMask{LeftIsTop: true})
	assert.Equal(t, FrameNone, unvalidated.Left)
	assert.Equal(t, WallRightFront, unvalidated.Right)
}

func TestNewWallDefaults(t *testing.T) {
	w := NewWall(32, 32, &fakeStrip{})
	assert.Equal(t, WallFront, w.PrimaryFrame())
	assert.True(t, w.IsFrontWall())
	assert.Equal(t, FrameNone, w.LeftFrame())
	assert.Equal(t, FrameNone, w.RightFrame())
	assert.Equal(t, FrameNone, w.FrontEdgeFrame())
	assert.Equal(t, FrameNone, w.BackEdgeFrame())
	assert.Equal(t, FrameNone, w.LowerLeftCornerFrame())
	assert.Equal(t, FrameNone, w.LowerRightCornerFrame())
	assert.Equal(t, ShapeFullBox, w.Shape())
}

func TestWallAutotileReplacesState(t *testing.T) {
	w := NewWall(32, 32, &fakeStrip{})
	w.Autotile(WallMask{Below: true, BelowIsTop: true, LeftIsTop: true, Left: true})
	require.Equal(t, WallTopA, w.PrimaryFrame())
	require.Equal(t, LowerLeftCorner, w.LowerLeftCornerFrame())

	w.Autotile(WallMask{Above: true})
	assert.Equal(t, WallState{Primary: WallFront, Left: WallLeftFront, Right: WallRightFront}, w.State())
}

func TestWallUseAlternateHitbox(t *testing.T) {
	t.Run("front", func(t *testing.T) {
		body := &fakeBody{}
		w := NewWall(32, 32, &fakeStrip{})
		w.SetBody(body)
		require.Len(t, body.boxes, 1)

		assert.True(t, w.UseAlternateHitbox())
		assert.True(t, w.AlternateHitbox())
		assert.Equal(t, ShapeTopHalfBox, w.Shape())
		got, _ := body.last()
		assert.Equal(t, box{halfW: 16, halfH: 8, offset: cp.Vector{Y: -8}}, got)
	})

	for _, primary := range []WallMask{{Below: true}, {Below: true, Alt: true}} {
		body := &fakeBody{}
		w := NewWall(32, 32, &fakeStrip{})
		w.SetBody(body)
		w.Autotile(primary)
		before := w.State()

		assert.False(t, w.UseAlternateHitbox())
		assert.False(t, w.AlternateHitbox())
		assert.Equal(t, ShapeFullBox, w.Shape())
		assert.Equal(t, before, w.State())
		assert.Len(t, body.boxes, 1)
	}
}

func TestWallAutotileRestoresFullBox(t *testing.T) {
	body := &fakeBody{}
	w := NewWall(32, 32, &fakeStrip{})
	w.SetBody(body)
	require.True(t, w.UseAlternateHitbox())

	w.Autotile(WallMask{Above: true})
	assert.True(t, w.AlternateHitbox(), "still a front wall")
	assert.Len(t, body.boxes, 2)

	w.Autotile(WallMask{Below: true})
	assert.False(t, w.AlternateHitbox())
	assert.Equal(t, ShapeFullBox, w.Shape())
	got, _ := body.last()
	assert.Equal(t, box{halfW: 16, halfH: 16}, got)
}

func TestWallDrawOrder(t *testing.T) {
	strip := &fakeStrip{}
	w := NewWallWithState(32, 32, strip, WallState{
		Primary:          WallTopA,
		Left:             WallLeftTop,
		Right:            WallRightTop,
		FrontEdge:        FrontEdge,
		BackEdge:         BackEdge,
		LowerLeftCorner:  LowerLeftCorner,
		LowerRightCorner: LowerRightCorner,
	})
	w.Placement.Position = cp.Vector{X: 16, Y: 48}

	c := &recordingCanvas{}
	w.Draw(c)
	assert.Equal(t, []int{16, 18, 19, 22, 20, 21}, c.frames())
	for _, q := range c.quads {
		assert.Equal(t, colornames.Red, q.tint)
		assert.Equal(t, cp.Vector{X: 16, Y: 48}, q.pos)
	}

	top := &recordingCanvas{}
	w.DrawTop(top)
	require.Len(t, top.quads, 2)
	assert.Equal(t, int(BackEdge), top.quads[0].frame)
	assert.Equal(t, cp.Vector{X: 16, Y: 16}, top.quads[0].pos)
	assert.Equal(t, int(BackLine), top.quads[1].frame)
	assert.Equal(t, cp.Vector{X: 16, Y: 48}, top.quads[1].pos)
	assert.Equal(t, colornames.White, top.quads[1].tint)
}

func TestWallDrawSkipsUnsetLayers(t *testing.T) {
	w := NewWall(32, 32, &fakeStrip{})
	c := &recordingCanvas{}
	w.Draw(c)
	assert.Equal(t, []int{int(WallFront)}, c.frames())

	top := &recordingCanvas{}
	w.DrawTop(top)
	assert.Empty(t, top.quads, "no back edge set")

	w.Autotile(WallMask{})
	top = &recordingCanvas{}
	w.DrawTop(top)
	assert.Equal(t, []int{int(BackEdge)}, top.frames(), "front walls skip the back line")
}

func TestWallDrawNilStrip(t *testing.T) {
	w := NewWall(32, 32, nil)
	c := &recordingCanvas{}
	assert.NotPanics(t, func() {
		w.Draw(c)
		w.DrawTop(c)
	})
	assert.Empty(t, c.quads)
}

func TestDrawPassesOrdersAcrossWalls(t *testing.T) {
	a := NewWall(32, 32, &fakeStrip{})
	a.Autotile(WallMask{Below: true})
	b := NewWall(32, 32, &fakeStrip{})
	b.Autotile(WallMask{Above: true, Left: true, Right: true})

	c := &recordingCanvas{}
	DrawPasses(c, a, nil, b)
	assert.Equal(t, []int{
		int(WallTopA), int(WallLeftTop), int(WallRightTop), int(FrontEdge),
		int(WallFront),
		int(BackEdge), int(BackLine),
	}, c.frames())
}
