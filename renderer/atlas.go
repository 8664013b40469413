package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r3"
)

// AtlasAnimator selects frames from a texture-atlas sheet by normalized
// particle age and draws them as camera-facing billboards.
type AtlasAnimator struct {
	Texture rl.Texture2D
	Columns int
	Rows    int
	Scale   float32
	Tint    rl.Color
}

// NewAtlasAnimator wraps a loaded sprite sheet laid out in a grid.
func NewAtlasAnimator(texture rl.Texture2D, columns, rows int) *AtlasAnimator {
	if columns < 1 {
		columns = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &AtlasAnimator{
		Texture: texture,
		Columns: columns,
		Rows:    rows,
		Scale:   1,
		Tint:    rl.White,
	}
}

// FrameRect returns the source rectangle for a normalized age in [0,1].
func (a *AtlasAnimator) FrameRect(age float64) rl.Rectangle {
	total := a.Columns * a.Rows
	frame := int(age * float64(total))
	if frame > total-1 {
		frame = total - 1
	}
	if frame < 0 {
		frame = 0
	}
	w := float32(a.Texture.Width) / float32(a.Columns)
	h := float32(a.Texture.Height) / float32(a.Rows)
	return rl.Rectangle{
		X:      float32(frame%a.Columns) * w,
		Y:      float32(frame/a.Columns) * h,
		Width:  w,
		Height: h,
	}
}

// Draw renders the frame for the given age as a billboard at pos.
// Must be called inside a 3D drawing block.
func (a *AtlasAnimator) Draw(camera rl.Camera, pos r3.Vec, age float64) {
	rl.DrawBillboardRec(camera, a.Texture, a.FrameRect(age), toRL(pos),
		rl.Vector2{X: a.Scale, Y: a.Scale}, a.Tint)
}

// GlowSheet builds a procedural single-row sprite sheet of radial glows
// that shrink and dim frame by frame. Requires an initialized window.
func GlowSheet(frames, size int) rl.Texture2D {
	if frames < 1 {
		frames = 1
	}
	sheet := rl.GenImageColor(frames*size, size, rl.Blank)
	for i := 0; i < frames; i++ {
		fade := 1 - float32(i)/float32(frames)
		glow := rl.GenImageGradientRadial(size, size, 0.1+0.5*fade,
			rl.Color{R: 120, G: 200, B: 255, A: uint8(255 * fade)}, rl.Blank)
		rl.ImageDraw(sheet, glow,
			rl.Rectangle{Width: float32(size), Height: float32(size)},
			rl.Rectangle{X: float32(i * size), Width: float32(size), Height: float32(size)},
			rl.White)
		rl.UnloadImage(glow)
	}
	texture := rl.LoadTextureFromImage(sheet)
	rl.UnloadImage(sheet)
	return texture
}
