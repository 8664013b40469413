package engine

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/pathfx/renderer"
)

// DrawParticles renders the live set as age-faded points. Must be
// called inside a 3D drawing block.
func (e *Engine) DrawParticles() {
	query := e.filter.Query()
	for query.Next() {
		pos, _, life, _ := query.Get()
		if life.Start <= 0 {
			continue
		}
		ratio := life.Remaining / life.Start
		color := rl.Color{
			R: 120,
			G: 200,
			B: 255,
			A: uint8(60 + 195*ratio),
		}
		rl.DrawPoint3D(rl.Vector3{
			X: float32(pos.Vec.X),
			Y: float32(pos.Vec.Y),
			Z: float32(pos.Vec.Z),
		}, color)
	}
}

// DrawParticlesAtlas renders the live set as billboard sprites, with the
// atlas frame indexed by normalized age. Must be called inside a 3D
// drawing block.
func (e *Engine) DrawParticlesAtlas(camera rl.Camera, atlas *renderer.AtlasAnimator) {
	query := e.filter.Query()
	for query.Next() {
		pos, _, life, _ := query.Get()
		if life.Start <= 0 {
			continue
		}
		age := 1 - life.Remaining/life.Start
		atlas.Draw(camera, pos.Vec, age)
	}
}
