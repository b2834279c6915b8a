// octview visualizes the octree from above: balls tween through a cubic
// world while the tree subdivides and prunes around them. Move the mouse to
// drop a vertical ray into the scene; the closest hit lights up.
package main

import (
	"fmt"
	"image/color"
	"log"
	"math/rand/v2"

	"github.com/chewxy/math32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/arbor"
)

const (
	screenW = 900
	screenH = 900

	worldSize  = 450 // world spans [-worldSize, worldSize] on every axis
	treeLevels = 6
	ballCount  = 80

	minRadius   = 4.0
	maxRadius   = 14.0
	minDuration = 2.0
	maxDuration = 6.0
)

type ball struct {
	arbor.NodeBase
	center arbor.Vec3
	radius float32
	tweens [3]*gween.Tween
}

func newBall() *ball {
	b := &ball{
		center: randomPoint(),
		radius: minRadius + rand.Float32()*(maxRadius-minRadius),
	}
	for axis := range b.tweens {
		b.retarget(axis)
	}
	return b
}

func randomPoint() arbor.Vec3 {
	coord := func() float32 { return rand.Float32()*2*worldSize - worldSize }
	return arbor.Vec3{X: coord(), Y: coord(), Z: coord()}
}

// retarget starts a new tween for one axis toward a random coordinate.
func (b *ball) retarget(axis int) {
	from := [3]float32{b.center.X, b.center.Y, b.center.Z}[axis]
	to := rand.Float32()*2*worldSize - worldSize
	duration := minDuration + rand.Float32()*(maxDuration-minDuration)
	b.tweens[axis] = gween.New(from, to, duration, ease.InOutQuad)
}

// advance steps the tweens and reports whether the ball moved.
func (b *ball) advance(dt float32) {
	coords := [3]*float32{&b.center.X, &b.center.Y, &b.center.Z}
	for axis, tw := range b.tweens {
		value, done := tw.Update(dt)
		*coords[axis] = value
		if done {
			b.retarget(axis)
		}
	}
}

func (b *ball) WorldBoundingBox() arbor.Box3 {
	half := arbor.Vec3{X: b.radius, Y: b.radius, Z: b.radius}
	return arbor.Box3{Min: b.center.Sub(half), Max: b.center.Add(half)}
}

func (b *ball) Flags() arbor.NodeFlags {
	return arbor.FlagEnabled | arbor.FlagGeometry
}

func (b *ball) LayerMask() uint32 {
	return arbor.LayerMaskAll
}

func (b *ball) OnRaycast(ray arbor.Ray, maxDistance float32, results *[]arbor.RaycastResult) {
	d := ray.HitDistanceSphere(arbor.Sphere{Center: b.center, Radius: b.radius})
	if d >= maxDistance || math32.IsInf(d, 1) {
		return
	}
	pos := ray.Point(d)
	*results = append(*results, arbor.RaycastResult{
		Position: pos,
		Normal:   pos.Sub(b.center).Normalize(),
		Distance: d,
		Node:     b,
	})
}

type game struct {
	tree  *arbor.Octree
	balls []*ball
	frame uint16
	hit   arbor.RaycastResult
}

func newGame() *game {
	g := &game{tree: arbor.NewOctree()}
	g.tree.Resize(arbor.Box3Uniform(worldSize), treeLevels)
	for i := 0; i < ballCount; i++ {
		b := newBall()
		g.balls = append(g.balls, b)
		g.tree.QueueUpdate(b)
	}
	return g
}

func (g *game) Update() error {
	dt := float32(1.0 / float64(ebiten.TPS()))
	for _, b := range g.balls {
		b.advance(dt)
		g.tree.QueueUpdate(b)
	}
	g.frame++
	g.tree.Update(g.frame)

	// Drop a ray straight down through the cursor's world position.
	cx, cy := ebiten.CursorPosition()
	ray := arbor.NewRay(
		arbor.Vec3{X: screenToWorld(cx), Y: 2 * worldSize, Z: screenToWorld(cy)},
		arbor.Vec3{Y: -1},
	)
	g.hit = g.tree.RaycastSingle(ray, arbor.FlagGeometry, math32.Inf(1), arbor.LayerMaskAll)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 15, G: 17, B: 23, A: 255})
	drawOctant(screen, g.tree.Root())

	for _, b := range g.balls {
		clr := color.RGBA{R: 90, G: 160, B: 255, A: 255}
		if g.hit.Node == b {
			clr = color.RGBA{R: 255, G: 120, B: 60, A: 255}
		}
		vector.DrawFilledCircle(screen,
			worldToScreen(b.center.X), worldToScreen(b.center.Z),
			b.radius, clr, true)
	}

	status := fmt.Sprintf("nodes: %d  frame: %d", g.tree.Root().NumNodes(), g.frame)
	if g.hit.Node != nil {
		status += fmt.Sprintf("  hit at %.0f units", g.hit.Distance)
	}
	ebitenutil.DebugPrint(screen, status)
}

func (g *game) Layout(_, _ int) (int, int) {
	return screenW, screenH
}

// drawOctant strokes the octant's region in the XZ plane, descendants
// included. Deeper cells draw darker.
func drawOctant(screen *ebiten.Image, oct *arbor.Octant) {
	box := oct.WorldBoundingBox()
	shade := uint8(40 + 22*oct.Level())
	vector.StrokeRect(screen,
		worldToScreen(box.Min.X), worldToScreen(box.Min.Z),
		box.Size().X, box.Size().Z,
		1, color.RGBA{R: shade, G: shade, B: shade, A: 255}, false)

	for i := 0; i < 8; i++ {
		if child := oct.Child(i); child != nil {
			drawOctant(screen, child)
		}
	}
}

func worldToScreen(v float32) float32 {
	return v + worldSize
}

func screenToWorld(v int) float32 {
	return float32(v) - worldSize
}

func main() {
	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle("arbor octree viewer")
	if err := ebiten.RunGame(newGame()); err != nil {
		log.Fatal(err)
	}
}
