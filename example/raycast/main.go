// Command raycast renders a small scene of spheres and boxes into the
// terminal by casting one ray per character cell. The camera frustum is
// extracted from the projection*view matrix and used to cull objects before
// any rays are traced.
//
// Controls: arrow keys orbit the camera, +/- zoom, j toggles sample jitter,
// q or Escape quits.
package main

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vantor3d/geom"
)

// Darker to brighter, indexed by proximity of the nearest hit.
const shadeRamp = ".:-=+*#%@"

// Terminal cells are roughly twice as tall as wide.
const cellAspect = 0.5

type object struct {
	sphere *geom.Sphere
	box    *geom.AABox
}

// bounds returns a bounding box for frustum culling.
func (o object) bounds() geom.AABox {
	if o.box != nil {
		return *o.box
	}
	r := mgl64.Vec3{o.sphere.Radius, o.sphere.Radius, o.sphere.Radius}
	return geom.AABoxFromCorners(o.sphere.Center.Sub(r), o.sphere.Center.Add(r))
}

func buildScene() []object {
	objects := []object{
		{sphere: &geom.Sphere{Center: mgl64.Vec3{0, 1, 0}, Radius: 1.5}},
		{sphere: &geom.Sphere{Center: mgl64.Vec3{-4, 0.5, 2}, Radius: 0.75}},
	}

	boxes := []geom.AABox{
		geom.AABoxFromCorners(mgl64.Vec3{-10, -1.5, -10}, mgl64.Vec3{10, -1, 10}),
		geom.AABoxFromCorners(mgl64.Vec3{3, -1, -2}, mgl64.Vec3{5, 2, 0}),
		geom.AABoxFromCorners(mgl64.Vec3{-6, -1, -5}, mgl64.Vec3{-4.5, 0.5, -3.5}),
	}
	for i := range boxes {
		objects = append(objects, object{box: &boxes[i]})
	}

	// A ring of beads around the central sphere.
	ring := geom.Circle3{
		Center: mgl64.Vec3{0, 1, 0},
		Normal: mgl64.Vec3{0, 1, 0.25}.Normalize(),
		Radius: 3,
	}
	for _, p := range ring.Discretize(9, 0, 0)[:8] {
		objects = append(objects, object{sphere: &geom.Sphere{Center: p, Radius: 0.4}})
	}

	return objects
}

type camera struct {
	yaw, pitch float64
	dist       float64
}

func (c camera) viewProj(width, height int) mgl64.Mat4 {
	eye := mgl64.Vec3{
		c.dist * math.Cos(c.pitch) * math.Sin(c.yaw),
		c.dist * math.Sin(c.pitch),
		c.dist * math.Cos(c.pitch) * math.Cos(c.yaw),
	}
	view := mgl64.LookAtV(eye, mgl64.Vec3{0, 0.5, 0}, mgl64.Vec3{0, 1, 0})

	aspect := float64(width) / float64(height) * cellAspect
	proj := mgl64.Perspective(mgl64.DegToRad(55), aspect, 0.1, 100)
	return proj.Mul4(view)
}

// trace finds the nearest forward hit among the visible objects, with t in
// units of the ray's own direction length.
func trace(ray geom.Ray, objects []object) (float64, bool) {
	nearest := math.MaxFloat64
	hit := false

	for _, o := range objects {
		var hits int
		var t0 float64
		if o.sphere != nil {
			hits, t0, _ = ray.IntersectSphere(*o.sphere)
		} else {
			hits, t0, _ = ray.IntersectAABox(*o.box)
		}
		if hits > 0 && t0 < nearest {
			nearest = t0
			hit = true
		}
	}

	return nearest, hit
}

func render(screen tcell.Screen, objects []object, cam camera, jitter bool, rng *rand.Rand) (drawn, culled int) {
	width, height := screen.Size()
	if width == 0 || height == 0 {
		return 0, 0
	}

	vp := cam.viewProj(width, height)
	frustum := geom.FrustumFromMatrix(vp, geom.DepthNegOneToOne)

	visible := make([]object, 0, len(objects))
	for _, o := range objects {
		if o.sphere != nil && !frustum.IntersectsSphere(*o.sphere) {
			culled++
			continue
		}
		if o.box != nil && frustum.ClassifyAABox(o.bounds()) == geom.Outside {
			culled++
			continue
		}
		visible = append(visible, o)
	}

	inv := vp.Inv()
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			sx, sy := 0.5, 0.5
			if jitter {
				sx = geom.UnitRandom(rng)
				sy = geom.UnitRandom(rng)
			}
			ndcX := 2*(float64(x)+sx)/float64(width) - 1
			ndcY := 1 - 2*(float64(y)+sy)/float64(height)

			// Unproject the near and far points of this pixel; the ray
			// spans the depth range so t runs 0..1 through the scene.
			nearPt := unproject(inv, mgl64.Vec3{ndcX, ndcY, -1})
			farPt := unproject(inv, mgl64.Vec3{ndcX, ndcY, 1})
			ray := geom.Ray{Origin: nearPt, Dir: farPt.Sub(nearPt)}

			ch := ' '
			if t, ok := trace(ray, visible); ok {
				shade := int((1 - math.Min(t*6, 1)) * float64(len(shadeRamp)-1))
				ch = rune(shadeRamp[shade])
				drawn++
			}
			screen.SetContent(x, y, ch, nil, style)
		}
	}

	screen.Show()
	return drawn, culled
}

func unproject(inv mgl64.Mat4, ndc mgl64.Vec3) mgl64.Vec3 {
	w := inv.Mul4x1(mgl64.Vec4{ndc[0], ndc[1], ndc[2], 1})
	return w.Vec3().Mul(1 / w.W())
}

func main() {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()

	objects := buildScene()
	cam := camera{yaw: 0.4, pitch: 0.35, dist: 12}
	jitter := false
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	var drawn, culled int
	drawn, culled = render(screen, objects, cam, jitter, rng)

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Rune() == 'q':
				screen.Fini()
				fmt.Printf("last frame: %d cells hit, %d/%d objects culled\n",
					drawn, culled, len(objects))
				return
			case ev.Key() == tcell.KeyLeft:
				cam.yaw -= 0.1
			case ev.Key() == tcell.KeyRight:
				cam.yaw += 0.1
			case ev.Key() == tcell.KeyUp:
				cam.pitch = math.Min(cam.pitch+0.1, 1.4)
			case ev.Key() == tcell.KeyDown:
				cam.pitch = math.Max(cam.pitch-0.1, -0.2)
			case ev.Rune() == '+':
				cam.dist = math.Max(cam.dist-1, 3)
			case ev.Rune() == '-':
				cam.dist = math.Min(cam.dist+1, 40)
			case ev.Rune() == 'j':
				jitter = !jitter
			default:
				continue
			}
		default:
			continue
		}
		drawn, culled = render(screen, objects, cam, jitter, rng)
	}
}
