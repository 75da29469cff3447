package scene

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// randomGridExtent bounds the grid of small spheres to [-extent, extent) on X and Z
const randomGridExtent = 7

// oklchToRGB converts OKLCH color values to linear RGB, clamped to [0, 1].
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Vec3 {
	hRad := h * math.Pi / 180.0

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS, then cube
	lCone := l + 0.3963377774*a + 0.2158037573*b
	mCone := l - 0.1055613458*a - 0.0638541728*b
	sCone := l - 0.0894841775*a - 1.2914855480*b
	lCone = lCone * lCone * lCone
	mCone = mCone * mCone * mCone
	sCone = sCone * sCone * sCone

	// LMS to linear RGB
	red := +4.0767416621*lCone - 3.3077115913*mCone + 0.2309699292*sCone
	green := -1.2684380046*lCone + 2.6097574011*mCone - 0.3413193965*sCone
	blue := -0.0041960863*lCone - 0.7034186147*mCone + 1.7076147010*sCone

	return core.Clamp(core.NewVec3(red, green, blue), 0, 1)
}

// NewRandomScene scatters small spheres with random materials around three
// large ones. The same seed always builds the same scene.
func NewRandomScene(seed int64) *Scene {
	random := rand.New(rand.NewSource(seed))

	world := geometry.NewHitableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
	)

	// Keep small spheres clear of the large ones
	bigCenters := []core.Vec3{
		core.NewVec3(0, 1, 0),
		core.NewVec3(-4, 1, 0),
		core.NewVec3(4, 1, 0),
	}

	for a := -randomGridExtent; a < randomGridExtent; a++ {
		for b := -randomGridExtent; b < randomGridExtent; b++ {
			chooseMaterial := random.Float64()
			center := core.NewVec3(float64(a)+0.9*random.Float64(), 0.2, float64(b)+0.9*random.Float64())

			if tooClose(center, bigCenters, 1.2) {
				continue
			}

			var mat material.Material
			switch {
			case chooseMaterial < 0.8:
				// Lightness and chroma chosen for saturated but not clipped colors
				hue := random.Float64() * 360
				mat = material.NewLambertian(oklchToRGB(0.55+0.2*random.Float64(), 0.12, hue))
			case chooseMaterial < 0.95:
				hue := random.Float64() * 360
				mat = material.NewMetal(oklchToRGB(0.8, 0.06, hue), 0.5*random.Float64())
			default:
				mat = material.NewDielectric(1.5)
			}
			world.Add(geometry.NewSphere(center, 0.2, mat))
		}
	}

	world.Add(
		geometry.NewSphere(bigCenters[0], 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(bigCenters[1], 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(bigCenters[2], 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	lookFrom := core.NewVec3(13, 2, 3)
	lookAt := core.NewVec3(0, 0, 0)

	return &Scene{
		Name:  "random",
		World: world,
		CameraConfig: renderer.CameraConfig{
			LookFrom:      lookFrom,
			LookAt:        lookAt,
			ViewUp:        core.NewVec3(0, 1, 0),
			VFov:          20.0,
			AspectRatio:   1.5,
			Aperture:      0.1,
			FocusDistance: 10.0,
		},
		Render: renderer.Config{
			Width:           600,
			Height:          400,
			SamplesPerPixel: 32,
			MaxDepth:        50,
			Seed:            seed,
		},
	}
}

func tooClose(p core.Vec3, centers []core.Vec3, distance float64) bool {
	for _, c := range centers {
		if p.Sub(c).Len() < distance {
			return true
		}
	}
	return false
}
