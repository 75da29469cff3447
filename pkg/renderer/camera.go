package renderer

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// CameraConfig contains all parameters needed to create a camera
type CameraConfig struct {
	LookFrom      core.Vec3 // Eye position
	LookAt        core.Vec3 // Point the camera looks at
	ViewUp        core.Vec3 // Up direction (need not be perpendicular to the view)
	VFov          float64   // Vertical field of view in degrees
	AspectRatio   float64   // Width / height
	Aperture      float64   // Lens diameter (0 = pinhole)
	FocusDistance float64   // Distance to the focal plane (0 = |LookFrom - LookAt|)
}

// Camera generates rays through a thin lens onto a focal plane
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3
	lensRadius      float64
}

// NewCamera creates a camera from the configuration
func NewCamera(config CameraConfig) *Camera {
	theta := config.VFov * math.Pi / 180.0
	halfHeight := math.Tan(theta / 2)
	halfWidth := config.AspectRatio * halfHeight

	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		focusDistance = config.LookFrom.Sub(config.LookAt).Len()
	}

	// Orthonormal camera frame; w points backwards out of the screen
	w := core.Unit(config.LookFrom.Sub(config.LookAt))
	u := core.Unit(config.ViewUp.Cross(w))
	v := w.Cross(u)

	origin := config.LookFrom
	lowerLeftCorner := origin.
		Sub(u.Mul(halfWidth * focusDistance)).
		Sub(v.Mul(halfHeight * focusDistance)).
		Sub(w.Mul(focusDistance))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      u.Mul(2 * halfWidth * focusDistance),
		vertical:        v.Mul(2 * halfHeight * focusDistance),
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      config.Aperture / 2,
	}
}

// GetRay generates a ray for screen coordinates (s, t) where 0 <= s,t <= 1
// and (0, 0) is the bottom-left corner. With an aperture the origin is jittered
// over the lens disk; without one no random numbers are drawn.
func (c *Camera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	var offset core.Vec3
	if c.lensRadius > 0 {
		rd := core.RandomInUnitDisk(sampler).Mul(c.lensRadius)
		offset = c.u.Mul(rd.X()).Add(c.v.Mul(rd.Y()))
	}

	origin := c.origin.Add(offset)
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Mul(s)).
		Add(c.vertical.Mul(t)).
		Sub(origin)

	return core.NewRay(origin, direction)
}

// GetCameraForward returns the camera's forward direction
func (c *Camera) GetCameraForward() core.Vec3 {
	return c.w.Mul(-1)
}
