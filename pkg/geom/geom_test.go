package geom

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func newTestCamera() *Camera {
	c := NewPerspectiveCamera(75, 4.0/3.0, 0.1, 1000)
	c.LookAt(mgl64.Vec3{0, 0, 15}, mgl64.Vec3{})
	return c
}

func TestRayIntersectSphere(t *testing.T) {
	tests := []struct {
		name   string
		ray    Ray
		center mgl64.Vec3
		radius float64
		wantT  float64
		wantOK bool
	}{
		{"head on", NewRay(mgl64.Vec3{0, 0, 10}, mgl64.Vec3{0, 0, -1}), mgl64.Vec3{}, 1, 9, true},
		{"miss", NewRay(mgl64.Vec3{0, 5, 10}, mgl64.Vec3{0, 0, -1}), mgl64.Vec3{}, 1, 0, false},
		{"behind", NewRay(mgl64.Vec3{0, 0, 10}, mgl64.Vec3{0, 0, 1}), mgl64.Vec3{}, 1, 0, false},
		{"inside", NewRay(mgl64.Vec3{}, mgl64.Vec3{1, 0, 0}), mgl64.Vec3{}, 2, 2, true},
		{"tangent", NewRay(mgl64.Vec3{-5, 1, 0}, mgl64.Vec3{1, 0, 0}), mgl64.Vec3{}, 1, 5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.ray.IntersectSphere(tt.center, tt.radius)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.InDelta(t, tt.wantT, got, 1e-6)
			}
		})
	}
}

func TestCameraCenterRayPointsAtTarget(t *testing.T) {
	c := newTestCamera()
	r := c.Ray(0, 0)

	assert.InDelta(t, 15, r.Origin.Z(), eps)
	assert.InDelta(t, 0, r.Direction.X(), 1e-9)
	assert.InDelta(t, 0, r.Direction.Y(), 1e-9)
	assert.InDelta(t, -1, r.Direction.Z(), 1e-9)
}

func TestCameraProjectRoundTrip(t *testing.T) {
	c := newTestCamera()
	p := mgl64.Vec3{3, -2, 1}

	x, y, depth, ok := c.ProjectNDC(p)
	require.True(t, ok)
	assert.InDelta(t, 14, depth, 1e-6)

	r := c.Ray(x, y)
	tHit, hit := r.IntersectSphere(p, 0.01)
	require.True(t, hit)
	assert.InDelta(t, 0, r.At(tHit).Sub(p).Len(), 0.02)
}

func TestCameraProjectBehind(t *testing.T) {
	c := newTestCamera()
	_, _, _, ok := c.Project(mgl64.Vec3{0, 0, 20}, 800, 600)
	assert.False(t, ok)
}

func TestCameraProjectPixels(t *testing.T) {
	c := newTestCamera()
	sx, sy, _, ok := c.Project(mgl64.Vec3{}, 800, 600)
	require.True(t, ok)
	assert.InDelta(t, 400, sx, 1e-6)
	assert.InDelta(t, 300, sy, 1e-6)

	// +Y в мире — вверх на экране, то есть меньший пиксельный Y.
	_, up, _, _ := c.Project(mgl64.Vec3{0, 1, 0}, 800, 600)
	assert.Less(t, up, sy)
}

func TestCameraSetAspectIgnoresInvalid(t *testing.T) {
	c := newTestCamera()
	c.SetAspect(0)
	c.SetAspect(math.Inf(1))
	assert.InDelta(t, 4.0/3.0, c.Aspect, eps)

	c.SetAspect(2)
	assert.InDelta(t, 2, c.Aspect, eps)
}

func TestOrbitControls_IdleKeepsCamera(t *testing.T) {
	c := newTestCamera()
	ctrl := NewOrbitControls(c)
	ctrl.EnableDamping = true

	moved := ctrl.Update()
	assert.False(t, moved)
	assert.InDelta(t, 0, c.Position.Sub(mgl64.Vec3{0, 0, 15}).Len(), 1e-9)
}

func TestOrbitControls_DampedRotationDecays(t *testing.T) {
	c := newTestCamera()
	ctrl := NewOrbitControls(c)
	ctrl.EnableDamping = true
	ctrl.Rotate(100, 0, 600)

	require.True(t, ctrl.Update())
	first := c.Position
	for i := 0; i < 200; i++ {
		ctrl.Update()
	}
	// Радиус сохраняется, камера сместилась по горизонтали.
	assert.InDelta(t, 15, c.Position.Len(), 1e-6)
	assert.NotEqual(t, first, c.Position)
	assert.InDelta(t, 0, c.Position.Y(), 1e-9)

	// Инерция почти затухла.
	assert.Less(t, math.Abs(ctrl.deltaTheta), 1e-4)
}

func TestOrbitControls_DollyClamps(t *testing.T) {
	c := newTestCamera()
	ctrl := NewOrbitControls(c)
	ctrl.MinDistance, ctrl.MaxDistance = 2, 20

	for i := 0; i < 100; i++ {
		ctrl.Dolly(1)
		ctrl.Update()
	}
	assert.InDelta(t, 2, c.Position.Len(), 1e-9)

	for i := 0; i < 100; i++ {
		ctrl.Dolly(-1)
		ctrl.Update()
	}
	assert.InDelta(t, 20, c.Position.Len(), 1e-9)
}
