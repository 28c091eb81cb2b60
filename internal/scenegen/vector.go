package scenegen

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 is a point, a scale or an RGB triplet in 3D space.
type Vec3 struct {
	X Real `json:"x"`
	Y Real `json:"y"`
	Z Real `json:"z"`
}

// Quaternion is a rotation. It is not normalized on construction.
type Quaternion struct {
	X Real `json:"x"`
	Y Real `json:"y"`
	Z Real `json:"z"`
	W Real `json:"w"`
}

// QuatIdent returns the identity rotation.
func QuatIdent() Quaternion { return quatFromMgl(mgl64.QuatIdent()) }

func (v Vec3) mgl() mgl64.Vec3            { return mgl64.Vec3{v.X, v.Y, v.Z} }
func vecFromMgl(m mgl64.Vec3) Vec3        { return Vec3{m[0], m[1], m[2]} }
func (q Quaternion) mgl() mgl64.Quat      { return mgl64.Quat{W: q.W, V: mgl64.Vec3{q.X, q.Y, q.Z}} }
func quatFromMgl(m mgl64.Quat) Quaternion { return Quaternion{m.V[0], m.V[1], m.V[2], m.W} }

// Vector functions
func (a Vec3) Add(b Vec3) Vec3 { return vecFromMgl(a.mgl().Add(b.mgl())) }
func (v Vec3) Mul(s Real) Vec3 { return vecFromMgl(v.mgl().Mul(s)) }

// Len returns the quaternion norm.
func (q Quaternion) Len() Real { return q.mgl().Len() }

// IsUnit reports whether q is a unit quaternion within unitTolerance.
func (q Quaternion) IsUnit() bool { return math.Abs(q.Len()-1) <= unitTolerance }

func (v Vec3) finite() bool { return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z) }
func (q Quaternion) finite() bool {
	return isFinite(q.X) && isFinite(q.Y) && isFinite(q.Z) && isFinite(q.W)
}
