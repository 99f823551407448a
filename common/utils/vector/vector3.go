package vector

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"github.com/ByteArena/box2d"
	"github.com/go-gl/mathgl/mgl64"
)

// Vector3 is a position or a direction in world space.
// The simulation is seen from the top: X and Z span the ground plane, Y is the height.
type Vector3 struct {
	x float64
	y float64
	z float64
}

func MakeVector3(x float64, y float64, z float64) Vector3 {
	return Vector3{x, y, z}
}

// Returns a null Vector3
func MakeNullVector3() Vector3 {
	return MakeVector3(0, 0, 0)
}

func (v Vector3) Get() (float64, float64, float64) {
	return v.x, v.y, v.z
}

func (v Vector3) GetX() float64 {
	return v.x
}

func (v Vector3) GetY() float64 {
	return v.y
}

func (v Vector3) GetZ() float64 {
	return v.z
}

func (v Vector3) MarshalJSON() ([]byte, error) {
	propfmt := "%.4f"
	buffer := bytes.NewBufferString("[")
	buffer.WriteString(fmt.Sprintf(propfmt, v.x))
	buffer.WriteString(",")
	buffer.WriteString(fmt.Sprintf(propfmt, v.y))
	buffer.WriteString(",")
	buffer.WriteString(fmt.Sprintf(propfmt, v.z))
	buffer.WriteString("]")
	return buffer.Bytes(), nil
}

func (a Vector3) Add(b Vector3) Vector3 {
	a.x += b.x
	a.y += b.y
	a.z += b.z
	return a
}

func (a Vector3) Sub(b Vector3) Vector3 {
	a.x -= b.x
	a.y -= b.y
	a.z -= b.z
	return a
}

func (a Vector3) Scale(scale float64) Vector3 {
	a.x *= scale
	a.y *= scale
	a.z *= scale
	return a
}

func (a Vector3) DivScalar(f float64) Vector3 {
	a.x /= f
	a.y /= f
	a.z /= f
	return a
}

func (a Vector3) Mag() float64 {
	return math.Sqrt(a.MagSq())
}

func (a Vector3) MagSq() float64 {
	return (a.x*a.x + a.y*a.y + a.z*a.z)
}

func (a Vector3) Normalize() Vector3 {
	mag := a.Mag()
	if mag > 0 {
		return a.DivScalar(mag)
	}
	return a
}

func (a Vector3) Dot(v Vector3) float64 {
	return a.x*v.x + a.y*v.y + a.z*v.z
}

func (a Vector3) IsNull() bool {
	return isZero(a.x) && isZero(a.y) && isZero(a.z)
}

func (a Vector3) Equals(b Vector3) bool {
	return b.Sub(a).IsNull()
}

// IsFinite reports whether no component is NaN or infinite.
func (a Vector3) IsFinite() bool {
	return isFinite(a.x) && isFinite(a.y) && isFinite(a.z)
}

func (a Vector3) String() string {
	return "<Vector3(" + floatToStr(a.x) + ", " + floatToStr(a.y) + ", " + floatToStr(a.z) + ")>"
}

// ToB2Vec2 projects the vector on the ground plane, as seen by Box2D (X => x, Z => y).
func (a Vector3) ToB2Vec2() box2d.B2Vec2 {
	return box2d.MakeB2Vec2(a.x, a.z)
}

// FromB2Vec2 lifts a Box2D ground plane vector back to world space at the given height.
func FromB2Vec2(v box2d.B2Vec2, height float64) Vector3 {
	return MakeVector3(v.X, height, v.Y)
}

func (a Vector3) ToVec3() mgl64.Vec3 {
	return mgl64.Vec3{a.x, a.y, a.z}
}

func FromVec3(v mgl64.Vec3) Vector3 {
	return MakeVector3(v.X(), v.Y(), v.Z())
}

func isZero(f float64) bool {
	return math.Abs(f) < 1e-9
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func floatToStr(f float64) string {
	return strconv.FormatFloat(f, 'f', 5, 64)
}
