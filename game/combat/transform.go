package combat

import (
	"github.com/bytearena/dogfight/common/utils/trigo"
	"github.com/bytearena/dogfight/common/utils/vector"
	"github.com/go-gl/mathgl/mgl64"
)

// Transform is the world pose of an entity at a given instant.
type Transform struct {
	Position    vector.Vector3
	Orientation mgl64.Quat
}

func MakeTransform(position vector.Vector3, yaw float64) Transform {
	return Transform{
		Position:    position,
		Orientation: trigo.YawToOrientation(yaw),
	}
}

// Forward is the unit fire direction of the pose.
func (t Transform) Forward() vector.Vector3 {
	return trigo.Forward(t.Orientation)
}

func (t Transform) Yaw() float64 {
	return trigo.OrientationToYaw(t.Orientation)
}
