package trigo

import (
	"math"

	"github.com/bytearena/dogfight/common/utils/vector"
	"github.com/go-gl/mathgl/mgl64"
)

var (
	upAxis      = mgl64.Vec3{0, 1, 0}
	forwardAxis = mgl64.Vec3{0, 0, -1}
)

// YawToOrientation converts a Box2D body angle to a world orientation.
// Box2D turns counter-clockwise from X to Z on the ground plane, which is a
// clockwise turn around the world up axis.
func YawToOrientation(yaw float64) mgl64.Quat {
	return mgl64.QuatRotate(-yaw, upAxis)
}

// OrientationToYaw is the inverse of YawToOrientation for orientations
// that only rotate around the up axis.
func OrientationToYaw(orientation mgl64.Quat) float64 {
	forward := orientation.Rotate(forwardAxis)
	return FullCircleAngleToSignedHalfCircleAngle(math.Atan2(forward.X(), -forward.Z()))
}

// Forward returns the unit forward axis (-Z in local space) of an orientation.
func Forward(orientation mgl64.Quat) vector.Vector3 {
	return vector.FromVec3(orientation.Rotate(forwardAxis).Normalize())
}

func FullCircleAngleToSignedHalfCircleAngle(rad float64) float64 {
	if rad > math.Pi {
		rad -= math.Pi * 2
	} else if rad < -math.Pi {
		rad += math.Pi * 2
	}

	return rad
}
