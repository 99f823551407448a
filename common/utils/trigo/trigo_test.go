package trigo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestForwardAtNullYaw(t *testing.T) {
	forward := Forward(YawToOrientation(0))

	assert.InDelta(t, 0.0, forward.GetX(), 1e-12)
	assert.InDelta(t, 0.0, forward.GetY(), 1e-12)
	assert.InDelta(t, -1.0, forward.GetZ(), 1e-12)
}

func TestForwardFollowsBox2DAngle(t *testing.T) {
	// Box2D turns from X toward Z
	forward := Forward(YawToOrientation(math.Pi / 2))

	assert.InDelta(t, 1.0, forward.GetX(), 1e-12)
	assert.InDelta(t, 0.0, forward.GetY(), 1e-12)
	assert.InDelta(t, 0.0, forward.GetZ(), 1e-12)
}

func TestFullCircleAngleToSignedHalfCircleAngle(t *testing.T) {
	assert.InDelta(t, -math.Pi/2, FullCircleAngleToSignedHalfCircleAngle(3*math.Pi/2), 1e-12)
	assert.InDelta(t, math.Pi/2, FullCircleAngleToSignedHalfCircleAngle(-3*math.Pi/2), 1e-12)
	assert.InDelta(t, 1.0, FullCircleAngleToSignedHalfCircleAngle(1.0), 1e-12)
}

func TestOrientationToYawRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		yaw := rapid.Float64Range(-math.Pi+1e-6, math.Pi-1e-6).Draw(t, "yaw")

		if got := OrientationToYaw(YawToOrientation(yaw)); math.Abs(got-yaw) > 1e-9 {
			t.Fatalf("expected yaw %f, got %f", yaw, got)
		}

		forward := Forward(YawToOrientation(yaw))
		if math.Abs(forward.Mag()-1) > 1e-9 || math.Abs(forward.GetY()) > 1e-9 {
			t.Fatalf("forward axis %s is not a unit vector of the ground plane", forward)
		}
	})
}
