package combat

import (
	"github.com/ByteArena/box2d"
	"github.com/bytearena/dogfight/common/utils/trigo"
	"github.com/bytearena/dogfight/common/utils/vector"
	"github.com/go-gl/mathgl/mgl64"
)

func (game CombatGame) CastPhysicalBody(data interface{}) *PhysicalBody {
	return data.(*PhysicalBody)
}

// PhysicalBody wraps the Box2D body of an entity.
// Box2D simulates the ground plane (X, Z); the height of the body is locked.
type PhysicalBody struct {
	body   *box2d.B2Body
	height float64
}

func (p *PhysicalBody) GetBody() *box2d.B2Body {
	return p.body
}

func (p PhysicalBody) GetPosition() vector.Vector3 {
	return vector.FromB2Vec2(p.body.GetPosition(), p.height)
}

func (p *PhysicalBody) SetPosition(v vector.Vector3) *PhysicalBody {
	p.height = v.GetY()
	p.body.SetTransform(v.ToB2Vec2(), p.body.GetAngle())
	return p
}

func (p PhysicalBody) GetVelocity() vector.Vector3 {
	return vector.FromB2Vec2(p.body.GetLinearVelocity(), 0)
}

func (p *PhysicalBody) SetVelocity(v vector.Vector3) *PhysicalBody {
	p.body.SetLinearVelocity(v.ToB2Vec2())
	return p
}

// GetYaw returns the Box2D angle of the body, in radians.
func (p PhysicalBody) GetYaw() float64 {
	return p.body.GetAngle()
}

func (p *PhysicalBody) SetYaw(yaw float64) *PhysicalBody {
	p.body.SetTransform(p.body.GetPosition(), yaw)
	return p
}

func (p PhysicalBody) GetOrientation() mgl64.Quat {
	return trigo.YawToOrientation(p.body.GetAngle())
}

func (p PhysicalBody) GetTransform() Transform {
	return Transform{
		Position:    p.GetPosition(),
		Orientation: p.GetOrientation(),
	}
}

func (p PhysicalBody) GetMass() float64 {
	return p.body.GetMass()
}

// setMass overrides the mass computed by Box2D from the fixtures density.
// It must be called after the fixtures have been created; bodies have a fixed
// rotation and are centered on their circle, so no inertia is needed.
func (p *PhysicalBody) setMass(mass float64) *PhysicalBody {
	p.body.SetMassData(&box2d.B2MassData{
		Mass:   mass,
		Center: box2d.MakeB2Vec2(0, 0),
	})
	return p
}

func (p PhysicalBody) GetRadius() float64 {
	// every body of the combat core is a circle
	return p.body.GetFixtureList().GetShape().GetRadius()
}
