package combat

import (
	"github.com/ByteArena/box2d"
	commontypes "github.com/bytearena/dogfight/common/types"
	"github.com/bytearena/dogfight/common/utils/vector"
	"github.com/bytearena/ecs"
)

// NewEntityObstacle creates a static circular body (a star, a rock).
func (game *CombatGame) NewEntityObstacle(position vector.Vector3, radius float64) *ecs.Entity {

	obstacle := game.manager.NewEntity()

	bodydef := box2d.MakeB2BodyDef()
	bodydef.Type = box2d.B2BodyType.B2_staticBody
	bodydef.Position = position.ToB2Vec2()

	body := game.PhysicalWorld.CreateBody(&bodydef)

	shape := box2d.MakeB2CircleShape()
	shape.SetRadius(radius)
	body.CreateFixture(&shape, 0.0)
	body.SetUserData(commontypes.MakePhysicalBodyDescriptor(
		commontypes.PhysicalBodyDescriptorType.Obstacle,
		obstacle.GetID(),
	))

	return obstacle.
		AddComponent(game.physicalBodyComponent, &PhysicalBody{
			body:   body,
			height: position.GetY(),
		}).
		AddComponent(game.renderComponent, &Render{
			type_: "obstacle",
		})
}
