package combat

import (
	commontypes "github.com/bytearena/dogfight/common/types"
	"github.com/bytearena/ecs"
)

// Collision is a contact that began during the last physics step.
type Collision struct {
	EntityIDA ecs.EntityID
	TypeA     string
	EntityIDB ecs.EntityID
	TypeB     string
}

// Involves reports whether the collision is between a and b, in any order.
func (c Collision) Involves(a ecs.EntityID, b ecs.EntityID) bool {
	return (c.EntityIDA == a && c.EntityIDB == b) || (c.EntityIDA == b && c.EntityIDB == a)
}

func systemCollisions(game *CombatGame) []Collision {
	collisions := make([]Collision, 0)

	for _, contact := range game.collisionListener.PopCollisions() {

		descriptorCollider, ok := contact.GetFixtureA().GetBody().GetUserData().(commontypes.PhysicalBodyDescriptor)
		if !ok {
			continue
		}

		descriptorCollidee, ok := contact.GetFixtureB().GetBody().GetUserData().(commontypes.PhysicalBodyDescriptor)
		if !ok {
			continue
		}

		collisions = append(collisions, Collision{
			EntityIDA: descriptorCollider.ID,
			TypeA:     descriptorCollider.Type.String(),
			EntityIDB: descriptorCollidee.ID,
			TypeB:     descriptorCollidee.Type.String(),
		})
	}

	return collisions
}
