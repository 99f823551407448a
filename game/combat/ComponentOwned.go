package combat

import "github.com/bytearena/ecs"

// Owned points to the actor that fired a projectile.
// Entity ids are never recycled by the manager, so a stale owner id can not designate another actor.
type Owned struct {
	owner ecs.EntityID
}

func (game CombatGame) CastOwned(data interface{}) *Owned {
	return data.(*Owned)
}

func (o Owned) GetOwner() ecs.EntityID {
	return o.owner
}
