package types

import "github.com/bytearena/ecs"

// FiringIntent is the trigger state of one actor, sampled once per tick by the input collaborator.
type FiringIntent struct {
	ActorID ecs.EntityID
	Firing  bool
}

func MakeFiringIntent(actorid ecs.EntityID, firing bool) FiringIntent {
	return FiringIntent{
		ActorID: actorid,
		Firing:  firing,
	}
}
