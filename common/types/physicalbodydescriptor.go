package types

import "github.com/bytearena/ecs"

// PhysicalBodyDescriptor is set as UserData on Box2D Physical bodies to be able to determine collider and collidee from Box2D contact callbacks
type PhysicalBodyDescriptor struct {
	Type _physicaltype
	ID   ecs.EntityID
}

type _physicaltype string

func (t _physicaltype) String() string {
	switch t {
	case PhysicalBodyDescriptorType.Obstacle:
		return "Obstacle"
	case PhysicalBodyDescriptorType.Actor:
		return "Actor"
	case PhysicalBodyDescriptorType.Projectile:
		return "Projectile"
	}

	return "UnkownType"
}

var PhysicalBodyDescriptorType = struct {
	Obstacle   _physicaltype
	Actor      _physicaltype
	Projectile _physicaltype
}{
	Obstacle:   _physicaltype("o"),
	Actor:      _physicaltype("a"),
	Projectile: _physicaltype("p"),
}

func MakePhysicalBodyDescriptor(type_ _physicaltype, id ecs.EntityID) PhysicalBodyDescriptor {
	return PhysicalBodyDescriptor{
		Type: type_,
		ID:   id,
	}
}
