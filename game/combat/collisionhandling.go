package combat

import (
	"github.com/ByteArena/box2d"
	commontypes "github.com/bytearena/dogfight/common/types"
	"github.com/bytearena/ecs"
)

///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
// Collision Handling
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////

// exclusionPair is unordered: a is always the smallest id.
type exclusionPair struct {
	a ecs.EntityID
	b ecs.EntityID
}

func makeExclusionPair(a ecs.EntityID, b ecs.EntityID) exclusionPair {
	if b < a {
		a, b = b, a
	}

	return exclusionPair{a: a, b: b}
}

// exclusionRegistry holds the pairs of entities Box2D must never resolve a contact for.
type exclusionRegistry struct {
	pairs map[exclusionPair]struct{}
}

func newExclusionRegistry() *exclusionRegistry {
	return &exclusionRegistry{
		pairs: make(map[exclusionPair]struct{}),
	}
}

func (r *exclusionRegistry) Exclude(a ecs.EntityID, b ecs.EntityID) {
	r.pairs[makeExclusionPair(a, b)] = struct{}{}
}

func (r *exclusionRegistry) Release(a ecs.EntityID, b ecs.EntityID) {
	delete(r.pairs, makeExclusionPair(a, b))
}

func (r *exclusionRegistry) IsExcluded(a ecs.EntityID, b ecs.EntityID) bool {
	_, ok := r.pairs[makeExclusionPair(a, b)]
	return ok
}

func (r *exclusionRegistry) Len() int {
	return len(r.pairs)
}

type collisionFilter struct { /* implements box2d.B2World.B2ContactFilterInterface */
	exclusions *exclusionRegistry
}

// ShouldCollide is consulted by Box2D before creating a contact, and again
// whenever a contact is flagged for filtering.
func (filter *collisionFilter) ShouldCollide(fixtureA *box2d.B2Fixture, fixtureB *box2d.B2Fixture) bool {
	descriptorA, ok := fixtureA.GetBody().GetUserData().(commontypes.PhysicalBodyDescriptor)
	if !ok {
		return false
	}

	descriptorB, ok := fixtureB.GetBody().GetUserData().(commontypes.PhysicalBodyDescriptor)
	if !ok {
		return false
	}

	return !filter.exclusions.IsExcluded(descriptorA.ID, descriptorB.ID)
}

func newCollisionFilter(exclusions *exclusionRegistry) *collisionFilter {
	return &collisionFilter{
		exclusions: exclusions,
	}
}

type collisionListener struct { /* implements box2d.B2World.B2ContactListenerInterface */
	collisionbuffer []box2d.B2ContactInterface
}

func (listener *collisionListener) PopCollisions() []box2d.B2ContactInterface {
	defer func() { listener.collisionbuffer = make([]box2d.B2ContactInterface, 0) }()
	return listener.collisionbuffer
}

// / Called when two fixtures begin to touch.
func (listener *collisionListener) BeginContact(contact box2d.B2ContactInterface) { // contact has to be backed by a pointer
	listener.collisionbuffer = append(listener.collisionbuffer, contact)
}

// / Called when two fixtures cease to touch.
func (listener *collisionListener) EndContact(contact box2d.B2ContactInterface) { // contact has to be backed by a pointer
}

func (listener *collisionListener) PreSolve(contact box2d.B2ContactInterface, oldManifold box2d.B2Manifold) { // contact has to be backed by a pointer
}

func (listener *collisionListener) PostSolve(contact box2d.B2ContactInterface, impulse *box2d.B2ContactImpulse) { // contact has to be backed by a pointer
}

func newCollisionListener() *collisionListener {
	return &collisionListener{
		collisionbuffer: make([]box2d.B2ContactInterface, 0),
	}
}
