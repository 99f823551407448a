package utils

import (
	"strconv"
	"time"

	uuid "github.com/satori/go.uuid"
)

// Tickturn identifies one simulation step and carries its simulation time.
type Tickturn struct {
	seq uint32
	id  uuid.UUID
	now time.Duration
}

func MakeFirstTickturn() Tickturn {
	return Tickturn{
		seq: 0,
		id:  uuid.NewV4(),
		now: 0,
	}
}

func (turn Tickturn) String() string {
	return "<TickTurn(" + strconv.Itoa(int(turn.seq)) + ", " + turn.now.String() + ")>"
}

func (turn Tickturn) Next(dt time.Duration) Tickturn {
	return Tickturn{
		seq: turn.seq + 1,
		id:  uuid.NewV4(),
		now: turn.now + dt,
	}
}

func (turn Tickturn) GetSeq() uint32 {
	return turn.seq
}

func (turn Tickturn) GetID() uuid.UUID {
	return turn.id
}

func (turn Tickturn) GetNow() time.Duration {
	return turn.now
}
