package common

import (
	"github.com/bytearena/dogfight/common/types"
	"github.com/bytearena/dogfight/utils"
)

// GameInterface is what a simulation host needs to run a combat game tick by tick.
type GameInterface interface {
	ImplementsGameInterface()
	GetID() string
	Step(turn utils.Tickturn, intents []types.FiringIntent)
	GetVizFrameJson() []byte
}
