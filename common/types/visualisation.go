package types

import (
	"github.com/bytearena/dogfight/common/utils/vector"
)

type VizMessage struct {
	GameID  string
	Tick    uint32
	Time    float64 // simulation time, in seconds
	Objects []VizMessageObject
}

type VizMessageObject struct {
	Id          string
	Type        string
	Position    vector.Vector3
	Velocity    vector.Vector3
	Radius      float64
	Orientation float64
}
