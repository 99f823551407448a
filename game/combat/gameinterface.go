package combat

import "github.com/bytearena/dogfight/game/common"

var _ common.GameInterface = (*CombatGame)(nil)
