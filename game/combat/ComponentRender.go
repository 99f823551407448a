package combat

type Render struct {
	type_ string
}

func (game CombatGame) CastRender(data interface{}) *Render {
	return data.(*Render)
}

func (r Render) GetType() string {
	return r.type_
}
