package combat

import "time"

type Expiry struct {
	birth    time.Duration
	deadline time.Duration
}

func NewExpiry(birth time.Duration, lifetime time.Duration) *Expiry {
	return &Expiry{
		birth:    birth,
		deadline: birth + lifetime,
	}
}

func (game CombatGame) CastExpiry(data interface{}) *Expiry {
	return data.(*Expiry)
}

func (e Expiry) GetBirth() time.Duration {
	return e.birth
}

func (e Expiry) GetDeadline() time.Duration {
	return e.deadline
}

func (e Expiry) IsExpired(now time.Duration) bool {
	return e.deadline <= now
}
