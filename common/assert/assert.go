package assert

import (
	"github.com/bytearena/dogfight/common/utils"
	bettererrors "github.com/xtuc/better-errors"
)

// Assert reports a failed CLI precondition as a better-errors chain and exits.
// The combat core uses utils.Assert instead, which panics.
func Assert(cond bool, msg string) {

	if !cond {
		berror := bettererrors.
			NewFromString("Assertion error").
			With(bettererrors.NewFromString(msg))

		utils.FailWith(berror)
	}
}
