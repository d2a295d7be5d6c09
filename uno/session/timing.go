package session

import (
	"math/rand"
	"time"

	"github.com/ratel-online/duel/consts"
)

// Timing paces the machine and the UNO declaration window.
type Timing struct {
	Think      time.Duration
	DrawMin    time.Duration
	DrawMax    time.Duration
	DeclareMin time.Duration
	DeclareMax time.Duration
}

func DefaultTiming() Timing {
	return Timing{
		Think:      consts.ThinkDelay,
		DrawMin:    consts.DrawDelayMin,
		DrawMax:    consts.DrawDelayMax,
		DeclareMin: consts.DeclareWindowMin,
		DeclareMax: consts.DeclareWindowMax,
	}
}

// uniform picks a duration in [min, max].
func uniform(min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}
	return min + time.Duration(rand.Int63n(int64(max-min)+1))
}
