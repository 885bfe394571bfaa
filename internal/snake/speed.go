package snake

import "termsnake/internal/config"

// TickRate returns the ticks-per-second for a given score:
// base + (score / speedupEvery) * speedupAmount.
// Pure and monotonically non-decreasing in score; the platform uses it to
// pace the delay between ticks.
func TickRate(sp config.SpeedConfig, score int) int {
	return sp.Base + (score/sp.SpeedupEvery)*sp.SpeedupAmount
}
