package game

import (
	"fmt"
	"math"
	"time"

	"github.com/iburimskiy/tri-rot-bouncy/internal/anim"
)

// stepDuration estimates how long one step takes at the given rate when a
// frame is delivered every delay.
func stepDuration(rate float64, delay time.Duration) time.Duration {
	return time.Duration(math.Ceil(1/rate)) * delay
}

// formatDuration formats a duration as seconds with two decimals.
func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%.2fs", d.Seconds())
}

// formatStatus is the debug overlay line.
func formatStatus(c *anim.Chain, active bool, step time.Duration, tps float64) string {
	st := c.CurrentNode().State()
	mode := "idle"
	if active {
		mode = "running"
	}
	return fmt.Sprintf("node %d/%d dir %+d scale %.2f %s | step %s | TPS %.0f",
		c.Current(), c.Len()-1, c.Direction(), st.Scale(), mode, formatDuration(step), tps)
}
