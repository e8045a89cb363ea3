package components

// Cooldown gates a repeatable action. The loop ticks it down once per frame;
// the action is allowed once the counter is at or below Threshold.
type Cooldown struct {
	Counter   int
	Threshold int
}

func NewCooldown(initial, threshold int) Cooldown {
	return Cooldown{Counter: initial, Threshold: threshold}
}

func (c Cooldown) Ready() bool {
	return c.Counter <= c.Threshold
}

func (c *Cooldown) Tick() {
	if c.Counter > 0 {
		c.Counter--
	}
}

// Trigger restarts the countdown from reset.
func (c *Cooldown) Trigger(reset int) {
	c.Counter = reset
}
