package components

// Ticker fires once every Interval frames while running.
type Ticker struct {
	Interval int
	counter  int
	Running  bool
}

func NewTicker(interval int) Ticker {
	return Ticker{Interval: interval, counter: interval}
}

// Start (re)arms the ticker with a new interval.
func (t *Ticker) Start(interval int) {
	t.Interval = interval
	t.counter = interval
	t.Running = true
}

func (t *Ticker) Stop() {
	t.Running = false
}

// Update counts one frame and reports whether the ticker fired.
func (t *Ticker) Update() bool {
	if !t.Running || t.Interval <= 0 {
		return false
	}
	t.counter--
	if t.counter > 0 {
		return false
	}
	t.counter = t.Interval
	return true
}
