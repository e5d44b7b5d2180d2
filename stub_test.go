package behaviortree

// scripted is a test leaf that plays back a fixed sequence of statuses,
// repeating the final entry once the script is exhausted, and counts ticks
// and resets. Reset rewinds the script, so a reset node replays the same
// sequence as a fresh one.
type scripted struct {
	script []Status
	pos    int
	ticks  int
	resets int
}

func play(script ...Status) *scripted {
	return &scripted{script: script}
}

func (n *scripted) Tick(float64) Status {
	n.ticks++
	s := n.script[n.pos]
	if n.pos < len(n.script)-1 {
		n.pos++
	}
	return s
}

func (n *scripted) Reset() {
	n.pos = 0
	n.resets++
}
