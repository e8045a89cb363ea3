package components

import "github.com/yohamta/donburi"

type LivesData struct {
	Lives    int
	MaxLives int
}

// Decrement removes one life, never going below zero.
func (l *LivesData) Decrement() {
	if l.Lives > 0 {
		l.Lives--
	}
}

func (l *LivesData) Out() bool {
	return l.Lives <= 0
}

var Lives = donburi.NewComponentType[LivesData]()
