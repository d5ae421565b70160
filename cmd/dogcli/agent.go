package main

import (
	"math/rand"

	"github.com/vctt94/dogengine/internal/dog"
)

// randomAgent picks a uniform-random legal action. It is an external
// collaborator to the engine, never part of internal/dog: the rules engine
// never decides which action to take, only which actions are legal.
type randomAgent struct {
	rng *rand.Rand
}

func newRandomAgent(seed int64) *randomAgent {
	if seed == 0 {
		return &randomAgent{rng: rand.New(rand.NewSource(1))}
	}
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) choose(actions []dog.Action) dog.Action {
	return actions[a.rng.Intn(len(actions))]
}
