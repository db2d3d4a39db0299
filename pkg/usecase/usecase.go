package usecase

import (
	"time"

	"github.com/secmon-lab/trendhub/pkg/infra"
)

type UseCase struct {
	clients *infra.Clients
	sleepFn func(time.Duration)
}

type Option func(*UseCase)

// WithSleepFunc replaces the pacing delay between external calls. Tests
// use this to run without waiting.
func WithSleepFunc(fn func(time.Duration)) Option {
	return func(x *UseCase) {
		x.sleepFn = fn
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients: clients,
		sleepFn: time.Sleep,
	}
	for _, opt := range options {
		opt(uc)
	}

	return uc
}
