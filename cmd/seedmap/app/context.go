package app

import (
	"context"
	"os/signal"
	"syscall"
)

// ContextWithSignals returns a context that is canceled on SIGINT or
// SIGTERM. serve drains connections when it fires; every other command
// aborts its dataset load.
func ContextWithSignals(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}
