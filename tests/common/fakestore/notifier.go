//go:build unit

package fakestore

import (
	"context"
	"sync"

	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/usecase/commands"
)

type RecordingNotifier struct {
	mu     sync.Mutex
	Err    error
	events []commands.VoucherGrantedEvent
}

func (n *RecordingNotifier) NotifyVoucherGranted(ctx context.Context, event commands.VoucherGrantedEvent) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
	return n.Err
}

func (n *RecordingNotifier) Events() []commands.VoucherGrantedEvent {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]commands.VoucherGrantedEvent(nil), n.events...)
}
