package notifications_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EventideMiles/eventide-rp-system-sub001/internal/notifications"
)

// collectingSink records every delivered message for assertions
type collectingSink struct {
	mu       sync.Mutex
	messages []notifications.Message
}

func (c *collectingSink) record(level notifications.Level, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, notifications.Message{Level: level, Text: text})
}

func (c *collectingSink) Info(text string)  { c.record(notifications.LevelInfo, text) }
func (c *collectingSink) Warn(text string)  { c.record(notifications.LevelWarn, text) }
func (c *collectingSink) Error(text string) { c.record(notifications.LevelError, text) }

func (c *collectingSink) snapshot() []notifications.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]notifications.Message, len(c.messages))
	copy(out, c.messages)
	return out
}

func TestChannelNotifier_DeliversInOrder(t *testing.T) {
	notifier := notifications.NewChannelNotifier(8)
	sink := &collectingSink{}

	done := make(chan error, 1)
	go func() {
		done <- notifier.Run(context.Background(), sink)
	}()

	notifier.Info("starting")
	notifier.Warn("low power")
	notifier.Error("target lost")
	notifier.Close()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("pump did not drain after close")
	}

	messages := sink.snapshot()
	require.Len(t, messages, 3)
	assert.Equal(t, notifications.LevelInfo, messages[0].Level)
	assert.Equal(t, notifications.LevelWarn, messages[1].Level)
	assert.Equal(t, notifications.LevelError, messages[2].Level)
	assert.Equal(t, "low power", messages[1].Text)
}

func TestChannelNotifier_DropsWhenFull(t *testing.T) {
	// No pump running, so the buffer fills and the rest drop
	notifier := notifications.NewChannelNotifier(2)
	notifier.Info("one")
	notifier.Info("two")
	notifier.Info("three")
	notifier.Close()

	sink := &collectingSink{}
	err := notifier.Run(context.Background(), sink)
	require.NoError(t, err)

	assert.Len(t, sink.snapshot(), 2)
}

func TestChannelNotifier_SendAfterCloseIsSafe(t *testing.T) {
	notifier := notifications.NewChannelNotifier(2)
	notifier.Close()

	assert.NotPanics(t, func() {
		notifier.Info("late")
		notifier.Close()
	})
}

func TestChannelNotifier_ContextCancellation(t *testing.T) {
	notifier := notifications.NewChannelNotifier(2)
	defer notifier.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := notifier.Run(ctx, &collectingSink{})
	assert.ErrorIs(t, err, context.Canceled)
}
