package notifications

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// ChannelNotifier buffers notifications on a channel and fans them out
// to downstream sinks from a background pump. Send never blocks: when
// the buffer is full the message is dropped, keeping the engine's
// fire-and-forget contract.
type ChannelNotifier struct {
	messages chan Message

	mu     sync.Mutex
	closed bool
}

// NewChannelNotifier creates a notifier with the given buffer size
func NewChannelNotifier(buffer int) *ChannelNotifier {
	if buffer < 1 {
		buffer = 16
	}
	return &ChannelNotifier{
		messages: make(chan Message, buffer),
	}
}

func (n *ChannelNotifier) Info(text string)  { n.send(Message{Level: LevelInfo, Text: text}) }
func (n *ChannelNotifier) Warn(text string)  { n.send(Message{Level: LevelWarn, Text: text}) }
func (n *ChannelNotifier) Error(text string) { n.send(Message{Level: LevelError, Text: text}) }

func (n *ChannelNotifier) send(msg Message) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return
	}

	select {
	case n.messages <- msg:
	default:
		// Buffer full; drop rather than block the resolution loop
	}
}

// Close stops accepting messages and lets Run drain and exit
func (n *ChannelNotifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return
	}
	n.closed = true
	close(n.messages)
}

// Run pumps buffered messages to the sinks until the context is
// canceled or Close is called. Each sink receives every message.
func (n *ChannelNotifier) Run(ctx context.Context, sinks ...Notifier) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case msg, ok := <-n.messages:
				if !ok {
					return nil
				}
				for _, sink := range sinks {
					deliver(sink, msg)
				}
			}
		}
	})

	return g.Wait()
}

func deliver(sink Notifier, msg Message) {
	switch msg.Level {
	case LevelWarn:
		sink.Warn(msg.Text)
	case LevelError:
		sink.Error(msg.Text)
	default:
		sink.Info(msg.Text)
	}
}
