package messenger

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
)

// ClipboardChannel copies the order message to the system clipboard so the
// user can paste it into a DM manually.
type ClipboardChannel struct {
	write func(text string) error
}

// NewClipboardChannel creates a clipboard channel backed by the system
// clipboard.
func NewClipboardChannel() *ClipboardChannel {
	return &ClipboardChannel{write: clipboard.WriteAll}
}

// NewClipboardChannelWithWriter creates a channel with a custom writer.
func NewClipboardChannelWithWriter(write func(text string) error) *ClipboardChannel {
	return &ClipboardChannel{write: write}
}

// Name identifies the channel.
func (c *ClipboardChannel) Name() string {
	return "clipboard"
}

// Deliver copies the message to the clipboard.
func (c *ClipboardChannel) Deliver(ctx context.Context, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := c.write(message); err != nil {
		return fmt.Errorf("failed to copy message to clipboard: %w", err)
	}
	return nil
}
