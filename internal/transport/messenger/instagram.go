package messenger

import (
	"context"
	"fmt"

	"github.com/pkg/browser"
)

const instagramBase = "https://ig.me/m/"

// InstagramChannel delivers the order message by opening an ig.me deep link
// to the store's Instagram handle.
type InstagramChannel struct {
	handle string
	open   URLOpener
}

// NewInstagramChannel creates a channel for the given Instagram handle.
func NewInstagramChannel(handle string) *InstagramChannel {
	return &InstagramChannel{handle: handle, open: browser.OpenURL}
}

// NewInstagramChannelWithOpener creates a channel with a custom URL opener.
func NewInstagramChannelWithOpener(handle string, open URLOpener) *InstagramChannel {
	return &InstagramChannel{handle: handle, open: open}
}

// Name identifies the channel.
func (c *InstagramChannel) Name() string {
	return "instagram"
}

// Deliver opens the deep link carrying the message.
func (c *InstagramChannel) Deliver(ctx context.Context, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	link := c.ComposeLink(message)
	if err := c.open(link); err != nil {
		return fmt.Errorf("failed to open Instagram link: %w", err)
	}
	return nil
}

// ComposeLink returns the ig.me URL with the message pre-filled.
func (c *InstagramChannel) ComposeLink(message string) string {
	return deepLink(instagramBase+c.handle, message)
}
