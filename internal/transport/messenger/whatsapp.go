package messenger

import (
	"context"
	"fmt"

	"github.com/pkg/browser"
)

const whatsAppBase = "https://wa.me/"

// WhatsAppChannel delivers the order message by opening a wa.me deep link
// with the message pre-filled for the store's WhatsApp number.
type WhatsAppChannel struct {
	recipient string
	open      URLOpener
}

// NewWhatsAppChannel creates a channel for the given recipient phone number
// in international format, e.g. "201117571023".
func NewWhatsAppChannel(recipient string) *WhatsAppChannel {
	return &WhatsAppChannel{recipient: recipient, open: browser.OpenURL}
}

// NewWhatsAppChannelWithOpener creates a channel with a custom URL opener.
func NewWhatsAppChannelWithOpener(recipient string, open URLOpener) *WhatsAppChannel {
	return &WhatsAppChannel{recipient: recipient, open: open}
}

// Name identifies the channel.
func (c *WhatsAppChannel) Name() string {
	return "whatsapp"
}

// Deliver opens the deep link carrying the message.
func (c *WhatsAppChannel) Deliver(ctx context.Context, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	link := c.ComposeLink(message)
	if err := c.open(link); err != nil {
		return fmt.Errorf("failed to open WhatsApp link: %w", err)
	}
	return nil
}

// ComposeLink returns the wa.me URL with the message pre-filled.
func (c *WhatsAppChannel) ComposeLink(message string) string {
	return deepLink(whatsAppBase+c.recipient, message)
}
