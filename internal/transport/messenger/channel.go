// Package messenger implements the outbound order-message channels: deep
// links into WhatsApp and Instagram, and a clipboard fallback for manual
// pasting. The channels are the module's only system boundary; they carry
// opaque text and never reach back into the core.
package messenger

import "net/url"

// URLOpener hands a deep link to the surrounding environment, typically the
// user's browser. Injected so tests can capture the link instead of opening
// it.
type URLOpener func(link string) error

// deepLink builds <base>?text=<encoded message>.
func deepLink(base, message string) string {
	query := url.Values{}
	query.Set("text", message)
	return base + "?" + query.Encode()
}
