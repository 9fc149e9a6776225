// Package share builds outbound links for the invitation and renders them as
// terminal QR codes.
package share

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

const (
	whatsAppBase = "https://wa.me/"
	mapsBase     = "https://maps.google.com/"
)

// WhatsAppURL returns a wa.me link that opens a chat prefilled with text and
// link on separate paragraphs.
func WhatsAppURL(text, link string) string {
	msg := strings.TrimSpace(text)
	if link != "" {
		if msg != "" {
			msg += "\n\n"
		}
		msg += link
	}
	return whatsAppBase + "?" + url.Values{"text": {msg}}.Encode()
}

// MapsURL returns a Google Maps search link for query.
func MapsURL(query string) string {
	return mapsBase + "?" + url.Values{"q": {query}}.Encode()
}

// ErrEmptyPayload is returned by QR for an empty string.
var ErrEmptyPayload = errors.New("empty QR payload")

// QR renders data as a compact QR code made of half-block characters.
func QR(data string) (string, error) {
	if data == "" {
		return "", ErrEmptyPayload
	}
	code, err := qrcode.New(data, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("encode QR: %w", err)
	}
	return strings.TrimRight(code.ToSmallString(false), "\n"), nil
}
