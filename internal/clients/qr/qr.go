package qr

import (
	"fmt"
	"net/url"
	"strings"

	"elaundry/pkg/utils"
)

const defaultSize = 200

// Builder constructs QR image URLs served by the public rendering API.
// No request is issued here; the admin screen embeds the URL directly.
type Builder struct {
	baseURL string
}

func New(config utils.QRConfig) *Builder {
	return &Builder{
		baseURL: strings.TrimSuffix(config.BaseURL, "/"),
	}
}

// ImageURL returns the rendered QR image location for the given payload.
// Size is clamped to the default when not positive.
func (b *Builder) ImageURL(data string, size int) string {
	if size <= 0 {
		size = defaultSize
	}
	return fmt.Sprintf("%s/v1/create-qr-code/?size=%dx%d&data=%s",
		b.baseURL, size, size, url.QueryEscape(data))
}
