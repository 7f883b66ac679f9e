package plugins

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	apperrors "oper-review-backend/internal/errors"

	"github.com/gabriel-vasile/mimetype"
)

const (
	chartWidth  = 800
	chartHeight = 400

	// MaxImageBytes caps decoded custom images
	MaxImageBytes = 5 << 20
)

// CustomData carries a user supplied screenshot as a data URL
type CustomData struct {
	Image string `json:"image"`
}

// Custom inserts an arbitrary screenshot in place of a chart. It is the only
// plugin that may appear more than once per template.
type Custom struct{}

// NewCustom creates the custom plugin
func NewCustom() *Custom {
	return &Custom{}
}

// Descriptor implements Variant
func (p *Custom) Descriptor() Descriptor {
	return Descriptor{
		PluginID:       CustomID,
		Label:          "Custom",
		Group:          GroupOther,
		DefaultPrompt:  "",
		AllowsMultiple: true,
	}
}

func (p *Custom) decode(data json.RawMessage) (string, []byte, error) {
	var d CustomData
	if err := decodeData(CustomID, data, &d); err != nil {
		return "", nil, err
	}
	raw, err := DecodeDataURL(d.Image)
	if err != nil {
		return "", nil, err
	}
	return d.Image, raw, nil
}

// Render implements Variant. The image is echoed back after validation.
func (p *Custom) Render(data json.RawMessage) (*Visualization, error) {
	image, _, err := p.decode(data)
	if err != nil {
		return nil, err
	}
	return &Visualization{Image: image}, nil
}

// Snapshot implements Variant
func (p *Custom) Snapshot(data json.RawMessage) ([]byte, error) {
	_, raw, err := p.decode(data)
	if err != nil {
		return nil, err
	}
	return raw, nil
}

// DecodeDataURL decodes a base64 "data:image/...;base64," URL and checks that
// the payload really is an image.
func DecodeDataURL(url string) ([]byte, error) {
	if url == "" {
		return nil, apperrors.NewValidationError("data.image", "is required")
	}
	if !strings.HasPrefix(url, "data:") {
		return nil, apperrors.NewValidationError("data.image", "must be a data URL")
	}
	header, payload, ok := strings.Cut(url[len("data:"):], ",")
	if !ok || !strings.HasSuffix(header, ";base64") {
		return nil, apperrors.NewValidationError("data.image", "must be a base64 data URL")
	}
	if base64.StdEncoding.DecodedLen(len(payload)) > MaxImageBytes {
		return nil, apperrors.NewValidationError("data.image", "image is too large")
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, apperrors.NewValidationError("data.image", "invalid base64 payload")
	}
	if !strings.HasPrefix(mimetype.Detect(raw).String(), "image/") {
		return nil, apperrors.NewValidationError("data.image", "payload is not an image")
	}
	return raw, nil
}
