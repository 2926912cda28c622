package services

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
)

// DecodedImage is a source image decoded from its text transport form.
type DecodedImage struct {
	Data        []byte
	ContentType string
}

// DecodeImage accepts bare base64 or a "data:<mime>;base64,<data>" URL.
func DecodeImage(encoded string) (*DecodedImage, error) {
	payload := encoded
	contentType := ""

	if strings.HasPrefix(encoded, "data:") {
		header, data, ok := strings.Cut(encoded, ",")
		if !ok {
			return nil, fmt.Errorf("invalid data URL")
		}
		if !strings.HasSuffix(header, ";base64") {
			return nil, fmt.Errorf("data URL is not base64 encoded")
		}
		contentType = strings.TrimSuffix(strings.TrimPrefix(header, "data:"), ";base64")
		payload = data
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64: %w", err)
	}
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	return &DecodedImage{Data: data, ContentType: contentType}, nil
}

// IsRemoteURL reports whether the image was sent as an http(s) URL, for
// example an image produced by an earlier generation.
func IsRemoteURL(image string) bool {
	lower := strings.ToLower(image)
	return strings.HasPrefix(lower, "https://") || strings.HasPrefix(lower, "http://")
}

// ToDataURL returns the image in data URL form. Data URLs are returned as is;
// bare base64 is prefixed with its detected content type.
func ToDataURL(encoded string) (string, error) {
	if strings.HasPrefix(encoded, "data:") {
		return encoded, nil
	}
	img, err := DecodeImage(encoded)
	if err != nil {
		return "", err
	}
	return "data:" + img.ContentType + ";base64," + encoded, nil
}
