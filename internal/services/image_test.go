package services_test

import (
	"testing"

	"adsgenie-backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

func TestDecodeImage_DataURL(t *testing.T) {
	img, err := services.DecodeImage("data:image/webp;base64,iVBORw0KGgo=")
	require.NoError(t, err)
	assert.Equal(t, "image/webp", img.ContentType)
	assert.Equal(t, pngSignature, img.Data)
}

func TestDecodeImage_BareBase64(t *testing.T) {
	img, err := services.DecodeImage("iVBORw0KGgo=")
	require.NoError(t, err)
	assert.Equal(t, "image/png", img.ContentType)
}

func TestDecodeImage_Invalid(t *testing.T) {
	_, err := services.DecodeImage("data:image/png,plain")
	assert.Error(t, err)

	_, err = services.DecodeImage("data:image/png;base64")
	assert.Error(t, err)

	_, err = services.DecodeImage("!!!")
	assert.Error(t, err)
}

func TestToDataURL(t *testing.T) {
	url, err := services.ToDataURL(testImage)
	require.NoError(t, err)
	assert.Equal(t, testImage, url)

	url, err = services.ToDataURL("iVBORw0KGgo=")
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,iVBORw0KGgo=", url)
}

func TestIsRemoteURL(t *testing.T) {
	assert.True(t, services.IsRemoteURL("https://cdn.example/ad.png"))
	assert.True(t, services.IsRemoteURL("HTTP://cdn.example/ad.png"))
	assert.False(t, services.IsRemoteURL(testImage))
	assert.False(t, services.IsRemoteURL("iVBORw0KGgo="))
	assert.False(t, services.IsRemoteURL("ftp://cdn.example/ad.png"))
}
