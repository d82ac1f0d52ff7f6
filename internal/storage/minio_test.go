package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowedContentType(t *testing.T) {
	allow := []string{"image/jpeg", "image/png", "image/webp"}

	assert.True(t, allowedContentType(allow, "image/png"))
	assert.True(t, allowedContentType(allow, "image/webp"))
	assert.False(t, allowedContentType(allow, "image/svg+xml"))
	assert.False(t, allowedContentType(allow, "application/octet-stream"))
	assert.False(t, allowedContentType(allow, ""))
	assert.False(t, allowedContentType(nil, "image/png"))
}

func TestExtensionFor(t *testing.T) {
	assert.Equal(t, ".jpg", extensionFor("image/jpeg"))
	assert.Equal(t, ".png", extensionFor("image/png"))
	assert.Equal(t, ".webp", extensionFor("image/webp"))
	assert.Equal(t, "", extensionFor("application/zip"))
}
