package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFileName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"comprovante.jpg", "comprovante.jpg"},
		{"Comprovante PIX.JPG", "comprovante_pix.jpg"},
		{"foto-perfil.png", "foto-perfil.png"},
		{"recibo (1).pdf", "recibo__1_.pdf"},
		{"açaí_do_zé.png", "a_a__do_z_.png"},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, SanitizeFileName(tc.in), "input %q", tc.in)
	}
}

func TestBuildKey(t *testing.T) {
	now := time.UnixMilli(1717243200000)

	key := BuildKey("receipts", "ap-123", "Comprovante PIX.jpg", now)

	assert.Equal(t, "receipts/ap-123/1717243200000-comprovante_pix.jpg", key)
}

func TestBuildKeyAvoidsCollisionAcrossUploads(t *testing.T) {
	first := BuildKey("qrcodes", "svc-1", "pix.png", time.UnixMilli(1000))
	second := BuildKey("qrcodes", "svc-1", "pix.png", time.UnixMilli(1001))

	assert.NotEqual(t, first, second)
}

func TestPublicURL(t *testing.T) {
	u := &Uploader{bucket: "uploads", publicURL: "https://cdn.example.com"}

	assert.Equal(
		t,
		"https://cdn.example.com/uploads/receipts/ap-1/1-a.jpg",
		u.PublicURL("receipts/ap-1/1-a.jpg"),
	)
}
