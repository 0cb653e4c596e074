package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/mussol-barber/booking-api/internal/config"
)

// Store é o que os handlers enxergam do object storage.
type Store interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// Uploader fala com um bucket S3-compatível (Supabase Storage, MinIO,
// AWS). Endpoint e credenciais vêm da configuração.
type Uploader struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func NewUploader(cfg *config.Config) *Uploader {
	opts := s3.Options{
		Region:       cfg.StorageRegion,
		UsePathStyle: true,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.StorageAccessKey,
			cfg.StorageSecretKey,
			"",
		),
	}
	if cfg.StorageEndpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.StorageEndpoint)
	}

	return &Uploader{
		client:    s3.New(opts),
		bucket:    cfg.StorageBucket,
		publicURL: strings.TrimRight(cfg.StoragePublicURL, "/"),
	}
}

func (u *Uploader) Upload(
	ctx context.Context,
	key string,
	data []byte,
	contentType string,
) (string, error) {

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}

	return u.PublicURL(key), nil
}

func (u *Uploader) PublicURL(key string) string {
	return fmt.Sprintf("%s/%s/%s", u.publicURL, u.bucket, key)
}

var _ Store = (*Uploader)(nil)

// BuildKey monta o caminho do objeto: categoria/entidade/timestamp-nome.
// O timestamp evita colisão entre uploads do mesmo arquivo.
func BuildKey(category, entityID, fileName string, now time.Time) string {
	return fmt.Sprintf(
		"%s/%s/%d-%s",
		category,
		entityID,
		now.UnixMilli(),
		SanitizeFileName(fileName),
	)
}

// SanitizeFileName reduz o nome a [a-z0-9.-]; todo o resto vira "_".
func SanitizeFileName(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	return b.String()
}
