package minio

import (
	"Solarium/internal/api/config"
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/pkg/errors"
)

// PublicURL 构造对象的公共访问URL
func PublicURL(objectKey string) string {
	cfg := config.Cfg.MinIO

	endpoint := cfg.PublicEndpoint
	if endpoint == "" {
		endpoint = cfg.Endpoint
	}

	protocol := "http"
	if cfg.UseSSL {
		protocol = "https"
	}

	return fmt.Sprintf("%s://%s/%s/%s", protocol, endpoint, cfg.Bucket, objectKey)
}

// PresignedURL 为私有对象（如文档下载）生成限时访问URL
func PresignedURL(ctx context.Context, objectKey string, expiry time.Duration) (string, error) {
	if !Ready() {
		return "", errors.New("minio client is not initialized")
	}

	u, err := Client.PresignedGetObject(ctx, Bucket, objectKey, expiry, url.Values{})
	if err != nil {
		return "", errors.Wrap(err, "failed to presign object")
	}

	return u.String(), nil
}
