package minio

import (
	"Solarium/internal/api/config"
	"context"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
)

var (
	// Client 全局 MinIO 客户端实例
	Client *minio.Client
	// Bucket 媒体存储桶
	Bucket string
)

// Init 初始化 MinIO 客户端。未配置 endpoint 时跳过，
// 此时媒体解析只使用 media 表中存储的绝对 URL。
func Init() error {
	cfg := config.Cfg.MinIO
	if cfg.Endpoint == "" {
		return nil
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return errors.Wrap(err, "failed to initialize minio client")
	}

	ctx := context.Background()
	if _, err = client.ListBuckets(ctx); err != nil {
		return errors.Wrap(err, "failed to connect to minio server")
	}

	Client = client
	Bucket = cfg.Bucket
	return nil
}

// Ready 客户端是否可用
func Ready() bool {
	return Client != nil
}
