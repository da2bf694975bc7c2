package minio

import (
	"Blogicum/internal/api/config"
	"context"
	"fmt"
	log "log/slog"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
)

var (
	// Client 全局 MinIO 客户端实例
	Client *minio.Client
	// MainBucket 主要存储桶
	MainBucket string

	publicEndpoint string
	publicUseSSL   bool
)

// Init 初始化 MinIO 客户端
func Init() error {
	cfg := config.Cfg.MinIO

	var endpoint string
	var useSSL bool
	if cfg.InternalEndpoint != "" {
		endpoint = cfg.InternalEndpoint
		useSSL = cfg.InternalUseSSL
	} else {
		endpoint = cfg.ExternalEndpoint
		useSSL = cfg.ExternalUseSSL
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return errors.Wrap(err, "failed to initialize minio client")
	}

	Client = client
	MainBucket = cfg.MainBucket
	publicEndpoint = cfg.ExternalEndpoint
	if publicEndpoint == "" {
		publicEndpoint = endpoint
	}
	publicUseSSL = cfg.ExternalUseSSL

	return EnsureBucket(context.Background())
}

// EnsureBucket 确保主存储桶存在，且图片目录可匿名读取
func EnsureBucket(ctx context.Context) error {
	exists, err := Client.BucketExists(ctx, MainBucket)
	if err != nil {
		return errors.Wrap(err, "failed to connect to minio server")
	}
	if !exists {
		if err = Client.MakeBucket(ctx, MainBucket, minio.MakeBucketOptions{}); err != nil {
			return errors.Wrapf(err, "创建存储桶 %s 失败", MainBucket)
		}
		log.Info("已创建存储桶", "bucket", MainBucket)
	}

	policy := fmt.Sprintf(`{"Version":"2012-10-17","Statement":[{"Effect":"Allow","Principal":{"AWS":["*"]},"Action":["s3:GetObject"],"Resource":["arn:aws:s3:::%s/post_images/*"]}]}`, MainBucket)
	if err = Client.SetBucketPolicy(ctx, MainBucket, policy); err != nil {
		return errors.Wrap(err, "设置存储桶访问策略失败")
	}
	return nil
}
