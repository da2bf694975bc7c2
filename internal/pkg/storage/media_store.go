package storage

import (
	"Blogicum/internal/api/dto"
	"Blogicum/internal/pkg/consts"
	"Blogicum/internal/pkg/minio"
	"Blogicum/internal/pkg/redis"
	"bytes"
	"context"

	"github.com/goccy/go-json"
)

// MediaStore 图片对象存于 MinIO，待认领的上传记录存于 Redis 哈希
type MediaStore struct{}

func NewMediaStore() *MediaStore {
	return &MediaStore{}
}

func (s *MediaStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := minio.UploadFile(ctx, key, bytes.NewReader(data), int64(len(data)), contentType)
	return err
}

func (s *MediaStore) Delete(ctx context.Context, key string) error {
	return minio.DeleteFile(ctx, key)
}

func (s *MediaStore) PublicURL(key string) string {
	return minio.GetPublicURL(key)
}

func (s *MediaStore) SavePending(ctx context.Context, key string, meta *dto.MediaTempMetadata) error {
	b, err := json.Marshal(meta)
	if err != nil {
		return err
	}
	return redis.HSet(ctx, consts.MediaTempKey, key, string(b))
}

// GetPending 不存在时返回 nil
func (s *MediaStore) GetPending(ctx context.Context, key string) (*dto.MediaTempMetadata, error) {
	val, err := redis.HGet(ctx, consts.MediaTempKey, key)
	if err != nil || val == "" {
		return nil, err
	}
	var meta dto.MediaTempMetadata
	if err = json.Unmarshal([]byte(val), &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// RemovePending HDEL 原子删除，记录已不存在时返回 false
func (s *MediaStore) RemovePending(ctx context.Context, key string) (bool, error) {
	n, err := redis.HDel(ctx, consts.MediaTempKey, key)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ListPending 全部待认领记录，解析失败的条目 meta 为 nil
func (s *MediaStore) ListPending(ctx context.Context) (map[string]*dto.MediaTempMetadata, error) {
	all, err := redis.HGetAll(ctx, consts.MediaTempKey)
	if err != nil {
		return nil, err
	}
	out := make(map[string]*dto.MediaTempMetadata, len(all))
	for key, val := range all {
		var meta dto.MediaTempMetadata
		if err = json.Unmarshal([]byte(val), &meta); err != nil {
			out[key] = nil
			continue
		}
		out[key] = &meta
	}
	return out, nil
}
