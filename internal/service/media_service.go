package service

import (
	"Blogicum/internal/api/dto"
	"Blogicum/internal/pkg/consts"
	"Blogicum/internal/pkg/util"
	"context"
	"errors"
	"io"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// MediaStore 图片对象与待认领记录的存储
type MediaStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
	SavePending(ctx context.Context, key string, meta *dto.MediaTempMetadata) error
	GetPending(ctx context.Context, key string) (*dto.MediaTempMetadata, error)
	RemovePending(ctx context.Context, key string) (bool, error)
	ListPending(ctx context.Context) (map[string]*dto.MediaTempMetadata, error)
}

type MediaService interface {
	UploadImage(ctx context.Context, userID uint64, reader io.Reader, size int64) (*dto.MediaUploadDTO, error)
	ClaimImage(ctx context.Context, userID uint64, key string) error
	ReleaseImage(ctx context.Context, userID uint64, key string)
	DeleteImage(ctx context.Context, key string)
	PublicURL(key string) string
	CleanupPending(ctx context.Context, maxAge time.Duration) (int, error)
}

type mediaServiceImpl struct {
	store    MediaStore
	maxSide  int
	maxBytes int64
	now      func() time.Time
}

func NewMediaService(store MediaStore, maxSide int, maxMB int) MediaService {
	if maxMB <= 0 {
		maxMB = 10
	}
	return &mediaServiceImpl{
		store:    store,
		maxSide:  maxSide,
		maxBytes: int64(maxMB) << 20,
		now:      time.Now,
	}
}

// UploadImage 校验、缩放并保存图片，登记为待认领
func (s *mediaServiceImpl) UploadImage(ctx context.Context, userID uint64, reader io.Reader, size int64) (*dto.MediaUploadDTO, error) {
	if size > s.maxBytes {
		return nil, ErrFileTooLarge
	}
	data, err := io.ReadAll(io.LimitReader(reader, s.maxBytes+1))
	if err != nil {
		return nil, ErrParamInvalid
	}
	if int64(len(data)) > s.maxBytes {
		return nil, ErrFileTooLarge
	}

	img, err := util.NormalizeImage(data, s.maxSide)
	if err != nil {
		if errors.Is(err, util.ErrUnsupportedImage) {
			return nil, ErrFileNotSupported
		}
		log.ErrorContext(ctx, "normalize image failed", "err", err)
		return nil, UnExpectedError
	}

	now := s.now()
	key := consts.PostImageDir + now.Format("2006/01/02/") + uuid.NewString() + img.Ext
	if err = s.store.Put(ctx, key, img.Data, img.ContentType); err != nil {
		log.ErrorContext(ctx, "MinIO upload failed", "err", err)
		return nil, UnExpectedError
	}

	meta := &dto.MediaTempMetadata{
		MimeType:  img.ContentType,
		Width:     img.Width,
		Height:    img.Height,
		Size:      int64(len(img.Data)),
		UserID:    userID,
		CreatedAt: now.Unix(),
	}
	if err = s.store.SavePending(ctx, key, meta); err != nil {
		log.ErrorContext(ctx, "save pending media failed", "key", key, "err", err)
		_ = s.store.Delete(ctx, key)
		return nil, UnExpectedError
	}

	log.InfoContext(ctx, "image uploaded", "key", key, "mime", img.ContentType)
	return &dto.MediaUploadDTO{
		Key:    key,
		URL:    s.store.PublicURL(key),
		Mime:   img.ContentType,
		Width:  img.Width,
		Height: img.Height,
		Size:   meta.Size,
	}, nil
}

// ClaimImage 帖子引用本人上传的图片，引用后不再被清理任务回收
func (s *mediaServiceImpl) ClaimImage(ctx context.Context, userID uint64, key string) error {
	meta, err := s.store.GetPending(ctx, key)
	if err != nil {
		log.ErrorContext(ctx, "get pending media failed", "key", key, "err", err)
		return UnExpectedError
	}
	if meta == nil || meta.UserID != userID {
		log.WarnContext(ctx, "media resource not found in temp cache", "key", key)
		return newFieldError("image", ErrFileNotExist.Error())
	}
	removed, err := s.store.RemovePending(ctx, key)
	if err != nil {
		log.ErrorContext(ctx, "remove pending media failed", "key", key, "err", err)
		return UnExpectedError
	}
	if !removed {
		log.WarnContext(ctx, "media already claimed", "key", key)
		return newFieldError("image", ErrFileNotExist.Error())
	}
	return nil
}

// ReleaseImage 撤销认领，帖子写库失败时调用，图片重新交由清理任务回收
func (s *mediaServiceImpl) ReleaseImage(ctx context.Context, userID uint64, key string) {
	if key == "" {
		return
	}
	meta := &dto.MediaTempMetadata{UserID: userID, CreatedAt: s.now().Unix()}
	if err := s.store.SavePending(ctx, key, meta); err != nil {
		log.ErrorContext(ctx, "release media failed, deleting object", "key", key, "err", err)
		s.DeleteImage(ctx, key)
	}
}

// DeleteImage 删除失败只记录日志
func (s *mediaServiceImpl) DeleteImage(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := s.store.Delete(ctx, key); err != nil {
		log.WarnContext(ctx, "delete image failed", "key", key, "err", err)
	}
}

func (s *mediaServiceImpl) PublicURL(key string) string {
	if key == "" {
		return ""
	}
	return s.store.PublicURL(key)
}

// CleanupPending 回收超过 maxAge 仍未被帖子引用的上传，返回清理数量
func (s *mediaServiceImpl) CleanupPending(ctx context.Context, maxAge time.Duration) (int, error) {
	pending, err := s.store.ListPending(ctx)
	if err != nil {
		return 0, err
	}

	deadline := s.now().Add(-maxAge).Unix()
	cleaned := 0
	for key, meta := range pending {
		if meta != nil && meta.CreatedAt > deadline {
			continue
		}
		if err = s.store.Delete(ctx, key); err != nil {
			log.WarnContext(ctx, "delete expired media failed", "key", key, "err", err)
			continue
		}
		if _, err = s.store.RemovePending(ctx, key); err != nil {
			log.WarnContext(ctx, "remove expired pending record failed", "key", key, "err", err)
			continue
		}
		cleaned++
	}
	return cleaned, nil
}
