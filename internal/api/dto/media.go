package dto

// MediaTempMetadata 已上传但尚未被帖子引用的图片
type MediaTempMetadata struct {
	MimeType  string `json:"mime_type"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Size      int64  `json:"size"`
	UserID    uint64 `json:"user_id"`
	CreatedAt int64  `json:"created_at"`
}

// MediaUploadDTO 上传结果
type MediaUploadDTO struct {
	Key    string `json:"key"`
	URL    string `json:"url"`
	Mime   string `json:"mime"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Size   int64  `json:"size"`
}
