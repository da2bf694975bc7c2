package dto

// CommentBaseDTO 评论 - 新增或修改
type CommentBaseDTO struct {
	Text string `json:"text" binding:"required" validate:"min=1,max=5000"`
}

// CommentDTO 评论
type CommentDTO struct {
	ID        uint64     `json:"id"`
	PostID    uint64     `json:"post_id"`
	Text      string     `json:"text"`
	Author    *AuthorDTO `json:"author"`
	CreatedAt string     `json:"created_at"`
}
