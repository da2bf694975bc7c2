package api

import "Blogicum/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	UserHandler     *handler.UserHandler
	PostHandler     *handler.PostHandler
	CommentHandler  *handler.CommentHandler
	CategoryHandler *handler.CategoryHandler
	MediaHandler    *handler.MediaHandler
}
