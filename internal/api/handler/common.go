package handler

import (
	"Blogicum/internal/api/dto"
	"Blogicum/internal/pkg/consts"
	"Blogicum/internal/pkg/response"
	"Blogicum/internal/pkg/util"
	"Blogicum/internal/service"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

// pageParam 绑定 ?page=，失败时已写回 404
func pageParam(c *gin.Context) (string, bool) {
	var query dto.PageQueryDTO
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, service.ErrPageNotFound)
		return "", false
	}
	return query.Page, true
}

// bindJSON 解析并校验请求体，失败时已写回响应
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.BindError(c, err)
		return false
	}
	if err := util.ValidateDTO(req); err != nil {
		response.Error(c, err)
		return false
	}
	return true
}

// pathID 非法 ID 按资源不存在处理
func pathID(c *gin.Context, name string, notFound error) (uint64, bool) {
	id, ok := util.ParseID(c.Param(name))
	if !ok {
		response.Error(c, notFound)
		return 0, false
	}
	return id, true
}

func viewerID(c *gin.Context) uint64 {
	return c.GetUint64(consts.UserIDKey)
}

func postDetailPath(postID uint64) string {
	return "/api/posts/" + strconv.FormatUint(postID, 10)
}

// errorOrRedirect 修改他人帖子或评论时重定向回帖子详情
func errorOrRedirect(c *gin.Context, err error, postID uint64) {
	if errors.Is(err, service.ErrForbidden) {
		response.SeeOther(c, postDetailPath(postID), err)
		return
	}
	response.Error(c, err)
}
