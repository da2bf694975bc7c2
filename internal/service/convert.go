package service

import (
	"Blogicum/internal/api/dto"
	"Blogicum/internal/model"
	"time"

	"github.com/jinzhu/copier"
)

const timeLayout = "2006-01-02 15:04:05"

// copyOption 时间字段统一格式化为字符串
var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: time.Time{},
			DstType: copier.String,
			Fn: func(src interface{}) (interface{}, error) {
				return src.(time.Time).Format(timeLayout), nil
			},
		},
	},
}

func toAuthorDTO(user *model.User) (*dto.AuthorDTO, error) {
	out := &dto.AuthorDTO{}
	if err := copier.Copy(out, user); err != nil {
		return nil, err
	}
	return out, nil
}

func toCategoryDTO(category *model.Category) (*dto.CategoryDTO, error) {
	out := &dto.CategoryDTO{}
	if err := copier.Copy(out, category); err != nil {
		return nil, err
	}
	return out, nil
}

func toLocationDTO(location *model.Location) (*dto.LocationDTO, error) {
	out := &dto.LocationDTO{}
	if err := copier.Copy(out, location); err != nil {
		return nil, err
	}
	return out, nil
}

// toProfileDTO 邮箱只对本人展示
func toProfileDTO(user *model.User, viewerID uint64) (*dto.ProfileDTO, error) {
	out := &dto.ProfileDTO{}
	if err := copier.Copy(out, user); err != nil {
		return nil, err
	}
	if viewerID != user.ID {
		out.Email = ""
	}
	return out, nil
}

func toCommentDTO(comment *model.Comment) (*dto.CommentDTO, error) {
	out := &dto.CommentDTO{}
	if err := copier.CopyWithOption(out, comment, copyOption); err != nil {
		return nil, err
	}
	author, err := toAuthorDTO(&comment.Author)
	if err != nil {
		return nil, err
	}
	out.Author = author
	return out, nil
}

func toCommentDTOs(comments []*model.Comment) ([]*dto.CommentDTO, error) {
	out := make([]*dto.CommentDTO, len(comments))
	for i, comment := range comments {
		item, err := toCommentDTO(comment)
		if err != nil {
			return nil, err
		}
		out[i] = item
	}
	return out, nil
}
