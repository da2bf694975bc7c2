package service

import (
	"Blogicum/internal/api/dto"
	"Blogicum/internal/model"
	"Blogicum/internal/pkg/util"
	"Blogicum/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/jinzhu/copier"
)

type PostService interface {
	ListPosts(ctx context.Context, viewerID uint64, page string) (*dto.PostPageDTO, error)
	ListCategoryPosts(ctx context.Context, viewerID uint64, slug string, page string) (*dto.CategoryPostsDTO, error)
	ListProfilePosts(ctx context.Context, viewerID uint64, username string, page string) (*dto.ProfilePostsDTO, error)
	GetPost(ctx context.Context, viewerID uint64, postID uint64) (*dto.PostDetailDTO, error)
	CreatePost(ctx context.Context, userID uint64, postDTO *dto.PostBaseDTO) (*dto.PostDTO, error)
	UpdatePost(ctx context.Context, userID uint64, postID uint64, postDTO *dto.PostBaseDTO) (*dto.PostDTO, error)
	DeletePost(ctx context.Context, userID uint64, postID uint64) error
}

type postServiceImpl struct {
	postRepo     repository.PostRepo
	commentRepo  repository.CommentRepo
	userRepo     repository.UserRepo
	categoryRepo repository.CategoryRepo
	locationRepo repository.LocationRepo
	mediaSvc     MediaService
	now          func() time.Time
}

func NewPostService(
	postRepo repository.PostRepo,
	commentRepo repository.CommentRepo,
	userRepo repository.UserRepo,
	categoryRepo repository.CategoryRepo,
	locationRepo repository.LocationRepo,
	mediaSvc MediaService,
) PostService {
	return &postServiceImpl{
		postRepo:     postRepo,
		commentRepo:  commentRepo,
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
		locationRepo: locationRepo,
		mediaSvc:     mediaSvc,
		now:          time.Now,
	}
}

// ListPosts 首页，所有人都只看到公开帖子
func (s *postServiceImpl) ListPosts(ctx context.Context, viewerID uint64, page string) (*dto.PostPageDTO, error) {
	return s.listPage(ctx, page, repository.PostQuery{Public: true})
}

// ListCategoryPosts 分类页，分类不存在或未发布时对所有人 404
func (s *postServiceImpl) ListCategoryPosts(ctx context.Context, viewerID uint64, slug string, page string) (*dto.CategoryPostsDTO, error) {
	category, err := s.categoryRepo.GetCategoryBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if category == nil || !category.IsPublished {
		return nil, ErrCategoryNotFound
	}

	postPage, err := s.listPage(ctx, page, repository.PostQuery{
		CategoryID: category.ID,
		Public:     true,
	})
	if err != nil {
		return nil, err
	}
	categoryDTO, err := toCategoryDTO(category)
	if err != nil {
		return nil, err
	}
	return &dto.CategoryPostsDTO{Category: categoryDTO, PostPageDTO: postPage}, nil
}

// ListProfilePosts 个人主页，本人可见全部帖子，其他人只见公开帖子
func (s *postServiceImpl) ListProfilePosts(ctx context.Context, viewerID uint64, username string, page string) (*dto.ProfilePostsDTO, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	postPage, err := s.listPage(ctx, page, repository.PostQuery{
		AuthorID: user.ID,
		Public:   viewerID != user.ID,
	})
	if err != nil {
		return nil, err
	}
	profile, err := toProfileDTO(user, viewerID)
	if err != nil {
		return nil, err
	}
	return &dto.ProfilePostsDTO{Profile: profile, PostPageDTO: postPage}, nil
}

// GetPost 详情，作者本人始终可见，否则须公开可见
func (s *postServiceImpl) GetPost(ctx context.Context, viewerID uint64, postID uint64) (*dto.PostDetailDTO, error) {
	post, err := s.loadVisiblePost(ctx, viewerID, postID)
	if err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.GetCommentsByPostID(ctx, post.ID)
	if err != nil {
		return nil, err
	}

	postDTO, err := s.toPostDTO(post)
	if err != nil {
		return nil, err
	}
	commentDTOs, err := toCommentDTOs(comments)
	if err != nil {
		return nil, err
	}
	return &dto.PostDetailDTO{PostDTO: postDTO, Comments: commentDTOs}, nil
}

// CreatePost 创建帖子，is_published 默认为 true
func (s *postServiceImpl) CreatePost(ctx context.Context, userID uint64, postDTO *dto.PostBaseDTO) (*dto.PostDTO, error) {
	if err := s.checkRelations(ctx, postDTO); err != nil {
		return nil, err
	}

	post := &model.Post{
		Title:       postDTO.Title,
		Text:        postDTO.Text,
		PubDate:     postDTO.PubDate.UTC(),
		IsPublished: util.BoolOr(postDTO.IsPublished, true),
		AuthorID:    userID,
		LocationID:  postDTO.LocationID,
		CategoryID:  postDTO.CategoryID,
	}
	if postDTO.Image != nil && *postDTO.Image != "" {
		if err := s.mediaSvc.ClaimImage(ctx, userID, *postDTO.Image); err != nil {
			return nil, err
		}
		post.Image = *postDTO.Image
	}

	if err := s.postRepo.CreatePost(ctx, post); err != nil {
		s.mediaSvc.ReleaseImage(ctx, userID, post.Image)
		return nil, err
	}
	log.InfoContext(ctx, "post created", "post_id", post.ID)
	return s.reload(ctx, post.ID)
}

// UpdatePost 修改帖子，image 为 nil 时保留原图，为空串时移除
func (s *postServiceImpl) UpdatePost(ctx context.Context, userID uint64, postID uint64, postDTO *dto.PostBaseDTO) (*dto.PostDTO, error) {
	post, err := s.loadOwnPost(ctx, userID, postID)
	if err != nil {
		return nil, err
	}
	if err = s.checkRelations(ctx, postDTO); err != nil {
		return nil, err
	}

	oldImage := post.Image
	if postDTO.Image != nil && *postDTO.Image != oldImage {
		if *postDTO.Image != "" {
			if err = s.mediaSvc.ClaimImage(ctx, userID, *postDTO.Image); err != nil {
				return nil, err
			}
		}
		post.Image = *postDTO.Image
	}

	post.Title = postDTO.Title
	post.Text = postDTO.Text
	post.PubDate = postDTO.PubDate.UTC()
	post.IsPublished = util.BoolOr(postDTO.IsPublished, post.IsPublished)
	post.LocationID = postDTO.LocationID
	post.CategoryID = postDTO.CategoryID

	if err = s.postRepo.UpdatePost(ctx, post); err != nil {
		if post.Image != oldImage {
			s.mediaSvc.ReleaseImage(ctx, userID, post.Image)
		}
		return nil, err
	}
	if oldImage != post.Image {
		s.mediaSvc.DeleteImage(ctx, oldImage)
	}
	return s.reload(ctx, post.ID)
}

// DeletePost 删除帖子、评论及图片
func (s *postServiceImpl) DeletePost(ctx context.Context, userID uint64, postID uint64) error {
	post, err := s.loadOwnPost(ctx, userID, postID)
	if err != nil {
		return err
	}
	if err = s.postRepo.DeletePost(ctx, post.ID); err != nil {
		return err
	}
	s.mediaSvc.DeleteImage(ctx, post.Image)
	log.InfoContext(ctx, "post deleted", "post_id", post.ID)
	return nil
}

func (s *postServiceImpl) listPage(ctx context.Context, rawPage string, q repository.PostQuery) (*dto.PostPageDTO, error) {
	page, ok := util.ParsePage(rawPage)
	if !ok {
		return nil, ErrPageNotFound
	}
	q.Now = s.now().UTC()
	q.Offset = (page - 1) * util.PageSize
	q.Limit = util.PageSize

	posts, total, err := s.postRepo.ListPosts(ctx, q)
	if err != nil {
		return nil, err
	}
	totalPages := util.TotalPages(total, util.PageSize)
	if page > totalPages {
		return nil, ErrPageNotFound
	}

	items, err := s.batchToPostDTO(posts)
	if err != nil {
		return nil, err
	}
	return &dto.PostPageDTO{
		List:       items,
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
		HasMore:    page < totalPages,
	}, nil
}

// loadVisiblePost 不存在或对当前用户不可见时一律 404
func (s *postServiceImpl) loadVisiblePost(ctx context.Context, viewerID uint64, postID uint64) (*model.Post, error) {
	return loadVisiblePost(ctx, s.postRepo, viewerID, postID, s.now())
}

// loadOwnPost 可见但不是作者时返回 ErrForbidden
func (s *postServiceImpl) loadOwnPost(ctx context.Context, userID uint64, postID uint64) (*model.Post, error) {
	post, err := s.loadVisiblePost(ctx, userID, postID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != userID {
		return nil, ErrForbidden
	}
	return post, nil
}

func loadVisiblePost(ctx context.Context, postRepo repository.PostRepo, viewerID uint64, postID uint64, now time.Time) (*model.Post, error) {
	post, err := postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil || !post.VisibleTo(viewerID, now) {
		return nil, ErrPostNotFound
	}
	return post, nil
}

// checkRelations 分类与地点须存在，未发布的也允许选择
func (s *postServiceImpl) checkRelations(ctx context.Context, postDTO *dto.PostBaseDTO) error {
	if postDTO.CategoryID != nil {
		category, err := s.categoryRepo.GetCategoryByID(ctx, *postDTO.CategoryID)
		if err != nil {
			return err
		}
		if category == nil {
			return newFieldError("category_id", ErrCategoryNotFound.Error())
		}
	}
	if postDTO.LocationID != nil {
		location, err := s.locationRepo.GetLocationByID(ctx, *postDTO.LocationID)
		if err != nil {
			return err
		}
		if location == nil {
			return newFieldError("location_id", ErrLocationNotFound.Error())
		}
	}
	return nil
}

func (s *postServiceImpl) reload(ctx context.Context, postID uint64) (*dto.PostDTO, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return s.toPostDTO(post)
}

// toPostDTO 未发布的地点不展示
func (s *postServiceImpl) toPostDTO(post *model.Post) (*dto.PostDTO, error) {
	out := &dto.PostDTO{}
	if err := copier.CopyWithOption(out, post, copyOption); err != nil {
		return nil, err
	}

	author, err := toAuthorDTO(&post.Author)
	if err != nil {
		return nil, err
	}
	out.Author = author

	out.Category = nil
	if post.Category != nil {
		if out.Category, err = toCategoryDTO(post.Category); err != nil {
			return nil, err
		}
	}
	out.Location = nil
	if post.Location != nil && post.Location.IsPublished {
		if out.Location, err = toLocationDTO(post.Location); err != nil {
			return nil, err
		}
	}

	out.ImageURL = s.mediaSvc.PublicURL(post.Image)
	return out, nil
}

func (s *postServiceImpl) batchToPostDTO(posts []*model.Post) ([]*dto.PostDTO, error) {
	out := make([]*dto.PostDTO, len(posts))
	for i, post := range posts {
		item, err := s.toPostDTO(post)
		if err != nil {
			return nil, err
		}
		out[i] = item
	}
	return out, nil
}
