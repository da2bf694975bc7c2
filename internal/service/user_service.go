package service

import (
	"Blogicum/internal/api/dto"
	"Blogicum/internal/model"
	"Blogicum/internal/pkg/consts"
	"Blogicum/internal/pkg/security"
	"Blogicum/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"time"
)

// TokenBlacklist 注销后的令牌签名
type TokenBlacklist interface {
	Revoke(ctx context.Context, signature string, ttl time.Duration) error
	IsRevoked(ctx context.Context, signature string) (bool, error)
}

type UserService interface {
	Register(ctx context.Context, regDTO *dto.RegisterDTO) (*dto.ProfileDTO, error)
	Login(ctx context.Context, credDTO *dto.CredentialDTO) (*dto.TokenDTO, error)
	Logout(ctx context.Context, token string) error
	GetProfile(ctx context.Context, viewerID uint64, username string) (*dto.ProfileDTO, error)
	GetSelf(ctx context.Context, userID uint64) (*dto.ProfileDTO, error)
	UpdateProfile(ctx context.Context, userID uint64, profileDTO *dto.ProfileUpdateDTO) (*dto.ProfileDTO, error)
	DeleteUser(ctx context.Context, adminID uint64, userID uint64) error
}

type UserServiceImpl struct {
	userRepo  repository.UserRepo
	blacklist TokenBlacklist
	mediaSvc  MediaService
}

func NewUserService(userRepo repository.UserRepo, blacklist TokenBlacklist, mediaSvc MediaService) UserService {
	return &UserServiceImpl{
		userRepo:  userRepo,
		blacklist: blacklist,
		mediaSvc:  mediaSvc,
	}
}

func (s *UserServiceImpl) Register(ctx context.Context, regDTO *dto.RegisterDTO) (*dto.ProfileDTO, error) {
	found, err := s.userRepo.GetUserByUsername(ctx, regDTO.Username)
	if err != nil {
		return nil, err
	}
	if found != nil {
		return nil, ErrUserUsernameExist
	}

	passwordHash, err := security.HashPassword(regDTO.Password)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Username:  regDTO.Username,
		Password:  passwordHash,
		FirstName: regDTO.FirstName,
		LastName:  regDTO.LastName,
		Email:     regDTO.Email,
	}
	if err = s.userRepo.CreateUser(ctx, user); err != nil {
		if repository.IsDuplicateError(err) {
			return nil, ErrUserUsernameExist
		}
		return nil, err
	}
	log.InfoContext(ctx, "user registered", "username", user.Username)
	return toProfileDTO(user, user.ID)
}

func (s *UserServiceImpl) Login(ctx context.Context, credDTO *dto.CredentialDTO) (*dto.TokenDTO, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, credDTO.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if err = security.CheckPasswordHash(credDTO.Password, user.Password); err != nil {
		if errors.Is(err, security.ErrInvalidCredentials) {
			return nil, ErrPasswordIncorrect
		}
		return nil, err
	}

	roles := []string{consts.RoleUser}
	if user.IsAdmin {
		roles = append(roles, consts.RoleAdmin)
	}
	token, err := security.GenerateToken(user.ID, roles)
	if err != nil {
		return nil, err
	}
	return &dto.TokenDTO{Token: token}, nil
}

// Logout 令牌签名加入黑名单直至过期
func (s *UserServiceImpl) Logout(ctx context.Context, token string) error {
	claims, err := security.ValidateToken(token)
	if err != nil {
		return UnauthorizedError
	}
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return UnauthorizedError
	}
	return s.blacklist.Revoke(ctx, signature, security.RemainingTTL(claims))
}

// GetProfile 公开主页，邮箱仅本人可见
func (s *UserServiceImpl) GetProfile(ctx context.Context, viewerID uint64, username string) (*dto.ProfileDTO, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return toProfileDTO(user, viewerID)
}

func (s *UserServiceImpl) GetSelf(ctx context.Context, userID uint64) (*dto.ProfileDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return toProfileDTO(user, userID)
}

// UpdateProfile 只能修改自己的资料
func (s *UserServiceImpl) UpdateProfile(ctx context.Context, userID uint64, profileDTO *dto.ProfileUpdateDTO) (*dto.ProfileDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if profileDTO.Username != user.Username {
		taken, err := s.userRepo.GetUserByUsername(ctx, profileDTO.Username)
		if err != nil {
			return nil, err
		}
		if taken != nil {
			return nil, ErrUserUsernameExist
		}
	}

	user.Username = profileDTO.Username
	user.FirstName = profileDTO.FirstName
	user.LastName = profileDTO.LastName
	user.Email = profileDTO.Email
	if err = s.userRepo.UpdateUser(ctx, user); err != nil {
		if repository.IsDuplicateError(err) {
			return nil, ErrUserUsernameExist
		}
		return nil, err
	}
	return toProfileDTO(user, userID)
}

// DeleteUser 管理员删除用户，连带其帖子、评论与图片
func (s *UserServiceImpl) DeleteUser(ctx context.Context, adminID uint64, userID uint64) error {
	if adminID == userID {
		return ErrForbidden
	}
	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	images, err := s.userRepo.DeleteUser(ctx, userID)
	if err != nil {
		return err
	}
	for _, key := range images {
		s.mediaSvc.DeleteImage(ctx, key)
	}
	log.InfoContext(ctx, "user deleted", "target_user_id", userID, "images", len(images))
	return nil
}
