package dto

import "time"

// AuthorDTO 作者简要信息
type AuthorDTO struct {
	ID        uint64 `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// ProfileDTO 用户主页信息
type ProfileDTO struct {
	ID        uint64    `json:"id"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// RegisterDTO 注册
type RegisterDTO struct {
	Username  string `json:"username" binding:"required" validate:"min=3,max=150,username"`
	Password  string `json:"password" binding:"required" validate:"min=6,max=128"`
	FirstName string `json:"first_name" validate:"max=150"`
	LastName  string `json:"last_name" validate:"max=150"`
	Email     string `json:"email" validate:"omitempty,email,max=254"`
}

// CredentialDTO 登录凭据
type CredentialDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ProfileUpdateDTO 修改个人资料
type ProfileUpdateDTO struct {
	Username  string `json:"username" binding:"required" validate:"min=3,max=150,username"`
	FirstName string `json:"first_name" validate:"max=150"`
	LastName  string `json:"last_name" validate:"max=150"`
	Email     string `json:"email" validate:"omitempty,email,max=254"`
}

// TokenDTO 登录结果
type TokenDTO struct {
	Token string `json:"token"`
}
