package user

import (
	"time"

	"gorm.io/gorm"
)

type UserContainer struct {
	Repo    Repository
	Service Service
	Handler *Handler
}

func NewUserContainer(db *gorm.DB, tokenTTL time.Duration) *UserContainer {
	repo := NewRepository(db)
	service := NewService(repo, tokenTTL)
	handler := NewHandler(service, tokenTTL)

	return &UserContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
