package services

import (
	"github.com/legendiguess/mercury-trade-bot/domain"
)

type usersStorage interface {
	NewUser(newUser *domain.User)
	GetUsers() []domain.User
	FindUser(findUser *domain.User) (domain.User, bool)
}

// UsersService keeps the set of telegram chats that receive order
// notifications.
type UsersService struct {
	storage usersStorage
}

func NewUsersService(storage usersStorage) *UsersService {
	return &UsersService{storage: storage}
}

// RegisterUser persists the user; registering the same chat again is a
// no-op.
func (usersService *UsersService) RegisterUser(user *domain.User) {
	if _, known := usersService.storage.FindUser(user); known {
		return
	}
	usersService.storage.NewUser(user)
}

func (usersService *UsersService) GetUsers() []domain.User {
	return usersService.storage.GetUsers()
}
