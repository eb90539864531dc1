package users

import "github.com/m04kA/SMC-DeskBooking/internal/domain"

// UserResponse ответ с данными пользователя
type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
}

// UserListResponse ответ со списком пользователей
type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

func fromDomainUser(u *domain.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, AvatarURL: u.AvatarURL}
}
