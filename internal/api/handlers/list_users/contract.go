package list_users

import (
	"context"

	"github.com/m04kA/SMC-DeskBooking/internal/service/users"
)

type UserService interface {
	List(ctx context.Context) (*users.UserListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
