package delete_resource

import (
	"context"

	"github.com/m04kA/SMC-DeskBooking/internal/service/resources/models"
)

type ResourceService interface {
	Delete(ctx context.Context, id string) (*models.DeleteResourceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
