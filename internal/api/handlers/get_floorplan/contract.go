package get_floorplan

import (
	"context"

	getFloorplan "github.com/m04kA/SMC-DeskBooking/internal/usecase/get_floorplan"
)

type GetFloorplanUseCase interface {
	Execute(ctx context.Context, req *getFloorplan.Request) (*getFloorplan.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
