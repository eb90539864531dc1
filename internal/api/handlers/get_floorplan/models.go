package get_floorplan

import (
	"math"

	"github.com/m04kA/SMC-DeskBooking/internal/domain"
	getFloorplan "github.com/m04kA/SMC-DeskBooking/internal/usecase/get_floorplan"
)

// FloorplanResponse HTTP response model
type FloorplanResponse struct {
	Date      string           `json:"date"`
	Time      string           `json:"time"`
	Width     int              `json:"width"`
	Height    int              `json:"height"`
	Resources []ResourceStatus `json:"resources"`
}

// ResourceStatus HTTP response model
type ResourceStatus struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Kind          string    `json:"kind"`
	X             int       `json:"x"`
	Y             int       `json:"y"`
	BookedPercent float64   `json:"bookedPercent"` // 0..100, два знака после запятой
	BadgeColor    string    `json:"badgeColor"`
	BookingsCount int       `json:"bookingsCount"`
	Occupant      *Occupant `json:"occupant,omitempty"`
}

// Occupant HTTP response model
type Occupant struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getFloorplan.Response) *FloorplanResponse {
	out := &FloorplanResponse{
		Date:      resp.Date.Format(domain.DateFormat),
		Time:      resp.Time.String(),
		Width:     resp.Width,
		Height:    resp.Height,
		Resources: make([]ResourceStatus, 0, len(resp.Resources)),
	}

	for _, r := range resp.Resources {
		status := ResourceStatus{
			ID:            r.ID,
			Name:          r.Name,
			Kind:          r.Kind,
			X:             r.X,
			Y:             r.Y,
			BookedPercent: roundPercent(r.BookedPercent),
			BadgeColor:    r.BadgeColor,
			BookingsCount: r.BookingsCount,
		}
		if r.Occupant != nil {
			status.Occupant = &Occupant{
				ID:        r.Occupant.ID,
				Name:      r.Occupant.Name,
				AvatarURL: r.Occupant.AvatarURL,
			}
		}
		out.Resources = append(out.Resources, status)
	}

	return out
}

// Два знака после запятой; одна минута занятости даёт 0.14
func roundPercent(percent float64) float64 {
	return math.Round(percent*100) / 100
}
