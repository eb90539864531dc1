package list_desk_slots

import "github.com/m04kA/SMC-DeskBooking/internal/domain"

// DeskSlotResponse HTTP response model
type DeskSlotResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// DeskSlotListResponse HTTP response model
type DeskSlotListResponse struct {
	Slots []DeskSlotResponse `json:"slots"`
}

func fromDomainSlots(slots []domain.DeskSlot) DeskSlotListResponse {
	out := DeskSlotListResponse{Slots: make([]DeskSlotResponse, 0, len(slots))}
	for _, s := range slots {
		out.Slots = append(out.Slots, DeskSlotResponse{
			Value: s.Value,
			Label: s.Label,
			Start: s.Start.String(),
			End:   s.End.String(),
		})
	}
	return out
}
