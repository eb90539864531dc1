package get_floorplan

import (
	"fmt"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !req.Time.IsZero() {
		if err := req.Time.Validate(); err != nil {
			return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
		}
	}

	return nil
}
