package history

import "time"

// CorrectInput lists the fields a correction may touch; nil means unchanged.
type CorrectInput struct {
	Status         *string
	ReturnDate     *time.Time
	LateReturn     *bool
	LenderResponse *string
}

func (in CorrectInput) empty() bool {
	return in.Status == nil && in.ReturnDate == nil && in.LateReturn == nil && in.LenderResponse == nil
}
