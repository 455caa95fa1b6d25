package dto

import (
	"time"

	"chiclon/internal/domains/schedule/model"
)

type SlotsRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

type SlotResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type SlotsResponse struct {
	Date  string         `json:"date"`
	Open  bool           `json:"open"`
	Slots []SlotResponse `json:"slots"`
}

func (r *SlotsResponse) FromModels(date time.Time, slots []model.Slot) {
	r.Date = date.Format(time.DateOnly)
	r.Open = len(slots) > 0

	r.Slots = make([]SlotResponse, len(slots))
	for i, slot := range slots {
		r.Slots[i] = SlotResponse{Value: slot.Value, Label: slot.Label}
	}
}
