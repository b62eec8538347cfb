package reservation

import "time"

type CreateReservationRequest struct {
	RoomID      int64     `json:"room_id" binding:"required"`
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description"`
	InviteCode  string    `json:"invite_code"`
	PartySize   int       `json:"party_size"`
	StartTime   time.Time `json:"start_time" binding:"required"`
	EndTime     time.Time `json:"end_time" binding:"required"`

	// Set from the authenticated session, never from the request body.
	UserID int64 `json:"-"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=confirmed cancelled"`
}

// Slot is one free bookable step within a room's day.
type Slot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type DaySlots struct {
	RoomID      int64  `json:"room_id"`
	Date        string `json:"date"`
	StepMinutes int    `json:"step_minutes"`
	Free        []Slot `json:"free"`
}
