package domain

import "time"

type ReservationStatus string

const (
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
)

// ParseReservationStatus rejects anything outside the two known states.
func ParseReservationStatus(s string) (ReservationStatus, bool) {
	switch ReservationStatus(s) {
	case ReservationConfirmed, ReservationCancelled:
		return ReservationStatus(s), true
	}
	return "", false
}

type Reservation struct {
	ID          int64             `json:"id"`
	UserID      int64             `json:"user_id" validate:"required"`
	RoomID      int64             `json:"room_id" validate:"required"`
	Name        string            `json:"name" validate:"required"`
	Description string            `json:"description,omitempty"`
	InviteCode  string            `json:"invite_code" gorm:"uniqueIndex"`
	Status      ReservationStatus `json:"status"`
	StartTime   time.Time         `json:"start_time" validate:"required"`
	EndTime     time.Time         `json:"end_time" validate:"required"`
	CreatedAt   time.Time         `json:"created_at"`

	// Relations; removing a user or room cascade-deletes its reservations.
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Room *Room `json:"room,omitempty" gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE"`
}
