package reservation

import (
	"context"
	"time"

	"studyrez/internal/domain"
)

// ReservationRepository is the persistence seam for the admission check.
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) error
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetByInviteCode(ctx context.Context, code string) (*domain.Reservation, error)
	CountConflicts(ctx context.Context, roomID int64, start, end time.Time) (int64, error)
	ListForRoom(ctx context.Context, roomID int64, from, to time.Time) ([]domain.Reservation, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Reservation, error)
	ListAll(ctx context.Context) ([]domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
}

// RoomRepository resolves the room a candidate reservation targets.
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}
