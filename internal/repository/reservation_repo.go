package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"studyrez/internal/domain"
)

type ReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

type reservationModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	UserID      int64     `gorm:"column:user_id"`
	RoomID      int64     `gorm:"column:room_id"`
	Name        string    `gorm:"column:name"`
	Description *string   `gorm:"column:description"`
	InviteCode  string    `gorm:"column:invite_code"`
	Status      string    `gorm:"column:status"`
	StartTime   time.Time `gorm:"column:start_time"`
	EndTime     time.Time `gorm:"column:end_time"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (reservationModel) TableName() string { return "reservations" }

func toDomainReservation(m reservationModel) *domain.Reservation {
	var description string
	if m.Description != nil {
		description = *m.Description
	}

	return &domain.Reservation{
		ID:          m.ID,
		UserID:      m.UserID,
		RoomID:      m.RoomID,
		Name:        m.Name,
		Description: description,
		InviteCode:  m.InviteCode,
		Status:      domain.ReservationStatus(m.Status),
		StartTime:   m.StartTime,
		EndTime:     m.EndTime,
		CreatedAt:   m.CreatedAt,
	}
}

func toReservationModel(r *domain.Reservation) reservationModel {
	var description *string
	if r.Description != "" {
		v := r.Description
		description = &v
	}

	return reservationModel{
		ID:          r.ID,
		UserID:      r.UserID,
		RoomID:      r.RoomID,
		Name:        r.Name,
		Description: description,
		InviteCode:  r.InviteCode,
		Status:      string(r.Status),
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		CreatedAt:   r.CreatedAt,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	m := toReservationModel(res)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*res = *toDomainReservation(m)
	return nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	var m reservationModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainReservation(m), nil
}

func (r *ReservationRepository) GetByInviteCode(ctx context.Context, code string) (*domain.Reservation, error) {
	var m reservationModel
	tx := r.db.WithContext(ctx).Where("invite_code = ?", code).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainReservation(m), nil
}

// CountConflicts counts confirmed reservations for the room whose [start, end)
// range intersects the candidate's. The predicate is the half-open interval
// test: existing.start < candidate.end AND candidate.start < existing.end,
// so a candidate fully contained inside an existing reservation conflicts and
// touching endpoints do not. Cancelled rows never block a slot.
func (r *ReservationRepository) CountConflicts(ctx context.Context, roomID int64, start, end time.Time) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&reservationModel{}).
		Where("room_id = ?", roomID).
		Where("status = ?", string(domain.ReservationConfirmed)).
		Where("start_time < ? AND ? < end_time", end, start).
		Count(&cnt)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return cnt, nil
}

// ListForRoom returns confirmed reservations for the room that intersect the
// [from, to) window, ordered by start time. Same predicate as CountConflicts.
func (r *ReservationRepository) ListForRoom(ctx context.Context, roomID int64, from, to time.Time) ([]domain.Reservation, error) {
	var models []reservationModel
	tx := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Where("status = ?", string(domain.ReservationConfirmed)).
		Where("start_time < ? AND ? < end_time", to, from).
		Order("start_time ASC").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Reservation, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainReservation(m))
	}
	return out, nil
}

// ListByUser returns the user's reservations joined with their room and
// building, newest first.
func (r *ReservationRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Reservation, error) {
	var rows []domain.Reservation
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Room").
		Preload("Room.Building").
		Order("start_time DESC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

func (r *ReservationRepository) ListAll(ctx context.Context) ([]domain.Reservation, error) {
	var models []reservationModel
	tx := r.db.WithContext(ctx).Order("start_time DESC").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Reservation, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainReservation(m))
	}
	return out, nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	tx := r.db.WithContext(ctx).
		Model(&reservationModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
