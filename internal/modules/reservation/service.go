package reservation

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"studyrez/internal/domain"
	"studyrez/internal/pkg/validator"
	"studyrez/internal/timerange"
)

type Service struct {
	reservations ReservationRepository
	rooms        RoomRepository
}

func NewService(reservations ReservationRepository, rooms RoomRepository) *Service {
	return &Service{
		reservations: reservations,
		rooms:        rooms,
	}
}

// CreateReservation is the admission check: a candidate is persisted only if
// its [start, end) range is valid and no confirmed reservation for the room
// intersects it. The repository pre-check produces the friendly 409; the
// PostgreSQL exclusion constraint is the actual guarantee, so a concurrent
// insert that slips past the pre-check still comes back as ErrConflict.
func (s *Service) CreateReservation(ctx context.Context, req CreateReservationRequest) (*domain.Reservation, error) {
	if !timerange.IsValidRange(req.StartTime, req.EndTime) {
		return nil, ErrValidation
	}

	room, err := s.rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.PartySize > 0 && room.Capacity != nil && !timerange.IsCapacityOk(*room.Capacity, req.PartySize) {
		return nil, ErrCapacityExceeded
	}

	conflicts, err := s.reservations.CountConflicts(ctx, req.RoomID, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}
	if conflicts > 0 {
		return nil, ErrConflict
	}

	inviteCode := req.InviteCode
	if inviteCode == "" {
		inviteCode = uuid.NewString()
	}

	res := &domain.Reservation{
		UserID:      req.UserID,
		RoomID:      req.RoomID,
		Name:        req.Name,
		Description: req.Description,
		InviteCode:  inviteCode,
		Status:      domain.ReservationConfirmed,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}

	if errs := validator.Validate(res); errs != nil {
		return nil, ErrValidation
	}

	if err := s.reservations.Create(ctx, res); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23P01": // exclusion_violation: reservations_no_overlap
				return nil, ErrConflict
			case "23505": // unique_violation: invite_code
				return nil, ErrInviteCodeTaken
			}
		}
		return nil, err
	}

	return res, nil
}

// UpdateStatus moves a reservation between the two known states. The only
// real transition is confirmed -> cancelled; repeating the current status is
// a no-op, and a cancelled reservation never becomes confirmed again.
func (s *Service) UpdateStatus(ctx context.Context, id, actorUserID int64, statusStr string) error {
	status, ok := domain.ParseReservationStatus(statusStr)
	if !ok {
		return ErrValidation
	}

	res, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if res.UserID != actorUserID {
		return ErrForbidden
	}

	if res.Status == status {
		return nil
	}
	if res.Status == domain.ReservationCancelled {
		return ErrInvalidStatusTransition
	}

	return s.reservations.UpdateStatus(ctx, id, status)
}

// List returns all reservations, or the user's reservations joined with room
// and building when userID is set, optionally narrowed by a status filter tag.
func (s *Service) List(ctx context.Context, userID *int64, filterTag string, now time.Time) ([]domain.Reservation, error) {
	var (
		rows []domain.Reservation
		err  error
	)

	if userID != nil {
		rows, err = s.reservations.ListByUser(ctx, *userID)
	} else {
		rows, err = s.reservations.ListAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	if filterTag == "" {
		return rows, nil
	}

	matches, ok := FilterFor(StatusFilter(filterTag))
	if !ok {
		return nil, ErrValidation
	}

	out := make([]domain.Reservation, 0, len(rows))
	for _, r := range rows {
		if matches(r, now) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *Service) GetByInviteCode(ctx context.Context, code string) (*domain.Reservation, error) {
	res, err := s.reservations.GetByInviteCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return res, nil
}

// FreeSlots discretizes a room's day into stepMinutes-long slots and keeps
// those no confirmed reservation intersects.
func (s *Service) FreeSlots(ctx context.Context, roomID int64, dateStr string, stepMinutes int) (*DaySlots, error) {
	day, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, ErrValidation
	}
	if stepMinutes <= 0 {
		return nil, ErrValidation
	}

	if _, err := s.rooms.GetByID(ctx, roomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)

	busy, err := s.reservations.ListForRoom(ctx, roomID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	step := time.Duration(stepMinutes) * time.Minute
	free := make([]Slot, 0)
	for _, start := range timerange.SlotsBetween(dayStart, dayEnd, stepMinutes) {
		end := start.Add(step)
		if end.After(dayEnd) {
			break
		}

		blocked := false
		for _, b := range busy {
			if timerange.Overlaps(start, end, b.StartTime, b.EndTime) {
				blocked = true
				break
			}
		}
		if !blocked {
			free = append(free, Slot{Start: start, End: end})
		}
	}

	return &DaySlots{
		RoomID:      roomID,
		Date:        dateStr,
		StepMinutes: stepMinutes,
		Free:        free,
	}, nil
}
