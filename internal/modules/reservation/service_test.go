package reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"studyrez/internal/domain"
)

// Mock repositories

type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	args := m.Called(ctx, res)
	if res != nil && args.Error(0) == nil {
		res.ID = 999 // simulate DB insert
		res.CreatedAt = time.Now()
	}
	return args.Error(0)
}

func (m *MockReservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) GetByInviteCode(ctx context.Context, code string) (*domain.Reservation, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) CountConflicts(ctx context.Context, roomID int64, start, end time.Time) (int64, error) {
	args := m.Called(ctx, roomID, start, end)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReservationRepository) ListForRoom(ctx context.Context, roomID int64, from, to time.Time) ([]domain.Reservation, error) {
	args := m.Called(ctx, roomID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Reservation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) ListAll(ctx context.Context) ([]domain.Reservation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func roomWithCapacity(capacity int) *domain.Room {
	return &domain.Room{ID: 10, Number: 101, Capacity: &capacity, BuildingID: 1}
}

func TestService_CreateReservation_Success(t *testing.T) {
	mockReservations := new(MockReservationRepository)
	mockRooms := new(MockRoomRepository)

	start := time.Date(2026, 12, 31, 14, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	mockRooms.On("GetByID", mock.Anything, int64(10)).Return(roomWithCapacity(6), nil)
	mockReservations.On("CountConflicts", mock.Anything, int64(10), start, end).Return(int64(0), nil)
	mockReservations.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockReservations, mockRooms)

	res, err := service.CreateReservation(context.Background(), CreateReservationRequest{
		RoomID:    10,
		UserID:    7,
		Name:      "Study group",
		PartySize: 4,
		StartTime: start,
		EndTime:   end,
	})

	assert.NoError(t, err)
	assert.NotNil(t, res)
	assert.Equal(t, int64(999), res.ID)
	assert.Equal(t, domain.ReservationConfirmed, res.Status)
	assert.NotEmpty(t, res.InviteCode, "invite code is generated when absent")
}

func TestService_CreateReservation_InvalidRange(t *testing.T) {
	mockReservations := new(MockReservationRepository)
	mockRooms := new(MockRoomRepository)
	service := NewService(mockReservations, mockRooms)

	start := time.Date(2026, 12, 31, 14, 0, 0, 0, time.UTC)

	// Zero-length range.
	_, err := service.CreateReservation(context.Background(), CreateReservationRequest{
		RoomID: 10, UserID: 7, Name: "x", StartTime: start, EndTime: start,
	})
	assert.ErrorIs(t, err, ErrValidation)

	// Inverted range.
	_, err = service.CreateReservation(context.Background(), CreateReservationRequest{
		RoomID: 10, UserID: 7, Name: "x", StartTime: start, EndTime: start.Add(-time.Hour),
	})
	assert.ErrorIs(t, err, ErrValidation)

	mockReservations.AssertNotCalled(t, "CountConflicts", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_CreateReservation_Conflict(t *testing.T) {
	mockReservations := new(MockReservationRepository)
	mockRooms := new(MockRoomRepository)

	start := time.Date(2026, 12, 31, 10, 30, 0, 0, time.UTC)
	end := start.Add(15 * time.Minute)

	mockRooms.On("GetByID", mock.Anything, int64(10)).Return(roomWithCapacity(6), nil)
	// Candidate fully contained inside an existing reservation is a conflict.
	mockReservations.On("CountConflicts", mock.Anything, int64(10), start, end).Return(int64(1), nil)

	service := NewService(mockReservations, mockRooms)

	_, err := service.CreateReservation(context.Background(), CreateReservationRequest{
		RoomID: 10, UserID: 7, Name: "x", StartTime: start, EndTime: end,
	})
	assert.ErrorIs(t, err, ErrConflict)
	mockReservations.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_CreateReservation_CapacityExceeded(t *testing.T) {
	mockReservations := new(MockReservationRepository)
	mockRooms := new(MockRoomRepository)

	start := time.Date(2026, 12, 31, 10, 0, 0, 0, time.UTC)

	mockRooms.On("GetByID", mock.Anything, int64(10)).Return(roomWithCapacity(4), nil)

	service := NewService(mockReservations, mockRooms)

	_, err := service.CreateReservation(context.Background(), CreateReservationRequest{
		RoomID: 10, UserID: 7, Name: "x", PartySize: 5,
		StartTime: start, EndTime: start.Add(time.Hour),
	})
	assert.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestService_CreateReservation_RoomWithoutCapacity(t *testing.T) {
	mockReservations := new(MockReservationRepository)
	mockRooms := new(MockRoomRepository)

	start := time.Date(2026, 12, 31, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	// No capacity on record means no capacity check.
	mockRooms.On("GetByID", mock.Anything, int64(10)).Return(&domain.Room{ID: 10, Number: 101, BuildingID: 1}, nil)
	mockReservations.On("CountConflicts", mock.Anything, int64(10), start, end).Return(int64(0), nil)
	mockReservations.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockReservations, mockRooms)

	_, err := service.CreateReservation(context.Background(), CreateReservationRequest{
		RoomID: 10, UserID: 7, Name: "x", PartySize: 50,
		StartTime: start, EndTime: end,
	})
	assert.NoError(t, err)
}

func TestService_CreateReservation_RoomNotFound(t *testing.T) {
	mockReservations := new(MockReservationRepository)
	mockRooms := new(MockRoomRepository)

	start := time.Date(2026, 12, 31, 10, 0, 0, 0, time.UTC)

	mockRooms.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(mockReservations, mockRooms)

	_, err := service.CreateReservation(context.Background(), CreateReservationRequest{
		RoomID: 404, UserID: 7, Name: "x",
		StartTime: start, EndTime: start.Add(time.Hour),
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_CreateReservation_KeepsProvidedInviteCode(t *testing.T) {
	mockReservations := new(MockReservationRepository)
	mockRooms := new(MockRoomRepository)

	start := time.Date(2026, 12, 31, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	mockRooms.On("GetByID", mock.Anything, int64(10)).Return(roomWithCapacity(6), nil)
	mockReservations.On("CountConflicts", mock.Anything, int64(10), start, end).Return(int64(0), nil)
	mockReservations.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockReservations, mockRooms)

	res, err := service.CreateReservation(context.Background(), CreateReservationRequest{
		RoomID: 10, UserID: 7, Name: "x", InviteCode: "share-me",
		StartTime: start, EndTime: end,
	})
	assert.NoError(t, err)
	assert.Equal(t, "share-me", res.InviteCode)
}

func TestService_UpdateStatus_Cancel(t *testing.T) {
	mockReservations := new(MockReservationRepository)
	mockRooms := new(MockRoomRepository)

	existing := &domain.Reservation{ID: 5, UserID: 7, Status: domain.ReservationConfirmed}
	mockReservations.On("GetByID", mock.Anything, int64(5)).Return(existing, nil)
	mockReservations.On("UpdateStatus", mock.Anything, int64(5), domain.ReservationCancelled).Return(nil)

	service := NewService(mockReservations, mockRooms)

	err := service.UpdateStatus(context.Background(), 5, 7, "cancelled")
	assert.NoError(t, err)
	mockReservations.AssertCalled(t, "UpdateStatus", mock.Anything, int64(5), domain.ReservationCancelled)
}

func TestService_UpdateStatus_OneWay(t *testing.T) {
	mockReservations := new(MockReservationRepository)
	mockRooms := new(MockRoomRepository)

	cancelled := &domain.Reservation{ID: 5, UserID: 7, Status: domain.ReservationCancelled}
	mockReservations.On("GetByID", mock.Anything, int64(5)).Return(cancelled, nil)

	service := NewService(mockReservations, mockRooms)

	err := service.UpdateStatus(context.Background(), 5, 7, "confirmed")
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
	mockReservations.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_UpdateStatus_Forbidden(t *testing.T) {
	mockReservations := new(MockReservationRepository)
	mockRooms := new(MockRoomRepository)

	existing := &domain.Reservation{ID: 5, UserID: 7, Status: domain.ReservationConfirmed}
	mockReservations.On("GetByID", mock.Anything, int64(5)).Return(existing, nil)

	service := NewService(mockReservations, mockRooms)

	err := service.UpdateStatus(context.Background(), 5, 99, "cancelled")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_UpdateStatus_UnknownStatus(t *testing.T) {
	service := NewService(new(MockReservationRepository), new(MockRoomRepository))

	err := service.UpdateStatus(context.Background(), 5, 7, "pending")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_List_Filtered(t *testing.T) {
	mockReservations := new(MockReservationRepository)
	mockRooms := new(MockRoomRepository)

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	userID := int64(7)

	rows := []domain.Reservation{
		{ID: 1, UserID: 7, Status: domain.ReservationConfirmed, EndTime: now.Add(time.Hour)},
		{ID: 2, UserID: 7, Status: domain.ReservationConfirmed, EndTime: now.Add(-time.Hour)},
		{ID: 3, UserID: 7, Status: domain.ReservationCancelled, EndTime: now.Add(time.Hour)},
	}
	mockReservations.On("ListByUser", mock.Anything, userID).Return(rows, nil)

	service := NewService(mockReservations, mockRooms)

	current, err := service.List(context.Background(), &userID, "current", now)
	assert.NoError(t, err)
	assert.Len(t, current, 1)
	assert.Equal(t, int64(1), current[0].ID)

	history, err := service.List(context.Background(), &userID, "history", now)
	assert.NoError(t, err)
	assert.Len(t, history, 1)
	assert.Equal(t, int64(2), history[0].ID)

	cancelled, err := service.List(context.Background(), &userID, "cancelled", now)
	assert.NoError(t, err)
	assert.Len(t, cancelled, 1)
	assert.Equal(t, int64(3), cancelled[0].ID)

	_, err = service.List(context.Background(), &userID, "bogus", now)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_FreeSlots(t *testing.T) {
	mockReservations := new(MockReservationRepository)
	mockRooms := new(MockRoomRepository)

	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	busy := []domain.Reservation{
		{ID: 1, RoomID: 10, Status: domain.ReservationConfirmed,
			StartTime: day.Add(10 * time.Hour), EndTime: day.Add(11 * time.Hour)},
	}

	mockRooms.On("GetByID", mock.Anything, int64(10)).Return(roomWithCapacity(6), nil)
	mockReservations.On("ListForRoom", mock.Anything, int64(10), day, day.Add(24*time.Hour)).Return(busy, nil)

	service := NewService(mockReservations, mockRooms)

	slots, err := service.FreeSlots(context.Background(), 10, "2026-03-10", 60)
	assert.NoError(t, err)
	// 24 hourly slots minus the one covered by the booking.
	assert.Len(t, slots.Free, 23)
	for _, s := range slots.Free {
		assert.False(t, s.Start.Equal(day.Add(10*time.Hour)), "booked slot must be excluded")
	}

	_, err = service.FreeSlots(context.Background(), 10, "not-a-date", 60)
	assert.ErrorIs(t, err, ErrValidation)
}
