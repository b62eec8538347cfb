package catalog

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"studyrez/internal/domain"
)

var ErrNotFound = errors.New("not found")

type BuildingRepository interface {
	List(ctx context.Context) ([]domain.Building, error)
	GetByID(ctx context.Context, id int64) (*domain.Building, error)
}

type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	ListByBuilding(ctx context.Context, buildingID int64) ([]domain.Room, error)
}

type Service struct {
	buildings BuildingRepository
	rooms     RoomRepository
}

func NewService(buildings BuildingRepository, rooms RoomRepository) *Service {
	return &Service{buildings: buildings, rooms: rooms}
}

func (s *Service) ListBuildings(ctx context.Context) ([]domain.Building, error) {
	return s.buildings.List(ctx)
}

func (s *Service) ListRooms(ctx context.Context, buildingID int64) ([]domain.Room, error) {
	if _, err := s.buildings.GetByID(ctx, buildingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.rooms.ListByBuilding(ctx, buildingID)
}

func (s *Service) GetRoom(ctx context.Context, roomID int64) (*domain.Room, error) {
	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return room, nil
}
