package repository

import (
	"context"

	"gorm.io/gorm"

	"studyrez/internal/domain"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

type roomModel struct {
	ID         int64 `gorm:"column:id;primaryKey"`
	Number     int   `gorm:"column:number"`
	Capacity   *int  `gorm:"column:capacity"`
	BuildingID int64 `gorm:"column:building_id"`
}

func (roomModel) TableName() string { return "rooms" }

func toDomainRoom(m roomModel) *domain.Room {
	return &domain.Room{
		ID:         m.ID,
		Number:     m.Number,
		Capacity:   m.Capacity,
		BuildingID: m.BuildingID,
	}
}

func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	var m roomModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRoom(m), nil
}

func (r *RoomRepository) ListByBuilding(ctx context.Context, buildingID int64) ([]domain.Room, error) {
	var models []roomModel
	tx := r.db.WithContext(ctx).
		Where("building_id = ?", buildingID).
		Order("number ASC").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Room, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainRoom(m))
	}
	return out, nil
}
