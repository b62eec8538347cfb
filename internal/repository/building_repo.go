package repository

import (
	"context"

	"gorm.io/gorm"

	"studyrez/internal/domain"
)

type BuildingRepository struct {
	db *gorm.DB
}

func NewBuildingRepository(db *gorm.DB) *BuildingRepository {
	return &BuildingRepository{db: db}
}

type buildingModel struct {
	ID    int64  `gorm:"column:id;primaryKey"`
	Name  string `gorm:"column:name"`
	Image string `gorm:"column:image"`
}

func (buildingModel) TableName() string { return "buildings" }

func toDomainBuilding(m buildingModel) *domain.Building {
	return &domain.Building{
		ID:    m.ID,
		Name:  m.Name,
		Image: m.Image,
	}
}

func (r *BuildingRepository) GetByID(ctx context.Context, id int64) (*domain.Building, error) {
	var m buildingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBuilding(m), nil
}

func (r *BuildingRepository) List(ctx context.Context) ([]domain.Building, error) {
	var models []buildingModel
	tx := r.db.WithContext(ctx).Order("name ASC").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Building, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainBuilding(m))
	}
	return out, nil
}
