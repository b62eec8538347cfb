package domain

type Building struct {
	ID    int64  `json:"id"`
	Name  string `json:"name" validate:"required"`
	Image string `json:"image,omitempty"`

	// Relations
	Rooms []Room `json:"rooms,omitempty"`
}

type Room struct {
	ID         int64 `json:"id"`
	Number     int   `json:"number" validate:"required"`
	Capacity   *int  `json:"capacity,omitempty"`
	BuildingID int64 `json:"building_id"`

	// Relations
	Building *Building `json:"building,omitempty" gorm:"foreignKey:BuildingID;constraint:OnDelete:CASCADE"`
}
