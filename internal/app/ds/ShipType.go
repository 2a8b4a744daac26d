package ds

// @Schema(description="Ship type (type_navire)")
type ShipType struct {
	ID   int    `gorm:"primaryKey;column:type_navire_id" json:"Type_Navire_Id"`
	Name string `gorm:"column:type;size:100;not null;uniqueIndex" json:"Type"`
}

func (ShipType) TableName() string {
	return "type_navire"
}
