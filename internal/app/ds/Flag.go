package ds

// @Schema(description="Flag state (pavillon) a ship is registered under")
type Flag struct {
	ID      int    `gorm:"primaryKey;column:pavillon_id" json:"Pavillon_Id"`
	Country string `gorm:"column:pays;size:100;not null;uniqueIndex" json:"Pays"`
}

func (Flag) TableName() string {
	return "pavillon"
}
