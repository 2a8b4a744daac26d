package ds

import "time"

// @Schema(description="Registration request for a ship")
type Immatriculation struct {
	ID          int       `gorm:"primaryKey;column:immatriculation_id" json:"Immatriculation_Id"`
	RequestDate time.Time `gorm:"column:date_demande;not null" json:"Date_Demande"`
	Status      string    `gorm:"column:statut_demande;size:50;not null" json:"Statut_Demande"`
	IMO         int       `gorm:"column:imo;not null;index" json:"Imo"`
}

func (Immatriculation) TableName() string {
	return "immatriculation"
}
