package ds

import "time"

// ResultScheduled marks an inspection that has been planned but not carried out.
const ResultScheduled = "Scheduled"

// @Schema(description="Inspection visit recorded against a ship")
type Inspection struct {
	ID           int       `gorm:"primaryKey;column:inspection_id" json:"Inspection_Id"`
	VisitDate    time.Time `gorm:"column:date_visite;not null" json:"Date_Visite"`
	Result       string    `gorm:"column:resultat;size:20;not null" json:"Resultat"`
	Observations *string   `gorm:"column:observations" json:"Observations"`
	IMO          int       `gorm:"column:imo;not null;index" json:"Imo"`
}

func (Inspection) TableName() string {
	return "inspection"
}
