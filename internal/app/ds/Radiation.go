package ds

import "time"

// @Schema(description="Deregistration request for a ship")
type Radiation struct {
	ID            int        `gorm:"primaryKey;column:radiation_id" json:"Radiation_Id"`
	Reason        string     `gorm:"column:motif_radiation;size:255;not null" json:"Motif_Radiation"`
	RequestDate   time.Time  `gorm:"column:date_demande;not null" json:"Date_Demande"`
	Status        string     `gorm:"column:statut_radiation;size:50;not null" json:"Statut_Radiation"`
	EffectiveDate *time.Time `gorm:"column:date_effective" json:"Date_Effective"`
	IMO           int        `gorm:"column:imo;not null;index" json:"Imo"`
}

func (Radiation) TableName() string {
	return "radiation"
}
