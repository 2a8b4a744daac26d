package ds

import "time"

// @Schema(description="Ownership change request for a ship")
type Mutation struct {
	ID          int       `gorm:"primaryKey;column:mutation_id" json:"Mutation_Id"`
	RequestDate time.Time `gorm:"column:date_demande;not null" json:"Date_Demande"`
	Status      string    `gorm:"column:statut_mutation;size:50;not null" json:"Statut_Mutation"`
	IMO         int       `gorm:"column:imo;not null;index" json:"Imo"`
}

func (Mutation) TableName() string {
	return "mutation"
}
