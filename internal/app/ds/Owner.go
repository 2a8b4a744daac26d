package ds

// @Schema(description="Ship owner / operator (armateur)")
type Owner struct {
	ID      int    `gorm:"primaryKey;column:armateur_id" json:"Armateur_Id"`
	Name    string `gorm:"column:nom_armateur;size:100;not null;uniqueIndex" json:"Nom_Armateur"`
	Contact string `gorm:"column:contact;size:255;not null" json:"Contact"`
}

func (Owner) TableName() string {
	return "armateur"
}

// OwnerShip is the short ship projection returned by GET /api/armateurs/:id/ships
type OwnerShip struct {
	IMO      int    `json:"Imo"`
	Name     string `json:"Nom_Navire"`
	ShipType string `json:"Type_Navire"`
	Status   string `json:"Statut"`
}
