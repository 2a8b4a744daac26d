package ds

import "strconv"

// Observed ship status values. Certificate issuance only accepts StatusActif,
// while the statistics count the English vocabulary.
const (
	StatusActif       = "Actif"
	StatusActive      = "Active"
	StatusInactive    = "Inactive"
	StatusUnderRepair = "Under Repair"
)

const (
	MinIMO = 1000000
	MaxIMO = 9999999
)

// @Schema(description="Ship model keyed by its IMO number")
type Ship struct {
	IMO          int    `gorm:"primaryKey;autoIncrement:false;column:imo" json:"Imo"`
	Name         string `gorm:"column:nom_navire;size:100;not null" json:"Nom_Navire"`
	Status       string `gorm:"column:statut;size:50;not null" json:"Statut"`
	TypeNavireID int    `gorm:"column:type_navire_id;not null" json:"Type_Navire_Id"`
	PavillonID   int    `gorm:"column:pavillon_id;not null" json:"Pavillon_Id"`
	ArmateurID   int    `gorm:"column:armateur_id;not null" json:"Armateur_Id"`
	PortID       int    `gorm:"column:port_id;not null" json:"Port_Id"`
	PhotoURL     string `gorm:"column:photo_url;size:255" json:"Photo_Url"`

	ShipType *ShipType `gorm:"foreignKey:TypeNavireID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-" swaggerignore:"true"`
	Flag     *Flag     `gorm:"foreignKey:PavillonID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-" swaggerignore:"true"`
	Owner    *Owner    `gorm:"foreignKey:ArmateurID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-" swaggerignore:"true"`
	Port     *Port     `gorm:"foreignKey:PortID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-" swaggerignore:"true"`

	// Per-ship records go away with the ship.
	Certificates     []Certificate     `gorm:"foreignKey:IMO;references:IMO;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-" swaggerignore:"true"`
	Inspections      []Inspection      `gorm:"foreignKey:IMO;references:IMO;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-" swaggerignore:"true"`
	Mutations        []Mutation        `gorm:"foreignKey:IMO;references:IMO;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-" swaggerignore:"true"`
	Immatriculations []Immatriculation `gorm:"foreignKey:IMO;references:IMO;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-" swaggerignore:"true"`
	Radiations       []Radiation       `gorm:"foreignKey:IMO;references:IMO;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-" swaggerignore:"true"`
}

func (Ship) TableName() string {
	return "navires"
}

// ShipView is the joined projection served by the ship endpoints.
// Type/Flag/Owner/Port carry the referenced names, or the raw id when
// the referenced row is missing.
type ShipView struct {
	IMO          int    `json:"Imo"`
	Name         string `json:"Nom_Navire"`
	Type         string `json:"Type"`
	Flag         string `json:"Flag"`
	Owner        string `json:"Owner"`
	Port         string `json:"Port"`
	Status       string `json:"Statut"`
	TypeNavireID int    `json:"Type_Navire_Id"`
	PavillonID   int    `json:"Pavillon_Id"`
	ArmateurID   int    `json:"Armateur_Id"`
	PortID       int    `json:"Port_Id"`
	PhotoURL     string `json:"Photo_Url,omitempty"`
}

// View builds the projection from a ship with its belongs-to associations loaded.
func (s Ship) View() ShipView {
	v := ShipView{
		IMO:          s.IMO,
		Name:         s.Name,
		Type:         strconv.Itoa(s.TypeNavireID),
		Flag:         strconv.Itoa(s.PavillonID),
		Owner:        strconv.Itoa(s.ArmateurID),
		Port:         strconv.Itoa(s.PortID),
		Status:       s.Status,
		TypeNavireID: s.TypeNavireID,
		PavillonID:   s.PavillonID,
		ArmateurID:   s.ArmateurID,
		PortID:       s.PortID,
		PhotoURL:     s.PhotoURL,
	}
	if s.ShipType != nil {
		v.Type = s.ShipType.Name
	}
	if s.Flag != nil {
		v.Flag = s.Flag.Country
	}
	if s.Owner != nil {
		v.Owner = s.Owner.Name
	}
	if s.Port != nil {
		v.Port = s.Port.Name
	}
	return v
}

type ShipStats struct {
	TotalShips       int64 `json:"totalShips"`
	ActiveShips      int64 `json:"activeShips"`
	InactiveShips    int64 `json:"inactiveShips"`
	UnderRepairShips int64 `json:"underRepairShips"`
}
