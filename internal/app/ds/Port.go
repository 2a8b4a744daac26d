package ds

// @Schema(description="Port of registry, unique on name and country")
type Port struct {
	ID      int    `gorm:"primaryKey;column:port_id" json:"Port_Id"`
	Name    string `gorm:"column:nom_port;size:100;not null;uniqueIndex:idx_port_nom_pays" json:"Nom_Port"`
	Country string `gorm:"column:pays;size:100;not null;uniqueIndex:idx_port_nom_pays" json:"Pays"`
}

func (Port) TableName() string {
	return "port"
}
