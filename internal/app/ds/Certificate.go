package ds

import "time"

// @Schema(description="Statutory certificate issued to a ship")
type Certificate struct {
	ID         int       `gorm:"primaryKey;column:certificat_id" json:"Certificat_Id"`
	Type       string    `gorm:"column:type_certif;size:100;not null" json:"Type_Certif"`
	IssueDate  time.Time `gorm:"column:date_delivrance;not null" json:"Date_Delivrance"`
	ExpiryDate time.Time `gorm:"column:date_expiration;not null" json:"Date_Expiration"`
	IMO        int       `gorm:"column:imo;not null;index" json:"Imo"`
}

func (Certificate) TableName() string {
	return "certificat"
}

// CertificateType enumerates the eight statutory certificate kinds a ship can request.
type CertificateType int

const (
	CertLoadLine CertificateType = iota + 1
	CertPassengerShipSafety
	CertSafetyEquipment
	CertMarpol
	CertSafetyRadio
	CertTonnage
	CertISM
	CertMLC
)

var certificateTypeNames = map[CertificateType]string{
	CertLoadLine:            "Load Line Certificate",
	CertPassengerShipSafety: "Passenger Ship Safety Certificate",
	CertSafetyEquipment:     "Safety Equipment Certificate",
	CertMarpol:              "International Pollution Prevention Certificate (MARPOL)",
	CertSafetyRadio:         "Safety Radio Certificate",
	CertTonnage:             "International Tonnage Certificate",
	CertISM:                 "Safety Management Certificate (ISM Code)",
	CertMLC:                 "Maritime Labour Certificate (MLC)",
}

// Name returns the certificate name and false for ids outside the table.
func (t CertificateType) Name() (string, bool) {
	name, ok := certificateTypeNames[t]
	return name, ok
}

type CertificateTypeInfo struct {
	ID   int    `json:"Type_Certif_Id"`
	Name string `json:"Nom"`
}

// CertificateTypes lists the enumeration in id order.
func CertificateTypes() []CertificateTypeInfo {
	types := make([]CertificateTypeInfo, 0, len(certificateTypeNames))
	for t := CertLoadLine; t <= CertMLC; t++ {
		types = append(types, CertificateTypeInfo{ID: int(t), Name: certificateTypeNames[t]})
	}
	return types
}

// CertificateRequest is the body of POST /api/certificate/request
type CertificateRequest struct {
	IMO        int    `json:"Imo"`
	OwnerEmail string `json:"OwnerEmail"`
	TypeID     int    `json:"Type_Certif_Id"`
}

// AddYears adds n calendar years, clamping Feb 29 to Feb 28 when the target
// year is not a leap year.
func AddYears(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	target := y + n
	if m == time.February && d == 29 && !isLeap(target) {
		d = 28
	}
	return time.Date(target, m, d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func isLeap(y int) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

// CertificateInput is the manual create/update payload of /api/certificats.
// Type_Certif_Id, when set, takes precedence over Type_Certif.
type CertificateInput struct {
	ID         int        `json:"Certificat_Id"`
	Type       string     `json:"Type_Certif"`
	TypeID     int        `json:"Type_Certif_Id"`
	IssueDate  *time.Time `json:"Date_Delivrance"`
	ExpiryDate *time.Time `json:"Date_Expiration"`
	IMO        int        `json:"Imo"`
}
