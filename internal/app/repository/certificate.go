package repository

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"maritime_registry/internal/app/ds"

	"gorm.io/gorm"
)

// RequestCertificate runs the issuance workflow: the ship must exist, the
// requester email must equal the owner contact, the type id must be one of
// the statutory kinds and the ship status must be exactly "Actif". Every
// successful call inserts a new certificate valid for one calendar year.
func (r *Repository) RequestCertificate(ctx context.Context, req ds.CertificateRequest) (ds.Certificate, error) {
	ship := ds.Ship{}
	err := r.db.WithContext(ctx).Preload("Owner").Where("imo = ?", req.IMO).First(&ship).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ds.Certificate{}, newError(ErrNotFound, "Navire non trouvé.")
	}
	if err != nil {
		return ds.Certificate{}, err
	}

	if ship.Owner == nil || ship.Owner.Contact != req.OwnerEmail {
		return ds.Certificate{}, newError(ErrOwnerMismatch, "L'email ne correspond pas au propriétaire du navire.")
	}

	typeName, ok := ds.CertificateType(req.TypeID).Name()
	if !ok {
		return ds.Certificate{}, newError(ErrUnknownCertificateType, "Type de certificat invalide.")
	}

	if ship.Status != ds.StatusActif {
		return ds.Certificate{}, newError(ErrShipNotActive, "Le navire doit être actif pour demander un certificat.")
	}

	issued := r.now()
	certificate := ds.Certificate{
		Type:       typeName,
		IssueDate:  issued,
		ExpiryDate: ds.AddYears(issued, 1),
		IMO:        ship.IMO,
	}
	if err := r.db.WithContext(ctx).Create(&certificate).Error; err != nil {
		return ds.Certificate{}, translate(err)
	}
	return certificate, nil
}

func (r *Repository) GetCertificates(ctx context.Context, imo int) ([]ds.Certificate, error) {
	return listByShip[ds.Certificate](ctx, r.db, imo)
}

func (r *Repository) GetCertificate(ctx context.Context, id int) (ds.Certificate, error) {
	return first[ds.Certificate](ctx, r.db, "Certificate", "certificat_id = ?", id)
}

func (r *Repository) certificateFromInput(in ds.CertificateInput) (ds.Certificate, error) {
	typeName := strings.TrimSpace(in.Type)
	if in.TypeID != 0 {
		name, ok := ds.CertificateType(in.TypeID).Name()
		if !ok {
			return ds.Certificate{}, newError(ErrUnknownCertificateType, "Type de certificat invalide.")
		}
		typeName = name
	}
	if typeName == "" || utf8.RuneCountInString(typeName) > 100 {
		return ds.Certificate{}, newError(ErrValidation, "Type_Certif is required and must be at most 100 characters.")
	}

	issued := r.now()
	if in.IssueDate != nil {
		issued = *in.IssueDate
	}
	expiry := ds.AddYears(issued, 1)
	if in.ExpiryDate != nil {
		expiry = *in.ExpiryDate
	}
	if expiry.Before(issued) {
		return ds.Certificate{}, newError(ErrValidation, "Date_Expiration must not precede Date_Delivrance.")
	}

	return ds.Certificate{
		ID:         in.ID,
		Type:       typeName,
		IssueDate:  issued,
		ExpiryDate: expiry,
		IMO:        in.IMO,
	}, nil
}

func (r *Repository) CreateCertificate(ctx context.Context, in ds.CertificateInput) (ds.Certificate, error) {
	in.ID = 0
	certificate, err := r.certificateFromInput(in)
	if err != nil {
		return ds.Certificate{}, err
	}
	if err := createRecord(ctx, r.db, &certificate, certificate.IMO); err != nil {
		return ds.Certificate{}, err
	}
	return certificate, nil
}

func (r *Repository) UpdateCertificate(ctx context.Context, id int, in ds.CertificateInput) (ds.Certificate, error) {
	if in.ID != 0 && in.ID != id {
		return ds.Certificate{}, newError(ErrValidation, "ID mismatch.")
	}
	in.ID = id
	// An update without an issue date keeps the stored dates; a new issue
	// date without an expiry runs one year from it.
	if in.IssueDate == nil {
		stored, err := r.GetCertificate(ctx, id)
		if err != nil {
			return ds.Certificate{}, err
		}
		in.IssueDate = &stored.IssueDate
		if in.ExpiryDate == nil {
			in.ExpiryDate = &stored.ExpiryDate
		}
	}
	certificate, err := r.certificateFromInput(in)
	if err != nil {
		return ds.Certificate{}, err
	}
	if err := updateRecord(ctx, r.db, &certificate, "Certificate", "certificat_id", id, certificate.IMO); err != nil {
		return ds.Certificate{}, err
	}
	return certificate, nil
}

func (r *Repository) DeleteCertificate(ctx context.Context, id int) error {
	return deleteRecord[ds.Certificate](ctx, r.db, "Certificate", "certificat_id", id)
}
