package ds

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddYears(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"plain", time.Date(2023, 5, 17, 10, 0, 0, 0, time.UTC), time.Date(2024, 5, 17, 10, 0, 0, 0, time.UTC)},
		{"into leap year", time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC), time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC)},
		{"leap day clamps", time.Date(2024, 2, 29, 23, 59, 0, 0, time.UTC), time.Date(2025, 2, 28, 23, 59, 0, 0, time.UTC)},
		{"year end", time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, AddYears(tc.in, 1))
		})
	}

	assert.Equal(t, time.Date(2028, 2, 29, 0, 0, 0, 0, time.UTC), AddYears(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), 4))
}

func TestCertificateTypes(t *testing.T) {
	types := CertificateTypes()
	require.Len(t, types, 8)
	assert.Equal(t, CertificateTypeInfo{ID: 1, Name: "Load Line Certificate"}, types[0])
	assert.Equal(t, CertificateTypeInfo{ID: 8, Name: "Maritime Labour Certificate (MLC)"}, types[7])

	name, ok := CertISM.Name()
	assert.True(t, ok)
	assert.Equal(t, "Safety Management Certificate (ISM Code)", name)

	_, ok = CertificateType(0).Name()
	assert.False(t, ok)
	_, ok = CertificateType(9).Name()
	assert.False(t, ok)
}

func TestShipView_FallsBackToRawIDs(t *testing.T) {
	ship := Ship{
		IMO: 9321483, Name: "Belle Ile", Status: StatusActif,
		TypeNavireID: 3, PavillonID: 4, ArmateurID: 5, PortID: 6,
		ShipType: &ShipType{ID: 3, Name: "ro-ro"},
		Owner:    &Owner{ID: 5, Name: "Ocean Line"},
	}

	view := ship.View()
	assert.Equal(t, "ro-ro", view.Type)
	assert.Equal(t, "4", view.Flag)
	assert.Equal(t, "Ocean Line", view.Owner)
	assert.Equal(t, "6", view.Port)
	assert.Equal(t, 6, view.PortID)
}

func TestValidRole(t *testing.T) {
	for _, role := range []string{RoleAdmin, RoleAgent, RoleArmateur} {
		assert.True(t, ValidRole(role))
	}
	assert.False(t, ValidRole("admin"))
	assert.False(t, ValidRole(""))
}

func TestHashPassword(t *testing.T) {
	user := User{Password: "pw"}
	require.NoError(t, user.BeforeCreate(nil))
	assert.NotEqual(t, "pw", user.Password)
	assert.Contains(t, user.Password, "$2a$")
}
