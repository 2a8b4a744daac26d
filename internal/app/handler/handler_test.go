package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"maritime_registry/internal/app/ds"
	"maritime_registry/internal/app/metrics"
	"maritime_registry/internal/app/repository"
	"maritime_registry/internal/app/utils"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIMO   = 9074729
	testEmail = "fleet@armement-breton.test"
)

type testServer struct {
	router  *gin.Engine
	handler *Handler
	repo    *repository.Repository
	metrics *metrics.Metrics
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	return newTestServerWithMetrics(t, metrics.New())
}

func newTestServerWithMetrics(t *testing.T, m *metrics.Metrics) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	repo, err := repository.New(sqlite.Open(dsn), repository.Options{MaxOpenConns: 1})
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	require.NoError(t, repo.AutoMigrate(context.Background()))

	h := NewHandler(repo, m, utils.NewTokenIssuer("test-key", time.Hour), nil, nil)
	router := gin.New()
	h.SetupRoutes(router)
	return &testServer{router: router, handler: h, repo: repo, metrics: m}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

// seedShip registers the lookups, an owner and an "Actif" ship through the API.
func (s *testServer) seedShip(t *testing.T, status string) ds.Ship {
	t.Helper()
	rec := s.do(t, http.MethodPost, "/api/typenavire", gin.H{"Type": "Ro-Ro"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	shipType := decode[ds.ShipType](t, rec)

	rec = s.do(t, http.MethodPost, "/api/pavillon", gin.H{"Pays": "France"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	flag := decode[ds.Flag](t, rec)

	rec = s.do(t, http.MethodPost, "/api/port", gin.H{"Nom_Port": "Brest", "Pays": "France"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	port := decode[ds.Port](t, rec)

	rec = s.do(t, http.MethodPost, "/api/armateurs", gin.H{"Nom_Armateur": "Armement Breton", "Contact": testEmail})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	owner := decode[ds.Owner](t, rec)

	ship := ds.Ship{
		IMO:          testIMO,
		Name:         "Armorique",
		Status:       status,
		TypeNavireID: shipType.ID,
		PavillonID:   flag.ID,
		ArmateurID:   owner.ID,
		PortID:       port.ID,
	}
	rec = s.do(t, http.MethodPost, "/api/ships", ship)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return ship
}

func TestFlags_CreateIsNormalizedAndDeduplicated(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/pavillon", gin.H{"Pays": "France"})
	require.Equal(t, http.StatusCreated, rec.Code)
	first := decode[ds.Flag](t, rec)
	assert.Equal(t, "france", first.Country)

	rec = s.do(t, http.MethodPost, "/api/pavillons", gin.H{"Pays": "france "})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, first.ID, decode[ds.Flag](t, rec).ID)

	rec = s.do(t, http.MethodGet, "/api/pavillons", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, fmt.Sprintf(`[{"Pavillon_Id":%d,"Pays":"france"}]`, first.ID), rec.Body.String())

	rec = s.do(t, http.MethodGet, "/api/pavillon/byName/FRANCE", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/pavillon", gin.H{"Pays": "   "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/pavillon/999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/pavillon/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCertificateTypes(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/api/typescertif", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	types := decode[[]ds.CertificateTypeInfo](t, rec)
	require.Len(t, types, 8)
	assert.Equal(t, "Load Line Certificate", types[0].Name)
}

func TestCreateShip_UnknownOwnerIsRejected(t *testing.T) {
	s := newTestServer(t)
	ship := s.seedShip(t, ds.StatusActif)

	ship.IMO = 9234567
	ship.ArmateurID = 4242
	rec := s.do(t, http.MethodPost, "/api/ships", ship)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid Armateur_Id 4242.", decode[map[string]string](t, rec)["message"])

	rec = s.do(t, http.MethodGet, "/api/ships/9234567", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	ship.ArmateurID = 1
	ship.IMO = testIMO
	rec = s.do(t, http.MethodPost, "/api/ships", ship)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestShips_GetUpdateAndStats(t *testing.T) {
	s := newTestServer(t)
	ship := s.seedShip(t, ds.StatusActif)
	path := "/api/ships/" + strconv.Itoa(testIMO)

	rec := s.do(t, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	view := decode[ds.ShipView](t, rec)
	assert.Equal(t, "ro-ro", view.Type)
	assert.Equal(t, "france", view.Flag)
	assert.Equal(t, "Armement Breton", view.Owner)
	assert.Equal(t, "brest", view.Port)

	ship.Status = ds.StatusUnderRepair
	rec = s.do(t, http.MethodPut, "/api/ships/9999999", ship)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPut, path, ship)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ds.StatusUnderRepair, decode[ds.ShipView](t, rec).Status)

	rec = s.do(t, http.MethodGet, "/api/ships/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"totalShips":1,"activeShips":0,"inactiveShips":0,"underRepairShips":1}`, rec.Body.String())
}

func TestDeleteShip_WithCertificateIsBlocked(t *testing.T) {
	s := newTestServer(t)
	s.seedShip(t, ds.StatusActif)
	path := "/api/ships/" + strconv.Itoa(testIMO)

	rec := s.do(t, http.MethodPost, "/api/certificate/request", ds.CertificateRequest{IMO: testIMO, OwnerEmail: testEmail, TypeID: int(ds.CertISM)})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	certs := decode[[]ds.Certificate](t, s.do(t, http.MethodGet, "/api/certificats?imo="+strconv.Itoa(testIMO), nil))
	require.Len(t, certs, 1)
	rec = s.do(t, http.MethodDelete, "/api/certificats/"+strconv.Itoa(certs[0].ID), nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = s.do(t, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = s.do(t, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

type issuedCertificate struct {
	Message        string    `json:"message"`
	CertificateID  int       `json:"certificat_id"`
	Type           string    `json:"type_certif"`
	IssueDate      time.Time `json:"date_delivrance"`
	ExpirationDate time.Time `json:"date_expiration"`
	IMO            int       `json:"imo"`
}

func TestRequestCertificate(t *testing.T) {
	s := newTestServer(t)
	s.seedShip(t, ds.StatusActif)
	req := ds.CertificateRequest{IMO: testIMO, OwnerEmail: testEmail, TypeID: int(ds.CertMLC)}

	rec := s.do(t, http.MethodPost, "/api/certificate/request", req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	first := decode[issuedCertificate](t, rec)
	assert.Equal(t, "Certificat créé avec succès", first.Message)
	assert.Equal(t, "Maritime Labour Certificate (MLC)", first.Type)
	assert.Equal(t, testIMO, first.IMO)
	assert.True(t, ds.AddYears(first.IssueDate, 1).Equal(first.ExpirationDate))

	rec = s.do(t, http.MethodPost, "/api/certificate/request", req)
	require.Equal(t, http.StatusOK, rec.Code)
	second := decode[issuedCertificate](t, rec)
	assert.NotEqual(t, first.CertificateID, second.CertificateID)

	assert.Equal(t, 2.0, testutil.ToFloat64(s.metrics.CertificatesIssued.WithLabelValues(first.Type)))

	rec = s.do(t, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "maritime_certificates_issued_total")
}

func TestRequestCertificate_Rejections(t *testing.T) {
	s := newTestServer(t)
	s.seedShip(t, ds.StatusActive)

	cases := []struct {
		name    string
		req     ds.CertificateRequest
		code    int
		message string
	}{
		{"unknown ship", ds.CertificateRequest{IMO: 1234567, OwnerEmail: testEmail, TypeID: 1}, http.StatusNotFound, "Navire non trouvé."},
		{"email mismatch", ds.CertificateRequest{IMO: testIMO, OwnerEmail: "someone@else.test", TypeID: 1}, http.StatusBadRequest, "L'email ne correspond pas au propriétaire du navire."},
		{"unknown type", ds.CertificateRequest{IMO: testIMO, OwnerEmail: testEmail, TypeID: 9}, http.StatusBadRequest, "Type de certificat invalide."},
		{"status is not Actif", ds.CertificateRequest{IMO: testIMO, OwnerEmail: testEmail, TypeID: 1}, http.StatusBadRequest, "Le navire doit être actif pour demander un certificat."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := s.do(t, http.MethodPost, "/api/certificate/request", tc.req)
			require.Equal(t, tc.code, rec.Code)
			assert.Equal(t, tc.message, decode[map[string]string](t, rec)["message"])
		})
	}

	certs := decode[[]ds.Certificate](t, s.do(t, http.MethodGet, "/api/certificats", nil))
	assert.Empty(t, certs)
}

func TestOwners(t *testing.T) {
	s := newTestServer(t)
	ship := s.seedShip(t, ds.StatusActif)
	path := "/api/armateurs/" + strconv.Itoa(ship.ArmateurID)

	rec := s.do(t, http.MethodPost, "/api/armateurs", gin.H{"Nom_Armateur": "Armement Breton", "Contact": "x@y.test"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = s.do(t, http.MethodGet, path+"/ships", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, fmt.Sprintf(`[{"Imo":%d,"Nom_Navire":"Armorique","Type_Navire":"ro-ro","Statut":"Actif"}]`, testIMO), rec.Body.String())

	rec = s.do(t, http.MethodGet, "/api/armateurs/999/ships", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(t, http.MethodPut, path, gin.H{"Armateur_Id": 999, "Nom_Armateur": "Renamed", "Contact": testEmail})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPut, path, gin.H{"Armateur_Id": ship.ArmateurID, "Nom_Armateur": "Renamed", "Contact": testEmail})
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = s.do(t, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRecords(t *testing.T) {
	s := newTestServer(t)
	s.seedShip(t, ds.StatusActif)

	rec := s.do(t, http.MethodPost, "/api/inspections", gin.H{"Resultat": ds.ResultScheduled, "Imo": 1111111})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/inspections", gin.H{"Resultat": ds.ResultScheduled, "Imo": testIMO})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	inspection := decode[ds.Inspection](t, rec)
	assert.False(t, inspection.VisitDate.IsZero())

	rec = s.do(t, http.MethodPost, "/api/radiations", gin.H{"Motif_Radiation": "Sold abroad", "Statut_Radiation": "En cours", "Imo": testIMO})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodGet, "/api/inspections?imo=abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/inspections?imo="+strconv.Itoa(testIMO), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]ds.Inspection](t, rec), 1)

	inspection.Result = "Passed"
	rec = s.do(t, http.MethodPut, "/api/inspections/"+strconv.Itoa(inspection.ID), inspection)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Passed", decode[ds.Inspection](t, rec).Result)

	rec = s.do(t, http.MethodGet, "/api/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decode[ds.DashboardStats](t, rec)
	assert.Equal(t, int64(1), stats.TotalInspections)
	assert.Equal(t, int64(0), stats.ScheduledInspections)
	assert.Equal(t, int64(1), stats.TotalShips)

	rec = s.do(t, http.MethodDelete, "/api/inspections/"+strconv.Itoa(inspection.ID), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = s.do(t, http.MethodGet, "/api/inspections/"+strconv.Itoa(inspection.ID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUsersAndLogin(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/users", ds.UserInput{Username: "agent1", Password: "s3cret", Email: "agent1@registry.test", Role: ds.RoleAgent})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "mot_de_passe")
	user := decode[ds.User](t, rec)

	rec = s.do(t, http.MethodPost, "/api/users", ds.UserInput{Username: "agent2", Password: "x", Email: "agent2@registry.test", Role: "Captain"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = s.do(t, http.MethodPost, "/api/users", ds.UserInput{Username: "agent1", Password: "x", Email: "other@registry.test", Role: ds.RoleAgent})
	assert.Equal(t, http.StatusConflict, rec.Code)

	wrongPassword := s.do(t, http.MethodPost, "/api/auth/login", ds.LoginRequest{Username: "agent1", Password: "nope"})
	unknownUser := s.do(t, http.MethodPost, "/api/auth/login", ds.LoginRequest{Username: "ghost", Password: "nope"})
	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, wrongPassword.Code, unknownUser.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownUser.Body.String())

	rec = s.do(t, http.MethodPost, "/api/auth/login", gin.H{"nom_utilisateur": "agent1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/auth/login", ds.LoginRequest{Username: "agent1", Password: "s3cret"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	login := decode[ds.LoginResponse](t, rec)
	assert.True(t, login.Success)
	require.NotNil(t, login.User)
	assert.Equal(t, user.ID, login.User.ID)
	require.NotEmpty(t, login.Token)

	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.LoginAttempts.WithLabelValues(metrics.LoginSuccess)))
	assert.Equal(t, 2.0, testutil.ToFloat64(s.metrics.LoginAttempts.WithLabelValues(metrics.LoginFailure)))

	rec = s.do(t, http.MethodGet, "/api/auth/me?utilisateur_id="+strconv.Itoa(user.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"utilisateur_id":%d,"nom_utilisateur":"agent1","role":"Agent","email":"agent1@registry.test"}`, user.ID), rec.Body.String())
	rec = s.do(t, http.MethodGet, "/api/auth/me", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = s.do(t, http.MethodGet, "/api/auth/me?utilisateur_id=999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Utilisateur introuvable"}`, rec.Body.String())

	rec = s.do(t, http.MethodGet, "/api/auth/session", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	rec = s.do(t, http.MethodGet, "/api/auth/session", nil, "Authorization", "Bearer "+login.Token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "agent1", decode[ds.LoginResponse](t, rec).User.Username)

	rec = s.do(t, http.MethodPut, "/api/users/"+strconv.Itoa(user.ID), ds.UserInput{Username: "agent1", Email: "agent1@registry.test", Role: ds.RoleAdmin})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, ds.RoleAdmin, decode[ds.User](t, rec).Role)

	rec = s.do(t, http.MethodPost, "/api/auth/login", ds.LoginRequest{Username: "agent1", Password: "s3cret"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodDelete, "/api/users/"+strconv.Itoa(user.ID), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = s.do(t, http.MethodGet, "/api/users/"+strconv.Itoa(user.ID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNilMetricsAreOptional(t *testing.T) {
	s := newTestServerWithMetrics(t, nil)
	s.seedShip(t, ds.StatusActif)

	rec := s.do(t, http.MethodPost, "/api/certificate/request", ds.CertificateRequest{IMO: testIMO, OwnerEmail: testEmail, TypeID: int(ds.CertISM)})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodPost, "/api/users", ds.UserInput{Username: "agent2", Password: "s3cret", Email: "agent2@registry.test", Role: ds.RoleAgent})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	rec = s.do(t, http.MethodPost, "/api/auth/login", ds.LoginRequest{Username: "agent2", Password: "nope"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	rec = s.do(t, http.MethodPost, "/api/auth/login", ds.LoginRequest{Username: "agent2", Password: "s3cret"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

type fakeImageStore struct {
	uploaded []string
	removed  []string
}

func (f *fakeImageStore) UploadImage(_ context.Context, filename string, r io.Reader, _ int64, _ string) (string, error) {
	if _, err := io.ReadAll(r); err != nil {
		return "", err
	}
	name := utils.ObjectName(filename)
	f.uploaded = append(f.uploaded, name)
	return name, nil
}

func (f *fakeImageStore) RemoveImage(_ context.Context, objectName string) error {
	f.removed = append(f.removed, objectName)
	return nil
}

func uploadImage(t *testing.T, s *testServer, imo int, field string) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	part, err := form.CreateFormFile(field, "bow.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("not really a jpeg"))
	require.NoError(t, err)
	require.NoError(t, form.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/ships/"+strconv.Itoa(imo)+"/image", &body)
	req.Header.Set("Content-Type", form.FormDataContentType())
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func TestShipImage(t *testing.T) {
	s := newTestServer(t)
	s.seedShip(t, ds.StatusActif)

	rec := uploadImage(t, s, testIMO, "file")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	store := &fakeImageStore{}
	s.handler.ShipAPIHandler.Images = store

	rec = uploadImage(t, s, 1234567, "file")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = uploadImage(t, s, testIMO, "file")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	rec = uploadImage(t, s, testIMO, "image")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	require.Len(t, store.uploaded, 2)
	assert.Equal(t, []string{store.uploaded[0]}, store.removed)

	view := decode[ds.ShipView](t, s.do(t, http.MethodGet, "/api/ships/"+strconv.Itoa(testIMO), nil))
	assert.Equal(t, store.uploaded[1], view.PhotoURL)
}

func TestHealthAndInternalErrors(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","database":"up"}`, rec.Body.String())

	require.NoError(t, s.repo.Close())

	rec = s.do(t, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/ships", nil)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Internal server error","code":"internal_error"}`, rec.Body.String())
}
