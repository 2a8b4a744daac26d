package handler

import (
	"maritime_registry/internal/app/handler/api"
	"maritime_registry/internal/app/handler/middleware"
	"maritime_registry/internal/app/metrics"
	"maritime_registry/internal/app/repository"
	"maritime_registry/internal/app/utils"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Handler struct {
	Repository *repository.Repository
	Metrics    *metrics.Metrics
	Tokens     *utils.TokenIssuer

	LookupAPIHandler          *api.LookupHandler
	OwnerAPIHandler           *api.OwnerHandler
	ShipAPIHandler            *api.ShipHandler
	CertificateAPIHandler     *api.CertificateHandler
	InspectionAPIHandler      *api.InspectionHandler
	MutationAPIHandler        *api.MutationHandler
	ImmatriculationAPIHandler *api.ImmatriculationHandler
	RadiationAPIHandler       *api.RadiationHandler
	UserAPIHandler            *api.UserHandler
	AuthAPIHandler            *api.AuthHandler
	StatsAPIHandler           *api.StatsHandler

	sessions middleware.SessionReader
}

// NewHandler wires the API handlers. sessions and images may be nil when
// Redis or MinIO are not configured.
func NewHandler(rep *repository.Repository, m *metrics.Metrics, tokens *utils.TokenIssuer, sessions *utils.SessionStore, images *utils.ImageStore) *Handler {
	h := &Handler{
		Repository: rep,
		Metrics:    m,
		Tokens:     tokens,

		LookupAPIHandler:          &api.LookupHandler{Repository: rep},
		OwnerAPIHandler:           &api.OwnerHandler{Repository: rep},
		ShipAPIHandler:            &api.ShipHandler{Repository: rep},
		CertificateAPIHandler:     &api.CertificateHandler{Repository: rep},
		InspectionAPIHandler:      &api.InspectionHandler{Repository: rep},
		MutationAPIHandler:        &api.MutationHandler{Repository: rep},
		ImmatriculationAPIHandler: &api.ImmatriculationHandler{Repository: rep},
		RadiationAPIHandler:       &api.RadiationHandler{Repository: rep},
		UserAPIHandler:            &api.UserHandler{Repository: rep},
		AuthAPIHandler:            &api.AuthHandler{Repository: rep, Tokens: tokens},
		StatsAPIHandler:           &api.StatsHandler{Repository: rep},
	}

	// nil pointers must stay out of the interface fields
	if m != nil {
		h.CertificateAPIHandler.Metrics = m
		h.AuthAPIHandler.Metrics = m
	}
	if sessions != nil {
		h.sessions = sessions
		h.AuthAPIHandler.Sessions = sessions
	}
	if images != nil {
		h.ShipAPIHandler.Images = images
	}
	return h
}

func (h *Handler) SetupRoutes(router *gin.Engine) {
	if h.Metrics != nil {
		router.GET("/metrics", gin.WrapH(h.Metrics.Handler()))
	}
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/health", h.StatsAPIHandler.HealthAPI)
		apiGroup.GET("/stats", h.StatsAPIHandler.GetStatsAPI)

		// lookups
		for _, prefix := range []string{"/pavillon", "/pavillons"} {
			flags := apiGroup.Group(prefix)
			flags.GET("", h.LookupAPIHandler.GetFlagsAPI)
			flags.POST("", h.LookupAPIHandler.CreateFlagAPI)
			flags.GET("/:id", h.LookupAPIHandler.GetFlagAPI)
			flags.GET("/byName/:name", h.LookupAPIHandler.GetFlagByNameAPI)
		}
		for _, prefix := range []string{"/port", "/ports"} {
			ports := apiGroup.Group(prefix)
			ports.GET("", h.LookupAPIHandler.GetPortsAPI)
			ports.POST("", h.LookupAPIHandler.CreatePortAPI)
			ports.GET("/:id", h.LookupAPIHandler.GetPortAPI)
			ports.GET("/byName/:name", h.LookupAPIHandler.GetPortByNameAPI)
		}
		for _, prefix := range []string{"/typenavire", "/typesnavire"} {
			types := apiGroup.Group(prefix)
			types.GET("", h.LookupAPIHandler.GetShipTypesAPI)
			types.POST("", h.LookupAPIHandler.CreateShipTypeAPI)
			types.GET("/:id", h.LookupAPIHandler.GetShipTypeAPI)
			types.GET("/byName/:name", h.LookupAPIHandler.GetShipTypeByNameAPI)
		}
		apiGroup.GET("/typescertif", h.LookupAPIHandler.GetCertificateTypesAPI)

		// owners
		apiGroup.GET("/armateurs", h.OwnerAPIHandler.GetOwnersAPI)
		apiGroup.POST("/armateurs", h.OwnerAPIHandler.CreateOwnerAPI)
		apiGroup.GET("/armateurs/:id", h.OwnerAPIHandler.GetOwnerAPI)
		apiGroup.PUT("/armateurs/:id", h.OwnerAPIHandler.UpdateOwnerAPI)
		apiGroup.DELETE("/armateurs/:id", h.OwnerAPIHandler.DeleteOwnerAPI)
		apiGroup.GET("/armateurs/:id/ships", h.OwnerAPIHandler.GetOwnerShipsAPI)

		// ships
		apiGroup.GET("/ships", h.ShipAPIHandler.GetShipsAPI)
		apiGroup.GET("/ships/stats", h.ShipAPIHandler.GetShipStatsAPI)
		apiGroup.GET("/ships/:imo", h.ShipAPIHandler.GetShipAPI)
		apiGroup.POST("/ships", h.ShipAPIHandler.CreateShipAPI)
		apiGroup.PUT("/ships/:imo", h.ShipAPIHandler.UpdateShipAPI)
		apiGroup.DELETE("/ships/:imo", h.ShipAPIHandler.DeleteShipAPI)
		apiGroup.POST("/ships/:imo/image", h.ShipAPIHandler.AddShipImageAPI)

		// certificates
		apiGroup.POST("/certificate/request", h.CertificateAPIHandler.RequestCertificateAPI)
		apiGroup.GET("/certificats", h.CertificateAPIHandler.GetCertificatesAPI)
		apiGroup.POST("/certificats", h.CertificateAPIHandler.CreateCertificateAPI)
		apiGroup.GET("/certificats/:id", h.CertificateAPIHandler.GetCertificateAPI)
		apiGroup.PUT("/certificats/:id", h.CertificateAPIHandler.UpdateCertificateAPI)
		apiGroup.DELETE("/certificats/:id", h.CertificateAPIHandler.DeleteCertificateAPI)

		// ship records
		inspections := apiGroup.Group("/inspections")
		inspections.GET("", h.InspectionAPIHandler.GetInspectionsAPI)
		inspections.POST("", h.InspectionAPIHandler.CreateInspectionAPI)
		inspections.GET("/:id", h.InspectionAPIHandler.GetInspectionAPI)
		inspections.PUT("/:id", h.InspectionAPIHandler.UpdateInspectionAPI)
		inspections.DELETE("/:id", h.InspectionAPIHandler.DeleteInspectionAPI)

		mutations := apiGroup.Group("/mutations")
		mutations.GET("", h.MutationAPIHandler.GetMutationsAPI)
		mutations.POST("", h.MutationAPIHandler.CreateMutationAPI)
		mutations.GET("/:id", h.MutationAPIHandler.GetMutationAPI)
		mutations.PUT("/:id", h.MutationAPIHandler.UpdateMutationAPI)
		mutations.DELETE("/:id", h.MutationAPIHandler.DeleteMutationAPI)

		immatriculations := apiGroup.Group("/immatriculations")
		immatriculations.GET("", h.ImmatriculationAPIHandler.GetImmatriculationsAPI)
		immatriculations.POST("", h.ImmatriculationAPIHandler.CreateImmatriculationAPI)
		immatriculations.GET("/:id", h.ImmatriculationAPIHandler.GetImmatriculationAPI)
		immatriculations.PUT("/:id", h.ImmatriculationAPIHandler.UpdateImmatriculationAPI)
		immatriculations.DELETE("/:id", h.ImmatriculationAPIHandler.DeleteImmatriculationAPI)

		radiations := apiGroup.Group("/radiations")
		radiations.GET("", h.RadiationAPIHandler.GetRadiationsAPI)
		radiations.POST("", h.RadiationAPIHandler.CreateRadiationAPI)
		radiations.GET("/:id", h.RadiationAPIHandler.GetRadiationAPI)
		radiations.PUT("/:id", h.RadiationAPIHandler.UpdateRadiationAPI)
		radiations.DELETE("/:id", h.RadiationAPIHandler.DeleteRadiationAPI)

		// users and auth
		apiGroup.GET("/users", h.UserAPIHandler.GetUsersAPI)
		apiGroup.POST("/users", h.UserAPIHandler.CreateUserAPI)
		apiGroup.GET("/users/:id", h.UserAPIHandler.GetUserAPI)
		apiGroup.PUT("/users/:id", h.UserAPIHandler.UpdateUserAPI)
		apiGroup.DELETE("/users/:id", h.UserAPIHandler.DeleteUserAPI)

		apiGroup.POST("/auth/login", h.AuthAPIHandler.LoginAPI)
		apiGroup.GET("/auth/me", h.AuthAPIHandler.MeAPI)
		authGroup := apiGroup.Group("/auth", middleware.AuthMiddleware(h.Tokens, h.sessions))
		{
			authGroup.GET("/session", h.AuthAPIHandler.SessionAPI)
			authGroup.POST("/logout", h.AuthAPIHandler.LogoutAPI)
		}
	}
}
