package routes

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"movilab/internal/controllers"
	"movilab/internal/repositories"
	"movilab/internal/services"
	"movilab/pkg/config"
	appmiddleware "movilab/pkg/middleware"
)

// InitRouter wires repositories, services and controllers onto the
// echo instance. The cache may be a NoopCache when Redis is not
// configured.
func InitRouter(
	e *echo.Echo,
	dbConn *pgxpool.Pool,
	cache repositories.CacheRepositoryInterface,
	logger *zap.Logger,
	cfg *config.Config,
) {
	equipoRepo := repositories.NewEquipoRepository(dbConn)
	tecnicoRepo := repositories.NewTecnicoRepository(dbConn)
	ingenieroRepo := repositories.NewIngenieroRepository(dbConn)
	adminRepo := repositories.NewAdminRepository(dbConn)

	equipoService := services.NewEquipoService(equipoRepo, cache, cfg.Cache.RecentEquiposTTL, logger)
	personalService := services.NewPersonalService(tecnicoRepo, ingenieroRepo, logger)
	informeService := services.NewInformeService(equipoRepo, logger)
	adminService := services.NewAdminService(adminRepo, logger)

	equipoCtrl := controllers.NewEquipoController(equipoService, logger)
	personalCtrl := controllers.NewPersonalController(personalService, logger)
	informeCtrl := controllers.NewInformeController(informeService, equipoService, logger)
	adminCtrl := controllers.NewAdminController(adminService, logger)

	// Legacy personnel endpoints, plain-text responses.
	e.POST("/add-technician", personalCtrl.AddTechnician)
	e.POST("/add-engineer", personalCtrl.AddEngineer)
	e.GET("/view-data", personalCtrl.ViewData)
	e.POST("/edit-technician", personalCtrl.EditTechnician)
	e.POST("/edit-engineer", personalCtrl.EditEngineer)
	e.POST("/delete-technician", personalCtrl.DeleteTechnician)
	e.POST("/delete-engineer", personalCtrl.DeleteEngineer)

	// Intake endpoints used by the front-page form.
	e.POST("/guardar_equipo", equipoCtrl.GuardarEquipo)
	e.POST("/guardar_direccion", equipoCtrl.GuardarDireccion)

	api := e.Group("/api")
	api.GET("/tecnicos", personalCtrl.GetTecnicos)
	api.GET("/ingenieros", personalCtrl.GetIngenieros)

	api.GET("/equipos", equipoCtrl.GetEquipos)
	api.GET("/equipos/export", informeCtrl.ExportEquipos)
	api.GET("/equipos/:id", equipoCtrl.FindEquipo)
	api.GET("/ultimos_equipos", equipoCtrl.GetUltimosEquipos)
	api.GET("/buscar_equipos", equipoCtrl.BuscarEquipos)
	api.GET("/detalle_equipo/:id", equipoCtrl.DetalleEquipo)
	api.DELETE("/eliminar_equipo/:id", equipoCtrl.EliminarEquipo)
	api.POST("/guardar_revision/:id", equipoCtrl.GuardarRevision)
	api.POST("/reparar/:id", equipoCtrl.Reparar)

	api.GET("/generar-informe/:id", informeCtrl.GenerarInforme)

	admin := api.Group("", appmiddleware.AdminGate(cfg.Admin.Token, logger))
	admin.GET("/tables-info", adminCtrl.GetTablesInfo)
	admin.POST("/delete-table", adminCtrl.DeleteTable)
}
