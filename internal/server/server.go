package server

import (
	"strings"
	"time"

	"anoa.com/ruangkelas/internal/config"
	"anoa.com/ruangkelas/internal/handler"
	"anoa.com/ruangkelas/internal/middleware"
	"anoa.com/ruangkelas/internal/realtime"
	"anoa.com/ruangkelas/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	engine *gin.Engine
}

// New assembles the router: handlers over the shared store, auth guards on
// everything past login, teacher-only guards on mutations, and the
// websocket endpoint for change events.
func New(cfg *config.Config, st *store.Store, hub *realtime.Hub) *Server {
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.AllowedOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	authMiddleware := middleware.NewAuthMiddleware(st, cfg.JWTSecret)

	authHandler := handler.NewAuthHandler(st, authMiddleware, cfg.JWTTTL)
	classHandler := handler.NewClassHandler(st)
	studentHandler := handler.NewStudentHandler(st)
	scoreHandler := handler.NewScoreHandler(st)
	announcementHandler := handler.NewAnnouncementHandler(st)
	attendanceHandler := handler.NewAttendanceHandler(st)
	importHandler := handler.NewImportHandler(st)
	statHandler := handler.NewStatHandler(st)
	meHandler := handler.NewMeHandler(st)

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		auth.POST("/login", authHandler.Login)
	}

	// Protected routes (perlu auth)
	api.Use(authMiddleware.RequireAuth())
	{
		api.POST("/auth/logout", authHandler.Logout)
		api.GET("/ws", hub.HandleWebSocket)
		api.GET("/stats", statHandler.Counts)

		me := api.Group("/me")
		{
			me.GET("", meHandler.Profile)
			me.GET("/classes", meHandler.Classes)
			me.GET("/scores", meHandler.Scores)
			me.GET("/attendance", meHandler.Attendance)
			me.GET("/announcements", meHandler.Announcements)
		}

		// Reads available to both roles.
		api.GET("/classes", classHandler.List)
		api.GET("/classes/:id", classHandler.Get)
		api.GET("/classes/:id/announcements", classHandler.Announcements)

		// Teacher administration.
		teacher := api.Group("")
		teacher.Use(authMiddleware.RequireTeacher())
		{
			teacher.POST("/classes", classHandler.Create)
			teacher.PUT("/classes/:id", classHandler.Update)
			teacher.DELETE("/classes/:id", classHandler.Delete)
			teacher.GET("/classes/:id/students", classHandler.Students)
			teacher.POST("/classes/:id/enroll", classHandler.Enroll)
			teacher.POST("/classes/:id/withdraw", classHandler.Withdraw)
			teacher.GET("/classes/:id/scores", classHandler.Scores)
			teacher.GET("/classes/:id/attendance", classHandler.Attendance)
			teacher.GET("/classes/:id/attendance/:year/:month", classHandler.AttendanceByMonth)

			teacher.POST("/students", studentHandler.Create)
			teacher.POST("/students/batch", studentHandler.CreateBatch)
			teacher.GET("/students", studentHandler.List)
			teacher.GET("/students/:id", studentHandler.Get)
			teacher.PUT("/students/:id", studentHandler.Update)
			teacher.DELETE("/students/:id", studentHandler.Delete)
			teacher.GET("/students/:id/classes", studentHandler.Classes)
			teacher.GET("/students/:id/scores", studentHandler.Scores)
			teacher.GET("/students/:id/attendance", studentHandler.Attendance)

			teacher.POST("/scores", scoreHandler.Create)
			teacher.POST("/scores/batch", scoreHandler.CreateBatch)
			teacher.GET("/scores", scoreHandler.List)
			teacher.PUT("/scores/:id", scoreHandler.Update)
			teacher.DELETE("/scores/:id", scoreHandler.Delete)

			teacher.POST("/announcements", announcementHandler.Create)
			teacher.GET("/announcements", announcementHandler.List)
			teacher.GET("/announcements/:id", announcementHandler.Get)
			teacher.PUT("/announcements/:id", announcementHandler.Update)
			teacher.DELETE("/announcements/:id", announcementHandler.Delete)

			teacher.POST("/attendance", attendanceHandler.Create)
			teacher.POST("/attendance/batch", attendanceHandler.CreateBatch)
			teacher.GET("/attendance", attendanceHandler.List)
			teacher.PUT("/attendance/:id", attendanceHandler.Update)
			teacher.DELETE("/attendance/:id", attendanceHandler.Delete)

			teacher.POST("/import/students", importHandler.Students)
			teacher.POST("/import/scores", importHandler.Scores)
			teacher.POST("/import/attendance", importHandler.Attendance)
			teacher.GET("/import/students/template", importHandler.StudentTemplate)
			teacher.GET("/import/scores/template", importHandler.ScoreTemplate)
			teacher.GET("/import/attendance/template", importHandler.AttendanceTemplate)
		}
	}

	return &Server{engine: router}
}

func (s *Server) Run(port string) error {
	return s.engine.Run(":" + port)
}

// Engine exposes the router for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}
