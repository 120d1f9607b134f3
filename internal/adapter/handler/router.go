package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/dikdasmen/spmb-backend/internal/domain/repository"
	"github.com/dikdasmen/spmb-backend/internal/infrastructure/middleware"
	"github.com/dikdasmen/spmb-backend/pkg/jwt"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	Auth        *AuthHandler
	User        *UserHandler
	Dinas       *DinasHandler
	Sekolah     *SekolahHandler
	Siswa       *SiswaHandler
	Pendaftaran *PendaftaranHandler
	Admission   *AdmissionHandler
	Content     *ContentHandler
	Stats       *StatsHandler
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, handlers *Handlers, jwtManager *jwt.JWTManager, userRepo repository.UserRepository) {
	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1
	v1 := router.Group("/api/v1")

	// Auth routes (public)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", handlers.Auth.Register)
		auth.POST("/login", handlers.Auth.Login)
	}

	// Public config and content routes
	public := v1.Group("/public")
	{
		public.GET("/jalur", handlers.Admission.PublicListJalur)
		public.GET("/tahun-ajaran", handlers.Admission.PublicListTahunAjaran)
		public.GET("/tahun-ajaran/active", handlers.Admission.PublicActiveTahunAjaran)
		public.GET("/sekolah", handlers.Sekolah.ListPublic)
		public.GET("/pengumuman", handlers.Content.PublicListPengumuman)
		public.GET("/berita", handlers.Content.PublicListBerita)
		public.GET("/berita/:slug", handlers.Content.PublicGetBeritaBySlug)
	}

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(jwtManager, userRepo))
	{
		// Auth routes (protected)
		protected.GET("/auth/me", handlers.Auth.Me)
		protected.PUT("/auth/password", handlers.Auth.ChangePassword)

		// User administration routes
		users := protected.Group("/users")
		{
			users.GET("", handlers.User.List)
			users.POST("", handlers.User.Create)
			users.GET("/:id", handlers.User.Get)
			users.PUT("/:id", handlers.User.Update)
			users.DELETE("/:id", handlers.User.Delete)
		}

		// Dinas routes
		dinas := protected.Group("/dinas")
		{
			dinas.GET("", handlers.Dinas.List)
			dinas.POST("", handlers.Dinas.Create)
			dinas.GET("/:id", handlers.Dinas.Get)
			dinas.PUT("/:id", handlers.Dinas.Update)
			dinas.DELETE("/:id", handlers.Dinas.Delete)
		}

		// Sekolah routes
		sekolah := protected.Group("/sekolah")
		{
			sekolah.GET("", handlers.Sekolah.List)
			sekolah.POST("", handlers.Sekolah.Create)
			sekolah.GET("/:id", handlers.Sekolah.Get)
			sekolah.PUT("/:id", handlers.Sekolah.Update)
			sekolah.DELETE("/:id", handlers.Sekolah.Delete)
		}

		// Siswa routes
		siswa := protected.Group("/siswa")
		{
			siswa.GET("", handlers.Siswa.List)
			siswa.GET("/me", handlers.Siswa.Me)
			siswa.PUT("/me", handlers.Siswa.UpdateMe)
			siswa.GET("/:id", handlers.Siswa.Get)
			siswa.DELETE("/:id", handlers.Siswa.Delete)
		}

		// Pendaftaran routes
		pendaftaran := protected.Group("/pendaftaran")
		{
			pendaftaran.GET("", handlers.Pendaftaran.List)
			pendaftaran.POST("", handlers.Pendaftaran.Create)
			pendaftaran.GET("/:id", handlers.Pendaftaran.Get)
			pendaftaran.POST("/:id/submit", handlers.Pendaftaran.Submit)
			pendaftaran.PUT("/:id/status", handlers.Pendaftaran.UpdateStatus)
			pendaftaran.DELETE("/:id", handlers.Pendaftaran.Delete)
		}

		// Jalur routes
		jalur := protected.Group("/jalur")
		{
			jalur.GET("", handlers.Admission.ListJalur)
			jalur.POST("", handlers.Admission.CreateJalur)
			jalur.PUT("/:id", handlers.Admission.UpdateJalur)
			jalur.DELETE("/:id", handlers.Admission.DeleteJalur)
		}

		// Tahun ajaran routes
		tahunAjaran := protected.Group("/tahun-ajaran")
		{
			tahunAjaran.POST("", handlers.Admission.CreateTahunAjaran)
			tahunAjaran.POST("/:id/activate", handlers.Admission.SetActiveTahunAjaran)
			tahunAjaran.DELETE("/:id", handlers.Admission.DeleteTahunAjaran)
		}

		// Kuota routes
		kuota := protected.Group("/kuota")
		{
			kuota.GET("", handlers.Admission.ListKuota)
			kuota.POST("", handlers.Admission.CreateKuota)
			kuota.GET("/:id", handlers.Admission.GetKuota)
			kuota.PUT("/:id", handlers.Admission.UpdateKuota)
			kuota.DELETE("/:id", handlers.Admission.DeleteKuota)
		}

		// Pengumuman routes
		pengumuman := protected.Group("/pengumuman")
		{
			pengumuman.GET("", handlers.Content.ListPengumuman)
			pengumuman.POST("", handlers.Content.CreatePengumuman)
			pengumuman.GET("/:id", handlers.Content.GetPengumuman)
			pengumuman.PUT("/:id", handlers.Content.UpdatePengumuman)
			pengumuman.DELETE("/:id", handlers.Content.DeletePengumuman)
		}

		// Berita routes
		berita := protected.Group("/berita")
		{
			berita.GET("", handlers.Content.ListBerita)
			berita.POST("", handlers.Content.CreateBerita)
			berita.GET("/:id", handlers.Content.GetBerita)
			berita.PUT("/:id", handlers.Content.UpdateBerita)
			berita.DELETE("/:id", handlers.Content.DeleteBerita)
		}

		// Stats routes
		protected.GET("/stats/summary", handlers.Stats.Summary)
	}
}
