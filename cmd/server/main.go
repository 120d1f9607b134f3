package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/dikdasmen/spmb-backend/internal/adapter/handler"
	"github.com/dikdasmen/spmb-backend/internal/adapter/repository"
	"github.com/dikdasmen/spmb-backend/internal/infrastructure/config"
	"github.com/dikdasmen/spmb-backend/internal/infrastructure/database"
	"github.com/dikdasmen/spmb-backend/internal/infrastructure/logger"
	"github.com/dikdasmen/spmb-backend/internal/infrastructure/server"
	"github.com/dikdasmen/spmb-backend/internal/usecase/admission"
	"github.com/dikdasmen/spmb-backend/internal/usecase/auth"
	"github.com/dikdasmen/spmb-backend/internal/usecase/content"
	"github.com/dikdasmen/spmb-backend/internal/usecase/dinas"
	"github.com/dikdasmen/spmb-backend/internal/usecase/pendaftaran"
	"github.com/dikdasmen/spmb-backend/internal/usecase/sekolah"
	"github.com/dikdasmen/spmb-backend/internal/usecase/siswa"
	"github.com/dikdasmen/spmb-backend/internal/usecase/stats"
	"github.com/dikdasmen/spmb-backend/internal/usecase/user"
	"github.com/dikdasmen/spmb-backend/pkg/jwt"
)

func main() {
	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize logger
	logger.Init(&cfg.Log)
	log.Info().Msg("Starting SPMB Backend...")

	// Initialize database
	db, err := database.Init(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer database.Close()

	if err := repository.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	// Initialize JWT manager
	jwtManager := jwt.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.GetAccessTokenExpiry(),
		cfg.JWT.Issuer,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	dinasRepo := repository.NewDinasRepository(db)
	sekolahRepo := repository.NewSekolahRepository(db)
	siswaRepo := repository.NewSiswaRepository(db)
	pendaftaranRepo := repository.NewPendaftaranRepository(db)
	jalurRepo := repository.NewJalurRepository(db)
	tahunAjaranRepo := repository.NewTahunAjaranRepository(db)
	kuotaRepo := repository.NewKuotaRepository(db)
	pengumumanRepo := repository.NewPengumumanRepository(db)
	beritaRepo := repository.NewBeritaRepository(db)
	registrationRepo := repository.NewRegistrationRepository(db)

	// Initialize use cases
	authUseCase := auth.NewUseCase(userRepo, registrationRepo, jwtManager)
	userUseCase := user.NewUseCase(userRepo)
	dinasUseCase := dinas.NewUseCase(dinasRepo)
	sekolahUseCase := sekolah.NewUseCase(sekolahRepo)
	siswaUseCase := siswa.NewUseCase(siswaRepo)
	pendaftaranUseCase := pendaftaran.NewUseCase(pendaftaranRepo, siswaRepo)
	admissionUseCase := admission.NewUseCase(jalurRepo, tahunAjaranRepo, kuotaRepo)
	contentUseCase := content.NewUseCase(pengumumanRepo, beritaRepo)
	statsUseCase := stats.NewUseCase(userRepo, dinasRepo, sekolahRepo, siswaRepo, pendaftaranRepo)

	// Initialize handlers
	handlers := &handler.Handlers{
		Auth:        handler.NewAuthHandler(authUseCase),
		User:        handler.NewUserHandler(userUseCase),
		Dinas:       handler.NewDinasHandler(dinasUseCase),
		Sekolah:     handler.NewSekolahHandler(sekolahUseCase),
		Siswa:       handler.NewSiswaHandler(siswaUseCase),
		Pendaftaran: handler.NewPendaftaranHandler(pendaftaranUseCase),
		Admission:   handler.NewAdmissionHandler(admissionUseCase),
		Content:     handler.NewContentHandler(contentUseCase),
		Stats:       handler.NewStatsHandler(statsUseCase),
	}

	// Initialize HTTP server
	srv := server.New(&cfg.Server)
	handler.RegisterRoutes(srv.Router(), handlers, jwtManager, userRepo)

	// Start server in goroutine
	go func() {
		if err := srv.Start(); err != nil {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
