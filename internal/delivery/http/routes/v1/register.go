// Package v1 wires repositories, usecases and handlers into the /api/v1
// route tree.
package v1

import (
	"log"

	"tindev/internal/config"
	"tindev/internal/database"
	"tindev/internal/delivery/http/handler"
	"tindev/internal/delivery/http/middleware"
	"tindev/internal/infrastructure/cache"
	"tindev/internal/infrastructure/media"
	"tindev/internal/pkg/jwt"
	"tindev/internal/repository"
	"tindev/internal/usecase"
	ucauth "tindev/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, cfg config.Config, db database.DB, redis *cache.Redis, mediaClient media.Client, logger *log.Logger) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo := repository.NewPostgresUserRepository(db)
	devRepo := repository.NewPostgresDeveloperRepository(db)
	compRepo := repository.NewPostgresCompanyRepository(db)
	jobRepo := repository.NewPostgresJobRecruitmentRepository(db)
	photoRepo := repository.NewPostgresPhotoRepository(db)
	matchRepo := repository.NewPostgresMatchingRepository(db)

	photoURLs := usecase.NewPhotoURLService(photoRepo, mediaClient, redis, logger)
	interactionsUC := usecase.NewInteractionsUsecase(matchRepo, devRepo, compRepo, jobRepo)
	matchListUC := usecase.NewMatchingListUsecase(matchRepo, devRepo, compRepo, photoURLs)
	discoveryUC := usecase.NewDiscoveryUsecase(devRepo, jobRepo, photoURLs)
	devUC := usecase.NewDeveloperUsecase(devRepo, compRepo, photoURLs)
	compUC := usecase.NewCompanyUsecase(compRepo, devRepo, photoURLs)
	jobUC := usecase.NewJobRecruitmentUsecase(jobRepo)
	authUC := ucauth.NewService(userRepo, devRepo, compRepo, jwtSvc)

	authHandler := handler.NewAuthHandler(authUC)
	devHandler := handler.NewDeveloperHandler(devUC, discoveryUC, interactionsUC)
	compHandler := handler.NewCompanyHandler(compUC)
	jobHandler := handler.NewJobRecruitmentHandler(jobUC, discoveryUC, interactionsUC)
	matchHandler := handler.NewMatchingHandler(matchListUC)

	authHandler.RegisterRoutes(r.Group("/auth"))

	protected := r.Group("", authMw.Middleware())

	// Protected routes first so that /random and /my-info win over the
	// public parameterized lookups.
	devHandler.RegisterProtectedRoutes(protected.Group("/developers"))
	devHandler.RegisterPublicRoutes(r.Group("/developers"))

	compHandler.RegisterProtectedRoutes(protected.Group("/companies"))
	compHandler.RegisterPublicRoutes(r.Group("/companies"))

	jobHandler.RegisterProtectedRoutes(protected.Group("/job-recruitments"))
	jobHandler.RegisterPublicRoutes(r.Group("/job-recruitments"))

	matchHandler.RegisterRoutes(protected.Group("/matchings"))
}
