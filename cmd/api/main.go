package main

import (
	"fmt"
	"net/http"

	"github.com/fdestech/timetrack-backend-go/internal/config"
	appHTTP "github.com/fdestech/timetrack-backend-go/internal/handler/http"
	"github.com/fdestech/timetrack-backend-go/internal/pkg/database"
	"github.com/fdestech/timetrack-backend-go/internal/pkg/jwt"
	"github.com/fdestech/timetrack-backend-go/internal/pkg/oauth"
	"github.com/fdestech/timetrack-backend-go/internal/repository/postgresql"
	authService "github.com/fdestech/timetrack-backend-go/internal/service/auth"
	preferenceService "github.com/fdestech/timetrack-backend-go/internal/service/preference"
	statsService "github.com/fdestech/timetrack-backend-go/internal/service/stats"
	userService "github.com/fdestech/timetrack-backend-go/internal/service/user"
	workentryService "github.com/fdestech/timetrack-backend-go/internal/service/workentry"
	workhourService "github.com/fdestech/timetrack-backend-go/internal/service/workhour"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	workEntryRepo := postgresql.NewWorkEntryRepository(db)
	workHourRequestRepo := postgresql.NewWorkHourRequestRepository(db)
	statsRepo := postgresql.NewStatsRepository(db)
	preferencesRepo := postgresql.NewManagerPreferencesRepository(db)
	JWTRepository := postgresql.NewJWTRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	MicrosoftService := oauth.NewMicrosoftService(
		cfg.OAuthMicrosoft.ClientID,
		cfg.OAuthMicrosoft.ClientSecret,
		cfg.OAuthMicrosoft.TenantID,
		cfg.OAuthMicrosoft.RedirectURL,
		cfg.OAuthMicrosoft.Scopes,
	)

	authSvc := authService.NewAuthService(db, userRepo, JWTService, JWTRepository, cfg.OAuthMicrosoft.BootstrapEmail)
	userSvc := userService.NewUserService(userRepo)
	workEntrySvc := workentryService.NewWorkEntryService(workEntryRepo, workHourRequestRepo)
	workHourSvc := workhourService.NewWorkHourRequestService(workHourRequestRepo, workEntryRepo)
	statsSvc := statsService.NewStatsService(statsRepo, cfg.App.WeekStart)
	preferenceSvc := preferenceService.NewManagerPreferencesService(preferencesRepo)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc, userSvc, MicrosoftService, cfg.App.FrontendURL)
	userHandler := appHTTP.NewUserHandler(userSvc)
	workEntryHandler := appHTTP.NewWorkEntryHandler(workEntrySvc)
	workHourRequestHandler := appHTTP.NewWorkHourRequestHandler(workHourSvc)
	statsHandler := appHTTP.NewStatsHandler(statsSvc)
	preferenceHandler := appHTTP.NewPreferenceHandler(preferenceSvc)

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		authHandler,
		userHandler,
		workEntryHandler,
		workHourRequestHandler,
		statsHandler,
		preferenceHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
