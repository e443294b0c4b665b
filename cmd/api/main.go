package main

import (
	"fmt"
	"net/http"

	"github.com/fieldcrew/fieldcrew-backend-go/internal/config"
	appHTTP "github.com/fieldcrew/fieldcrew-backend-go/internal/handler/http"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/pkg/database"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/pkg/jwt"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/pkg/sms"
	"github.com/fieldcrew/fieldcrew-backend-go/internal/repository/postgresql"
	analyticsService "github.com/fieldcrew/fieldcrew-backend-go/internal/service/analytics"
	serviceAuth "github.com/fieldcrew/fieldcrew-backend-go/internal/service/auth"
	serviceCompany "github.com/fieldcrew/fieldcrew-backend-go/internal/service/company"
	inviteService "github.com/fieldcrew/fieldcrew-backend-go/internal/service/invite"
	jobService "github.com/fieldcrew/fieldcrew-backend-go/internal/service/job"
	leadService "github.com/fieldcrew/fieldcrew-backend-go/internal/service/lead"
	payrollService "github.com/fieldcrew/fieldcrew-backend-go/internal/service/payroll"
	timeEntryService "github.com/fieldcrew/fieldcrew-backend-go/internal/service/timeentry"
	workerService "github.com/fieldcrew/fieldcrew-backend-go/internal/service/worker"
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
	companyRepo := postgresql.NewCompanyRepository(db)
	JWTRepository := postgresql.NewJWTRepository(db)
	workerRepo := postgresql.NewWorkerRepository(db)
	jobRepo := postgresql.NewJobRepository(db)
	jobTypeRepo := postgresql.NewJobTypeRepository(db)
	timeEntryRepo := postgresql.NewTimeEntryRepository(db)
	inviteRepo := postgresql.NewInviteRepository(db)
	leadRepo := postgresql.NewLeadRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	smsService := sms.NewSMSService(cfg.SMS)

	authSvc := serviceAuth.NewAuthService(db, userRepo, companyRepo, JWTService, JWTRepository)
	companySvc := serviceCompany.NewCompanyService(companyRepo)
	workerSvc := workerService.NewWorkerService(workerRepo)
	jobSvc := jobService.NewJobService(jobRepo, jobTypeRepo)
	timeEntrySvc := timeEntryService.NewTimeEntryService(timeEntryRepo, workerRepo, jobRepo)
	inviteSvc := inviteService.NewInviteService(cfg, db, inviteRepo, workerRepo, companyRepo, userRepo, JWTService, JWTRepository, smsService)
	leadSvc := leadService.NewLeadService(leadRepo)
	payrollSvc := payrollService.NewPayrollService(workerRepo, timeEntryRepo)
	analyticsSvc := analyticsService.NewAnalyticsService(workerRepo, jobRepo, jobTypeRepo, timeEntryRepo)

	router := appHTTP.NewRouter(cfg, JWTService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(JWTService, authSvc),
		Calculator: appHTTP.NewCalculatorHandler(leadSvc),
		Company:    appHTTP.NewCompanyHandler(companySvc),
		Worker:     appHTTP.NewWorkerHandler(workerSvc),
		Job:        appHTTP.NewJobHandler(jobSvc),
		TimeEntry:  appHTTP.NewTimeEntryHandler(timeEntrySvc),
		Invite:     appHTTP.NewInviteHandler(inviteSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
		Analytics:  appHTTP.NewAnalyticsHandler(analyticsSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
