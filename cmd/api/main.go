package main

import (
	"fmt"
	"net/http"

	"github.com/staffdeck/staffdeck-backend-go/internal/config"
	appHTTP "github.com/staffdeck/staffdeck-backend-go/internal/handler/http"
	"github.com/staffdeck/staffdeck-backend-go/internal/pkg/database"
	"github.com/staffdeck/staffdeck-backend-go/internal/pkg/jwt"
	"github.com/staffdeck/staffdeck-backend-go/internal/repository/postgresql"
	assignmentService "github.com/staffdeck/staffdeck-backend-go/internal/service/assignment"
	authService "github.com/staffdeck/staffdeck-backend-go/internal/service/auth"
	clientService "github.com/staffdeck/staffdeck-backend-go/internal/service/client"
	eventService "github.com/staffdeck/staffdeck-backend-go/internal/service/event"
	operatorService "github.com/staffdeck/staffdeck-backend-go/internal/service/operator"
	payrollService "github.com/staffdeck/staffdeck-backend-go/internal/service/payroll"
	reportService "github.com/staffdeck/staffdeck-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)
	clientRepo := postgresql.NewClientRepository(db)
	operatorRepo := postgresql.NewOperatorRepository(db)
	eventRepo := postgresql.NewEventRepository(db)
	assignmentRepo := postgresql.NewAssignmentRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	engine := payrollService.NewEngine(cfg.Payroll)

	authSvc := authService.NewAuthService(db, userRepo, refreshTokenRepo, jwtService)
	clientSvc := clientService.NewClientService(clientRepo)
	operatorSvc := operatorService.NewOperatorService(operatorRepo)
	eventSvc := eventService.NewEventService(db, eventRepo, clientRepo)
	assignmentSvc := assignmentService.NewAssignmentService(assignmentRepo, eventRepo, operatorRepo)
	payrollSvc := payrollService.NewPayrollService(eventRepo, assignmentRepo, engine)
	reportSvc := reportService.NewReportService(payrollSvc, assignmentRepo, eventRepo)

	router := appHTTP.NewRouter(jwtService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(jwtService, authSvc),
		Client:     appHTTP.NewClientHandler(clientSvc),
		Operator:   appHTTP.NewOperatorHandler(operatorSvc),
		Event:      appHTTP.NewEventHandler(eventSvc),
		Assignment: appHTTP.NewAssignmentHandler(assignmentSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
