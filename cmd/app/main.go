package main

import (
	"context"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"pico/cmd/fx/db_fx"
	"pico/cmd/fx/logger_fx"
	"pico/cmd/fx/payment_fx"
	"pico/cmd/fx/stats_fx"
	"pico/cmd/fx/submission_fx"
	"pico/cmd/fx/task_fx"
	"pico/cmd/fx/user_fx"
	"pico/cmd/fx/withdrawal_fx"
	"pico/internal/api/controllers"
	"pico/internal/infra"
	"pico/internal/models/db_models"
	"pico/internal/repositories"
	"pico/pkg/middleware"
	"pico/pkg/utils"
)

const defaultPort = "5000"

func main() {
	_ = godotenv.Load()
	utils.SetSigningKey(os.Getenv("JWT_SECRET"))

	app := fx.New(
		logger_fx.Module,
		db_fx.Module,
		user_fx.Module,
		task_fx.Module,
		submission_fx.Module,
		payment_fx.Module,
		withdrawal_fx.Module,
		stats_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB, logger *zap.Logger) {
	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info("starting HTTP server", zap.String("port", port))
				if err := engine.Run(":" + port); err != nil {
					logger.Fatal("starting server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			infra.ClosePostgresql(db, logger)
			return nil
		},
	})
}

func ProvideRouter(
	authController *controllers.AuthController,
	userController *controllers.UserController,
	taskController *controllers.TaskController,
	submissionController *controllers.SubmissionController,
	paymentController *controllers.PaymentController,
	withdrawalController *controllers.WithdrawalController,
	statsController *controllers.StatsController,
	userRepo repositories.UserRepository,
	logger *zap.Logger,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r,
		authController, userController, taskController, submissionController,
		paymentController, withdrawalController, statsController, userRepo)

	return r
}

func RegisterRoutes(
	r *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	taskController *controllers.TaskController,
	submissionController *controllers.SubmissionController,
	paymentController *controllers.PaymentController,
	withdrawalController *controllers.WithdrawalController,
	statsController *controllers.StatsController,
	userRepo repositories.UserRepository,
) {
	auth := middleware.JWTAuthMiddleware()
	admin := middleware.RequireRole(userRepo, db_models.RoleAdmin)
	creator := middleware.RequireRole(userRepo, db_models.RoleTaskCreator)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Pico is here")
	})

	r.POST("/jwt", authController.IssueToken)

	r.POST("/users", userController.Register)
	r.GET("/user/:email", userController.GetByEmail)
	r.GET("/users", auth, admin, userController.GetAll)
	r.GET("/users/admin/:email", auth, userController.AdminStatus)
	r.PATCH("/users/updateRole/:id", auth, admin, userController.UpdateRole)
	r.DELETE("/users/delete/:id", auth, admin, userController.Delete)
	r.GET("/top-earners", userController.TopEarners)

	r.POST("/tasks", auth, creator, taskController.Create)
	r.GET("/tasks", auth, admin, taskController.ListAll)
	r.GET("/tasks/:email", auth, creator, taskController.ListByCreator)
	r.DELETE("/tasks/:id", auth, creator, taskController.Delete)
	r.GET("/task/:id", taskController.GetByID)
	r.PATCH("/task/update/:id", auth, creator, taskController.Update)
	r.GET("/task-list", taskController.ListAvailable)

	r.POST("/submissions", auth, submissionController.Create)
	r.GET("/submissions/worker/:email", auth, submissionController.ListByWorker)
	r.GET("/submissions/creator/:email", auth, creator, submissionController.ListByCreator)
	r.PATCH("/submissions/approve/:id", auth, creator, submissionController.Approve)
	r.PATCH("/submissions/reject/:id", auth, creator, submissionController.Reject)
	r.GET("/mySubmissions", auth, submissionController.ListMinePaged)
	r.GET("/mySubmissionCount", auth, submissionController.CountMine)

	r.POST("/create-payment-intent", auth, paymentController.CreateIntent)
	r.GET("/payment/get/:email", auth, creator, paymentController.ListByEmail)
	r.PATCH("/payment/update/:email", auth, paymentController.Record)

	r.POST("/withdrawals", auth, withdrawalController.Create)
	r.GET("/withdrawals", auth, admin, withdrawalController.ListAll)
	r.POST("/withdrawals/resolve", auth, admin, withdrawalController.Resolve)

	r.GET("/admin-state", auth, admin, statsController.AdminState)
	r.GET("/task-creator-state/:email", auth, creator, statsController.CreatorState)
	r.GET("/worker-state/:email", auth, statsController.WorkerState)
}
