package main

import (
	"backoffice-service/internal/app/config"
	"backoffice-service/internal/app/delivery/http/controllers"
	"backoffice-service/internal/app/delivery/http/middlewares"
	"backoffice-service/internal/app/delivery/http/routers"
	"backoffice-service/internal/app/drivers/database"
	"backoffice-service/internal/app/drivers/logger"
	"backoffice-service/internal/app/drivers/messaging"
	"backoffice-service/internal/app/drivers/storage"
	"backoffice-service/internal/app/services/core/appointments"
	"backoffice-service/internal/app/services/core/availabilities"
	clientGroups "backoffice-service/internal/app/services/core/client_groups"
	diagnosisTreatmentPlans "backoffice-service/internal/app/services/core/diagnosis_treatment_plans"
	"backoffice-service/internal/app/services/core/session"
	"backoffice-service/internal/app/services/shared/metrics"
	"backoffice-service/internal/app/services/shared/publisher"
	"backoffice-service/internal/app/services/shared/redis"
	"backoffice-service/internal/app/services/shared/slotmailbox"
	documentationStorage "backoffice-service/internal/app/services/shared/storage"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger, err := logger.NewZapLogger(driverConfig, internalConfig)
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		zapLogger.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	mongoDB, err := database.NewMongoDB(driverConfig)
	if err != nil {
		zapLogger.Fatal("Error connecting to MongoDB", zap.Error(err))
	}
	postgresDB, err := database.NewPostgresDB(driverConfig)
	if err != nil {
		zapLogger.Fatal("Error connecting to Postgres", zap.Error(err))
	}
	redisClient, err := database.NewRedisClient(driverConfig)
	if err != nil {
		zapLogger.Fatal("Error connecting to Redis", zap.Error(err))
	}
	rabbitMQ, err := messaging.NewRabbitMQ(driverConfig)
	if err != nil {
		zapLogger.Fatal("Error connecting to RabbitMQ", zap.Error(err))
	}
	minioClient, err := storage.NewMinio(driverConfig, internalConfig)
	if err != nil {
		zapLogger.Fatal("Error connecting to Minio", zap.Error(err))
	}

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		MongoDB:        mongoDB,
		PostgresDB:     postgresDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         zapLogger,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	err = bootstrapingTheApp(bootstrap, location)
	if err != nil {
		zapLogger.Fatal("Error bootstraping the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:              internalConfig.App.Port,
		Handler:           bootstrap.Router,
		ReadHeaderTimeout: time.Duration(internalConfig.App.RequestTimeoutInSeconds) * time.Second,
	}

	go func() {
		zapLogger.Info("Server started", zap.String("port", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	zapLogger.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Error closing connections: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap, location *time.Location) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	availabilityMetrics := metrics.NewAvailabilityMetrics(registry)
	httpMetrics := metrics.NewHTTPMetrics(registry)

	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)

	// Session
	sessionService := session.NewSessionService(redisRepository, bootstrap.InternalConfig.JWT.Secret)
	authProvider := session.NewBearerAuthProvider(sessionService)

	// Availability
	availabilityPublisher, err := publisher.NewRabbitMQPublisher(bootstrap.RabbitMQ, bootstrap.InternalConfig.RabbitMQ.AvailabilityExchange)
	if err != nil {
		return err
	}
	availabilityMongoRepository := availabilities.NewAvailabilityMongoRepository(bootstrap.MongoDB, bootstrap.InternalConfig.MongoDB.BackofficeDBName)
	err = availabilityMongoRepository.EnsureIndexes(ctx)
	if err != nil {
		return err
	}
	availabilityUsecase := availabilities.NewAvailabilityUsecase(
		availabilityMongoRepository,
		bootstrap.Logger,
		availabilities.WithStrictRange(bootstrap.InternalConfig.App.StrictAvailabilityRange),
		availabilities.WithEventPublisher(availabilityPublisher),
		availabilities.WithMetrics(availabilityMetrics),
		availabilities.WithLocation(location),
	)
	availabilityController := controllers.NewAvailabilityController(bootstrap.Logger, authProvider, availabilityUsecase)

	// Appointment
	slotMailboxTTL := time.Duration(bootstrap.InternalConfig.SlotMailbox.TTLInMinutes) * time.Minute
	slotMailbox := slotmailbox.NewRedisSlotMailbox(redisRepository, slotMailboxTTL)
	appointmentFormUsecase := appointments.NewAppointmentFormUsecase(slotMailbox, location, bootstrap.Logger)
	appointmentController := controllers.NewAppointmentController(bootstrap.Logger, appointmentFormUsecase)

	// Client group
	clientGroupMongoRepository := clientGroups.NewClientGroupMongoRepository(bootstrap.MongoDB, bootstrap.InternalConfig.MongoDB.BackofficeDBName)
	clientGroupUsecase := clientGroups.NewClientGroupUsecase(clientGroupMongoRepository)
	clientGroupController := controllers.NewClientGroupController(bootstrap.Logger, clientGroupUsecase)

	// Diagnosis and treatment plan
	diagnosisTreatmentPlanPostgresRepository := diagnosisTreatmentPlans.NewDiagnosisTreatmentPlanPostgresRepository(bootstrap.PostgresDB, bootstrap.Logger)
	documentationArchive := documentationStorage.NewMinioDocumentationArchive(bootstrap.Minio, bootstrap.InternalConfig.Minio.DocumentationBucketName)
	diagnosisTreatmentPlanUsecase := diagnosisTreatmentPlans.NewDiagnosisTreatmentPlanUsecase(
		diagnosisTreatmentPlanPostgresRepository,
		documentationArchive,
		location,
		bootstrap.Logger,
	)
	diagnosisTreatmentPlanController := controllers.NewDiagnosisTreatmentPlanController(bootstrap.Logger, diagnosisTreatmentPlanUsecase)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, sessionService, bootstrap.InternalConfig, httpMetrics)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		controllers.NewHealthController(),
		availabilityController,
		appointmentController,
		clientGroupController,
		diagnosisTreatmentPlanController,
	)

	return nil
}
