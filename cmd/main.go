package main

import (
	"log"

	"github.com/linguamap/linguamap/internal/course"
	infra "github.com/linguamap/linguamap/internal/infrastructure"
	"github.com/linguamap/linguamap/internal/infrastructure/driver"
	"github.com/linguamap/linguamap/internal/infrastructure/logging"
	"github.com/linguamap/linguamap/internal/infrastructure/uuid"
	ihttp "github.com/linguamap/linguamap/internal/interfaces/http"
	"github.com/linguamap/linguamap/internal/lesson"
	"github.com/linguamap/linguamap/internal/path"
	"github.com/linguamap/linguamap/internal/progress"
	"github.com/linguamap/linguamap/internal/user"
	"go.uber.org/zap"
)

func main() {
	log.SetFlags(log.Lshortfile | log.Ldate | log.Ltime)
	option, err := infra.InitConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := logging.NewLogger(&logging.Config{
		FilePath: option.Logging.FilePath,
		Level:    option.Logging.Level,
		AppID:    option.AppID,
		Env:      option.Env,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %s\n", err)
	}
	logger = logger.With(
		zap.String("service.id", option.AppID),
	)
	defer logger.Sync()

	dbConn, err := driver.GetDBConnection(&driver.DBConfig{
		User:     option.Database.User,
		Password: option.Database.Password,
		MaxConn:  option.Database.MaxConn,
		Protocol: option.Database.Protocol,
		Driver:   option.Database.Driver,
		Host:     option.Database.Host,
		Port:     option.Database.Port,
		Query:    option.Database.Query,
		Schema:   option.Database.Schema,
	})
	if err != nil {
		log.Fatalf("Failed to create DB connection: %s\n", err)
	}
	logger.Debug("Create db connection instance", zap.String("db.driver", option.Database.Driver),
		zap.String("db.schema", option.Database.Schema),
		zap.String("db.host", option.Database.Host),
	)

	rdb := driver.NewRedisClient(option.KVStore.Host, option.KVStore.Port, option.KVStore.Password)

	UUIDGenerator := uuid.NewNanoIDGenerator(option.Security.IDLength)

	UserRepo := user.NewUserRepository(dbConn, UUIDGenerator)
	UserUseCase := user.NewUserUseCase(UserRepo)

	CourseRepo := course.NewCourseRepository(dbConn)
	CourseUseCase := course.NewCourseUseCase(CourseRepo, rdb)

	LessonRepo := lesson.NewLessonRepository(dbConn)
	LessonUseCase := lesson.NewLessonUseCase(LessonRepo)

	PathRepo := path.NewLearningPathRepository(dbConn)
	PathUseCase := path.NewLearningPathUseCase(PathRepo, CourseRepo)

	ProgressRepo := progress.NewProgressRepository(dbConn)
	ProgressUseCase := progress.NewProgressUseCase(ProgressRepo, LessonRepo, UUIDGenerator)

	ihttp.Serve(dbConn, rdb, option,
		UserUseCase, UserRepo,
		CourseUseCase, LessonUseCase, PathUseCase, ProgressUseCase,
		logger)
}
