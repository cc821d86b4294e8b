package database

import (
	"fmt"
	"time"

	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/internal/config"
	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/internal/model"
	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Models lists every table the service owns, in migration order.
func Models() []interface{} {
	return []interface{}{
		&model.LevelSubject{},
		&model.LearningObjective{},
		&model.EvaluationResult{},
		&model.EvaluationLink{},
	}
}

func DSN(cfg *config.DatabaseConfig) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=UTC",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)
}

// InitDB opens the MySQL connection. When migrate is set the schema is
// migrated and the default programs are seeded.
func InitDB(cfg *config.DatabaseConfig, debug, migrate bool) (*gorm.DB, error) {
	level := gormlogger.Warn
	if debug {
		level = gormlogger.Info
	}

	db, err := gorm.Open(mysql.Open(DSN(cfg)), &gorm.Config{
		Logger:  gormlogger.Default.LogMode(level),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(time.Hour)

	logger.Log.Info("Database connection established", zap.String("host", cfg.Host), zap.String("db", cfg.DBName))

	if !migrate {
		return db, nil
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	logger.Log.Info("Database migration completed")
	return seedLevelSubjects(db)
}

// DefaultLevelSubjects is the catalog a fresh database starts with.
var DefaultLevelSubjects = []model.LevelSubject{
	{LevelName: "7° Básico", SubjectName: "Matemática"},
	{LevelName: "7° Básico", SubjectName: "Lenguaje y Comunicación"},
	{LevelName: "8° Básico", SubjectName: "Matemática"},
	{LevelName: "8° Básico", SubjectName: "Lenguaje y Comunicación"},
	{LevelName: "1° Medio", SubjectName: "Matemática"},
	{LevelName: "1° Medio", SubjectName: "Lengua y Literatura"},
	{LevelName: "2° Medio", SubjectName: "Matemática"},
	{LevelName: "2° Medio", SubjectName: "Lengua y Literatura"},
}

func seedLevelSubjects(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.LevelSubject{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	rows := make([]model.LevelSubject, len(DefaultLevelSubjects))
	for i, ls := range DefaultLevelSubjects {
		ls.IsActive = true
		rows[i] = ls
	}
	if err := db.Create(&rows).Error; err != nil {
		return fmt.Errorf("seed level subjects: %w", err)
	}
	logger.Log.Info("Seeded default level subjects", zap.Int("count", len(rows)))
	return nil
}
