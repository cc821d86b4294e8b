package database

import (
	"testing"

	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/internal/config"
	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	dsn := DSN(&config.DatabaseConfig{
		Host: "db", Port: 3306, User: "barkley", Password: "secret",
		DBName: "calendar", Charset: "utf8mb4", ParseTime: true,
	})
	assert.Equal(t, "barkley:secret@tcp(db:3306)/calendar?charset=utf8mb4&parseTime=true&loc=UTC", dsn)
}

func TestModels(t *testing.T) {
	models := Models()
	assert.Len(t, models, 4)
	assert.IsType(t, &model.LevelSubject{}, models[0])
}

func TestDefaultLevelSubjectsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, ls := range DefaultLevelSubjects {
		key := ls.LevelName + "/" + ls.SubjectName
		assert.False(t, seen[key], key)
		seen[key] = true
	}
}
