package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type widget struct {
	ID       uint `gorm:"primaryKey"`
	Name     string
	Status   string
	IsPublic bool
	Year     int
}

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&widget{}))

	require.NoError(t, db.Create([]widget{
		{Name: "a", Status: "PUBLISHED", IsPublic: true, Year: 2025},
		{Name: "b", Status: "DRAFT", IsPublic: true, Year: 2025},
		{Name: "c", Status: "PUBLISHED", IsPublic: false, Year: 2026},
	}).Error)
	return db
}

func query(params map[string]string) Getter {
	return func(key string, _ ...string) string {
		return params[key]
	}
}

var widgetSpec = Spec{Fields: []Field{
	{Param: "status", Op: EqUpper},
	{Param: "isPublic", Column: "is_public", Op: EqBool, Default: "true"},
	{Param: "year", Op: EqInt},
	{Param: "name", Op: EqFold},
}}

func countWith(t *testing.T, db *gorm.DB, params map[string]string) int64 {
	t.Helper()
	var n int64
	err := db.Model(&widget{}).Scopes(widgetSpec.Scope(query(params))).Count(&n).Error
	require.NoError(t, err)
	return n
}

func TestDefaultApplied(t *testing.T) {
	db := testDB(t)
	// No params: isPublic defaults to true
	assert.EqualValues(t, 2, countWith(t, db, nil))
}

func TestExplicitOverridesDefault(t *testing.T) {
	db := testDB(t)
	assert.EqualValues(t, 1, countWith(t, db, map[string]string{"isPublic": "false"}))
}

func TestEnumParamIsUpperCased(t *testing.T) {
	db := testDB(t)
	assert.EqualValues(t, 1, countWith(t, db, map[string]string{"status": "published"}))
}

func TestBoolParamSpellings(t *testing.T) {
	db := testDB(t)
	// ParseBool spellings are accepted
	assert.EqualValues(t, 1, countWith(t, db, map[string]string{"isPublic": "0"}))
	assert.EqualValues(t, 2, countWith(t, db, map[string]string{"isPublic": "TRUE"}))
	// Unparseable value falls back to the default rather than matching false
	assert.EqualValues(t, 2, countWith(t, db, map[string]string{"isPublic": "maybe"}))
}

func TestIntParam(t *testing.T) {
	db := testDB(t)
	assert.EqualValues(t, 1, countWith(t, db, map[string]string{"isPublic": "false", "year": "2026"}))
	// Non-numeric value is ignored rather than matched
	assert.EqualValues(t, 2, countWith(t, db, map[string]string{"year": "not-a-year"}))
}

func TestFoldParam(t *testing.T) {
	db := testDB(t)
	assert.EqualValues(t, 1, countWith(t, db, map[string]string{"name": "A"}))
}

func TestCombinedParams(t *testing.T) {
	db := testDB(t)
	n := countWith(t, db, map[string]string{"status": "PUBLISHED", "year": "2025"})
	assert.EqualValues(t, 1, n)
}
