package migration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_CreateMigration_WritesTimestampedPair(t *testing.T) {
	dir := t.TempDir()
	gen := NewGenerator(filepath.Join(dir, "scripts"))

	err := gen.CreateMigration("add_allocation_notes")
	require.NoError(t, err)

	entries, err := os.ReadDir(filepath.Join(dir, "scripts"))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	var upName, downName string
	for _, e := range entries {
		switch {
		case strings.HasSuffix(e.Name(), ".up.sql"):
			upName = e.Name()
		case strings.HasSuffix(e.Name(), ".down.sql"):
			downName = e.Name()
		}
	}

	require.NotEmpty(t, upName)
	require.NotEmpty(t, downName)
	assert.Contains(t, upName, "_add_allocation_notes.up.sql")
	assert.Contains(t, downName, "_add_allocation_notes.down.sql")
	assert.Equal(t,
		strings.TrimSuffix(upName, ".up.sql"),
		strings.TrimSuffix(downName, ".down.sql"))

	content, err := os.ReadFile(filepath.Join(dir, "scripts", upName))
	require.NoError(t, err)
	assert.Contains(t, string(content), "Migration: add_allocation_notes")
}

func TestGenerator_CreateInitialSchemaMigration_WritesCoreTables(t *testing.T) {
	dir := t.TempDir()
	gen := NewGenerator(dir)

	err := gen.CreateInitialSchemaMigration()
	require.NoError(t, err)

	up, err := os.ReadFile(filepath.Join(dir, "000001_create_core_tables.up.sql"))
	require.NoError(t, err)

	for _, table := range []string{
		"resources",
		"resource_skills",
		"projects",
		"project_requirements",
		"allocations",
		"allocation_scenarios",
	} {
		assert.Contains(t, string(up), "CREATE TABLE IF NOT EXISTS "+table+" (")
	}
	assert.NotContains(t, string(up), "users")

	down, err := os.ReadFile(filepath.Join(dir, "000001_create_core_tables.down.sql"))
	require.NoError(t, err)
	assert.Contains(t, string(down), "DROP TABLE IF EXISTS allocation_scenarios;")
	assert.Contains(t, string(down), "DROP TABLE IF EXISTS resources;")
}

func TestGenerator_CreateInitialSchemaMigration_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	gen := NewGenerator(dir)

	require.NoError(t, gen.CreateInitialSchemaMigration())

	err := gen.CreateInitialSchemaMigration()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}
