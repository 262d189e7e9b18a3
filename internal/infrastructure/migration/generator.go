package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"planwise/internal/shared/logger"
)

// initialSchemaVersion is the fixed version prefix of the bootstrap migration.
const initialSchemaVersion = "000001"

// Generator creates migration file pairs under the scripts directory.
type Generator struct {
	scriptsPath string
	logger      logger.Interface
}

func NewGenerator(scriptsPath string) *Generator {
	return &Generator{
		scriptsPath: scriptsPath,
		logger:      logger.NewLogger().With("component", "migration.generator"),
	}
}

// CreateMigration writes a timestamped up/down file pair for a new migration.
func (g *Generator) CreateMigration(name string) error {
	g.logger.Infow("creating new migration", "name", name)

	timestamp := time.Now().Format("20060102150405")
	upPath, downPath, err := g.writePair(
		fmt.Sprintf("%s_%s", timestamp, name),
		g.upTemplate(name),
		g.downTemplate(name),
	)
	if err != nil {
		return err
	}

	g.logger.Infow("migration files created",
		"up_file", upPath,
		"down_file", downPath)

	return nil
}

// CreateInitialSchemaMigration writes the versioned bootstrap migration that
// creates the core tables. It refuses to overwrite an existing bootstrap pair
// so a populated scripts directory is never clobbered.
func (g *Generator) CreateInitialSchemaMigration() error {
	g.logger.Infow("creating initial schema migration")

	base := fmt.Sprintf("%s_create_core_tables", initialSchemaVersion)
	upPath := filepath.Join(g.scriptsPath, base+".up.sql")
	if _, err := os.Stat(upPath); err == nil {
		return fmt.Errorf("initial schema migration already exists: %s", upPath)
	}

	upPath, downPath, err := g.writePair(base, initialSchemaUp, initialSchemaDown)
	if err != nil {
		return err
	}

	g.logger.Infow("initial schema migration created",
		"up_file", upPath,
		"down_file", downPath)

	return nil
}

// writePair creates the scripts directory if needed and writes the up and
// down files sharing the given base name.
func (g *Generator) writePair(base, upContent, downContent string) (string, string, error) {
	if err := os.MkdirAll(g.scriptsPath, 0755); err != nil {
		return "", "", fmt.Errorf("failed to create scripts directory: %w", err)
	}

	upPath := filepath.Join(g.scriptsPath, base+".up.sql")
	if err := os.WriteFile(upPath, []byte(upContent), 0644); err != nil {
		return "", "", fmt.Errorf("failed to create up migration file: %w", err)
	}

	downPath := filepath.Join(g.scriptsPath, base+".down.sql")
	if err := os.WriteFile(downPath, []byte(downContent), 0644); err != nil {
		return "", "", fmt.Errorf("failed to create down migration file: %w", err)
	}

	return upPath, downPath, nil
}

func (g *Generator) upTemplate(name string) string {
	return fmt.Sprintf(`-- Migration: %s
-- Created: %s

-- Add your SQL statements here
-- Example:
-- ALTER TABLE allocations ADD COLUMN notes VARCHAR(500);

`, name, time.Now().Format("2006-01-02 15:04:05"))
}

func (g *Generator) downTemplate(name string) string {
	return fmt.Sprintf(`-- Rollback Migration: %s
-- Created: %s

-- Add your rollback SQL statements here
-- Example:
-- ALTER TABLE allocations DROP COLUMN notes;

`, name, time.Now().Format("2006-01-02 15:04:05"))
}

const initialSchemaUp = `CREATE TABLE IF NOT EXISTS resources (
    id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
    name VARCHAR(100) NOT NULL,
    role VARCHAR(100),
    capacity_hours DECIMAL(10,2) NOT NULL,
    department VARCHAR(100),
    location VARCHAR(100),
    created_at DATETIME(3) NULL,
    updated_at DATETIME(3) NULL,
    PRIMARY KEY (id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

CREATE TABLE IF NOT EXISTS resource_skills (
    id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
    resource_id BIGINT UNSIGNED NOT NULL,
    skill_name VARCHAR(100) NOT NULL,
    proficiency_level INT NOT NULL,
    created_at DATETIME(3) NULL,
    PRIMARY KEY (id),
    UNIQUE KEY idx_resource_skill (resource_id, skill_name)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

CREATE TABLE IF NOT EXISTS projects (
    id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
    name VARCHAR(200) NOT NULL,
    description VARCHAR(1000),
    start_date DATETIME(3) NULL,
    end_date DATETIME(3) NULL,
    created_at DATETIME(3) NULL,
    updated_at DATETIME(3) NULL,
    PRIMARY KEY (id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

CREATE TABLE IF NOT EXISTS project_requirements (
    id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
    project_id BIGINT UNSIGNED NOT NULL,
    skill_name VARCHAR(100) NOT NULL,
    required_proficiency INT NOT NULL,
    required_hours DECIMAL(10,2),
    description VARCHAR(500),
    created_at DATETIME(3) NULL,
    PRIMARY KEY (id),
    KEY idx_project_requirements_project_id (project_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

CREATE TABLE IF NOT EXISTS allocations (
    id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
    resource_id BIGINT UNSIGNED NOT NULL,
    project_id BIGINT UNSIGNED NOT NULL,
    allocated_hours DECIMAL(10,2) NOT NULL,
    start_date DATETIME(3) NULL,
    end_date DATETIME(3) NULL,
    created_at DATETIME(3) NULL,
    PRIMARY KEY (id),
    KEY idx_allocations_resource_id (resource_id),
    KEY idx_allocations_project_id (project_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

CREATE TABLE IF NOT EXISTS allocation_scenarios (
    id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
    name VARCHAR(200) NOT NULL,
    description VARCHAR(1000),
    scenario_data JSON,
    metrics JSON,
    created_at DATETIME(3) NULL,
    PRIMARY KEY (id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;
`

const initialSchemaDown = `DROP TABLE IF EXISTS allocation_scenarios;
DROP TABLE IF EXISTS allocations;
DROP TABLE IF EXISTS project_requirements;
DROP TABLE IF EXISTS projects;
DROP TABLE IF EXISTS resource_skills;
DROP TABLE IF EXISTS resources;
`
