package db

import (
	"database/sql"
	"fmt"

	"github.com/apex/log"
)

// InitSchema creates the tables if they don't exist and seeds the
// department catalog.
func InitSchema(db *sql.DB) error {
	log.Info("Initializing database schema...")

	usersTableSQL := `
	CREATE TABLE IF NOT EXISTS users(
		id VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL DEFAULT '',
		name VARCHAR(255) NOT NULL DEFAULT '',
		role ENUM('citizen', 'admin', 'department', 'worker') NOT NULL DEFAULT 'citizen',
		department_id VARCHAR(64) NOT NULL DEFAULT '',
		wallet VARCHAR(64) NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		INDEX email_index (email)
	)`
	if _, err := db.Exec(usersTableSQL); err != nil {
		return fmt.Errorf("failed to create users table: %w", err)
	}
	log.Info("Users table created/verified")

	departmentsTableSQL := `
	CREATE TABLE IF NOT EXISTS departments(
		id VARCHAR(64) NOT NULL,
		name VARCHAR(255) NOT NULL,
		color VARCHAR(16) NOT NULL DEFAULT '',
		icon VARCHAR(64) NOT NULL DEFAULT '',
		PRIMARY KEY (id)
	)`
	if _, err := db.Exec(departmentsTableSQL); err != nil {
		return fmt.Errorf("failed to create departments table: %w", err)
	}
	log.Info("Departments table created/verified")

	departmentCategoriesTableSQL := `
	CREATE TABLE IF NOT EXISTS department_categories(
		category VARCHAR(128) NOT NULL,
		department_id VARCHAR(64) NOT NULL,
		PRIMARY KEY (category),
		INDEX department_id_index (department_id)
	)`
	if _, err := db.Exec(departmentCategoriesTableSQL); err != nil {
		return fmt.Errorf("failed to create department_categories table: %w", err)
	}
	log.Info("Department_categories table created/verified")

	workersTableSQL := `
	CREATE TABLE IF NOT EXISTS workers(
		id VARCHAR(255) NOT NULL,
		name VARCHAR(255) NOT NULL DEFAULT '',
		department_id VARCHAR(64) NOT NULL,
		status ENUM('available', 'busy', 'offline') NOT NULL DEFAULT 'available',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		INDEX department_id_index (department_id)
	)`
	if _, err := db.Exec(workersTableSQL); err != nil {
		return fmt.Errorf("failed to create workers table: %w", err)
	}
	log.Info("Workers table created/verified")

	reportsTableSQL := `
	CREATE TABLE IF NOT EXISTS reports(
		seq BIGINT NOT NULL AUTO_INCREMENT,
		citizen_id VARCHAR(255) NOT NULL,
		category VARCHAR(128) NOT NULL,
		description TEXT,
		location_text VARCHAR(512) NOT NULL DEFAULT '',
		latitude FLOAT NOT NULL DEFAULT 0.0,
		longitude FLOAT NOT NULL DEFAULT 0.0,
		media_url VARCHAR(512) NOT NULL DEFAULT '',
		status ENUM('pending', 'approved', 'assigned', 'in-progress', 'completed', 'rejected') NOT NULL DEFAULT 'pending',
		priority ENUM('low', 'medium', 'high', 'urgent') DEFAULT NULL,
		department_id VARCHAR(64) NOT NULL DEFAULT '',
		suggested_department_id VARCHAR(64) NOT NULL DEFAULT '',
		assigned_worker_id VARCHAR(255) NOT NULL DEFAULT '',
		admin_notes TEXT,
		worker_notes TEXT,
		ts TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		approved_at TIMESTAMP NULL DEFAULT NULL,
		completed_at TIMESTAMP NULL DEFAULT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (seq),
		INDEX status_index (status),
		INDEX department_id_index (department_id),
		INDEX citizen_id_index (citizen_id),
		INDEX assigned_worker_id_index (assigned_worker_id)
	)`
	if _, err := db.Exec(reportsTableSQL); err != nil {
		return fmt.Errorf("failed to create reports table: %w", err)
	}
	log.Info("Reports table created/verified")

	historyTableSQL := `
	CREATE TABLE IF NOT EXISTS report_history(
		seq BIGINT NOT NULL AUTO_INCREMENT,
		report_seq BIGINT NOT NULL,
		action VARCHAR(64) NOT NULL,
		actor_id VARCHAR(255) NOT NULL,
		old_status VARCHAR(32) NOT NULL,
		new_status VARCHAR(32) NOT NULL,
		notes TEXT,
		ts TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (seq),
		INDEX report_seq_index (report_seq)
	)`
	if _, err := db.Exec(historyTableSQL); err != nil {
		return fmt.Errorf("failed to create report_history table: %w", err)
	}
	log.Info("Report_history table created/verified")

	ledgerTableSQL := `
	CREATE TABLE IF NOT EXISTS points_ledger(
		seq BIGINT NOT NULL AUTO_INCREMENT,
		user_id VARCHAR(255) NOT NULL,
		report_seq BIGINT NOT NULL,
		reason VARCHAR(64) NOT NULL,
		points INT NOT NULL,
		ts TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (seq),
		UNIQUE KEY award_once (user_id, report_seq, reason),
		INDEX user_id_index (user_id)
	)`
	if _, err := db.Exec(ledgerTableSQL); err != nil {
		return fmt.Errorf("failed to create points_ledger table: %w", err)
	}
	log.Info("Points_ledger table created/verified")

	if err := seedDepartments(db); err != nil {
		return err
	}

	log.Info("Database schema initialization completed")
	return nil
}

type seedDepartment struct {
	id, name, color, icon string
	categories            []string
}

var seededDepartments = []seedDepartment{
	{"sanitation", "Sanitation Department", "#8B5E3C", "trash", []string{"Garbage on Open Spaces"}},
	{"roads", "Roads Department", "#4A6FA5", "road", []string{"Road Damage", "Pothole"}},
	{"drainage", "Drainage Department", "#2E8B8B", "waves", []string{"Drainage Issues"}},
	{"electricity", "Electricity Department", "#E8A020", "zap", []string{"Street Light Problem"}},
	{"water", "Water Department", "#2D7DD2", "droplet", []string{"Water Leakage"}},
	{"general", "General Services", "#6B7280", "building", nil},
}

func seedDepartments(db *sql.DB) error {
	for _, d := range seededDepartments {
		_, err := db.Exec(`INSERT INTO departments (id, name, color, icon) VALUES (?, ?, ?, ?)
		                   ON DUPLICATE KEY UPDATE name=?, color=?, icon=?`,
			d.id, d.name, d.color, d.icon, d.name, d.color, d.icon)
		if err != nil {
			return fmt.Errorf("failed to seed department %s: %w", d.id, err)
		}
		for _, c := range d.categories {
			_, err := db.Exec(`INSERT INTO department_categories (category, department_id) VALUES (?, ?)
			                   ON DUPLICATE KEY UPDATE department_id=department_id`,
				c, d.id)
			if err != nil {
				return fmt.Errorf("failed to seed category %s: %w", c, err)
			}
		}
	}
	log.Info("Department catalog seeded")
	return nil
}
