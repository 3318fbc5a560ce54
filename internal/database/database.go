package database

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// Table Structure:
//
// CREATE TABLE IF NOT EXISTS company (
// 	id CHAR(27) NOT NULL UNIQUE,
// 	slug VARCHAR(64) NOT NULL UNIQUE,
// 	name VARCHAR(255) NOT NULL,
// 	access_code_hash VARCHAR(60) NOT NULL,
// 	created_at TIMESTAMP NOT NULL,
// 	PRIMARY KEY(id)
// );
//
// CREATE TABLE IF NOT EXISTS page_config (
// 	company_id CHAR(27) NOT NULL UNIQUE REFERENCES company (id),
// 	brand_color VARCHAR(32) NOT NULL DEFAULT '#3b82f6',
// 	logo_url TEXT,
// 	hero_background_url TEXT,
// 	config JSONB NOT NULL DEFAULT '[]',
// 	published_config JSONB,
// 	updated_at TIMESTAMP NOT NULL,
// 	PRIMARY KEY(company_id)
// );
//
// CREATE TABLE IF NOT EXISTS job (
// 	id CHAR(27) NOT NULL UNIQUE,
// 	company_id CHAR(27) NOT NULL REFERENCES company (id),
// 	title VARCHAR(255) NOT NULL,
// 	location VARCHAR(255) NOT NULL,
// 	work_policy VARCHAR(32) NOT NULL,
// 	department VARCHAR(255) NOT NULL,
// 	employment_type VARCHAR(32) NOT NULL,
// 	experience_level VARCHAR(32) NOT NULL,
// 	job_type VARCHAR(32) NOT NULL,
// 	salary_range VARCHAR(255),
// 	job_slug VARCHAR(255) NOT NULL,
// 	description TEXT,
// 	created_at TIMESTAMP NOT NULL,
// 	PRIMARY KEY(id)
// );
// CREATE INDEX job_company_id_idx on job (company_id);
//
// CREATE TABLE IF NOT EXISTS image (
// 	id CHAR(27) NOT NULL UNIQUE,
// 	key VARCHAR(255) NOT NULL UNIQUE,
// 	media_type VARCHAR(100) NOT NULL,
// 	bytes BYTEA NOT NULL,
// 	created_at TIMESTAMP NOT NULL,
// 	PRIMARY KEY(id)
// )

// GetDbConn tries to establish a connection to postgres and returns the connection handler
func GetDbConn(user, password, host, port, name, sslmode string) (*sql.DB, error) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		user,
		password,
		host,
		port,
		name,
		sslmode,
	)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

// CloseDbConn closes db conn
func CloseDbConn(conn *sql.DB) {
	conn.Close()
}
