package company

import (
	"database/sql"
	"strings"
	"time"

	"github.com/segmentio/ksuid"
	"golang.org/x/crypto/bcrypt"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db}
}

// CompanyBySlug looks a tenant up by slug. Slugs are stored lowercased; the
// input is folded before the lookup.
func (r *Repository) CompanyBySlug(slug string) (*Company, error) {
	c := &Company{}
	row := r.db.QueryRow(`SELECT id, slug, name, access_code_hash, created_at FROM company WHERE slug = $1`, strings.ToLower(strings.TrimSpace(slug)))
	if err := row.Scan(&c.ID, &c.Slug, &c.Name, &c.AccessCodeHash, &c.CreatedAt); err != nil {
		return nil, err
	}
	return c, nil
}

// AllSlugs returns every tenant slug, for sitemap generation.
func (r *Repository) AllSlugs() ([]string, error) {
	slugs := []string{}
	rows, err := r.db.Query(`SELECT slug FROM company ORDER BY slug`)
	if err == sql.ErrNoRows {
		return slugs, nil
	}
	if err != nil {
		return slugs, err
	}
	defer rows.Close()
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return slugs, err
		}
		slugs = append(slugs, s)
	}
	return slugs, rows.Err()
}

// SaveCompany inserts a tenant, hashing the given plaintext access code.
// Used by provisioning, not by any public route.
func (r *Repository) SaveCompany(slug, name, accessCode string) (*Company, error) {
	id, err := ksuid.NewRandom()
	if err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(accessCode), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	c := &Company{
		ID:             id.String(),
		Slug:           strings.ToLower(strings.TrimSpace(slug)),
		Name:           name,
		AccessCodeHash: string(hash),
		CreatedAt:      time.Now().UTC(),
	}
	stmt := `INSERT INTO company (id, slug, name, access_code_hash, created_at) VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.db.Exec(stmt, c.ID, c.Slug, c.Name, c.AccessCodeHash, c.CreatedAt); err != nil {
		return nil, err
	}
	return c, nil
}
