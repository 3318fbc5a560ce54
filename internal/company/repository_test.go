package company_test

import (
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"golang.org/x/crypto/bcrypt"

	"github.com/orbit-careers/page-builder/internal/company"
)

func newRepo(t *testing.T) (*company.Repository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unable to open stub database: %v", err)
	}
	return company.NewRepository(db), mock, db
}

// ── CompanyBySlug ──────────────────────────────────────────────────────────

func TestCompanyBySlug_FoldsSlug(t *testing.T) {
	repo, mock, db := newRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "slug", "name", "access_code_hash", "created_at"}).
		AddRow("c1", "acme", "Acme Inc", "$2a$04$hash", time.Now().UTC())
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, slug, name, access_code_hash, created_at FROM company WHERE slug = $1`)).
		WithArgs("acme").
		WillReturnRows(rows)

	c, err := repo.CompanyBySlug("  ACME ")
	if err != nil {
		t.Fatalf("CompanyBySlug returned unexpected error: %v", err)
	}
	if c.ID != "c1" || c.Slug != "acme" {
		t.Errorf("company = %+v", c)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestCompanyBySlug_UnknownSlug(t *testing.T) {
	repo, mock, db := newRepo(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, slug, name, access_code_hash, created_at FROM company`)).
		WillReturnError(sql.ErrNoRows)

	if _, err := repo.CompanyBySlug("globex"); err != sql.ErrNoRows {
		t.Errorf("err = %v, want sql.ErrNoRows", err)
	}
}

// ── SaveCompany ────────────────────────────────────────────────────────────

func TestSaveCompany_HashesAccessCode(t *testing.T) {
	repo, mock, db := newRepo(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO company (id, slug, name, access_code_hash, created_at) VALUES ($1, $2, $3, $4, $5)`)).
		WithArgs(sqlmock.AnyArg(), "acme", "Acme Inc", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	c, err := repo.SaveCompany(" Acme ", "Acme Inc", "hunter2")
	if err != nil {
		t.Fatalf("SaveCompany returned unexpected error: %v", err)
	}
	if c.ID == "" {
		t.Error("saved company should carry a generated id")
	}
	if c.Slug != "acme" {
		t.Errorf("slug = %q, want acme", c.Slug)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(c.AccessCodeHash), []byte("hunter2")); err != nil {
		t.Errorf("stored hash does not match the access code: %v", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(c.AccessCodeHash), []byte("wrong")) == nil {
		t.Error("stored hash must not match a different access code")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

// ── AllSlugs ───────────────────────────────────────────────────────────────

func TestAllSlugs(t *testing.T) {
	repo, mock, db := newRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"slug"}).AddRow("acme").AddRow("globex")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT slug FROM company ORDER BY slug`)).
		WillReturnRows(rows)

	slugs, err := repo.AllSlugs()
	if err != nil {
		t.Fatalf("AllSlugs returned unexpected error: %v", err)
	}
	if len(slugs) != 2 || slugs[0] != "acme" || slugs[1] != "globex" {
		t.Errorf("slugs = %v", slugs)
	}
}
