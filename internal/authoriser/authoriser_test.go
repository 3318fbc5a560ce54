package authoriser_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"golang.org/x/crypto/bcrypt"

	"github.com/orbit-careers/page-builder/internal/authoriser"
	"github.com/orbit-careers/page-builder/internal/company"
)

var companyColumns = []string{"id", "slug", "name", "access_code_hash", "created_at"}

func companyRow(t *testing.T, accessCode string) *sqlmock.Rows {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(accessCode), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unable to hash access code: %v", err)
	}
	return sqlmock.NewRows(companyColumns).
		AddRow("c1", "acme", "Acme Inc", string(hash), time.Now().UTC())
}

func newAuthoriser(t *testing.T) (authoriser.Authoriser, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unable to create sqlmock: %v", err)
	}
	auth := authoriser.NewAuthoriser(company.NewRepository(db))
	return auth, mock, func() { db.Close() }
}

// ── Authenticate ───────────────────────────────────────────────────────────

func TestAuthenticate_ValidCredentials(t *testing.T) {
	auth, mock, closeDB := newAuthoriser(t)
	defer closeDB()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, slug, name, access_code_hash, created_at FROM company WHERE slug = $1")).
		WithArgs("acme").
		WillReturnRows(companyRow(t, "open-sesame"))

	c, err := auth.Authenticate(authoriser.AuthRq{Slug: "acme", AccessCode: "open-sesame"})
	if err != nil {
		t.Fatalf("Authenticate returned unexpected error: %v", err)
	}
	if c.ID != "c1" || c.Slug != "acme" {
		t.Errorf("company = %+v", c)
	}
}

func TestAuthenticate_SlugIsCaseFolded(t *testing.T) {
	auth, mock, closeDB := newAuthoriser(t)
	defer closeDB()

	mock.ExpectQuery("SELECT id, slug").
		WithArgs("acme").
		WillReturnRows(companyRow(t, "open-sesame"))

	if _, err := auth.Authenticate(authoriser.AuthRq{Slug: "  ACME ", AccessCode: "open-sesame"}); err != nil {
		t.Errorf("mixed-case padded slug should authenticate, got %v", err)
	}
}

func TestAuthenticate_WrongAccessCode(t *testing.T) {
	auth, mock, closeDB := newAuthoriser(t)
	defer closeDB()

	mock.ExpectQuery("SELECT id, slug").
		WithArgs("acme").
		WillReturnRows(companyRow(t, "open-sesame"))

	_, err := auth.Authenticate(authoriser.AuthRq{Slug: "acme", AccessCode: "wrong"})
	if err != authoriser.ErrInvalidCredentials {
		t.Errorf("wrong code should fail with ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthenticate_UnknownSlugIndistinguishableFromWrongCode(t *testing.T) {
	auth, mock, closeDB := newAuthoriser(t)
	defer closeDB()

	mock.ExpectQuery("SELECT id, slug").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows(companyColumns))

	_, err := auth.Authenticate(authoriser.AuthRq{Slug: "ghost", AccessCode: "whatever"})
	if err != authoriser.ErrInvalidCredentials {
		t.Errorf("unknown slug should fail with the shared ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthenticate_EmptyFieldsShortCircuit(t *testing.T) {
	auth, mock, closeDB := newAuthoriser(t)
	defer closeDB()

	for _, rq := range []authoriser.AuthRq{
		{Slug: "", AccessCode: "code"},
		{Slug: "acme", AccessCode: ""},
		{},
	} {
		if _, err := auth.Authenticate(rq); err != authoriser.ErrInvalidCredentials {
			t.Errorf("Authenticate(%+v) = %v, want ErrInvalidCredentials", rq, err)
		}
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("empty credentials should never hit the database: %v", err)
	}
}
