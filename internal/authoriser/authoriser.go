// Package authoriser verifies tenant credentials. Access codes are compared
// against a stored bcrypt hash; on success the caller is handed the company
// so it can mint a signed session.
package authoriser

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/orbit-careers/page-builder/internal/company"
)

// ErrInvalidCredentials is deliberately shared between unknown-slug and
// wrong-code failures so the login form cannot be used to enumerate tenants.
var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthRq struct {
	Slug       string `json:"slug"`
	AccessCode string `json:"access_code"`
}

type Authoriser struct {
	companyRepo *company.Repository
}

func NewAuthoriser(companyRepo *company.Repository) Authoriser {
	return Authoriser{companyRepo: companyRepo}
}

// Authenticate resolves the slug and checks the access code against the
// stored hash.
func (a Authoriser) Authenticate(rq AuthRq) (*company.Company, error) {
	if rq.Slug == "" || rq.AccessCode == "" {
		return nil, ErrInvalidCredentials
	}
	c, err := a.companyRepo.CompanyBySlug(rq.Slug)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(c.AccessCodeHash), []byte(rq.AccessCode)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return c, nil
}
