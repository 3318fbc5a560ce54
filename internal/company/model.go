package company

import (
	"time"
)

// Company is a tenant: identified by a unique lowercased slug, owning one
// page config and a set of jobs. The access code is stored as a bcrypt hash
// and never read back in plaintext.
type Company struct {
	ID             string
	Slug           string
	Name           string
	AccessCodeHash string
	CreatedAt      time.Time
}
