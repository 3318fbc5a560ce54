// Command provision creates a tenant: a company row with a bcrypt-hashed
// access code. There is no self-serve sign-up; this is the only way a tenant
// comes into existence.
package main

import (
	"flag"
	"log"

	"github.com/orbit-careers/page-builder/internal/company"
	"github.com/orbit-careers/page-builder/internal/config"
	"github.com/orbit-careers/page-builder/internal/database"
)

func main() {
	var slug, name, accessCode string
	flag.StringVar(&slug, "slug", "", "unique tenant slug, will be lowercased")
	flag.StringVar(&name, "name", "", "company display name")
	flag.StringVar(&accessCode, "access-code", "", "plaintext access code, stored only as a bcrypt hash")
	flag.Parse()
	if slug == "" || name == "" || accessCode == "" {
		log.Fatal("-slug, -name and -access-code are required")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("unable to load config: %+v", err)
	}
	conn, err := database.GetDbConn(
		cfg.DatabaseUser,
		cfg.DatabasePassword,
		cfg.DatabaseHost,
		cfg.DatabasePort,
		cfg.DatabaseName,
		cfg.DatabaseSSLMode,
	)
	if err != nil {
		log.Fatalf("unable to connect to postgres: %v", err)
	}
	defer database.CloseDbConn(conn)

	companyRepo := company.NewRepository(conn)
	c, err := companyRepo.SaveCompany(slug, name, accessCode)
	if err != nil {
		log.Fatalf("unable to provision company: %v", err)
	}
	log.Printf("provisioned company %q with id %s, page at /%s", c.Name, c.ID, c.Slug)
}
