package pageconfig

import (
	"database/sql"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/orbit-careers/page-builder/internal/block"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db}
}

// Get returns the tenant's page config. A tenant that has never saved gets
// the implicit default config. Malformed stored JSON for either block
// sequence is treated as an empty sequence.
func (r *Repository) Get(companyID string) (PageConfig, error) {
	cfg := PageConfig{
		CompanyID:  companyID,
		BrandColor: DefaultBrandColor,
		Draft:      []block.Block{},
		Published:  []block.Block{},
	}
	var (
		logoURL   sql.NullString
		heroURL   sql.NullString
		draft     []byte
		published []byte
	)
	row := r.db.QueryRow(`SELECT brand_color, logo_url, hero_background_url, config, published_config FROM page_config WHERE company_id = $1`, companyID)
	err := row.Scan(&cfg.BrandColor, &logoURL, &heroURL, &draft, &published)
	if err == sql.ErrNoRows {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrap(err, "unable to retrieve page config")
	}
	cfg.LogoURL = logoURL.String
	cfg.HeroBackgroundURL = heroURL.String
	cfg.Draft = block.ParseSequence(draft)
	if published != nil {
		cfg.HasPublished = true
		cfg.Published = block.ParseSequence(published)
	}
	return cfg, nil
}

// SaveDraft overwrites the tenant's draft document wholesale. Last write
// wins; there is no optimistic-concurrency token.
func (r *Repository) SaveDraft(companyID, brandColor, logoURL, heroBackgroundURL string, blocks []block.Block) error {
	if blocks == nil {
		blocks = []block.Block{}
	}
	config, err := json.Marshal(blocks)
	if err != nil {
		return errors.Wrap(err, "unable to encode block sequence")
	}
	stmt := `INSERT INTO page_config (company_id, brand_color, logo_url, hero_background_url, config, updated_at)
	VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, NOW())
	ON CONFLICT (company_id)
	DO UPDATE SET brand_color = $2, logo_url = NULLIF($3, ''), hero_background_url = NULLIF($4, ''), config = $5, updated_at = NOW()`
	_, err = r.db.Exec(stmt, companyID, brandColor, logoURL, heroBackgroundURL, config)
	return err
}

// Publish snapshots the persisted draft into the published slot. Publishing
// twice with no intervening edits produces identical published state.
func (r *Repository) Publish(companyID string) error {
	res, err := r.db.Exec(`UPDATE page_config SET published_config = config, updated_at = NOW() WHERE company_id = $1`, companyID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.New("no draft to publish")
	}
	return nil
}
