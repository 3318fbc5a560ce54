package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/snabb/sitemap"

	"github.com/orbit-careers/page-builder/internal/company"
	"github.com/orbit-careers/page-builder/internal/server"
)

// SitemapHandler lists every tenant's public careers page.
func SitemapHandler(svr server.Server, companyRepo *company.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slugs, err := companyRepo.AllSlugs()
		if err != nil {
			svr.Log(err, "unable to retrieve company slugs for sitemap")
			svr.TEXT(w, http.StatusInternalServerError, "unable to generate sitemap")
			return
		}
		cfg := svr.GetConfig()
		base := cfg.URLProtocol + cfg.SiteHost
		now := time.Now().UTC()
		sitemapFile := sitemap.New()
		for _, s := range slugs {
			sitemapFile.Add(&sitemap.URL{
				Loc:        fmt.Sprintf("%s/%s", base, s),
				LastMod:    &now,
				ChangeFreq: sitemap.Weekly,
			})
		}
		buf := new(bytes.Buffer)
		if _, err := sitemapFile.WriteTo(buf); err != nil {
			svr.Log(err, "unable to write sitemap")
			svr.TEXT(w, http.StatusInternalServerError, "unable to generate sitemap")
			return
		}
		svr.XML(w, http.StatusOK, buf.Bytes())
	}
}
