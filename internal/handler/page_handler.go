package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/orbit-careers/page-builder/internal/block"
	"github.com/orbit-careers/page-builder/internal/company"
	"github.com/orbit-careers/page-builder/internal/editor"
	"github.com/orbit-careers/page-builder/internal/job"
	"github.com/orbit-careers/page-builder/internal/middleware"
	"github.com/orbit-careers/page-builder/internal/pageconfig"
	"github.com/orbit-careers/page-builder/internal/render"
	"github.com/orbit-careers/page-builder/internal/server"
)

func pageCacheKey(slug string) string {
	return fmt.Sprintf("page:%s", slug)
}

// publishedPageConfig reads the tenant's page config through the cache.
// Only the published read path is cached; preview always hits postgres.
func publishedPageConfig(svr server.Server, pageConfigRepo *pageconfig.Repository, companyID, slug string) (pageconfig.PageConfig, error) {
	if cached, ok := svr.CacheGet(pageCacheKey(slug)); ok {
		var cfg pageconfig.PageConfig
		if err := json.Unmarshal(cached, &cfg); err == nil {
			return cfg, nil
		}
		_ = svr.CacheDelete(pageCacheKey(slug))
	}
	cfg, err := pageConfigRepo.Get(companyID)
	if err != nil {
		return cfg, err
	}
	if data, err := json.Marshal(cfg); err == nil {
		if err := svr.CacheSet(pageCacheKey(slug), data); err != nil {
			svr.Log(err, fmt.Sprintf("unable to cache page config for %s", slug))
		}
	}
	return cfg, nil
}

// PublicPageHandler renders a tenant's careers page. Anonymous traffic only
// ever sees the published snapshot; ?preview=true serves the draft and
// requires a session for that tenant.
func PublicPageHandler(svr server.Server, companyRepo *company.Repository, pageConfigRepo *pageconfig.Repository, jobRepo *job.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		slug := vars["slug"]
		c, err := companyRepo.CompanyBySlug(slug)
		if err != nil {
			svr.Render(w, http.StatusNotFound, "not-found.html", nil)
			return
		}
		mode := render.ModePublished
		if r.URL.Query().Get("preview") == "true" {
			if !middleware.IsSignedOnFor(r, svr.SessionStore, svr.GetJWTSigningKey(), c.Slug) {
				svr.Redirect(w, r, http.StatusSeeOther, "/login")
				return
			}
			mode = render.ModePreview
		}
		var cfg pageconfig.PageConfig
		if mode == render.ModePreview {
			cfg, err = pageConfigRepo.Get(c.ID)
		} else {
			cfg, err = publishedPageConfig(svr, pageConfigRepo, c.ID, c.Slug)
		}
		if err != nil {
			svr.Log(err, fmt.Sprintf("unable to retrieve page config for %s", c.Slug))
			svr.TEXT(w, http.StatusInternalServerError, "something went wrong")
			return
		}
		jobs, err := jobRepo.JobsByCompanyID(c.ID)
		if err != nil {
			svr.Log(err, fmt.Sprintf("unable to retrieve jobs for %s", c.Slug))
			svr.TEXT(w, http.StatusInternalServerError, "something went wrong")
			return
		}
		filter := render.Filter{
			Search:      r.URL.Query().Get("q"),
			Location:    r.URL.Query().Get("location"),
			SalaryRange: r.URL.Query().Get("salary"),
		}
		page := render.BuildPage(cfg, mode, jobs, filter, time.Now().UTC(), svr.MarkdownToHTML)
		err = svr.Render(w, http.StatusOK, "careers.html", map[string]interface{}{
			"CompanyName": c.Name,
			"CompanySlug": c.Slug,
			"Page":        page,
		})
		if err != nil {
			svr.Log(err, fmt.Sprintf("unable to render careers page for %s", c.Slug))
		}
	}
}

// EditorPageHandler renders the editor shell with the tenant's current draft.
func EditorPageHandler(svr server.Server, companyRepo *company.Repository, pageConfigRepo *pageconfig.Repository, jobRepo *job.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := middleware.GetCompanyFromJWT(r, svr.SessionStore, svr.GetJWTSigningKey())
		if err != nil {
			svr.Redirect(w, r, http.StatusSeeOther, "/login")
			return
		}
		c, err := companyRepo.CompanyBySlug(claims.CompanySlug)
		if err != nil {
			svr.Log(err, fmt.Sprintf("unable to retrieve company %s", claims.CompanySlug))
			svr.TEXT(w, http.StatusInternalServerError, "something went wrong")
			return
		}
		cfg, err := pageConfigRepo.Get(c.ID)
		if err != nil {
			svr.Log(err, fmt.Sprintf("unable to retrieve page config for %s", c.Slug))
			svr.TEXT(w, http.StatusInternalServerError, "something went wrong")
			return
		}
		jobs, err := jobRepo.JobsByCompanyID(c.ID)
		if err != nil {
			svr.Log(err, fmt.Sprintf("unable to retrieve jobs for %s", c.Slug))
			svr.TEXT(w, http.StatusInternalServerError, "something went wrong")
			return
		}
		doc := editor.Document{
			BrandColor:        cfg.BrandColor,
			LogoURL:           cfg.LogoURL,
			HeroBackgroundURL: cfg.HeroBackgroundURL,
			Blocks:            cfg.Draft,
		}
		docJSON, err := json.Marshal(doc)
		if err != nil {
			svr.Log(err, "unable to encode editor document")
			svr.TEXT(w, http.StatusInternalServerError, "something went wrong")
			return
		}
		err = svr.Render(w, http.StatusOK, "edit.html", map[string]interface{}{
			"CompanyName":      c.Name,
			"CompanySlug":      c.Slug,
			"DocumentJSON":     string(docJSON),
			"HasPublished":     cfg.HasPublished,
			"Jobs":             jobs,
			"WorkPolicies":     job.WorkPolicies,
			"EmploymentTypes":  job.EmploymentTypes,
			"ExperienceLevels": job.ExperienceLevels,
			"JobTypes":         job.JobTypes,
			"BlockTypes":       block.Types,
		})
		if err != nil {
			svr.Log(err, fmt.Sprintf("unable to render editor page for %s", c.Slug))
		}
	}
}

type saveDraftRs struct {
	Saved  bool               `json:"saved"`
	Errors []block.FieldError `json:"errors,omitempty"`
}

// newDraftSaver builds the tenant's debounced draft persister. The design
// fields (brand color, logo, hero background) have no published slot, so a
// draft save changes what anonymous visitors see and must drop the cached
// page along with the write.
func newDraftSaver(svr server.Server, pageConfigRepo *pageconfig.Repository, companyID, companySlug string) func() *editor.Saver {
	return func() *editor.Saver {
		return editor.NewSaver(
			editor.DefaultDebounce,
			func(d editor.Document) error {
				if err := pageConfigRepo.SaveDraft(companyID, d.BrandColor, d.LogoURL, d.HeroBackgroundURL, d.Blocks); err != nil {
					return err
				}
				_ = svr.CacheDelete(pageCacheKey(companySlug))
				return nil
			},
			func(err error) {
				svr.Log(err, fmt.Sprintf("unable to autosave draft for company %s", companyID))
			},
		)
	}
}

// SaveDraftPageHandler accepts a whole-document draft save. Writes are
// debounced per tenant so a burst of editor keystrokes collapses into a
// single postgres write; ?sync=true flushes before responding. Block
// validation errors are reported but do not block the save, so an
// in-progress edit is never lost.
func SaveDraftPageHandler(svr server.Server, pageConfigRepo *pageconfig.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := middleware.GetCompanyFromJWT(r, svr.SessionStore, svr.GetJWTSigningKey())
		if err != nil {
			svr.JSON(w, http.StatusUnauthorized, nil)
			return
		}
		var doc editor.Document
		if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
			svr.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid document"})
			return
		}
		var fieldErrs []block.FieldError
		for i, b := range doc.Blocks {
			for _, e := range block.Validate(b) {
				fieldErrs = append(fieldErrs, block.FieldError{
					Field:   fmt.Sprintf("config[%d].%s", i, e.Field),
					Message: e.Message,
				})
			}
		}
		companyID := claims.CompanyID
		saver := svr.SaverFor(companyID, newDraftSaver(svr, pageConfigRepo, companyID, claims.CompanySlug))
		saver.Update(doc)
		if r.URL.Query().Get("sync") == "true" {
			if err := saver.Flush(); err != nil {
				svr.Log(err, fmt.Sprintf("unable to save draft for company %s", companyID))
				svr.JSON(w, http.StatusInternalServerError, map[string]string{"error": "unable to save draft"})
				return
			}
			svr.JSON(w, http.StatusOK, saveDraftRs{Saved: true, Errors: fieldErrs})
			return
		}
		svr.JSON(w, http.StatusAccepted, saveDraftRs{Saved: false, Errors: fieldErrs})
	}
}

// PublishPageHandler flushes any pending draft save and snapshots the
// persisted draft into the published slot. Idempotent when nothing changed.
func PublishPageHandler(svr server.Server, pageConfigRepo *pageconfig.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := middleware.GetCompanyFromJWT(r, svr.SessionStore, svr.GetJWTSigningKey())
		if err != nil {
			svr.JSON(w, http.StatusUnauthorized, nil)
			return
		}
		companyID := claims.CompanyID
		saver := svr.SaverFor(companyID, newDraftSaver(svr, pageConfigRepo, companyID, claims.CompanySlug))
		if err := saver.Flush(); err != nil {
			svr.Log(err, fmt.Sprintf("unable to flush draft before publish for company %s", companyID))
			svr.JSON(w, http.StatusInternalServerError, map[string]string{"error": "unable to save draft"})
			return
		}
		if err := pageConfigRepo.Publish(companyID); err != nil {
			svr.Log(err, fmt.Sprintf("unable to publish page for company %s", companyID))
			svr.JSON(w, http.StatusConflict, map[string]string{"error": "nothing to publish"})
			return
		}
		_ = svr.CacheDelete(pageCacheKey(claims.CompanySlug))
		svr.JSON(w, http.StatusOK, map[string]bool{"published": true})
	}
}
