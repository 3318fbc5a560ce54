package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/feeds"
	"github.com/gorilla/mux"

	"github.com/orbit-careers/page-builder/internal/company"
	"github.com/orbit-careers/page-builder/internal/job"
	"github.com/orbit-careers/page-builder/internal/server"
)

// ServeRSSFeed publishes a tenant's job openings as an RSS feed.
func ServeRSSFeed(svr server.Server, companyRepo *company.Repository, jobRepo *job.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		slug := vars["slug"]
		c, err := companyRepo.CompanyBySlug(slug)
		if err != nil {
			svr.XML(w, http.StatusNotFound, []byte{})
			return
		}
		jobs, err := jobRepo.JobsByCompanyID(c.ID)
		if err != nil {
			svr.Log(err, fmt.Sprintf("unable to retrieve jobs for RSS feed %s", c.Slug))
			svr.XML(w, http.StatusInternalServerError, []byte{})
			return
		}
		cfg := svr.GetConfig()
		base := cfg.URLProtocol + cfg.SiteHost
		now := time.Now()
		feed := &feeds.Feed{
			Title:       fmt.Sprintf("%s Jobs", c.Name),
			Link:        &feeds.Link{Href: fmt.Sprintf("%s/%s", base, c.Slug)},
			Description: fmt.Sprintf("Open positions at %s", c.Name),
			Author:      &feeds.Author{Name: c.Name},
			Created:     now,
		}
		for _, j := range jobs {
			desc := j.Description
			if j.SalaryRange != "" {
				desc = desc + "\n\n**Salary Range:** " + j.SalaryRange
			}
			feed.Items = append(feed.Items, &feeds.Item{
				Title:       fmt.Sprintf("%s - %s", j.Title, j.Location),
				Link:        &feeds.Link{Href: fmt.Sprintf("%s/%s#%s", base, c.Slug, j.JobSlug)},
				Description: string(svr.MarkdownToHTML(desc)),
				Author:      &feeds.Author{Name: c.Name},
				Created:     j.CreatedAt,
			})
		}
		rssFeed, err := feed.ToRss()
		if err != nil {
			svr.Log(err, "unable to convert rss feed to xml")
			svr.XML(w, http.StatusInternalServerError, []byte{})
			return
		}
		svr.XML(w, http.StatusOK, []byte(rssFeed))
	}
}
