package handler

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/orbit-careers/page-builder/internal/job"
	"github.com/orbit-careers/page-builder/internal/middleware"
	"github.com/orbit-careers/page-builder/internal/server"
)

// ListJobsHandler returns the tenant's jobs, newest first.
func ListJobsHandler(svr server.Server, jobRepo *job.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := middleware.GetCompanyFromJWT(r, svr.SessionStore, svr.GetJWTSigningKey())
		if err != nil {
			svr.JSON(w, http.StatusUnauthorized, nil)
			return
		}
		jobs, err := jobRepo.JobsByCompanyID(claims.CompanyID)
		if err != nil {
			svr.Log(err, fmt.Sprintf("unable to retrieve jobs for company %s", claims.CompanyID))
			svr.JSON(w, http.StatusInternalServerError, nil)
			return
		}
		svr.JSON(w, http.StatusOK, map[string]interface{}{"jobs": jobs})
	}
}

// CreateJobHandler validates and inserts a job posting. Invalid requests get
// the full per-field error list in one round trip.
func CreateJobHandler(svr server.Server, jobRepo *job.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := middleware.GetCompanyFromJWT(r, svr.SessionStore, svr.GetJWTSigningKey())
		if err != nil {
			svr.JSON(w, http.StatusUnauthorized, nil)
			return
		}
		var rq job.JobRq
		if err := json.NewDecoder(r.Body).Decode(&rq); err != nil {
			svr.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request"})
			return
		}
		if errs := rq.Validate(); len(errs) > 0 {
			svr.JSON(w, http.StatusUnprocessableEntity, map[string]interface{}{"errors": errs})
			return
		}
		j, err := jobRepo.SaveJob(claims.CompanyID, rq)
		if err != nil {
			svr.Log(err, fmt.Sprintf("unable to save job for company %s", claims.CompanyID))
			svr.JSON(w, http.StatusInternalServerError, nil)
			return
		}
		svr.JSON(w, http.StatusCreated, j)
	}
}

// DeleteJobHandler removes one of the tenant's jobs.
func DeleteJobHandler(svr server.Server, jobRepo *job.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := middleware.GetCompanyFromJWT(r, svr.SessionStore, svr.GetJWTSigningKey())
		if err != nil {
			svr.JSON(w, http.StatusUnauthorized, nil)
			return
		}
		vars := mux.Vars(r)
		jobID := vars["id"]
		if err := jobRepo.DeleteJob(claims.CompanyID, jobID); err != nil {
			if err == sql.ErrNoRows {
				svr.JSON(w, http.StatusNotFound, nil)
				return
			}
			svr.Log(err, fmt.Sprintf("unable to delete job %s for company %s", jobID, claims.CompanyID))
			svr.JSON(w, http.StatusInternalServerError, nil)
			return
		}
		svr.JSON(w, http.StatusNoContent, nil)
	}
}
