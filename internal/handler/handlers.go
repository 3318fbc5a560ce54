package handler

import (
	"net/http"

	"github.com/orbit-careers/page-builder/internal/server"
)

func HealthCheckHandler(svr server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svr.Conn.Ping(); err != nil {
			svr.Log(err, "postgres ping failed")
			svr.TEXT(w, http.StatusServiceUnavailable, "KO")
			return
		}
		svr.TEXT(w, http.StatusOK, "OK")
	}
}

func IndexPageHandler(svr server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svr.Redirect(w, r, http.StatusMovedPermanently, "/login")
	}
}

func RobotsTxtHandler(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, "static/robots.txt")
}
