package handler

import (
	"fmt"
	"net/http"
	"time"

	jwt "github.com/dgrijalva/jwt-go"

	"github.com/orbit-careers/page-builder/internal/authoriser"
	"github.com/orbit-careers/page-builder/internal/middleware"
	"github.com/orbit-careers/page-builder/internal/server"
)

func GetLoginPageHandler(svr server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svr.Render(w, http.StatusOK, "login.html", nil); err != nil {
			svr.Log(err, "unable to render login page")
		}
	}
}

// PostAuthPageHandler checks the slug and access code and, on success, mints
// a signed session scoped to that tenant and sends the browser to its
// editor. All failures render the same generic error.
func PostAuthPageHandler(svr server.Server, auth authoriser.Authoriser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			svr.TEXT(w, http.StatusBadRequest, "invalid form")
			return
		}
		rq := authoriser.AuthRq{
			Slug:       r.PostFormValue("slug"),
			AccessCode: r.PostFormValue("access_code"),
		}
		c, err := auth.Authenticate(rq)
		if err != nil {
			svr.Render(w, http.StatusUnauthorized, "login.html", map[string]interface{}{
				"Error": "Invalid company or access code",
				"Slug":  rq.Slug,
			})
			return
		}
		sess, err := svr.SessionStore.Get(r, middleware.SessionName)
		if err != nil {
			svr.Log(err, "unable to retrieve session cookie")
			svr.TEXT(w, http.StatusInternalServerError, "unable to sign on")
			return
		}
		stdClaims := &jwt.StandardClaims{
			ExpiresAt: time.Now().Add(30 * 24 * time.Hour).UTC().Unix(),
			IssuedAt:  time.Now().UTC().Unix(),
			Issuer:    svr.GetConfig().URLProtocol + svr.GetConfig().SiteHost,
		}
		claims := middleware.CompanyJWT{
			CompanyID:      c.ID,
			CompanySlug:    c.Slug,
			StandardClaims: *stdClaims,
		}
		tkn := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		ss, err := tkn.SignedString(svr.GetJWTSigningKey())
		if err != nil {
			svr.Log(err, "unable to sign session token")
			svr.TEXT(w, http.StatusInternalServerError, "unable to sign on")
			return
		}
		sess.Values["jwt"] = ss
		if err := sess.Save(r, w); err != nil {
			svr.Log(err, "unable to save jwt into session cookie")
			svr.TEXT(w, http.StatusInternalServerError, "unable to sign on")
			return
		}
		svr.Redirect(w, r, http.StatusSeeOther, fmt.Sprintf("/%s/edit", c.Slug))
	}
}

// SignOutPageHandler drops the session token and returns to the login page.
func SignOutPageHandler(svr server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := svr.SessionStore.Get(r, middleware.SessionName)
		if err == nil {
			delete(sess.Values, "jwt")
			sess.Options.MaxAge = -1
			if err := sess.Save(r, w); err != nil {
				svr.Log(err, "unable to expire session cookie")
			}
		}
		svr.Redirect(w, r, http.StatusSeeOther, "/login")
	}
}
