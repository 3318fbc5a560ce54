package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/orbit-careers/page-builder/internal/media"
	"github.com/orbit-careers/page-builder/internal/server"
)

// SaveMediaPageHandler stores an uploaded image and returns its public URL.
func SaveMediaPageHandler(svr server.Server, mediaRepo *media.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, media.MaxBytes)
		file, header, err := r.FormFile("image")
		if err != nil {
			svr.Log(err, "unable to read media file")
			svr.JSON(w, http.StatusBadRequest, nil)
			return
		}
		defer file.Close()
		fileBytes, err := io.ReadAll(file)
		if err != nil {
			svr.Log(err, "unable to read media file content")
			svr.JSON(w, http.StatusRequestEntityTooLarge, nil)
			return
		}
		contentType := http.DetectContentType(fileBytes)
		if !media.AllowedMediaType(contentType) {
			svr.Log(errors.New("invalid media content type"), fmt.Sprintf("media file %s is not an allowed media type", contentType))
			svr.JSON(w, http.StatusUnsupportedMediaType, nil)
			return
		}
		if header.Size > media.MaxBytes {
			svr.Log(errors.New("media file is too large"), fmt.Sprintf("media file too large: %d > %d", header.Size, media.MaxBytes))
			svr.JSON(w, http.StatusRequestEntityTooLarge, nil)
			return
		}
		img, err := mediaRepo.SaveImage(header.Filename, contentType, fileBytes)
		if err != nil {
			svr.Log(err, "unable to save media file")
			svr.JSON(w, http.StatusInternalServerError, nil)
			return
		}
		cfg := svr.GetConfig()
		svr.JSON(w, http.StatusOK, map[string]string{
			"id":  img.ID,
			"url": fmt.Sprintf("%s%s/x/s/m/%s", cfg.URLProtocol, cfg.SiteHost, img.ID),
		})
	}
}

// RetrieveMediaPageHandler serves a stored image with long-lived caching
// headers. Image IDs are unguessable and content never changes under an ID.
func RetrieveMediaPageHandler(svr server.Server, mediaRepo *media.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		mediaID := vars["id"]
		img, err := mediaRepo.ImageByID(mediaID)
		if err != nil {
			svr.Log(err, fmt.Sprintf("unable to retrieve media by ID: '%s'", mediaID))
			svr.MEDIA(w, http.StatusNotFound, img.Bytes, img.MediaType)
			return
		}
		svr.MEDIA(w, http.StatusOK, img.Bytes, img.MediaType)
	}
}
