package controllers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Settings blobs are opaque to the service: stored and returned as-is,
// only checked for being valid JSON on the way in.

// GET /api/settings/:section
func GetSettings(c *gin.Context) {
	section, ok := ParamSection(c)
	if !ok {
		return
	}
	s, ok := StoreInstance(c)
	if !ok {
		return
	}

	blob, found := s.GetSettings(section)
	if !found {
		blob = json.RawMessage("{}")
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", blob)
}

// PUT /api/settings/:section
func PutSettings(c *gin.Context) {
	section, ok := ParamSection(c)
	if !ok {
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		RespondError(c, "failed to read body", http.StatusBadRequest)
		return
	}
	if !json.Valid(body) {
		RespondError(c, "body must be valid json", http.StatusBadRequest)
		return
	}

	s, ok := StoreInstance(c)
	if !ok {
		return
	}
	if err := s.SaveSettings(section, body); err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}
	RespondSuccess(c, gin.H{"status": "saved"})
}
