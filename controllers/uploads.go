package controllers

import (
	"net/http"

	"listora/models"
	"listora/store"
	"listora/tools"
	"listora/workers"

	"github.com/gin-gonic/gin"
)

type UploadRequest struct {
	Title    string           `json:"title" form:"title"`
	Subtitle string           `json:"subtitle" form:"subtitle"`
	FileName string           `json:"fileName" form:"fileName"`
	Size     string           `json:"size" form:"size"`
	Type     models.AssetType `json:"type" form:"type"`
}

// POST /api/assets/:category/upload
// Registers an uploaded file's metadata. The asset appears immediately
// with processing=true; the upload worker clears the flag once the
// processing delay resolves.
func UploadAsset(c *gin.Context) {
	category, ok := ParamCategory(c)
	if !ok {
		return
	}

	var req UploadRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if req.FileName == "" {
		RespondError(c, "fileName is required", http.StatusBadRequest)
		return
	}
	if req.Title == "" {
		req.Title = req.FileName
	}
	if req.Type == "" {
		req.Type = models.AssetTypePDF
	}

	asset := models.Asset{
		Type:       req.Type,
		Title:      req.Title,
		Subtitle:   req.Subtitle,
		Source:     models.SourceUpload,
		FileName:   req.FileName,
		Size:       req.Size,
		Processing: true,
	}
	if err := tools.ValidateAsset(&asset); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	s, ok := StoreInstance(c)
	if !ok {
		return
	}

	created, result, err := s.AddAsset(category, asset)
	if err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}
	if result == store.AddDuplicate {
		RespondSuccess(c, gin.H{"status": "duplicate", "asset": created})
		return
	}

	if uploads := workers.UploadsInstance(c); uploads != nil {
		uploads.Enqueue(category, created.ID)
	}

	RespondSuccess(c, gin.H{"status": "processing", "asset": created})
}
