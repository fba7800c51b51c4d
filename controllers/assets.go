package controllers

import (
	"errors"
	"net/http"

	"listora/models"
	"listora/store"
	"listora/tools"

	"github.com/gin-gonic/gin"
)

// GET /api/assets/:category
// Default view: hidden excluded, pinned first, then newest first.
// ?all=1 returns the raw partition, hidden records included.
func GetAssets(c *gin.Context) {
	category, ok := ParamCategory(c)
	if !ok {
		return
	}
	s, ok := StoreInstance(c)
	if !ok {
		return
	}

	assets := s.LoadPartition(category)
	if c.Query("all") != "1" {
		assets = models.VisibleSorted(assets)
	}
	RespondSuccess(c, gin.H{"assets": assets})
}

// GET /api/assets/:category/:id
func GetAssetByID(c *gin.Context) {
	category, ok := ParamCategory(c)
	if !ok {
		return
	}
	s, ok := StoreInstance(c)
	if !ok {
		return
	}

	id := c.Param("id")
	for _, a := range s.LoadPartition(category) {
		if a.ID == id {
			RespondSuccess(c, gin.H{"asset": a})
			return
		}
	}
	RespondError(c, "asset not found", http.StatusNotFound)
}

// POST /api/assets/:category
// A duplicate prompt title is an informational outcome, not an error:
// the partition is left untouched and status says so.
func CreateAsset(c *gin.Context) {
	category, ok := ParamCategory(c)
	if !ok {
		return
	}

	var asset models.Asset
	if err := c.Bind(&asset); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
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
	RespondSuccess(c, gin.H{"status": "added", "asset": created})
}

// PUT /api/assets/:category/:id
func UpdateAsset(c *gin.Context) {
	category, ok := ParamCategory(c)
	if !ok {
		return
	}

	var patch store.AssetPatch
	if err := c.Bind(&patch); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if patch.Title != nil && *patch.Title == "" {
		RespondError(c, "title is required", http.StatusBadRequest)
		return
	}

	s, ok := StoreInstance(c)
	if !ok {
		return
	}

	asset, changed, err := s.UpdateAsset(category, c.Param("id"), patch)
	if err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}
	if !changed {
		// tolerated: late or duplicate UI events target ids that are gone
		RespondSuccess(c, gin.H{"status": "noop"})
		return
	}
	RespondSuccess(c, gin.H{"status": "updated", "asset": asset})
}

// DELETE /api/assets/:category/:id
func DeleteAsset(c *gin.Context) {
	category, ok := ParamCategory(c)
	if !ok {
		return
	}
	s, ok := StoreInstance(c)
	if !ok {
		return
	}

	if err := s.DeleteAsset(category, c.Param("id")); err != nil {
		if errors.Is(err, store.ErrPartitionUnavailable) {
			RespondError(c, "partition unavailable, deletion abandoned", http.StatusConflict)
			return
		}
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}
	RespondSuccess(c, gin.H{"status": "deleted"})
}

// POST /api/assets/:category/:id/pin
func TogglePin(c *gin.Context) {
	toggleFlag(c, func(s *store.Store, category models.Category, id string) (models.Asset, bool, error) {
		return s.TogglePinned(category, id)
	})
}

// POST /api/assets/:category/:id/hide
func ToggleHide(c *gin.Context) {
	toggleFlag(c, func(s *store.Store, category models.Category, id string) (models.Asset, bool, error) {
		return s.ToggleHidden(category, id)
	})
}

func toggleFlag(c *gin.Context, flip func(*store.Store, models.Category, string) (models.Asset, bool, error)) {
	category, ok := ParamCategory(c)
	if !ok {
		return
	}
	s, ok := StoreInstance(c)
	if !ok {
		return
	}

	asset, changed, err := flip(s, category, c.Param("id"))
	if err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}
	if !changed {
		RespondSuccess(c, gin.H{"status": "noop"})
		return
	}
	RespondSuccess(c, gin.H{"status": "updated", "asset": asset})
}

// GET /api/counts
// Always recomputes from the source partitions; the stored snapshot is
// only a cache for whoever reads the raw key directly.
func GetCounts(c *gin.Context) {
	s, ok := StoreInstance(c)
	if !ok {
		return
	}
	snap, err := s.RecomputeCounts()
	if err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}
	RespondSuccess(c, gin.H{"counts": snap})
}
