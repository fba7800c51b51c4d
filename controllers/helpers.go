package controllers

import (
	"net/http"

	"listora/models"
	"listora/store"

	"github.com/gin-gonic/gin"
)

func ParamCategory(c *gin.Context) (models.Category, bool) {
	category := models.Category(c.Param("category"))
	if !category.Valid() {
		RespondError(c, "unknown category", http.StatusBadRequest)
		return "", false
	}
	return category, true
}

func ParamSection(c *gin.Context) (models.SettingsSection, bool) {
	section := models.SettingsSection(c.Param("section"))
	if !section.Valid() {
		RespondError(c, "unknown settings section", http.StatusBadRequest)
		return "", false
	}
	return section, true
}

func StoreInstance(c *gin.Context) (*store.Store, bool) {
	s := store.Instance(c)
	if s == nil {
		RespondError(c, "store not configured in context", http.StatusInternalServerError)
		return nil, false
	}
	return s, true
}
