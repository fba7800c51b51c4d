package controllers

import (
	"net/http"

	"listora/models"

	"github.com/gin-gonic/gin"
)

// The chat surface itself is a separate collaborator; these endpoints
// only persist its per-category session lists.

// GET /api/chats/:category
func GetChatSessions(c *gin.Context) {
	category, ok := ParamCategory(c)
	if !ok {
		return
	}
	s, ok := StoreInstance(c)
	if !ok {
		return
	}
	RespondSuccess(c, gin.H{"sessions": s.LoadChats(category)})
}

// PUT /api/chats/:category
// Whole-list replace, same write granularity as the asset partitions.
func PutChatSessions(c *gin.Context) {
	category, ok := ParamCategory(c)
	if !ok {
		return
	}

	var sessions []models.ChatSession
	if err := c.Bind(&sessions); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	for _, session := range sessions {
		if session.Title == "" {
			RespondError(c, "session title is required", http.StatusBadRequest)
			return
		}
	}

	s, ok := StoreInstance(c)
	if !ok {
		return
	}
	if err := s.SaveChats(category, sessions); err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}
	RespondSuccess(c, gin.H{"status": "saved", "sessions": sessions})
}
