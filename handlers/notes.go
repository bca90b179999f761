package handlers

import (
	"net/http"
	"time"

	"club-tracker/config"
	"club-tracker/models"
	"club-tracker/services"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
)

type NoteInput struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
	// Tags is a comma-separated list; entries are trimmed, order kept.
	Tags string `json:"tags"`
}

func GetNotes(c *gin.Context) {
	var notes []models.Note
	if err := config.DB.Order("created_at desc").Find(&notes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notes"})
		return
	}
	c.JSON(http.StatusOK, notes)
}

func AddNote(c *gin.Context) {
	var input NoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	note := models.Note{
		Title:   input.Title,
		Content: input.Content,
		Date:    time.Now(),
		Tags:    services.ParseTags(input.Tags),
	}
	if err := config.DB.Create(&note).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create note"})
		return
	}
	c.JSON(http.StatusCreated, note)
}

type UpdateNoteInput struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Tags    *string `json:"tags"`
}

// UpdateNote applies a partial update. Only fields present in the body
// change; an empty tags string clears the tag list.
func UpdateNote(c *gin.Context) {
	noteID := c.Param("id")

	var input UpdateNoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var note models.Note
	if err := config.DB.First(&note, noteID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
		return
	}

	updates := map[string]interface{}{}
	if input.Title != nil {
		if *input.Title == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Title cannot be empty"})
			return
		}
		updates["title"] = *input.Title
	}
	if input.Content != nil {
		if *input.Content == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Content cannot be empty"})
			return
		}
		updates["content"] = *input.Content
	}
	if input.Tags != nil {
		updates["tags"] = pq.StringArray(services.ParseTags(*input.Tags))
	}

	if len(updates) > 0 {
		if err := config.DB.Model(&note).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update note"})
			return
		}
	}
	c.JSON(http.StatusOK, note)
}

func DeleteNote(c *gin.Context) {
	noteID := c.Param("id")

	var note models.Note
	if err := config.DB.First(&note, noteID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
		return
	}

	if err := config.DB.Delete(&note).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete note"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Note deleted successfully"})
}
