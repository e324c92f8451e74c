package handlers

import (
	"errors"
	"net/http"

	"github.com/Aruntata-2001/task-manager/internal/auth"
	"github.com/Aruntata-2001/task-manager/internal/dto"
	"github.com/Aruntata-2001/task-manager/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserTextHandler handles saving and listing free-text notes.
type UserTextHandler struct {
	svc *service.UserTextService
	log *zap.Logger
}

func NewUserTextHandler(svc *service.UserTextService, log *zap.Logger) *UserTextHandler {
	return &UserTextHandler{svc: svc, log: log}
}

// Save godoc
// @Summary      Save a text note
// @Tags         text
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.SaveTextRequest  true  "Note body"
// @Success      201   {object}  dto.SaveTextResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /text/save [post]
func (h *UserTextHandler) Save(c *gin.Context) {
	var req dto.SaveTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	t, err := h.svc.Save(c.Request.Context(), auth.UserIDFromContext(c), req.Text)
	if err != nil {
		if errors.Is(err, service.ErrEmptyText) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		h.log.Error("save text failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error saving text"})
		return
	}
	c.JSON(http.StatusCreated, dto.SaveTextResponse{
		Message:  "Text saved successfully",
		UserText: dto.UserTextToResponse(t),
	})
}

// List godoc
// @Summary      List the caller's text notes
// @Tags         text
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.UserTextResponse
// @Failure      401  {object}  map[string]string
// @Router       /text/texts [get]
func (h *UserTextHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context(), auth.UserIDFromContext(c))
	if err != nil {
		h.log.Error("list texts failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching texts"})
		return
	}
	c.JSON(http.StatusOK, dto.UserTextsToResponses(list))
}
