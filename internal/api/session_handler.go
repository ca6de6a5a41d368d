package api

import (
	"net/http"

	"alcyxob/fitness-coach/internal/service"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type SessionHandler struct {
	sessionService service.SessionService
}

func NewSessionHandler(sessionService service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// StartSession godoc
// @Summary Start a coach session
// @Description Opens an in-memory coach session and returns the bearer token that addresses it.
// @Tags Sessions
// @Produce json
// @Success 201 {object} service.SessionToken
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /sessions [post]
func (h *SessionHandler) StartSession(c *gin.Context) {
	token, err := h.sessionService.StartSession(c.Request.Context())
	if err != nil {
		log.Errorf("start session: %v", err)
		abortWithError(c, http.StatusInternalServerError, "Failed to start session.")
		return
	}
	c.JSON(http.StatusCreated, token)
}
