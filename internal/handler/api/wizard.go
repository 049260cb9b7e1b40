package api

import (
	"net/http"
	"strconv"

	reqdto "creator-sponsorship/internal/handler/dto/request"
	resdto "creator-sponsorship/internal/handler/dto/response"
	"creator-sponsorship/internal/handler/httperr"
	"creator-sponsorship/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WizardHandler exposes the buyer ordering wizard. Every action answers with
// the full session so clients render from a single source.
type WizardHandler struct {
	cmds commands.WizardCommands
}

func NewWizardHandler(cmds commands.WizardCommands) *WizardHandler {
	return &WizardHandler{cmds: cmds}
}

type sessionAction func(c *gin.Context, id uuid.UUID) (*commands.SessionView, error)

// run parses the session id, runs the action and renders the session.
func (h *WizardHandler) run(c *gin.Context, action sessionAction) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid session id", nil)
		return
	}
	view, err := action(c, id)
	if err != nil {
		httperr.Abort(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSessionView(view))
}

// bind aborts with 400 when the body does not match the request DTO.
func bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return false
	}
	return true
}

// @Summary Start wizard
// @Description Start an ordering session against a creator's price list
// @Tags wizard
// @Produce json
// @Param username path string true "Creator username"
// @Success 201 {object} resdto.SessionResponse
// @Failure 404 {object} map[string]string
// @Router /api/creators/{username}/wizard [post]
func (h *WizardHandler) Start(c *gin.Context) {
	view, err := h.cmds.Start(c.Request.Context(), c.Param("username"))
	if err != nil {
		httperr.Abort(c, err, nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromSessionView(view))
}

// @Summary Get wizard session
// @Tags wizard
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.SessionResponse
// @Failure 404 {object} map[string]string
// @Router /api/wizard/{id} [get]
func (h *WizardHandler) Get(c *gin.Context) {
	h.run(c, func(c *gin.Context, id uuid.UUID) (*commands.SessionView, error) {
		return h.cmds.Get(c.Request.Context(), id)
	})
}

// @Summary Search catalog
// @Description Search for movies and series. A failed lookup is reported as a notice.
// @Tags wizard
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body reqdto.SearchRequest true "Search query"
// @Success 200 {object} resdto.SessionResponse
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/wizard/{id}/search [post]
func (h *WizardHandler) Search(c *gin.Context) {
	var req reqdto.SearchRequest
	if !bind(c, &req) {
		return
	}
	h.run(c, func(c *gin.Context, id uuid.UUID) (*commands.SessionView, error) {
		return h.cmds.Search(c.Request.Context(), id, req.Query)
	})
}

// @Summary Choose content
// @Tags wizard
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body reqdto.SelectContentRequest true "Content from the current results"
// @Success 200 {object} resdto.SessionResponse
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /api/wizard/{id}/select [post]
func (h *WizardHandler) Select(c *gin.Context) {
	var req reqdto.SelectContentRequest
	if !bind(c, &req) {
		return
	}
	h.run(c, func(c *gin.Context, id uuid.UUID) (*commands.SessionView, error) {
		return h.cmds.Choose(c.Request.Context(), id, req.ContentID)
	})
}

// @Summary View season
// @Tags wizard
// @Produce json
// @Param id path string true "Session ID"
// @Param season path int true "Season number"
// @Success 200 {object} resdto.SessionResponse
// @Failure 422 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /api/wizard/{id}/seasons/{season} [post]
func (h *WizardHandler) ViewSeason(c *gin.Context) {
	season, err := strconv.Atoi(c.Param("season"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid season", nil)
		return
	}
	h.run(c, func(c *gin.Context, id uuid.UUID) (*commands.SessionView, error) {
		return h.cmds.ViewSeason(c.Request.Context(), id, season)
	})
}

// @Summary Toggle episode
// @Tags wizard
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body reqdto.ToggleEpisodeRequest true "Episode"
// @Success 200 {object} resdto.SessionResponse
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/wizard/{id}/episodes/toggle [post]
func (h *WizardHandler) ToggleEpisode(c *gin.Context) {
	var req reqdto.ToggleEpisodeRequest
	if !bind(c, &req) {
		return
	}
	h.run(c, func(c *gin.Context, id uuid.UUID) (*commands.SessionView, error) {
		return h.cmds.ToggleEpisode(c.Request.Context(), id, req.Key())
	})
}

// @Summary Select all available episodes of the viewed season
// @Tags wizard
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.SessionResponse
// @Router /api/wizard/{id}/episodes/select-all [post]
func (h *WizardHandler) SelectAll(c *gin.Context) {
	h.run(c, func(c *gin.Context, id uuid.UUID) (*commands.SessionView, error) {
		return h.cmds.SelectAllAvailable(c.Request.Context(), id)
	})
}

// @Summary Toggle priority
// @Description Toggle priority for the movie (empty body) or one selected episode
// @Tags wizard
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body reqdto.TogglePriorityRequest false "Episode"
// @Success 200 {object} resdto.SessionResponse
// @Failure 409 {object} map[string]string
// @Router /api/wizard/{id}/priority [post]
func (h *WizardHandler) TogglePriority(c *gin.Context) {
	var req reqdto.TogglePriorityRequest
	if c.Request.ContentLength != 0 && !bind(c, &req) {
		return
	}
	h.run(c, func(c *gin.Context, id uuid.UUID) (*commands.SessionView, error) {
		return h.cmds.TogglePriority(c.Request.Context(), id, req.Key())
	})
}

// @Summary Enter buyer details
// @Tags wizard
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body reqdto.BuyerRequest true "Buyer"
// @Success 200 {object} resdto.SessionResponse
// @Router /api/wizard/{id}/buyer [put]
func (h *WizardHandler) SetBuyer(c *gin.Context) {
	var req reqdto.BuyerRequest
	if !bind(c, &req) {
		return
	}
	h.run(c, func(c *gin.Context, id uuid.UUID) (*commands.SessionView, error) {
		return h.cmds.SetBuyer(c.Request.Context(), id, req.ToForm())
	})
}

// @Summary Enter message for the creator
// @Tags wizard
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body reqdto.MessageRequest true "Message"
// @Success 200 {object} resdto.SessionResponse
// @Router /api/wizard/{id}/message [put]
func (h *WizardHandler) SetMessage(c *gin.Context) {
	var req reqdto.MessageRequest
	if !bind(c, &req) {
		return
	}
	h.run(c, func(c *gin.Context, id uuid.UUID) (*commands.SessionView, error) {
		return h.cmds.SetMessage(c.Request.Context(), id, req.Message)
	})
}

// @Summary Next step
// @Tags wizard
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.SessionResponse
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/wizard/{id}/next [post]
func (h *WizardHandler) Next(c *gin.Context) {
	h.run(c, func(c *gin.Context, id uuid.UUID) (*commands.SessionView, error) {
		return h.cmds.Next(c.Request.Context(), id)
	})
}

// @Summary Previous step
// @Tags wizard
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.SessionResponse
// @Router /api/wizard/{id}/back [post]
func (h *WizardHandler) Back(c *gin.Context) {
	h.run(c, func(c *gin.Context, id uuid.UUID) (*commands.SessionView, error) {
		return h.cmds.Back(c.Request.Context(), id)
	})
}

// @Summary Restart from search
// @Tags wizard
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.SessionResponse
// @Router /api/wizard/{id}/restart [post]
func (h *WizardHandler) Restart(c *gin.Context) {
	h.run(c, func(c *gin.Context, id uuid.UUID) (*commands.SessionView, error) {
		return h.cmds.Restart(c.Request.Context(), id)
	})
}

// @Summary Cancel wizard
// @Description Resets an open session to the search step. A confirmed session is closed.
// @Tags wizard
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.SessionResponse
// @Router /api/wizard/{id} [delete]
func (h *WizardHandler) Cancel(c *gin.Context) {
	h.run(c, func(c *gin.Context, id uuid.UUID) (*commands.SessionView, error) {
		return h.cmds.Cancel(c.Request.Context(), id)
	})
}

// @Summary Submit order
// @Description Place the order from the summary step. Repeating the call returns the same order.
// @Tags wizard
// @Produce json
// @Param id path string true "Session ID"
// @Success 201 {object} resdto.SubmitResponse
// @Success 200 {object} resdto.SubmitResponse
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/wizard/{id}/submit [post]
func (h *WizardHandler) Submit(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid session id", nil)
		return
	}
	result, err := h.cmds.Submit(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err, nil)
		return
	}
	status := http.StatusCreated
	if result.IsReplayed || result.Order == nil {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromSubmitResult(result))
}
