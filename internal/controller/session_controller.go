package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
	"github.com/lshigami/InterviewBuddy/internal/dto"
	"github.com/lshigami/InterviewBuddy/internal/model"
	"github.com/lshigami/InterviewBuddy/internal/repository"
	"github.com/lshigami/InterviewBuddy/internal/service"
	"github.com/rs/zerolog/log"
)

type SessionController struct {
	sessionService service.SessionService
	exportService  service.ExportService
}

func NewSessionController(sessionService service.SessionService, exportService service.ExportService) *SessionController {
	return &SessionController{
		sessionService: sessionService,
		exportService:  exportService,
	}
}

// respondError maps service errors to HTTP statuses.
func respondError(ctx *gin.Context, err error) {
	var validationErr *service.ValidationError
	switch {
	case errors.Is(err, repository.ErrSessionNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Session not found"})
	case errors.Is(err, service.ErrInvalidTransition):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrNoCurrentQuestion):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: "No current question; answer submission is disabled"})
	case errors.As(err, &validationErr):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: validationErr.Reason})
	default:
		log.Error().Err(err).Msg("Unhandled service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error"})
	}
}

func sessionToDTO(session *model.Session) (*dto.SessionDTO, error) {
	var resp dto.SessionDTO
	if err := copier.Copy(&resp, session); err != nil {
		return nil, err
	}
	if q := session.CurrentQuestion(); q != nil {
		var qd dto.QuestionDTO
		if err := copier.Copy(&qd, q); err != nil {
			return nil, err
		}
		resp.CurrentQuestion = &qd
	}
	return &resp, nil
}

func (c *SessionController) respondSession(ctx *gin.Context, status int, session *model.Session) {
	resp, err := sessionToDTO(session)
	if err != nil {
		log.Error().Err(err).Msg("Failed to copy session to DTO")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Error preparing session response"})
		return
	}
	ctx.JSON(status, resp)
}

// CreateSession godoc
// @Summary Create a new interview session
// @Description Creates a session in the setup step with default settings.
// @Tags Sessions
// @Produce json
// @Success 201 {object} dto.SessionDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /sessions [post]
func (c *SessionController) CreateSession(ctx *gin.Context) {
	session, err := c.sessionService.Create()
	if err != nil {
		respondError(ctx, err)
		return
	}
	c.respondSession(ctx, http.StatusCreated, session)
}

// GetSession godoc
// @Summary Get a session snapshot
// @Tags Sessions
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.SessionDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /sessions/{session_id} [get]
func (c *SessionController) GetSession(ctx *gin.Context) {
	session, err := c.sessionService.Get(ctx.Param("session_id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	c.respondSession(ctx, http.StatusOK, session)
}

// Setup godoc
// @Summary Confirm interview settings
// @Description Validates role, mode and question count (3-6) and moves the session to the interviewer step.
// @Tags Sessions
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param settings body dto.SetupRequest true "Interview settings"
// @Success 200 {object} dto.SessionDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Session is not in the setup step"
// @Router /sessions/{session_id}/setup [post]
func (c *SessionController) Setup(ctx *gin.Context) {
	var req dto.SetupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	session, err := c.sessionService.Setup(ctx.Param("session_id"), req.Role, req.Domain, model.Mode(req.Mode), req.QuestionCount)
	if err != nil {
		respondError(ctx, err)
		return
	}
	c.respondSession(ctx, http.StatusOK, session)
}

// GetInterviewer godoc
// @Summary Preview the interviewer persona and ground rules
// @Tags Sessions
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.InterviewerPreviewDTO
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /sessions/{session_id}/interviewer [get]
func (c *SessionController) GetInterviewer(ctx *gin.Context) {
	preview, err := c.sessionService.InterviewerPreview(ctx.Param("session_id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	var resp dto.InterviewerPreviewDTO
	if err := copier.Copy(&resp, preview); err != nil {
		log.Error().Err(err).Msg("Failed to copy interviewer preview to DTO")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Error preparing preview response"})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Back godoc
// @Summary Return from the interviewer preview to setup
// @Tags Sessions
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.SessionDTO
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /sessions/{session_id}/back [post]
func (c *SessionController) Back(ctx *gin.Context) {
	session, err := c.sessionService.Back(ctx.Param("session_id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	c.respondSession(ctx, http.StatusOK, session)
}

// Start godoc
// @Summary Start the interview
// @Description Generates the question list, resets history and transcript, and asks the first question.
// @Tags Sessions
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.SessionDTO
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /sessions/{session_id}/start [post]
func (c *SessionController) Start(ctx *gin.Context) {
	session, err := c.sessionService.Start(ctx.Request.Context(), ctx.Param("session_id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	c.respondSession(ctx, http.StatusOK, session)
}

// SubmitAnswer godoc
// @Summary Submit an answer to the current question
// @Description Scores the answer, records it, and advances to the next question or to the summary.
// @Tags Sessions
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param answer body dto.AnswerRequest true "Free-text answer"
// @Success 200 {object} dto.AnswerOutcomeDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Not interviewing, or no current question"
// @Router /sessions/{session_id}/answers [post]
func (c *SessionController) SubmitAnswer(ctx *gin.Context) {
	var req dto.AnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	outcome, err := c.sessionService.Answer(ctx.Request.Context(), ctx.Param("session_id"), req.Answer)
	if err != nil {
		respondError(ctx, err)
		return
	}
	c.respondOutcome(ctx, outcome)
}

// Skip godoc
// @Summary Skip the current question
// @Description Records a zero-score row for the current question and advances without evaluation.
// @Tags Sessions
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.AnswerOutcomeDTO
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /sessions/{session_id}/skip [post]
func (c *SessionController) Skip(ctx *gin.Context) {
	outcome, err := c.sessionService.Skip(ctx.Param("session_id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	c.respondOutcome(ctx, outcome)
}

func (c *SessionController) respondOutcome(ctx *gin.Context, outcome *service.AnswerOutcome) {
	var resp dto.AnswerOutcomeDTO
	if err := copier.Copy(&resp, outcome); err != nil {
		log.Error().Err(err).Msg("Failed to copy answer outcome to DTO")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Error preparing answer response"})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// End godoc
// @Summary End the interview early
// @Description Moves to the summary immediately; unanswered questions are not penalized.
// @Tags Sessions
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.SessionDTO
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /sessions/{session_id}/end [post]
func (c *SessionController) End(ctx *gin.Context) {
	session, err := c.sessionService.End(ctx.Param("session_id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	c.respondSession(ctx, http.StatusOK, session)
}

// GetSummary godoc
// @Summary Get the session summary
// @Description Computes the summary on first call and serves the cached copy afterwards.
// @Tags Sessions
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.SummaryDTO
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Interview not finished"
// @Router /sessions/{session_id}/summary [get]
func (c *SessionController) GetSummary(ctx *gin.Context) {
	summary, err := c.sessionService.Summary(ctx.Request.Context(), ctx.Param("session_id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	var resp dto.SummaryDTO
	if err := copier.Copy(&resp, summary); err != nil {
		log.Error().Err(err).Msg("Failed to copy summary to DTO")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Error preparing summary response"})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Reset godoc
// @Summary Start a new interview
// @Description Clears all session state back to setup defaults. Only reachable from the summary step.
// @Tags Sessions
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.SessionDTO
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /sessions/{session_id}/reset [post]
func (c *SessionController) Reset(ctx *gin.Context) {
	session, err := c.sessionService.Reset(ctx.Param("session_id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	c.respondSession(ctx, http.StatusOK, session)
}

// ExportJSON godoc
// @Summary Download the session as JSON
// @Tags Exports
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {string} string "interview_session.json"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /sessions/{session_id}/export/json [get]
func (c *SessionController) ExportJSON(ctx *gin.Context) {
	session, summary, err := c.exportableSession(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}
	data, err := c.exportService.JSON(summary, session.Rows)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Header("Content-Disposition", `attachment; filename="interview_session.json"`)
	ctx.Data(http.StatusOK, "application/json", data)
}

// ExportCSV godoc
// @Summary Download the per-question rows as CSV
// @Tags Exports
// @Produce text/csv
// @Param session_id path string true "Session ID"
// @Success 200 {string} string "interview_session.csv"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /sessions/{session_id}/export/csv [get]
func (c *SessionController) ExportCSV(ctx *gin.Context) {
	session, _, err := c.exportableSession(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}
	data, err := c.exportService.CSV(session.Rows)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Header("Content-Disposition", `attachment; filename="interview_session.csv"`)
	ctx.Data(http.StatusOK, "text/csv", data)
}

// ExportPDF godoc
// @Summary Download the summary report as PDF
// @Description Returns 501 with a hint when the PDF renderer is unavailable.
// @Tags Exports
// @Produce application/pdf
// @Param session_id path string true "Session ID"
// @Success 200 {string} string "interview_summary.pdf"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 501 {object} dto.ErrorResponse "PDF export unavailable"
// @Router /sessions/{session_id}/export/pdf [get]
func (c *SessionController) ExportPDF(ctx *gin.Context) {
	if !c.exportService.PDFAvailable() {
		ctx.JSON(http.StatusNotImplemented, dto.ErrorResponse{Message: "PDF export is unavailable in this build"})
		return
	}
	session, summary, err := c.exportableSession(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}
	data, err := c.exportService.PDF(summary, session.Rows)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Header("Content-Disposition", `attachment; filename="interview_summary.pdf"`)
	ctx.Data(http.StatusOK, "application/pdf", data)
}

// exportableSession loads the session and its (cached) summary; exports are
// only offered once the interview reached the summary step.
func (c *SessionController) exportableSession(ctx *gin.Context) (*model.Session, *model.Summary, error) {
	id := ctx.Param("session_id")
	summary, err := c.sessionService.Summary(ctx.Request.Context(), id)
	if err != nil {
		return nil, nil, err
	}
	session, err := c.sessionService.Get(id)
	if err != nil {
		return nil, nil, err
	}
	return session, summary, nil
}
