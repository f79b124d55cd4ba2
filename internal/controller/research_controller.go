package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/InterviewBuddy/internal/dto"
	"github.com/lshigami/InterviewBuddy/internal/service"
)

type ResearchController struct {
	researchService service.ResearchService
}

func NewResearchController(researchService service.ResearchService) *ResearchController {
	return &ResearchController{researchService: researchService}
}

// Research godoc
// @Summary Look up interview-preparation material
// @Description Returns a short markdown digest built from up to three search results.
// @Tags Research
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {object} dto.ResearchDTO
// @Failure 400 {object} dto.ErrorResponse
// @Router /research [get]
func (c *ResearchController) Research(ctx *gin.Context) {
	query := ctx.Query("q")
	if query == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Query parameter 'q' is required"})
		return
	}
	ctx.JSON(http.StatusOK, dto.ResearchDTO{
		Query:  query,
		Digest: c.researchService.Digest(ctx.Request.Context(), query),
	})
}
