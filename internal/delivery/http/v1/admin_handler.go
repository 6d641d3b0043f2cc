package v1

import (
	"net/http"
	"portfolio-contact-backend/internal/delivery/http/response"
	"portfolio-contact-backend/internal/domain"
	"portfolio-contact-backend/pkg/apperror"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminUC domain.AdminUsecase
}

func NewAdminHandler(protected *gin.RouterGroup, adminUC domain.AdminUsecase) {
	handler := &AdminHandler{adminUC: adminUC}

	admin := protected.Group("/admin")
	{
		admin.GET("/stats", handler.GetStats)
		admin.GET("/submissions", handler.ListSubmissions)
	}
}

// GetStats godoc
// @Summary      Get submission statistics
// @Description  Counts of recorded submissions per outcome, including masked acknowledgment failures
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=domain.SubmissionStats}
// @Failure      401  {object}  response.Response
// @Failure      503  {object}  response.Response
// @Router       /admin/stats [get]
func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.adminUC.GetStats(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Submission statistics", stats)
}

// ListSubmissions godoc
// @Summary      List recent submissions
// @Description  Most recent submission outcomes, newest first
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Maximum number of outcomes (default 50, max 200)"
// @Success      200    {object}  response.Response{data=[]domain.SubmissionOutcome}
// @Failure      400    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Router       /admin/submissions [get]
func (h *AdminHandler) ListSubmissions(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.Error(apperror.BadRequest("limit must be a number"))
			return
		}
		limit = parsed
	}

	outcomes, err := h.adminUC.ListSubmissions(c, limit)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Recent submissions", outcomes)
}
