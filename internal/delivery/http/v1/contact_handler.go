package v1

import (
	"context"
	"errors"
	"net/http"
	"portfolio-contact-backend/internal/delivery/http/response"
	"portfolio-contact-backend/internal/domain"
	"portfolio-contact-backend/pkg/apperror"
	"portfolio-contact-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

// ContactSubmitter runs submissions through one form per client key
type ContactSubmitter interface {
	Submit(ctx context.Context, key string, req *domain.SubmissionRequest) (*domain.SubmissionOutcome, error)
	IsAvailable() bool
}

// ContactResult is the public view of a successful submission.
// Both success variants are reported the same way.
type ContactResult struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	TestMode bool   `json:"testMode,omitempty"`
}

type ContactHandler struct {
	forms ContactSubmitter
	owner domain.OwnerProfile
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, forms ContactSubmitter, owner domain.OwnerProfile, limit gin.HandlerFunc) {
	handler := &ContactHandler{
		forms: forms,
		owner: owner,
	}

	public.POST("/contact", limit, handler.SubmitContact)
	public.GET("/profile", handler.GetProfile)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Notify the site owner and send the visitor an acknowledgment. This is a public endpoint.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.SubmissionRequest  true  "Contact Form Data"
// @Success      200      {object}  response.Response{data=ContactResult}
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Failure      429      {object}  response.Response
// @Failure      502      {object}  response.Response
// @Failure      503      {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.SubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid contact form").WithDetails(validation.FormatValidationErrors(err)))
		return
	}

	if !h.forms.IsAvailable() {
		c.Error(apperror.ServiceUnavailable("Contact service temporarily unavailable", domain.ErrProviderNotConfigured))
		return
	}

	outcome, err := h.forms.Submit(c.Request.Context(), c.ClientIP(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrSubmissionInFlight) {
			c.Error(apperror.Conflict("Your previous message is still being sent. Please wait.", err))
			return
		}
		c.Error(apperror.Internal(err))
		return
	}

	if outcome.Status == domain.StatusFailed {
		c.Error(apperror.BadGateway(outcome.Reason))
		return
	}

	response.Success(c, http.StatusOK, "Thank you for your message! I'll get back to you as soon as possible.", ContactResult{
		ID:       outcome.ID,
		Status:   "succeeded",
		TestMode: outcome.TestMode,
	})
}

// GetProfile godoc
// @Summary      Site owner contact profile
// @Description  Name, address and headline shown on the contact page
// @Tags         contact
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.OwnerProfile}
// @Router       /profile [get]
func (h *ContactHandler) GetProfile(c *gin.Context) {
	response.Success(c, http.StatusOK, "Owner profile", h.owner)
}
