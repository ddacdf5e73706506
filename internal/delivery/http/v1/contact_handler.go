package v1

import (
	"net/http"
	"time"

	"go-ishop-backend/internal/delivery/http/response"
	"go-ishop-backend/internal/domain"
	"go-ishop-backend/internal/forms"
	"go-ishop-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes (public, no auth required).
// The rate limiter guards the one endpoint anonymous visitors can write
// through.
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase, rateLimit gin.HandlerFunc) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.POST("/contact", rateLimit, handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Validate and export a contact message. All violated rules are returned together, keyed by field.
// @Tags         contact
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        first_name     formData  string  true   "First name"
// @Param        last_name      formData  string  false  "Last name"
// @Param        birth_date     formData  string  false  "Birth date (YYYY-MM-DD)"
// @Param        email          formData  string  true   "E-mail"
// @Param        confirm_email  formData  string  true   "E-mail confirmation"
// @Param        message_type   formData  string  true   "complaint | question | review | request | appointment"
// @Param        subject        formData  string  true   "Subject"
// @Param        min_wait_days  formData  int     true   "Minimum waiting days"
// @Param        message        formData  string  true   "Message, signed with the first name"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		c.Error(apperror.BadRequest("Could not parse form data"))
		return
	}

	sub, errs := forms.ParseContactForm(c.Request.PostForm, time.Now())
	if errs != nil {
		c.Error(apperror.Validation("The submission contains invalid fields.", errs))
		return
	}

	if err := h.contactUC.SubmitMessage(c.Request.Context(), sub); err != nil {
		c.Error(apperror.New(http.StatusInternalServerError, "Failed to store message. Please try again later.", err))
		return
	}

	response.Success(c, http.StatusOK, "Your message has been sent successfully!", nil)
}
