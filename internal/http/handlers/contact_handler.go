// Contact HTTP handler.
//
// POST /api/contact stores a contact form message and notifies the admin
// mailbox.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ramsagar705/aqua-blue-hydropack/internal/form"
)

// ContactRequest is the JSON payload posted by the contact form.
type ContactRequest struct {
	Name    string `json:"name" example:"Asha"`
	Email   string `json:"email" example:"asha@example.com"`
	Phone   string `json:"phone" example:"9876543210"`
	Subject string `json:"subject" example:"Bulk order enquiry"`
	Message string `json:"message" example:"Do you deliver to offices on Saturdays?"`
}

// ContactResponse acknowledges a stored message.
type ContactResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Message sent successfully"`
}

// CreateContact godoc
// @ID          createContact
// @Summary     Send a contact message
// @Description Validates the contact form payload, stores the message and notifies the admin mailbox.
// @Tags        Contact
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.ContactRequest  true  "Contact payload"
//
// @Success     201  {object}  handlers.ContactResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Missing field"
// @Failure     429  {object}  handlers.ErrorResponse  "Too many requests"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /api/contact [post]
func (h *Handlers) CreateContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	_, err := h.contacts.Send(c.Request.Context(), form.ContactSubmission(req))
	if err != nil {
		failService(c, err, ErrCodeCreateFailed)
		return
	}
	ok(c, http.StatusCreated, ContactResponse{Success: true, Message: "Message sent successfully"})
}
