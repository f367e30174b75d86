package server

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	contactdomain "github.com/jvrel/portfolio/internal/contact/domain"
)

// submitContactRequest binds only the three known fields; extras such as the
// client-side honeypot are ignored.
type submitContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type submitContactResponse struct {
	ID         string  `json:"id"`
	EmailSent  bool    `json:"emailSent"`
	EmailError *string `json:"emailError"`
}

func (s *Server) SubmitContact(c *gin.Context) {
	var req submitContactRequest
	// A malformed body is treated as empty fields so the validator answers
	// with the required-fields message, matching the form contract.
	_ = c.ShouldBindJSON(&req)

	resp, err := s.contactSvc.Submit(c.Request.Context(), contactdomain.SubmitRequest{
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
		SourceIP:  c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	out := submitContactResponse{
		ID:        resp.Submission.ID.String(),
		EmailSent: resp.Notification.Status == contactdomain.NotificationSent,
	}
	if resp.Notification.Status == contactdomain.NotificationFailed {
		reason := resp.Notification.Reason
		out.EmailError = &reason
	}

	c.JSON(http.StatusOK, out)
}

type contactMessage struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	CreatedAt string `json:"createdAt"`
	Read      bool   `json:"read"`
	IP        string `json:"ip"`
	UserAgent string `json:"userAgent"`
}

func (s *Server) ListContacts(c *gin.Context) {
	if !s.authorizeAdmin(c) {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	items, err := s.contactSvc.List(c.Request.Context(), contactdomain.ListRequest{
		Limit: contactdomain.AdminListLimit,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	messages := make([]contactMessage, 0, len(items))
	for _, item := range items {
		messages = append(messages, contactMessage{
			ID:        item.ID.String(),
			Name:      item.Name,
			Email:     item.Email,
			Message:   item.Message,
			CreatedAt: item.CreatedAt.UTC().Format(time.RFC3339),
			Read:      item.Read,
			IP:        item.SourceIP,
			UserAgent: item.UserAgent,
		})
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// authorizeAdmin accepts the shared secret as ?key= or X-Admin-Key and
// compares it in constant time. An unset server key rejects everything.
func (s *Server) authorizeAdmin(c *gin.Context) bool {
	if s.cfg.AdminKey == "" {
		return false
	}
	key := c.Query("key")
	if key == "" {
		key = c.GetHeader("X-Admin-Key")
	}
	if key == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(key), []byte(s.cfg.AdminKey)) == 1
}
