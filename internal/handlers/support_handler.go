package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/develtlab/barber-booking/internal/audit"
	"github.com/develtlab/barber-booking/internal/mailer"
)

type SupportHandler struct {
	sender mailer.Sender
	inbox  string
	audit  *audit.Dispatcher
}

func NewSupportHandler(sender mailer.Sender, inbox string, audit *audit.Dispatcher) *SupportHandler {
	return &SupportHandler{
		sender: sender,
		inbox:  inbox,
		audit:  audit,
	}
}

// --------- Requests ---------

type SupportRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Type    string `json:"type" binding:"required,oneof=agendamento pagamento tecnico duvida reclamacao sugestao outros"`
	Message string `json:"message" binding:"required"`
}

// ======================================================
// SEND
// ======================================================

func (h *SupportHandler) Send(c *gin.Context) {
	var req SupportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Dados incompletos",
		})
		return
	}

	msg := mailer.SupportMessage{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Category: req.Type,
		Message:  req.Message,
	}

	if err := h.sender.Send(h.inbox, msg.Subject(), msg.Body()); err != nil {
		log.Printf("support email failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Erro ao enviar email",
		})
		return
	}

	h.audit.Dispatch(audit.Event{
		Action: "support_message_sent",
		Entity: "support",
		Metadata: map[string]string{
			"email": req.Email,
			"type":  req.Type,
		},
	})

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Email enviado com sucesso!",
	})
}
