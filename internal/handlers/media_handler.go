package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/develtlab/barber-booking/internal/audit"
	"github.com/develtlab/barber-booking/internal/httperr"
	"github.com/develtlab/barber-booking/internal/media"
	"github.com/develtlab/barber-booking/internal/middleware"
	"github.com/develtlab/barber-booking/internal/models"
)

// MediaHandler recebe a imagem de um serviço, converte para webp e publica no
// bucket configurado.
type MediaHandler struct {
	db       *gorm.DB
	uploader *media.Uploader
	audit    *audit.Dispatcher
}

func NewMediaHandler(db *gorm.DB, uploader *media.Uploader, audit *audit.Dispatcher) *MediaHandler {
	return &MediaHandler{
		db:       db,
		uploader: uploader,
		audit:    audit,
	}
}

func (h *MediaHandler) UploadServiceImage(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	if !h.uploader.Enabled() {
		httperr.Internal(c, "storage_not_configured", "Armazenamento de imagens não configurado.")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Serviço inválido.")
		return
	}

	var svc models.BarbershopService
	if err := h.db.First(&svc, uint(id)).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "Imagem obrigatória.")
		return
	}

	if fileHeader.Size > media.MaxUploadBytes {
		httperr.BadRequest(c, "image_too_large", "Imagem excede o tamanho máximo.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_image", "Erro ao ler imagem.")
		return
	}
	defer file.Close()

	encoded, err := media.EncodeWebP(file)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_image") {
			httperr.BadRequest(c, "invalid_image", "Formato de imagem não suportado.")
			return
		}
		httperr.Internal(c, "failed_to_process_image", "Erro ao processar imagem.")
		return
	}

	url, err := h.uploader.PutWebP(c.Request.Context(), "services", encoded)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_image", "Erro ao enviar imagem.")
		return
	}

	svc.ImageURL = url
	if err := h.db.Save(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Erro ao salvar imagem do serviço.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "service_image_updated",
		Entity:   "barbershop_service",
		EntityID: &svc.ID,
	})

	c.JSON(http.StatusOK, svc)
}
