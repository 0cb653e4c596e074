package handlers

import (
	"encoding/base64"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mussol-barber/booking-api/internal/httperr"
	"github.com/mussol-barber/booking-api/internal/httpresp"
	"github.com/mussol-barber/booking-api/internal/media"
	"github.com/mussol-barber/booking-api/internal/models"
	"github.com/mussol-barber/booking-api/internal/storage"
	ucBooking "github.com/mussol-barber/booking-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type UploadHandler struct {
	db        *gorm.DB
	store     storage.Store
	receiptUC *ucBooking.AttachReceipt
}

func NewUploadHandler(
	db *gorm.DB,
	store storage.Store,
	receiptUC *ucBooking.AttachReceipt,
) *UploadHandler {
	return &UploadHandler{
		db:        db,
		store:     store,
		receiptUC: receiptUC,
	}
}

// ======================================================
// REQUEST
// ======================================================

type UploadRequest struct {
	File        string `json:"file" binding:"required"`
	FileName    string `json:"fileName" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
}

// decode aceita o payload cru ou com prefixo data-URL.
func (r *UploadRequest) decode() ([]byte, error) {
	raw := r.File
	if i := strings.Index(raw, ","); i >= 0 && strings.HasPrefix(raw, "data:") {
		raw = raw[i+1:]
	}
	return base64.StdEncoding.DecodeString(raw)
}

// ======================================================
// BARBER PHOTO
// ======================================================

func (h *UploadHandler) BarberPhoto(c *gin.Context) {
	barberID := c.Param("barberId")

	var barber models.Barber
	if err := h.db.Where("id = ?", barberID).First(&barber).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_barber", "Erro ao buscar barbeiro.")
		return
	}

	url, ok := h.storeFile(c, "barbers", barberID, true)
	if !ok {
		return
	}

	httpresp.OK(c, gin.H{"url": url})
}

// ======================================================
// PAYMENT RECEIPT
// ======================================================

func (h *UploadHandler) PaymentReceipt(c *gin.Context) {
	appointmentID := c.Param("appointmentId")

	var ap models.Appointment
	if err := h.db.Where("id = ?", appointmentID).First(&ap).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_appointment", "Erro ao buscar agendamento.")
		return
	}

	// comprovantes podem ser PDF; sobem como vieram
	url, ok := h.storeFile(c, "receipts", appointmentID, false)
	if !ok {
		return
	}

	if _, err := h.receiptUC.Execute(c.Request.Context(), appointmentID, url); err != nil {
		// arquivo já está no bucket; avisa em vez de desfazer
		log.Println("receipt patch failed:", err)
		httpresp.OK(c, gin.H{
			"url":     url,
			"warning": "Comprovante salvo, mas o agendamento não foi atualizado.",
		})
		return
	}

	httpresp.OK(c, gin.H{"url": url})
}

// ======================================================
// QR CODE
// ======================================================

func (h *UploadHandler) QRCode(c *gin.Context) {
	serviceID := c.Param("serviceId")

	var service models.Service
	if err := h.db.Where("id = ?", serviceID).First(&service).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_service", "Erro ao buscar serviço.")
		return
	}

	url, ok := h.storeFile(c, "qrcodes", serviceID, true)
	if !ok {
		return
	}

	service.QRCodeURL = url
	if err := h.db.Save(&service).Error; err != nil {
		log.Println("qr code patch failed:", err)
		httpresp.OK(c, gin.H{
			"url":     url,
			"warning": "QR code salvo, mas o serviço não foi atualizado.",
		})
		return
	}

	httpresp.OK(c, gin.H{"url": url})
}

// ======================================================
// COMMON PATH
// ======================================================

// storeFile valida o payload, comprime quando for imagem e sobe para o
// bucket. Retorna ok=false com a resposta de erro já escrita.
func (h *UploadHandler) storeFile(
	c *gin.Context,
	category string,
	entityID string,
	compress bool,
) (string, bool) {

	var req UploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err.Error())
		return "", false
	}

	data, err := req.decode()
	if err != nil {
		httperr.BadRequest(c, "invalid_file_payload", "Arquivo base64 inválido.")
		return "", false
	}

	fileName := req.FileName
	contentType := req.ContentType

	if compress && media.IsImage(contentType) {
		compressed, newType, err := media.Compress(data)
		if err != nil {
			httperr.BadRequest(c, "invalid_image", "Imagem inválida.")
			return "", false
		}
		data = compressed
		contentType = newType
		fileName = media.WithExtension(fileName, "webp")
	}

	key := storage.BuildKey(category, entityID, fileName, time.Now())

	url, err := h.store.Upload(c.Request.Context(), key, data, contentType)
	if err != nil {
		log.Println("upload error:", err)
		httperr.Internal(c, "failed_to_upload", "Erro ao enviar arquivo.")
		return "", false
	}

	return url, true
}
