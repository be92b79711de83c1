package handlers

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"mockmate/interview-prep/internal/models"
	"mockmate/interview-prep/internal/services"
)

// ExtractHandler turns an uploaded résumé or job-description PDF into plain
// text for clients that cannot parse PDFs themselves. The file only touches
// the scratch directory for the duration of the request.
type ExtractHandler struct {
	storageService services.StorageService
	pdfParser      services.PDFParserService
	maxFileSize    int64
}

func NewExtractHandler(
	storageService services.StorageService,
	pdfParser services.PDFParserService,
	maxFileSize int64,
) *ExtractHandler {
	return &ExtractHandler{
		storageService: storageService,
		pdfParser:      pdfParser,
		maxFileSize:    maxFileSize,
	}
}

// HandleExtract handles POST /interviews/extract
func (h *ExtractHandler) HandleExtract(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "A PDF file is required",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": fmt.Sprintf("File too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	path, err := h.storageService.SaveScratch(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": err.Error(),
		})
	}
	defer func() {
		if err := h.storageService.Remove(path); err != nil {
			log.Printf("⚠️ Failed to clean up scratch file: %v", err)
		}
	}()

	text, err := h.pdfParser.ExtractText(path)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": "Could not extract text from the uploaded PDF",
		})
	}

	return c.JSON(models.ExtractResponse{Text: text})
}
