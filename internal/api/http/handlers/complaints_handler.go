package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/ThellaPrasanthi/complain-system/internal/api/dto"
	"github.com/ThellaPrasanthi/complain-system/internal/auth"
	"github.com/ThellaPrasanthi/complain-system/internal/domain"
	"github.com/ThellaPrasanthi/complain-system/internal/service"
	apperrors "github.com/ThellaPrasanthi/complain-system/pkg/util"
)

// ComplaintsHandler manages complaint endpoints.
type ComplaintsHandler struct {
	service *service.ComplaintService
}

// NewComplaintsHandler constructs handler.
func NewComplaintsHandler(complaintService *service.ComplaintService) *ComplaintsHandler {
	return &ComplaintsHandler{service: complaintService}
}

// Create POST /api/complaints.
func (h *ComplaintsHandler) Create(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewTokenMissing()
	}
	var req dto.CreateComplaintRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewMalformedRequest("invalid payload", nil)
	}
	if req.Name == "" || req.Email == "" || req.Phone == "" ||
		req.Category == "" || req.Title == "" || req.Description == "" {
		return apperrors.NewMalformedRequest("name, email, phone, category, title, description required", nil)
	}

	input := service.ComplaintCreateInput{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Category:    req.Category,
		Title:       req.Title,
		Description: req.Description,
	}
	if _, err := h.service.Create(c.Context(), claims, input); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"message": "Complaint added"})
}

// List GET /api/complaints.
func (h *ComplaintsHandler) List(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewTokenMissing()
	}
	complaints, err := h.service.List(c.Context(), claims)
	if err != nil {
		return err
	}
	items := make([]dto.ComplaintResponse, 0, len(complaints))
	for i := range complaints {
		items = append(items, complaintResponse(&complaints[i]))
	}
	return c.JSON(items)
}

// UpdateStatus PUT /api/complaints/:id.
func (h *ComplaintsHandler) UpdateStatus(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewTokenMissing()
	}
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewMalformedRequest("invalid payload", nil)
	}
	if req.Status == "" {
		return apperrors.NewMalformedRequest("status required", nil)
	}

	if err := h.service.UpdateStatus(c.Context(), claims, c.Params("id"), req.Status); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Status updated"})
}

// Delete DELETE /api/complaints/:id.
func (h *ComplaintsHandler) Delete(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewTokenMissing()
	}
	if err := h.service.Delete(c.Context(), claims, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Deleted"})
}

func complaintResponse(complaint *domain.Complaint) dto.ComplaintResponse {
	return dto.ComplaintResponse{
		ID:          complaint.ExternalID(),
		Username:    complaint.Owner,
		Name:        complaint.Name,
		Email:       complaint.Email,
		Phone:       complaint.Phone,
		Category:    complaint.Category,
		Title:       complaint.Title,
		Description: complaint.Description,
		Status:      complaint.Status,
	}
}
