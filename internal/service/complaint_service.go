package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ThellaPrasanthi/complain-system/internal/auth"
	"github.com/ThellaPrasanthi/complain-system/internal/domain"
	"github.com/ThellaPrasanthi/complain-system/internal/events"
	"github.com/ThellaPrasanthi/complain-system/internal/repository"
	apperrors "github.com/ThellaPrasanthi/complain-system/pkg/util"
)

// ComplaintService coordinates complaint workflows.
type ComplaintService struct {
	complaints repository.ComplaintRepository
	dispatcher events.Dispatcher
}

// ComplaintCreateInput describes a complaint submission. All fields are
// required; values are persisted verbatim without trimming or format checks.
type ComplaintCreateInput struct {
	Name        string
	Email       string
	Phone       string
	Category    string
	Title       string
	Description string
}

// NewComplaintService constructs the service.
func NewComplaintService(complaints repository.ComplaintRepository, dispatcher events.Dispatcher) *ComplaintService {
	return &ComplaintService{complaints: complaints, dispatcher: dispatcher}
}

// Create persists a new complaint owned by the caller, with the next
// sequential id and status "Pending".
func (s *ComplaintService) Create(ctx context.Context, claims *auth.Claims, input ComplaintCreateInput) (*domain.Complaint, error) {
	complaint := &domain.Complaint{
		Owner:       claims.Username,
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		Category:    input.Category,
		Title:       input.Title,
		Description: input.Description,
		Status:      domain.StatusPending,
	}
	if err := s.complaints.Create(ctx, complaint); err != nil {
		return nil, err
	}
	s.publish(ctx, events.Event{
		Type:        events.EventComplaintCreated,
		ComplaintID: complaint.ExternalID(),
		Actor:       claims.Username,
		Payload: events.ComplaintCreatedPayload{
			Owner:    complaint.Owner,
			Category: complaint.Category,
			Title:    complaint.Title,
		},
	})
	return complaint, nil
}

// List returns complaints visible to the caller in id order: admins see
// every record, other callers only the ones they own.
func (s *ComplaintService) List(ctx context.Context, claims *auth.Claims) ([]domain.Complaint, error) {
	if claims.Role == domain.RoleAdmin {
		return s.complaints.ListAll(ctx)
	}
	return s.complaints.ListByOwner(ctx, claims.Username)
}

// UpdateStatus overwrites the status of the identified complaint. A missing
// id is a silent no-op: the original contract reports success for updates
// that affect zero rows.
func (s *ComplaintService) UpdateStatus(ctx context.Context, claims *auth.Claims, externalID, newStatus string) error {
	id, err := domain.ParseComplaintID(externalID)
	if err != nil {
		return apperrors.NewMalformedRequest("invalid complaint id", map[string]any{"id": externalID})
	}

	affected, err := s.complaints.UpdateStatus(ctx, id, newStatus)
	if err != nil {
		return err
	}
	if affected > 0 {
		s.publish(ctx, events.Event{
			Type:        events.EventComplaintStatusChanged,
			ComplaintID: domain.FormatComplaintID(id),
			Actor:       claims.Username,
			Payload:     events.ComplaintStatusChangedPayload{NewStatus: newStatus},
		})
	}
	return nil
}

// Delete removes the identified complaint permanently. Same silent no-op
// policy as UpdateStatus when the id does not exist.
func (s *ComplaintService) Delete(ctx context.Context, claims *auth.Claims, externalID string) error {
	id, err := domain.ParseComplaintID(externalID)
	if err != nil {
		return apperrors.NewMalformedRequest("invalid complaint id", map[string]any{"id": externalID})
	}

	affected, err := s.complaints.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected > 0 {
		s.publish(ctx, events.Event{
			Type:        events.EventComplaintDeleted,
			ComplaintID: domain.FormatComplaintID(id),
			Actor:       claims.Username,
			Payload:     events.ComplaintDeletedPayload{DeletedBy: claims.Username},
		})
	}
	return nil
}

func (s *ComplaintService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now()
	_ = s.dispatcher.Publish(ctx, event)
}
