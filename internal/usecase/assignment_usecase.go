package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"carport_quotes/internal/domain/entities"
	"carport_quotes/internal/usecase/interfaces"
)

var (
	ErrInvalidInquiryID       = errors.New("invalid inquiry id")
	ErrInvalidSalesmanID      = errors.New("invalid salesman id")
	ErrInquiryNotFound        = errors.New("inquiry not found")
	ErrSalesmanNotFound       = errors.New("salesman not found")
	ErrInquiryAlreadyAssigned = errors.New("inquiry already assigned")
)

// UnassignedQueue is the triage view: every inquiry with no salesman bound,
// paired with the full salesman list for the claim dropdown.
type UnassignedQueue struct {
	Inquiries []entities.Inquiry
	Salesmen  []entities.Salesman
}

// IAssignmentUseCase coordinates the one-time hand-off of an inquiry to a
// salesman.
//
// Assign must hold under concurrency: two racing calls on the same inquiry
// resolve with exactly one success and one ErrInquiryAlreadyAssigned, never two
// successes and never a silent overwrite. The serialization point is the
// repository's conditional update, not any in-process state.

type IAssignmentUseCase interface {
	ListUnassigned(ctx context.Context) (UnassignedQueue, error)
	Assign(ctx context.Context, inquiryID, salesmanID string) (entities.Inquiry, error)
}

type AssignmentUseCase struct {
	inquiries   interfaces.IInquiryRepository
	salesmen    interfaces.ISalesmanRepository
	assignments interfaces.IAssignmentRepository
}

var _ IAssignmentUseCase = (*AssignmentUseCase)(nil)

func NewAssignmentUseCase(
	inquiries interfaces.IInquiryRepository,
	salesmen interfaces.ISalesmanRepository,
	assignments interfaces.IAssignmentRepository,
) *AssignmentUseCase {
	return &AssignmentUseCase{inquiries: inquiries, salesmen: salesmen, assignments: assignments}
}

func (u *AssignmentUseCase) ListUnassigned(ctx context.Context) (UnassignedQueue, error) {
	inquiries, err := u.inquiries.ListUnassigned(ctx)
	if err != nil {
		return UnassignedQueue{}, err
	}
	salesmen, err := u.salesmen.List(ctx)
	if err != nil {
		return UnassignedQueue{}, err
	}

	// Stable output for repeated reads of the same underlying state.
	sort.Slice(inquiries, func(a, b int) bool {
		if inquiries[a].SubmittedAt.Equal(inquiries[b].SubmittedAt) {
			return inquiries[a].ID < inquiries[b].ID
		}
		return inquiries[a].SubmittedAt.Before(inquiries[b].SubmittedAt)
	})

	return UnassignedQueue{Inquiries: inquiries, Salesmen: salesmen}, nil
}

func (u *AssignmentUseCase) Assign(ctx context.Context, inquiryID, salesmanID string) (entities.Inquiry, error) {
	inquiryID = strings.TrimSpace(inquiryID)
	if inquiryID == "" {
		return entities.Inquiry{}, ErrInvalidInquiryID
	}
	salesmanID = strings.TrimSpace(salesmanID)
	if salesmanID == "" {
		return entities.Inquiry{}, ErrInvalidSalesmanID
	}

	salesman, err := u.salesmen.GetByID(ctx, salesmanID)
	if err != nil {
		return entities.Inquiry{}, err
	}
	if salesman.ID == "" {
		return entities.Inquiry{}, ErrSalesmanNotFound
	}

	inquiry, err := u.inquiries.GetByID(ctx, inquiryID)
	if err != nil {
		return entities.Inquiry{}, err
	}
	if inquiry.ID == "" {
		return entities.Inquiry{}, ErrInquiryNotFound
	}

	// Inquiries are never deleted, so a failed conditional check after the
	// existence read above means another salesman got there first.
	updated, ok, err := u.inquiries.AssignIfUnassigned(ctx, inquiryID, salesmanID)
	if err != nil {
		return entities.Inquiry{}, err
	}
	if !ok {
		log.Printf("[assignment][usecase] assignment race lost inquiry_id=%s salesman_id=%s", inquiryID, salesmanID)
		return entities.Inquiry{}, ErrInquiryAlreadyAssigned
	}

	fact := entities.Assignment{
		InquiryID:  inquiryID,
		SalesmanID: salesmanID,
		AssignedAt: time.Now().UTC(),
	}
	if _, err := u.assignments.Create(ctx, fact); err != nil {
		log.Printf("[assignment][usecase] assignment fact create failed inquiry_id=%s salesman_id=%s err=%v", inquiryID, salesmanID, err)
		return entities.Inquiry{}, err
	}

	log.Printf("[assignment][usecase] inquiry assigned inquiry_id=%s salesman_id=%s", inquiryID, salesmanID)
	return updated, nil
}
