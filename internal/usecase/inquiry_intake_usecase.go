package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"carport_quotes/internal/domain/entities"
	"carport_quotes/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// Validation sentinels. Field-specific failures wrap these so callers can match
// with errors.Is while the message still names the offending field, e.g.
// "carport length must be a number".
var (
	ErrNotANumber    = errors.New("must be a number")
	ErrFieldRequired = errors.New("is required")
	ErrNotPositive   = errors.New("must be greater than zero")
)

const confirmationSubject = "We received your carport quote request"

// IsValidationError reports whether err is a client-input failure from Submit,
// i.e. recoverable by the submitter and never a system fault.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrNameEmailRequired) ||
		errors.Is(err, ErrNotANumber) ||
		errors.Is(err, ErrFieldRequired) ||
		errors.Is(err, ErrNotPositive)
}

// InquirySubmission carries the raw form field values exactly as the front door
// received them. All parsing and validation happens inside Submit, in a fixed
// order: blank name/email first, numeric parsing second, persistence last.
type InquirySubmission struct {
	Name          string
	Email         string
	Phone         string
	Address       string
	City          string
	Zipcode       string
	CarportLength string
	CarportWidth  string
	ShedLength    string
	ShedWidth     string
	Comments      string
}

// IntakeResult is what a successful submission produces. ConfirmationSent is
// false when the email attempt failed; the inquiry is durable either way and the
// outcome is recorded in the email log.
type IntakeResult struct {
	Customer         entities.Customer
	Inquiry          entities.Inquiry
	ConfirmationSent bool
}

// IInquiryIntakeUseCase turns a raw submission into a durable inquiry.

type IInquiryIntakeUseCase interface {
	Submit(ctx context.Context, sub InquirySubmission) (IntakeResult, error)
}

type InquiryIntakeUseCase struct {
	registry  ICustomerRegistry
	inquiries interfaces.IInquiryRepository
	emailLogs interfaces.IEmailLogRepository
	notifier  interfaces.INotificationGateway
}

var _ IInquiryIntakeUseCase = (*InquiryIntakeUseCase)(nil)

func NewInquiryIntakeUseCase(
	registry ICustomerRegistry,
	inquiries interfaces.IInquiryRepository,
	emailLogs interfaces.IEmailLogRepository,
	notifier interfaces.INotificationGateway,
) *InquiryIntakeUseCase {
	return &InquiryIntakeUseCase{
		registry:  registry,
		inquiries: inquiries,
		emailLogs: emailLogs,
		notifier:  notifier,
	}
}

func (u *InquiryIntakeUseCase) Submit(ctx context.Context, sub InquirySubmission) (IntakeResult, error) {
	// Required-field check short-circuits before any numeric parsing.
	if strings.TrimSpace(sub.Name) == "" || strings.TrimSpace(sub.Email) == "" {
		return IntakeResult{}, ErrNameEmailRequired
	}

	phone, err := parseIntField(sub.Phone, "phone")
	if err != nil {
		return IntakeResult{}, err
	}
	zipcode, err := parseIntField(sub.Zipcode, "zipcode")
	if err != nil {
		return IntakeResult{}, err
	}
	carportLength, err := parseRequiredDimension(sub.CarportLength, "carport length")
	if err != nil {
		return IntakeResult{}, err
	}
	carportWidth, err := parseRequiredDimension(sub.CarportWidth, "carport width")
	if err != nil {
		return IntakeResult{}, err
	}
	// Shed dimensions are optional and independent: either may be present
	// without the other.
	shedLength, err := parseOptionalDimension(sub.ShedLength, "shed length")
	if err != nil {
		return IntakeResult{}, err
	}
	shedWidth, err := parseOptionalDimension(sub.ShedWidth, "shed width")
	if err != nil {
		return IntakeResult{}, err
	}

	customer, err := u.registry.Register(ctx, RegisterCustomerInput{
		Name:    sub.Name,
		Email:   sub.Email,
		Phone:   phone,
		Address: sub.Address,
		City:    sub.City,
		Zipcode: zipcode,
	})
	if err != nil {
		log.Printf("[inquiry][usecase] customer registration failed err=%v", err)
		return IntakeResult{}, err
	}

	now := time.Now().UTC()
	inquiry := entities.Inquiry{
		ID:            uuid.NewString(),
		CustomerID:    customer.ID,
		CarportLength: carportLength,
		CarportWidth:  carportWidth,
		ShedLength:    shedLength,
		ShedWidth:     shedWidth,
		Comments:      strings.TrimSpace(sub.Comments),
		Status:        entities.InquiryStatusUnderReview,
		SubmittedAt:   now,
		UpdatedAt:     now,
	}

	created, err := u.inquiries.Create(ctx, inquiry)
	if err != nil {
		// The customer row may already exist at this point; the submission is
		// still reported as failed (known limitation, no cross-table rollback).
		log.Printf("[inquiry][usecase] inquiry create failed customer_id=%s err=%v", customer.ID, err)
		return IntakeResult{}, err
	}
	log.Printf("[inquiry][usecase] inquiry created inquiry_id=%s customer_id=%s", created.ID, customer.ID)

	sent := true
	if err := u.notifier.SendInquiryConfirmation(ctx, customer, created); err != nil {
		// Never fails the submission: the inquiry is already durable.
		sent = false
		log.Printf("[inquiry][usecase] confirmation send failed inquiry_id=%s err=%v", created.ID, err)
	}

	entry := entities.EmailLog{
		ID:         uuid.NewString(),
		InquiryID:  created.ID,
		CustomerID: customer.ID,
		Recipient:  customer.Email,
		Subject:    confirmationSubject,
		Sent:       sent,
		CreatedAt:  time.Now().UTC(),
	}
	if _, err := u.emailLogs.Append(ctx, entry); err != nil {
		log.Printf("[inquiry][usecase] email log append failed inquiry_id=%s err=%v", created.ID, err)
	}

	return IntakeResult{Customer: customer, Inquiry: created, ConfirmationSent: sent}, nil
}

func parseIntField(raw, fieldName string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%s %w", fieldName, ErrFieldRequired)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s %w", fieldName, ErrNotANumber)
	}
	return v, nil
}

func parseRequiredDimension(raw, fieldName string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%s %w", fieldName, ErrFieldRequired)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s %w", fieldName, ErrNotANumber)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s %w", fieldName, ErrNotPositive)
	}
	return v, nil
}

func parseOptionalDimension(raw, fieldName string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		// Absent, not zero.
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%s %w", fieldName, ErrNotANumber)
	}
	if v <= 0 {
		return nil, fmt.Errorf("%s %w", fieldName, ErrNotPositive)
	}
	return &v, nil
}
