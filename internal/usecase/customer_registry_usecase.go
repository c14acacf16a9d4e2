package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"carport_quotes/internal/domain/entities"
	"carport_quotes/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrNameEmailRequired = errors.New("name and email are required")

// ICustomerRegistry creates customer records from submitted contact data.
//
// Every registration creates a new customer row; there is deliberately no
// deduplication against existing customers (known limitation carried from the
// original workflow).

type ICustomerRegistry interface {
	Register(ctx context.Context, input RegisterCustomerInput) (entities.Customer, error)
}

// RegisterCustomerInput carries already-parsed contact fields. Numeric parsing of
// phone/zipcode happens upstream in the intake flow, together with the rest of the
// form parsing.
type RegisterCustomerInput struct {
	Name    string
	Email   string
	Phone   int
	Address string
	City    string
	Zipcode int
}

type CustomerRegistry struct {
	repo interfaces.ICustomerRepository
}

var _ ICustomerRegistry = (*CustomerRegistry)(nil)

func NewCustomerRegistry(repo interfaces.ICustomerRepository) *CustomerRegistry {
	return &CustomerRegistry{repo: repo}
}

func (r *CustomerRegistry) Register(ctx context.Context, input RegisterCustomerInput) (entities.Customer, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	if name == "" || email == "" {
		return entities.Customer{}, ErrNameEmailRequired
	}

	c := entities.Customer{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Phone:     input.Phone,
		Address:   strings.TrimSpace(input.Address),
		City:      strings.TrimSpace(input.City),
		Zipcode:   input.Zipcode,
		CreatedAt: time.Now().UTC(),
	}
	return r.repo.Create(ctx, c)
}
