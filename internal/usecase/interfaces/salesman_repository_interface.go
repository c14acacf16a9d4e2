package interfaces

import (
	"context"

	"carport_quotes/internal/domain/entities"
)

// ISalesmanRepository abstracts DynamoDB persistence for Salesman.
// Create exists for the seeding tool; the workflow itself only reads.
type ISalesmanRepository interface {
	Create(ctx context.Context, s entities.Salesman) (entities.Salesman, error)
	GetByID(ctx context.Context, id string) (entities.Salesman, error)
	List(ctx context.Context) ([]entities.Salesman, error)
}
