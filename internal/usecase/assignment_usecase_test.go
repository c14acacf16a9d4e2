package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"carport_quotes/internal/domain/entities"
	"carport_quotes/internal/usecase/interfaces"
	mock_interfaces "carport_quotes/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAssignmentUseCase_Assign(t *testing.T) {
	t.Run("invalid inquiry id", func(t *testing.T) {
		uc := NewAssignmentUseCase(nil, nil, nil)
		_, err := uc.Assign(context.Background(), "  ", "salesman-1")
		if !errors.Is(err, ErrInvalidInquiryID) {
			t.Fatalf("expected ErrInvalidInquiryID, got %v", err)
		}
	})

	t.Run("invalid salesman id", func(t *testing.T) {
		uc := NewAssignmentUseCase(nil, nil, nil)
		_, err := uc.Assign(context.Background(), "inq-1", "")
		if !errors.Is(err, ErrInvalidSalesmanID) {
			t.Fatalf("expected ErrInvalidSalesmanID, got %v", err)
		}
	})

	t.Run("salesman not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		salesmen := mock_interfaces.NewMockISalesmanRepository(ctrl)
		uc := NewAssignmentUseCase(nil, salesmen, nil)

		salesmen.EXPECT().GetByID(gomock.Any(), "salesman-9").Return(entities.Salesman{}, nil)

		_, err := uc.Assign(context.Background(), "inq-1", "salesman-9")
		if !errors.Is(err, ErrSalesmanNotFound) {
			t.Fatalf("expected ErrSalesmanNotFound, got %v", err)
		}
	})

	t.Run("inquiry not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		inquiries := mock_interfaces.NewMockIInquiryRepository(ctrl)
		salesmen := mock_interfaces.NewMockISalesmanRepository(ctrl)
		uc := NewAssignmentUseCase(inquiries, salesmen, nil)

		salesmen.EXPECT().GetByID(gomock.Any(), "salesman-1").Return(entities.Salesman{ID: "salesman-1"}, nil)
		inquiries.EXPECT().GetByID(gomock.Any(), "inq-9").Return(entities.Inquiry{}, nil)

		_, err := uc.Assign(context.Background(), "inq-9", "salesman-1")
		if !errors.Is(err, ErrInquiryNotFound) {
			t.Fatalf("expected ErrInquiryNotFound, got %v", err)
		}
	})

	t.Run("already assigned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		inquiries := mock_interfaces.NewMockIInquiryRepository(ctrl)
		salesmen := mock_interfaces.NewMockISalesmanRepository(ctrl)
		uc := NewAssignmentUseCase(inquiries, salesmen, nil)

		salesmen.EXPECT().GetByID(gomock.Any(), "salesman-1").Return(entities.Salesman{ID: "salesman-1"}, nil)
		inquiries.EXPECT().GetByID(gomock.Any(), "inq-1").Return(entities.Inquiry{ID: "inq-1", SalesmanID: "salesman-2"}, nil)
		inquiries.EXPECT().AssignIfUnassigned(gomock.Any(), "inq-1", "salesman-1").Return(entities.Inquiry{}, false, nil)

		_, err := uc.Assign(context.Background(), "inq-1", "salesman-1")
		if !errors.Is(err, ErrInquiryAlreadyAssigned) {
			t.Fatalf("expected ErrInquiryAlreadyAssigned, got %v", err)
		}
	})

	t.Run("success records the assignment fact", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		inquiries := mock_interfaces.NewMockIInquiryRepository(ctrl)
		salesmen := mock_interfaces.NewMockISalesmanRepository(ctrl)
		assignments := mock_interfaces.NewMockIAssignmentRepository(ctrl)
		uc := NewAssignmentUseCase(inquiries, salesmen, assignments)

		assigned := entities.Inquiry{ID: "inq-1", Status: entities.InquiryStatusAssigned, SalesmanID: "salesman-1"}
		salesmen.EXPECT().GetByID(gomock.Any(), "salesman-1").Return(entities.Salesman{ID: "salesman-1"}, nil)
		inquiries.EXPECT().GetByID(gomock.Any(), "inq-1").Return(entities.Inquiry{ID: "inq-1", Status: entities.InquiryStatusUnderReview}, nil)
		inquiries.EXPECT().AssignIfUnassigned(gomock.Any(), "inq-1", "salesman-1").Return(assigned, true, nil)
		assignments.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Assignment{})).DoAndReturn(
			func(_ context.Context, a entities.Assignment) (entities.Assignment, error) {
				if a.InquiryID != "inq-1" || a.SalesmanID != "salesman-1" {
					t.Fatalf("unexpected assignment fact: %+v", a)
				}
				if a.AssignedAt.IsZero() {
					t.Fatalf("expected assigned_at timestamp")
				}
				return a, nil
			},
		)

		res, err := uc.Assign(context.Background(), " inq-1 ", " salesman-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.InquiryStatusAssigned || res.SalesmanID != "salesman-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestAssignmentUseCase_ListUnassigned(t *testing.T) {
	t.Run("sorted by submission time", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		inquiries := mock_interfaces.NewMockIInquiryRepository(ctrl)
		salesmen := mock_interfaces.NewMockISalesmanRepository(ctrl)
		uc := NewAssignmentUseCase(inquiries, salesmen, nil)

		older := entities.Inquiry{ID: "inq-older", SubmittedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
		newer := entities.Inquiry{ID: "inq-newer", SubmittedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)}

		inquiries.EXPECT().ListUnassigned(gomock.Any()).Return([]entities.Inquiry{newer, older}, nil).Times(2)
		salesmen.EXPECT().List(gomock.Any()).Return([]entities.Salesman{{ID: "salesman-1", Name: "Anders"}}, nil).Times(2)

		first, err := uc.ListUnassigned(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(first.Inquiries) != 2 || first.Inquiries[0].ID != "inq-older" {
			t.Fatalf("expected submission-time order, got %+v", first.Inquiries)
		}
		if len(first.Salesmen) != 1 {
			t.Fatalf("expected salesmen in queue, got %+v", first.Salesmen)
		}

		// Repeated read of the same state returns the same ids in the same order.
		second, err := uc.ListUnassigned(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i := range first.Inquiries {
			if first.Inquiries[i].ID != second.Inquiries[i].ID {
				t.Fatalf("expected identical listings, got %+v vs %+v", first.Inquiries, second.Inquiries)
			}
		}
	})

	t.Run("repo error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		inquiries := mock_interfaces.NewMockIInquiryRepository(ctrl)
		uc := NewAssignmentUseCase(inquiries, nil, nil)

		inquiries.EXPECT().ListUnassigned(gomock.Any()).Return(nil, errors.New("db"))

		if _, err := uc.ListUnassigned(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	})
}

// casInquiryRepo mimics the DynamoDB conditional update: the bind succeeds for
// exactly one caller per inquiry, no matter how calls interleave.
type casInquiryRepo struct {
	mu      sync.Mutex
	inquiry entities.Inquiry
}

var _ interfaces.IInquiryRepository = (*casInquiryRepo)(nil)

func (r *casInquiryRepo) Create(ctx context.Context, i entities.Inquiry) (entities.Inquiry, error) {
	return i, nil
}

func (r *casInquiryRepo) GetByID(ctx context.Context, id string) (entities.Inquiry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.inquiry.ID != id {
		return entities.Inquiry{}, nil
	}
	return r.inquiry, nil
}

func (r *casInquiryRepo) ListUnassigned(ctx context.Context) ([]entities.Inquiry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.inquiry.Assigned() {
		return nil, nil
	}
	return []entities.Inquiry{r.inquiry}, nil
}

func (r *casInquiryRepo) AssignIfUnassigned(ctx context.Context, inquiryID, salesmanID string) (entities.Inquiry, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.inquiry.ID != inquiryID || r.inquiry.Assigned() {
		return entities.Inquiry{}, false, nil
	}
	r.inquiry.SalesmanID = salesmanID
	r.inquiry.Status = entities.InquiryStatusAssigned
	return r.inquiry, true, nil
}

type staticSalesmanRepo struct{ salesmen []entities.Salesman }

var _ interfaces.ISalesmanRepository = (*staticSalesmanRepo)(nil)

func (r *staticSalesmanRepo) Create(ctx context.Context, s entities.Salesman) (entities.Salesman, error) {
	return s, nil
}

func (r *staticSalesmanRepo) GetByID(ctx context.Context, id string) (entities.Salesman, error) {
	for _, s := range r.salesmen {
		if s.ID == id {
			return s, nil
		}
	}
	return entities.Salesman{}, nil
}

func (r *staticSalesmanRepo) List(ctx context.Context) ([]entities.Salesman, error) {
	return r.salesmen, nil
}

type recordingAssignmentRepo struct {
	mu    sync.Mutex
	facts []entities.Assignment
}

var _ interfaces.IAssignmentRepository = (*recordingAssignmentRepo)(nil)

func (r *recordingAssignmentRepo) Create(ctx context.Context, a entities.Assignment) (entities.Assignment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, f := range r.facts {
		if f.InquiryID == a.InquiryID {
			return entities.Assignment{}, errors.New("assignment fact already exists")
		}
	}
	r.facts = append(r.facts, a)
	return a, nil
}

func (r *recordingAssignmentRepo) GetByInquiryID(ctx context.Context, inquiryID string) (entities.Assignment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, f := range r.facts {
		if f.InquiryID == inquiryID {
			return f, nil
		}
	}
	return entities.Assignment{}, nil
}

func TestAssignmentUseCase_ConcurrentAssign(t *testing.T) {
	inquiries := &casInquiryRepo{inquiry: entities.Inquiry{
		ID:          "inq-1",
		Status:      entities.InquiryStatusUnderReview,
		SubmittedAt: time.Now().UTC(),
	}}
	salesmen := &staticSalesmanRepo{salesmen: []entities.Salesman{
		{ID: "salesman-1", Name: "Anders"},
		{ID: "salesman-2", Name: "Mette"},
	}}
	assignments := &recordingAssignmentRepo{}
	uc := NewAssignmentUseCase(inquiries, salesmen, assignments)

	results := make(chan error, 2)
	var wg sync.WaitGroup
	for _, salesmanID := range []string{"salesman-1", "salesman-2"} {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_, err := uc.Assign(context.Background(), "inq-1", id)
			results <- err
		}(salesmanID)
	}
	wg.Wait()
	close(results)

	var successes, losses int
	for err := range results {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, ErrInquiryAlreadyAssigned):
			losses++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if successes != 1 || losses != 1 {
		t.Fatalf("expected exactly one winner and one loser, got %d/%d", successes, losses)
	}

	queue, err := uc.ListUnassigned(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(queue.Inquiries) != 0 {
		t.Fatalf("expected assigned inquiry excluded from queue, got %+v", queue.Inquiries)
	}

	if len(assignments.facts) != 1 {
		t.Fatalf("expected exactly one assignment fact, got %d", len(assignments.facts))
	}
}
