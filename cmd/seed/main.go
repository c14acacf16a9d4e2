package main

import (
	"context"
	"fmt"
	"log"

	"carport_quotes/internal/adapter/persistence/repository"
	"carport_quotes/internal/domain/entities"
	"carport_quotes/internal/infrastructure/database"

	_ "github.com/joho/godotenv/autoload"
)

// Seeds the salesmen table so the assignment queue has someone to claim
// inquiries. Safe to re-run: existing ids are left untouched.

var salesmen = []entities.Salesman{
	{ID: "salesman-1", Name: "Anders Jensen", Email: "anders@carportquotes.example", Phone: "20304050"},
	{ID: "salesman-2", Name: "Mette Nielsen", Email: "mette@carportquotes.example", Phone: "20304051"},
	{ID: "salesman-3", Name: "Lars Sorensen", Email: "lars@carportquotes.example", Phone: "20304052"},
}

func main() {
	ctx := context.Background()

	ddb := database.ConnectDynamoDB()
	repo := repository.NewSalesmanDynamoRepository(ddb)

	for _, s := range salesmen {
		existing, err := repo.GetByID(ctx, s.ID)
		if err != nil {
			log.Fatalf("failed to check salesman %s: %v", s.ID, err)
		}
		if existing.ID != "" {
			fmt.Printf("salesman %s already exists, skipping\n", s.ID)
			continue
		}

		if _, err := repo.Create(ctx, s); err != nil {
			log.Fatalf("failed to create salesman %s: %v", s.ID, err)
		}
		fmt.Printf("salesman %s created\n", s.ID)
	}

	fmt.Println("salesmen seeded")
}
