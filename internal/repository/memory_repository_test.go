package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5"

	"github.com/payswift/auth-service/internal/domain"
)

func TestMemoryRepositoryRejectsDuplicates(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	first := &domain.User{Name: "Ana", MobileNumber: "555", Email: "a@x.com", Status: domain.UserStatusPending}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.ID == "" {
		t.Fatal("create must assign an id")
	}

	dupEmail := &domain.User{Name: "Eve", MobileNumber: "556", Email: "a@x.com"}
	if err := repo.Create(ctx, dupEmail); !errors.Is(err, ErrDuplicateIdentity) {
		t.Fatalf("expected ErrDuplicateIdentity for email, got %v", err)
	}

	dupMobile := &domain.User{Name: "Eve", MobileNumber: "555", Email: "e@x.com"}
	if err := repo.Create(ctx, dupMobile); !errors.Is(err, ErrDuplicateIdentity) {
		t.Fatalf("expected ErrDuplicateIdentity for mobile, got %v", err)
	}
}

func TestMemoryRepositoryConcurrentCreate(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	const attempts = 16
	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			user := &domain.User{Name: "Ana", MobileNumber: "555", Email: "a@x.com"}
			errs[i] = repo.Create(ctx, user)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else if !errors.Is(err, ErrDuplicateIdentity) {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if succeeded != 1 {
		t.Fatalf("exactly one concurrent create may win, got %d", succeeded)
	}
}

func TestMemoryRepositoryLookups(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	user := &domain.User{Name: "Ana", MobileNumber: "555", Email: "a@x.com"}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("create: %v", err)
	}

	byMobile, err := repo.GetByIdentifier(ctx, "555")
	if err != nil {
		t.Fatalf("by mobile: %v", err)
	}
	byEmail, err := repo.GetByIdentifier(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("by email: %v", err)
	}
	if byMobile.ID != byEmail.ID {
		t.Fatal("identifier lookups must resolve the same user")
	}

	if _, err := repo.GetByID(ctx, "missing"); !errors.Is(err, pgx.ErrNoRows) {
		t.Fatalf("expected pgx.ErrNoRows, got %v", err)
	}
	if _, err := repo.GetByIdentifier(ctx, "missing"); !errors.Is(err, pgx.ErrNoRows) {
		t.Fatalf("expected pgx.ErrNoRows, got %v", err)
	}
}
