package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/news-cms-api/internal/models"
	"github.com/news-cms-api/internal/service"
)

func TestAccountService_CreateUser(t *testing.T) {
	repos, _, _, _, _, _, _ := newTestRepos()
	svc := newTestServices(repos)

	user, err := svc.Account.CreateUser(context.Background(), &models.CreateUserRequest{
		Name:  "Ana Reyes",
		Email: "  Ana.Reyes@Example.COM ",
		Role:  "editor",
	})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if user.Email != "ana.reyes@example.com" {
		t.Errorf("Expected normalized email, got %q", user.Email)
	}
	if !user.Active {
		t.Error("New users start active")
	}
}

func TestAccountService_CreateUserValidation(t *testing.T) {
	repos, _, _, _, _, _, _ := newTestRepos()
	svc := newTestServices(repos)
	ctx := context.Background()

	if _, err := svc.Account.CreateUser(ctx, &models.CreateUserRequest{
		Name: "Bad Email", Email: "not-an-email", Role: "editor",
	}); !errors.Is(err, service.ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for bad email, got %v", err)
	}

	if _, err := svc.Account.CreateUser(ctx, &models.CreateUserRequest{
		Name: "Bad Role", Email: "ok@example.com", Role: "superuser",
	}); !errors.Is(err, service.ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for bad role, got %v", err)
	}

	if _, err := svc.Account.CreateUser(ctx, &models.CreateUserRequest{
		Name: "First", Email: "dup@example.com", Role: "author",
	}); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if _, err := svc.Account.CreateUser(ctx, &models.CreateUserRequest{
		Name: "Second", Email: "DUP@example.com", Role: "author",
	}); !errors.Is(err, service.ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for duplicate email, got %v", err)
	}
}

func TestAccountService_DeactivateUser(t *testing.T) {
	repos, _, _, _, _, _, _ := newTestRepos()
	svc := newTestServices(repos)
	ctx := context.Background()

	user, err := svc.Account.CreateUser(ctx, &models.CreateUserRequest{
		Name: "Ana", Email: "ana@example.com", Role: "editor",
	})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	inactive := false
	updated, err := svc.Account.UpdateUser(ctx, user.ID, &models.UpdateUserRequest{Active: &inactive})
	if err != nil {
		t.Fatalf("UpdateUser failed: %v", err)
	}
	if updated.Active {
		t.Error("Expected user to be deactivated")
	}

	_, err = svc.Account.UpdateUser(ctx, "no-such-user", &models.UpdateUserRequest{Active: &inactive})
	if !errors.Is(err, service.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown user, got %v", err)
	}
}

func TestAccountService_Subscribe(t *testing.T) {
	repos, _, _, _, _, _, _ := newTestRepos()
	svc := newTestServices(repos)
	ctx := context.Background()

	sub, err := svc.Account.Subscribe(ctx, &models.SubscribeRequest{Email: "Reader@Example.com"})
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}
	if sub.Status != models.SubscriberStatusActive {
		t.Errorf("Expected active subscription, got %q", sub.Status)
	}
	if sub.Email != "reader@example.com" {
		t.Errorf("Expected normalized email, got %q", sub.Email)
	}

	if _, err := svc.Account.Subscribe(ctx, &models.SubscribeRequest{Email: "reader@example.com"}); !errors.Is(err, service.ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for repeat subscription, got %v", err)
	}

	if _, err := svc.Account.Subscribe(ctx, &models.SubscribeRequest{Email: "not-an-email"}); !errors.Is(err, service.ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for bad email, got %v", err)
	}
}
