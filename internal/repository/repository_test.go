package repository_test

import (
	"context"
	"testing"

	"github.com/portfolio-content-api/internal/mocks"
	"github.com/portfolio-content-api/internal/models"
)

func TestMockBlogRepositorySlugExists(t *testing.T) {
	repo := mocks.NewMockBlogRepository()
	ctx := context.Background()

	post, err := repo.Create(ctx, &models.BlogPostInput{Title: "Hello", Content: "c", Author: "a"}, "hello")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	exists, err := repo.SlugExists(ctx, "hello", 0)
	if err != nil {
		t.Fatalf("SlugExists failed: %v", err)
	}
	if !exists {
		t.Error("slug hello should exist")
	}

	// The post itself is excluded when probing for an update
	exists, _ = repo.SlugExists(ctx, "hello", post.ID)
	if exists {
		t.Error("slug should not collide with its own post")
	}

	exists, _ = repo.SlugExists(ctx, "other", 0)
	if exists {
		t.Error("slug other should not exist")
	}
}

func TestMockAnalyticsUpsert(t *testing.T) {
	repo := mocks.NewMockAnalyticsRepository()
	ctx := context.Background()

	visit := &models.TrackInput{SessionID: "s1", PagePath: "/home"}
	if err := repo.UpsertVisit(ctx, visit); err != nil {
		t.Fatalf("UpsertVisit failed: %v", err)
	}

	// Second report with a duration updates in place
	visit.VisitDuration = 42
	if err := repo.UpsertVisit(ctx, visit); err != nil {
		t.Fatalf("UpsertVisit failed: %v", err)
	}
	if len(repo.Events) != 1 {
		t.Fatalf("got %d events, want 1", len(repo.Events))
	}

	// A zero duration never clobbers a recorded one
	visit.VisitDuration = 0
	repo.UpsertVisit(ctx, visit)
	for _, e := range repo.Events {
		if e.VisitDuration != 42 {
			t.Errorf("VisitDuration = %d, want 42", e.VisitDuration)
		}
	}

	// A different page is a new row
	repo.UpsertVisit(ctx, &models.TrackInput{SessionID: "s1", PagePath: "/about"})
	if len(repo.Events) != 2 {
		t.Errorf("got %d events, want 2", len(repo.Events))
	}

	overview, err := repo.Overview(ctx)
	if err != nil {
		t.Fatalf("Overview failed: %v", err)
	}
	if overview.TotalVisits != 2 {
		t.Errorf("TotalVisits = %d, want 2", overview.TotalVisits)
	}
	if overview.UniqueSessions != 1 {
		t.Errorf("UniqueSessions = %d, want 1", overview.UniqueSessions)
	}
}

func TestMockUserRepositoryBootstrap(t *testing.T) {
	repo := mocks.NewMockUserRepository()
	ctx := context.Background()

	if err := repo.EnsureBootstrapAdmin(ctx, "admin@example.com", "Admin", "hash"); err != nil {
		t.Fatalf("EnsureBootstrapAdmin failed: %v", err)
	}

	user, err := repo.GetByEmail(ctx, "Admin@Example.COM")
	if err != nil {
		t.Fatalf("GetByEmail failed: %v", err)
	}
	if user == nil {
		t.Fatal("bootstrap admin not found by case-insensitive email")
	}
	if user.Role != "admin" {
		t.Errorf("Role = %q, want admin", user.Role)
	}

	// Idempotent on restart
	if err := repo.EnsureBootstrapAdmin(ctx, "admin@example.com", "Admin", "other-hash"); err != nil {
		t.Fatalf("second EnsureBootstrapAdmin failed: %v", err)
	}
	if len(repo.Users) != 1 {
		t.Errorf("got %d users, want 1", len(repo.Users))
	}
	if user.PasswordHash != "hash" {
		t.Error("existing admin credentials should not be overwritten")
	}
}
