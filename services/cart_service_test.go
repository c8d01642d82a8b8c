package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"golang.org/x/sync/errgroup"

	"github.com/youssofmousssa/luxestorebackeend/entity"
	"github.com/youssofmousssa/luxestorebackeend/pkg/apperr"
	"github.com/youssofmousssa/luxestorebackeend/repository"
)

func items(raw ...string) *entity.LineItems {
	out := entity.LineItems{}
	for _, r := range raw {
		out = append(out, json.RawMessage(r))
	}
	return &out
}

func TestSaveCartTwiceKeepsOneRow(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := repository.NewCartRepository(db)
	s := NewCartService(repo)
	u := mustCreateUser(t, db, "a@x.com", entity.RoleUser)

	first := items(`{"productId":"p1","qty":1}`)
	if err := s.Save(ctx, u.ID, first); err != nil {
		t.Fatalf("save 1: %v", err)
	}
	if err := s.Save(ctx, u.ID, first); err != nil {
		t.Fatalf("save 2: %v", err)
	}
	latest := items(`{"productId":"p2","qty":3}`, `{"productId":"p3","qty":1}`)
	if err := s.Save(ctx, u.ID, latest); err != nil {
		t.Fatalf("save 3: %v", err)
	}

	if n := countRows(t, db, &entity.Cart{}, "user_id = ?", u.ID); n != 1 {
		t.Fatalf("cart rows = %d, want 1", n)
	}

	cart, err := s.Get(ctx, u.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(cart.Items) != 2 || string(cart.Items[0]) != `{"productId":"p2","qty":3}` {
		t.Fatalf("items = %s", cart.Items)
	}
}

func TestSaveCartConcurrent(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := repository.NewCartRepository(db)
	s := NewCartService(repo)
	u := mustCreateUser(t, db, "a@x.com", entity.RoleUser)

	var g errgroup.Group
	for i := 0; i < 16; i++ {
		i := i
		g.Go(func() error {
			return s.Save(ctx, u.ID, items(fmt.Sprintf(`{"n":%d}`, i)))
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent save: %v", err)
	}

	if n := countRows(t, db, &entity.Cart{}, "user_id = ?", u.ID); n != 1 {
		t.Fatalf("cart rows = %d, want 1", n)
	}
	cart, _ := s.Get(ctx, u.ID)
	if len(cart.Items) != 1 {
		t.Fatalf("items = %s, want exactly one writer's contents", cart.Items)
	}
}

func TestSaveCartRequiresItems(t *testing.T) {
	db := newTestDB(t)
	s := NewCartService(repository.NewCartRepository(db))
	u := mustCreateUser(t, db, "a@x.com", entity.RoleUser)

	if err := s.Save(context.Background(), u.ID, nil); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("err = %v", err)
	}
	// empty list is a valid cart
	if err := s.Save(context.Background(), u.ID, items()); err != nil {
		t.Fatalf("empty cart: %v", err)
	}
}

func TestGetCartWithoutSave(t *testing.T) {
	db := newTestDB(t)
	s := NewCartService(repository.NewCartRepository(db))

	cart, err := s.Get(context.Background(), "nobody")
	if err != nil {
		t.Fatal(err)
	}
	if cart.Items == nil || len(cart.Items) != 0 {
		t.Fatalf("items = %#v", cart.Items)
	}
}
