package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"item-service/internal/item"
	"item-service/internal/item/repository"
	"item-service/internal/item/usecase"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockRepo struct {
	items []item.Item

	findErr   error
	listErr   error
	saveErr   error
	deleteErr error

	txCalls     int
	findCalls   []repository.FindItemOptions
	saveCalls   []repository.SaveItemOptions
	deleteCalls []uuid.UUID
}

func (m *mockRepo) WithTx(ctx context.Context, fn func(ctx context.Context, repo repository.ItemRepository) error) error {
	m.txCalls++
	return fn(ctx, m)
}

func (m *mockRepo) Ping(ctx context.Context) error { return nil }

func (m *mockRepo) FindItemByID(ctx context.Context, opt repository.FindItemOptions) (item.Item, error) {
	m.findCalls = append(m.findCalls, opt)
	if m.findErr != nil {
		return item.Item{}, m.findErr
	}
	for _, it := range m.items {
		if it.ID == opt.ID {
			return it, nil
		}
	}
	return item.Item{}, nil
}

func (m *mockRepo) FindAllItems(ctx context.Context) ([]item.Item, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.items, nil
}

func (m *mockRepo) SaveItem(ctx context.Context, opt repository.SaveItemOptions) (item.Item, error) {
	m.saveCalls = append(m.saveCalls, opt)
	if m.saveErr != nil {
		return item.Item{}, m.saveErr
	}
	id := opt.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	return item.Item{ID: id, Name: opt.Name, Colour: opt.Colour}, nil
}

func (m *mockRepo) DeleteItem(ctx context.Context, id uuid.UUID) error {
	m.deleteCalls = append(m.deleteCalls, id)
	return m.deleteErr
}

var blankRequests = []struct {
	name     string
	itemName string
	colour   string
}{
	{"empty colour", "Widget", ""},
	{"empty name", "", "red"},
	{"whitespace colour", "Widget", "   "},
	{"whitespace name", "\t\n", "red"},
	{"both empty", "", ""},
}

func TestCreateItem(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := &mockRepo{}
		uc := usecase.New(repo, &mockLogger{})

		id, err := uc.CreateItem(ctx, item.CreateItemRequest{Name: "Widget", Colour: "red"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id == uuid.Nil {
			t.Error("expected generated id")
		}
		if len(repo.saveCalls) != 1 {
			t.Fatalf("expected 1 save, got %d", len(repo.saveCalls))
		}
		if got := repo.saveCalls[0]; got.ID != uuid.Nil || got.Name != "Widget" || got.Colour != "red" {
			t.Errorf("unexpected save options: %+v", got)
		}
	})

	for _, tc := range blankRequests {
		t.Run("invalid "+tc.name, func(t *testing.T) {
			repo := &mockRepo{}
			uc := usecase.New(repo, &mockLogger{})

			_, err := uc.CreateItem(ctx, item.CreateItemRequest{Name: tc.itemName, Colour: tc.colour})
			if !errors.Is(err, item.ErrInvalidItem) {
				t.Fatalf("expected ErrInvalidItem, got %v", err)
			}
			if len(repo.saveCalls) != 0 || repo.txCalls != 0 {
				t.Error("no persistence expected for invalid input")
			}
		})
	}

	t.Run("repository failure", func(t *testing.T) {
		repo := &mockRepo{saveErr: repository.ErrFailedToInsert}
		uc := usecase.New(repo, &mockLogger{})

		_, err := uc.CreateItem(ctx, item.CreateItemRequest{Name: "Widget", Colour: "red"})
		if !errors.Is(err, repository.ErrFailedToInsert) {
			t.Fatalf("expected ErrFailedToInsert, got %v", err)
		}
		if item.KindOf(err) != item.KindUnexpected {
			t.Errorf("expected unexpected kind, got %v", item.KindOf(err))
		}
	})
}

func TestUpdateItem(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		repo := &mockRepo{items: []item.Item{{ID: id, Name: "Widget", Colour: "red"}}}
		uc := usecase.New(repo, &mockLogger{})

		if err := uc.UpdateItem(ctx, id, item.UpdateItemRequest{Name: "Gadget", Colour: "blue"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.findCalls) != 1 || !repo.findCalls[0].ForUpdate {
			t.Errorf("expected one locking lookup, got %+v", repo.findCalls)
		}
		if len(repo.saveCalls) != 1 {
			t.Fatalf("expected 1 save, got %d", len(repo.saveCalls))
		}
		if got := repo.saveCalls[0]; got.ID != id || got.Name != "Gadget" || got.Colour != "blue" {
			t.Errorf("unexpected save options: %+v", got)
		}
	})

	t.Run("unchanged record is not rewritten", func(t *testing.T) {
		repo := &mockRepo{items: []item.Item{{ID: id, Name: "Widget", Colour: "red"}}}
		uc := usecase.New(repo, &mockLogger{})

		if err := uc.UpdateItem(ctx, id, item.UpdateItemRequest{Name: "Widget", Colour: "red"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.saveCalls) != 0 {
			t.Errorf("expected no save, got %d", len(repo.saveCalls))
		}
	})

	t.Run("not found", func(t *testing.T) {
		repo := &mockRepo{}
		uc := usecase.New(repo, &mockLogger{})

		err := uc.UpdateItem(ctx, id, item.UpdateItemRequest{Name: "Gadget", Colour: "blue"})
		if !errors.Is(err, item.ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
		if len(repo.saveCalls) != 0 {
			t.Error("no save expected for missing item")
		}
	})

	for _, tc := range blankRequests {
		t.Run("invalid "+tc.name, func(t *testing.T) {
			repo := &mockRepo{items: []item.Item{{ID: id, Name: "Widget", Colour: "red"}}}
			uc := usecase.New(repo, &mockLogger{})

			err := uc.UpdateItem(ctx, id, item.UpdateItemRequest{Name: tc.itemName, Colour: tc.colour})
			if !errors.Is(err, item.ErrInvalidItem) {
				t.Fatalf("expected ErrInvalidItem, got %v", err)
			}
			if len(repo.findCalls) != 0 || len(repo.saveCalls) != 0 {
				t.Error("validation must happen before lookup and persistence")
			}
		})
	}

	t.Run("invalid input wins over missing record", func(t *testing.T) {
		uc := usecase.New(&mockRepo{}, &mockLogger{})

		err := uc.UpdateItem(ctx, uuid.New(), item.UpdateItemRequest{Name: "", Colour: "red"})
		if !errors.Is(err, item.ErrInvalidItem) {
			t.Fatalf("expected ErrInvalidItem, got %v", err)
		}
	})

	t.Run("lookup failure", func(t *testing.T) {
		repo := &mockRepo{findErr: repository.ErrFailedToGet}
		uc := usecase.New(repo, &mockLogger{})

		err := uc.UpdateItem(ctx, id, item.UpdateItemRequest{Name: "Gadget", Colour: "blue"})
		if !errors.Is(err, repository.ErrFailedToGet) {
			t.Fatalf("expected ErrFailedToGet, got %v", err)
		}
	})
}

func TestGetItem(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		repo := &mockRepo{items: []item.Item{{ID: id, Name: "test-item", Colour: "red"}}}
		uc := usecase.New(repo, &mockLogger{})

		resp, err := uc.GetItem(ctx, id)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.ID != id || resp.Name != "test-item" || resp.Colour != "red" {
			t.Errorf("unexpected response: %+v", resp)
		}
		if len(repo.findCalls) != 1 || repo.findCalls[0].ForUpdate {
			t.Errorf("expected one non-locking lookup, got %+v", repo.findCalls)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc := usecase.New(&mockRepo{}, &mockLogger{})

		_, err := uc.GetItem(ctx, id)
		if !errors.Is(err, item.ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})
}

func TestGetItems(t *testing.T) {
	ctx := context.Background()

	t.Run("maps in storage order", func(t *testing.T) {
		repo := &mockRepo{items: []item.Item{
			{ID: uuid.New(), Name: "test-item", Colour: "red"},
			{ID: uuid.New(), Name: "test-item2", Colour: "blue"},
		}}
		uc := usecase.New(repo, &mockLogger{})

		resp, err := uc.GetItems(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.ItemResponses) != 2 {
			t.Fatalf("expected 2 items, got %d", len(resp.ItemResponses))
		}
		if resp.ItemResponses[0].Name != "test-item" || resp.ItemResponses[0].Colour != "red" {
			t.Errorf("unexpected first item: %+v", resp.ItemResponses[0])
		}
		if resp.ItemResponses[1].Name != "test-item2" || resp.ItemResponses[1].Colour != "blue" {
			t.Errorf("unexpected second item: %+v", resp.ItemResponses[1])
		}
	})

	t.Run("empty", func(t *testing.T) {
		uc := usecase.New(&mockRepo{}, &mockLogger{})

		resp, err := uc.GetItems(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.ItemResponses == nil || len(resp.ItemResponses) != 0 {
			t.Errorf("expected empty non-nil slice, got %v", resp.ItemResponses)
		}
	})

	t.Run("repository failure", func(t *testing.T) {
		uc := usecase.New(&mockRepo{listErr: repository.ErrFailedToList}, &mockLogger{})

		if _, err := uc.GetItems(ctx); !errors.Is(err, repository.ErrFailedToList) {
			t.Fatalf("expected ErrFailedToList, got %v", err)
		}
	})
}

func TestDeleteItem(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		repo := &mockRepo{items: []item.Item{{ID: id, Name: "test-item", Colour: "red"}}}
		uc := usecase.New(repo, &mockLogger{})

		if err := uc.DeleteItem(ctx, id); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.deleteCalls) != 1 || repo.deleteCalls[0] != id {
			t.Errorf("unexpected delete calls: %v", repo.deleteCalls)
		}
	})

	t.Run("not found", func(t *testing.T) {
		repo := &mockRepo{}
		uc := usecase.New(repo, &mockLogger{})

		if err := uc.DeleteItem(ctx, id); !errors.Is(err, item.ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
		if len(repo.deleteCalls) != 0 {
			t.Error("no delete expected for missing item")
		}
	})

	t.Run("repository failure", func(t *testing.T) {
		repo := &mockRepo{
			items:     []item.Item{{ID: id, Name: "test-item", Colour: "red"}},
			deleteErr: repository.ErrFailedToDelete,
		}
		uc := usecase.New(repo, &mockLogger{})

		if err := uc.DeleteItem(ctx, id); !errors.Is(err, repository.ErrFailedToDelete) {
			t.Fatalf("expected ErrFailedToDelete, got %v", err)
		}
	})
}
