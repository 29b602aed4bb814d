package app

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"github.com/example/carline/internal/ports/primary"
	"github.com/example/carline/internal/ports/secondary"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// mockCarRepository implements secondary.CarRepository for testing.
type mockCarRepository struct {
	cars      []*secondary.CarRecord
	appendErr error
	listErr   error
	nextIDErr error
}

func newMockCarRepository() *mockCarRepository {
	return &mockCarRepository{}
}

func (m *mockCarRepository) Append(ctx context.Context, car *secondary.CarRecord) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.cars = append(m.cars, car)
	return nil
}

func (m *mockCarRepository) List(ctx context.Context) ([]*secondary.CarRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	result := make([]*secondary.CarRecord, len(m.cars))
	copy(result, m.cars)
	return result, nil
}

func (m *mockCarRepository) NextID(ctx context.Context) (int, error) {
	if m.nextIDErr != nil {
		return 0, m.nextIDErr
	}
	return len(m.cars) + 1, nil
}

// ============================================================================
// Test Helper
// ============================================================================

func newTestCarStore() (*CarStoreImpl, *mockCarRepository) {
	carRepo := newMockCarRepository()
	store := NewCarStore(carRepo, zerolog.Nop())
	return store, carRepo
}

func corolla(lineID string) primary.SubmitRequest {
	return primary.SubmitRequest{Brand: "Toyota", Model: "Corolla", Doors: 4, LineID: lineID}
}

// ============================================================================
// Submit Tests
// ============================================================================

func TestSubmit_AppendsVerbatim(t *testing.T) {
	store, _ := newTestCarStore()
	ctx := context.Background()

	created, err := store.Submit(ctx, corolla("line1"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	cars, err := store.Snapshot(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := []primary.Car{{ID: 1, Brand: "Toyota", Model: "Corolla", Doors: 4, LineID: "line1", Status: "IN_PROGRESS"}}
	if diff := cmp.Diff(want, cars); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want[0], *created); diff != "" {
		t.Errorf("created car mismatch (-want +got):\n%s", diff)
	}
}

func TestSubmit_GrowsByOneAndIDsAreUnique(t *testing.T) {
	store, _ := newTestCarStore()
	ctx := context.Background()

	seen := make(map[int]bool)
	for i := 0; i < 20; i++ {
		before, _ := store.Snapshot(ctx)
		created, err := store.Submit(ctx, corolla("line1"))
		if err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
		after, _ := store.Snapshot(ctx)

		if len(after) != len(before)+1 {
			t.Fatalf("submit %d: length %d -> %d, want +1", i, len(before), len(after))
		}
		if seen[created.ID] {
			t.Fatalf("submit %d: duplicate id %d", i, created.ID)
		}
		seen[created.ID] = true
	}
}

func TestSubmit_NextIDError(t *testing.T) {
	store, repo := newTestCarStore()
	repo.nextIDErr = errors.New("sequence exhausted")

	calls := 0
	store.Subscribe(func(ctx context.Context, cars []primary.Car) { calls++ })

	_, err := store.Submit(context.Background(), corolla("line1"))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, repo.nextIDErr) {
		t.Errorf("expected wrapped repository error, got %v", err)
	}
	if calls != 0 {
		t.Errorf("expected no notification, got %d", calls)
	}
}

func TestSubmit_AppendError(t *testing.T) {
	store, repo := newTestCarStore()
	repo.appendErr = errors.New("disk full")

	calls := 0
	store.Subscribe(func(ctx context.Context, cars []primary.Car) { calls++ })

	if _, err := store.Submit(context.Background(), corolla("line1")); err == nil {
		t.Fatal("expected error, got nil")
	}
	if calls != 0 {
		t.Errorf("expected no notification, got %d", calls)
	}
}

// ============================================================================
// Snapshot Tests
// ============================================================================

func TestSnapshot_IsDefensiveCopy(t *testing.T) {
	store, _ := newTestCarStore()
	ctx := context.Background()

	if _, err := store.Submit(ctx, corolla("line1")); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	cars, _ := store.Snapshot(ctx)
	cars[0].Brand = "Tampered"
	cars = append(cars, primary.Car{ID: 99})

	fresh, _ := store.Snapshot(ctx)
	if len(fresh) != 1 {
		t.Fatalf("expected 1 car, got %d", len(fresh))
	}
	if fresh[0].Brand != "Toyota" {
		t.Errorf("expected store state untouched, got brand %q", fresh[0].Brand)
	}
}

func TestSnapshot_ListError(t *testing.T) {
	store, repo := newTestCarStore()
	repo.listErr = errors.New("closed")

	if _, err := store.Snapshot(context.Background()); !errors.Is(err, repo.listErr) {
		t.Errorf("expected wrapped list error, got %v", err)
	}
}

// ============================================================================
// Subscribe / Publish Tests
// ============================================================================

func TestSubmit_NotifiesEverySubscriberOnce(t *testing.T) {
	store, _ := newTestCarStore()
	ctx := context.Background()

	const n = 5
	calls := make([]int, n)
	lengths := make([]int, n)
	for i := 0; i < n; i++ {
		i := i
		store.Subscribe(func(ctx context.Context, cars []primary.Car) {
			calls[i]++
			lengths[i] = len(cars)
		})
	}

	if _, err := store.Submit(ctx, corolla("line1")); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	current, _ := store.Snapshot(ctx)
	for i := 0; i < n; i++ {
		if calls[i] != 1 {
			t.Errorf("subscriber %d called %d times, want 1", i, calls[i])
		}
		if lengths[i] != len(current) {
			t.Errorf("subscriber %d got %d cars, want %d", i, lengths[i], len(current))
		}
	}
}

func TestPublish_RegistrationOrder(t *testing.T) {
	store, _ := newTestCarStore()

	var order []string
	store.Subscribe(func(ctx context.Context, cars []primary.Car) { order = append(order, "first") })
	store.Subscribe(func(ctx context.Context, cars []primary.Car) { order = append(order, "second") })
	store.Subscribe(func(ctx context.Context, cars []primary.Car) { order = append(order, "third") })

	if err := store.Publish(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if diff := cmp.Diff([]string{"first", "second", "third"}, order); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestPublish_EachListenerGetsItsOwnSnapshot(t *testing.T) {
	store, _ := newTestCarStore()
	ctx := context.Background()

	store.Subscribe(func(ctx context.Context, cars []primary.Car) {
		cars[0].Brand = "Mutated"
	})
	var seen string
	store.Subscribe(func(ctx context.Context, cars []primary.Car) {
		seen = cars[0].Brand
	})

	if _, err := store.Submit(ctx, corolla("line1")); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if seen != "Toyota" {
		t.Errorf("second listener saw %q, want Toyota", seen)
	}
}

func TestSubmit_BackToBackNotifiesTwice(t *testing.T) {
	store, _ := newTestCarStore()
	ctx := context.Background()

	var lengths []int
	store.Subscribe(func(ctx context.Context, cars []primary.Car) {
		lengths = append(lengths, len(cars))
	})

	store.Submit(ctx, corolla("line1"))
	store.Submit(ctx, corolla("line2"))

	if diff := cmp.Diff([]int{1, 2}, lengths); diff != "" {
		t.Errorf("notifications mismatch (-want +got):\n%s", diff)
	}
}
