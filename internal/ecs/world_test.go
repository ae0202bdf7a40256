package ecs

import (
	"slices"
	"testing"
)

// stub components used only in tests
type testComp struct{ val int }

func (testComp) Type() ComponentType { return 1 }

type otherComp struct{}

func (otherComp) Type() ComponentType { return 2 }

func TestCreateEntity(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	if id == NilEntity {
		t.Fatal("expected non-nil entity ID")
	}
	if !w.Alive(id) {
		t.Fatal("expected entity to be alive after creation")
	}
}

func TestAddAndGetComponent(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Add(id, testComp{val: 42})

	c := w.Get(id, ComponentType(1))
	if c == nil {
		t.Fatal("expected component, got nil")
	}
	tc, ok := c.(testComp)
	if !ok {
		t.Fatal("wrong component type returned")
	}
	if tc.val != 42 {
		t.Fatalf("expected val=42, got %d", tc.val)
	}
}

func TestAddReplacesExisting(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Add(id, testComp{val: 1})
	w.Add(id, testComp{val: 2})
	if got := w.Get(id, 1).(testComp).val; got != 2 {
		t.Fatalf("val = %d; want 2", got)
	}
	if w.Count(1) != 1 {
		t.Fatalf("Count = %d; want 1", w.Count(1))
	}
}

func TestDeleteIsDeferredUntilMaintain(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Add(id, testComp{val: 7})
	w.Delete(id)

	if w.Alive(id) {
		t.Fatal("entity should not be alive after Delete")
	}
	if !w.Pending(id) {
		t.Fatal("entity should be pending until Maintain")
	}
	if w.Get(id, ComponentType(1)) == nil {
		t.Fatal("components must stay readable until Maintain")
	}
	if len(w.Query(ComponentType(1))) != 0 {
		t.Fatal("Query must skip deleted entities")
	}

	removed := w.Maintain()
	if len(removed) != 1 || removed[0] != id {
		t.Fatalf("Maintain returned %v; want [%v]", removed, id)
	}
	if w.Get(id, ComponentType(1)) != nil {
		t.Fatal("component should be gone after Maintain")
	}
	if w.Pending(id) {
		t.Fatal("entity should no longer be pending")
	}
}

func TestDeleteTwiceIsNoop(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Delete(id)
	w.Delete(id)
	if got := w.Maintain(); len(got) != 1 {
		t.Fatalf("expected a single removal, got %v", got)
	}
	if got := w.Maintain(); got != nil {
		t.Fatalf("second Maintain should remove nothing, got %v", got)
	}
}

func TestAddToDeletedEntityPanics(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Delete(id)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when adding to a deleted entity")
		}
	}()
	w.Add(id, testComp{})
}

func TestAddToUnknownEntityPanics(t *testing.T) {
	w := NewWorld()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when adding to an entity never created")
		}
	}()
	w.Add(EntityID(99), testComp{})
}

func TestQueryFiltersCorrectly(t *testing.T) {
	w := NewWorld()

	// entity with both A and B
	both := w.CreateEntity()
	w.Add(both, testComp{})
	w.Add(both, otherComp{})

	// entity with only A
	onlyA := w.CreateEntity()
	w.Add(onlyA, testComp{})

	results := w.Query(ComponentType(1), ComponentType(2))
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0] != both {
		t.Fatalf("expected entity %v in results, got %v", both, results[0])
	}
}

func TestQueryReturnsCreationOrder(t *testing.T) {
	w := NewWorld()
	var want []EntityID
	for i := range 50 {
		id := w.CreateEntity()
		w.Add(id, testComp{val: i})
		want = append(want, id)
	}
	for range 5 {
		if got := w.Query(ComponentType(1)); !slices.Equal(got, want) {
			t.Fatalf("Query order = %v; want %v", got, want)
		}
	}
}

func TestRemoveComponent(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Add(id, testComp{val: 5})

	w.Remove(id, ComponentType(1))

	if w.Get(id, ComponentType(1)) != nil {
		t.Fatal("component should be nil after Remove")
	}
}

func TestRemoveNonexistentIsNoop(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	// Removing a component type that was never added must not panic.
	w.Remove(id, ComponentType(99))
}

func TestClearDropsWholeStore(t *testing.T) {
	w := NewWorld()
	a, b := w.CreateEntity(), w.CreateEntity()
	w.Add(a, testComp{})
	w.Add(b, testComp{})
	w.Add(b, otherComp{})

	w.Clear(ComponentType(1))

	if w.Count(1) != 0 {
		t.Fatalf("Count = %d after Clear; want 0", w.Count(1))
	}
	if !w.Has(b, ComponentType(2)) {
		t.Fatal("Clear must leave other stores untouched")
	}
}

func TestEntitiesSkipsDeleted(t *testing.T) {
	w := NewWorld()
	a := w.CreateEntity()
	b := w.CreateEntity()
	c := w.CreateEntity()
	w.Delete(b)
	if got := w.Entities(); !slices.Equal(got, []EntityID{a, c}) {
		t.Fatalf("Entities = %v; want [%v %v]", got, a, c)
	}
}

func TestHasComponent(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()

	if w.Has(id, ComponentType(1)) {
		t.Fatal("Has should return false before Add")
	}
	w.Add(id, testComp{val: 1})
	if !w.Has(id, ComponentType(1)) {
		t.Fatal("Has should return true after Add")
	}
	w.Remove(id, ComponentType(1))
	if w.Has(id, ComponentType(1)) {
		t.Fatal("Has should return false after Remove")
	}
}
