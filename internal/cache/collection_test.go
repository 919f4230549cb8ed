package cache

import (
	"errors"
	"testing"
	"time"
)

func TestGetOrLoadCachesWithinTTL(t *testing.T) {
	loads := 0
	load := func() ([]int, error) {
		loads++
		return []int{1, 2, 3}, nil
	}

	c := NewCollection[int](time.Minute, nil)

	for i := 0; i < 3; i++ {
		got, err := c.GetOrLoad(load)
		if err != nil {
			t.Fatalf("GetOrLoad: %v", err)
		}
		if len(got) != 3 {
			t.Fatalf("got %d items, want 3", len(got))
		}
	}

	if loads != 1 {
		t.Errorf("load called %d times, want 1", loads)
	}
}

func TestGetOrLoadReloadsAfterTTL(t *testing.T) {
	loads := 0
	load := func() ([]int, error) {
		loads++
		return []int{loads}, nil
	}

	c := NewCollection[int](10*time.Millisecond, nil)

	if _, err := c.GetOrLoad(load); err != nil {
		t.Fatal(err)
	}
	time.Sleep(20 * time.Millisecond)
	got, err := c.GetOrLoad(load)
	if err != nil {
		t.Fatal(err)
	}

	if loads != 2 {
		t.Errorf("load called %d times, want 2", loads)
	}
	if got[0] != 2 {
		t.Errorf("stale value served after TTL: %v", got)
	}
}

func TestInvalidateForcesReload(t *testing.T) {
	loads := 0
	load := func() ([]string, error) {
		loads++
		return []string{"x"}, nil
	}

	c := NewCollection[string](time.Hour, nil)
	_, _ = c.GetOrLoad(load)
	c.Invalidate()
	_, _ = c.GetOrLoad(load)

	if loads != 2 {
		t.Errorf("load called %d times after Invalidate, want 2", loads)
	}
}

func TestGetOrLoadReturnsDefensiveCopy(t *testing.T) {
	load := func() ([]int, error) { return []int{1, 2, 3}, nil }
	c := NewCollection[int](time.Hour, nil)

	first, _ := c.GetOrLoad(load)
	first[0] = 99

	second, _ := c.GetOrLoad(load)
	if second[0] != 1 {
		t.Errorf("caller mutation leaked into cache: %v", second)
	}
}

func TestGetOrLoadClonesReferenceFields(t *testing.T) {
	load := func() ([][]string, error) { return [][]string{{"react"}}, nil }
	c := NewCollection(time.Hour, func(v []string) []string {
		return append([]string(nil), v...)
	})

	first, _ := c.GetOrLoad(load)
	first[0][0] = "poisoned"

	second, _ := c.GetOrLoad(load)
	if second[0][0] != "react" {
		t.Errorf("in-place mutation leaked through the snapshot: %v", second)
	}
}

func TestGetOrLoadPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	c := NewCollection[int](time.Hour, nil)

	if _, err := c.GetOrLoad(func() ([]int, error) { return nil, boom }); !errors.Is(err, boom) {
		t.Errorf("err = %v, want boom", err)
	}

	// A failed load must not poison the cache as valid.
	loads := 0
	_, _ = c.GetOrLoad(func() ([]int, error) { loads++; return []int{1}, nil })
	if loads != 1 {
		t.Error("load not retried after failure")
	}
}
