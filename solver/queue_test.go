package solver

import "testing"

func TestQueueOrder(t *testing.T) {
	activity := []float64{1.0, 5.0, 3.0, 4.0, 2.0}
	q := newQueue(activity)
	expected := []int{1, 3, 2, 4, 0}
	for _, e := range expected {
		if q.empty() {
			t.Fatalf("queue empty, expected %d", e)
		}
		if v := q.removeMax(); v != e {
			t.Errorf("expected %d, got %d", e, v)
		}
	}
	if !q.empty() {
		t.Errorf("queue should be empty")
	}
}

func TestQueueDecrease(t *testing.T) {
	activity := []float64{1.0, 5.0, 3.0}
	q := newQueue(activity)
	activity[0] = 10.0
	q.decrease(0)
	if v := q.removeMax(); v != 0 {
		t.Errorf("after bumping var 0, expected it first, got %d", v)
	}
}

func TestQueueReinsert(t *testing.T) {
	q := newQueue([]float64{2.0, 1.0})
	if v := q.removeMax(); v != 0 {
		t.Fatalf("expected 0, got %d", v)
	}
	if q.contains(0) {
		t.Errorf("0 was removed, should not be contained")
	}
	if !q.contains(1) {
		t.Errorf("1 should still be contained")
	}
	q.insert(0)
	if !q.contains(0) {
		t.Errorf("0 was reinserted, should be contained")
	}
	q.insert(0) // Inserting twice must be a no-op.
	if q.len() != 2 {
		t.Errorf("expected len 2, got %d", q.len())
	}
}

func TestQueueBuild(t *testing.T) {
	q := newQueue([]float64{1.0, 4.0, 2.0, 3.0})
	q.removeMax()
	q.build([]int{0, 2, 3})
	expected := []int{3, 2, 0}
	for _, e := range expected {
		if v := q.removeMax(); v != e {
			t.Errorf("expected %d, got %d", e, v)
		}
	}
}
