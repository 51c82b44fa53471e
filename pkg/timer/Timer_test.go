package timer

import "math/rand"
import "testing"
import "time"


func TestTimerFiresAfterDuration(t *testing.T) {
	fired := make(chan struct{}, 1)
	tm := New(func() { fired <- struct{}{} })

	tm.Arm(10 * time.Millisecond)

	select {
		case <- fired:
		case <- time.After(200 * time.Millisecond):
			t.Fatal("timer did not fire")
	}
}

func TestCancelSuppressesFire(t *testing.T) {
	fired := make(chan struct{}, 1)
	tm := New(func() { fired <- struct{}{} })

	tm.Arm(30 * time.Millisecond)
	tm.Cancel()

	select {
		case <- fired:
			t.Fatal("cancelled timer fired")
		case <- time.After(80 * time.Millisecond):
	}
}

func TestResetSupersedesPriorDeadline(t *testing.T) {
	fireCount := 0
	fired := make(chan struct{}, 4)

	tm := New(func() { fireCount++; fired <- struct{}{} })

	tm.Arm(20 * time.Millisecond)
	tm.Reset(60 * time.Millisecond)

	select {
		case <- fired:
		case <- time.After(200 * time.Millisecond):
			t.Fatal("reset timer never fired")
	}

	time.Sleep(50 * time.Millisecond)

	if fireCount != 1 { t.Fatalf("expected exactly one fire, got %d", fireCount) }
}

func TestRandomDurationBounds(t *testing.T) {
	src := rand.New(rand.NewSource(1))

	for i := 0; i < 100; i++ {
		d := RandomDuration(src, 150, 300)
		if d < 150*time.Millisecond || d > 300*time.Millisecond {
			t.Fatalf("duration %v out of bounds [150,300]ms", d)
		}
	}
}

func TestRandomDurationDegenerateRange(t *testing.T) {
	src := rand.New(rand.NewSource(1))

	d := RandomDuration(src, 50, 50)
	if d != 50*time.Millisecond { t.Fatalf("expected 50ms, got %v", d) }

	d = RandomDuration(src, 50, 10)
	if d != 50*time.Millisecond { t.Fatalf("expected floor of 50ms when max<=min, got %v", d) }
}
