package timer

import "sync"
import "time"


//=========================================== Clock & Timers


/*
	Timer models the one-shot deadline abstraction the Raft Node drives
	its clock with: leader-timeout, election-timeout, and a per-peer
	heartbeat-timeout. Every arm/reset bumps a generation counter; the
	fired callback closes over the generation it was armed with, so a
	fire racing a concurrent Cancel/Reset is recognized as stale and
	dropped instead of acting on a role that has already moved on.

	This generalizes a stop-then-drain-then-reset sequence around a
	single *time.Timer field into a reusable type good for all three
	node timers.
*/

type Timer struct {
	mutex sync.Mutex
	timer *time.Timer
	generation uint64
	onFire func()
}

func New(onFire func()) *Timer {
	return &Timer{ onFire: onFire }
}

/*
	Arm schedules onFire to run once after duration elapses. Any
	previously scheduled fire is superseded (its generation no longer
	matches) even if it is already in flight.
*/

func (t *Timer) Arm(duration time.Duration) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.stopLocked()

	t.generation++
	gen := t.generation

	t.timer = time.AfterFunc(duration, func() {
		t.mutex.Lock()
		current := t.generation
		t.mutex.Unlock()

		if current != gen { return }

		t.onFire()
	})
}

/*
	Reset is Cancel-then-Arm: it discards any in-flight fire for the
	previous deadline and schedules a fresh one.
*/

func (t *Timer) Reset(duration time.Duration) {
	t.Arm(duration)
}

/*
	Cancel stops the timer and bumps the generation so that a fire
	already in flight (raced the Stop call) is ignored when it runs.
*/

func (t *Timer) Cancel() {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.stopLocked()
	t.generation++
}

func (t *Timer) stopLocked() {
	if t.timer == nil { return }

	if !t.timer.Stop() {
		select {
			case <- t.timer.C:
			default:
		}
	}
}
