package services

import (
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/touhid12310/bdtuitions-android-ios/domain"
)

// OTPChallenge models the 6-slot code entry state: which slot holds which
// digit and where input focus sits. It is ephemeral and never persisted.
type OTPChallenge struct {
	PhoneNumber string
	Purpose     domain.OTPPurpose

	slots [domain.OTPCodeLength]byte
	focus int
}

// NewOTPChallenge starts an empty challenge for the phone number.
func NewOTPChallenge(phone string, purpose domain.OTPPurpose) *OTPChallenge {
	return &OTPChallenge{PhoneNumber: phone, Purpose: purpose}
}

// Input feeds user input at the focused slot. A single digit fills the slot
// and advances focus; a multi-character paste distributes digits
// left-to-right across the remaining slots and leaves focus on the last
// filled slot. Non-digit characters are dropped.
func (c *OTPChallenge) Input(value string) {
	digits := keepDigits(value)
	if digits == "" {
		return
	}

	if len(digits) == 1 {
		c.slots[c.focus] = digits[0]
		if c.focus < domain.OTPCodeLength-1 {
			c.focus++
		}
		return
	}

	for i := 0; i < len(digits) && c.focus+i < domain.OTPCodeLength; i++ {
		c.slots[c.focus+i] = digits[i]
	}
	last := c.focus + len(digits) - 1
	if last > domain.OTPCodeLength-1 {
		last = domain.OTPCodeLength - 1
	}
	c.focus = last
}

// Backspace clears the focused slot; on an already empty slot it moves focus
// back one position instead.
func (c *OTPChallenge) Backspace() {
	if c.slots[c.focus] == 0 {
		if c.focus > 0 {
			c.focus--
		}
		return
	}
	c.slots[c.focus] = 0
}

// Focus is the slot index input currently targets.
func (c *OTPChallenge) Focus() int {
	return c.focus
}

// Code assembles the entered digits in slot order.
func (c *OTPChallenge) Code() string {
	var b strings.Builder
	for _, slot := range c.slots {
		if slot != 0 {
			b.WriteByte(slot)
		}
	}
	return b.String()
}

// Complete reports whether all slots are filled.
func (c *OTPChallenge) Complete() bool {
	for _, slot := range c.slots {
		if slot == 0 {
			return false
		}
	}
	return true
}

// Reset empties every slot and returns focus to the first.
func (c *OTPChallenge) Reset() {
	c.slots = [domain.OTPCodeLength]byte{}
	c.focus = 0
}

func keepDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Countdown is a cancellable one-shot timer backing the resend cooldown
// display. The stop handle must be released on flow teardown so the callback
// cannot fire after the screen is gone.
type Countdown struct {
	mu       sync.Mutex
	deadline time.Time
	timer    *time.Timer
	now      func() time.Time
}

// NewCountdown creates an inactive countdown.
func NewCountdown() *Countdown {
	return &Countdown{now: time.Now}
}

// Start arms the countdown for the window and schedules onExpire. Restarting
// an active countdown replaces the prior schedule.
func (c *Countdown) Start(window time.Duration, onExpire func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
	}
	c.deadline = c.now().Add(window)
	if onExpire != nil {
		c.timer = time.AfterFunc(window, onExpire)
	}
}

// Remaining is the number of whole seconds left, rounded up; zero once
// expired or never started.
func (c *Countdown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	left := c.deadline.Sub(c.now())
	if left <= 0 {
		return 0
	}
	secs := int(left / time.Second)
	if left%time.Second > 0 {
		secs++
	}
	return secs
}

// Active reports whether the cooldown deadline has not yet passed. The
// boundary is inclusive: at the deadline instant the countdown still counts
// as active.
func (c *Countdown) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.now().After(c.deadline)
}

// Stop releases the scheduled callback. Safe to call repeatedly and on a
// countdown that never started.
func (c *Countdown) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}
