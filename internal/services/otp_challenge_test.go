package services

import (
	"testing"
	"time"

	"github.com/touhid12310/bdtuitions-android-ios/domain"
)

func TestOTPChallenge_SingleDigitAdvancesFocus(t *testing.T) {
	challenge := NewOTPChallenge("01711111111", domain.OTPPurposeRegistration)

	for i, digit := range []string{"1", "2", "3", "4", "5", "6"} {
		challenge.Input(digit)
		want := i + 1
		if want > domain.OTPCodeLength-1 {
			want = domain.OTPCodeLength - 1
		}
		if challenge.Focus() != want {
			t.Errorf("after digit %d: focus = %d, want %d", i+1, challenge.Focus(), want)
		}
	}

	if code := challenge.Code(); code != "123456" {
		t.Errorf("Code() = %q, want 123456", code)
	}
	if !challenge.Complete() {
		t.Error("all slots filled, Complete() must be true")
	}
}

func TestOTPChallenge_PasteDistributesDigits(t *testing.T) {
	tests := []struct {
		name      string
		presets   []string
		paste     string
		wantCode  string
		wantFocus int
	}{
		{
			name:      "full paste into empty slots",
			paste:     "123456",
			wantCode:  "123456",
			wantFocus: 5,
		},
		{
			name:      "partial paste",
			paste:     "123",
			wantCode:  "123",
			wantFocus: 2,
		},
		{
			name:      "paste after typed digits",
			presets:   []string{"9", "8"},
			paste:     "7654",
			wantCode:  "987654",
			wantFocus: 5,
		},
		{
			name:      "overlong paste truncates at the last slot",
			paste:     "1234567890",
			wantCode:  "123456",
			wantFocus: 5,
		},
		{
			name:      "non-digits are dropped",
			paste:     "1a2b3c",
			wantCode:  "123",
			wantFocus: 2,
		},
		{
			name:      "no digits is a no-op",
			paste:     "abc",
			wantCode:  "",
			wantFocus: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			challenge := NewOTPChallenge("01711111111", domain.OTPPurposeRegistration)
			for _, preset := range tt.presets {
				challenge.Input(preset)
			}
			challenge.Input(tt.paste)

			if code := challenge.Code(); code != tt.wantCode {
				t.Errorf("Code() = %q, want %q", code, tt.wantCode)
			}
			if challenge.Focus() != tt.wantFocus {
				t.Errorf("Focus() = %d, want %d", challenge.Focus(), tt.wantFocus)
			}
		})
	}
}

func TestOTPChallenge_Backspace(t *testing.T) {
	challenge := NewOTPChallenge("01711111111", domain.OTPPurposeRegistration)
	challenge.Input("1")
	challenge.Input("2")
	// Focus now sits on the empty third slot.

	challenge.Backspace()
	if challenge.Focus() != 1 {
		t.Errorf("backspace on empty slot: focus = %d, want 1", challenge.Focus())
	}
	if code := challenge.Code(); code != "12" {
		t.Errorf("moving focus must not clear digits, Code() = %q", code)
	}

	challenge.Backspace()
	if code := challenge.Code(); code != "1" {
		t.Errorf("backspace on filled slot must clear it, Code() = %q", code)
	}
	if challenge.Focus() != 1 {
		t.Errorf("clearing keeps focus in place, got %d", challenge.Focus())
	}

	challenge.Backspace() // move back to slot 0
	challenge.Backspace() // clear slot 0
	challenge.Backspace() // already at the first empty slot
	if challenge.Focus() != 0 || challenge.Code() != "" {
		t.Errorf("focus = %d, code = %q, want empty challenge", challenge.Focus(), challenge.Code())
	}
}

func TestOTPChallenge_Reset(t *testing.T) {
	challenge := NewOTPChallenge("01711111111", domain.OTPPurposePasswordReset)
	challenge.Input("123456")

	challenge.Reset()

	if challenge.Code() != "" || challenge.Focus() != 0 || challenge.Complete() {
		t.Errorf("reset left state behind: code %q focus %d", challenge.Code(), challenge.Focus())
	}
}

func TestCountdown_Remaining(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	current := base

	countdown := NewCountdown()
	countdown.now = func() time.Time { return current }

	if countdown.Active() {
		t.Error("a countdown that never started must be inactive")
	}
	if countdown.Remaining() != 0 {
		t.Error("a countdown that never started must report zero")
	}

	countdown.Start(60*time.Second, nil)

	if got := countdown.Remaining(); got != 60 {
		t.Errorf("Remaining() = %d, want 60", got)
	}

	current = base.Add(30*time.Second + 500*time.Millisecond)
	if got := countdown.Remaining(); got != 30 {
		t.Errorf("partial seconds round up: Remaining() = %d, want 30", got)
	}

	// At the deadline the cooldown still holds.
	current = base.Add(60 * time.Second)
	if !countdown.Active() {
		t.Error("countdown must still be active at the deadline instant")
	}
	if got := countdown.Remaining(); got != 0 {
		t.Errorf("Remaining() = %d, want 0 at the deadline", got)
	}

	current = base.Add(60*time.Second + time.Nanosecond)
	if countdown.Active() {
		t.Error("countdown must be inactive past the deadline")
	}
}

func TestCountdown_StopAndRestart(t *testing.T) {
	countdown := NewCountdown()

	fired := make(chan struct{}, 1)
	countdown.Start(time.Hour, func() { fired <- struct{}{} })
	countdown.Stop()
	countdown.Stop() // repeated stop is safe

	select {
	case <-fired:
		t.Error("stopped countdown must not fire")
	case <-time.After(20 * time.Millisecond):
	}

	// Restarting replaces the prior schedule.
	countdown.Start(5*time.Millisecond, func() { fired <- struct{}{} })
	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Error("restarted countdown never fired")
	}
	countdown.Stop()
}
