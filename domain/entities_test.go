package domain

import (
	"testing"
)

func TestSession_Authenticated(t *testing.T) {
	profile := &Teacher{ID: 1, TeacherName: "Rahim Uddin"}

	tests := []struct {
		name    string
		session Session
		want    bool
	}{
		{
			name:    "token and profile present",
			session: Session{Token: "abc", Profile: profile},
			want:    true,
		},
		{
			name:    "token only",
			session: Session{Token: "abc"},
			want:    false,
		},
		{
			name:    "profile only",
			session: Session{Profile: profile},
			want:    false,
		},
		{
			name:    "empty session",
			session: Session{},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.session.Authenticated(); got != tt.want {
				t.Errorf("Authenticated() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAssignment_IsAssigned(t *testing.T) {
	tests := []struct {
		name   string
		status string
		want   bool
	}{
		{name: "canonical spelling", status: "Assigned", want: true},
		{name: "backend misspelling accepted", status: "Assinged", want: true},
		{name: "pending", status: "Pending", want: false},
		{name: "cancelled", status: "Cancelled", want: false},
		{name: "lowercase not accepted", status: "assigned", want: false},
		{name: "empty", status: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Assignment{Status: tt.status}
			if got := a.IsAssigned(); got != tt.want {
				t.Errorf("IsAssigned() with status %q = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestProfilePatch_Apply(t *testing.T) {
	str := func(s string) *string { return &s }
	num := func(n int) *int { return &n }

	t.Run("only non-nil fields change", func(t *testing.T) {
		teacher := &Teacher{
			ID:          1,
			TeacherName: "Rahim Uddin",
			Email:       "rahim@example.com",
			City:        "Dhaka",
			Status:      "Pending",
		}
		patch := ProfilePatch{
			Status:                   str("Verified"),
			UnreadNotificationsCount: num(3),
		}
		patch.Apply(teacher)

		if teacher.Status != "Verified" {
			t.Errorf("Status = %q, want Verified", teacher.Status)
		}
		if teacher.UnreadNotificationsCount != 3 {
			t.Errorf("UnreadNotificationsCount = %d, want 3", teacher.UnreadNotificationsCount)
		}
		if teacher.TeacherName != "Rahim Uddin" || teacher.Email != "rahim@example.com" || teacher.City != "Dhaka" {
			t.Error("untouched fields must survive a merge")
		}
	})

	t.Run("nil target is a no-op", func(t *testing.T) {
		patch := ProfilePatch{Status: str("Verified")}
		patch.Apply(nil) // must not panic
	})

	t.Run("empty patch changes nothing", func(t *testing.T) {
		teacher := &Teacher{ID: 1, TeacherName: "Rahim Uddin", Status: "Pending"}
		ProfilePatch{}.Apply(teacher)
		if teacher.ID != 1 || teacher.TeacherName != "Rahim Uddin" || teacher.Status != "Pending" {
			t.Error("empty patch must leave the profile unchanged")
		}
	})
}

func TestPaymentSession_Terminal(t *testing.T) {
	tests := []struct {
		status PaymentStatus
		want   bool
	}{
		{PaymentIdle, false},
		{PaymentCreating, false},
		{PaymentRedirecting, false},
		{PaymentExecuting, false},
		{PaymentSuccess, true},
		{PaymentFailure, true},
		{PaymentCancelled, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			p := &PaymentSession{Status: tt.status}
			if got := p.Terminal(); got != tt.want {
				t.Errorf("Terminal() = %v, want %v", got, tt.want)
			}
		})
	}
}
