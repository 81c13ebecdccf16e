package e2e

import (
	"github.com/touhid12310/bdtuitions-android-ios/domain"
)

// Canonical credentials used across the flow tests.
const (
	fixturePhone    = "01711111111"
	fixtureEmail    = "rahim@example.com"
	fixturePassword = "secret123"
	fixtureName     = "Rahim Uddin"
)

// SeedTeacher installs a registered, verified-phone teacher account so tests
// can log straight in.
func (f *FakeBackend) SeedTeacher() *domain.Teacher {
	f.mu.Lock()
	defer f.mu.Unlock()

	teacher := &domain.Teacher{
		ID:          f.nextTeacherID,
		TeacherName: fixtureName,
		PhoneNumber: fixturePhone,
		Email:       fixtureEmail,
		City:        "Dhaka",
		Area:        "Mirpur",
		Status:      "Pending",

		UnreadNotificationsCount: 2,
	}
	f.nextTeacherID++
	f.teachers[fixturePhone] = teacher
	f.passwords[fixturePhone] = fixturePassword
	return teacher
}

// SeedTuitions installs a set of open tuition listings.
func (f *FakeBackend) SeedTuitions() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.tuitions = []domain.Tuition{
		{
			ID:               1,
			TuitionCode:      "BDT-1001",
			City:             "Dhaka",
			Area:             "Mirpur",
			Class:            "Class 9",
			Medium:           "Bangla",
			PreferedSubjects: "Math, Physics",
			PreferedGender:   "Any",
			DayPerWeek:       "4",
			Salary:           6000,
			MediaFee:         600,
			Status:           "Active",
			CanApply:         true,
		},
		{
			ID:               2,
			TuitionCode:      "BDT-1002",
			City:             "Dhaka",
			Area:             "Uttara",
			Class:            "HSC",
			Medium:           "English Version",
			PreferedSubjects: "Chemistry",
			PreferedGender:   "Male",
			DayPerWeek:       "3",
			Salary:           8000,
			MediaFee:         800,
			Status:           "Active",
			CanApply:         true,
		},
		{
			ID:               3,
			TuitionCode:      "BDT-1003",
			City:             "Chattogram",
			Area:             "Agrabad",
			Class:            "Class 7",
			Medium:           "Bangla",
			PreferedSubjects: "All",
			PreferedGender:   "Female",
			DayPerWeek:       "5",
			Salary:           5000,
			MediaFee:         500,
			Status:           "Active",
			CanApply:         true,
		},
	}
}

// SeedPendingPayments loads two assignments with outstanding dues.
func (f *FakeBackend) SeedPendingPayments() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pending = []domain.PendingPayment{
		{
			ID:           11,
			TuitionID:    1,
			TuitionCode:  "BDT-1001",
			TuitionClass: "Class 9",
			TuitionArea:  "Mirpur",
			DueAmount:    1000,
			EffectiveDue: 1000,
			TotalPaid:    0,
			Status:       "Assigned",
		},
		{
			ID:           12,
			TuitionID:    2,
			TuitionCode:  "BDT-1002",
			TuitionClass: "Class 10",
			TuitionArea:  "Uttara",
			DueAmount:    800,
			EffectiveDue: 500,
			TotalPaid:    300,
			Status:       "Assigned",
		},
	}
}

// OTPFor returns the pending code for a phone number, empty when none.
func (f *FakeBackend) OTPFor(phone string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.otps[phone]
}

// PaymentExecuted reports whether the backend recorded an execute for the id.
func (f *FakeBackend) PaymentExecuted(paymentID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	payment, exists := f.payments[paymentID]
	return exists && payment.Executed
}
