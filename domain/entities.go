package domain

import "time"

// Teacher is the authenticated user's profile as returned by the backend.
type Teacher struct {
	ID                       uint     `json:"id"`
	TeacherCode              string   `json:"teacher_code"`
	TeacherName              string   `json:"teacher_name"`
	PhoneNumber              string   `json:"phone_number"`
	Email                    string   `json:"email"`
	Gender                   string   `json:"gender"`
	UniversityName           string   `json:"university_name"`
	DepartmentName           string   `json:"department_name"`
	AcademicYear             string   `json:"academic_year"`
	Medium                   string   `json:"medium"`
	City                     string   `json:"city"`
	Area                     string   `json:"area"`
	LivingAddress            string   `json:"living_address"`
	ExpectedClass            string   `json:"expected_class,omitempty"`
	ExpectedSubject          string   `json:"expected_subject,omitempty"`
	ExpectedSalary           float64  `json:"expected_salary,omitempty"`
	ExpectedArea             []string `json:"expected_area,omitempty"`
	WhatsappNumber           string   `json:"whatsapp_number,omitempty"`
	FacebookLink             string   `json:"facebook_link,omitempty"`
	FatherBrotherPhone       string   `json:"father_brother_phone,omitempty"`
	MotherSisterPhone        string   `json:"mother_sister_phone,omitempty"`
	DepartmentalFriendPhone  string   `json:"departmental_friend_phone,omitempty"`
	PersonalPhoto            string   `json:"personal_photo,omitempty"`
	UniversityIDPhoto        string   `json:"university_id_photo,omitempty"`
	NIDFront                 string   `json:"nid_front,omitempty"`
	NIDBack                  string   `json:"nid_back,omitempty"`
	Selfie                   string   `json:"selfie,omitempty"`
	Status                   string   `json:"status"`
	UnreadNotificationsCount int      `json:"unread_notifications_count"`
}

// Session is the locally held auth state. Token and Profile must both be
// present for the session to count as authenticated. IsLoading is transient
// and only true while the persisted record is rehydrated at startup; it is
// never written to storage.
type Session struct {
	Token           string   `json:"token"`
	Profile         *Teacher `json:"profile"`
	IsAuthenticated bool     `json:"is_authenticated"`
	IsLoading       bool     `json:"-"`
}

// Authenticated reports whether both a token and a profile are held.
func (s Session) Authenticated() bool {
	return s.Token != "" && s.Profile != nil
}

// OTPPurpose distinguishes why an OTP challenge was issued.
type OTPPurpose string

const (
	OTPPurposeRegistration  OTPPurpose = "registration-verify"
	OTPPurposePasswordReset OTPPurpose = "password-reset"
)

// OTPCodeLength is the number of digits a verify code carries.
const OTPCodeLength = 6

// PaymentStatus is the payment flow state.
type PaymentStatus string

const (
	PaymentIdle        PaymentStatus = "idle"
	PaymentCreating    PaymentStatus = "creating"
	PaymentRedirecting PaymentStatus = "redirecting"
	PaymentExecuting   PaymentStatus = "executing"
	PaymentSuccess     PaymentStatus = "success"
	PaymentFailure     PaymentStatus = "failure"
	PaymentCancelled   PaymentStatus = "cancelled"
)

// PaymentContext identifies what a payment pays for.
type PaymentContext string

const (
	// PaymentContextAssignment pays down an assignment's outstanding due.
	PaymentContextAssignment PaymentContext = "assignment"
	// PaymentContextVerification pays the flat profile-verification fee.
	PaymentContextVerification PaymentContext = "verification"
)

// PaymentSession tracks one gateway payment attempt from creation to a
// terminal status. A session abandoned before a terminal status is simply
// discarded; no backend cleanup is initiated by the client.
type PaymentSession struct {
	PaymentID    string
	RedirectURL  string
	Context      PaymentContext
	AssignmentID uint
	Amount       float64
	Status       PaymentStatus
	TrxID        string
	CreatedAt    time.Time
}

// Terminal reports whether the session reached a state it cannot leave.
func (p *PaymentSession) Terminal() bool {
	switch p.Status {
	case PaymentSuccess, PaymentFailure, PaymentCancelled:
		return true
	}
	return false
}

// Tuition is a tuition listing teachers can browse and apply to.
type Tuition struct {
	ID                 uint    `json:"id"`
	TuitionCode        string  `json:"tuition_code"`
	City               string  `json:"city"`
	Area               string  `json:"area"`
	Class              string  `json:"class"`
	GroupOfStudy       string  `json:"group_of_study,omitempty"`
	Medium             string  `json:"medium"`
	PreferedSubjects   string  `json:"prefered_subjects"`
	PreferedUniversity string  `json:"prefered_university,omitempty"`
	PreferedGender     string  `json:"prefered_gender"`
	DayPerWeek         string  `json:"day_per_week"`
	Salary             float64 `json:"salary"`
	MediaFee           float64 `json:"media_fee"`
	PreferedTime       string  `json:"prefered_time,omitempty"`
	TutorRequirement   string  `json:"tutor_requirement,omitempty"`
	Status             string  `json:"status"`
	HasApplied         bool    `json:"has_applied,omitempty"`
	CanApply           bool    `json:"can_apply,omitempty"`
	CreatedAt          string  `json:"created_at,omitempty"`
}

// Application is a teacher's application against a tuition.
type Application struct {
	ID        uint     `json:"id"`
	TuitionID uint     `json:"tuition_id"`
	TeacherID uint     `json:"teacher_id"`
	Status    string   `json:"status"`
	Note      string   `json:"note,omitempty"`
	Date      string   `json:"date,omitempty"`
	Tuition   *Tuition `json:"tuition,omitempty"`
	CreatedAt string   `json:"created_at,omitempty"`
}

// Assignment is a confirmed tuition assignment with its payment ledger state.
type Assignment struct {
	ID               uint     `json:"id"`
	TuitionID        uint     `json:"tuition_id"`
	TeacherID        uint     `json:"teacher_id"`
	Status           string   `json:"status"`
	PaymentStatus    string   `json:"payment_status,omitempty"`
	DueAmount        float64  `json:"due_amount"`
	EffectiveDue     float64  `json:"effective_due"`
	TotalPaid        float64  `json:"total_paid"`
	NextPayment      string   `json:"next_payment,omitempty"`
	BookedBy         string   `json:"booked_by,omitempty"`
	CommissionStatus string   `json:"commission_status,omitempty"`
	RefundStatus     string   `json:"refund_status,omitempty"`
	Note             string   `json:"note,omitempty"`
	Date             string   `json:"date,omitempty"`
	Tuition          *Tuition `json:"tuition,omitempty"`
}

// IsAssigned reports whether the assignment's status grants guardian-contact
// visibility. The backend emits both "Assigned" and the misspelled "Assinged";
// both are accepted until the backend contract is confirmed fixed.
func (a *Assignment) IsAssigned() bool {
	return a.Status == "Assigned" || a.Status == "Assinged"
}

// Transaction is a recorded payment against an assignment.
type Transaction struct {
	ID            uint        `json:"id"`
	TeacherID     uint        `json:"teacher_id"`
	AssignmentID  uint        `json:"assignment_id"`
	Amount        float64     `json:"amount"`
	PaymentType   string      `json:"payment_type"`
	PaymentMethod string      `json:"payment_method,omitempty"`
	TransactionID string      `json:"transaction_id,omitempty"`
	PaymentBy     string      `json:"payment_by,omitempty"`
	Status        string      `json:"status,omitempty"`
	Date          string      `json:"date,omitempty"`
	Note          string      `json:"note,omitempty"`
	Assignment    *Assignment `json:"assignment,omitempty"`
}

// PendingPayment summarizes an assignment with an outstanding due.
type PendingPayment struct {
	ID           uint    `json:"id"`
	TuitionID    uint    `json:"tuition_id"`
	TuitionCode  string  `json:"tuition_code"`
	TuitionClass string  `json:"tuition_class"`
	TuitionArea  string  `json:"tuition_area"`
	DueAmount    float64 `json:"due_amount"`
	EffectiveDue float64 `json:"effective_due"`
	TotalPaid    float64 `json:"total_paid"`
	Status       string  `json:"status"`
}

// Notification is an in-app notification for the teacher.
type Notification struct {
	ID        uint   `json:"id"`
	TeacherID uint   `json:"teacher_id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Status    string `json:"status"`
	IsRead    bool   `json:"is_read"`
	Date      string `json:"date,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// DashboardStats is the aggregate view backing the dashboard screen.
type DashboardStats struct {
	TotalApplications   int    `json:"total_applications"`
	TotalAssignments    int    `json:"total_assignments"`
	ActiveAssignments   int    `json:"active_assignments"`
	PendingPayments     int    `json:"pending_payments"`
	TotalDue            string `json:"total_due"`
	TotalPaid           string `json:"total_paid"`
	UnreadNotifications int    `json:"unread_notifications"`
	ProfileStatus       string `json:"profile_status"`
}

// RefundEligibleAssignment is an assignment a refund may be requested against.
type RefundEligibleAssignment struct {
	ID               uint    `json:"id"`
	TuitionID        uint    `json:"tuition_id"`
	TuitionCode      string  `json:"tuition_code"`
	TuitionClass     string  `json:"tuition_class"`
	TuitionArea      string  `json:"tuition_area"`
	PaidAmount       float64 `json:"paid_amount"`
	CanRequestRefund bool    `json:"can_request_refund"`
}

// City is a selectable city in location pickers.
type City struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Area is a selectable area within a city.
type Area struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
