package domain

import "context"

// SessionStore is the authoritative in-memory plus persisted representation
// of the current session.
type SessionStore interface {
	// Rehydrate loads the persisted record at process start. No authenticated
	// request may be issued before it completes.
	Rehydrate(ctx context.Context) error
	// SetSession atomically replaces token and profile after a successful
	// credential exchange.
	SetSession(token string, profile *Teacher) error
	// ClearSession removes token and profile. Idempotent.
	ClearSession() error
	// MergeProfile shallow-merges the patch into the held profile. No-op
	// when no profile is held; a profile is never synthesized from a patch.
	MergeProfile(patch ProfilePatch) error
	// Session returns a snapshot of current state.
	Session() Session
	// Token returns the current bearer token, or empty.
	Token() string
	// Subscribe registers a listener for session lifecycle events and
	// returns its deregistration handle.
	Subscribe(listener SessionListener) (unsubscribe func())
}

// SessionPersistence is the durable local store behind the SessionStore.
// Exactly one keyed record is held; transient state is never written.
type SessionPersistence interface {
	Save(record *PersistedSession) error
	Load() (*PersistedSession, error)
	Clear() error
}

// PersistedSession is the single record written to durable storage.
type PersistedSession struct {
	Token           string   `json:"token"`
	Profile         *Teacher `json:"profile"`
	IsAuthenticated bool     `json:"is_authenticated"`
}

// ProfilePatch carries the subset of profile fields an update may touch.
// Nil fields are left unchanged by a merge.
type ProfilePatch struct {
	TeacherName              *string
	Email                    *string
	WhatsappNumber           *string
	City                     *string
	Area                     *string
	LivingAddress            *string
	ExpectedClass            *string
	ExpectedSubject          *string
	ExpectedSalary           *float64
	ExpectedArea             *[]string
	PersonalPhoto            *string
	Status                   *string
	UnreadNotificationsCount *int
}

// Apply merges non-nil patch fields into the profile.
func (p ProfilePatch) Apply(t *Teacher) {
	if t == nil {
		return
	}
	if p.TeacherName != nil {
		t.TeacherName = *p.TeacherName
	}
	if p.Email != nil {
		t.Email = *p.Email
	}
	if p.WhatsappNumber != nil {
		t.WhatsappNumber = *p.WhatsappNumber
	}
	if p.City != nil {
		t.City = *p.City
	}
	if p.Area != nil {
		t.Area = *p.Area
	}
	if p.LivingAddress != nil {
		t.LivingAddress = *p.LivingAddress
	}
	if p.ExpectedClass != nil {
		t.ExpectedClass = *p.ExpectedClass
	}
	if p.ExpectedSubject != nil {
		t.ExpectedSubject = *p.ExpectedSubject
	}
	if p.ExpectedSalary != nil {
		t.ExpectedSalary = *p.ExpectedSalary
	}
	if p.ExpectedArea != nil {
		t.ExpectedArea = *p.ExpectedArea
	}
	if p.PersonalPhoto != nil {
		t.PersonalPhoto = *p.PersonalPhoto
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.UnreadNotificationsCount != nil {
		t.UnreadNotificationsCount = *p.UnreadNotificationsCount
	}
}

// AuthPayload is the token and profile returned by a credential exchange.
type AuthPayload struct {
	Token   string   `json:"token"`
	Teacher *Teacher `json:"teacher"`
}

// FileAttachment is one uploaded document in a multipart registration.
type FileAttachment struct {
	FileName    string
	ContentType string
	Content     []byte
}

// RegisterForm carries the registration fields and document uploads.
type RegisterForm struct {
	TeacherName             string
	PhoneNumber             string
	WhatsappNumber          string
	Email                   string
	FacebookLink            string
	FatherBrotherPhone      string
	DepartmentalFriendPhone string
	Password                string
	PasswordConfirmation    string
	Gender                  string
	UniversityName          string
	DepartmentName          string
	AcademicYear            string
	Medium                  string
	City                    string
	Area                    string
	ExpectedArea            []string
	LivingAddress           string
	UniversityIDPhoto       *FileAttachment
	NIDFront                *FileAttachment
	NIDBack                 *FileAttachment
	PersonalPhoto           *FileAttachment
	Selfie                  *FileAttachment
}

// AuthService orchestrates login, registration, OTP verification and
// password reset. A session is only ever installed after a fully successful
// exchange; no operation partially mutates the session store.
type AuthService interface {
	Login(ctx context.Context, login, password string) (*Teacher, error)
	Register(ctx context.Context, form RegisterForm) (phoneNumber string, err error)
	VerifyOTP(ctx context.Context, phone, code string, purpose OTPPurpose) error
	ResendOTP(ctx context.Context, phone string) error
	// CanResend reports whether resend is allowed for the phone and how many
	// whole seconds of cooldown remain.
	CanResend(phone string) (bool, int)
	ForgotPassword(ctx context.Context, phone string) error
	ResetPassword(ctx context.Context, phone, code, newPassword, confirmPassword string) error
	Logout(ctx context.Context) error
	RefreshProfile(ctx context.Context) (*Teacher, error)
}

// PaymentCreation is the gateway's answer to a create-payment call.
type PaymentCreation struct {
	BkashURL  string `json:"bkash_url"`
	PaymentID string `json:"payment_id"`
}

// PaymentService drives the gateway-redirect payment state machine for a
// single payment attempt at a time.
type PaymentService interface {
	StartAssignmentPayment(ctx context.Context, assignmentID uint, amount float64) (*PaymentSession, error)
	StartVerificationPayment(ctx context.Context, amount float64) (*PaymentSession, error)
	// HandleRedirectURL feeds one observed URL from the embedded web surface
	// into the state machine. Execute fires at most once per payment id no
	// matter how many times a success URL is observed.
	HandleRedirectURL(ctx context.Context, observedURL string) error
	// Dismiss is called when the user closes the web surface before a
	// terminal status; the attempt becomes cancelled.
	Dismiss()
	Current() *PaymentSession
	// Watch consumes observed URLs until the channel closes, the context
	// ends, or the attempt reaches a terminal status.
	Watch(ctx context.Context, urls <-chan string) error
}

// PageMeta is the pagination envelope on list endpoints.
type PageMeta struct {
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
}

// BkashExecuteResult is the backend's answer to an assignment payment execute.
type BkashExecuteResult struct {
	Transaction *Transaction `json:"transaction"`
	TrxID       string       `json:"trx_id"`
}

// VerificationExecuteResult is the backend's answer to a verification
// payment execute.
type VerificationExecuteResult struct {
	TrxID  string `json:"trx_id"`
	Status string `json:"status"`
}

// AuthBackend is the auth slice of the REST API.
type AuthBackend interface {
	Login(ctx context.Context, login, password string) (*AuthPayload, error)
	Register(ctx context.Context, form RegisterForm) (phoneNumber string, err error)
	VerifyOTP(ctx context.Context, phone, code string) (*AuthPayload, error)
	ResendOTP(ctx context.Context, phone string) error
	ForgotPassword(ctx context.Context, phone string) (phoneNumber string, err error)
	ResetPassword(ctx context.Context, phone, code, newPassword string) error
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*Teacher, error)
}

// PaymentBackend is the payments slice of the REST API.
type PaymentBackend interface {
	CreateBkashPayment(ctx context.Context, assignmentID uint, amount float64) (*PaymentCreation, error)
	ExecuteBkashPayment(ctx context.Context, paymentID, status string) (*BkashExecuteResult, error)
	CreateVerificationPayment(ctx context.Context, amount float64) (*PaymentCreation, error)
	ExecuteVerificationPayment(ctx context.Context, paymentID, status string) (*VerificationExecuteResult, error)
}

// TuitionFilters narrows a tuition listing request.
type TuitionFilters struct {
	City   string
	Area   string
	Class  string
	Medium string
	Search string
}

// TuitionBackend is the tuition listing slice of the REST API.
type TuitionBackend interface {
	List(ctx context.Context, page, perPage int, filters TuitionFilters) ([]Tuition, *PageMeta, error)
	Get(ctx context.Context, id uint) (*Tuition, error)
	Apply(ctx context.Context, tuitionID uint, note string) (*Application, error)
}

// NotificationBackend is the notifications slice of the REST API.
type NotificationBackend interface {
	List(ctx context.Context, page, perPage int) ([]Notification, *PageMeta, error)
	UnreadCount(ctx context.Context) (int, error)
	MarkRead(ctx context.Context, id uint) error
	MarkAllRead(ctx context.Context) error
}
