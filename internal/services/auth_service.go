package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/touhid12310/bdtuitions-android-ios/domain"
)

// MinPasswordLength applies to login, registration and reset passwords.
const MinPasswordLength = 6

// AuthServiceImpl implements domain.AuthService. A session is installed only
// after a fully successful exchange; every failure path leaves the session
// store untouched.
type AuthServiceImpl struct {
	backend      domain.AuthBackend
	sessions     domain.SessionStore
	resendWindow time.Duration

	mu        sync.Mutex
	cooldowns map[string]time.Time
	now       func() time.Time
}

// NewAuthService creates the auth flow controller. resendWindow is how long
// resend stays disabled after an OTP send.
func NewAuthService(backend domain.AuthBackend, sessions domain.SessionStore, resendWindow time.Duration) *AuthServiceImpl {
	return &AuthServiceImpl{
		backend:      backend,
		sessions:     sessions,
		resendWindow: resendWindow,
		cooldowns:    make(map[string]time.Time),
		now:          time.Now,
	}
}

var _ domain.AuthService = (*AuthServiceImpl)(nil)

// Login exchanges an email-or-phone identifier and password for a session.
func (s *AuthServiceImpl) Login(ctx context.Context, login, password string) (*domain.Teacher, error) {
	if login == "" {
		return nil, domain.NewValidationError("login", domain.ErrMissingField)
	}
	if password == "" {
		return nil, domain.NewValidationError("password", domain.ErrMissingField)
	}
	if len(password) < MinPasswordLength {
		return nil, domain.NewValidationError("password", domain.ErrPasswordTooShort)
	}

	payload, err := s.backend.Login(ctx, login, password)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.SetSession(payload.Token, payload.Teacher); err != nil {
		return nil, err
	}
	return payload.Teacher, nil
}

// Register submits the registration form. On success the backend has created
// an OTP challenge for the returned phone number, so its resend cooldown
// starts here.
func (s *AuthServiceImpl) Register(ctx context.Context, form domain.RegisterForm) (string, error) {
	if form.TeacherName == "" {
		return "", domain.NewValidationError("teacher_name", domain.ErrMissingField)
	}
	if form.PhoneNumber == "" {
		return "", domain.NewValidationError("phone_number", domain.ErrMissingField)
	}
	if form.Email == "" {
		return "", domain.NewValidationError("email", domain.ErrMissingField)
	}
	if len(form.Password) < MinPasswordLength {
		return "", domain.NewValidationError("password", domain.ErrPasswordTooShort)
	}
	if form.Password != form.PasswordConfirmation {
		return "", domain.NewValidationError("password_confirmation", domain.ErrPasswordMismatch)
	}

	phone, err := s.backend.Register(ctx, form)
	if err != nil {
		return "", err
	}
	s.startCooldown(phone)
	return phone, nil
}

// VerifyOTP submits a complete 6-digit code. For the registration purpose a
// successful verification installs the returned session. The password-reset
// purpose performs no exchange here; the reset step validates the code
// together with the new password.
func (s *AuthServiceImpl) VerifyOTP(ctx context.Context, phone, code string, purpose domain.OTPPurpose) error {
	if err := validateCode(code); err != nil {
		return err
	}

	if purpose == domain.OTPPurposePasswordReset {
		return nil
	}

	payload, err := s.backend.VerifyOTP(ctx, phone, code)
	if err != nil {
		return err
	}
	return s.sessions.SetSession(payload.Token, payload.Teacher)
}

// ResendOTP sends a fresh code and restarts the cooldown, regardless of how
// much of the previous window had elapsed.
func (s *AuthServiceImpl) ResendOTP(ctx context.Context, phone string) error {
	if ok, remaining := s.CanResend(phone); !ok {
		return fmt.Errorf("wait %d seconds: %w", remaining, domain.ErrResendThrottled)
	}
	if err := s.backend.ResendOTP(ctx, phone); err != nil {
		return err
	}
	s.startCooldown(phone)
	return nil
}

// CanResend reports whether resend is enabled for the phone and the whole
// seconds of cooldown remaining. The deadline is inclusive: at exactly the
// window boundary resend is still disabled.
func (s *AuthServiceImpl) CanResend(phone string) (bool, int) {
	s.mu.Lock()
	deadline, exists := s.cooldowns[phone]
	nowTime := s.now()
	s.mu.Unlock()

	if !exists || nowTime.After(deadline) {
		return true, 0
	}
	left := deadline.Sub(nowTime)
	secs := int(left / time.Second)
	if left%time.Second > 0 {
		secs++
	}
	return false, secs
}

// ForgotPassword starts the reset flow by having the backend send an OTP.
func (s *AuthServiceImpl) ForgotPassword(ctx context.Context, phone string) error {
	if phone == "" {
		return domain.NewValidationError("phone_number", domain.ErrMissingField)
	}
	sentTo, err := s.backend.ForgotPassword(ctx, phone)
	if err != nil {
		return err
	}
	s.startCooldown(sentTo)
	return nil
}

// ResetPassword completes the reset. Mismatched confirmation and short
// passwords are rejected before any network call. Success does not
// authenticate; the user logs in afterwards.
func (s *AuthServiceImpl) ResetPassword(ctx context.Context, phone, code, newPassword, confirmPassword string) error {
	if err := validateCode(code); err != nil {
		return err
	}
	if len(newPassword) < MinPasswordLength {
		return domain.NewValidationError("new_password", domain.ErrPasswordTooShort)
	}
	if newPassword != confirmPassword {
		return domain.NewValidationError("confirm_password", domain.ErrPasswordMismatch)
	}
	return s.backend.ResetPassword(ctx, phone, code, newPassword)
}

// Logout revokes the token server-side and clears the local session. The
// local session clears even when the revoke call fails; a dead token on the
// server is preferable to a stuck client.
func (s *AuthServiceImpl) Logout(ctx context.Context) error {
	err := s.backend.Logout(ctx)
	if clearErr := s.sessions.ClearSession(); clearErr != nil {
		return clearErr
	}
	return err
}

// RefreshProfile fetches the authenticated profile and merges the volatile
// fields into the session store.
func (s *AuthServiceImpl) RefreshProfile(ctx context.Context) (*domain.Teacher, error) {
	profile, err := s.backend.Me(ctx)
	if err != nil {
		return nil, err
	}
	patch := domain.ProfilePatch{
		TeacherName:              &profile.TeacherName,
		Email:                    &profile.Email,
		WhatsappNumber:           &profile.WhatsappNumber,
		City:                     &profile.City,
		Area:                     &profile.Area,
		LivingAddress:            &profile.LivingAddress,
		Status:                   &profile.Status,
		UnreadNotificationsCount: &profile.UnreadNotificationsCount,
	}
	if err := s.sessions.MergeProfile(patch); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *AuthServiceImpl) startCooldown(phone string) {
	s.mu.Lock()
	s.cooldowns[phone] = s.now().Add(s.resendWindow)
	s.mu.Unlock()
}

func validateCode(code string) error {
	if len(code) != domain.OTPCodeLength || keepDigits(code) != code {
		return domain.NewValidationError("verify_code", domain.ErrOTPIncomplete)
	}
	return nil
}
