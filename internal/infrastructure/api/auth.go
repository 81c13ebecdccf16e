package api

import (
	"context"
	"fmt"

	"github.com/touhid12310/bdtuitions-android-ios/domain"
)

// AuthAPI implements domain.AuthBackend against /auth endpoints.
type AuthAPI struct {
	client     *Client
	deviceName string
}

// NewAuthAPI creates the auth endpoint group. deviceName is sent with every
// credential exchange so the backend can name the issued token.
func NewAuthAPI(client *Client, deviceName string) domain.AuthBackend {
	return &AuthAPI{client: client, deviceName: deviceName}
}

type authEnvelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    *domain.AuthPayload `json:"data"`
}

type phoneEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    struct {
		PhoneNumber string `json:"phone_number"`
	} `json:"data"`
}

type teacherEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    *domain.Teacher `json:"data"`
}

// Login exchanges credentials for a token and profile.
func (a *AuthAPI) Login(ctx context.Context, login, password string) (*domain.AuthPayload, error) {
	body := map[string]string{
		"login":       login,
		"password":    password,
		"device_name": a.deviceName,
	}
	var resp authEnvelope
	if err := a.client.Post(ctx, pathLogin, body, &resp); err != nil {
		return nil, err
	}
	if resp.Data == nil || resp.Data.Token == "" || resp.Data.Teacher == nil {
		return nil, fmt.Errorf("login: incomplete payload in response")
	}
	return resp.Data, nil
}

// Register submits the multipart registration form. The backend creates an
// OTP challenge for the returned phone number.
func (a *AuthAPI) Register(ctx context.Context, form domain.RegisterForm) (string, error) {
	formData := NewFormData().
		Add("teacher_name", form.TeacherName).
		Add("phone_number", form.PhoneNumber).
		Add("whatsapp_number", form.WhatsappNumber).
		Add("email", form.Email).
		Add("facebook_link", form.FacebookLink).
		Add("father_brother_phone", form.FatherBrotherPhone).
		Add("departmental_friend_phone", form.DepartmentalFriendPhone).
		Add("password", form.Password).
		Add("password_confirmation", form.PasswordConfirmation).
		Add("gender", form.Gender).
		Add("university_name", form.UniversityName).
		Add("department_name", form.DepartmentName).
		Add("academic_year", form.AcademicYear).
		Add("medium", form.Medium).
		Add("city", form.City).
		Add("area", form.Area).
		AddArray("expected_area", form.ExpectedArea).
		Add("living_address", form.LivingAddress).
		AddFile("university_id_photo", form.UniversityIDPhoto).
		AddFile("nid_front", form.NIDFront).
		AddFile("nid_back", form.NIDBack).
		AddFile("personal_photo", form.PersonalPhoto).
		AddFile("selfie", form.Selfie)

	var resp phoneEnvelope
	if err := a.client.PostMultipart(ctx, pathRegister, formData, &resp); err != nil {
		return "", err
	}
	if resp.Data.PhoneNumber == "" {
		return form.PhoneNumber, nil
	}
	return resp.Data.PhoneNumber, nil
}

// VerifyOTP exchanges a verify code for a token and profile.
func (a *AuthAPI) VerifyOTP(ctx context.Context, phone, code string) (*domain.AuthPayload, error) {
	body := map[string]string{
		"phone_number": phone,
		"verify_code":  code,
		"device_name":  a.deviceName,
	}
	var resp authEnvelope
	if err := a.client.Post(ctx, pathVerifyOTP, body, &resp); err != nil {
		return nil, err
	}
	if resp.Data == nil || resp.Data.Token == "" || resp.Data.Teacher == nil {
		return nil, fmt.Errorf("verify-otp: incomplete payload in response")
	}
	return resp.Data, nil
}

// ResendOTP requests a fresh code for the phone number.
func (a *AuthAPI) ResendOTP(ctx context.Context, phone string) error {
	return a.client.Post(ctx, pathResendOTP, map[string]string{"phone_number": phone}, nil)
}

// ForgotPassword starts the reset flow by sending an OTP.
func (a *AuthAPI) ForgotPassword(ctx context.Context, phone string) (string, error) {
	var resp phoneEnvelope
	if err := a.client.Post(ctx, pathForgotPassword, map[string]string{"phone_number": phone}, &resp); err != nil {
		return "", err
	}
	if resp.Data.PhoneNumber == "" {
		return phone, nil
	}
	return resp.Data.PhoneNumber, nil
}

// ResetPassword completes the reset with the OTP code and the new password.
// The caller is not authenticated afterwards.
func (a *AuthAPI) ResetPassword(ctx context.Context, phone, code, newPassword string) error {
	body := map[string]string{
		"phone_number": phone,
		"verify_code":  code,
		"new_password": newPassword,
	}
	return a.client.Post(ctx, pathResetPassword, body, nil)
}

// Logout revokes the current token server-side.
func (a *AuthAPI) Logout(ctx context.Context) error {
	return a.client.Post(ctx, pathLogout, nil, nil, RequireAuth())
}

// Me fetches the authenticated profile.
func (a *AuthAPI) Me(ctx context.Context) (*domain.Teacher, error) {
	var resp teacherEnvelope
	if err := a.client.Get(ctx, pathMe, &resp, RequireAuth()); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return nil, fmt.Errorf("me: empty profile in response")
	}
	return resp.Data, nil
}
