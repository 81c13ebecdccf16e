package api

import (
	"context"
	"fmt"

	"github.com/touhid12310/bdtuitions-android-ios/domain"
)

// ProfileAPI covers profile update and document upload endpoints.
type ProfileAPI struct {
	client *Client
}

// NewProfileAPI creates the profile endpoint group.
func NewProfileAPI(client *Client) *ProfileAPI {
	return &ProfileAPI{client: client}
}

// ProfileUpdate carries the editable profile fields. Zero values are
// omitted from the request so the backend treats it as a partial update.
type ProfileUpdate struct {
	TeacherName     string   `json:"teacher_name,omitempty"`
	Email           string   `json:"email,omitempty"`
	WhatsappNumber  string   `json:"whatsapp_number,omitempty"`
	City            string   `json:"city,omitempty"`
	Area            string   `json:"area,omitempty"`
	LivingAddress   string   `json:"living_address,omitempty"`
	ExpectedClass   string   `json:"expected_class,omitempty"`
	ExpectedSubject string   `json:"expected_subject,omitempty"`
	ExpectedSalary  float64  `json:"expected_salary,omitempty"`
	ExpectedArea    []string `json:"expected_area,omitempty"`
}

// Update submits a partial profile update and returns the refreshed profile.
func (p *ProfileAPI) Update(ctx context.Context, update ProfileUpdate) (*domain.Teacher, error) {
	var resp teacherEnvelope
	if err := p.client.Post(ctx, pathProfile, update, &resp, RequireAuth()); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return nil, fmt.Errorf("profile update: empty payload in response")
	}
	return resp.Data, nil
}

// UploadDocuments sends replacement verification documents.
func (p *ProfileAPI) UploadDocuments(ctx context.Context, nidFront, nidBack, universityIDPhoto *domain.FileAttachment) (*domain.Teacher, error) {
	form := NewFormData().
		AddFile("nid_front", nidFront).
		AddFile("nid_back", nidBack).
		AddFile("university_id_photo", universityIDPhoto)

	var resp teacherEnvelope
	if err := p.client.PostMultipart(ctx, pathProfileDocuments, form, &resp, RequireAuth()); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return nil, fmt.Errorf("document upload: empty payload in response")
	}
	return resp.Data, nil
}

// VerificationStatus fetches the profile verification state.
func (p *ProfileAPI) VerificationStatus(ctx context.Context) (string, error) {
	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Data    struct {
			Status string `json:"status"`
		} `json:"data"`
	}
	if err := p.client.Get(ctx, pathProfileVerification, &resp, RequireAuth()); err != nil {
		return "", err
	}
	return resp.Data.Status, nil
}
