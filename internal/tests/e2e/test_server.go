package e2e

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/touhid12310/bdtuitions-android-ios/domain"
)

// FakeBackend is an in-process stand-in for the manage.bdtuition.com API.
// It issues real JWT bearer tokens so the client's auth header handling is
// exercised against actual validation, not string comparison.
type FakeBackend struct {
	Server *httptest.Server
	Router *gin.Engine

	mu        sync.Mutex
	secretMu  sync.RWMutex
	secret    []byte
	teachers  map[string]*domain.Teacher // keyed by phone number
	passwords map[string]string
	otps      map[string]string
	revoked   map[string]bool
	payments  map[string]*fakePayment
	tuitions  []domain.Tuition
	pending   []domain.PendingPayment

	nextTeacherID uint
	nextPaymentID int

	// Counters for asserting how often the client hit an endpoint.
	ExecuteBkashCalls        int
	ExecuteVerificationCalls int
	ResendOTPCalls           int
}

type fakePayment struct {
	AssignmentID uint
	Amount       float64
	Verification bool
	Executed     bool
}

// NewFakeBackend starts the fake API on an httptest server.
func NewFakeBackend(t *testing.T) *FakeBackend {
	t.Helper()
	gin.SetMode(gin.TestMode)

	backend := &FakeBackend{
		secret:        []byte("e2e-signing-secret"),
		teachers:      make(map[string]*domain.Teacher),
		passwords:     make(map[string]string),
		otps:          make(map[string]string),
		revoked:       make(map[string]bool),
		payments:      make(map[string]*fakePayment),
		nextTeacherID: 1,
	}
	backend.Router = backend.buildRouter()
	backend.Server = httptest.NewServer(backend.Router)
	t.Cleanup(backend.Server.Close)
	return backend
}

// URL is the base URL clients should be configured with.
func (f *FakeBackend) URL() string {
	return f.Server.URL
}

func (f *FakeBackend) buildRouter() *gin.Engine {
	r := gin.New()

	r.POST("/auth/login", f.handleLogin)
	r.POST("/auth/register", f.handleRegister)
	r.POST("/auth/verify-otp", f.handleVerifyOTP)
	r.POST("/auth/resend-otp", f.handleResendOTP)
	r.POST("/auth/forgot-password", f.handleForgotPassword)
	r.POST("/auth/reset-password", f.handleResetPassword)

	authed := r.Group("", f.requireBearer)
	authed.POST("/auth/logout", f.handleLogout)
	authed.GET("/auth/me", f.handleMe)
	authed.GET("/tuitions", f.handleTuitionList)
	authed.GET("/notifications/unread-count", f.handleUnreadCount)
	authed.POST("/payments/bkash/create", f.handleBkashCreate)
	authed.POST("/payments/bkash/execute", f.handleBkashExecute)
	authed.GET("/payments/pending", f.handlePendingPayments)
	authed.GET("/payments/history", f.handlePaymentHistory)
	authed.POST("/verification/pay", f.handleVerificationPay)
	authed.POST("/verification/execute", f.handleVerificationExecute)

	return r
}

// --- token handling ---

func (f *FakeBackend) signingSecret() []byte {
	f.secretMu.RLock()
	defer f.secretMu.RUnlock()
	return f.secret
}

func (f *FakeBackend) mintToken(phone string) string {
	claims := jwt.MapClaims{
		"sub": phone,
		"iss": "bdtuition-e2e",
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(f.signingSecret())
	if err != nil {
		panic(fmt.Sprintf("minting token: %v", err))
	}
	return token
}

func (f *FakeBackend) requireBearer(c *gin.Context) {
	header := c.GetHeader("Authorization")
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || raw == "" {
		unauthorized(c)
		return
	}

	f.mu.Lock()
	revoked := f.revoked[raw]
	f.mu.Unlock()
	if revoked {
		unauthorized(c)
		return
	}

	parsed, err := jwt.Parse(raw, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return f.signingSecret(), nil
	})
	if err != nil || !parsed.Valid {
		unauthorized(c)
		return
	}
	phone, err := parsed.Claims.GetSubject()
	if err != nil {
		unauthorized(c)
		return
	}

	f.mu.Lock()
	teacher, exists := f.teachers[phone]
	f.mu.Unlock()
	if !exists {
		unauthorized(c)
		return
	}

	c.Set("teacher", teacher)
	c.Set("token", raw)
	c.Next()
}

func unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": "Unauthenticated.",
	})
}

func currentTeacher(c *gin.Context) *domain.Teacher {
	return c.MustGet("teacher").(*domain.Teacher)
}

// --- auth handlers ---

func (f *FakeBackend) handleLogin(c *gin.Context) {
	var req struct {
		Login      string `json:"login"`
		Password   string `json:"password"`
		DeviceName string `json:"device_name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, "Invalid request body", nil)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	teacher := f.findTeacherLocked(req.Login)
	if teacher == nil || f.passwords[teacher.PhoneNumber] != req.Password {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"success": false,
			"message": "Invalid credentials",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"data": gin.H{
			"token":   f.mintToken(teacher.PhoneNumber),
			"teacher": teacher,
		},
	})
}

func (f *FakeBackend) handleRegister(c *gin.Context) {
	name := c.PostForm("teacher_name")
	phone := c.PostForm("phone_number")
	email := c.PostForm("email")
	password := c.PostForm("password")

	fields := map[string][]string{}
	if name == "" {
		fields["teacher_name"] = []string{"The teacher name field is required."}
	}
	if phone == "" {
		fields["phone_number"] = []string{"The phone number field is required."}
	}
	if len(fields) > 0 {
		validationError(c, "The given data was invalid.", fields)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, exists := f.teachers[phone]; exists {
		validationError(c, "The given data was invalid.", map[string][]string{
			"phone_number": {"The phone number has already been taken."},
		})
		return
	}

	f.teachers[phone] = &domain.Teacher{
		ID:          f.nextTeacherID,
		TeacherName: name,
		PhoneNumber: phone,
		Email:       email,
		City:        c.PostForm("city"),
		Area:        c.PostForm("area"),
		Status:      "Pending",
	}
	f.nextTeacherID++
	f.passwords[phone] = password
	f.otps[phone] = "123456"

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Registration successful, verify the OTP sent to your phone",
		"data":    gin.H{"phone_number": phone},
	})
}

func (f *FakeBackend) handleVerifyOTP(c *gin.Context) {
	var req struct {
		PhoneNumber string `json:"phone_number"`
		VerifyCode  string `json:"verify_code"`
		DeviceName  string `json:"device_name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, "Invalid request body", nil)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	teacher, exists := f.teachers[req.PhoneNumber]
	if !exists || f.otps[req.PhoneNumber] != req.VerifyCode {
		validationError(c, "The verify code is invalid.", map[string][]string{
			"verify_code": {"The verify code is invalid."},
		})
		return
	}
	delete(f.otps, req.PhoneNumber)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Phone number verified",
		"data": gin.H{
			"token":   f.mintToken(teacher.PhoneNumber),
			"teacher": teacher,
		},
	})
}

func (f *FakeBackend) handleResendOTP(c *gin.Context) {
	var req struct {
		PhoneNumber string `json:"phone_number"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, "Invalid request body", nil)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.ResendOTPCalls++
	f.otps[req.PhoneNumber] = "123456"

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "OTP sent"})
}

func (f *FakeBackend) handleForgotPassword(c *gin.Context) {
	var req struct {
		PhoneNumber string `json:"phone_number"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, "Invalid request body", nil)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, exists := f.teachers[req.PhoneNumber]; !exists {
		validationError(c, "No account found for this phone number.", map[string][]string{
			"phone_number": {"No account found for this phone number."},
		})
		return
	}
	f.otps[req.PhoneNumber] = "654321"

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "OTP sent",
		"data":    gin.H{"phone_number": req.PhoneNumber},
	})
}

func (f *FakeBackend) handleResetPassword(c *gin.Context) {
	var req struct {
		PhoneNumber string `json:"phone_number"`
		VerifyCode  string `json:"verify_code"`
		NewPassword string `json:"new_password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, "Invalid request body", nil)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.otps[req.PhoneNumber] != req.VerifyCode {
		validationError(c, "The verify code is invalid.", map[string][]string{
			"verify_code": {"The verify code is invalid."},
		})
		return
	}
	delete(f.otps, req.PhoneNumber)
	f.passwords[req.PhoneNumber] = req.NewPassword

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password reset successful"})
}

func (f *FakeBackend) handleLogout(c *gin.Context) {
	token := c.MustGet("token").(string)

	f.mu.Lock()
	f.revoked[token] = true
	f.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out"})
}

func (f *FakeBackend) handleMe(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "OK",
		"data":    currentTeacher(c),
	})
}

// --- listing handlers ---

func (f *FakeBackend) handleTuitionList(c *gin.Context) {
	f.mu.Lock()
	rows := make([]domain.Tuition, len(f.tuitions))
	copy(rows, f.tuitions)
	f.mu.Unlock()

	city := c.Query("city")
	if city != "" {
		filtered := rows[:0]
		for _, row := range rows {
			if row.City == city {
				filtered = append(filtered, row)
			}
		}
		rows = filtered
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "OK",
		"data":    rows,
		"meta": gin.H{
			"current_page": 1,
			"last_page":    1,
			"per_page":     len(rows),
			"total":        len(rows),
		},
	})
}

func (f *FakeBackend) handleUnreadCount(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "OK",
		"data":    gin.H{"count": currentTeacher(c).UnreadNotificationsCount},
	})
}

// --- payment handlers ---

func (f *FakeBackend) handleBkashCreate(c *gin.Context) {
	var req struct {
		AssignmentID uint    `json:"assignment_id"`
		Amount       float64 `json:"amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Amount <= 0 {
		validationError(c, "Invalid payment request", nil)
		return
	}

	f.mu.Lock()
	f.nextPaymentID++
	paymentID := fmt.Sprintf("TR%04d", f.nextPaymentID)
	f.payments[paymentID] = &fakePayment{AssignmentID: req.AssignmentID, Amount: req.Amount}
	f.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Payment created",
		"data": gin.H{
			"bkash_url":  "https://sandbox.payment.bkash.com/checkout/" + paymentID,
			"payment_id": paymentID,
		},
	})
}

func (f *FakeBackend) handleBkashExecute(c *gin.Context) {
	var req struct {
		PaymentID string `json:"payment_id"`
		Status    string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, "Invalid request body", nil)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.ExecuteBkashCalls++

	payment, exists := f.payments[req.PaymentID]
	if !exists || req.Status != "success" {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Payment not found"})
		return
	}
	if payment.Executed {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Payment already completed"})
		return
	}
	payment.Executed = true

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Payment completed",
		"data": gin.H{
			"transaction": gin.H{
				"assignment_id":  payment.AssignmentID,
				"amount":         payment.Amount,
				"payment_method": "bkash",
			},
			"trx_id": "TRX-" + req.PaymentID,
		},
	})
}

func (f *FakeBackend) handlePendingPayments(c *gin.Context) {
	f.mu.Lock()
	rows := make([]domain.PendingPayment, len(f.pending))
	copy(rows, f.pending)
	f.mu.Unlock()

	var totalDue float64
	for _, row := range rows {
		totalDue += row.EffectiveDue
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "OK",
		"data": gin.H{
			"assignments": rows,
			"total_due":   fmt.Sprintf("%.2f", totalDue),
		},
	})
}

func (f *FakeBackend) handlePaymentHistory(c *gin.Context) {
	f.mu.Lock()
	ids := make([]string, 0, len(f.payments))
	for id, payment := range f.payments {
		if payment.Executed && !payment.Verification {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	rows := make([]domain.Transaction, 0, len(ids))
	for i, id := range ids {
		payment := f.payments[id]
		rows = append(rows, domain.Transaction{
			ID:            uint(i + 1),
			AssignmentID:  payment.AssignmentID,
			Amount:        payment.Amount,
			PaymentType:   "due",
			PaymentMethod: "bkash",
			TransactionID: "TRX-" + id,
			Status:        "completed",
		})
	}
	f.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "OK",
		"data":    rows,
		"meta": gin.H{
			"current_page": 1,
			"last_page":    1,
			"per_page":     len(rows),
			"total":        len(rows),
		},
	})
}

func (f *FakeBackend) handleVerificationPay(c *gin.Context) {
	var req struct {
		Amount float64 `json:"amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Amount <= 0 {
		validationError(c, "Invalid payment request", nil)
		return
	}

	f.mu.Lock()
	f.nextPaymentID++
	paymentID := fmt.Sprintf("VR%04d", f.nextPaymentID)
	f.payments[paymentID] = &fakePayment{Amount: req.Amount, Verification: true}
	f.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Payment created",
		"data": gin.H{
			"bkash_url":  "https://sandbox.payment.bkash.com/checkout/" + paymentID,
			"payment_id": paymentID,
		},
	})
}

func (f *FakeBackend) handleVerificationExecute(c *gin.Context) {
	var req struct {
		PaymentID string `json:"payment_id"`
		Status    string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, "Invalid request body", nil)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.ExecuteVerificationCalls++

	payment, exists := f.payments[req.PaymentID]
	if !exists || !payment.Verification || req.Status != "success" || payment.Executed {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Payment not found"})
		return
	}
	payment.Executed = true

	teacher := currentTeacher(c)
	teacher.Status = "Verified"

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Verification payment completed",
		"data": gin.H{
			"trx_id": "TRX-" + req.PaymentID,
			"status": teacher.Status,
		},
	})
}

func validationError(c *gin.Context, message string, fields map[string][]string) {
	body := gin.H{"success": false, "message": message}
	if fields != nil {
		body["errors"] = fields
	}
	c.JSON(http.StatusUnprocessableEntity, body)
}

func (f *FakeBackend) findTeacherLocked(login string) *domain.Teacher {
	if teacher, exists := f.teachers[login]; exists {
		return teacher
	}
	for _, teacher := range f.teachers {
		if teacher.Email == login {
			return teacher
		}
	}
	return nil
}

// RevokeAllTokens invalidates every token the backend ever issued, simulating
// a server-side session purge.
func (f *FakeBackend) RevokeAllTokens() {
	f.secretMu.Lock()
	defer f.secretMu.Unlock()
	f.secret = []byte("rotated-" + time.Now().String())
}
