package api

// REST endpoint paths, relative to the versioned base URL.
const (
	pathLogin          = "/auth/login"
	pathRegister       = "/auth/register"
	pathVerifyOTP      = "/auth/verify-otp"
	pathResendOTP      = "/auth/resend-otp"
	pathForgotPassword = "/auth/forgot-password"
	pathResetPassword  = "/auth/reset-password"
	pathLogout         = "/auth/logout"
	pathMe             = "/auth/me"

	pathProfile             = "/profile"
	pathProfileDocuments    = "/profile/documents"
	pathProfileVerification = "/profile/verification"

	pathDashboardStats              = "/dashboard/stats"
	pathDashboardRecentApplications = "/dashboard/recent-applications"

	pathTuitions     = "/tuitions"
	pathApplications = "/applications"
	pathAssignments  = "/assignments"

	pathPaymentsPending      = "/payments/pending"
	pathPaymentsHistory      = "/payments/history"
	pathPaymentsManual       = "/payments/manual"
	pathPaymentsBkashCreate  = "/payments/bkash/create"
	pathPaymentsBkashExecute = "/payments/bkash/execute"

	pathVerificationPay     = "/verification/pay"
	pathVerificationExecute = "/verification/execute"

	pathRefunds = "/refunds"

	pathNotifications            = "/notifications"
	pathNotificationsUnreadCount = "/notifications/unread-count"
	pathNotificationsReadAll     = "/notifications/read-all"

	pathLocationsCities = "/locations/cities"
	pathLocationsAreas  = "/locations/areas"
)
