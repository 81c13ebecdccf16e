package app

import (
	"context"

	"github.com/touhid12310/bdtuitions-android-ios/domain"
	"github.com/touhid12310/bdtuitions-android-ios/internal/config"
	"github.com/touhid12310/bdtuitions-android-ios/internal/infrastructure/api"
	"github.com/touhid12310/bdtuitions-android-ios/internal/infrastructure/cache"
	"github.com/touhid12310/bdtuitions-android-ios/internal/infrastructure/storage"
	"github.com/touhid12310/bdtuitions-android-ios/internal/services"
)

// Container holds all dependencies
type Container struct {
	// Config
	Config *config.Config

	// Infrastructure
	Store  *storage.BoltStore
	Cache  *cache.Cache
	Client *api.Client

	// Endpoint groups
	AuthAPI          domain.AuthBackend
	PaymentsAPI      *api.PaymentsAPI
	TuitionsAPI      *api.TuitionsAPI
	NotificationsAPI domain.NotificationBackend
	AssignmentsAPI   *api.AssignmentsAPI
	DashboardAPI     *api.DashboardAPI
	ProfileAPI       *api.ProfileAPI
	LocationsAPI     *api.LocationsAPI

	// Services
	Sessions        domain.SessionStore
	AuthSvc         domain.AuthService
	PaymentSvc      domain.PaymentService
	TuitionSvc      *services.TuitionService
	NotificationSvc *services.NotificationService
}

// NewContainer creates and initializes all dependencies. The persisted
// session is rehydrated before any endpoint group is handed out, so the
// first request already carries a stored token.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	container := &Container{Config: cfg}

	if err := container.initStorage(); err != nil {
		return nil, err
	}
	if err := container.initSessions(ctx); err != nil {
		return nil, err
	}
	if err := container.initClient(); err != nil {
		return nil, err
	}
	container.initEndpoints()
	container.initServices()

	return container, nil
}

func (c *Container) initStorage() error {
	store, err := storage.NewBoltStore(c.Config.SessionPath)
	if err != nil {
		return err
	}
	c.Store = store

	if c.Config.CachePath != "" {
		listingCache, err := cache.Open(c.Config.CachePath)
		if err != nil {
			return err
		}
		c.Cache = listingCache
	}
	return nil
}

func (c *Container) initSessions(ctx context.Context) error {
	sessions := services.NewSessionStore(c.Store)
	if err := sessions.Rehydrate(ctx); err != nil {
		return err
	}
	c.Sessions = sessions
	return nil
}

func (c *Container) initClient() error {
	deviceID, err := c.Store.DeviceID()
	if err != nil {
		return err
	}
	// A 401 on any authenticated endpoint tears the session down before
	// the error reaches the caller.
	c.Client = api.NewClient(
		c.Config.APIBaseURL,
		c.Config.RequestTimeout,
		c.Sessions,
		func() { _ = c.Sessions.ClearSession() },
		api.WithDeviceID(deviceID),
	)
	return nil
}

func (c *Container) initEndpoints() {
	c.AuthAPI = api.NewAuthAPI(c.Client, c.Config.DeviceName)
	c.PaymentsAPI = api.NewPaymentsAPI(c.Client)
	c.TuitionsAPI = api.NewTuitionsAPI(c.Client)
	c.NotificationsAPI = api.NewNotificationsAPI(c.Client)
	c.AssignmentsAPI = api.NewAssignmentsAPI(c.Client)
	c.DashboardAPI = api.NewDashboardAPI(c.Client)
	c.ProfileAPI = api.NewProfileAPI(c.Client)
	c.LocationsAPI = api.NewLocationsAPI(c.Client)
}

func (c *Container) initServices() {
	c.AuthSvc = services.NewAuthService(c.AuthAPI, c.Sessions, c.Config.OTPResendWindow)
	c.PaymentSvc = services.NewPaymentService(c.PaymentsAPI, c.Sessions)
	c.TuitionSvc = services.NewTuitionService(c.TuitionsAPI, c.Cache)
	c.NotificationSvc = services.NewNotificationService(c.NotificationsAPI, c.Sessions, c.Cache)
}

// Close releases the storage handles.
func (c *Container) Close() error {
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			return err
		}
	}
	if c.Store != nil {
		return c.Store.Close()
	}
	return nil
}
