package services

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/joshua-takyi/venuehub/internal/models"
)

// --- Mock BookingsRepo ---

type mockBookingsRepo struct {
	createFn              func(ctx context.Context, booking *models.Booking) (*models.Booking, error)
	getByIDFn             func(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	updateFn              func(ctx context.Context, fields map[string]interface{}, id uuid.UUID) (*models.Booking, error)
	listByOwnerFn         func(ctx context.Context, ownerId uuid.UUID) ([]*models.OwnerBookingView, error)
	listByCustomerFn      func(ctx context.Context, customerId uuid.UUID) ([]*models.CustomerBookingView, error)
	listPendingFn         func(ctx context.Context, ownerId uuid.UUID) ([]*models.OwnerBookingView, error)
	countPendingFn        func(ctx context.Context, ownerId uuid.UUID) (int, error)
	listRecentFn          func(ctx context.Context, customerId uuid.UUID, since time.Time) ([]*models.CustomerBookingView, error)
	countRecentFn         func(ctx context.Context, customerId uuid.UUID, since time.Time) (int, error)
	hasConfirmedForDateFn func(ctx context.Context, venueId uuid.UUID, eventDate string) (bool, error)
}

func (m *mockBookingsRepo) CreateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	return m.createFn(ctx, booking)
}
func (m *mockBookingsRepo) GetBookingByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	return m.getByIDFn(ctx, id)
}
func (m *mockBookingsRepo) UpdateBooking(ctx context.Context, fields map[string]interface{}, id uuid.UUID) (*models.Booking, error) {
	return m.updateFn(ctx, fields, id)
}
func (m *mockBookingsRepo) ListBookingsByOwner(ctx context.Context, ownerId uuid.UUID) ([]*models.OwnerBookingView, error) {
	return m.listByOwnerFn(ctx, ownerId)
}
func (m *mockBookingsRepo) ListBookingsByCustomer(ctx context.Context, customerId uuid.UUID) ([]*models.CustomerBookingView, error) {
	return m.listByCustomerFn(ctx, customerId)
}
func (m *mockBookingsRepo) ListPendingByOwner(ctx context.Context, ownerId uuid.UUID) ([]*models.OwnerBookingView, error) {
	return m.listPendingFn(ctx, ownerId)
}
func (m *mockBookingsRepo) CountPendingByOwner(ctx context.Context, ownerId uuid.UUID) (int, error) {
	return m.countPendingFn(ctx, ownerId)
}
func (m *mockBookingsRepo) ListRecentByCustomer(ctx context.Context, customerId uuid.UUID, since time.Time) ([]*models.CustomerBookingView, error) {
	return m.listRecentFn(ctx, customerId, since)
}
func (m *mockBookingsRepo) CountRecentByCustomer(ctx context.Context, customerId uuid.UUID, since time.Time) (int, error) {
	return m.countRecentFn(ctx, customerId, since)
}
func (m *mockBookingsRepo) HasConfirmedForDate(ctx context.Context, venueId uuid.UUID, eventDate string) (bool, error) {
	return m.hasConfirmedForDateFn(ctx, venueId, eventDate)
}

// --- Mock VenuesRepo ---

type mockVenuesRepo struct {
	createFn        func(ctx context.Context, venue *models.Venue) (*models.Venue, error)
	getByIDFn       func(ctx context.Context, id uuid.UUID) (*models.Venue, error)
	updateFn        func(ctx context.Context, fields map[string]interface{}, venueId uuid.UUID) (*models.Venue, error)
	deleteFn        func(ctx context.Context, venueId uuid.UUID) error
	listFn          func(ctx context.Context, filter models.VenueFilter, offset, limit int) ([]*models.Venue, int, error)
	listByOwnerFn   func(ctx context.Context, ownerId uuid.UUID, offset, limit int) ([]*models.Venue, int, error)
	filterOptionsFn func(ctx context.Context) (*models.FilterOptions, error)
	incrementFn     func(ctx context.Context, venueId uuid.UUID) error
}

func (m *mockVenuesRepo) CreateVenue(ctx context.Context, venue *models.Venue) (*models.Venue, error) {
	return m.createFn(ctx, venue)
}
func (m *mockVenuesRepo) GetVenueByID(ctx context.Context, id uuid.UUID) (*models.Venue, error) {
	return m.getByIDFn(ctx, id)
}
func (m *mockVenuesRepo) UpdateVenue(ctx context.Context, fields map[string]interface{}, venueId uuid.UUID) (*models.Venue, error) {
	return m.updateFn(ctx, fields, venueId)
}
func (m *mockVenuesRepo) DeleteVenue(ctx context.Context, venueId uuid.UUID) error {
	return m.deleteFn(ctx, venueId)
}
func (m *mockVenuesRepo) ListVenues(ctx context.Context, filter models.VenueFilter, offset, limit int) ([]*models.Venue, int, error) {
	return m.listFn(ctx, filter, offset, limit)
}
func (m *mockVenuesRepo) ListVenuesByOwner(ctx context.Context, ownerId uuid.UUID, offset, limit int) ([]*models.Venue, int, error) {
	return m.listByOwnerFn(ctx, ownerId, offset, limit)
}
func (m *mockVenuesRepo) GetFilterOptions(ctx context.Context) (*models.FilterOptions, error) {
	return m.filterOptionsFn(ctx)
}
func (m *mockVenuesRepo) IncrementTotalBookings(ctx context.Context, venueId uuid.UUID) error {
	return m.incrementFn(ctx, venueId)
}

// --- Mock UserRepo ---

type mockUserRepo struct {
	createFn       func(ctx context.Context, user *models.User) (*models.User, error)
	getByIDFn      func(ctx context.Context, id uuid.UUID) (*models.User, error)
	getByEmailFn   func(ctx context.Context, email string) (*models.User, error)
	updateFn       func(ctx context.Context, fields map[string]interface{}, id uuid.UUID) (*models.User, error)
	deleteFn       func(ctx context.Context, id uuid.UUID) error
	markVerifiedFn func(ctx context.Context, email string) error
}

func (m *mockUserRepo) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	return m.createFn(ctx, user)
}
func (m *mockUserRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return m.getByIDFn(ctx, id)
}
func (m *mockUserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.getByEmailFn(ctx, email)
}
func (m *mockUserRepo) UpdateUser(ctx context.Context, fields map[string]interface{}, id uuid.UUID) (*models.User, error) {
	return m.updateFn(ctx, fields, id)
}
func (m *mockUserRepo) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return m.deleteFn(ctx, id)
}
func (m *mockUserRepo) MarkVerified(ctx context.Context, email string) error {
	return m.markVerifiedFn(ctx, email)
}

// --- Mock Mailer ---

type sentMail struct {
	to      string
	subject string
}

type mockMailer struct {
	sent []sentMail
	err  error
}

func (m *mockMailer) Send(ctx context.Context, to, subject, html string) error {
	m.sent = append(m.sent, sentMail{to: to, subject: subject})
	return m.err
}

// --- Mock payment gateway ---

type mockGateway struct {
	createOrderFn func(ctx context.Context, amountPaise int64, currency, receipt string, notes map[string]interface{}) (string, error)
	keyID         string
}

func (m *mockGateway) CreateOrder(ctx context.Context, amountPaise int64, currency, receipt string, notes map[string]interface{}) (string, error) {
	return m.createOrderFn(ctx, amountPaise, currency, receipt, notes)
}
func (m *mockGateway) KeyID() string {
	return m.keyID
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
