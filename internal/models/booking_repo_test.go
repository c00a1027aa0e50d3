package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestRecentCustomerQuery(t *testing.T) {
	since := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	query := recentCustomerQuery(since)

	// Only terminal transitions count as notifications.
	status, ok := query["status"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, bson.A{BookingConfirmed, BookingCancelled}, status["$in"])

	// The window boundary is inclusive: a booking updated exactly at the cutoff
	// still matches.
	updated, ok := query["updated_at"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, since, updated["$gte"])

	// Acknowledged bookings drop out of counts and lists entirely.
	ack, ok := query["acknowledged_at"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, false, ack["$exists"])
}
