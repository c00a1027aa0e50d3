package helpers

// Helper methods for role checking
func (c *CustomClaims) IsCustomer() bool {
	return c.Role == "customer"
}

func (c *CustomClaims) IsVenueOwner() bool {
	return c.Role == "venue-owner"
}

func (c *CustomClaims) HasRole(role string) bool {
	return c.Role == role
}

func (c *CustomClaims) IsOwner(userID string) bool {
	return c.Subject == userID
}
