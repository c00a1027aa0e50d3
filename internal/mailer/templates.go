package mailer

import "fmt"

// Email bodies are intentionally plain HTML strings; there is no templating
// engine in this service.

// OwnerInquiryEmail notifies a venue owner of a new inquiry. Customer contact
// details are deliberately withheld until the owner responds.
func OwnerInquiryEmail(venueName, eventDate, eventType string, guestCount int) (subject, html string) {
	subject = fmt.Sprintf("New booking inquiry for %s", venueName)
	html = fmt.Sprintf(
		`<h2>New booking inquiry</h2>
<p>You have a new inquiry for <b>%s</b>.</p>
<ul>
<li>Event date: %s</li>
<li>Event type: %s</li>
<li>Guests: %d</li>
</ul>
<p>Open your dashboard to accept or decline.</p>`,
		venueName, eventDate, eventType, guestCount)
	return subject, html
}

// AdminInquiryEmail carries the full inquiry including customer contact fields.
func AdminInquiryEmail(venueName, eventDate, eventType string, guestCount int, customerName, customerEmail, customerPhone string) (subject, html string) {
	subject = fmt.Sprintf("[admin] New inquiry: %s on %s", venueName, eventDate)
	html = fmt.Sprintf(
		`<h2>New booking inquiry</h2>
<ul>
<li>Venue: %s</li>
<li>Event date: %s</li>
<li>Event type: %s</li>
<li>Guests: %d</li>
<li>Customer: %s (%s, %s)</li>
</ul>`,
		venueName, eventDate, eventType, guestCount, customerName, customerEmail, customerPhone)
	return subject, html
}

// CustomerStatusEmail tells the customer their inquiry was accepted or declined.
func CustomerStatusEmail(venueName, eventDate, status string, paymentAmount float64) (subject, html string) {
	if status == "confirmed" {
		subject = fmt.Sprintf("Your booking for %s is confirmed", venueName)
		html = fmt.Sprintf(
			`<h2>Booking confirmed</h2>
<p>Your booking for <b>%s</b> on %s has been confirmed.</p>
<p>Amount payable (incl. GST): %.2f</p>
<p>Please complete the payment from your dashboard.</p>`,
			venueName, eventDate, paymentAmount)
		return subject, html
	}

	subject = fmt.Sprintf("Your booking for %s was declined", venueName)
	html = fmt.Sprintf(
		`<h2>Booking declined</h2>
<p>Unfortunately your booking for <b>%s</b> on %s was declined by the venue.</p>`,
		venueName, eventDate)
	return subject, html
}

func AdminStatusEmail(venueName, eventDate, status, customerName, customerEmail string) (subject, html string) {
	subject = fmt.Sprintf("[admin] Booking %s: %s on %s", status, venueName, eventDate)
	html = fmt.Sprintf(
		`<h2>Booking %s</h2>
<ul>
<li>Venue: %s</li>
<li>Event date: %s</li>
<li>Customer: %s (%s)</li>
</ul>`,
		status, venueName, eventDate, customerName, customerEmail)
	return subject, html
}

func OTPEmail(code string) (subject, html string) {
	subject = "Verify your VenueHub account"
	html = fmt.Sprintf(
		`<h2>Email verification</h2>
<p>Your one-time code is <b>%s</b>. It expires in 10 minutes.</p>`, code)
	return subject, html
}
