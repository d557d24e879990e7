package notifications

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"stefan-booking/internal/models"
)

const bookingConfirmationTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: white; padding: 20px; border-radius: 10px 10px 0 0; text-align: center; }
    .content { background: #f9f9f9; padding: 20px; border-radius: 0 0 10px 10px; }
    .booking-details { background: white; padding: 15px; margin: 15px 0; border-left: 4px solid #667eea; }
    .detail-row { display: flex; justify-content: space-between; margin: 8px 0; }
    .label { font-weight: bold; color: #667eea; }
    .price { font-size: 24px; color: #667eea; font-weight: bold; }
    .footer { text-align: center; color: #999; font-size: 12px; margin-top: 20px; }
    .btn { display: inline-block; background: #667eea; color: white; padding: 10px 20px; border-radius: 5px; text-decoration: none; margin-top: 15px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>🪑 Stuhl Stefan - Buchungsbestätigung</h1>
    </div>
    <div class="content">
      <p>Hallo <strong>{{.Name}}</strong>,</p>
      <p>vielen Dank für deine Buchung! Wir freuen uns, dir bald Stefan zur Verfügung zu stellen.</p>

      <div class="booking-details">
        <h3>📋 Buchungsdetails</h3>
        <div class="detail-row">
          <span class="label">Buchungs-ID:</span>
          <span>#{{.BookingID}}</span>
        </div>
        <div class="detail-row">
          <span class="label">Datum:</span>
          <span>{{.Date}}</span>
        </div>
        <div class="detail-row">
          <span class="label">Uhrzeit:</span>
          <span>{{.Time}} Uhr</span>
        </div>
        <div class="detail-row">
          <span class="label">Dauer:</span>
          <span>{{.Duration}} Stunde(n)</span>
        </div>
        <div class="detail-row">
          <span class="label">Telefon:</span>
          <span>{{.Phone}}</span>
        </div>
        {{- if .Message}}
        <div class="detail-row">
          <span class="label">Besondere Wünsche:</span>
          <span>{{.Message}}</span>
        </div>
        {{- end}}
      </div>

      <div class="booking-details">
        <h3>💰 Zahlungsinformation</h3>
        <div class="detail-row">
          <span class="label">Preis pro Stunde:</span>
          <span>15,00 €</span>
        </div>
        <div class="detail-row">
          <span class="label">Anzahl Stunden:</span>
          <span>{{.Duration}}</span>
        </div>
        <div class="detail-row">
          <span class="label">Gesamtpreis:</span>
          <span class="price">{{.TotalPrice}} €</span>
        </div>
      </div>

      <p><strong>Nächste Schritte:</strong></p>
      <ul>
        <li>Wir bestätigen deine Buchung innerhalb von 24 Stunden</li>
        <li>Du erhältst eine zweite Email mit den Abholdetails</li>
        <li>Bei Fragen kontaktiere uns gerne</li>
      </ul>

      <p>Vielen Dank,<br><strong>Das Stuhl Stefan Team</strong></p>

      <div class="footer">
        <p>Dies ist eine automatische Email. Bitte antworte nicht direkt auf diese Nachricht.</p>
        <p>&copy; 2026 Stuhl Stefan. Alle Rechte vorbehalten.</p>
      </div>
    </div>
  </div>
</body>
</html>`

var bookingConfirmationTmpl = template.Must(template.New("booking_confirmation").Parse(bookingConfirmationTemplate))

type bookingConfirmationData struct {
	Name       string
	BookingID  string
	Date       string
	Time       string
	Duration   int
	Phone      string
	Message    string
	TotalPrice string
}

// RenderBookingConfirmation builds the confirmation email body. It does no I/O.
func RenderBookingConfirmation(booking models.Booking) (string, error) {
	data := bookingConfirmationData{
		Name:       booking.Name,
		BookingID:  booking.ID,
		Date:       GermanLongDate(booking.Date),
		Time:       booking.Time,
		Duration:   booking.Duration,
		Phone:      booking.Phone,
		Message:    booking.Message,
		TotalPrice: booking.TotalPrice(),
	}
	var buf bytes.Buffer
	if err := bookingConfirmationTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func BookingConfirmationSubject(booking models.Booking) string {
	return "🪑 Buchungsbestätigung - Stuhl Stefan #" + booking.ID
}

var germanWeekdays = [...]string{
	time.Sunday:    "Sonntag",
	time.Monday:    "Montag",
	time.Tuesday:   "Dienstag",
	time.Wednesday: "Mittwoch",
	time.Thursday:  "Donnerstag",
	time.Friday:    "Freitag",
	time.Saturday:  "Samstag",
}

var germanMonths = [...]string{
	time.January:   "Januar",
	time.February:  "Februar",
	time.March:     "März",
	time.April:     "April",
	time.May:       "Mai",
	time.June:      "Juni",
	time.July:      "Juli",
	time.August:    "August",
	time.September: "September",
	time.October:   "Oktober",
	time.November:  "November",
	time.December:  "Dezember",
}

// GermanLongDate renders "2026-03-05" as "Donnerstag, 5. März 2026".
// Values that are not YYYY-MM-DD are returned unchanged.
func GermanLongDate(value string) string {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		return value
	}
	return fmt.Sprintf("%s, %d. %s %d", germanWeekdays[d.Weekday()], d.Day(), germanMonths[d.Month()], d.Year())
}
