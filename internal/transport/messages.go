package transport

// User-facing messages; the booking form is German only.
const (
	MsgBookingCreated = "Buchung erfolgreich erstellt!"
	MsgMissingFields  = "Alle erforderlichen Felder müssen ausgefüllt sein"
	MsgInvalidEmail   = "Ungültige Email-Adresse"
	MsgInvalidRequest = "Ungültige Anfrage"
	MsgInternal       = "Ein Fehler ist aufgetreten. Bitte versuche es später erneut."
	MsgNotFound       = "Seite nicht gefunden"
)
