package helpers

import (
	"net/http"
	"net/url"
)

// flashCookie carries a one-shot notification across a redirect. The
// presentation layer reads and clears it; this package only sets it.
const flashCookie = "flash"

// SetFlash stores a url-encoded flash message cookie on the response.
func SetFlash(w http.ResponseWriter, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(message),
		Path:     "/",
		HttpOnly: false,
	})
}

// Redirect sets the flash message and issues a 303 See Other to location.
func Redirect(w http.ResponseWriter, r *http.Request, location, flash string) {
	if flash != "" {
		SetFlash(w, flash)
	}
	http.Redirect(w, r, location, http.StatusSeeOther)
}
