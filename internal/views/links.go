package views

import (
	"net/url"
	"strings"
)

const mapsSearchURL = "https://www.google.com/maps/search/?api=1&query="

// NotAvailable is shown for optional fields that are empty.
const NotAvailable = "N/A"

// LinkHost returns the host part of a job link for compact display. Links
// without a scheme are read as https; unparseable links are returned as is.
func LinkHost(link string) string {
	link = strings.TrimSpace(link)
	if link == "" {
		return NotAvailable
	}
	raw := link
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return link
	}
	return u.Hostname()
}

// MapsURL returns a map search link for an in-person interview address.
func MapsURL(address string) string {
	address = strings.TrimSpace(address)
	if address == "" {
		return ""
	}
	return mapsSearchURL + url.QueryEscape(address)
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return NotAvailable
	}
	return s
}
