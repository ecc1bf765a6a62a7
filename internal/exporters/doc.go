// Package exporters writes derived views to external file formats: an
// xlsx workbook of all applications and iCalendar files of interviews.
package exporters
