package viewtypes

import "strconv"

// Shared CSS class strings for the admin templates.

// PageHeading is the main h1 heading style for top-level pages.
var PageHeading = "page-heading"

// InfoBoxClass is the standard info/detail panel container.
var InfoBoxClass = "info-box"

// InputClass is the standard text input styling.
var InputClass = "input"

// ButtonClass is the primary submit button.
var ButtonClass = "ui-button"

// FlashClass returns the alert class for a flash kind.
func FlashClass(kind string) string {
	if kind == "error" {
		return "alert alert-error"
	}
	return "alert alert-success"
}

// ColumnClass returns the grid class for a field column width, "col-100" for
// full width.
func ColumnClass(width int) string {
	if width <= 0 || width > 100 {
		width = 100
	}
	return "col-" + strconv.Itoa(width)
}
