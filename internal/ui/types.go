package ui

// Progress creates progress indicators.
type Progress interface {
	// Spinner starts an indeterminate spinner showing title.
	Spinner(title string) Spinner
}

// Spinner is a running indeterminate progress indicator.
type Spinner interface {
	// Stop halts the spinner and clears it. It is safe to call more than once.
	Stop()
}
