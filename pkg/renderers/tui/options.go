package tui

// Option customises the editor before construction.
type Option func(*Editor)

// WithDriver swaps the prompt driver. Tests use a scripted driver; the
// default is the survey-backed terminal driver.
func WithDriver(driver PromptDriver) Option {
	return func(e *Editor) {
		if driver != nil {
			e.driver = driver
		}
	}
}

// WithLabeler overrides how field keys become prompt labels.
func WithLabeler(labeler func(string) string) Option {
	return func(e *Editor) {
		if labeler != nil {
			e.labeler = labeler
		}
	}
}
