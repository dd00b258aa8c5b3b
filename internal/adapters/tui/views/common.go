package views

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and status handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets the status line
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the status line
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// SwitchToPickerMsg returns to the project picker
type SwitchToPickerMsg struct{}

// SwitchToHelpMsg shows the help view
type SwitchToHelpMsg struct{}

// StatusMsg reports the outcome of an action on the status line
type StatusMsg struct {
	Text string
	Err  error
}
