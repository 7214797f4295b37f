package submit

// View is the page surface an orchestrator drives. Implementations render
// the effects however suits them (terminal, test recorder, template).
type View interface {
	// FocusField scrolls the named field into view and focuses it.
	FocusField(name string)
	// SetBusy disables (busy=true) or re-enables the submit control and
	// shows label on it.
	SetBusy(busy bool, label string)
	// ShowSuccess hides the form and reveals the success panel. orderID is
	// empty for forms that do not issue one.
	ShowSuccess(orderID string)
}

// NopView ignores every call.
type NopView struct{}

func (NopView) FocusField(string)    {}
func (NopView) SetBusy(bool, string) {}
func (NopView) ShowSuccess(string)   {}
