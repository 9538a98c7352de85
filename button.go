package thicket

// ClickEvent is passed to Button click handlers.
type ClickEvent struct {
	Modifiers KeyModifiers
}

// Button is a focusable composite that turns a left-button release over its
// frame into a click. It claims every button press and release that reaches
// it, so controls behind it never see them.
type Button struct {
	*Control

	// Enabled gates click delivery. A disabled button still swallows
	// button events.
	Enabled bool

	// OnClick is called when the button is clicked.
	OnClick func(ClickEvent)
}

// NewButton creates an enabled, focusable button. The returned button owns
// the OnMouseButtonDown and OnMouseButtonUp hooks of its control.
func NewButton(name string) *Button {
	b := &Button{Control: NewComposite(name), Enabled: true}
	b.canBeFocused = true
	b.UserData = b
	b.OnMouseButtonDown = func(e *MouseButtonEvent) {
		e.Handled = true
	}
	b.OnMouseButtonUp = func(e *MouseButtonEvent) {
		if e.Button == MouseButtonLeft && b.Enabled {
			b.Click(ClickEvent{Modifiers: e.Modifiers})
		}
		e.Handled = true
	}
	return b
}

// Click fires the click handler directly, bypassing input routing and the
// Enabled flag.
func (b *Button) Click(e ClickEvent) {
	if b.OnClick != nil {
		b.OnClick(e)
	}
}
