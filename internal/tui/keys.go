package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	left     key.Binding
	right    key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	quit     key.Binding
	reload   key.Binding
	newItem  key.Binding
	delete   key.Binding
	version  key.Binding
	toggleNA key.Binding
	defects  key.Binding
	copy     key.Binding
	sync     key.Binding
	submit   key.Binding
	reopen   key.Binding
	certify  key.Binding
	clear    key.Binding
	yes      key.Binding
	no       key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	left:     key.NewBinding(key.WithKeys("left")),
	right:    key.NewBinding(key.WithKeys("right")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c")),
	reload:   key.NewBinding(key.WithKeys("r")),
	newItem:  key.NewBinding(key.WithKeys("n")),
	delete:   key.NewBinding(key.WithKeys("d")),
	version:  key.NewBinding(key.WithKeys("v")),
	toggleNA: key.NewBinding(key.WithKeys("a")),
	defects:  key.NewBinding(key.WithKeys("x")),
	copy:     key.NewBinding(key.WithKeys("c")),
	sync:     key.NewBinding(key.WithKeys("s")),
	submit:   key.NewBinding(key.WithKeys("u")),
	reopen:   key.NewBinding(key.WithKeys("b")),
	certify:  key.NewBinding(key.WithKeys("p")),
	clear:    key.NewBinding(key.WithKeys("z")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n", "esc")),
}
