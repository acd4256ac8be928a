package tui

type confirmModel struct {
	message string
}

func (m confirmModel) View() string {
	content := "Delete \"" + m.message + "\" and all its records?\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
