package tui

import (
	"strings"

	"github.com/unitytechnetwork/Afifi-sub000/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, vocabulary string) string {
	var b strings.Builder

	b.WriteString("Application: fireaudit\n")
	b.WriteString("Version: ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\n")
	b.WriteString("Date: ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(valueOrNA(info.BuildCommit()))
	b.WriteString("\n")
	b.WriteString("Fault vocabulary: ")
	b.WriteString(valueOrNA(vocabulary))

	return renderPage("ABOUT", b.String(), "esc: back")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
