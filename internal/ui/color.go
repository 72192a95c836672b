package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	okStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

func OkLine(w io.Writer, msg string) {
	fmt.Fprintln(w, okStyle.Render("ok")+"   "+msg)
}

func ErrorLine(w io.Writer, err error) {
	fmt.Fprintln(w, errStyle.Render("err")+"  "+err.Error())
}
