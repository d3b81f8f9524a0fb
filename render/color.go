package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

type Style interface {
	Paint(string) string
	Paintf(string, ...interface{}) string
}

type styleStruct struct {
	colorFunction func(string, ...interface{}) string
}

func (s *styleStruct) Paint(text string) string {
	return s.colorFunction("%s", text)
}

func (s *styleStruct) Paintf(text string, args ...interface{}) string {
	return s.colorFunction(text, args...)
}

var (
	TileStyle   Style = &styleStruct{colorFunction: color.New(color.FgHiYellow, color.Bold).SprintfFunc()}
	EndStyle    Style = &styleStruct{colorFunction: color.New(color.FgHiCyan).SprintfFunc()}
	NoticeStyle Style = &styleStruct{colorFunction: color.New(color.FgHiGreen).SprintfFunc()}
	AlertStyle  Style = &styleStruct{colorFunction: color.New(color.FgHiRed).SprintfFunc()}
	PromptStyle Style = &styleStruct{colorFunction: color.New(color.FgHiWhite, color.Bold).SprintfFunc()}
)

// Stdout honours NO_COLOR and non-terminal outputs.
var Stdout io.Writer = color.Output

// Plain turns painting off process-wide.
func Plain() {
	color.NoColor = true
}

func Println(w io.Writer, style Style, format string, args ...interface{}) {
	_, _ = fmt.Fprintln(w, style.Paintf(format, args...))
}
