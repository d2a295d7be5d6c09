package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/ratel-online/duel/uno/card/color"
)

// PrintDelay paces terminal output so the game can be followed.
var PrintDelay = 1 * time.Second

func Printfln(format string, args ...interface{}) {
	Println(fmt.Sprintf(format, args...))
}

func Printlns(lines []string) {
	Println(strings.Join(lines, "\n"))
}

func Println(args ...interface{}) {
	fmt.Fprintln(color.Stdout, args...)
	time.Sleep(PrintDelay)
}

// Print writes an already formatted message.
func Print(message string) {
	fmt.Fprint(color.Stdout, message)
	time.Sleep(PrintDelay)
}
