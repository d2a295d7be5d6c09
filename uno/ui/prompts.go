package ui

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/ratel-online/duel/consts"
	"github.com/ratel-online/duel/uno/card/color"
	"github.com/ratel-online/duel/uno/msg"
)

var input = bufio.NewReader(os.Stdin)

// SetInput replaces the reader prompts consume.
func SetInput(r io.Reader) {
	input = bufio.NewReader(r)
}

// ReadLine returns the next trimmed line. Input closed mid-line still yields
// what was read.
func ReadLine() (string, error) {
	line, err := input.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", consts.ErrorsChanClosed
	}
	return strings.TrimSpace(line), nil
}

func PromptString(message string) (string, error) {
	for {
		Print(message)
		line, err := ReadLine()
		if err != nil {
			return "", err
		}
		if line == "" {
			Println("Invalid text input")
			continue
		}
		return line, nil
	}
}

func PromptColor() (color.Color, error) {
	for {
		colorName, err := PromptString(msg.Message.PromptColor())
		if err != nil {
			return color.Default, err
		}
		chosenColor, err := color.ByName(colorName)
		if err != nil || !chosenColor.Choosable() {
			Printfln("Unknown color '%s'", colorName)
			continue
		}
		return chosenColor, nil
	}
}
