package ui_test

import (
	"strings"
	"testing"

	"github.com/ratel-online/duel/consts"
	"github.com/ratel-online/duel/uno/card/color"
	"github.com/ratel-online/duel/uno/ui"
	"github.com/stretchr/testify/require"
)

func TestPromptColor(t *testing.T) {
	ui.PrintDelay = 0

	tests := []struct {
		name     string
		input    string
		expected color.Color
		err      error
	}{
		{name: "valid", input: "green\n", expected: color.Green},
		{name: "retries_unknown_and_wild", input: "purple\nwild\nblue\n", expected: color.Blue},
		{name: "retries_blank_lines", input: "\n\nyellow\n", expected: color.Yellow},
		{name: "closed_input", input: "purple\n", expected: color.Default, err: consts.ErrorsChanClosed},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ui.SetInput(strings.NewReader(test.input))
			chosen, err := ui.PromptColor()
			require.Equal(t, test.err, err)
			require.Equal(t, test.expected, chosen)
		})
	}
}

func TestReadLine(t *testing.T) {
	ui.SetInput(strings.NewReader("  play 2  \ndraw"))

	line, err := ui.ReadLine()
	require.NoError(t, err)
	require.Equal(t, "play 2", line)

	line, err = ui.ReadLine()
	require.NoError(t, err)
	require.Equal(t, "draw", line)

	_, err = ui.ReadLine()
	require.ErrorIs(t, err, consts.ErrorsChanClosed)
}
