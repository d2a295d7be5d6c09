package msg

import (
	"fmt"
	"strings"

	"github.com/ratel-online/duel/uno/card"
)

func Sprintfln(format string, args ...interface{}) string {
	return Sprintln(fmt.Sprintf(format, args...))
}

func Sprintlns(lines []string) string {
	return Sprintln(strings.Join(lines, "\n"))
}

func Sprintln(args ...interface{}) string {
	return fmt.Sprintln(args...)
}

// numbered lists cards with their 1-based position in the hand.
func numbered(cards []card.Card, offset int) string {
	items := make([]string, 0, len(cards))
	for i, c := range cards {
		items = append(items, fmt.Sprintf("%d:%s", offset+i+1, c))
	}
	return strings.Join(items, " ")
}
