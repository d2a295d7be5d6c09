package card

import (
	"fmt"
	"strconv"
)

type Value int

const (
	Zero Value = iota
	One
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Skip
	Reverse
	DrawTwo
	Wild
	WildDrawFour
)

type Kind int

const (
	Number Kind = iota
	Special
)

func (k Kind) String() string {
	if k == Number {
		return "NUMBER"
	}
	return "SPECIAL"
}

var valueNames = map[Value]string{
	Skip:         "SKIP",
	Reverse:      "REVERSE",
	DrawTwo:      "DRAW_TWO",
	Wild:         "WILD",
	WildDrawFour: "WILD_DRAW_FOUR",
}

func (v Value) Kind() Kind {
	if v >= Zero && v <= Nine {
		return Number
	}
	return Special
}

func (v Value) Valid() bool {
	return v >= Zero && v <= WildDrawFour
}

func (v Value) String() string {
	if v.Kind() == Number {
		return strconv.Itoa(int(v))
	}
	if name, ok := valueNames[v]; ok {
		return name
	}
	return fmt.Sprintf("value(%d)", int(v))
}

func ValueByName(name string) (Value, error) {
	if n, err := strconv.Atoi(name); err == nil && n >= 0 && n <= 9 {
		return Value(n), nil
	}
	for value, valueName := range valueNames {
		if valueName == name {
			return value, nil
		}
	}
	return 0, fmt.Errorf("invalid card value '%s'", name)
}
