package player

import (
	"math/rand"
)

var botNames = []string{
	"Annie", "Braum", "Caitlyn", "Draven",
	"Ezreal", "Fiora", "Graves", "Heimerdinger",
	"Ivern", "Jinx", "Kled", "Lulu",
	"Malphite", "Nunu", "Orianna", "Poppy",
	"Qiyana", "Rakan", "Shaco", "Twisted Fate",
	"Udyr", "Veigar", "Wukong", "Xayah",
	"Yuumi", "Zoe",
}

func RandomBotName() string {
	return botNames[rand.Intn(len(botNames))]
}

// CreateMachine builds the opponent under a random bot name.
func CreateMachine() *Machine {
	return NewMachine(RandomBotName())
}
