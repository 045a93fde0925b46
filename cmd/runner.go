package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/jcreedcmu/maek/internal/game"
)

var successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)

func main() {
	player := game.CreateNewPlayer()
	if err := player.CheckInvariants(); err != nil {
		log.Error("player smoke check failed", "err", err)
		os.Exit(1)
	}

	level := game.CreateNewLevel()
	if err := level.CheckInvariants(); err != nil {
		log.Error("level smoke check failed", "err", err)
		os.Exit(1)
	}

	fmt.Println(successStyle.Render("Success."))
}
