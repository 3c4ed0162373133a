package main

import "skystrike/internal/game"

func main() {
	game.RunDesktop()
}
