package main

import "github.com/Tejaraju0/MealMate-Fullstack-ML/cmd"

func main() {
	cmd.Execute()
}
