/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/pauladam94/Stars-Gapa/cmd"

func main() {
	cmd.Execute()
}
