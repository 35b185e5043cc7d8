package main

import (
	"log"
	"naiyuan-admin/cmd/adminctl/commands"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Println("load .env:", err)
	}

	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
