package main

import (
	"volunet-backend/cmd/server"
)

func main() {
	server.Init()
	server.Run()
}
