package main

import (
	"backend/config"
	"backend/routes"
)

func main() {
	config.InitDB()
	r := routes.SetupRouter(config.DB)
	r.Run(":8080")
}
