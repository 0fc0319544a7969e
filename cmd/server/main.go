package main

import (
	"log"

	_ "coursework/docs"
	"coursework/internal/config"
	"coursework/internal/server"
)

// @title           CourseWork API
// @version         1.0
// @description     API for managing academic tasks and courses.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @schemes http
func main() {
	cfg := config.Load()

	s, err := server.Init(cfg)
	if err != nil {
		log.Fatalf("❌ Server initialization failed: %v", err)
	}

	s.Run()
}
