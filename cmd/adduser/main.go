package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"arc-portal/app/config"
	"arc-portal/app/database"
	"arc-portal/app/models"
	"arc-portal/app/routes/auth"
)

// Provisions a portal login. The matching profile row (role, section) is
// administered directly in the backing store, so only the credential half
// is created here.
func main() {
	email := flag.String("email", "", "login email")
	password := flag.String("password", "", "initial password")
	username := flag.String("username", "", "display name")
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "usage: adduser -email advisor@college.edu -password secret [-username name]")
		os.Exit(1)
	}

	cfg := config.Load()
	db, err := config.OpenDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	hashed, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	user := &models.User{Email: *email, Password: hashed, Username: *username}
	if err := database.CreateUser(context.Background(), db, user); err != nil {
		log.Fatalf("Failed to create user: %v", err)
	}

	fmt.Printf("User created: %s (%s)\n", user.Email, user.ID)
	fmt.Println("Remember to add a matching profile row with role and section.")
}
