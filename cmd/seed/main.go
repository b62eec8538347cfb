package main

import (
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"studyrez/internal/database"
	"studyrez/internal/domain"
)

func main() {
	db, err := database.Connect("studyrez.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM reservations")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM buildings")
	db.Exec("DELETE FROM users")

	log.Println("Creating users...")
	emails := []string{"alice@university.edu", "bob@university.edu", "carol@university.edu"}
	for i, email := range emails {
		hash, _ := bcrypt.GenerateFromPassword([]byte("student123"), bcrypt.DefaultCost)
		user := domain.User{
			Email:        email,
			PasswordHash: string(hash),
			Name:         fmt.Sprintf("Student %d", i+1),
		}
		db.Create(&user)
	}
	log.Println("Users created (password: student123)")

	log.Println("Creating buildings and rooms...")
	buildings := []domain.Building{
		{Name: "Main Library", Image: "/images/library.jpg"},
		{Name: "Science Hall", Image: "/images/science.jpg"},
		{Name: "Student Union", Image: ""},
	}

	for i := range buildings {
		db.Create(&buildings[i])

		for n := 1; n <= 4; n++ {
			capacity := 2 + 2*n
			room := domain.Room{
				Number:     100*int(buildings[i].ID) + n,
				Capacity:   &capacity,
				BuildingID: buildings[i].ID,
			}
			db.Create(&room)
		}
	}

	log.Printf("Seeded %d buildings with 4 rooms each", len(buildings))
}
