package db

import (
	"fmt"
	"log"

	"appointment-api/models"
)

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Doctor{},
		&models.Appointment{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	seedDoctors()

	fmt.Println("✅ Migrations applied successfully!")
}

// seedDoctors populates the doctors table on a fresh database. Doctors have no
// CRUD surface in this service, so without a seed there is nothing to book
// appointments against.
func seedDoctors() {
	var count int64
	if err := DB.Model(&models.Doctor{}).Count(&count).Error; err != nil {
		log.Printf("Error counting doctors: %v", err)
		return
	}
	if count > 0 {
		return
	}

	doctors := []models.Doctor{
		{Name: "Dr. Smith"},
		{Name: "Dr. Johnson"},
	}
	for _, doctor := range doctors {
		if err := DB.Create(&doctor).Error; err != nil {
			log.Printf("Error seeding doctor %q: %v", doctor.Name, err)
		}
	}
	log.Printf("Seeded %d default doctors", len(doctors))
}
