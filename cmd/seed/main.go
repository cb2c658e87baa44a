package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/carebridge/carebridge-api/config"
	"github.com/carebridge/carebridge-api/pkg/helpers"
)

type doctorSeed struct {
	name      string
	specialty string
	email     string
	phone     string
}

type medicineSeed struct {
	name        string
	description string
	price       float64
}

var doctors = []doctorSeed{
	{"Dr. Amelia Hart", "Cardiology", "amelia.hart@carebridge.dev", "+15550100101"},
	{"Dr. Rohan Iyer", "Dermatology", "rohan.iyer@carebridge.dev", "+15550100102"},
	{"Dr. Lena Okafor", "Pediatrics", "lena.okafor@carebridge.dev", "+15550100103"},
	{"Dr. Marcus Webb", "Orthopedics", "marcus.webb@carebridge.dev", "+15550100104"},
	{"Dr. Sofia Reyes", "General Medicine", "sofia.reyes@carebridge.dev", "+15550100105"},
	{"Dr. Tomasz Nowak", "Neurology", "tomasz.nowak@carebridge.dev", "+15550100106"},
}

var medicines = []medicineSeed{
	{"Paracetamol 500mg", "Pain and fever relief, box of 20 tablets", 4.50},
	{"Ibuprofen 200mg", "Anti-inflammatory, box of 24 tablets", 6.25},
	{"Amoxicillin 250mg", "Broad-spectrum antibiotic, strip of 10 capsules", 12.00},
	{"Cetirizine 10mg", "Antihistamine for allergy relief, strip of 10 tablets", 5.75},
	{"Omeprazole 20mg", "Acid reflux and heartburn relief, strip of 14 capsules", 9.40},
	{"Vitamin D3 1000IU", "Daily supplement, bottle of 60 softgels", 8.15},
	{"Azithromycin 500mg", "Antibiotic, strip of 3 tablets", 15.80},
	{"Metformin 500mg", "Blood sugar management, strip of 15 tablets", 7.30},
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	for _, d := range doctors {
		var id string
		err := db.QueryRow(`
			INSERT INTO doctors (name, specialty, email, phone)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (email) DO UPDATE SET
				name = EXCLUDED.name,
				specialty = EXCLUDED.specialty,
				phone = EXCLUDED.phone,
				updated_at = now()
			RETURNING id
		`, d.name, d.specialty, d.email, d.phone).Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed doctor %s: %v", d.email, err)
		}
		fmt.Printf("seeded doctor: id=%s name=%s specialty=%s\n", id, d.name, d.specialty)
	}

	for _, m := range medicines {
		var id string
		err := db.QueryRow(`
			INSERT INTO medicines (name, description, price)
			VALUES ($1, $2, $3)
			ON CONFLICT (name) DO UPDATE SET
				description = EXCLUDED.description,
				price = EXCLUDED.price,
				updated_at = now()
			RETURNING id
		`, m.name, m.description, m.price).Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed medicine %s: %v", m.name, err)
		}
		fmt.Printf("seeded medicine: id=%s name=%s price=%.2f\n", id, m.name, m.price)
	}

	// Staff account for the order dashboard
	email := "pharmacy.staff@carebridge.dev"
	password := "staffpass123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}
	var staffID string
	err = db.QueryRow(`
		INSERT INTO users (name, email, password_hash, phone, role)
		VALUES ($1, $2, $3, $4, 'staff')
		ON CONFLICT (email) DO UPDATE SET role = 'staff', updated_at = now()
		RETURNING id
	`, "Pharmacy Staff", email, hash, "+15550100200").Scan(&staffID)
	if err != nil {
		log.Fatalf("failed to seed staff account: %v", err)
	}
	fmt.Printf("seeded staff: id=%s email=%s password=%s\n", staffID, email, password)
}
