package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/mussol-barber/booking-api/internal/config"
	dbpkg "github.com/mussol-barber/booking-api/internal/db"
	"github.com/mussol-barber/booking-api/internal/models"
)

// Cria (ou atualiza a senha de) um usuário do painel admin.
func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	reader := bufio.NewReader(os.Stdin)

	username := prompt(reader, "Username: ")
	password := prompt(reader, "Password: ")

	if username == "" || password == "" {
		log.Fatal("username e password são obrigatórios")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	username = strings.ToLower(username)

	var user models.User
	err = db.Where("username = ?", username).First(&user).Error

	switch {
	case err == nil:
		user.PasswordHash = string(hashed)
		if err := db.Save(&user).Error; err != nil {
			log.Fatalf("failed to update user: %v", err)
		}
		fmt.Printf("senha atualizada para %q\n", username)

	case err == gorm.ErrRecordNotFound:
		user = models.User{
			Username:     username,
			PasswordHash: string(hashed),
		}
		if err := db.Create(&user).Error; err != nil {
			log.Fatalf("failed to create user: %v", err)
		}
		fmt.Printf("admin %q criado (id %s)\n", username, user.ID)

	default:
		log.Fatalf("failed to query user: %v", err)
	}
}

func prompt(reader *bufio.Reader, label string) string {
	fmt.Print(label)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}
