package helpers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"testing"
	"time"

	"artlink_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// migrateTestDB накатывает схему на тестовую БД
func migrateTestDB(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.ArtistProfile{},
		&models.BookingRequest{},
	)
}

// CreateUser создает пользователя в транзакции с автоматическим хешированием пароля
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) error {
	// Проверяем, нужно ли хешировать пароль
	if user.PasswordHash != "" && !strings.HasPrefix(user.PasswordHash, "$2a$") {
		rawPassword := user.PasswordHash
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(rawPassword), bcrypt.DefaultCost)
		if err != nil {
			t.Fatalf("Не удалось хешировать пароль: %v", err)
		}
		user.PasswordHash = string(hashedPassword)
	}

	result := db.Create(user)
	if result.Error != nil {
		t.Logf("ОШИБКА: не удалось создать пользователя %s: %v", user.Email, result.Error)
		return result.Error
	}

	return nil
}

// CreateAndLoginUser создает пользователя и логинит его
func CreateAndLoginUser(t *testing.T, ts *TestServer, tx *gorm.DB, name, email, password string, role models.UserRole) (string, *models.User) {
	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: password, // Сырой пароль
		Role:         role,
	}
	err := CreateUser(t, tx, user)
	assert.NoError(t, err, "Создание тестового пользователя не должно вызывать ошибку")

	// Логиним через API с сырым паролем
	loginBody := map[string]interface{}{
		"email":    email,
		"password": password,
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/login", "", loginBody)
	assert.Equal(t, http.StatusOK, res.StatusCode, "Логин должен быть успешным. Ответ: "+bodyStr)

	var loginResponse struct {
		Token string `json:"token"`
	}
	err = json.Unmarshal([]byte(bodyStr), &loginResponse)
	assert.NoError(t, err, "Не удалось распарсить JSON")
	assert.NotEmpty(t, loginResponse.Token, "Токен не должен быть пустым")

	log.Printf("✅ [Helper] Создан и залогинен пользователь %s (Role: %s)", email, role)

	// Восстанавливаем сырой пароль в объекте user (для удобства в тестах)
	user.PasswordHash = password

	return loginResponse.Token, user
}

// CreateAndLoginArtist создает артиста (с профилем) с уникальным email
func CreateAndLoginArtist(t *testing.T, ts *TestServer, tx *gorm.DB) (string, *models.User, *models.ArtistProfile) {
	email := fmt.Sprintf("artist_%d@test.com", time.Now().UnixNano())
	token, user := CreateAndLoginUser(t, ts, tx, "Test Artist", email, "password123", models.UserRoleArtist)

	budgetMin := 50000.0
	budgetMax := 200000.0
	profile := &models.ArtistProfile{
		UserID:             user.ID,
		Bio:                "Test artist bio",
		BudgetMin:          &budgetMin,
		BudgetMax:          &budgetMax,
		AvailabilityStatus: models.AvailabilityAvailable,
	}
	result := tx.Create(profile)
	assert.NoError(t, result.Error, "Не удалось создать профиль артиста")

	log.Printf("✅ [Helper] Создан профиль артиста для %s", email)
	return token, user, profile
}

// CreateAndLoginClient создает клиента с уникальным email
func CreateAndLoginClient(t *testing.T, ts *TestServer, tx *gorm.DB) (string, *models.User) {
	email := fmt.Sprintf("client_%d@test.com", time.Now().UnixNano())
	token, user := CreateAndLoginUser(t, ts, tx, "Test Client", email, "password123", models.UserRoleClient)

	log.Printf("✅ [Helper] Создан клиент %s", email)
	return token, user
}

// CreateTestBooking создает заявку в транзакции
func CreateTestBooking(t *testing.T, tx *gorm.DB, clientID, artistID string, status models.BookingStatus) models.BookingRequest {
	budget := 100000.0
	booking := models.BookingRequest{
		ClientID:      clientID,
		ArtistID:      artistID,
		EventType:     "wedding",
		EventDate:     time.Now().AddDate(0, 1, 0),
		EventLocation: "Almaty",
		Budget:        &budget,
		Message:       "Test booking message",
		Status:        status,
		ClientName:    "Test Client",
		ClientEmail:   "client@test.com",
	}
	if err := tx.Create(&booking).Error; err != nil {
		t.Fatalf("Failed to create test booking: %v", err)
	}
	return booking
}
