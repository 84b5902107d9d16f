package integration_test

import (
	"net/http"
	"testing"

	"artlink_backend/internal/models"
	"artlink_backend/test/helpers"

	"github.com/stretchr/testify/assert"
)

// TestAuthFlow - проверяет регистрацию и последующий логин
func TestAuthFlow(t *testing.T) {
	// 1. Подготовка (Arrange)
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	// Данные для регистрации
	registerBody := map[string]interface{}{
		"name":     "Тестовый Артист",
		"email":    "artist@test.com",
		"password": "super_password123",
		"role":     "artist",
		"city":     "Almaty",
		"category": "singer",
	}

	// 2. Действие: Регистрация (Act)
	regRes, regBodyStr := ts.SendRequest(t, "POST", "/api/register", "", registerBody)

	// 3. Проверка: Регистрация (Assert)
	assert.Equal(t, http.StatusCreated, regRes.StatusCode)
	assert.Contains(t, regBodyStr, "artist@test.com")
	t.Logf("РЕГИСТРАЦИЯ: Успешно. Ответ: %s", regBodyStr)

	// --- Шаг 2: Логин ---
	loginBody := map[string]interface{}{
		"email":    "artist@test.com",
		"password": "super_password123",
	}
	logRes, logBodyStr := ts.SendRequest(t, "POST", "/api/login", "", loginBody)

	assert.Equal(t, http.StatusOK, logRes.StatusCode)
	assert.Contains(t, logBodyStr, "token")
	t.Logf("ЛОГИН: Успешно. Ответ: %s", logBodyStr)
}

// TestRegister_DuplicateEmail - проверяет защиту от дубликатов
func TestRegister_DuplicateEmail(t *testing.T) {
	// 1. Подготовка
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	// Создаем юзера НАПРЯМУЮ в транзакции
	err := helpers.CreateUser(t, tx, &models.User{
		Name:         "User One",
		Email:        "duplicate@test.com",
		PasswordHash: "pass123",
		Role:         models.UserRoleClient,
	})
	assert.NoError(t, err)

	// 2. Действие: Попытка регистрации с тем же email
	registerBody := map[string]interface{}{
		"name":     "User Two",
		"email":    "duplicate@test.com",
		"password": "another_pass123",
		"role":     "client",
	}
	res, bodyStr := ts.SendRequest(t, "POST", "/api/register", "", registerBody)

	// 3. Проверка
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, bodyStr, "EMAIL_ALREADY_EXISTS")
	t.Logf("ДУБЛИКАТ: Успешно отклонен (409). Ответ: %s", bodyStr)
}

// TestLogin_WrongPassword - неверный пароль дает 401 без деталей
func TestLogin_WrongPassword(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, user := helpers.CreateAndLoginClient(t, ts, tx)

	loginBody := map[string]interface{}{
		"email":    user.Email,
		"password": "wrong_password",
	}
	res, bodyStr := ts.SendRequest(t, "POST", "/api/login", "", loginBody)

	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, bodyStr, "INVALID_CREDENTIALS")
}

// TestMe_Success - проверяет "золотой путь" с помощью хелпера
func TestMe_Success(t *testing.T) {
	// 1. Подготовка
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	userToken, user := helpers.CreateAndLoginClient(t, ts, tx)

	// 2. Действие: Получение своих данных (Act)
	res, bodyStr := ts.SendRequest(t, "GET", "/api/me", userToken, nil)

	// 3. Проверка (Assert)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, user.Email)
	assert.Contains(t, bodyStr, user.Name)
	t.Logf("ME: Успешно. Ответ: %s", bodyStr)
}

// TestMe_Unauthorized - без токена доступ закрыт
func TestMe_Unauthorized(t *testing.T) {
	ts := GetTestServer(t)

	res, _ := ts.SendRequest(t, "GET", "/api/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}
