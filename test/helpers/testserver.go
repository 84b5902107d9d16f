package helpers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"artlink_backend/internal/app"
	"artlink_backend/internal/config"
	"artlink_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// TestServer оборачивает роутер приложения и тестовую БД. Запросы
// исполняются напрямую через роутер, поэтому транзакцию теста можно
// пробросить в request context (DBMiddleware подхватит её вместо пула).
type TestServer struct {
	Router *gin.Engine
	DB     *gorm.DB

	// Текущая транзакция теста; nil — запросы идут через пул.
	tx *gorm.DB
}

// NewTestServer создает и настраивает тестовый сервер и БД
func NewTestServer(t *testing.T) *TestServer {
	// 1. Загружаем конфиг.
	// Он автоматически берет DATABASE_URL (тестовую) из os.Getenv()
	config.LoadConfig()
	cfg := config.GetConfig()
	dsn := cfg.Database.DSN

	// 2. Подключаемся к ТЕСТОВОЙ БД
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("Не удалось подключиться к тестовой БД (%s): %v", dsn, err)
	}

	// 3. AutoMigrate
	// (Schema для тестовой БД накатывается здесь, а не в app.Run)
	if err := migrateTestDB(db); err != nil {
		t.Fatalf("Не удалось выполнить AutoMigrate для тестовой БД: %v", err)
	}

	// 4. Настраиваем Gin-роутер
	gin.SetMode(gin.TestMode)
	router := app.SetupRouter(cfg, db)

	log.Printf("✅ Тестовый роутер готов, тестовая БД (%s) настроена.", dsn)

	return &TestServer{
		Router: router,
		DB:     db,
	}
}

func (ts *TestServer) Close() {
	sqlDB, _ := ts.DB.DB()
	sqlDB.Close()
}

// BeginTransaction начинает транзакцию; все последующие SendRequest
// этого теста исполняются внутри неё.
func (ts *TestServer) BeginTransaction(t *testing.T) *gorm.DB {
	tx := ts.DB.Begin()
	if tx.Error != nil {
		t.Fatalf("Не удалось начать транзакцию: %v", tx.Error)
	}
	ts.tx = tx
	return tx
}

// RollbackTransaction откатывает транзакцию теста и возвращает сервер
// к работе через пул.
func (ts *TestServer) RollbackTransaction(t *testing.T, tx *gorm.DB) {
	ts.tx = nil
	if err := tx.Rollback().Error; err != nil {
		t.Logf("Откат транзакции: %v", err)
	}
}

// SendRequest исполняет HTTP-запрос через роутер приложения.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	var reqBody io.Reader = nil
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Ошибка кодирования JSON для запроса: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, path, reqBody)
	if err != nil {
		t.Fatalf("Ошибка создания HTTP-запроса: %v", err)
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// Пробрасываем транзакцию теста в request context
	if ts.tx != nil {
		ctx := context.WithValue(req.Context(), contextkeys.DBContextKey, ts.tx)
		req = req.WithContext(ctx)
	}

	recorder := httptest.NewRecorder()
	ts.Router.ServeHTTP(recorder, req)

	res := recorder.Result()
	resBodyBytes, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("Ошибка чтения тела ответа: %v", err)
	}
	defer res.Body.Close()

	return res, string(resBodyBytes)
}
