package integration_test

import (
	"fmt"
	"net/http"
	"testing"

	"artlink_backend/internal/models"
	"artlink_backend/test/helpers"

	"github.com/stretchr/testify/assert"
)

// TestBookingFlow - полный жизненный цикл заявки: создать -> принять -> завершить
func TestBookingFlow(t *testing.T) {
	// 1. Подготовка (Arrange)
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	artistToken, artist, _ := helpers.CreateAndLoginArtist(t, ts, tx)
	clientToken, _ := helpers.CreateAndLoginClient(t, ts, tx)

	// 2. Действие: Клиент создает заявку (Act)
	createBody := map[string]interface{}{
		"artist_id":      artist.ID,
		"event_type":     "wedding",
		"event_date":     "2026-10-15",
		"event_location": "Almaty",
		"budget":         150000,
		"message":        "Просим выступить на свадьбе",
	}
	res, bodyStr := ts.SendRequest(t, "POST", "/api/bookings", clientToken, createBody)

	assert.Equal(t, http.StatusCreated, res.StatusCode)
	assert.Contains(t, bodyStr, "pending")
	assert.Contains(t, bodyStr, "Booking request sent successfully")
	t.Logf("СОЗДАНИЕ ЗАЯВКИ: Успешно. Ответ: %s", bodyStr)

	// Достаем ID заявки из БД (в транзакции она одна)
	var booking models.BookingRequest
	assert.NoError(t, tx.First(&booking).Error)

	// 3. Артист принимает заявку
	acceptBody := map[string]interface{}{
		"status":          "accepted",
		"artist_response": "С удовольствием выступлю!",
	}
	res, bodyStr = ts.SendRequest(t, "PATCH", fmt.Sprintf("/api/bookings/%s/status", booking.ID), artistToken, acceptBody)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "accepted")
	t.Logf("ПРИНЯТИЕ: Успешно. Ответ: %s", bodyStr)

	// 4. Артист завершает заявку после события
	completeBody := map[string]interface{}{"status": "completed"}
	res, bodyStr = ts.SendRequest(t, "PATCH", fmt.Sprintf("/api/bookings/%s/status", booking.ID), artistToken, completeBody)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "completed")
}

// TestBookingStatus_DoubleAccept - повторное принятие запрещено
func TestBookingStatus_DoubleAccept(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	artistToken, artist, _ := helpers.CreateAndLoginArtist(t, ts, tx)
	_, client := helpers.CreateAndLoginClient(t, ts, tx)

	booking := helpers.CreateTestBooking(t, tx, client.ID, artist.ID, models.BookingStatusAccepted)

	acceptBody := map[string]interface{}{"status": "accepted"}
	res, bodyStr := ts.SendRequest(t, "PATCH", fmt.Sprintf("/api/bookings/%s/status", booking.ID), artistToken, acceptBody)

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "INVALID_STATUS_TRANSITION")
}

// TestBookingStatus_ClientForbidden - клиент не может менять статус
func TestBookingStatus_ClientForbidden(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, artist, _ := helpers.CreateAndLoginArtist(t, ts, tx)
	clientToken, client := helpers.CreateAndLoginClient(t, ts, tx)

	booking := helpers.CreateTestBooking(t, tx, client.ID, artist.ID, models.BookingStatusPending)

	acceptBody := map[string]interface{}{"status": "accepted"}
	res, bodyStr := ts.SendRequest(t, "PATCH", fmt.Sprintf("/api/bookings/%s/status", booking.ID), clientToken, acceptBody)

	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	t.Logf("ЗАПРЕТ КЛИЕНТУ: Успешно (403). Ответ: %s", bodyStr)
}

// TestBookingCancel_Flow - клиент отменяет pending заявку
func TestBookingCancel_Flow(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, artist, _ := helpers.CreateAndLoginArtist(t, ts, tx)
	clientToken, client := helpers.CreateAndLoginClient(t, ts, tx)

	booking := helpers.CreateTestBooking(t, tx, client.ID, artist.ID, models.BookingStatusPending)

	res, bodyStr := ts.SendRequest(t, "DELETE", "/api/bookings/"+booking.ID, clientToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "cancelled")

	// Отмена уже отмененной заявки запрещена
	res, bodyStr = ts.SendRequest(t, "DELETE", "/api/bookings/"+booking.ID, clientToken, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "INVALID_STATUS_TRANSITION")
}

// TestBookingGet_AccessControl - чужая заявка недоступна
func TestBookingGet_AccessControl(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, artist, _ := helpers.CreateAndLoginArtist(t, ts, tx)
	_, client := helpers.CreateAndLoginClient(t, ts, tx)
	strangerToken, _ := helpers.CreateAndLoginClient(t, ts, tx)

	booking := helpers.CreateTestBooking(t, tx, client.ID, artist.ID, models.BookingStatusPending)

	res, _ := ts.SendRequest(t, "GET", "/api/bookings/"+booking.ID, strangerToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

// TestBookingLists - заявки видны обеим сторонам в своих списках
func TestBookingLists(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	artistToken, artist, _ := helpers.CreateAndLoginArtist(t, ts, tx)
	clientToken, client := helpers.CreateAndLoginClient(t, ts, tx)

	helpers.CreateTestBooking(t, tx, client.ID, artist.ID, models.BookingStatusPending)
	helpers.CreateTestBooking(t, tx, client.ID, artist.ID, models.BookingStatusAccepted)

	// Список клиента
	res, bodyStr := ts.SendRequest(t, "GET", "/api/bookings/my-requests", clientToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, `"count":2`)
	assert.Contains(t, bodyStr, artist.Name)

	// Список артиста
	res, bodyStr = ts.SendRequest(t, "GET", "/api/bookings/received", artistToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, `"count":2`)
}

// TestBookingCreate_ArtistNotFound - заявка на несуществующего артиста
func TestBookingCreate_ArtistNotFound(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	clientToken, _ := helpers.CreateAndLoginClient(t, ts, tx)

	createBody := map[string]interface{}{
		"artist_id":      "00000000-0000-0000-0000-000000000000",
		"event_type":     "wedding",
		"event_date":     "2026-10-15",
		"event_location": "Almaty",
		"message":        "test",
	}
	res, bodyStr := ts.SendRequest(t, "POST", "/api/bookings", clientToken, createBody)

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, bodyStr, "ARTIST_NOT_FOUND")
}
