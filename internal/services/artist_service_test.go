package services

import (
	"testing"

	"artlink_backend/internal/models"
	"artlink_backend/internal/services/dto"
	"artlink_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Пути с db.Transaction (само применение апдейта) покрыты
// интеграционными тестами; здесь - валидация и сборка ответа Me.

func newArtistFixture() (*fakeUserRepo, *fakeProfileRepo, ArtistService) {
	userRepo := newFakeUserRepo()
	profileRepo := newFakeProfileRepo()
	svc := NewArtistService(userRepo, profileRepo)
	return userRepo, profileRepo, svc
}

func TestArtistMe_MergesProfile(t *testing.T) {
	userRepo, profileRepo, svc := newArtistFixture()

	artist := userRepo.add(&models.User{
		Role:     models.UserRoleArtist,
		Name:     "Aigerim",
		Email:    "aigerim@test.com",
		Category: "singer",
		City:     "Almaty",
	})
	profileRepo.profiles[artist.ID] = &models.ArtistProfile{
		UserID:             artist.ID,
		Bio:                "Vocalist",
		ImgURL:             "https://img.test/a.jpg",
		BudgetMin:          floatPtr(50000),
		BudgetMax:          floatPtr(150000),
		AvailabilityStatus: models.AvailabilityBusy,
		RatingAvg:          floatPtr(4.8),
		ReviewsCount:       12,
	}

	resp, err := svc.Me(nil, artist.ID)
	require.NoError(t, err)

	assert.Equal(t, artist.ID, resp.ID)
	assert.Equal(t, "aigerim@test.com", resp.Email)
	require.NotNil(t, resp.Service)
	assert.Equal(t, "singer", *resp.Service)
	require.NotNil(t, resp.Bio)
	assert.Equal(t, "Vocalist", *resp.Bio)
	require.NotNil(t, resp.Availability)
	assert.Equal(t, "busy", *resp.Availability)
	assert.Equal(t, 12, resp.Reviews)
}

func TestArtistMe_WithoutProfile(t *testing.T) {
	userRepo, _, svc := newArtistFixture()

	artist := userRepo.add(&models.User{Role: models.UserRoleArtist, Name: "Fresh", Email: "fresh@test.com"})

	resp, err := svc.Me(nil, artist.ID)
	require.NoError(t, err)

	// Поля профиля остаются null, реквизиты из users заполнены
	assert.Equal(t, "fresh@test.com", resp.Email)
	assert.Nil(t, resp.Bio)
	assert.Nil(t, resp.BudgetMin)
	assert.Nil(t, resp.Availability)
	assert.Equal(t, 0, resp.Reviews)
}

func TestArtistMe_ClientRejected(t *testing.T) {
	userRepo, _, svc := newArtistFixture()

	client := userRepo.add(&models.User{Role: models.UserRoleClient, Email: "client@test.com"})

	_, err := svc.Me(nil, client.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotAnArtist)

	_, err = svc.Me(nil, "missing")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestArtistUpdate_InvalidBudgetRange(t *testing.T) {
	userRepo, _, svc := newArtistFixture()

	artist := userRepo.add(&models.User{Role: models.UserRoleArtist, Email: "a@test.com"})

	_, err := svc.UpdateMe(nil, artist.ID, &dto.UpdateArtistRequest{
		BudgetMin: floatPtr(200000),
		BudgetMax: floatPtr(100000),
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidBudgetRange)

	// Равные границы допустимы, но проверяем только валидацию:
	// одно поле без второго диапазон не проверяет
	_, err = svc.UpdateMe(nil, artist.ID, &dto.UpdateArtistRequest{})
	assert.NoError(t, err)
}

func TestArtistUpdate_InvalidAvailability(t *testing.T) {
	userRepo, _, svc := newArtistFixture()

	artist := userRepo.add(&models.User{Role: models.UserRoleArtist, Email: "a@test.com"})

	_, err := svc.UpdateMe(nil, artist.ID, &dto.UpdateArtistRequest{
		Availability: strPtr("vacation"),
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidAvailability)
}

func TestArtistUpdate_ClientRejected(t *testing.T) {
	userRepo, _, svc := newArtistFixture()

	client := userRepo.add(&models.User{Role: models.UserRoleClient, Email: "c@test.com"})

	_, err := svc.UpdateMe(nil, client.ID, &dto.UpdateArtistRequest{Bio: strPtr("x")})
	assert.ErrorIs(t, err, apperrors.ErrNotAnArtist)
}
