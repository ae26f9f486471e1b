package memstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Evgeniy156/AI-Intelligroup-ZHKH/pkg/models"
)

func seedUsers() []models.User {
	return []models.User{
		{ID: "1", Name: "Иванов А.П.", Email: "ivanov@uk.ru", Role: models.RoleAdmin, Status: models.UserActive, LastActive: "2 мин назад"},
		{ID: "2", Name: "Петрова М.С.", Email: "petrova@uk.ru", Role: models.RoleEmployee, Status: models.UserActive, LastActive: "1 час назад"},
	}
}

func TestUserStoreList(t *testing.T) {
	store := NewUserStore(seedUsers())

	users, err := store.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestUserStoreCreate(t *testing.T) {
	store := NewUserStore(nil)

	created, err := store.Create(context.Background(), &models.User{
		Name:   "Новиков Д.А.",
		Email:  "novikov@uk.ru",
		Role:   models.RoleViewer,
		Status: models.UserActive,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "только что", created.LastActive)

	users, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUserStoreUpdateMergesPatch(t *testing.T) {
	store := NewUserStore(seedUsers())

	updated, err := store.Update(context.Background(), "1", &models.User{Status: models.UserInactive})

	require.NoError(t, err)
	assert.Equal(t, models.UserInactive, updated.Status)
	assert.Equal(t, "Иванов А.П.", updated.Name)
	assert.Equal(t, "ivanov@uk.ru", updated.Email)
	assert.Equal(t, "1", updated.ID)
}

func TestUserStoreUpdateUnknownID(t *testing.T) {
	store := NewUserStore(seedUsers())

	_, err := store.Update(context.Background(), "999", &models.User{Status: models.UserInactive})

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUserStoreDelete(t *testing.T) {
	store := NewUserStore(seedUsers())

	require.NoError(t, store.Delete(context.Background(), "2"))

	users, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 1)

	assert.ErrorIs(t, store.Delete(context.Background(), "2"), models.ErrNotFound)
}

func TestUserStoreSeedIsCopied(t *testing.T) {
	seed := seedUsers()
	store := NewUserStore(seed)

	seed[0].Name = "Изменили снаружи"

	users, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Иванов А.П.", users[0].Name)
}
