package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/doggee/internal/apperr"
	"github.com/Skotchmaster/doggee/internal/transport"
)

func ptr[T any](v T) *T { return &v }

func registerUser(t *testing.T, env *testEnv, username string) uint {
	t.Helper()
	res, err := env.Auth.Register(context.Background(), creds(username, "secret1"))
	require.NoError(t, err)
	return res.UserID
}

func TestDogService_CreateAndList(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := registerUser(t, env, "alice01")

	first, err := env.Dogs.CreateDog(ctx, alice, alice, transport.CreateDogRequest{Name: "Rex", Breed: "dogBreeds.Beagle"})
	require.NoError(t, err)
	second, err := env.Dogs.CreateDog(ctx, alice, alice, transport.CreateDogRequest{Name: "Bim", Breed: "dogBreeds.Boxer", Weight: ptr(12.5)})
	require.NoError(t, err)

	dogs, err := env.Dogs.ListDogs(ctx, alice)
	require.NoError(t, err)
	require.Len(t, dogs, 2)
	assert.Equal(t, first.ID, dogs[0].ID)
	assert.Equal(t, second.ID, dogs[1].ID)
	assert.Equal(t, alice, dogs[1].OwnerID)

	var types []string
	for _, ev := range env.Events.Events() {
		if ev.Topic == TopicDogEvents {
			types = append(types, ev.Event.Type)
		}
	}
	assert.Equal(t, []string{"dog_created", "dog_created"}, types)
}

func TestDogService_ListDogs_Empty(t *testing.T) {
	env := newTestEnv(t)
	alice := registerUser(t, env, "alice01")

	dogs, err := env.Dogs.ListDogs(context.Background(), alice)
	require.NoError(t, err)
	assert.NotNil(t, dogs)
	assert.Empty(t, dogs)

	_, err = env.Dogs.ListDogs(context.Background(), alice+100)
	assert.ErrorIs(t, err, apperr.ErrUserNotFound)
}

func TestDogService_CreateDog_Rejections(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := registerUser(t, env, "alice01")
	bob := registerUser(t, env, "bobby01")

	_, err := env.Dogs.CreateDog(ctx, alice, 999, transport.CreateDogRequest{Name: "Rex", Breed: "b"})
	assert.ErrorIs(t, err, apperr.ErrUserNotFound)

	_, err = env.Dogs.CreateDog(ctx, bob, alice, transport.CreateDogRequest{})
	assert.ErrorIs(t, err, apperr.ErrAccessDenied)

	_, err = env.Dogs.CreateDog(ctx, alice, alice, transport.CreateDogRequest{Name: "Rex", Weight: ptr(-1.0)})
	e, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, "validation_failed", e.Code)
	require.Len(t, e.Fields, 2)
	assert.Equal(t, "breed", e.Fields[0].Field)
	assert.Equal(t, "weight", e.Fields[1].Field)

	dogs, err := env.Dogs.ListDogs(ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, dogs)
}

func TestDogService_UpdateDog(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := registerUser(t, env, "alice01")

	dog, err := env.Dogs.CreateDog(ctx, alice, alice, transport.CreateDogRequest{Name: "Rex", Breed: "dogBreeds.Beagle"})
	require.NoError(t, err)

	updated, err := env.Dogs.UpdateDog(ctx, alice, alice, dog.ID, transport.UpdateDogRequest{Name: ptr("Max"), Weight: ptr(20.0)})
	require.NoError(t, err)
	assert.Equal(t, "Max", updated.Name)
	assert.Equal(t, "dogBreeds.Beagle", updated.Breed)
	require.NotNil(t, updated.Weight)
	assert.Equal(t, 20.0, *updated.Weight)

	_, err = env.Dogs.UpdateDog(ctx, alice, alice, dog.ID, transport.UpdateDogRequest{Name: ptr("")})
	e, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindValidation, e.Kind)

	_, err = env.Dogs.UpdateDog(ctx, alice, alice, dog.ID+50, transport.UpdateDogRequest{})
	assert.ErrorIs(t, err, apperr.ErrDogNotFound)
}

func TestDogService_OwnershipCheckedBeforePayload(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := registerUser(t, env, "alice01")
	bob := registerUser(t, env, "bobby01")

	dog, err := env.Dogs.CreateDog(ctx, alice, alice, transport.CreateDogRequest{Name: "Rex", Breed: "dogBreeds.Beagle"})
	require.NoError(t, err)

	_, err = env.Dogs.UpdateDog(ctx, bob, alice, dog.ID, transport.UpdateDogRequest{Name: ptr("Stolen")})
	assert.ErrorIs(t, err, apperr.ErrAccessDenied)

	_, err = env.Dogs.UpdateDog(ctx, bob, alice, dog.ID, transport.UpdateDogRequest{Name: ptr(""), Weight: ptr(-3.0)})
	assert.ErrorIs(t, err, apperr.ErrAccessDenied)

	err = env.Dogs.DeleteDog(ctx, bob, alice, dog.ID)
	assert.ErrorIs(t, err, apperr.ErrAccessDenied)

	// a dog is only visible under its owner's id
	_, err = env.Dogs.UpdateDog(ctx, bob, bob, dog.ID, transport.UpdateDogRequest{Name: ptr("Stolen")})
	assert.ErrorIs(t, err, apperr.ErrDogNotFound)

	dogs, err := env.Dogs.ListDogs(ctx, alice)
	require.NoError(t, err)
	require.Len(t, dogs, 1)
	assert.Equal(t, "Rex", dogs[0].Name)
}

func TestDogService_DeleteDog(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := registerUser(t, env, "alice01")

	dog, err := env.Dogs.CreateDog(ctx, alice, alice, transport.CreateDogRequest{Name: "Rex", Breed: "dogBreeds.Beagle"})
	require.NoError(t, err)

	require.NoError(t, env.Dogs.DeleteDog(ctx, alice, alice, dog.ID))
	assert.ErrorIs(t, env.Dogs.DeleteDog(ctx, alice, alice, dog.ID), apperr.ErrDogNotFound)
	assert.ErrorIs(t, env.Dogs.DeleteDog(ctx, alice, 999, dog.ID), apperr.ErrUserNotFound)

	evs := env.Events.Events()
	assert.Equal(t, "dog_deleted", evs[len(evs)-1].Event.Type)
}

func TestBreeds_ReturnsCopy(t *testing.T) {
	b := Breeds()
	require.NotEmpty(t, b)
	b[0] = "changed"
	assert.Equal(t, "dogBreeds.LabradorRetriever", Breeds()[0])
}
