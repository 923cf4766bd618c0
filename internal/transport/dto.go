package transport

import (
	"time"

	"github.com/Skotchmaster/doggee/internal/models"
)

type Credentials struct {
	Username string `json:"username" validate:"min=5"`
	Password string `json:"password" validate:"min=5"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type RegisterResponse struct {
	Message      string `json:"message"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	UserID       uint   `json:"userId"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	UserID       uint   `json:"userId"`
}

type RefreshResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// UpdateProfileRequest lists the only profile fields a client may change.
type UpdateProfileRequest struct {
	Name      *string `json:"name"`
	City      *string `json:"city"`
	Birthdate *Date   `json:"birthdate"`
}

type Profile struct {
	ID        uint         `json:"id"`
	Username  string       `json:"username"`
	Name      *string      `json:"name"`
	City      *string      `json:"city"`
	Birthdate *time.Time   `json:"birthdate"`
	Dogs      []models.Dog `json:"dogs"`
}

type ProfileResponse struct {
	Message string   `json:"message"`
	Profile *Profile `json:"profile"`
}

func ProfileFromUser(u *models.User) Profile {
	dogs := u.Dogs
	if dogs == nil {
		dogs = []models.Dog{}
	}
	return Profile{
		ID:        u.ID,
		Username:  u.Username,
		Name:      u.Name,
		City:      u.City,
		Birthdate: u.Birthdate,
		Dogs:      dogs,
	}
}

type CreateDogRequest struct {
	Name      string   `json:"name"      validate:"required"`
	Breed     string   `json:"breed"     validate:"required"`
	Birthdate *Date    `json:"birthdate"`
	Weight    *float64 `json:"weight"    validate:"omitempty,gte=0"`
}

type UpdateDogRequest struct {
	Name      *string  `json:"name"      validate:"omitempty,min=1"`
	Breed     *string  `json:"breed"     validate:"omitempty,min=1"`
	Birthdate *Date    `json:"birthdate"`
	Weight    *float64 `json:"weight"    validate:"omitempty,gte=0"`
}

type DogResponse struct {
	Message string      `json:"message"`
	Dog     *models.Dog `json:"dog"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
