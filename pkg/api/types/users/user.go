package users

import (
	"time"

	kdb "github.com/yaraku/he-tool/pkg/db"
)

// Detail is a user as the API presents it. The password hash is never
// serialized.
type Detail struct {
	Id             int       `json:"id"`
	Email          string    `json:"email"`
	NativeLanguage string    `json:"nativeLanguage"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Envelope wraps a user for create/update responses.
type Envelope struct {
	User Detail `json:"user"`
}

func ComposeDetail(user kdb.User) Detail {
	return Detail{
		Id:             user.Id,
		Email:          user.Email,
		NativeLanguage: user.NativeLanguage,
		CreatedAt:      user.CreatedAt,
		UpdatedAt:      user.UpdatedAt,
	}
}
