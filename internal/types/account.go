package types

import (
	"time"

	"github.com/google/uuid"
)

type Account struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null;column:email" json:"email"`
	Password  string    `gorm:"not null;column:password" json:"-"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
}

func (Account) TableName() string {
	return "account"
}

// AccountRef is what register and login hand back to the caller.
type AccountRef struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

func (a *Account) Ref() AccountRef {
	return AccountRef{ID: a.ID, Email: a.Email}
}
