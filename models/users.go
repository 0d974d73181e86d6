package models

import (
	"errors"
	"time"

	"github.com/Rahulstark2/blogging-platform-backend/log"
	"gorm.io/gorm"
)

type User struct {
	ID             uint   `gorm:"primaryKey"`
	Name           string `gorm:"not null"`
	Email          string `gorm:"uniqueIndex;not null"`
	HashedPassword string `gorm:"not null" json:"-"`
	CreatedAt      time.Time
}

func CreateUser(user *User) error {
	log.Debugf("creating user email=%s", user.Email)
	if err := DB.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyExists
		}
		log.Errorf("failed creating user, reason=%v", err)
		return err
	}
	return nil
}

func GetUserByEmail(email string) (*User, error) {
	log.Debugf("getting user by email=%s", email)
	var user User
	if err := DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func GetUserByID(id uint) (*User, error) {
	log.Debugf("getting user by id=%d", id)
	var user User
	if err := DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
