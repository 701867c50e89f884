package models

import (
	"errors"

	"gorm.io/gorm"

	"concertsapi/utils"
)

type gormUserRepo struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) UserRepository { return &gormUserRepo{db} }

func (r *gormUserRepo) Create(u *User, password string) error {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	u.PasswordHash = hashed

	if err := r.db.Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *gormUserRepo) GetByID(id int64) (User, error) {
	var u User
	if err := r.db.First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return u, nil
}

func (r *gormUserRepo) UsernameTaken(username string) (bool, error) {
	var n int64
	err := r.db.Model(&User{}).Where("username = ?", username).Count(&n).Error
	return n > 0, err
}

func (r *gormUserRepo) EmailTaken(email string) (bool, error) {
	var n int64
	err := r.db.Model(&User{}).Where("email = ?", email).Count(&n).Error
	return n > 0, err
}

func (r *gormUserRepo) ValidateCredentials(username, plain string) (User, error) {
	var u User
	if err := r.db.Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}
	if !utils.CheckPasswordHash(plain, u.PasswordHash) {
		return User{}, ErrInvalidCredentials
	}
	return u, nil
}
