package utils

import (
	"math/rand"
	"time"

	"github.com/infplatform/inf_backend/models"
	"gorm.io/gorm"
)

const inviteCodeLength = 8
const letterBytes = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func GenerateUniqueInviteCode(tx *gorm.DB) (string, error) {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))

	for {
		b := make([]byte, inviteCodeLength)
		for i := range b {
			b[i] = letterBytes[seededRand.Intn(len(letterBytes))]
		}
		code := string(b)

		var invitation models.CompanyInvitation
		err := tx.Where("invite_code = ?", code).First(&invitation).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return code, nil
			}
			return "", err
		}
	}
}
