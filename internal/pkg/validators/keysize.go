package validators

import (
	"github.com/go-playground/validator/v10"
)

// aesBlockSize mirrors cipherjob.BlockSize; validators sits below the domain packages.
const aesBlockSize = 16

// New returns a validator with the cipher-specific tags registered:
//
//	aes_key_length  raw AES key length in bytes (16, 24 or 32)
//	block_multiple  byte count that is a whole number of AES blocks
func New() *validator.Validate {
	validate := validator.New()
	_ = validate.RegisterValidation("aes_key_length", KeySizeValidation)
	_ = validate.RegisterValidation("block_multiple", BlockMultipleValidation)
	return validate
}

// KeySizeValidation validates an AES key length expressed in bytes.
func KeySizeValidation(fl validator.FieldLevel) bool {
	keySize := fl.Field().Int()
	return keySize == 16 || keySize == 24 || keySize == 32
}

// BlockMultipleValidation validates that a byte count covers whole AES blocks.
func BlockMultipleValidation(fl validator.FieldLevel) bool {
	return fl.Field().Int()%aesBlockSize == 0
}
