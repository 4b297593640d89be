// Package padding implements PKCS#7 block padding for whole-message ECB transforms.
package padding

import (
	"bytes"
	"errors"
	"fmt"
)

// ErrInvalidPadding is returned when trailing bytes are not valid PKCS#7 padding.
var ErrInvalidPadding = errors.New("invalid PKCS#7 padding")

// PKCS7Pad appends between 1 and blockSize padding bytes, each holding the padding length.
func PKCS7Pad(data []byte, blockSize int) ([]byte, error) {
	if blockSize < 1 || blockSize > 255 {
		return nil, fmt.Errorf("block size %d out of range", blockSize)
	}

	paddingSize := blockSize - len(data)%blockSize
	padded := make([]byte, len(data), len(data)+paddingSize)
	copy(padded, data)
	return append(padded, bytes.Repeat([]byte{byte(paddingSize)}, paddingSize)...), nil
}

// PKCS7Unpad strips the padding added by PKCS7Pad.
func PKCS7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, fmt.Errorf("%w: length %d is not a positive multiple of %d", ErrInvalidPadding, len(data), blockSize)
	}

	paddingSize := int(data[len(data)-1])
	if paddingSize == 0 || paddingSize > blockSize {
		return nil, fmt.Errorf("%w: padding size %d", ErrInvalidPadding, paddingSize)
	}
	for _, b := range data[len(data)-paddingSize:] {
		if int(b) != paddingSize {
			return nil, ErrInvalidPadding
		}
	}
	return data[:len(data)-paddingSize], nil
}
