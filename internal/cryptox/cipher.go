// Package cryptox implements the symmetric message cipher: AES-CBC with
// PKCS#7 padding, a fresh random IV per encryption, and base64 text encoding
// of IV‖ciphertext for storage.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"fmt"

	"securechat/internal/common"
)

// IVSize is the initialization vector length, equal to the AES block size.
const IVSize = aes.BlockSize

// Encrypt encrypts plaintext under key (16, 24, or 32 bytes for AES-128/192/256)
// and returns base64(IV ‖ ciphertext).
//
// A new random 16-byte IV is generated on every call, so encrypting the same
// plaintext twice yields different payloads. Both payloads decrypt back to the
// original text with Decrypt and the same key.
func Encrypt(plaintext string, key []byte) (string, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("cipher init error: %w", err)
	}

	iv, err := common.GenerateRandByteArray(IVSize)
	if err != nil {
		return "", fmt.Errorf("iv generation error: %w", err)
	}

	padded := pkcs7Pad([]byte(plaintext), aes.BlockSize)

	combined := make([]byte, IVSize+len(padded))
	copy(combined, iv)
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(combined[IVSize:], padded)

	return base64.StdEncoding.EncodeToString(combined), nil
}

// Decrypt reverses Encrypt: it decodes the payload, splits off the leading IV,
// decrypts the remainder and strips the padding.
//
// Malformed input of any kind — invalid base64, a payload too short to hold an
// IV and one block, a length that is not a block multiple, or bad padding —
// yields common.ErrorCiphertextInvalid. Partial or garbage plaintext is never
// returned.
func Decrypt(payload string, key []byte) (string, error) {
	combined, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("%w: base64 decode: %w", common.ErrorCiphertextInvalid, err)
	}

	if len(combined) < IVSize+aes.BlockSize {
		return "", fmt.Errorf("%w: payload too short", common.ErrorCiphertextInvalid)
	}

	iv, ciphertext := combined[:IVSize], combined[IVSize:]
	if len(ciphertext)%aes.BlockSize != 0 {
		return "", fmt.Errorf("%w: ciphertext is not a block multiple", common.ErrorCiphertextInvalid)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("cipher init error: %w", err)
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)

	unpadded, err := pkcs7Unpad(plaintext, aes.BlockSize)
	if err != nil {
		return "", err
	}

	return string(unpadded), nil
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	padded := make([]byte, len(data)+n)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(n)
	}
	return padded
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, fmt.Errorf("%w: bad padded length", common.ErrorCiphertextInvalid)
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize || n > len(data) {
		return nil, fmt.Errorf("%w: bad padding", common.ErrorCiphertextInvalid)
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, fmt.Errorf("%w: bad padding", common.ErrorCiphertextInvalid)
		}
	}
	return data[:len(data)-n], nil
}
