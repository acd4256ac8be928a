// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto hashes and verifies the supervisor PIN.
package crypto

import (
	"errors"
	"fmt"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// MinPINLength is the minimum number of digits of a supervisor PIN.
const MinPINLength = 4

var (
	// ErrPINMismatch is returned when a PIN does not match the stored hash.
	ErrPINMismatch = errors.New("supervisor pin does not match")
	// ErrPINNotConfigured is returned when no PIN hash is configured.
	ErrPINNotConfigured = errors.New("supervisor pin is not configured")
	// ErrInvalidPIN is returned for PINs that are too short or not numeric.
	ErrInvalidPIN = errors.New("pin must be at least 4 digits")
)

// PINService hashes and verifies supervisor PINs.
type PINService interface {
	Hash(pin string) (string, error)
	Verify(hash, pin string) error
}

type bcryptPINService struct {
	cost int
}

// NewPINService returns a bcrypt-backed [PINService].
func NewPINService() PINService {
	return &bcryptPINService{cost: bcrypt.DefaultCost}
}

// NewPINServiceWithCost is [NewPINService] with an explicit bcrypt cost.
func NewPINServiceWithCost(cost int) PINService {
	return &bcryptPINService{cost: cost}
}

func (s *bcryptPINService) Hash(pin string) (string, error) {
	if err := validatePIN(pin); err != nil {
		return "", err
	}
	h, err := bcrypt.GenerateFromPassword([]byte(pin), s.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing pin: %w", err)
	}
	return string(h), nil
}

func (s *bcryptPINService) Verify(hash, pin string) error {
	if hash == "" {
		return ErrPINNotConfigured
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrPINMismatch
	default:
		return fmt.Errorf("error verifying pin: %w", err)
	}
}

func validatePIN(pin string) error {
	if len(pin) < MinPINLength {
		return ErrInvalidPIN
	}
	for _, r := range pin {
		if !unicode.IsDigit(r) {
			return ErrInvalidPIN
		}
	}
	return nil
}
