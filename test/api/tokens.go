/*
Copyright 2025 the test-api Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"crypto/rand"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// MintTestToken returns a syntactically valid JWT signed with a throwaway
// random key. It always passes shape checks and must always be rejected by
// the service under test, which makes it the right fixture for tampered and
// forged token scenarios.
func MintTestToken(subject, role string) string {
	return mintToken(subject, role, time.Now().Add(time.Hour))
}

// MintExpiredToken is MintTestToken with an expiry one hour in the past.
func MintExpiredToken(subject, role string) string {
	return mintToken(subject, role, time.Now().Add(-time.Hour))
}

func mintToken(subject, role string, expiresAt time.Time) string {
	key := make([]byte, 32)
	_, _ = rand.Read(key)

	claims := jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"iat":  jwt.NewNumericDate(time.Now()),
		"exp":  jwt.NewNumericDate(expiresAt),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	if err != nil {
		// HS256 signing over in-memory data cannot fail.
		panic(err)
	}

	return token
}
