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
	"encoding/hex"
	"fmt"
	mathrand "math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	firstNames = []string{"Olivia", "Liam", "Emma", "Noah", "Sophia", "Mason", "Ava", "Ethan"}
	lastNames  = []string{"Garcia", "Kim", "Patel", "Novak", "Murphy", "Schmidt", "Ivanov", "Costa"}
	dishWords  = []string{"Roasted", "Seared", "Garden", "Spiced", "Truffle", "Citrus", "Smoked", "Herb"}
	comments   = []string{
		"The staff were attentive and the table was ready on time.",
		"Portions were generous and everything arrived hot.",
		"Service was a little slow but the food made up for it.",
		"Lovely atmosphere, would happily book again.",
	}
)

const passwordAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// tinyPNGBase64 is a 1x1 pixel PNG, the smallest well-formed image payload.
const tinyPNGBase64 = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

// RandomObjectID generates a 24-character hexadecimal object identifier.
func RandomObjectID() string {
	bytes := make([]byte, 12)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// RandomEmail generates a unique, well-formed email address.
func RandomEmail() string {
	return fmt.Sprintf("qa-%s@example.com", uuid.NewString()[:8])
}

// RandomPassword generates an alphanumeric password of the given length.
func RandomPassword(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = passwordAlphabet[mathrand.IntN(len(passwordAlphabet))]
	}

	return string(b)
}

// RandomFutureDate generates an ISO date between minDays and maxDays from now.
func RandomFutureDate(minDays, maxDays int) string {
	offset := minDays + mathrand.IntN(maxDays-minDays+1)
	return time.Now().AddDate(0, 0, offset).Format("2006-01-02")
}

// RandomTimeSlot generates an HH:MM window where the end is 1-3 hours after
// the start. The start hour is bounded so the window never crosses midnight.
func RandomTimeSlot() (string, string) {
	hour := 10 + mathrand.IntN(11) // 10..20
	minute := []int{0, 15, 30, 45}[mathrand.IntN(4)]
	duration := 1 + mathrand.IntN(3) // 1..3 hours

	from := fmt.Sprintf("%02d:%02d", hour, minute)
	to := fmt.Sprintf("%02d:%02d", hour+duration, minute)

	return from, to
}

// RandomPrice generates a price like "$12.99".
func RandomPrice() string {
	return fmt.Sprintf("$%d.%02d", 5+mathrand.IntN(46), mathrand.IntN(100))
}

func randomFirstName() string {
	return firstNames[mathrand.IntN(len(firstNames))]
}

func randomLastName() string {
	return lastNames[mathrand.IntN(len(lastNames))]
}

func randomFullName() string {
	return randomFirstName() + " " + randomLastName()
}

func randomDishName() string {
	return dishWords[mathrand.IntN(len(dishWords))] + " " + dishWords[mathrand.IntN(len(dishWords))]
}

func randomComment() string {
	return comments[mathrand.IntN(len(comments))]
}

// SignupPayloadBuilder builds user registration payloads.
type SignupPayloadBuilder struct {
	payload map[string]any
}

func NewSignupPayload() *SignupPayloadBuilder {
	return &SignupPayloadBuilder{
		payload: map[string]any{
			"firstName": randomFirstName(),
			"lastName":  randomLastName(),
			"email":     RandomEmail(),
			"password":  RandomPassword(8),
		},
	}
}

func (b *SignupPayloadBuilder) WithFirstName(name string) *SignupPayloadBuilder {
	b.payload["firstName"] = name
	return b
}

func (b *SignupPayloadBuilder) WithLastName(name string) *SignupPayloadBuilder {
	b.payload["lastName"] = name
	return b
}

func (b *SignupPayloadBuilder) WithEmail(email string) *SignupPayloadBuilder {
	b.payload["email"] = email
	return b
}

func (b *SignupPayloadBuilder) WithPassword(password string) *SignupPayloadBuilder {
	b.payload["password"] = password
	return b
}

func (b *SignupPayloadBuilder) Build() map[string]any {
	return b.payload
}

// SignInPayloadBuilder builds sign-in credential payloads.
type SignInPayloadBuilder struct {
	payload map[string]any
}

func NewSignInPayload() *SignInPayloadBuilder {
	return &SignInPayloadBuilder{
		payload: map[string]any{
			"email":    RandomEmail(),
			"password": RandomPassword(8),
		},
	}
}

func (b *SignInPayloadBuilder) WithEmail(email string) *SignInPayloadBuilder {
	b.payload["email"] = email
	return b
}

func (b *SignInPayloadBuilder) WithPassword(password string) *SignInPayloadBuilder {
	b.payload["password"] = password
	return b
}

func (b *SignInPayloadBuilder) Build() map[string]any {
	return b.payload
}

// ReservationPayloadBuilder builds client booking payloads. Generated values
// always satisfy their own format invariants: the date is in the future and
// timeTo is chronologically after timeFrom.
type ReservationPayloadBuilder struct {
	payload map[string]any
}

func NewReservationPayload() *ReservationPayloadBuilder {
	timeFrom, timeTo := RandomTimeSlot()

	return &ReservationPayloadBuilder{
		payload: map[string]any{
			"locationId":   RandomObjectID(),
			"tableNumber":  strconv.Itoa(1 + mathrand.IntN(20)),
			"date":         RandomFutureDate(1, 30),
			"guestsNumber": strconv.Itoa(1 + mathrand.IntN(8)),
			"timeFrom":     timeFrom,
			"timeTo":       timeTo,
		},
	}
}

func (b *ReservationPayloadBuilder) WithLocationID(locationID string) *ReservationPayloadBuilder {
	b.payload["locationId"] = locationID
	return b
}

func (b *ReservationPayloadBuilder) WithTableNumber(tableNumber string) *ReservationPayloadBuilder {
	b.payload["tableNumber"] = tableNumber
	return b
}

func (b *ReservationPayloadBuilder) WithDate(date string) *ReservationPayloadBuilder {
	b.payload["date"] = date
	return b
}

func (b *ReservationPayloadBuilder) WithGuestsNumber(guests string) *ReservationPayloadBuilder {
	b.payload["guestsNumber"] = guests
	return b
}

// WithTimeWindow overrides both ends of the slot at once so callers cannot
// accidentally produce a window that ends before it starts.
func (b *ReservationPayloadBuilder) WithTimeWindow(timeFrom, timeTo string) *ReservationPayloadBuilder {
	b.payload["timeFrom"] = timeFrom
	b.payload["timeTo"] = timeTo

	return b
}

func (b *ReservationPayloadBuilder) Without(field string) *ReservationPayloadBuilder {
	delete(b.payload, field)
	return b
}

func (b *ReservationPayloadBuilder) Build() map[string]any {
	return b.payload
}

// WaiterReservationPayloadBuilder builds waiter booking payloads: a client
// reservation plus the client type and customer name.
type WaiterReservationPayloadBuilder struct {
	*ReservationPayloadBuilder
}

func NewWaiterReservationPayload() *WaiterReservationPayloadBuilder {
	b := &WaiterReservationPayloadBuilder{NewReservationPayload()}
	b.payload["clientType"] = "CUSTOMER"
	b.payload["customerName"] = randomFullName()

	return b
}

func (b *WaiterReservationPayloadBuilder) WithClientType(clientType string) *WaiterReservationPayloadBuilder {
	b.payload["clientType"] = clientType
	return b
}

func (b *WaiterReservationPayloadBuilder) WithCustomerName(name string) *WaiterReservationPayloadBuilder {
	b.payload["customerName"] = name
	return b
}

// FeedbackPayloadBuilder builds visitor feedback payloads.
type FeedbackPayloadBuilder struct {
	payload map[string]any
}

func NewFeedbackPayload() *FeedbackPayloadBuilder {
	return &FeedbackPayloadBuilder{
		payload: map[string]any{
			"reservationId":  RandomObjectID(),
			"serviceRating":  strconv.Itoa(1 + mathrand.IntN(5)),
			"serviceComment": randomComment(),
			"cuisineRating":  strconv.Itoa(1 + mathrand.IntN(5)),
			"cuisineComment": randomComment(),
		},
	}
}

func (b *FeedbackPayloadBuilder) WithReservationID(reservationID string) *FeedbackPayloadBuilder {
	b.payload["reservationId"] = reservationID
	return b
}

func (b *FeedbackPayloadBuilder) WithServiceRating(rating string) *FeedbackPayloadBuilder {
	b.payload["serviceRating"] = rating
	return b
}

func (b *FeedbackPayloadBuilder) WithServiceComment(comment string) *FeedbackPayloadBuilder {
	b.payload["serviceComment"] = comment
	return b
}

func (b *FeedbackPayloadBuilder) WithCuisineRating(rating string) *FeedbackPayloadBuilder {
	b.payload["cuisineRating"] = rating
	return b
}

func (b *FeedbackPayloadBuilder) WithCuisineComment(comment string) *FeedbackPayloadBuilder {
	b.payload["cuisineComment"] = comment
	return b
}

func (b *FeedbackPayloadBuilder) Without(field string) *FeedbackPayloadBuilder {
	delete(b.payload, field)
	return b
}

func (b *FeedbackPayloadBuilder) Build() map[string]any {
	return b.payload
}

// ProfileUpdatePayloadBuilder builds profile update payloads.
type ProfileUpdatePayloadBuilder struct {
	payload map[string]any
}

func NewProfileUpdatePayload() *ProfileUpdatePayloadBuilder {
	return &ProfileUpdatePayloadBuilder{
		payload: map[string]any{
			"firstName":          randomFirstName(),
			"lastName":           randomLastName(),
			"base64encodedImage": tinyPNGBase64,
		},
	}
}

func (b *ProfileUpdatePayloadBuilder) WithFirstName(name string) *ProfileUpdatePayloadBuilder {
	b.payload["firstName"] = name
	return b
}

func (b *ProfileUpdatePayloadBuilder) WithLastName(name string) *ProfileUpdatePayloadBuilder {
	b.payload["lastName"] = name
	return b
}

func (b *ProfileUpdatePayloadBuilder) WithImage(base64Image string) *ProfileUpdatePayloadBuilder {
	b.payload["base64encodedImage"] = base64Image
	return b
}

func (b *ProfileUpdatePayloadBuilder) Build() map[string]any {
	return b.payload
}

// PasswordChangePayloadBuilder builds password change payloads.
type PasswordChangePayloadBuilder struct {
	payload map[string]any
}

func NewPasswordChangePayload() *PasswordChangePayloadBuilder {
	return &PasswordChangePayloadBuilder{
		payload: map[string]any{
			"oldPassword": RandomPassword(8),
			"newPassword": RandomPassword(8),
		},
	}
}

func (b *PasswordChangePayloadBuilder) WithOldPassword(password string) *PasswordChangePayloadBuilder {
	b.payload["oldPassword"] = password
	return b
}

func (b *PasswordChangePayloadBuilder) WithNewPassword(password string) *PasswordChangePayloadBuilder {
	b.payload["newPassword"] = password
	return b
}

func (b *PasswordChangePayloadBuilder) Build() map[string]any {
	return b.payload
}

// DishItemPayloadBuilder builds dish line items for cart preorders.
type DishItemPayloadBuilder struct {
	payload map[string]any
}

func NewDishItemPayload() *DishItemPayloadBuilder {
	return &DishItemPayloadBuilder{
		payload: map[string]any{
			"dishId":       RandomObjectID(),
			"dishName":     randomDishName(),
			"dishPrice":    RandomPrice(),
			"dishQuantity": 1 + mathrand.IntN(5),
			"dishImageUrl": fmt.Sprintf("https://cdn.example.com/dishes/%s.png", RandomObjectID()),
		},
	}
}

func (b *DishItemPayloadBuilder) WithDishID(dishID string) *DishItemPayloadBuilder {
	b.payload["dishId"] = dishID
	return b
}

func (b *DishItemPayloadBuilder) WithName(name string) *DishItemPayloadBuilder {
	b.payload["dishName"] = name
	return b
}

func (b *DishItemPayloadBuilder) WithPrice(price string) *DishItemPayloadBuilder {
	b.payload["dishPrice"] = price
	return b
}

func (b *DishItemPayloadBuilder) WithQuantity(quantity int) *DishItemPayloadBuilder {
	b.payload["dishQuantity"] = quantity
	return b
}

func (b *DishItemPayloadBuilder) Build() map[string]any {
	return b.payload
}

// PreorderPayloadBuilder builds cart preorder payloads.
type PreorderPayloadBuilder struct {
	payload map[string]any
}

func NewPreorderPayload() *PreorderPayloadBuilder {
	timeFrom, timeTo := RandomTimeSlot()

	return &PreorderPayloadBuilder{
		payload: map[string]any{
			"id":            RandomObjectID(),
			"reservationId": RandomObjectID(),
			"address":       fmt.Sprintf("%d Main Street", 1+mathrand.IntN(200)),
			"date":          RandomFutureDate(1, 7),
			"timeSlot":      timeFrom + " - " + timeTo,
			"dishItems":     []map[string]any{NewDishItemPayload().Build()},
			"state":         "SUBMITTED",
		},
	}
}

func (b *PreorderPayloadBuilder) WithReservationID(reservationID string) *PreorderPayloadBuilder {
	b.payload["reservationId"] = reservationID
	return b
}

func (b *PreorderPayloadBuilder) WithState(state string) *PreorderPayloadBuilder {
	b.payload["state"] = state
	return b
}

func (b *PreorderPayloadBuilder) WithDishItems(items []map[string]any) *PreorderPayloadBuilder {
	b.payload["dishItems"] = items
	return b
}

// WithoutDishItems drops the dishItems field for missing-field negative tests.
func (b *PreorderPayloadBuilder) WithoutDishItems() *PreorderPayloadBuilder {
	delete(b.payload, "dishItems")
	return b
}

func (b *PreorderPayloadBuilder) Build() map[string]any {
	return b.payload
}

// InvalidSignupVariants returns the fixed catalog of deliberately malformed
// signup payloads for negative-path testing.
func InvalidSignupVariants() map[string]map[string]any {
	return map[string]map[string]any{
		"empty_strings": {
			"firstName": "",
			"lastName":  "",
			"email":     "",
			"password":  "",
		},
		"null_values": {
			"firstName": nil,
			"lastName":  nil,
			"email":     nil,
			"password":  nil,
		},
		"invalid_email": {
			"firstName": randomFirstName(),
			"lastName":  randomLastName(),
			"email":     "invalid-email",
			"password":  RandomPassword(8),
		},
		"short_password": {
			"firstName": randomFirstName(),
			"lastName":  randomLastName(),
			"email":     RandomEmail(),
			"password":  "123",
		},
		"long_strings": {
			"firstName": strings.Repeat("a", 1000),
			"lastName":  strings.Repeat("b", 1000),
			"email":     strings.Repeat("c", 1000) + "@example.com",
			"password":  strings.Repeat("d", 1000),
		},
		"special_characters": {
			"firstName": "!@#$%^&*()",
			"lastName":  "<script>alert('xss')</script>",
			"email":     "test@<script>.com",
			"password":  "'; DROP TABLE users; --",
		},
	}
}
