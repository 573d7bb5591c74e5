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
	"fmt"
	"net/url"
)

// Endpoints contains all API endpoint patterns.
type Endpoints struct{}

// NewEndpoints creates a new Endpoints instance.
func NewEndpoints() *Endpoints {
	return &Endpoints{}
}

// Authentication endpoints.
func (e *Endpoints) SignUp() string {
	return "/auth/signup"
}

func (e *Endpoints) SignIn() string {
	return "/auth/signin"
}

func (e *Endpoints) ValidateToken() string {
	return "/auth/validate"
}

// Dish endpoints.
func (e *Endpoints) Dishes() string {
	return "/dishes"
}

func (e *Endpoints) PopularDishes() string {
	return "/dishes/popular"
}

func (e *Endpoints) Dish(dishID string) string {
	return fmt.Sprintf("/dishes/%s", url.PathEscape(dishID))
}

// Location endpoints.
func (e *Endpoints) Locations() string {
	return "/locations"
}

func (e *Endpoints) LocationSelectOptions() string {
	return "/locations/select-options"
}

func (e *Endpoints) LocationSpecialityDishes(locationID string) string {
	return fmt.Sprintf("/locations/%s/speciality-dishes", url.PathEscape(locationID))
}

func (e *Endpoints) LocationFeedbacks(locationID string) string {
	return fmt.Sprintf("/locations/%s/feedbacks", url.PathEscape(locationID))
}

// Booking endpoints.
func (e *Endpoints) BookingTables() string {
	return "/bookings/tables"
}

func (e *Endpoints) ClientBooking() string {
	return "/bookings/client"
}

func (e *Endpoints) WaiterBooking() string {
	return "/bookings/waiter"
}

// Reservation endpoints.
func (e *Endpoints) Reservations() string {
	return "/reservations"
}

func (e *Endpoints) Reservation(reservationID string) string {
	return fmt.Sprintf("/reservations/%s", url.PathEscape(reservationID))
}

func (e *Endpoints) ReservationAvailableDishes(reservationID string) string {
	return fmt.Sprintf("/reservations/%s/available-dishes", url.PathEscape(reservationID))
}

func (e *Endpoints) ReservationDishOrder(reservationID, dishID string) string {
	return fmt.Sprintf("/reservations/%s/order/%s",
		url.PathEscape(reservationID), url.PathEscape(dishID))
}

// Cart endpoints.
func (e *Endpoints) Cart() string {
	return "/cart"
}

// Profile endpoints.
func (e *Endpoints) Profile() string {
	return "/users/profile"
}

func (e *Endpoints) ProfilePassword() string {
	return "/users/profile/password"
}

// Feedback endpoints. Creation keeps the trailing slash the service routes on.
func (e *Endpoints) Feedbacks() string {
	return "/feedbacks/"
}

func (e *Endpoints) VisitorFeedbacks() string {
	return "/feedbacks/visitor"
}

// Report endpoints.
func (e *Endpoints) Reports() string {
	return "/reports"
}

// Health and metadata endpoints.
func (e *Endpoints) Health() string {
	return "/health"
}

func (e *Endpoints) Root() string {
	return "/"
}
