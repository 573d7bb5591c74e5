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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// TestUser is a freshly registered account with its sign-in token.
type TestUser struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Token     string
}

// RegisterFreshUser signs up a brand-new user with a unique email and signs
// in, failing the running spec on any error.
func RegisterFreshUser(ctx context.Context, client *APIClient) *TestUser {
	payload := NewSignupPayload().Build()
	endpoints := client.Endpoints()

	resp, err := client.Post(ctx, endpoints.SignUp(), payload)
	Expect(err).NotTo(HaveOccurred())
	Expect(resp.StatusCode).To(BeElementOf(http.StatusOK, http.StatusCreated),
		"signup failed: %s", string(resp.Body))

	signin := NewSignInPayload().
		WithEmail(payload["email"].(string)).
		WithPassword(payload["password"].(string)).
		Build()

	resp, err = client.Post(ctx, endpoints.SignIn(), signin)
	Expect(err).NotTo(HaveOccurred())
	Expect(resp.StatusCode).To(Equal(http.StatusOK),
		"signin for fresh user failed: %s", string(resp.Body))

	var body struct {
		AccessToken string `json:"accessToken"`
	}

	Expect(resp.JSON(&body)).To(Succeed())
	Expect(body.AccessToken).NotTo(BeEmpty())

	return &TestUser{
		FirstName: payload["firstName"].(string),
		LastName:  payload["lastName"].(string),
		Email:     payload["email"].(string),
		Password:  payload["password"].(string),
		Token:     body.AccessToken,
	}
}

// CreateClientBookingWithCleanup books a table through the client booking
// endpoint and schedules the resulting reservation for deletion so the suite
// leaves no state behind, pass or fail.
func CreateClientBookingWithCleanup(ctx context.Context, client *APIClient, payload map[string]any) map[string]any {
	endpoints := client.Endpoints()

	resp, err := client.Post(ctx, endpoints.ClientBooking(), payload)
	Expect(err).NotTo(HaveOccurred())
	Expect(resp.StatusCode).To(BeElementOf(http.StatusOK, http.StatusCreated),
		"client booking failed: %s", string(resp.Body))

	reservation, err := resp.Map()
	Expect(err).NotTo(HaveOccurred())

	reservationID, ok := reservation["id"].(string)
	if !ok || reservationID == "" {
		// Nothing to clean up if the service did not return an id.
		return reservation
	}

	GinkgoWriter.Printf("Created reservation with ID: %s\n", reservationID)

	DeferCleanup(func() {
		GinkgoWriter.Printf("Cleaning up reservation: %s\n", reservationID)

		resp, err := client.Delete(context.Background(), endpoints.Reservation(reservationID))
		if err != nil {
			GinkgoWriter.Printf("Warning: failed to delete reservation %s: %v\n", reservationID, err)
			return
		}

		if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
			GinkgoWriter.Printf("Warning: deleting reservation %s returned status %d\n",
				reservationID, resp.StatusCode)
		}
	})

	return reservation
}

// VerifyFieldPresence verifies every item in the list carries a non-empty
// value for the given field.
func VerifyFieldPresence(items []map[string]any, field string) {
	for i, item := range items {
		Expect(item).To(HaveKey(field), "item %d is missing %q", i, field)
		Expect(item[field]).NotTo(BeNil(), "item %d has nil %q", i, field)
	}
}

// VerifyNoSensitiveFields verifies none of the items leak credential-bearing
// fields.
func VerifyNoSensitiveFields(items []map[string]any) {
	for i, item := range items {
		for _, field := range []string{"password", "passwordHash", "secret"} {
			Expect(item).NotTo(HaveKey(field), "item %d exposes %q", i, field)
		}
	}
}
