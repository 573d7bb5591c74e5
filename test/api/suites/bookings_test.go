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

package suites

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Polina-Prakhova/test-api/test/api"
)

var _ = Describe("Bookings", func() {
	Describe("table availability", func() {
		It("lists available tables for a seeded location", func() {
			resp, err := client.Get(ctx, endpoints.BookingTables(),
				api.WithQuery("locationId", config.TestLocationID),
				api.WithQuery("date", api.RandomFutureDate(1, 14)),
				api.WithQuery("guests", "2"))
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			items := mustList(resp)
			expectListSchema(items, api.SchemaTable)
		})

		It("rejects a malformed date filter", func() {
			resp, err := client.Get(ctx, endpoints.BookingTables(),
				api.WithQuery("locationId", config.TestLocationID),
				api.WithQuery("date", "31-12-2030"),
				api.WithQuery("guests", "2"))
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(BeElementOf(http.StatusBadRequest, http.StatusUnprocessableEntity))
		})
	})

	Describe("client booking", func() {
		It("requires authentication", func() {
			payload := api.NewReservationPayload().
				WithLocationID(config.TestLocationID).
				WithTableNumber(config.TestTableNumber).
				Build()

			resp, err := client.Post(ctx, endpoints.ClientBooking(), payload)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusUnauthorized))
		})

		It("books a table and returns the reservation", func() {
			requireAuthenticated()

			payload := api.NewReservationPayload().
				WithLocationID(config.TestLocationID).
				WithTableNumber(config.TestTableNumber).
				Build()

			reservation := api.CreateClientBookingWithCleanup(ctx, authClient, payload)
			expectSchema(reservation, api.SchemaReservation)
		})

		It("rejects a booking in the past", func() {
			requireAuthenticated()

			payload := api.NewReservationPayload().
				WithLocationID(config.TestLocationID).
				WithTableNumber(config.TestTableNumber).
				WithDate("2020-01-01").
				Build()

			resp, err := authClient.Post(ctx, endpoints.ClientBooking(), payload)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(BeElementOf(http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity))
		})

		It("rejects a booking with an inverted time window", func() {
			requireAuthenticated()

			payload := api.NewReservationPayload().
				WithLocationID(config.TestLocationID).
				WithTableNumber(config.TestTableNumber).
				WithTimeWindow("18:00", "12:00").
				Build()

			resp, err := authClient.Post(ctx, endpoints.ClientBooking(), payload)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(BeElementOf(http.StatusBadRequest, http.StatusUnprocessableEntity))
		})

		It("rejects a booking missing required fields", func() {
			requireAuthenticated()

			for _, field := range []string{"locationId", "tableNumber", "date", "guestsNumber"} {
				payload := api.NewReservationPayload().
					WithLocationID(config.TestLocationID).
					WithTableNumber(config.TestTableNumber).
					Without(field).
					Build()

				resp, err := authClient.Post(ctx, endpoints.ClientBooking(), payload)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(
					BeElementOf(http.StatusBadRequest, http.StatusUnprocessableEntity),
					"missing %q", field)
			}
		})
	})

	Describe("waiter booking", func() {
		It("requires authentication", func() {
			payload := api.NewWaiterReservationPayload().
				WithLocationID(config.TestLocationID).
				WithTableNumber(config.TestTableNumber).
				Build()

			resp, err := client.Post(ctx, endpoints.WaiterBooking(), payload)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusUnauthorized))
		})

		It("rejects a waiter booking from a client account", func() {
			requireAuthenticated()

			payload := api.NewWaiterReservationPayload().
				WithLocationID(config.TestLocationID).
				WithTableNumber(config.TestTableNumber).
				Build()

			resp, err := authClient.Post(ctx, endpoints.WaiterBooking(), payload)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(BeElementOf(http.StatusForbidden, http.StatusUnauthorized))
		})
	})
})
