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

var _ = Describe("Profile", func() {
	It("requires authentication to read the profile", func() {
		resp, err := client.Get(ctx, endpoints.Profile())
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.StatusCode).To(Equal(http.StatusUnauthorized))
	})

	It("returns the signed-in user's profile without credentials", func() {
		requireAuthenticated()

		resp, err := authClient.Get(ctx, endpoints.Profile())
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.StatusCode).To(Equal(http.StatusOK))

		data := mustMap(resp)
		expectSchema(data, api.SchemaProfile)
		api.VerifyNoSensitiveFields([]map[string]any{data})
	})

	Describe("updates", func() {
		It("requires authentication", func() {
			payload := api.NewProfileUpdatePayload().Build()

			resp, err := client.Put(ctx, endpoints.Profile(), payload)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusUnauthorized))
		})

		It("updates names and reflects them on the next read", func() {
			requireAuthenticated()

			payload := api.NewProfileUpdatePayload().
				WithFirstName(config.TestUserFirstName).
				WithLastName(config.TestUserLastName).
				Build()

			resp, err := authClient.Put(ctx, endpoints.Profile(), payload)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			resp, err = authClient.Get(ctx, endpoints.Profile())
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			data := mustMap(resp)

			violations := api.ValidateBusinessRules(data, map[string]api.Rule{
				"first name updated": api.Equals{Field: "firstName", Want: config.TestUserFirstName},
				"last name updated":  api.Equals{Field: "lastName", Want: config.TestUserLastName},
			})
			Expect(violations).To(BeEmpty())
		})

		It("rejects an update with empty names", func() {
			requireAuthenticated()

			payload := api.NewProfileUpdatePayload().
				WithFirstName("").
				WithLastName("").
				Build()

			resp, err := authClient.Put(ctx, endpoints.Profile(), payload)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(BeElementOf(http.StatusBadRequest, http.StatusUnprocessableEntity))
		})
	})

	Describe("password changes", func() {
		It("requires authentication", func() {
			payload := api.NewPasswordChangePayload().Build()

			resp, err := client.Put(ctx, endpoints.ProfilePassword(), payload)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusUnauthorized))
		})

		It("rejects a wrong old password", func() {
			requireAuthenticated()

			payload := api.NewPasswordChangePayload().
				WithOldPassword("definitely-not-the-password").
				WithNewPassword(api.RandomPassword(12)).
				Build()

			resp, err := authClient.Put(ctx, endpoints.ProfilePassword(), payload)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(BeElementOf(http.StatusBadRequest, http.StatusUnauthorized))
		})

		It("rejects reusing the current password", func() {
			requireAuthenticated()

			payload := api.NewPasswordChangePayload().
				WithOldPassword(config.TestUserPassword).
				WithNewPassword(config.TestUserPassword).
				Build()

			resp, err := authClient.Put(ctx, endpoints.ProfilePassword(), payload)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(BeElementOf(http.StatusOK, http.StatusBadRequest, http.StatusUnprocessableEntity))
		})

		It("rejects a change missing fields", func() {
			requireAuthenticated()

			for _, field := range []string{"oldPassword", "newPassword"} {
				payload := api.NewPasswordChangePayload().Build()
				delete(payload, field)

				resp, err := authClient.Put(ctx, endpoints.ProfilePassword(), payload)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(
					BeElementOf(http.StatusBadRequest, http.StatusUnprocessableEntity),
					"missing %q", field)
			}
		})
	})
})
