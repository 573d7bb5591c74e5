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
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Polina-Prakhova/test-api/test/api"
)

var _ = Describe("Security", func() {
	Describe("token handling", func() {
		It("rejects a token signed with an unknown key", func() {
			forged := api.NewAPIClientWithConfig(config)
			forged.SetAuthToken(api.MintTestToken("attacker@example.com", "CLIENT"))

			resp, err := forged.Get(ctx, endpoints.Reservations())
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusUnauthorized))
		})

		It("rejects an expired token", func() {
			expired := api.NewAPIClientWithConfig(config)
			expired.SetAuthToken(api.MintExpiredToken("attacker@example.com", "CLIENT"))

			resp, err := expired.Get(ctx, endpoints.Reservations())
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusUnauthorized))
		})

		It("rejects garbage bearer tokens", func() {
			for _, token := range []string{"not-a-jwt", "a.b", "..", "Bearer nested"} {
				c := api.NewAPIClientWithConfig(config)
				c.SetAuthToken(token)

				resp, err := c.Get(ctx, endpoints.Profile())
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusUnauthorized), "token %q", token)
			}
		})

		It("ignores auth headers on requests after the token is cleared", func() {
			requireAuthenticated()

			c := api.NewAPIClientWithConfig(config)
			c.SetAuthToken(authClient.AuthToken())
			c.ClearAuthToken()

			resp, err := c.Get(ctx, endpoints.Profile())
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusUnauthorized))
		})
	})

	Describe("input hardening", func() {
		It("rejects script and SQL fragments in registrations", func() {
			variants := api.InvalidSignupVariants()

			payload, ok := variants["special_characters"]
			Expect(ok).To(BeTrue())

			resp, err := client.Post(ctx, endpoints.SignUp(), payload)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(BeElementOf(http.StatusBadRequest, http.StatusUnprocessableEntity))
		})

		It("rejects oversized field values", func() {
			long := strings.Repeat("a", 10_000)

			payload := api.NewSignupPayload().
				WithFirstName(long).
				WithLastName(long).
				Build()

			resp, err := client.Post(ctx, endpoints.SignUp(), payload)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(BeElementOf(
				http.StatusBadRequest,
				http.StatusRequestEntityTooLarge,
				http.StatusUnprocessableEntity))
		})

		It("never leaks credentials through the profile", func() {
			requireAuthenticated()

			resp, err := authClient.Get(ctx, endpoints.Profile())
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			api.VerifyNoSensitiveFields([]map[string]any{mustMap(resp)})
		})
	})
})
