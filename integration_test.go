// Copyright 2025 The vanille-type Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build integration

package vtype_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	rerrors "rivaas.dev/errors"

	vtype "github.com/AlexisTessier/vanille-type"
	"github.com/AlexisTessier/vanille-type/validators"
)

type signup struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Tags  []any  `json:"tags"`
}

var _ = Describe("Vtype Integration", func() {
	var Signup *vtype.Type

	BeforeEach(func() {
		tags, err := vtype.Path("tags")(validators.SliceOf(validators.String))
		Expect(err).NotTo(HaveOccurred())

		Signup = vtype.MustComposeNamed("Signup", validators.StructTags(), tags)
	})

	Describe("Checking nested values", func() {
		It("should return the value unchanged when it is valid", func() {
			in := &signup{Name: "Ada", Email: "ada@example.com", Tags: []any{"math"}}

			out, err := Signup.Check(in)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(BeIdenticalTo(in))
		})

		It("should report struct tags and path scoped failures together", func() {
			in := &signup{Email: "nope", Tags: []any{"a", 1}}

			_, err := Signup.Check(in)
			Expect(err).To(MatchError(vtype.ErrMismatch))

			var terr *vtype.Error
			Expect(errors.As(err, &terr)).To(BeTrue())
			Expect(terr.Subject()).To(BeIdenticalTo(in))

			failures := terr.Failures()
			Expect(failures).To(HaveLen(2))

			Expect(failures[0].Message).To(Equal(vtype.DetailMessage(validators.StructTags())))
			Expect(failures[0].Children).To(ConsistOf(
				vtype.Failure{Message: "is required", Path: "name"},
				vtype.Failure{Message: "must be a valid email address", Path: "email"},
			))

			Expect(failures[1].Path).To(Equal("tags"))
			Expect(failures[1].Children).To(HaveLen(1))
			Expect(failures[1].Children[0].Path).To(Equal("1"))
		})

		It("should render every failure in the error message", func() {
			_, err := Signup.Check(&signup{Name: "Ada", Email: "ada@example.com", Tags: []any{true}})
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(HavePrefix("Value "))
			Expect(err.Error()).To(ContainSubstring("0 - tags) It doesn't match the validator SliceOf(String)."))
			Expect(err.Error()).To(ContainSubstring("0.0 - 0) It doesn't match the validator String."))
		})
	})

	Describe("HTTP error formatting", func() {
		var formatter *rerrors.Simple

		BeforeEach(func() {
			formatter = rerrors.NewSimple()
		})

		It("should format a rejection as an unprocessable entity", func() {
			_, err := Signup.Check(&signup{Name: "Ada"})
			Expect(err).To(HaveOccurred())

			var terr *vtype.Error
			Expect(errors.As(err, &terr)).To(BeTrue())

			req := httptest.NewRequest(http.MethodPost, "/signup", nil)
			resp := formatter.Format(req, err)

			Expect(resp.Status).To(Equal(http.StatusUnprocessableEntity))

			body, ok := resp.Body.(map[string]any)
			Expect(ok).To(BeTrue())
			Expect(body).To(HaveKeyWithValue("code", "type_error"))
			Expect(body).To(HaveKeyWithValue("error", err.Error()))
			Expect(body).To(HaveKeyWithValue("details", terr.Failures()))
		})

		It("should encode failure paths in the JSON body", func() {
			_, err := Signup.Check(&signup{Name: "Ada", Email: "nope"})
			Expect(err).To(HaveOccurred())

			rec := httptest.NewRecorder()
			resp := formatter.Format(httptest.NewRequest(http.MethodPost, "/signup", nil), err)
			rec.Header().Set("Content-Type", resp.ContentType)
			rec.WriteHeader(resp.Status)
			Expect(json.NewEncoder(rec).Encode(resp.Body)).To(Succeed())

			Expect(rec.Code).To(Equal(http.StatusUnprocessableEntity))
			Expect(rec.Body.String()).To(ContainSubstring(`"path":"email"`))
			Expect(rec.Body.String()).To(ContainSubstring(`"message":"must be a valid email address"`))
		})

		It("should format an invalid validator as an internal error", func() {
			Broken := vtype.MustCompose(validators.String, func(any) any { return "yes" })

			_, err := Broken.Check("x")
			Expect(err).To(MatchError(vtype.ErrInvalidValidator))

			resp := formatter.Format(httptest.NewRequest(http.MethodGet, "/", nil), err)
			Expect(resp.Status).To(Equal(http.StatusInternalServerError))

			body, ok := resp.Body.(map[string]any)
			Expect(ok).To(BeTrue())
			Expect(body).To(HaveKeyWithValue("code", "invalid_validator"))
			Expect(body).NotTo(HaveKey("details"))
		})
	})

	Describe("Concurrent checks", func() {
		It("should keep reports independent across goroutines", func() {
			const workers = 32

			var wg sync.WaitGroup
			errs := make([]error, workers)
			for i := range workers {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					in := &signup{Name: "Ada", Email: "ada@example.com"}
					if i%2 == 1 {
						in.Email = "nope"
					}
					_, errs[i] = Signup.Check(in)
				}(i)
			}
			wg.Wait()

			for i, err := range errs {
				if i%2 == 0 {
					Expect(err).NotTo(HaveOccurred())
					continue
				}

				var terr *vtype.Error
				Expect(errors.As(err, &terr)).To(BeTrue())
				Expect(terr.Failures()).To(HaveLen(1))
				Expect(terr.Failures()[0].Children).To(HaveLen(1))
			}
		})
	})

	Describe("Expression validators", func() {
		It("should combine expr and kind validators", func() {
			Adult := vtype.MustComposeNamed("Adult", validators.Int, validators.MustExpr("v >= 18"))

			Expect(Adult.Is(21)).To(BeTrue())
			Expect(Adult.Is(12)).To(BeFalse())
			Expect(Adult.Is("21")).To(BeFalse())
		})
	})
})
