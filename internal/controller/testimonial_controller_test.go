package controller

import (
	"net/http"
	"strings"
	"testing"

	"forge3d_backend/internal/model"
)

type testimonialResponse struct {
	Success       bool         `json:"success"`
	Message       string       `json:"message"`
	TestimonialID uint         `json:"testimonialId"`
	Errors        []FieldError `json:"errors"`
}

func validTestimonialPayload() map[string]any {
	return map[string]any{
		"name":    "Jean Dupont",
		"company": "ACME",
		"rating":  5,
		"quote":   "Un service impeccable, je recommande vivement cette équipe.",
	}
}

func TestTestimonialCreate_Success(t *testing.T) {
	env := newTestEnv(t)

	resp := doJSON(t, env.app, http.MethodPost, "/api/testimonials", validTestimonialPayload())
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var body testimonialResponse
	decodeBody(t, resp, &body)
	if !body.Success || body.TestimonialID != 1 {
		t.Errorf("expected success with testimonialId 1, got %+v", body)
	}

	if len(env.testimonials.testimonials) != 1 {
		t.Fatalf("expected 1 testimonial row, got %d", len(env.testimonials.testimonials))
	}
	row := env.testimonials.testimonials[0]
	if row.Status != string(model.TestimonialStatusPending) {
		t.Errorf("submissions must land in pending, got %q", row.Status)
	}
	if row.IsFeatured {
		t.Error("submissions must not be featured")
	}
	if row.Avatar != "JD" {
		t.Errorf("expected initials JD, got %q", row.Avatar)
	}

	colorOK := false
	for _, color := range avatarColors {
		if row.AvatarColor == color {
			colorOK = true
		}
	}
	if !colorOK {
		t.Errorf("avatar color %q is not in the palette", row.AvatarColor)
	}
}

func TestTestimonialCreate_RatingBounds(t *testing.T) {
	for _, rating := range []int{0, -1, 6, 100} {
		env := newTestEnv(t)

		payload := validTestimonialPayload()
		payload["rating"] = rating

		resp := doJSON(t, env.app, http.MethodPost, "/api/testimonials", payload)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("rating %d: expected 400, got %d", rating, resp.StatusCode)
		}
		if len(env.testimonials.testimonials) != 0 {
			t.Errorf("rating %d: no row may be created", rating)
		}
	}
}

func TestTestimonialCreate_QuoteLengthBounds(t *testing.T) {
	cases := map[string]struct {
		quote  string
		status int
	}{
		"below_min": {strings.Repeat("x", 19), http.StatusBadRequest},
		"at_min":    {strings.Repeat("x", 20), http.StatusCreated},
		"at_max":    {strings.Repeat("x", 500), http.StatusCreated},
		"above_max": {strings.Repeat("x", 501), http.StatusBadRequest},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			env := newTestEnv(t)

			payload := validTestimonialPayload()
			payload["quote"] = tc.quote

			resp := doJSON(t, env.app, http.MethodPost, "/api/testimonials", payload)
			if resp.StatusCode != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, resp.StatusCode)
			}
		})
	}
}

func TestTestimonialCreate_OptionalEmailValidated(t *testing.T) {
	env := newTestEnv(t)

	payload := validTestimonialPayload()
	payload["email"] = "not-an-address"

	resp := doJSON(t, env.app, http.MethodPost, "/api/testimonials", payload)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	var body testimonialResponse
	decodeBody(t, resp, &body)
	if len(body.Errors) != 1 || body.Errors[0].Field != "email" {
		t.Errorf("expected a single email error, got %+v", body.Errors)
	}
}

func TestTestimonialCreate_MissingCompany(t *testing.T) {
	env := newTestEnv(t)

	payload := validTestimonialPayload()
	delete(payload, "company")

	resp := doJSON(t, env.app, http.MethodPost, "/api/testimonials", payload)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if len(env.testimonials.testimonials) != 0 {
		t.Error("no row may be created on validation failure")
	}
}

func TestTestimonialList_OnlyApprovedAndFeatured(t *testing.T) {
	env := newTestEnv(t)
	env.testimonials.testimonials = []model.Testimonial{
		{Name: "A", Status: string(model.TestimonialStatusApproved), IsFeatured: true, Email: "a@x.com"},
		{Name: "B", Status: string(model.TestimonialStatusPending), IsFeatured: true},
		{Name: "C", Status: string(model.TestimonialStatusApproved), IsFeatured: false},
	}
	env.testimonials.testimonials[0].ID = 1
	env.testimonials.testimonials[1].ID = 2
	env.testimonials.testimonials[2].ID = 3

	resp := doJSON(t, env.app, http.MethodGet, "/api/testimonials", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		Success      bool                      `json:"success"`
		Testimonials []model.PublicTestimonial `json:"testimonials"`
	}
	decodeBody(t, resp, &body)

	if len(body.Testimonials) != 1 {
		t.Fatalf("expected only the approved+featured row, got %d", len(body.Testimonials))
	}
	if body.Testimonials[0].Name != "A" {
		t.Errorf("unexpected row: %+v", body.Testimonials[0])
	}
}

func TestTestimonialList_ProjectsPublicFieldsOnly(t *testing.T) {
	env := newTestEnv(t)
	env.testimonials.testimonials = []model.Testimonial{
		{Name: "A", Status: string(model.TestimonialStatusApproved), IsFeatured: true, Email: "secret@x.com"},
	}
	env.testimonials.testimonials[0].ID = 1

	resp := doJSON(t, env.app, http.MethodGet, "/api/testimonials", nil)
	raw := readBody(t, resp)

	if strings.Contains(raw, "secret@x.com") || strings.Contains(raw, `"email"`) {
		t.Errorf("email must never be exposed publicly: %s", raw)
	}
	if strings.Contains(raw, `"is_featured"`) || strings.Contains(raw, `"status"`) {
		t.Errorf("moderation fields must never be exposed publicly: %s", raw)
	}
}

func TestAvatarInitials(t *testing.T) {
	cases := map[string]string{
		"Jean Dupont":      "JD",
		"Ali":              "A",
		"jean marc dupont": "JM",
		"élodie durand":    "ÉD",
		"":                 "",
	}
	for name, want := range cases {
		if got := avatarInitials(name); got != want {
			t.Errorf("avatarInitials(%q) = %q, want %q", name, got, want)
		}
	}
}
