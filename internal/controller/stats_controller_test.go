package controller

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"forge3d_backend/internal/model"
	"forge3d_backend/internal/repository"
)

type statsResponse struct {
	Success bool `json:"success"`
	Stats   struct {
		Contacts     repository.ContactStats  `json:"contacts"`
		Emails       []repository.StatusCount `json:"emails"`
		Testimonials []repository.StatusCount `json:"testimonials"`
	} `json:"stats"`
}

func TestStats_Aggregates(t *testing.T) {
	env := newTestEnv(t)

	// Two submissions, the second with a failing mail relay.
	doJSON(t, env.app, http.MethodPost, "/api/contact", validContactPayload())
	env.mailer.err = errors.New("smtp down")
	doJSON(t, env.app, http.MethodPost, "/api/contact", validContactPayload())

	doJSON(t, env.app, http.MethodPost, "/api/testimonials", validTestimonialPayload())

	resp := doJSON(t, env.app, http.MethodGet, "/api/stats", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body statsResponse
	decodeBody(t, resp, &body)

	if body.Stats.Contacts.Total != 2 || body.Stats.Contacts.New != 2 {
		t.Errorf("unexpected contact stats: %+v", body.Stats.Contacts)
	}

	emailCounts := map[string]int64{}
	for _, c := range body.Stats.Emails {
		emailCounts[c.Status] = c.Count
	}
	if emailCounts[model.EmailStatusSent] != 1 || emailCounts[model.EmailStatusFailed] != 1 {
		t.Errorf("unexpected email stats: %+v", body.Stats.Emails)
	}

	testimonialCounts := map[string]int64{}
	for _, c := range body.Stats.Testimonials {
		testimonialCounts[c.Status] = c.Count
	}
	if testimonialCounts[string(model.TestimonialStatusPending)] != 1 {
		t.Errorf("unexpected testimonial stats: %+v", body.Stats.Testimonials)
	}
}

func TestStats_IdempotentWithoutWrites(t *testing.T) {
	env := newTestEnv(t)

	doJSON(t, env.app, http.MethodPost, "/api/contact", validContactPayload())

	first := readBody(t, doJSON(t, env.app, http.MethodGet, "/api/stats", nil))
	second := readBody(t, doJSON(t, env.app, http.MethodGet, "/api/stats", nil))

	if first != second {
		t.Errorf("stats must be identical with no intervening writes:\n%s\n%s", first, second)
	}
}

func TestStats_EmptyDatabase(t *testing.T) {
	env := newTestEnv(t)

	resp := doJSON(t, env.app, http.MethodGet, "/api/stats", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	raw := readBody(t, resp)
	if raw == "" {
		t.Fatal("expected a body")
	}
	// Grouped counts serialize as arrays even when empty.
	for _, want := range []string{`"emails":[]`, `"testimonials":[]`} {
		if !strings.Contains(raw, want) {
			t.Errorf("expected %s in %s", want, raw)
		}
	}
}
