package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/Ramsagar705/aqua-blue-hydropack/internal/domain"
)

func TestCreateContact(t *testing.T) {
	r, db := newAPI(t)
	body := map[string]string{
		"name": "Asha", "email": "asha@example.com", "phone": "9876543210",
		"subject": "Feedback", "message": "Great water",
	}
	w := do(t, r, http.MethodPost, "/api/contact", body, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var resp ContactResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json: %v", err)
	}
	if !resp.Success || resp.Message != "Message sent successfully" {
		t.Fatalf("unexpected body: %+v", resp)
	}
	var n int64
	db.Model(&domain.ContactMessage{}).Count(&n)
	if n != 1 {
		t.Fatalf("stored messages=%d", n)
	}
}

func TestCreateContact_MissingField(t *testing.T) {
	r, _ := newAPI(t)
	body := map[string]string{"name": "Asha", "email": "asha@example.com", "phone": "9876543210"}
	w := do(t, r, http.MethodPost, "/api/contact", body, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d", w.Code)
	}
	er := decodeError(t, w)
	if er.Code != ErrCodeMissingField || er.Message != "Missing required field: subject" {
		t.Fatalf("unexpected error: %+v", er)
	}
}

func TestCreateContact_BadJSON(t *testing.T) {
	r, _ := newAPI(t)
	w := do(t, r, http.MethodPost, "/api/contact", "not json", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d", w.Code)
	}
}
