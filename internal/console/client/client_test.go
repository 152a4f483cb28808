package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/leadtrack/internal/entity"
	"github.com/xavierca1/leadtrack/internal/usecase"
)

func TestListLeads(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/leads", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]entity.Lead{
			{ID: "2", Name: "B", Email: "b@x.com", Status: entity.StatusNew},
			{ID: "1", Name: "A", Email: "a@x.com", Status: entity.StatusClosedWon},
		})
	}))
	defer srv.Close()

	c := New(srv.URL + "/api/")

	leads, err := c.ListLeads(context.Background())

	assert.NoError(t, err)
	assert.Len(t, leads, 2)
	assert.Equal(t, "2", leads[0].ID)
}

func TestListLeadsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"message": "Failed to retrieve leads"})
	}))
	defer srv.Close()

	c := New(srv.URL + "/api")

	_, err := c.ListLeads(context.Background())

	var apiErr *APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.EqualError(t, err, "Failed to retrieve leads")
}

func TestCreateLead(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var input usecase.CreateLeadInput
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&input))
		assert.Equal(t, "Jane", input.Name)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(entity.Lead{ID: "lead-1", Name: input.Name, Email: input.Email, Status: entity.StatusNew})
	}))
	defer srv.Close()

	c := New(srv.URL + "/api")

	lead, err := c.CreateLead(context.Background(), usecase.CreateLeadInput{Name: "Jane", Email: "jane@x.com"})

	assert.NoError(t, err)
	assert.Equal(t, "lead-1", lead.ID)
}

func TestCreateLeadConflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "Email already exists"})
	}))
	defer srv.Close()

	c := New(srv.URL + "/api")

	_, err := c.CreateLead(context.Background(), usecase.CreateLeadInput{Name: "J", Email: "jane@x.com"})

	assert.EqualError(t, err, "Email already exists")
}

func TestCreateLeadErrorWithoutMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.URL + "/api")

	_, err := c.CreateLead(context.Background(), usecase.CreateLeadInput{Name: "J", Email: "jane@x.com"})

	assert.EqualError(t, err, "request failed (status 502)")
}
