package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"resume-builder/internal/model"

	"github.com/stretchr/testify/require"
)

func testClient(srv *httptest.Server) *Client {
	return &Client{BaseURL: srv.URL, HTTP: srv.Client()}
}

func TestCreateReturnsDocumentID(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/user-resumes", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"data":{"documentId":"doc-1","resumeId":"corr-1","title":"My Resume","userEmail":"a@b.c"}}`))
	}))
	defer srv.Close()

	rec, err := testClient(srv).Create(context.Background(), "a@b.c", "Ada", "My Resume", "corr-1")
	require.NoError(t, err)
	require.Equal(t, "doc-1", rec.DocumentID)

	data := got["data"].(map[string]interface{})
	require.Equal(t, "My Resume", data["title"])
	require.Equal(t, "corr-1", data["resumeId"])
	require.Equal(t, "a@b.c", data["userEmail"])
}

func TestCreateMissingDocumentIDIsAFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"data":{"title":"My Resume"}}`))
	}))
	defer srv.Close()

	_, err := testClient(srv).Create(context.Background(), "a@b.c", "Ada", "My Resume", "corr-1")
	require.ErrorIs(t, err, ErrMissingDocumentID)
}

func TestCreateSurfacesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":{"message":"title too long"}}`))
	}))
	defer srv.Close()

	_, err := testClient(srv).Create(context.Background(), "a@b.c", "Ada", "My Resume", "corr-1")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	require.Equal(t, "title too long", apiErr.Message)
	require.Contains(t, apiErr.Error(), "title too long")
}

func TestListByOwnerSendsQueryParam(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "user+tag@example.com", r.URL.Query().Get("userEmail"))
		w.Write([]byte(`{"data":[{"documentId":"doc-1","title":"One"},{"documentId":"doc-2","title":"Two"}]}`))
	}))
	defer srv.Close()

	recs, err := testClient(srv).ListByOwner(context.Background(), "user+tag@example.com")
	require.NoError(t, err)
	require.Len(t, recs, 2)
	require.Equal(t, "doc-2", recs[1].DocumentID)
	require.NotNil(t, recs[0].Skills, "lists are defaulted, never nil")
}

func TestUpdateSendsEnvelopeAndPatchOnly(t *testing.T) {
	var got map[string]json.RawMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/user-resumes/doc-1", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"data":{"documentId":"doc-1","summary":"updated"}}`))
	}))
	defer srv.Close()

	patch := model.SummaryPatch("updated")
	rec, err := testClient(srv).UpdateByID(context.Background(), "doc-1", patch)
	require.NoError(t, err)
	require.Equal(t, "updated", rec.Summary)

	require.Contains(t, got, "data")
	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(got["data"], &data))
	require.Equal(t, map[string]interface{}{"summary": "updated"}, data, "patch carries only the edited field")
}

func TestUpdateListPatchOmitsEntryIDs(t *testing.T) {
	var body map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Write([]byte(`{"data":{"documentId":"doc-1"}}`))
	}))
	defer srv.Close()

	patch := model.SkillsPatch([]model.Skill{{ID: "srv-9", Name: "Go", Rating: 5}})
	_, err := testClient(srv).UpdateByID(context.Background(), "doc-1", patch)
	require.NoError(t, err)

	skills := body["data"].(map[string]interface{})["skills"].([]interface{})
	require.Len(t, skills, 1)
	require.NotContains(t, skills[0].(map[string]interface{}), "id")
}

func TestDeleteTreats404AsSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":{"message":"not found"}}`))
	}))
	defer srv.Close()

	require.NoError(t, testClient(srv).DeleteByID(context.Background(), "doc-1"))
}

func TestDeleteSurfacesOtherFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"message":"boom"}}`))
	}))
	defer srv.Close()

	err := testClient(srv).DeleteByID(context.Background(), "doc-1")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
}

func TestAuthorizationHeaderWhenAPIKeySet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		w.Write([]byte(`{"data":{"documentId":"doc-1"}}`))
	}))
	defer srv.Close()

	c := testClient(srv)
	c.APIKey = "secret"
	_, err := c.GetByID(context.Background(), "doc-1")
	require.NoError(t, err)
}
