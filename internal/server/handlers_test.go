package server

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/types"
)

const testResume = `Summary
Software engineer with 6 years of experience building data platforms.

Experience
Developed streaming pipelines in Python processing 4 million events daily.
Led migration to Kubernetes improving deployment reliability across 12 services.

Skills
Python, SQL, Docker, Kubernetes, AWS, leadership.`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	s, err := New(Config{Port: 0})
	require.NoError(t, err)
	t.Cleanup(s.rateLimiter.Stop)
	ts := httptest.NewServer(s.httpServer.Handler)
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestHandleHealth(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "ok", body["status"])
}

func TestHandleListRoles(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/roles")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var roles []map[string]string
	decodeBody(t, resp, &roles)
	assert.Len(t, roles, 6)
}

func TestHandleGetRole(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/roles/software-engineer")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var job types.JobRequirements
	decodeBody(t, resp, &job)
	assert.Equal(t, "Software Engineer", job.Title)
	assert.NotEmpty(t, job.RequiredSkills)
}

func TestHandleGetRole_Unknown(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/roles/astronaut")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandleAnalyze_WithRole(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/analyze", types.AnalyzeRequest{
		ResumeText: testResume,
		Role:       "software-engineer",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body AnalyzeResponse
	decodeBody(t, resp, &body)
	require.NotNil(t, body.Result)
	require.NotNil(t, body.Job)
	assert.Equal(t, "Software Engineer", body.Job.Title)
	assert.Contains(t, body.Result.MatchedSkills, "Python")
	assert.NotEmpty(t, body.Result.Suggestions)
}

func TestHandleAnalyze_WithDescription(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/analyze", types.AnalyzeRequest{
		ResumeText:     testResume,
		JobDescription: "Hiring a Python engineer with Docker and AWS experience.",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body AnalyzeResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, "Custom Role", body.Job.Title)
}

func TestHandleAnalyze_InvalidBody(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/analyze", "application/json", strings.NewReader("{not json"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleAnalyze_NoJobInput(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/analyze", types.AnalyzeRequest{ResumeText: testResume})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleAnalyze_UnknownRole(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/analyze", types.AnalyzeRequest{
		ResumeText: testResume,
		Role:       "astronaut",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandleAnalyzeUpload(t *testing.T) {
	ts := newTestServer(t)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("resume", "resume.txt")
	require.NoError(t, err)
	_, err = io.WriteString(part, testResume)
	require.NoError(t, err)
	require.NoError(t, writer.WriteField("role", "software-engineer"))
	require.NoError(t, writer.Close())

	resp, err := http.Post(ts.URL+"/analyze/upload", writer.FormDataContentType(), &buf)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body AnalyzeResponse
	decodeBody(t, resp, &body)
	assert.Contains(t, body.Result.MatchedSkills, "Python")
}

func TestHandleAnalyzeUpload_MissingFile(t *testing.T) {
	ts := newTestServer(t)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("role", "software-engineer"))
	require.NoError(t, writer.Close())

	resp, err := http.Post(ts.URL+"/analyze/upload", writer.FormDataContentType(), &buf)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleCompare(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/analyze/compare", CompareRequest{ResumeText: testResume})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body CompareResponse
	decodeBody(t, resp, &body)
	require.Len(t, body.Comparisons, 6)
	for i := 1; i < len(body.Comparisons); i++ {
		assert.GreaterOrEqual(t,
			body.Comparisons[i-1].Result.OverallScore,
			body.Comparisons[i].Result.OverallScore)
	}
}

func TestHandleCompare_MissingResume(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/analyze/compare", CompareRequest{})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleFeedback_StorageNotConfigured(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/feedback", types.FeedbackRequest{
		Rating:   4,
		Category: "accuracy",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	summaryResp, err := http.Get(ts.URL + "/feedback/summary")
	require.NoError(t, err)
	defer summaryResp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, summaryResp.StatusCode)
}

func TestCORSHeaders(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}
