package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"resumeforge/internal/background"
	"resumeforge/internal/config"
	"resumeforge/internal/llm"
	"resumeforge/internal/normalizer"
	"resumeforge/internal/templates"
	"resumeforge/pkg/models"
)

// fakeTaskManager records submissions and serves canned results
type fakeTaskManager struct {
	submitted []string
	submitErr error
	results   map[string]*background.TaskResult
}

func (f *fakeTaskManager) Start(ctx context.Context) error { return nil }
func (f *fakeTaskManager) Stop(ctx context.Context) error  { return nil }
func (f *fakeTaskManager) SubmitEnhanceTask(ctx context.Context, processID string, request models.EnhanceResumeRequest, llmManager *llm.Manager) error {
	if f.submitErr != nil {
		return f.submitErr
	}
	f.submitted = append(f.submitted, processID)
	return nil
}
func (f *fakeTaskManager) GetTaskResult(ctx context.Context, processID string) (*background.TaskResult, error) {
	result, ok := f.results[processID]
	if !ok {
		return nil, background.ErrTaskNotFound
	}
	return result, nil
}
func (f *fakeTaskManager) GetTaskStatus(ctx context.Context, processID string) (background.TaskStatus, error) {
	result, err := f.GetTaskResult(ctx, processID)
	if err != nil {
		return "", err
	}
	return result.Status, nil
}
func (f *fakeTaskManager) ListTasks(ctx context.Context) ([]*background.TaskResult, error) {
	return nil, nil
}
func (f *fakeTaskManager) IsHealthy() bool { return true }

func newJSONContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func TestRenderResumeHandler(t *testing.T) {
	reg := templates.NewRegistry()
	norm := normalizer.New()
	handler := RenderResumeHandler(reg, norm)

	body := `{
		"template_id": "minimal-clean",
		"resume": {"personalInfo": {"fullName": "Jane Doe", "email": "jane@example.com", "phone": "", "location": ""}, "summary": "Engineer."}
	}`
	c, rec := newJSONContext(t, http.MethodPost, "/api/v1/resume/render", body)
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp models.RenderResumeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Success || !strings.Contains(resp.HTML, "Jane Doe") {
		t.Errorf("unexpected response: success=%v html contains name=%v", resp.Success, strings.Contains(resp.HTML, "Jane Doe"))
	}
}

func TestRenderResumeHandlerErrors(t *testing.T) {
	reg := templates.NewRegistry()
	norm := normalizer.New()
	handler := RenderResumeHandler(reg, norm)

	tests := []struct {
		name     string
		body     string
		wantCode int
		wantErr  string
	}{
		{
			name:     "missing template id",
			body:     `{"resume": {"personalInfo": {"fullName": "J", "email": "", "phone": "", "location": ""}}}`,
			wantCode: http.StatusBadRequest,
			wantErr:  "validation_failed",
		},
		{
			name:     "unknown template",
			body:     `{"template_id": "does-not-exist", "resume": {"personalInfo": {"fullName": "J", "email": "", "phone": "", "location": ""}}}`,
			wantCode: http.StatusNotFound,
			wantErr:  "template_not_found",
		},
		{
			name:     "no document",
			body:     `{"template_id": "minimal-clean"}`,
			wantCode: http.StatusBadRequest,
			wantErr:  "no_resume_provided",
		},
		{
			name:     "malformed json",
			body:     `{"template_id":`,
			wantCode: http.StatusBadRequest,
			wantErr:  "invalid_request",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newJSONContext(t, http.MethodPost, "/api/v1/resume/render", tt.body)
			if err := handler(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != tt.wantCode {
				t.Errorf("status = %d, want %d (body %s)", rec.Code, tt.wantCode, rec.Body.String())
			}
			var resp models.ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatal(err)
			}
			if resp.Error != tt.wantErr {
				t.Errorf("error code = %q, want %q", resp.Error, tt.wantErr)
			}
		})
	}
}

func TestExportResumeHandler(t *testing.T) {
	cfg := &config.Config{}
	cfg.Export.ScriptURL = "https://cdn.example.com/html2pdf.min.js"
	handler := ExportResumeHandler(cfg, templates.NewRegistry(), normalizer.New())

	body := `{
		"template_id": "modern-professional",
		"filename": "My Resume",
		"resume": {"personalInfo": {"fullName": "Jane Doe", "email": "jane@example.com", "phone": "", "location": ""}}
	}`
	c, rec := newJSONContext(t, http.MethodPost, "/api/v1/resume/export", body)
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp models.ExportResumeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Filename != "My-Resume.pdf" {
		t.Errorf("filename = %q", resp.Filename)
	}
	if !strings.Contains(resp.HTML, cfg.Export.ScriptURL) {
		t.Error("export HTML missing conversion script")
	}
}

func TestExportResumeHandlerWithoutScriptURL(t *testing.T) {
	cfg := &config.Config{}
	handler := ExportResumeHandler(cfg, templates.NewRegistry(), normalizer.New())

	body := `{
		"template_id": "modern-professional",
		"resume": {"personalInfo": {"fullName": "Jane Doe", "email": "jane@example.com", "phone": "", "location": ""}}
	}`
	c, rec := newJSONContext(t, http.MethodPost, "/api/v1/resume/export", body)
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503 (body %s)", rec.Code, rec.Body.String())
	}

	var resp models.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Error != "export_error" {
		t.Errorf("error code = %q, want export_error", resp.Error)
	}
}

func TestEnhanceResumeHandler(t *testing.T) {
	fake := &fakeTaskManager{}
	handler := EnhanceResumeHandler(fake, nil)

	c, rec := newJSONContext(t, http.MethodPost, "/api/v1/resume/enhance", `{"text": "Jane Doe, engineer at Acme"}`)
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202 (body %s)", rec.Code, rec.Body.String())
	}

	var resp models.AsyncEnhanceResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Status != models.AsyncStatusAccepted {
		t.Errorf("status = %q, want ACCEPTED", resp.Status)
	}
	if len(fake.submitted) != 1 || fake.submitted[0] != resp.ProcessID {
		t.Errorf("task not submitted with returned process id %q", resp.ProcessID)
	}
	if !strings.HasPrefix(resp.ProcessID, "enh_") {
		t.Errorf("process id = %q, want enh_ prefix", resp.ProcessID)
	}
}

func TestEnhanceResumeHandlerRejectsEmptyText(t *testing.T) {
	fake := &fakeTaskManager{}
	handler := EnhanceResumeHandler(fake, nil)

	c, rec := newJSONContext(t, http.MethodPost, "/api/v1/resume/enhance", `{"text": ""}`)
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if len(fake.submitted) != 0 {
		t.Error("task submitted despite failed validation")
	}
}

func TestGetTaskStatusHandler(t *testing.T) {
	completed := time.Now()
	elapsed := 3 * time.Second
	fake := &fakeTaskManager{
		results: map[string]*background.TaskResult{
			"enh_done": {
				ProcessID:      "enh_done",
				Type:           background.TaskTypeEnhance,
				Status:         background.TaskStatusSuccess,
				CreatedAt:      completed.Add(-elapsed),
				CompletedAt:    &completed,
				ProcessingTime: &elapsed,
				Data: &background.EnhanceTaskData{
					Resume: &models.ResumeDocument{Summary: "Enhanced."},
				},
			},
		},
	}
	handler := GetTaskStatusHandler(fake)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks/enh_done", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("enh_done")

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp models.AsyncTaskStatusResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Status != models.AsyncStatusSuccess {
		t.Errorf("status = %q, want SUCCESS", resp.Status)
	}
	if resp.Data == nil {
		t.Error("completion data missing from response")
	}
}

func TestGetTaskStatusHandlerNotFound(t *testing.T) {
	handler := GetTaskStatusHandler(&fakeTaskManager{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks/enh_missing", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("enh_missing")

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestListTemplatesHandler(t *testing.T) {
	handler := ListTemplatesHandler(templates.NewRegistry())

	c, rec := newJSONContext(t, http.MethodGet, "/api/v1/templates", "")
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp TemplateListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Count != 5 {
		t.Errorf("count = %d, want the full catalog", resp.Count)
	}
}

func TestListTemplatesHandlerCategoryFilter(t *testing.T) {
	handler := ListTemplatesHandler(templates.NewRegistry())

	c, rec := newJSONContext(t, http.MethodGet, "/api/v1/templates?category=creative", "")
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp TemplateListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Count != 1 || resp.Templates[0].ID != "creative-designer" {
		t.Errorf("filtered catalog = %+v", resp.Templates)
	}
}

func TestGetTemplateHandler(t *testing.T) {
	handler := GetTemplateHandler(templates.NewRegistry())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/templates/tech-specialist", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("tech-specialist")

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var desc templates.Descriptor
	if err := json.Unmarshal(rec.Body.Bytes(), &desc); err != nil {
		t.Fatal(err)
	}
	if desc.ID != "tech-specialist" || desc.Category != templates.CategoryTechnical {
		t.Errorf("descriptor = %+v", desc)
	}
}

func TestGetTemplateHandlerNotFound(t *testing.T) {
	handler := GetTemplateHandler(templates.NewRegistry())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/templates/none", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("none")

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
