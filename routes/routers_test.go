package routes

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"careerguide/builders"
	"careerguide/constants"
	"careerguide/controllers"
	"careerguide/services"
	"careerguide/services/logger"

	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubModel struct {
	mu    sync.Mutex
	reply string
	err   error
	calls int
}

func (m *stubModel) Name() string { return "stub" }

func (m *stubModel) Configured() bool { return true }

func (m *stubModel) Complete(_ context.Context, _ builders.Prompt) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	return m.reply, m.err
}

type stubChecker struct{ err error }

func (c stubChecker) Name() string                  { return "stub" }
func (c stubChecker) Check(_ context.Context) error { return c.err }

const modelReply = `{"careers":[
 {"title":"Data Engineer","matchPercentage":90,"requiredSkills":["Python","SQL","Spark","Airflow"],"skillGaps":["Kafka","dbt"],"recommendedCourses":["A","B"]},
 {"title":"Backend Developer","matchPercentage":82,"requiredSkills":["Go","SQL","Docker","REST"],"skillGaps":["Kubernetes","Tracing"],"recommendedCourses":["C","D"]},
 {"title":"Analytics Engineer","matchPercentage":76,"requiredSkills":["SQL","dbt","Looker","Stats"],"skillGaps":["Modeling","AB tests"],"recommendedCourses":["E","F"]}
]}`

const annBody = `{"name":"Ann","education":"bachelor","skills":"JS,React","interests":"AI","careerGoals":"become a lead"}`

type testApp struct {
	router *gin.Engine
	model  *stubModel
	store  *services.MemoryStorage
}

func newTestApp(t *testing.T, model *stubModel, checkers ...services.Checker) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := services.NewMemoryStorage()
	sessions := services.NewMemorySessionStore(time.Minute)
	inference := services.NewInferenceClient(model, time.Second)
	log := logger.Nop{}

	careerSvc := services.NewCareerService(services.CareerServiceOptions{Inference: inference, Storage: store, Logger: log})
	chatSvc := services.NewChatService(services.ChatServiceOptions{Inference: inference, Sessions: sessions, Storage: store, Logger: log})
	userSvc := services.NewUserService(services.UserServiceOptions{Storage: store, Logger: log})
	prober := services.NewProber(services.ProberOptions{Provider: "openai", Inference: inference, Logger: log})

	router := gin.New()
	SetupRoutes(router, Controllers{
		Career: controllers.NewCareerController(controllers.CareerControllerOptions{Service: careerSvc, Logger: log}),
		Chat:   controllers.NewChatController(controllers.ChatControllerOptions{Service: chatSvc, Logger: log}),
		User:   controllers.NewUserController(userSvc),
		Health: controllers.NewHealthController(services.NewReadiness(checkers...), prober),
	})
	return &testApp{router: router, model: model, store: store}
}

func (a *testApp) do(method, path, body string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func TestAnalyzeCareerFallbackScenario(t *testing.T) {
	app := newTestApp(t, &stubModel{err: fmt.Errorf("insufficient_quota")})

	first := app.do(http.MethodPost, "/api/analyze-career", annBody)
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, constants.SourceFallback, first.Header().Get(constants.SourceHeader))

	want, err := json.Marshal(services.FallbackCareers())
	require.NoError(t, err)
	assert.JSONEq(t, string(want), first.Body.String())

	second := app.do(http.MethodPost, "/api/analyze-career", annBody)
	assert.Equal(t, first.Body.Bytes(), second.Body.Bytes())
}

func TestAnalyzeCareerModelReply(t *testing.T) {
	app := newTestApp(t, &stubModel{reply: modelReply})

	w := app.do(http.MethodPost, "/api/v1/analyze-career", annBody)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, constants.SourceModel, w.Header().Get(constants.SourceHeader))

	var body struct {
		Careers []struct {
			Title           string `json:"title"`
			MatchPercentage int    `json:"matchPercentage"`
		} `json:"careers"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Careers, 3)
	assert.Equal(t, "Data Engineer", body.Careers[0].Title)
}

func TestAnalyzeCareerValidation(t *testing.T) {
	app := newTestApp(t, &stubModel{reply: modelReply})

	w := app.do(http.MethodPost, "/api/analyze-career", `{"name":"Ann","education":"BSc","skills":"","interests":"Data","careerGoals":"ML"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Invalid input data","errors":[{"field":"skills","message":"Skills are required"}]}`, w.Body.String())

	for _, body := range []string{`{"name":`, ``, `{"name":"Ann","education":"BSc","skills":["Python"],"interests":"Data","careerGoals":"ML"}`} {
		w = app.do(http.MethodPost, "/api/analyze-career", body)
		require.Equal(t, http.StatusBadRequest, w.Code)
		var resp struct {
			Message string `json:"message"`
			Errors  []struct {
				Field string `json:"field"`
			} `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Invalid input data", resp.Message)
		require.Len(t, resp.Errors, 1)
		assert.Equal(t, "body", resp.Errors[0].Field)
	}

	assert.Zero(t, app.model.calls)
}

func TestChatEndpoint(t *testing.T) {
	app := newTestApp(t, &stubModel{err: fmt.Errorf("down")})

	cases := map[string]string{
		"hello":                       services.FallbackGreeting,
		"I want to learn a new skill": services.FallbackSkills,
		"what job should I get":       services.FallbackCareer,
		"xyz":                         services.FallbackGeneric,
	}
	for msg, want := range cases {
		body, _ := json.Marshal(map[string]string{"message": msg})
		w := app.do(http.MethodPost, "/api/chat", string(body))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, constants.SourceFallback, w.Header().Get(constants.SourceHeader))

		respBody, _ := json.Marshal(map[string]string{"response": want})
		assert.JSONEq(t, string(respBody), w.Body.String())
	}
}

func TestChatEndpointRejectsEmptyMessage(t *testing.T) {
	app := newTestApp(t, &stubModel{reply: "unused"})

	for _, body := range []string{`{}`, `{"message":""}`, `{"message":42}`, `not json`} {
		w := app.do(http.MethodPost, "/api/chat", body)
		require.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.JSONEq(t, `{"message":"Message is required"}`, w.Body.String())
	}
	assert.Zero(t, app.model.calls)
}

func TestChatSessionHistory(t *testing.T) {
	app := newTestApp(t, &stubModel{reply: "Learn Go."})

	w := app.do(http.MethodPost, "/api/chat", `{"message":"what next?"}`)
	require.Equal(t, http.StatusOK, w.Code)
	sessionID := w.Header().Get(constants.SessionHeader)
	require.NotEmpty(t, sessionID)

	w = app.do(http.MethodPost, "/api/chat", `{"message":"and then?"}`, constants.SessionHeader, sessionID)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, sessionID, w.Header().Get(constants.SessionHeader))

	w = app.do(http.MethodGet, "/api/chat/history", "", constants.SessionHeader, sessionID)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"sessionId":"`+sessionID+`","turns":[
		{"message":"what next?","isBot":false},
		{"message":"Learn Go.","isBot":true},
		{"message":"and then?","isBot":false},
		{"message":"Learn Go.","isBot":true}
	]}`, w.Body.String())

	w = app.do(http.MethodDelete, "/api/chat/history", "", constants.SessionHeader, sessionID)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = app.do(http.MethodGet, "/api/chat/history", "", constants.SessionHeader, sessionID)
	assert.JSONEq(t, `{"sessionId":"`+sessionID+`","turns":[]}`, w.Body.String())
}

func TestUserRoutes(t *testing.T) {
	app := newTestApp(t, &stubModel{reply: modelReply})

	w := app.do(http.MethodPost, "/api/users", `{"username":"ann","password":"secret1","name":"Ann","skills":["Python"]}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		Data struct {
			ID       uint   `json:"id"`
			Username string `json:"username"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "ann", created.Data.Username)
	assert.NotContains(t, w.Body.String(), "secret1")
	assert.NotContains(t, w.Body.String(), "password")

	w = app.do(http.MethodPost, "/api/users", `{"username":"ann","password":"secret2"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = app.do(http.MethodPost, "/api/users", `{"username":"a","password":"x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	id := fmt.Sprint(created.Data.ID)
	w = app.do(http.MethodPost, "/api/analyze-career",
		`{"name":"Ann","education":"BSc","skills":"Python","interests":"Data","careerGoals":"ML","userId":`+id+`}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = app.do(http.MethodGet, "/api/users/"+id+"/careers", "")
	require.Equal(t, http.StatusOK, w.Code)
	var careers struct {
		Data []struct {
			Title string `json:"title"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &careers))
	assert.Len(t, careers.Data, 3)

	w = app.do(http.MethodGet, "/api/users/by-username/ann", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = app.do(http.MethodGet, "/api/users/999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = app.do(http.MethodGet, "/api/users/abc/chat-history", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthRoutes(t *testing.T) {
	app := newTestApp(t, &stubModel{reply: "ok"})

	w := app.do(http.MethodGet, "/ping", "")
	assert.Equal(t, "pong", w.Body.String())

	w = app.do(http.MethodGet, "/api/health", "")
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = app.do(http.MethodGet, "/api/ready", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ready"`)
	assert.Contains(t, w.Body.String(), `"provider"`)

	down := newTestApp(t, &stubModel{reply: "ok"}, stubChecker{err: fmt.Errorf("connection refused")})
	w = down.do(http.MethodGet, "/api/ready", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"not_ready"`)
}
