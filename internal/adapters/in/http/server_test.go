package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpadapter "accounts/internal/adapters/in/http"
	"accounts/internal/core/application/usecases/commands"
	"accounts/internal/core/application/usecases/queries"
	"accounts/internal/core/domain/model/kernel"
	"accounts/internal/core/domain/model/user"
	"accounts/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRegisterUserHandler struct {
	mock.Mock
}

func (m *MockRegisterUserHandler) Handle(ctx context.Context, cmd commands.RegisterUserCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockRenameUserHandler struct {
	mock.Mock
}

func (m *MockRenameUserHandler) Handle(ctx context.Context, cmd commands.RenameUserCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockGetRegisteredUserHandler struct {
	mock.Mock
}

func (m *MockGetRegisteredUserHandler) Handle(
	ctx context.Context,
	query queries.GetRegisteredUserQuery,
) (queries.GetRegisteredUserQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetRegisteredUserQueryResponse), args.Error(1)
}

type testEnv struct {
	e        *echo.Echo
	register *MockRegisterUserHandler
	rename   *MockRenameUserHandler
	get      *MockGetRegisteredUserHandler
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()

	env := testEnv{
		register: new(MockRegisterUserHandler),
		rename:   new(MockRenameUserHandler),
		get:      new(MockGetRegisteredUserHandler),
	}

	server := httpadapter.NewServer(env.register, env.rename, env.get)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e, err := httpadapter.NewRouter(t.Context(), server, logger, prometheus.NewRegistry())
	require.NoError(t, err)
	env.e = e

	return env
}

func (env testEnv) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

type errorBody struct {
	Code       int    `json:"code"`
	Message    string `json:"message"`
	Violations []struct {
		Field string `json:"field"`
		Rule  string `json:"rule"`
	} `json:"violations"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestServer_CreateUser(t *testing.T) {
	t.Run("should return 201 with created user", func(t *testing.T) {
		// Given
		env := newTestEnv(t)
		env.register.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.RegisterUserCommand) bool {
			return cmd.Email() == "user@example.com" && cmd.Name() == " Ada "
		})).Return(nil).Once()

		// When
		rec := env.do(http.MethodPost, "/api/v1/users", `{"email":"user@example.com","name":" Ada "}`)

		// Then
		require.Equal(t, http.StatusCreated, rec.Code)

		var body struct {
			ID        string    `json:"id"`
			Email     string    `json:"email"`
			Name      string    `json:"name"`
			CreatedAt time.Time `json:"createdAt"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

		id, err := kernel.ParseID[user.RegisteredUser](body.ID)
		require.NoError(t, err)
		assert.Equal(t, 7, id.Version())
		assert.Equal(t, "user@example.com", body.Email)
		assert.Equal(t, "Ada", body.Name)
		assert.WithinDuration(t, time.Now(), body.CreatedAt, time.Minute)
		assert.Equal(t, "/api/v1/users/"+body.ID, rec.Header().Get(echo.HeaderLocation))
		env.register.AssertExpectations(t)
	})

	t.Run("should return 400 when email is missing", func(t *testing.T) {
		// Given
		env := newTestEnv(t)

		// When
		rec := env.do(http.MethodPost, "/api/v1/users", `{"name":"Ada"}`)

		// Then
		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeError(t, rec)
		require.Len(t, body.Violations, 1)
		assert.Equal(t, "email", body.Violations[0].Field)
		assert.Equal(t, "required", body.Violations[0].Rule)
		env.register.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("should return 400 with every broken field rule", func(t *testing.T) {
		// Given
		env := newTestEnv(t)
		env.register.On("Handle", mock.Anything, mock.Anything).Return(errors.Join(
			errs.NewValidationFailedError("email", "email"),
			errs.NewValidationFailedError("name", "max"),
		)).Once()

		// When
		rec := env.do(http.MethodPost, "/api/v1/users", `{"email":"bad","name":"x"}`)

		// Then
		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeError(t, rec)
		require.Len(t, body.Violations, 2)
		assert.Equal(t, "email", body.Violations[0].Field)
		assert.Equal(t, "email", body.Violations[0].Rule)
		assert.Equal(t, "name", body.Violations[1].Field)
		assert.Equal(t, "max", body.Violations[1].Rule)
		assert.NotContains(t, body.Message, "\n")
	})

	t.Run("should return 409 for taken email", func(t *testing.T) {
		// Given
		env := newTestEnv(t)
		env.register.On("Handle", mock.Anything, mock.Anything).
			Return(errs.NewAlreadyExistsError("email", "user@example.com")).Once()

		// When
		rec := env.do(http.MethodPost, "/api/v1/users", `{"email":"user@example.com"}`)

		// Then
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, http.StatusConflict, decodeError(t, rec).Code)
	})

	t.Run("should return 400 for malformed JSON", func(t *testing.T) {
		// Given
		env := newTestEnv(t)

		// When
		rec := env.do(http.MethodPost, "/api/v1/users", `{"email":`)

		// Then
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should hide unexpected failures", func(t *testing.T) {
		// Given
		env := newTestEnv(t)
		env.register.On("Handle", mock.Anything, mock.Anything).
			Return(errors.New("pq: connection refused")).Once()

		// When
		rec := env.do(http.MethodPost, "/api/v1/users", `{"email":"user@example.com"}`)

		// Then
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "internal server error", decodeError(t, rec).Message)
	})
}

func TestServer_GetUser(t *testing.T) {
	t.Run("should return 200 with read model", func(t *testing.T) {
		// Given
		env := newTestEnv(t)
		id := kernel.NewID[user.RegisteredUser]()
		registeredAt, err := id.Timestamp()
		require.NoError(t, err)

		env.get.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetRegisteredUserQuery) bool {
			return q.UserID() == id
		})).Return(queries.GetRegisteredUserQueryResponse{
			ID:           id,
			Email:        "user@example.com",
			Name:         "Ada",
			RegisteredAt: registeredAt,
		}, nil).Once()

		// When
		rec := env.do(http.MethodGet, "/api/v1/users/"+id.String(), "")

		// Then
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, id.String(), body["id"])
		assert.Equal(t, "user@example.com", body["email"])
		assert.Equal(t, "Ada", body["name"])
		assert.Equal(t, registeredAt.Format(time.RFC3339Nano), body["createdAt"])
	})

	t.Run("should accept uppercase identifiers", func(t *testing.T) {
		// Given
		env := newTestEnv(t)
		id := kernel.NewID[user.RegisteredUser]()
		env.get.On("Handle", mock.Anything, mock.Anything).
			Return(queries.GetRegisteredUserQueryResponse{ID: id, Email: "user@example.com"}, nil).Once()

		// When
		rec := env.do(http.MethodGet, "/api/v1/users/"+strings.ToUpper(id.String()), "")

		// Then
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("should return 400 for malformed identifier", func(t *testing.T) {
		// Given
		env := newTestEnv(t)

		// When
		rec := env.do(http.MethodGet, "/api/v1/users/not-a-uuid", "")

		// Then
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeError(t, rec).Message, `"not-a-uuid"`)
		env.get.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("should return 404 for unknown user", func(t *testing.T) {
		// Given
		env := newTestEnv(t)
		id := kernel.NewID[user.RegisteredUser]()
		env.get.On("Handle", mock.Anything, mock.Anything).
			Return(queries.GetRegisteredUserQueryResponse{}, errs.NewObjectNotFoundError("userID", id.String())).Once()

		// When
		rec := env.do(http.MethodGet, "/api/v1/users/"+id.String(), "")

		// Then
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestServer_RenameUser(t *testing.T) {
	t.Run("should return 204", func(t *testing.T) {
		// Given
		env := newTestEnv(t)
		id := kernel.NewID[user.RegisteredUser]()
		env.rename.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.RenameUserCommand) bool {
			return cmd.UserID() == id && cmd.Name() == "Grace"
		})).Return(nil).Once()

		// When
		rec := env.do(http.MethodPut, "/api/v1/users/"+id.String()+"/name", `{"name":"Grace"}`)

		// Then
		assert.Equal(t, http.StatusNoContent, rec.Code)
		env.rename.AssertExpectations(t)
	})

	t.Run("should return 400 when name is missing", func(t *testing.T) {
		// Given
		env := newTestEnv(t)
		id := kernel.NewID[user.RegisteredUser]()

		// When
		rec := env.do(http.MethodPut, "/api/v1/users/"+id.String()+"/name", `{}`)

		// Then
		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeError(t, rec)
		require.Len(t, body.Violations, 1)
		assert.Equal(t, "name", body.Violations[0].Field)
	})

	t.Run("should return 404 for unknown user", func(t *testing.T) {
		// Given
		env := newTestEnv(t)
		id := kernel.NewID[user.RegisteredUser]()
		env.rename.On("Handle", mock.Anything, mock.Anything).
			Return(errs.NewObjectNotFoundError("userID", id.String())).Once()

		// When
		rec := env.do(http.MethodPut, "/api/v1/users/"+id.String()+"/name", `{"name":"Grace"}`)

		// Then
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("should return 400 for malformed identifier", func(t *testing.T) {
		// Given
		env := newTestEnv(t)

		// When
		rec := env.do(http.MethodPut, "/api/v1/users/123/name", `{"name":"Grace"}`)

		// Then
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRouter_ServiceEndpoints(t *testing.T) {
	t.Run("should report health", func(t *testing.T) {
		rec := newTestEnv(t).do(http.MethodGet, "/health", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Healthy", rec.Body.String())
	})

	t.Run("should serve the API description", func(t *testing.T) {
		rec := newTestEnv(t).do(http.MethodGet, "/api/openapi.json", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Accounts API")
		assert.Contains(t, rec.Body.String(), "/api/v1/users/{id}")
	})

	t.Run("should expose request metrics", func(t *testing.T) {
		// Given
		env := newTestEnv(t)
		env.do(http.MethodGet, "/health", "")

		// When
		rec := env.do(http.MethodGet, "/metrics", "")

		// Then
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "accounts_requests_total")
	})
}

func TestLoadOpenAPI(t *testing.T) {
	doc, err := httpadapter.LoadOpenAPI(t.Context())

	require.NoError(t, err)
	assert.Equal(t, "Accounts API", doc.Info.Title)
	assert.NotNil(t, doc.Paths.Find("/api/v1/users"))
}
