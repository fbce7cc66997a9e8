package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"healthcare-clinic/internal/dto"
	"healthcare-clinic/internal/middleware"
	"healthcare-clinic/internal/model"
	"healthcare-clinic/internal/service"
	"healthcare-clinic/internal/store"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type structValidator struct{ v *validator.Validate }

func (s structValidator) Validate(i any) error { return s.v.Struct(i) }

type errBinder struct{}

func (errBinder) Bind(any, echo.Context) error { return errors.New("bind") }

type fakeIssuer struct {
	got model.User
	err error
}

func (f *fakeIssuer) Issue(u model.User) (string, error) {
	f.got = u
	if f.err != nil {
		return "", f.err
	}
	return "tok-" + u.ID, nil
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = structValidator{v: validator.New()}
	return e
}

func newJSONCtx(e *echo.Echo, method, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func message(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var he dto.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &he))
	return he.Message
}

/* ---------- login ---------- */

func TestLoginHandler(t *testing.T) {
	hash, err := service.HashPassword("pw")
	require.NoError(t, err)
	stored := &model.User{ID: "u1", Username: "Alice", FullName: "Alice Chen", Email: "alice@example.com", PasswordHash: hash, Role: model.RoleAdmin}

	t.Run("bind error", func(t *testing.T) {
		e := newEcho()
		e.Binder = errBinder{}
		ctx, rec := newJSONCtx(e, http.MethodPost, "")
		require.NoError(t, LoginHandler(&store.FakeStore{}, &fakeIssuer{})(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing password", func(t *testing.T) {
		ctx, rec := newJSONCtx(newEcho(), http.MethodPost, `{"username":"a"}`)
		require.NoError(t, LoginHandler(&store.FakeStore{}, &fakeIssuer{})(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "Missing credentials", message(t, rec))
	})

	t.Run("bootstrap never touches storage", func(t *testing.T) {
		issuer := &fakeIssuer{}
		ctx, rec := newJSONCtx(newEcho(), http.MethodPost, `{"username":"admin","password":"admin123"}`)
		require.NoError(t, LoginHandler(&store.FakeStore{}, issuer)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp dto.LoginResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "tok-demo", resp.Token)
		require.Equal(t, "demo", resp.User.ID)
		require.Equal(t, "Default Admin", resp.User.FullName)
		require.Equal(t, model.RoleAdmin, issuer.got.Role)
	})

	t.Run("unknown user", func(t *testing.T) {
		st := &store.FakeStore{GetUserByUsernameFn: func(context.Context, string) (*model.User, error) {
			return nil, store.ErrNotFound
		}}
		ctx, rec := newJSONCtx(newEcho(), http.MethodPost, `{"username":"bob","password":"pw"}`)
		require.NoError(t, LoginHandler(st, &fakeIssuer{})(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, invalidCredentials, message(t, rec))
	})

	t.Run("wrong password has same message", func(t *testing.T) {
		st := &store.FakeStore{GetUserByUsernameFn: func(context.Context, string) (*model.User, error) {
			return stored, nil
		}}
		ctx, rec := newJSONCtx(newEcho(), http.MethodPost, `{"username":"alice","password":"bad"}`)
		require.NoError(t, LoginHandler(st, &fakeIssuer{})(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, invalidCredentials, message(t, rec))
	})

	t.Run("storage error", func(t *testing.T) {
		st := &store.FakeStore{GetUserByUsernameFn: func(context.Context, string) (*model.User, error) {
			return nil, errors.New("db down")
		}}
		ctx, rec := newJSONCtx(newEcho(), http.MethodPost, `{"username":"alice","password":"pw"}`)
		require.NoError(t, LoginHandler(st, &fakeIssuer{})(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("issue error", func(t *testing.T) {
		st := &store.FakeStore{GetUserByUsernameFn: func(context.Context, string) (*model.User, error) {
			return stored, nil
		}}
		ctx, rec := newJSONCtx(newEcho(), http.MethodPost, `{"username":"alice","password":"pw"}`)
		require.NoError(t, LoginHandler(st, &fakeIssuer{err: errors.New("sign")})(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		st := &store.FakeStore{GetUserByUsernameFn: func(_ context.Context, username string) (*model.User, error) {
			require.Equal(t, "ALICE", username)
			u := *stored
			return &u, nil
		}}
		ctx, rec := newJSONCtx(newEcho(), http.MethodPost, `{"username":"ALICE","password":"pw"}`)
		require.NoError(t, LoginHandler(st, &fakeIssuer{})(ctx))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp dto.LoginResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "tok-u1", resp.Token)
		require.Equal(t, "alice@example.com", resp.User.Email)
		require.NotContains(t, rec.Body.String(), hash)
	})
}

/* ---------- signup ---------- */

const validSignup = `{"fullName":"Bob Lin","email":"Bob@Example.com","username":"bob","password":"pw","code":"open-sesame"}`

func TestSignupHandler(t *testing.T) {
	t.Run("missing fields checked before code", func(t *testing.T) {
		ctx, rec := newJSONCtx(newEcho(), http.MethodPost, `{"username":"bob"}`)
		require.NoError(t, SignupHandler(&store.FakeStore{}, "")(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "Missing required fields", message(t, rec))
	})

	t.Run("disabled", func(t *testing.T) {
		ctx, rec := newJSONCtx(newEcho(), http.MethodPost, validSignup)
		require.NoError(t, SignupHandler(&store.FakeStore{}, "")(ctx))
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("wrong code", func(t *testing.T) {
		ctx, rec := newJSONCtx(newEcho(), http.MethodPost, validSignup)
		require.NoError(t, SignupHandler(&store.FakeStore{}, "other")(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("taken", func(t *testing.T) {
		st := &store.FakeStore{UserExistsFn: func(_ context.Context, username, email string) (bool, error) {
			require.Equal(t, "bob", username)
			require.Equal(t, "Bob@Example.com", email)
			return true, nil
		}}
		ctx, rec := newJSONCtx(newEcho(), http.MethodPost, validSignup)
		require.NoError(t, SignupHandler(st, "open-sesame")(ctx))
		require.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("race on insert", func(t *testing.T) {
		st := &store.FakeStore{
			UserExistsFn: func(context.Context, string, string) (bool, error) { return false, nil },
			CreateUserFn: func(context.Context, *model.User) error { return store.ErrConflict },
		}
		ctx, rec := newJSONCtx(newEcho(), http.MethodPost, validSignup)
		require.NoError(t, SignupHandler(st, "open-sesame")(ctx))
		require.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		var created *model.User
		st := &store.FakeStore{
			UserExistsFn: func(context.Context, string, string) (bool, error) { return false, nil },
			CreateUserFn: func(_ context.Context, u *model.User) error { created = u; return nil },
		}
		ctx, rec := newJSONCtx(newEcho(), http.MethodPost, validSignup)
		require.NoError(t, SignupHandler(st, "open-sesame")(ctx))
		require.Equal(t, http.StatusCreated, rec.Code)
		require.JSONEq(t, `{"message":"Signup successful"}`, rec.Body.String())

		require.Equal(t, "bob@example.com", created.Email)
		require.Equal(t, model.RoleAdmin, created.Role)
		require.NotEqual(t, "pw", created.PasswordHash)
		require.NoError(t, service.ComparePassword(created.PasswordHash, "pw"))
	})
}

/* ---------- me / admins ---------- */

func withPrincipal(ctx echo.Context, id string) {
	ctx.Set(middleware.ContextUserKey, &service.Claims{ID: id, Role: model.RoleAdmin})
}

func TestMeHandler(t *testing.T) {
	t.Run("no principal", func(t *testing.T) {
		ctx, rec := newJSONCtx(newEcho(), http.MethodGet, "")
		require.NoError(t, MeHandler(&store.FakeStore{})(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("bootstrap", func(t *testing.T) {
		ctx, rec := newJSONCtx(newEcho(), http.MethodGet, "")
		withPrincipal(ctx, "demo")
		require.NoError(t, MeHandler(&store.FakeStore{})(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "Default Admin")
	})

	t.Run("deleted user", func(t *testing.T) {
		st := &store.FakeStore{GetUserByIDFn: func(context.Context, string) (*model.User, error) {
			return nil, store.ErrNotFound
		}}
		ctx, rec := newJSONCtx(newEcho(), http.MethodGet, "")
		withPrincipal(ctx, "u9")
		require.NoError(t, MeHandler(st)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("stored user", func(t *testing.T) {
		st := &store.FakeStore{GetUserByIDFn: func(_ context.Context, id string) (*model.User, error) {
			return &model.User{ID: id, Username: "alice", Email: "alice@example.com"}, nil
		}}
		ctx, rec := newJSONCtx(newEcho(), http.MethodGet, "")
		withPrincipal(ctx, "u1")
		require.NoError(t, MeHandler(st)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp dto.UserResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "u1", resp.ID)
		require.Equal(t, model.RoleAdmin, resp.Role)
	})
}

func TestListAdminsHandler(t *testing.T) {
	t.Cleanup(func() { timeNow = time.Now })
	fixed := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return fixed }

	st := &store.FakeStore{ListUsersByRoleFn: func(_ context.Context, role model.Role) ([]model.User, error) {
		require.Equal(t, model.RoleAdmin, role)
		return []model.User{{ID: "u1", Username: "alice"}}, nil
	}}
	ctx, rec := newJSONCtx(newEcho(), http.MethodGet, "")
	require.NoError(t, ListAdminsHandler(st)(ctx))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.ListResponse[dto.AdminResponse]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 2)
	require.Equal(t, "demo", resp.Items[0].ID)
	require.Equal(t, "demo@example.com", resp.Items[0].Email)
	require.True(t, fixed.Equal(resp.Items[0].CreatedAt))
	require.Equal(t, "u1", resp.Items[1].ID)

	st.ListUsersByRoleFn = func(context.Context, model.Role) ([]model.User, error) {
		return nil, errors.New("boom")
	}
	ctx, rec = newJSONCtx(newEcho(), http.MethodGet, "")
	require.NoError(t, ListAdminsHandler(st)(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
