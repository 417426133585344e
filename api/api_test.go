package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	jwt "github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/bitmark-inc/volunteer-api/api/mocks"
)

var testSecret = []byte("test-secret")

type testServer struct {
	*Server
	store    *mocks.MockVolunteerCore
	resolver *mocks.MockCityResolver
	router   *gin.Engine
}

func newTestServer(t *testing.T, pageSize int) (*testServer, func()) {
	ctl := gomock.NewController(t)

	a := mocks.NewMockVolunteerCore(ctl)
	r := mocks.NewMockCityResolver(ctl)

	s := &Server{
		store:        a,
		cityResolver: r,
		jwtSecret:    testSecret,
		pageSize:     pageSize,
	}

	gin.SetMode(gin.TestMode)
	return &testServer{
		Server:   s,
		store:    a,
		resolver: r,
		router:   s.setupRouter(),
	}, ctl.Finish
}

func token(t *testing.T, subject string, secret []byte) string {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
		Subject: subject,
	}).SignedString(secret)
	if err != nil {
		t.Fatal(err)
	}
	return signed
}

// do sends a request to the router. A non-nil user is authenticated with a
// bearer token.
func (s *testServer) do(t *testing.T, method, path string, body interface{}, user *uuid.UUID) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if user != nil {
		req.Header.Set("Authorization", "Bearer "+token(t, user.String(), testSecret))
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	return resp
}
