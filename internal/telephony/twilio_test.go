package telephony_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"railassist/backend/internal/config"
	"railassist/backend/internal/telephony"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func testConfig() config.TwilioConfig {
	return config.TwilioConfig{
		AccountSID:      "AC00000000000000000000000000000000",
		AuthToken:       "token",
		FromNumber:      "+15550000001",
		ForwardToNumber: "+15550000002",
	}
}

func TestPlaceCallPostsCallRequest(t *testing.T) {
	var gotPath string
	var gotForm url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		assert.NoError(t, r.ParseForm())
		gotForm = r.PostForm

		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "AC00000000000000000000000000000000", user)
		assert.Equal(t, "token", pass)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"sid":"CA123"}`))
	}))
	defer server.Close()

	service := telephony.NewService(testConfig(), time.Second, zap.NewNop())
	service.SetBaseURL(server.URL)

	err := service.PlaceCall(context.Background(), "+15557654321")

	assert.NoError(t, err)
	assert.Equal(t, "/2010-04-01/Accounts/AC00000000000000000000000000000000/Calls.json", gotPath)
	assert.Equal(t, "+15550000002", gotForm.Get("To"))
	assert.Equal(t, "+15550000001", gotForm.Get("From"))
	assert.NotEmpty(t, gotForm.Get("Url"))
}

func TestPlaceCallAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"code":20003}`))
	}))
	defer server.Close()

	service := telephony.NewService(testConfig(), time.Second, zap.NewNop())
	service.SetBaseURL(server.URL)

	err := service.PlaceCall(context.Background(), "+15557654321")

	assert.ErrorIs(t, err, telephony.ErrCallFailed)
}

func TestPlaceCallTransportError(t *testing.T) {
	service := telephony.NewService(testConfig(), 100*time.Millisecond, zap.NewNop())
	service.SetBaseURL("http://127.0.0.1:1")

	err := service.PlaceCall(context.Background(), "+15557654321")

	assert.ErrorIs(t, err, telephony.ErrCallFailed)
}

func TestEnabled(t *testing.T) {
	service := telephony.NewService(testConfig(), time.Second, zap.NewNop())
	assert.True(t, service.Enabled())

	disabled := telephony.NewService(config.TwilioConfig{}, time.Second, zap.NewNop())
	assert.False(t, disabled.Enabled())
}
