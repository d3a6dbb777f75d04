package config_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/m-mizutani/dsfetch/pkg/cli/config"
	"github.com/m-mizutani/dsfetch/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func TestSentry_Disabled(t *testing.T) {
	s := &config.Sentry{}
	gt.NoError(t, s.Configure())
	gt.V(t, s.Enabled()).Equal(false)
	gt.V(t, s.Report(errors.New("boom"))).Equal(false)
}

func TestSentry_InvalidDSN(t *testing.T) {
	s := &config.Sentry{DSN: "not a dsn"}
	err := s.Configure()
	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, types.ErrTagConfiguration))
	gt.V(t, s.Enabled()).Equal(false)
}

func TestSentry_Report(t *testing.T) {
	var received atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	dsn := strings.Replace(server.URL, "http://", "http://public@", 1) + "/1"
	s := &config.Sentry{DSN: dsn, Environment: "test"}
	gt.NoError(t, s.Configure())
	gt.True(t, s.Enabled())

	gt.True(t, s.Report(goerr.New("download failed", goerr.T(types.ErrTagNetwork))))
	gt.Number(t, received.Load()).Greater(0)
}
