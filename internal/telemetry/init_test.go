package telemetry

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
)

func TestInitOpenTelemetry_Initialize_Close(t *testing.T) {
	init := &InitOpenTelemetry{Logger: log.New(&strings.Builder{}, "", 0), ServiceName: "duoread-companion", TracesEndpoint: "-", MetricsEndpoint: "-"}
	ctx, err := init.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)
	init.Close()
}

func TestInitHttpClient_Initialize(t *testing.T) {
	init := InitHttpClient{Logger: log.New(&strings.Builder{}, "", 0), RetryMax: 3, RetryWaitMax: time.Second}
	ctx, err := init.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	client, err := depend.Resolve[*http.Client]()
	assert.NoError(t, err)
	assert.NotNil(t, client.Transport)
}

func TestDontRetry500StatusPolicy(t *testing.T) {
	always := func(context.Context, *http.Response, error) (bool, error) { return true, nil }
	policy := dontRetry500StatusPolicy(always)

	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := map[string]struct {
		ctx       context.Context
		resp      *http.Response
		err       error
		wantRetry bool
	}{
		"internal-server-error": {
			ctx:  context.Background(),
			resp: &http.Response{StatusCode: http.StatusInternalServerError},
		},
		"bad-gateway-delegates": {
			ctx:       context.Background(),
			resp:      &http.Response{StatusCode: http.StatusBadGateway},
			wantRetry: true,
		},
		"transport-error-without-response": {
			ctx:       context.Background(),
			err:       errors.New("connection refused"),
			wantRetry: true,
		},
		"canceled-context": {
			ctx:  canceled,
			resp: &http.Response{StatusCode: http.StatusBadGateway},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			retry, _ := policy(tt.ctx, tt.resp, tt.err)
			assert.Equal(t, tt.wantRetry, retry)
		})
	}
}
