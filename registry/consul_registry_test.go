package registry

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/justin-mavity/usermodel/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubConsul fakes the handful of consul agent endpoints the registry talks to.
type stubConsul struct {
	registrations   []map[string]interface{}
	deregistrations []string
}

func (s *stubConsul) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/v1/agent/self", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"Config": map[string]interface{}{"NodeName": "test-node"},
		})
	})

	mux.HandleFunc("/v1/agent/service/register", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var reg map[string]interface{}
		_ = json.Unmarshal(body, &reg)
		s.registrations = append(s.registrations, reg)
	})

	mux.HandleFunc("/v1/agent/service/deregister/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/v1/agent/service/deregister/")
		s.deregistrations = append(s.deregistrations, id)
	})

	// Blocking-query endpoints must carry the index headers or the client
	// rejects the response.
	queryMeta := func(w http.ResponseWriter) {
		w.Header().Set("X-Consul-Index", "1")
		w.Header().Set("X-Consul-LastContact", "0")
		w.Header().Set("X-Consul-KnownLeader", "true")
	}

	mux.HandleFunc("/v1/health/service/usermodel-grpc", func(w http.ResponseWriter, r *http.Request) {
		queryMeta(w)
		_ = json.NewEncoder(w).Encode([]map[string]interface{}{
			{
				"Node":    map[string]interface{}{"Node": "n1", "Address": "10.0.0.1"},
				"Service": map[string]interface{}{"ID": "a", "Service": "usermodel-grpc", "Address": "10.0.0.2", "Port": 50051},
			},
			{
				// No service address; the node address is the fallback.
				"Node":    map[string]interface{}{"Node": "n2", "Address": "10.0.0.3"},
				"Service": map[string]interface{}{"ID": "b", "Service": "usermodel-grpc", "Address": "", "Port": 50052},
			},
		})
	})

	mux.HandleFunc("/v1/health/service/ghost", func(w http.ResponseWriter, r *http.Request) {
		queryMeta(w)
		_ = json.NewEncoder(w).Encode([]map[string]interface{}{})
	})

	mux.HandleFunc("/v1/catalog/services", func(w http.ResponseWriter, r *http.Request) {
		queryMeta(w)
		_ = json.NewEncoder(w).Encode(map[string][]string{
			"consul":         {},
			"usermodel-grpc": {"grpc"},
		})
	})

	return mux
}

func newStubRegistry(t *testing.T) (ServiceRegistry, *stubConsul) {
	t.Helper()

	stub := &stubConsul{}
	server := httptest.NewServer(stub.handler())
	t.Cleanup(server.Close)

	prev := config.AppConfig.Consul.Address
	config.AppConfig.Consul.Address = strings.TrimPrefix(server.URL, "http://")
	t.Cleanup(func() { config.AppConfig.Consul.Address = prev })

	reg, err := NewConsulRegistry(zap.NewNop().Sugar())
	require.NoError(t, err)
	return reg, stub
}

func TestConsulRegistry(t *testing.T) {
	reg, stub := newStubRegistry(t)

	t.Run("Register sends the service and its check", func(t *testing.T) {
		check := CreateGRPCCheck("usermodel-grpc-50051", "host1:50051", "10s", "1s", false)
		err := reg.Register("usermodel-grpc-50051", "usermodel-grpc", "host1", 50051, []string{"grpc"}, check)
		require.NoError(t, err)

		require.Len(t, stub.registrations, 1)
		sent := stub.registrations[0]
		assert.Equal(t, "usermodel-grpc-50051", sent["ID"])
		assert.Equal(t, "usermodel-grpc", sent["Name"])
		assert.Equal(t, float64(50051), sent["Port"])

		sentCheck, ok := sent["Check"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "host1:50051", sentCheck["GRPC"])
		assert.Equal(t, "1m", sentCheck["DeregisterCriticalServiceAfter"])
	})

	t.Run("Register with an HTTP check", func(t *testing.T) {
		check := CreateHTTPCheck("usermodel-http-8080", "host1", 8080, "/apidocs.json", "10s", "1s")
		err := reg.Register("usermodel-http-8080", "usermodel-http", "host1", 8080, nil, check)
		require.NoError(t, err)

		sent := stub.registrations[len(stub.registrations)-1]
		sentCheck, ok := sent["Check"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "http://host1:8080/apidocs.json", sentCheck["HTTP"])
		assert.Equal(t, "GET", sentCheck["Method"])
	})

	t.Run("Discover returns healthy addresses, node address as fallback", func(t *testing.T) {
		addrs, err := reg.Discover("usermodel-grpc", "")
		require.NoError(t, err)
		assert.Equal(t, []string{"10.0.0.2:50051", "10.0.0.3:50052"}, addrs)
	})

	t.Run("Discover with no healthy instances is an error", func(t *testing.T) {
		_, err := reg.Discover("ghost", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no healthy instances")
	})

	t.Run("List returns the catalog", func(t *testing.T) {
		services, err := reg.List()
		require.NoError(t, err)
		assert.Contains(t, services, "usermodel-grpc")
		assert.Contains(t, services, "consul")
	})

	t.Run("Deregister", func(t *testing.T) {
		require.NoError(t, reg.Deregister("usermodel-grpc-50051"))
		assert.Equal(t, []string{"usermodel-grpc-50051"}, stub.deregistrations)
	})
}
