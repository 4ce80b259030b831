package registry

import (
	"fmt"

	"github.com/justin-mavity/usermodel/config"

	consulapi "github.com/hashicorp/consul/api"
	"go.uber.org/zap"
)

type consulRegistry struct {
	client *consulapi.Client
	logger *zap.SugaredLogger
}

var _ ServiceRegistry = (*consulRegistry)(nil)

// NewConsulRegistry creates a new registry backed by Consul, using the agent
// address from the application config.
func NewConsulRegistry(logger *zap.SugaredLogger) (ServiceRegistry, error) {
	consulConfig := consulapi.DefaultConfig()
	consulConfig.Address = config.AppConfig.Consul.Address

	client, err := consulapi.NewClient(consulConfig)
	if err != nil {
		logger.Errorw("Failed to create Consul client", "address", consulConfig.Address, "error", err)
		return nil, fmt.Errorf("failed to create consul client: %w", err)
	}

	// Ping the agent so misconfiguration surfaces at startup.
	if _, err = client.Agent().NodeName(); err != nil {
		logger.Errorw("Failed to connect to Consul agent", "address", consulConfig.Address, "error", err)
		return nil, fmt.Errorf("cannot connect to consul agent at %s: %w", consulConfig.Address, err)
	}
	logger.Infow("Connected to Consul agent", "address", consulConfig.Address)

	return &consulRegistry{
		client: client,
		logger: logger.Named("ConsulRegistry"),
	}, nil
}

// Register registers a service instance with Consul, including a health check.
func (r *consulRegistry) Register(id, name, address string, port int, tags []string, check *consulapi.AgentServiceCheck) error {
	reg := &consulapi.AgentServiceRegistration{
		ID:      id,
		Name:    name,
		Tags:    tags,
		Port:    port,
		Address: address,
		Check:   check,
	}

	if err := r.client.Agent().ServiceRegister(reg); err != nil {
		r.logger.Errorw("Failed to register service with Consul", "service_id", id, "service_name", name, "error", err)
		return fmt.Errorf("failed to register service '%s': %w", name, err)
	}
	r.logger.Infow("Registered service with Consul", "service_id", id, "service_name", name, "address", address, "port", port)
	return nil
}

// Deregister removes a service instance from Consul.
func (r *consulRegistry) Deregister(id string) error {
	if err := r.client.Agent().ServiceDeregister(id); err != nil {
		r.logger.Errorw("Failed to deregister service from Consul", "service_id", id, "error", err)
		return fmt.Errorf("failed to deregister service '%s': %w", id, err)
	}
	r.logger.Infow("Deregistered service from Consul", "service_id", id)
	return nil
}

// Discover finds healthy instances of a service and returns their
// "host:port" addresses.
func (r *consulRegistry) Discover(name string, tag string) ([]string, error) {
	instances, _, err := r.client.Health().Service(name, tag, true, nil)
	if err != nil {
		r.logger.Warnw("Failed to discover service from Consul", "service_name", name, "tag", tag, "error", err)
		return nil, fmt.Errorf("failed to discover service '%s': %w", name, err)
	}

	if len(instances) == 0 {
		return nil, fmt.Errorf("no healthy instances found for service '%s'", name)
	}

	addrs := make([]string, 0, len(instances))
	for _, inst := range instances {
		addr := inst.Service.Address
		if addr == "" {
			addr = inst.Node.Address
		}
		addrs = append(addrs, fmt.Sprintf("%s:%d", addr, inst.Service.Port))
	}
	return addrs, nil
}

// List retrieves the service catalog as a map of service name to tags.
func (r *consulRegistry) List() (map[string]string, error) {
	services, _, err := r.client.Catalog().Services(nil)
	if err != nil {
		r.logger.Errorw("Failed to list services from Consul catalog", "error", err)
		return nil, fmt.Errorf("failed to list services from consul: %w", err)
	}
	serviceMap := make(map[string]string, len(services))
	for name, tags := range services {
		serviceMap[name] = fmt.Sprintf("%v", tags)
	}
	return serviceMap, nil
}

// CreateHTTPCheck creates a Consul HTTP health check configuration.
func CreateHTTPCheck(serviceID, serviceHost string, servicePort int, checkPath string, interval, timeout string) *consulapi.AgentServiceCheck {
	return &consulapi.AgentServiceCheck{
		CheckID:                        fmt.Sprintf("check_%s_http", serviceID),
		Name:                           fmt.Sprintf("HTTP Check for %s", serviceID),
		HTTP:                           fmt.Sprintf("http://%s:%d%s", serviceHost, servicePort, checkPath),
		Method:                         "GET",
		Interval:                       interval,
		Timeout:                        timeout,
		DeregisterCriticalServiceAfter: "1m",
	}
}

// CreateGRPCCheck creates a Consul gRPC health check configuration. The
// service must implement the gRPC Health Checking Protocol.
func CreateGRPCCheck(serviceID, grpcTarget string, interval, timeout string, useTLS bool) *consulapi.AgentServiceCheck {
	return &consulapi.AgentServiceCheck{
		CheckID:                        fmt.Sprintf("check_%s_grpc", serviceID),
		Name:                           fmt.Sprintf("gRPC Check for %s", serviceID),
		GRPC:                           grpcTarget,
		GRPCUseTLS:                     useTLS,
		Interval:                       interval,
		Timeout:                        timeout,
		DeregisterCriticalServiceAfter: "1m",
	}
}
