package registry

import (
	consulapi "github.com/hashicorp/consul/api"
)

// ServiceRegistry defines the interface for service registration and discovery.
type ServiceRegistry interface {
	// Register registers a service instance.
	// id must be unique per instance (e.g. serviceName + host + port).
	Register(id, name, address string, port int, tags []string, check *consulapi.AgentServiceCheck) error

	// Deregister removes a service instance using its unique ID.
	Deregister(id string) error

	// Discover finds healthy instances of a service by name and optional tag.
	// Returns a list of "host:port" strings.
	Discover(name string, tag string) ([]string, error)

	// List retrieves a map of registered service names to their tags.
	List() (map[string]string, error)
}
