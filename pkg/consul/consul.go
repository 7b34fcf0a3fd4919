package consul

import (
	"fmt"
	"strconv"

	"hapsay-service/config"

	consulapi "github.com/hashicorp/consul/api"
	"go.uber.org/zap"
)

type ConsulConn struct {
	logger    *zap.SugaredLogger
	cfg       *config.Config
	client    *consulapi.Client
	serviceID string
}

func NewConsulConn(logger *zap.SugaredLogger, cfg *config.Config) *ConsulConn {
	return &ConsulConn{
		logger:    logger,
		cfg:       cfg,
		serviceID: fmt.Sprintf("%s-%s-%s", cfg.ServiceName, cfg.ServiceHost, cfg.Port),
	}
}

// Registration describes this instance to the agent, with an HTTP check
// against the readiness endpoint.
func (c *ConsulConn) Registration() (*consulapi.AgentServiceRegistration, error) {
	port, err := strconv.Atoi(c.cfg.Port)
	if err != nil {
		return nil, fmt.Errorf("invalid port %q: %w", c.cfg.Port, err)
	}

	return &consulapi.AgentServiceRegistration{
		ID:      c.serviceID,
		Name:    c.cfg.ServiceName,
		Address: c.cfg.ServiceHost,
		Port:    port,
		Tags:    []string{c.cfg.Env},
		Check: &consulapi.AgentServiceCheck{
			HTTP:                           fmt.Sprintf("http://%s:%d/health/ready", c.cfg.ServiceHost, port),
			Interval:                       "10s",
			Timeout:                        "2s",
			DeregisterCriticalServiceAfter: "1m",
		},
	}, nil
}

// Connect registers the service. It returns nil when no agent is configured.
func (c *ConsulConn) Connect() (*consulapi.Client, error) {

	if c.cfg.ConsulAddr == "" {
		c.logger.Info("CONSUL_ADDR not set, skipping service registration")
		return nil, nil
	}

	apiCfg := consulapi.DefaultConfig()
	apiCfg.Address = c.cfg.ConsulAddr

	client, err := consulapi.NewClient(apiCfg)
	if err != nil {
		return nil, err
	}

	reg, err := c.Registration()
	if err != nil {
		return nil, err
	}
	if err := client.Agent().ServiceRegister(reg); err != nil {
		return nil, err
	}

	c.client = client
	c.logger.Infow("registered with consul", "id", c.serviceID, "agent", c.cfg.ConsulAddr)
	return client, nil

}

func (c *ConsulConn) Deregister() {
	if c.client == nil {
		return
	}
	if err := c.client.Agent().ServiceDeregister(c.serviceID); err != nil {
		c.logger.Warnw("consul deregister failed", "id", c.serviceID, "error", err)
		return
	}
	c.logger.Infow("deregistered from consul", "id", c.serviceID)
}
