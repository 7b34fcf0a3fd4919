package consul

import (
	"testing"

	"hapsay-service/config"

	"go.uber.org/zap"
)

func TestRegistration(t *testing.T) {
	cfg := &config.Config{Env: "production", Port: "3000", ServiceName: "hapsay-service", ServiceHost: "api.local"}
	conn := NewConsulConn(zap.NewNop().Sugar(), cfg)

	reg, err := conn.Registration()
	if err != nil {
		t.Fatalf("registration: %v", err)
	}
	if reg.ID != "hapsay-service-api.local-3000" || reg.Port != 3000 {
		t.Errorf("reg = %+v", reg)
	}
	if reg.Check == nil || reg.Check.HTTP != "http://api.local:3000/health/ready" {
		t.Errorf("check = %+v", reg.Check)
	}
}

func TestRegistrationRejectsBadPort(t *testing.T) {
	conn := NewConsulConn(zap.NewNop().Sugar(), &config.Config{Port: "http"})
	if _, err := conn.Registration(); err == nil {
		t.Error("expected error for non-numeric port")
	}
}

func TestConnectWithoutAgent(t *testing.T) {
	conn := NewConsulConn(zap.NewNop().Sugar(), &config.Config{Port: "3000"})
	client, err := conn.Connect()
	if err != nil || client != nil {
		t.Errorf("Connect() = %v, %v; want nil, nil", client, err)
	}
	conn.Deregister()
}
