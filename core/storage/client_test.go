package storage_test

import (
	"testing"

	"sales-reconciler/core/storage"

	"github.com/stretchr/testify/assert"
)

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			Bucket:    "reconciliation",
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithScheme", func(t *testing.T) {
		for _, endpoint := range []string{"http://localhost:9000", "https://s3.amazonaws.com"} {
			client, err := storage.NewClient(storage.Config{
				Endpoint:  endpoint,
				AccessKey: "testkey",
				SecretKey: "testsecret",
				UseSSL:    endpoint[:5] == "https",
			})
			assert.NoError(t, err, endpoint)
			assert.NotNil(t, client, endpoint)
		}
	})
}

func TestConfig_ReportObject(t *testing.T) {
	tests := []struct {
		prefix string
		want   string
	}{
		{"reports", "reports/r.json"},
		{"/reports/", "reports/r.json"},
		{"", "r.json"},
	}

	for _, tt := range tests {
		cfg := storage.Config{ReportPrefix: tt.prefix}
		assert.Equal(t, tt.want, cfg.ReportObject("r.json"))
	}
}
