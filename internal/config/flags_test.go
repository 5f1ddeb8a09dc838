package config

import (
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg := parseFlags(fs, []string{
		"-a", "localhost:5000",
		"-d", "postgres://localhost/shoprent",
		"-fallback-d", "postgres://localhost/shoprent_local",
		"-uploads-dir", "receipts",
		"-c", "config.json",
		"-token-sign-key", "secret",
		"-token-duration", "12h",
		"-env", "production",
	})

	assert.Equal(t, "localhost:5000", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://localhost/shoprent", cfg.Storage.DB.DSN)
	assert.Equal(t, "postgres://localhost/shoprent_local", cfg.Storage.DB.FallbackDSN)
	assert.Equal(t, "receipts", cfg.Storage.Files.UploadsDir)
	assert.Equal(t, "config.json", cfg.JSONFilePath)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, 12*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "production", cfg.App.Environment)
}

func TestParseFlags_Empty(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg := parseFlags(fs, nil)

	// unset address stays empty so the merge falls through to other sources
	assert.Empty(t, cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.Storage.DB.DSN)
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    NetAddress
		wantErr bool
	}{
		{name: "localhost", input: "localhost:5000", want: NetAddress{Host: "localhost", Port: 5000}},
		{name: "ip host", input: "127.0.0.1:8080", want: NetAddress{Host: "127.0.0.1", Port: 8080}},
		{name: "empty host", input: ":5000", want: NetAddress{Host: "", Port: 5000}},
		{name: "missing port", input: "localhost", wantErr: true},
		{name: "bad port", input: "localhost:http", wantErr: true},
		{name: "negative port", input: "localhost:-1", wantErr: true},
		{name: "bad host", input: "not a host:5000", wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(test.input)
			if test.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, addr)
		})
	}
}

func TestNetAddress_String(t *testing.T) {
	assert.Empty(t, (&NetAddress{}).String())
	assert.Equal(t, "localhost:5000", (&NetAddress{Host: "localhost", Port: 5000}).String())
}
