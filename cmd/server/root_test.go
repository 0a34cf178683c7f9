package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandTree(t *testing.T) {
	root := newRootCmd()

	names := make([]string, 0, len(root.Commands()))
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "serve")
	assert.Contains(t, names, "migrate")

	serve, _, err := root.Find([]string{"serve"})
	require.NoError(t, err)
	assert.NotNil(t, serve.Flags().Lookup("addr"))
	assert.NotNil(t, serve.Flags().Lookup("kafka-brokers"))
}

func TestMigrateRequiresDatabaseURL(t *testing.T) {
	t.Setenv("TRIPAPP_DATABASE_URL", "")
	root := newRootCmd()
	root.SetArgs([]string{"migrate"})
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database.url")
}

func TestServeRejectsInvalidConfig(t *testing.T) {
	t.Setenv("TRIPAPP_TRACING_EXPORTER", "zipkin")
	root := newRootCmd()
	root.SetArgs([]string{"serve"})
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tracing.exporter")
}
