package main

import (
	"bytes"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Annany2002/querygate/internal/auth"
)

func TestTableDataSortsColumnsAndFillsGaps(t *testing.T) {
	data := tableData([]map[string]any{
		{"last_name": "Lovelace", "first_name": "Ada", "cgpa": 3.9},
		{"last_name": "Turing", "first_name": "Alan", "cgpa": nil},
		{"first_name": "Emmy"},
	})

	assert.Equal(t, pterm.TableData{
		{"cgpa", "first_name", "last_name"},
		{"3.9", "Ada", "Lovelace"},
		{"NULL", "Alan", "Turing"},
		{"", "Emmy", ""},
	}, data)
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "querygatectl "+Version+"\n", out.String())
}

func TestTokenCommand(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("AUTH_JWT_SECRET", "cli-secret")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"token", "--subject", "dashboard", "--ttl", "1h"})
	require.NoError(t, cmd.Execute())

	subject, err := auth.ValidateJWT(string(bytes.TrimSpace(out.Bytes())), "cli-secret")
	require.NoError(t, err)
	assert.Equal(t, "dashboard", subject)
}

func TestTokenCommandRequiresSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("AUTH_JWT_SECRET", "")

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"token", "--subject", "dashboard"})
	assert.ErrorContains(t, cmd.Execute(), "AUTH_JWT_SECRET")
}

func TestAskRequiresQuestion(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"ask"})
	assert.Error(t, cmd.Execute())
}
