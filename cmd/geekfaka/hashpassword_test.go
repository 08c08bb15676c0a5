package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPasswordCmd(t *testing.T) {
	var out bytes.Buffer
	hashPasswordCmd.SetOut(&out)
	t.Cleanup(func() { hashPasswordCmd.SetOut(nil) })

	require.NoError(t, hashPasswordCmd.RunE(hashPasswordCmd, []string{"s3cret"}))

	hash := strings.TrimSpace(out.String())
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("wrong")))
}
