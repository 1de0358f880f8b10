package main

import (
	"crypto/sha256"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMigrationFilenamePattern(t *testing.T) {
	tests := []struct {
		filename string
		valid    bool
		version  string
		name     string
	}{
		{"0001_init.sql", true, "0001", "init"},
		{"0002_seed_categories.sql", true, "0002", "seed_categories"},
		{"001_invalid.sql", false, "", ""},
		{"0001_test", false, "", ""},
		{"0001.sql", false, "", ""},
		{"invalid_0001_test.sql", false, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			matches := migrationPattern.FindStringSubmatch(tt.filename)
			if !tt.valid {
				assert.Nil(t, matches)
				return
			}
			assert.Equal(t, tt.version, matches[1])
			assert.Equal(t, tt.name, matches[2])
		})
	}
}

func TestMigrationChecksumConsistency(t *testing.T) {
	sum := func(s string) string {
		return fmt.Sprintf("%x", sha256.Sum256([]byte(s)))
	}

	assert.Equal(t, sum("CREATE TABLE test (id TEXT);"), sum("CREATE TABLE test (id TEXT);"))
	assert.NotEqual(t, sum("CREATE TABLE test (id TEXT);"), sum("CREATE TABLE other (id TEXT);"))
}
