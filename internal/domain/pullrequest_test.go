package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRepository(t *testing.T) {
	testCases := []struct {
		name        string
		input       string
		expected    Repository
		expectError bool
	}{
		{name: "owner and name", input: "alpha/one", expected: Repository{Owner: "alpha", Name: "one"}},
		{name: "missing separator", input: "alpha", expectError: true},
		{name: "empty owner", input: "/one", expectError: true},
		{name: "empty name", input: "alpha/", expectError: true},
		{name: "empty input", input: "", expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, err := ParseRepository(tc.input)
			if tc.expectError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expected, repo)
			}
		})
	}
}

func TestRepository_FullName(t *testing.T) {
	repo := Repository{Owner: "alpha", Name: "one"}
	assert.Equal(t, "alpha/one", repo.FullName())
}

func TestRepository_PageURL(t *testing.T) {
	repo := Repository{Owner: "alpha", Name: "one"}
	assert.Equal(t, "https://github.com/alpha/one", repo.PageURL(""))
	assert.Equal(t, "https://github.com/alpha/one/actions", repo.PageURL("actions"))
}
