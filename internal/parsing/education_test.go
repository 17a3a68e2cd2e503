package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEducationLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"phd", "PhD in Physics", LevelDoctorate},
		{"dotted phd", "Ph.D. Computer Science", LevelDoctorate},
		{"doctorate", "Doctorate", LevelDoctorate},
		{"masters", "Masters in Data Science", LevelMaster},
		{"mba", "MBA", LevelMaster},
		{"dotted mtech", "M.Tech", LevelMaster},
		{"bachelor", "Bachelor of Science", LevelBachelor},
		{"dotted btech", "B.Tech Electrical", LevelBachelor},
		{"bsc", "BSc Mathematics", LevelBachelor},
		{"associate", "Associate degree", LevelAssociate},
		{"diploma is not master", "Diploma", LevelDiploma},
		{"certificate", "Certificate in Networking", LevelCertificate},
		{"highest wins", "Bachelor | Master", LevelMaster},
		{"pipe delimited", "diploma | bachelors", LevelBachelor},
		{"nothing recognizable", "Self-taught", LevelUnknown},
		{"empty", "", LevelUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EducationLevel(tt.input))
		})
	}
}

func TestIsUnspecified(t *testing.T) {
	assert.True(t, IsUnspecified(""))
	assert.True(t, IsUnspecified("  "))
	assert.True(t, IsUnspecified("Not specified"))
	assert.True(t, IsUnspecified("Not Specified"))
	assert.False(t, IsUnspecified("Bachelor"))
}
