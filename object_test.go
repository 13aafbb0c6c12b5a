package simspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractLabel(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantLabel Label
		wantRest  string
		wantErr   bool
	}{
		{"Leading", "label:3 10 1.5 5 2.0", 3, "10 1.5 5 2.0", false},
		{"MidLine", "10 1.5 label:7 5 2.0", 7, "10 1.5  5 2.0", false},
		{"Absent", "10 1.5 5 2.0", NoLabel, "10 1.5 5 2.0", false},
		{"Negative", "label:-1 1 2", -1, "1 2", false},
		{"Malformed", "label:abc 1 2", NoLabel, "", true},
		{"Empty", "", NoLabel, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, rest, err := ExtractLabel(tt.line)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLabel, label)
			assert.Equal(t, tt.wantRest, rest)
		})
	}
}

func TestExtractLabelNotAToken(t *testing.T) {
	// A prefix glued to preceding text is not a label token.
	label, rest, err := ExtractLabel("xlabel:3 1 2")
	require.NoError(t, err)
	assert.Equal(t, NoLabel, label)
	assert.Equal(t, "xlabel:3 1 2", rest)
}

func TestNewObjectCopiesPayload(t *testing.T) {
	data := []byte{1, 2, 3, 4}
	o := NewObject(7, 2, data)

	data[0] = 99

	assert.Equal(t, ID(7), o.ID())
	assert.Equal(t, Label(2), o.Label())
	assert.Equal(t, []byte{1, 2, 3, 4}, o.Data())
	assert.Equal(t, 4, o.DataLength())
}

func TestHasWhitespace(t *testing.T) {
	assert.False(t, HasWhitespace("cat"))
	assert.True(t, HasWhitespace("big cat"))
	assert.True(t, HasWhitespace("tab\tcat"))
	assert.False(t, HasWhitespace(""))
}
