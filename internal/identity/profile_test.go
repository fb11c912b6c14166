package identity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeValid(t *testing.T) {
	data := []byte(`{"id":"u1","name":"A","email":"a@b.com","role":"user","orgId":"org1"}`)
	p, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, Profile{ID: "u1", Name: "A", Email: "a@b.com", Role: "user", OrgID: "org1"}, p)
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"truncated json", `{"id":"u1"`},
		{"not json", `garbage`},
		{"wrong shape", `["u1"]`},
		{"missing id", `{"name":"A","email":"a@b.com"}`},
		{"empty object", `{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data))
			require.Error(t, err)
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	in := Profile{ID: "u2", Name: "B", Email: "b@c.com", Role: "admin", OrgID: "org9"}
	data, err := Encode(in)
	require.NoError(t, err)
	out, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, in, out)
}
