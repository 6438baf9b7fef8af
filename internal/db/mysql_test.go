package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDSN(t *testing.T) {
	tests := []struct {
		name string
		dsn  string
		want string
	}{
		{
			name: "bare dsn gains parseTime",
			dsn:  "user:pw@tcp(localhost:3306)/perpus",
			want: "user:pw@tcp(localhost:3306)/perpus?parseTime=True",
		},
		{
			name: "existing params are extended",
			dsn:  "user:pw@tcp(localhost:3306)/perpus?charset=utf8mb4",
			want: "user:pw@tcp(localhost:3306)/perpus?charset=utf8mb4&parseTime=True",
		},
		{
			name: "explicit parseTime is left alone",
			dsn:  "user:pw@tcp(localhost:3306)/perpus?parseTime=False",
			want: "user:pw@tcp(localhost:3306)/perpus?parseTime=False",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeDSN(tt.dsn))
		})
	}
}
