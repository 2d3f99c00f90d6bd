package mysql

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriverConfig(t *testing.T) {
	cases := []struct {
		name     string
		uri      string
		wantAddr string
		wantDB   string
		wantErr  bool
	}{
		{
			name:     "plain",
			uri:      "reel:secret@tcp(db:3306)/reelfeed",
			wantAddr: "db:3306",
			wantDB:   "reelfeed",
		},
		{
			name:     "existing_params",
			uri:      "reel:secret@tcp(db:3306)/reelfeed?parseTime=false&loc=Local",
			wantAddr: "db:3306",
			wantDB:   "reelfeed",
		},
		{
			name:    "invalid",
			uri:     "not a dsn",
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := driverConfig(tc.uri)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantAddr, cfg.Addr)
			assert.Equal(t, tc.wantDB, cfg.DBName)
			assert.True(t, cfg.ParseTime)
			assert.Equal(t, time.UTC, cfg.Loc)
		})
	}
}
