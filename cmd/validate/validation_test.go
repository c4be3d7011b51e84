package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateValidateArgs(t *testing.T) {
	tests := []struct {
		name    string
		options RunOptionsValidate
		args    []string
		wantErr string
	}{
		{
			name:    "no targets",
			options: RunOptionsValidate{Format: "plain", At: -1},
			wantErr: "either a target path or a 'url' flag must be specified",
		},
		{
			name:    "path target",
			options: RunOptionsValidate{Format: "plain", At: -1},
			args:    []string{"index.html"},
		},
		{
			name:    "url target",
			options: RunOptionsValidate{Format: "sarif", URLs: []string{"https://example.com"}, At: -1},
		},
		{
			name:    "format is normalised",
			options: RunOptionsValidate{Format: " SARIF ", At: -1},
			args:    []string{"index.html"},
		},
		{
			name:    "unknown format",
			options: RunOptionsValidate{Format: "xml", At: -1},
			args:    []string{"index.html"},
			wantErr: "the 'format' flag must be one of plain, json, sarif",
		},
		{
			name:    "non-http url",
			options: RunOptionsValidate{Format: "plain", URLs: []string{"ftp://example.com"}, At: -1},
			wantErr: "the 'url' flag must be an http(s) URL",
		},
		{
			name:    "at with one target",
			options: RunOptionsValidate{Format: "plain", At: 10},
			args:    []string{"index.html"},
		},
		{
			name:    "at with several targets",
			options: RunOptionsValidate{Format: "plain", At: 10},
			args:    []string{"a.html", "b.html"},
			wantErr: "the 'at' flag requires exactly one target",
		},
		{
			name:    "at with output",
			options: RunOptionsValidate{Format: "plain", At: 10, OutputPath: "out.txt"},
			args:    []string{"index.html"},
			wantErr: "the 'at' flag cannot be combined with 'output'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateValidateArgs(&tt.options, tt.args)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}
