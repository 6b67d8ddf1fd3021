package paginator_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rshade/paginator/pkg/paginator"
)

func TestParseView(t *testing.T) {
	tests := []struct {
		input string
		want  paginator.View
	}{
		{input: "mobile", want: paginator.ViewSelectBox},
		{input: "MOBILE", want: paginator.ViewSelectBox},
		{input: "selectbox", want: paginator.ViewSelectBox},
		{input: "SelectBox", want: paginator.ViewSelectBox},
		{input: "select", want: paginator.ViewSelectBox},
		{input: "  Select ", want: paginator.ViewSelectBox},
		{input: "list", want: paginator.ViewList},
		{input: "", want: paginator.ViewList},
		{input: "dropdown", want: paginator.ViewList},
		{input: "selectboxes", want: paginator.ViewList},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, paginator.ParseView(tt.input))
		})
	}
}

func TestView_String(t *testing.T) {
	assert.Equal(t, "list", paginator.ViewList.String())
	assert.Equal(t, "selectbox", paginator.ViewSelectBox.String())
}

func TestView_TextEncoding(t *testing.T) {
	type doc struct {
		View paginator.View `json:"view" yaml:"view"`
	}

	out, err := json.Marshal(doc{View: paginator.ViewSelectBox})
	require.NoError(t, err)
	assert.JSONEq(t, `{"view":"selectbox"}`, string(out))

	var fromYAML doc
	require.NoError(t, yaml.Unmarshal([]byte("view: Mobile\n"), &fromYAML))
	assert.Equal(t, paginator.ViewSelectBox, fromYAML.View)

	var fromJSON doc
	require.NoError(t, json.Unmarshal([]byte(`{"view":"whatever"}`), &fromJSON))
	assert.Equal(t, paginator.ViewList, fromJSON.View)
}
