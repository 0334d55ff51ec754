package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-config-gen/internal/environment"
	"github.com/MKhiriev/go-config-gen/internal/mock"
)

var names = []string{"NEXT_PUBLIC_SUPABASE_URL", "NEXT_PUBLIC_SUPABASE_ANON_KEY"}

func TestSelect_KeySetIsAlwaysTheRecognizedSet(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
	}{
		{name: "empty environment", vars: nil},
		{name: "one name set", vars: map[string]string{"NEXT_PUBLIC_SUPABASE_URL": "https://x.example"}},
		{name: "both names set", vars: map[string]string{
			"NEXT_PUBLIC_SUPABASE_URL":      "https://x.example",
			"NEXT_PUBLIC_SUPABASE_ANON_KEY": "anon",
		}},
		{name: "unrelated variables", vars: map[string]string{"PATH": "/bin", "HOME": "/root", "SECRET": "s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapping := Select(environment.NewMapProvider(tt.vars), names)
			assert.Equal(t, names, mapping.Keys())
		})
	}
}

func TestSelect_Values(t *testing.T) {
	env := environment.NewMapProvider(map[string]string{
		"NEXT_PUBLIC_SUPABASE_URL": "  https://x.example  ",
		"OTHER":                    "ignored",
	})

	mapping := Select(env, names)

	v, ok := mapping.Get("NEXT_PUBLIC_SUPABASE_URL")
	assert.True(t, ok)
	assert.Equal(t, "  https://x.example  ", v, "values pass through untouched")

	_, ok = mapping.Get("NEXT_PUBLIC_SUPABASE_ANON_KEY")
	assert.False(t, ok)
	assert.False(t, mapping.Has("OTHER"))
	assert.Equal(t, 1, mapping.Resolved())
}

func TestSelect_EmptyValueIsPresent(t *testing.T) {
	env := environment.NewMapProvider(map[string]string{"NEXT_PUBLIC_SUPABASE_ANON_KEY": ""})

	mapping := Select(env, names)

	v, ok := mapping.Get("NEXT_PUBLIC_SUPABASE_ANON_KEY")
	assert.True(t, ok)
	assert.Empty(t, v)
}

func TestSelect_PreservesOrderAndCollapsesDuplicates(t *testing.T) {
	env := environment.NewMapProvider(map[string]string{"B": "b", "A": "a"})

	mapping := Select(env, []string{"B", "A", "B"})

	assert.Equal(t, []string{"B", "A"}, mapping.Keys())
}

func TestSelect_OnlyReadsEnvironment(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := mock.NewMockProvider(ctrl)

	gomock.InOrder(
		env.EXPECT().Get("NEXT_PUBLIC_SUPABASE_URL").Return("https://x.example", true),
		env.EXPECT().Get("NEXT_PUBLIC_SUPABASE_ANON_KEY").Return("", false),
	)
	env.EXPECT().SetIfAbsent(gomock.Any(), gomock.Any()).Times(0)

	mapping := Select(env, names)

	assert.Equal(t, 1, mapping.Resolved())
}
