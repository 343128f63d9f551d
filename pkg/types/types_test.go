// pkg/types/types_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test descriptor ordering, run modes, script options and rules

package types_test

import (
	"testing"
	"time"

	"github.com/arthur-debert/witd/pkg/types"
	"github.com/stretchr/testify/assert"
)

func baseFile() types.File {
	ts := time.Unix(3, 900_000_000)
	return types.File{
		Path:       "test",
		Name:       "test",
		Directory:  "Test//test",
		Extension:  "ext",
		CreatedAt:  ts,
		ModifiedAt: ts,
	}
}

func TestFile_IsOlder(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(f *types.File)
		want   bool
	}{
		{
			name:   "all dates equal",
			mutate: func(f *types.File) {},
			want:   false,
		},
		{
			name:   "other created earlier",
			mutate: func(f *types.File) { f.CreatedAt = f.CreatedAt.Add(-444 * time.Nanosecond) },
			want:   false,
		},
		{
			name:   "other created later",
			mutate: func(f *types.File) { f.CreatedAt = f.CreatedAt.Add(444 * time.Nanosecond) },
			want:   true,
		},
		{
			name:   "other modified earlier",
			mutate: func(f *types.File) { f.ModifiedAt = f.ModifiedAt.Add(-444 * time.Nanosecond) },
			want:   false,
		},
		{
			name:   "other modified later",
			mutate: func(f *types.File) { f.ModifiedAt = f.ModifiedAt.Add(444 * time.Nanosecond) },
			want:   true,
		},
		{
			name: "created later but modified earlier",
			mutate: func(f *types.File) {
				f.CreatedAt = f.CreatedAt.Add(time.Second)
				f.ModifiedAt = f.ModifiedAt.Add(-time.Second)
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := baseFile()
			b := a
			tt.mutate(&b)
			assert.Equal(t, tt.want, a.IsOlder(b))
		})
	}
}

func TestRunMode_AllowedOptions(t *testing.T) {
	assert.Equal(t,
		[]types.ScriptOption{types.ScriptOptionDirectory},
		types.RunModeDirectory.AllowedOptions())
	assert.Equal(t,
		[]types.ScriptOption{
			types.ScriptOptionDirectory,
			types.ScriptOptionExt,
			types.ScriptOptionName,
			types.ScriptOptionPath,
		},
		types.RunModeFile.AllowedOptions())

	assert.True(t, types.RunModeFile.Allows(types.ScriptOptionName))
	assert.False(t, types.RunModeDirectory.Allows(types.ScriptOptionName))
}

func TestRunMode_String(t *testing.T) {
	assert.Equal(t, "directory", types.RunModeDirectory.String())
	assert.Equal(t, "file", types.RunModeFile.String())
	assert.Equal(t, []types.RunMode{types.RunModeDirectory, types.RunModeFile}, types.RunModeValues())
	assert.Equal(t, "directory, file", types.RunModeNames(", "))
}

func TestScriptOption_Token(t *testing.T) {
	want := []string{"DIR", "EXT", "NAME", "PATH"}
	for i, opt := range types.ScriptOptionValues() {
		assert.Equal(t, want[i], opt.Token())
	}
	assert.Equal(t, "DIR|EXT|NAME|PATH", types.JoinTokens(types.ScriptOptionValues(), "|"))
}

func TestKeyword_String(t *testing.T) {
	assert.Equal(t, "do", types.KeywordDo.String())
	assert.Equal(t, "end", types.KeywordEnd.String())
	assert.Equal(t, "mode", types.KeywordMode.String())
}

func TestRule_String(t *testing.T) {
	tests := []struct {
		name string
		rule types.Rule
		want string
	}{
		{
			name: "directory rule",
			rule: types.Rule{RootPath: "./src", RunMode: types.RunModeDirectory, CommandTemplate: "make build"},
			want: "directory ./src do make build end",
		},
		{
			name: "file rule",
			rule: types.Rule{RootPath: ".", RunMode: types.RunModeFile, CommandTemplate: `echo "NAME"`},
			want: `foreach file in . do echo "NAME" end`,
		},
		{
			name: "empty template",
			rule: types.Rule{RootPath: "./src", RunMode: types.RunModeDirectory},
			want: "directory ./src do end",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rule.String())
		})
	}
}
