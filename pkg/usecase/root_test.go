package usecase_test

import (
	"path/filepath"
	"testing"

	"github.com/m-mizutani/dsfetch/pkg/domain/types"
	"github.com/m-mizutani/dsfetch/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func TestResolveRoot(t *testing.T) {
	tests := []struct {
		name        string
		cwd         string
		projectName string
		want        string
	}{
		{
			name:        "nested below project",
			cwd:         "/a/b/proj/c/d",
			projectName: "proj",
			want:        "/a/b/proj",
		},
		{
			name:        "at project root",
			cwd:         "/home/u/proj",
			projectName: "proj",
			want:        "/home/u/proj",
		},
		{
			name:        "nearest ancestor wins",
			cwd:         "/x/proj/y/proj/z",
			projectName: "proj",
			want:        "/x/proj/y/proj",
		},
		{
			name:        "trailing separator and dot segments",
			cwd:         "/home/u/proj/sub/./../sub/",
			projectName: "proj",
			want:        "/home/u/proj",
		},
		{
			name:        "relative path",
			cwd:         "work/proj/notebooks",
			projectName: "proj",
			want:        "work/proj",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := usecase.ResolveRoot(filepath.FromSlash(tt.cwd), tt.projectName)
			gt.NoError(t, err)
			gt.Equal(t, got, filepath.FromSlash(tt.want))
		})
	}
}

func TestResolveRoot_NotFound(t *testing.T) {
	tests := []struct {
		name        string
		cwd         string
		projectName string
	}{
		{name: "no matching ancestor", cwd: "/x/y/z", projectName: "myproj"},
		{name: "prefix is not a match", cwd: "/x/myproject/z", projectName: "myproj"},
		{name: "filesystem root", cwd: "/", projectName: "myproj"},
		{name: "relative without match", cwd: "x/y", projectName: "myproj"},
		{name: "empty project name", cwd: "/x/y", projectName: ""},
		{name: "project name with separator", cwd: "/x/y/z", projectName: "y/z"},
		{name: "dot project name", cwd: "x/y", projectName: "."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := usecase.ResolveRoot(filepath.FromSlash(tt.cwd), tt.projectName)
			gt.Error(t, err)
			gt.Equal(t, got, "")
			gt.True(t, goerr.HasTag(err, types.ErrTagConfiguration))
		})
	}
}
