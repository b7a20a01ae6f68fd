//go:build unit

package resolver

import (
	"errors"
	"testing"

	"github.com/lerenn/edit-path/pkg/address"
	"github.com/lerenn/edit-path/pkg/convention"
	"github.com/lerenn/edit-path/pkg/logger"
	"github.com/lerenn/edit-path/pkg/resolver/mocks"
	"github.com/lerenn/edit-path/pkg/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestResolver(hostOS string, home HomeDirProvider) *Resolver {
	return NewResolver(NewResolverParams{
		Detector: &Detector{HostOS: hostOS},
		Home:     home,
		Logger:   logger.NewNoopLogger(),
	})
}

func TestResolver_Resolve_PosixRelative(t *testing.T) {
	r := newTestResolver("linux", nil)
	c := NewContext(resource.MustNew(resource.LocalFile, "", "/home/user/doc.txt"), false)

	got := r.Resolve("../sibling.txt", c)

	assert.Equal(t, convention.POSIX, got.Convention)
	assert.Equal(t, "/home", got.FullDirectory)
	assert.Equal(t, "/home/sibling.txt", got.FullPath)
	assert.Equal(t, "../", got.DirectoryPart)
	assert.Equal(t, "sibling.txt", got.BaseName)
	assert.Equal(t, "../sibling.txt", got.NormalizedInput)
}

func TestResolver_Resolve_WindowsRelative(t *testing.T) {
	r := newTestResolver("linux", nil)
	c := Context{
		Handle:         resource.MustNew(resource.LocalFile, "", "/c:/Users/me/doc.txt"),
		HostPathSample: `C:\Users\me\doc.txt`,
	}

	got := r.Resolve(`sub\f.txt`, c)

	assert.Equal(t, convention.Windows, got.Convention)
	assert.Equal(t, `C:\Users\me\sub`, got.FullDirectory)
	assert.Equal(t, `C:\Users\me\sub\f.txt`, got.FullPath)
}

func TestResolver_Resolve_WindowsForwardSlashesAreRewritten(t *testing.T) {
	r := newTestResolver("linux", nil)
	c := NewContext(resource.MustNew(resource.LocalFile, "", "/c:/Users/me/doc.txt"), false)

	got := r.Resolve("../other/f.txt", c)

	assert.Equal(t, `..\other\f.txt`, got.NormalizedInput)
	assert.Equal(t, `C:\Users\other`, got.FullDirectory)
	assert.Equal(t, `C:\Users\other\f.txt`, got.FullPath)
}

func TestResolver_Resolve_WindowsAbsoluteDrive(t *testing.T) {
	r := newTestResolver("linux", nil)
	c := NewContext(resource.MustNew(resource.LocalFile, "", "/c:/Users/me/doc.txt"), false)

	got := r.Resolve(`D:\data\x.csv`, c)

	assert.Equal(t, `D:\data`, got.FullDirectory)
	assert.Equal(t, `D:\data\x.csv`, got.FullPath)
}

func TestResolver_Resolve_UNC(t *testing.T) {
	r := newTestResolver("linux", nil)
	c := NewContext(resource.MustNew(resource.LocalFile, "", "/c:/Users/me/doc.txt"), false)

	got := r.Resolve(`\\host\share\x`, c)
	assert.Equal(t, `\\host\share`, got.FullDirectory)
	assert.Equal(t, `\\host\share\x`, got.FullPath)

	got = r.Resolve(`\\host`, c)
	assert.Equal(t, `\\host`, got.DirectoryPart)
	assert.Equal(t, "", got.BaseName)
	assert.Equal(t, `\\host`, got.FullDirectory)
	assert.Equal(t, `\\host`, got.FullPath)
}

func TestResolver_Resolve_ContextOnUNCShare(t *testing.T) {
	r := newTestResolver("linux", nil)
	ref := resource.MustNew(resource.LocalFile, "host", "/share/dir/doc.txt")
	c := NewContext(ref, false)

	got := r.Resolve("f.txt", c)

	assert.Equal(t, convention.Windows, got.Convention)
	assert.Equal(t, `\\host\share\dir`, got.FullDirectory)
	assert.Equal(t, `\\host\share\dir\f.txt`, got.FullPath)

	h, err := address.ToResourceHandle(got.FullPath, got.Convention, ref)
	require.NoError(t, err)
	assert.True(t, resource.MustNew(resource.LocalFile, "host", "/share/dir/f.txt").Equal(h), "got %s", h)
}

func TestResolver_Resolve_HomeExpansion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHome := mocks.NewMockHomeDirProvider(ctrl)
	mockHome.EXPECT().GetHomeDir().Return("/home/tester", nil)

	r := newTestResolver("linux", mockHome)
	c := NewContext(resource.MustNew(resource.LocalFile, "", "/srv/project/doc.txt"), false)

	got := r.Resolve("~/notes.txt", c)

	assert.Equal(t, "/home/tester", got.FullDirectory)
	assert.Equal(t, "/home/tester/notes.txt", got.FullPath)
	assert.Equal(t, "~/notes.txt", got.NormalizedInput)
}

func TestResolver_Resolve_HomeExpansionKeepsTrailingSeparator(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHome := mocks.NewMockHomeDirProvider(ctrl)
	mockHome.EXPECT().GetHomeDir().Return("/home/tester/", nil)

	r := newTestResolver("linux", mockHome)
	c := NewContext(resource.MustNew(resource.LocalFile, "", "/srv/doc.txt"), false)

	got := r.Resolve("~/projects/", c)

	assert.Equal(t, "/home/tester/projects/", got.DirectoryPart)
	assert.Equal(t, "", got.BaseName)
	assert.Equal(t, "/home/tester/projects", got.FullPath)
}

func TestResolver_Resolve_HomeExpansionOnWindows(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHome := mocks.NewMockHomeDirProvider(ctrl)
	mockHome.EXPECT().GetHomeDir().Return(`C:\Users\me`, nil)

	r := newTestResolver("windows", mockHome)
	c := NewContext(resource.MustNew(resource.LocalFile, "", "/d:/work/doc.txt"), false)

	got := r.Resolve("~/notes.txt", c)

	assert.Equal(t, `C:\Users\me\notes.txt`, got.FullPath)
}

func TestResolver_Resolve_HomeExpansionRefusedRemotely(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No expectation: the home directory must not be looked up.
	mockHome := mocks.NewMockHomeDirProvider(ctrl)

	r := newTestResolver("linux", mockHome)
	c := NewContext(resource.MustNew(resource.RemoteFile, "ssh-box", "/home/me/doc.txt"), true)

	got := r.Resolve("~/notes.txt", c)

	assert.Equal(t, "/home/me/~", got.FullDirectory)
	assert.Equal(t, "/home/me/~/notes.txt", got.FullPath)
}

func TestResolver_Resolve_HomeLookupFailureLeavesInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHome := mocks.NewMockHomeDirProvider(ctrl)
	mockHome.EXPECT().GetHomeDir().Return("", errors.New("no home"))

	r := newTestResolver("linux", mockHome)
	c := NewContext(resource.MustNew(resource.LocalFile, "", "/srv/doc.txt"), false)

	got := r.Resolve("~/notes.txt", c)

	assert.Equal(t, "/srv/~/notes.txt", got.FullPath)
}

func TestResolver_Resolve_TildeWithoutSeparatorIsLiteral(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHome := mocks.NewMockHomeDirProvider(ctrl)

	r := newTestResolver("linux", mockHome)
	c := NewContext(resource.MustNew(resource.LocalFile, "", "/srv/doc.txt"), false)

	got := r.Resolve("~backup", c)

	assert.Equal(t, "/srv/~backup", got.FullPath)
}

func TestResolver_Resolve_UnsavedUsesWorkingDirectory(t *testing.T) {
	r := newTestResolver("linux", nil)
	c := NewContext(resource.MustNew(resource.UnsavedBuffer, "", "Untitled-1"), false)
	c.WorkingDirectory = "/work/repo"

	got := r.Resolve("src/main.go", c)

	assert.Equal(t, "/work/repo/src", got.FullDirectory)
	assert.Equal(t, "/work/repo/src/main.go", got.FullPath)
}

func TestResolver_Resolve_UnsavedFallsBackToHome(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHome := mocks.NewMockHomeDirProvider(ctrl)
	mockHome.EXPECT().GetHomeDir().Return("/home/tester", nil)

	r := newTestResolver("linux", mockHome)
	c := NewContext(resource.MustNew(resource.UnsavedBuffer, "", "Untitled-1"), false)

	got := r.Resolve("a.txt", c)

	assert.Equal(t, "/home/tester/a.txt", got.FullPath)
}

func TestResolver_Resolve_UnsavedRemoteFallsBackToRoot(t *testing.T) {
	r := newTestResolver("windows", nil)
	c := NewContext(resource.MustNew(resource.UnsavedBuffer, "", "Untitled-1"), true)

	got := r.Resolve("a.txt", c)

	assert.Equal(t, convention.POSIX, got.Convention)
	assert.Equal(t, "/", got.FullDirectory)
	assert.Equal(t, "/a.txt", got.FullPath)
}

func TestResolver_Resolve_UnsavedOnWindowsHost(t *testing.T) {
	r := newTestResolver("windows", nil)
	c := NewContext(resource.MustNew(resource.UnsavedBuffer, "", "Untitled-1"), false)
	c.WorkingDirectory = `C:\work`

	got := r.Resolve("a/b.txt", c)

	assert.Equal(t, convention.Windows, got.Convention)
	assert.Equal(t, `C:\work\a\b.txt`, got.FullPath)
}

func TestResolver_Resolve_EmptyInput(t *testing.T) {
	r := newTestResolver("linux", nil)
	c := NewContext(resource.MustNew(resource.LocalFile, "", "/home/user/doc.txt"), false)

	got := r.Resolve("", c)

	assert.Equal(t, "/home/user", got.FullDirectory)
	assert.Equal(t, "/home/user", got.FullPath)
	assert.Equal(t, "", got.BaseName)
}

func TestResolver_Resolve_FullPathInvariant(t *testing.T) {
	r := newTestResolver("linux", nil)
	contexts := []Context{
		NewContext(resource.MustNew(resource.LocalFile, "", "/home/user/doc.txt"), false),
		NewContext(resource.MustNew(resource.LocalFile, "", "/c:/Users/me/doc.txt"), false),
		NewContext(resource.MustNew(resource.RemoteFile, "box", "/srv/app/main.go"), true),
		NewContext(resource.MustNew(resource.UnsavedBuffer, "", "Untitled-1"), true),
	}
	inputs := []string{"", "a", "a/", "../b", "./c/d.txt", "/abs/x", `C:\x\y`, `\\h`, `\\h\s\f`, "dir/../e"}

	for _, c := range contexts {
		for _, in := range inputs {
			got := r.Resolve(in, c)
			assert.Equal(t, got.Convention.Join(got.FullDirectory, got.BaseName), got.FullPath, "input %q", in)
			assert.True(t, got.Convention.IsAbsolute(got.FullDirectory), "input %q gave %q", in, got.FullDirectory)
		}
	}
}
